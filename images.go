package decomposer

import (
	"fmt"
	"log"
	"time"

	"github.com/davidbyttow/govips/v2/vips"
)

// Scaler resizes an encoded raster.
type Scaler interface {
	Scale(buf []byte, factor float64) ([]byte, error)
}

// VipsScaler resamples with a Lanczos kernel. vips.Startup must have been
// called.
type VipsScaler struct{}

func (VipsScaler) Scale(buf []byte, factor float64) ([]byte, error) {
	ref, err := vips.NewImageFromBuffer(buf)
	if err != nil {
		return nil, fmt.Errorf("load raster: %w", err)
	}
	defer ref.Close()

	if err = ref.Resize(factor, vips.KernelLanczos3); err != nil {
		return nil, fmt.Errorf("resize raster: %w", err)
	}
	out, _, err := ref.ExportPng(vips.NewPngExportParams())
	if err != nil {
		return nil, fmt.Errorf("encode raster: %w", err)
	}
	return out, nil
}

// imagePass exports every shape of the slide. A shape that fails to export
// is logged and left out of the result.
func (p *Presentation) imagePass(slide int, pairs []shapePair, counter ShapeCounter) (map[string][]byte, ShapeCounter) {
	st := time.Now()
	images := make(map[string][]byte, len(pairs))
	for _, pair := range pairs {
		var name string
		name, counter = counter.Next()

		buf, err := p.session.ExportShape(pair.shape)
		if err != nil {
			log.Printf("[!] %v", newShapeError(slide, name, "image", err))
			continue
		}
		images[name] = buf
	}
	if p.debug {
		log.Printf("[D] Slide %d: %d of %d shapes exported in %s", slide, len(images), len(pairs), time.Since(st))
	}
	return images, counter
}

// thumbnail renders the whole slide, preferring the configured thumbnailer.
func (p *Presentation) thumbnail(slide int) []byte {
	if p.thumbs != nil {
		buf, err := p.thumbs.Thumbnail(slide)
		if err == nil {
			return buf
		}
		log.Printf("[!] Thumbnailer failed on slide %d, falling back to backend: %v", slide, err)
	}
	buf, err := p.session.ExportPage(p.pages[slide])
	if err != nil {
		log.Printf("[!] Error exporting thumbnail of slide %d: %v", slide, err)
		return nil
	}
	return buf
}
