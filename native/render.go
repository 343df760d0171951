package native

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	gopresentation "github.com/VantageDataChat/GoPPT"
	"github.com/brandquad/decomposer/units"
	"golang.org/x/image/draw"
)

var errEmptySelection = errors.New("selection lies outside the page")

// scratch builds a one slide presentation with the layout of d holding
// shapes in order. The GoPPT renderer draws group children at their own
// absolute offsets, so grouping keeps every shape where it was.
func (d *Document) scratch(background *gopresentation.Fill, shapes []*Shape) *gopresentation.Presentation {
	layout := *d.pres.GetLayout()
	pres := gopresentation.New()
	pres.SetLayout(&layout)
	slide := pres.GetActiveSlide()
	if background != nil {
		slide.SetBackground(background)
	}
	group := slide.CreateGroupShape()
	for _, s := range shapes {
		group.AddShape(s.src)
	}
	return pres
}

// renderPage renders the shapes currently on p at exactly width x height.
// The renderer derives the height from the slide aspect ratio, so the
// raster is resampled when the requested frame has another ratio.
func (d *Document) renderPage(p *Page, width, height int) (image.Image, error) {
	pres := d.scratch(p.background, p.shapes)
	defer pres.Close()

	img, err := pres.SlideToImage(0, &gopresentation.RenderOptions{
		Width:     width,
		Format:    gopresentation.ImageFormatPNG,
		FontCache: d.fonts,
	})
	if err != nil {
		return nil, fmt.Errorf("render page %d: %w", p.index+1, err)
	}
	if height <= 0 || (img.Bounds().Dx() == width && img.Bounds().Dy() == height) {
		return img, nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst, nil
}

// renderShape renders s alone on a transparent page at 96 DPI and crops the
// result to the shape bounds.
func (d *Document) renderShape(s *Shape) (image.Image, error) {
	pres := d.scratch(nil, []*Shape{s})
	defer pres.Close()

	layout := pres.GetLayout()
	width := int(math.Round(units.EMUToPixels(float64(layout.CX))))
	img, err := pres.SlideToImage(0, &gopresentation.RenderOptions{
		Width:           width,
		Format:          gopresentation.ImageFormatPNG,
		BackgroundColor: &color.RGBA{},
		FontCache:       d.fonts,
	})
	if err != nil {
		return nil, fmt.Errorf("render shape %s: %w", s.src.GetName(), err)
	}

	scale := float64(img.Bounds().Dx()) / float64(layout.CX)
	bounds := image.Rect(
		int(math.Floor(float64(s.src.GetOffsetX())*scale)),
		int(math.Floor(float64(s.src.GetOffsetY())*scale)),
		int(math.Ceil(float64(s.src.GetOffsetX()+s.src.GetWidth())*scale)),
		int(math.Ceil(float64(s.src.GetOffsetY()+s.src.GetHeight())*scale)),
	)
	// straight connectors have no extent along one axis
	if bounds.Dx() == 0 {
		bounds.Max.X++
	}
	if bounds.Dy() == 0 {
		bounds.Max.Y++
	}
	bounds = bounds.Intersect(img.Bounds())
	if bounds.Empty() {
		return nil, errEmptySelection
	}

	sub, ok := img.(interface {
		SubImage(image.Rectangle) image.Image
	})
	if !ok {
		return img, nil
	}
	return sub.SubImage(bounds), nil
}

func writePNG(img image.Image, target string) error {
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", target, err)
	}
	return f.Close()
}
