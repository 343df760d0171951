package decomposer

import (
	"errors"
	"log"

	"github.com/brandquad/decomposer/backend"
	"github.com/brandquad/decomposer/colorutils"
)

var white = colorutils.RGBA{Red: 255, Green: 255, Blue: 255, Alpha: 255}

// backgroundPass renders the slide without its shapes. Only a failure to
// restore the shapes is returned; a render failure leaves the background
// empty.
func (p *Presentation) backgroundPass(slide int) ([]byte, error) {
	buf, err := p.session.Background(p.pages[slide])
	if err != nil {
		if errors.Is(err, ErrShapeRestore) {
			return nil, err
		}
		log.Printf("[!] Error rendering background of slide %d: %v", slide, err)
		return nil, nil
	}
	return buf, nil
}

// BackgroundColor returns the solid fill colour of a page background, or
// white when the background is missing or not a solid fill.
func BackgroundColor(page backend.PropertySet) colorutils.RGBA {
	v, ok := page.Property("Background")
	if !ok {
		return white
	}
	bg, ok := v.(backend.PropertySet)
	if !ok || bg == nil {
		return white
	}
	if style, ok := backend.EnumName(bg, "FillStyle"); ok && style != "SOLID" {
		return white
	}
	c := colorutils.Resolve(propertyOrNil(bg, "FillColor"))
	if c == nil {
		return white
	}
	return *c
}
