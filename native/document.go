// Package native implements the rendering backend on top of GoPPT. It keeps
// its own ordered page model over the parsed shapes so that shapes can be
// taken off a page and put back without touching the source file.
package native

import (
	"errors"
	"fmt"
	"log"
	"slices"

	gopresentation "github.com/VantageDataChat/GoPPT"
	"github.com/brandquad/decomposer/backend"
)

var ErrClosed = errors.New("document is closed")

// Backend opens .pptx files.
type Backend struct {
	// FontDirs are searched for fonts in addition to the system directories.
	FontDirs []string
}

func (b Backend) Open(path string) (backend.Document, error) {
	pres, err := gopresentation.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return FromPresentation(pres, b.FontDirs...), nil
}

// Document is an opened presentation with the automation state of a
// rendering backend: current page and selection.
type Document struct {
	pres     *gopresentation.Presentation
	pages    []*Page
	fonts    *gopresentation.FontCache
	current  *Page
	selected *Shape
	closed   bool
}

// FromPresentation wraps an already parsed presentation.
func FromPresentation(pres *gopresentation.Presentation, fontDirs ...string) *Document {
	d := &Document{
		pres:  pres,
		fonts: gopresentation.NewFontCache(fontDirs...),
	}
	for i, slide := range pres.Slides() {
		page := &Page{doc: d, index: i, background: slide.GetBackground()}
		for _, s := range slide.GetShapes() {
			page.shapes = append(page.shapes, &Shape{src: s, page: page})
		}
		d.pages = append(d.pages, page)
	}
	return d
}

func (d *Document) Pages() ([]backend.Page, error) {
	if d.closed {
		return nil, ErrClosed
	}
	pages := make([]backend.Page, len(d.pages))
	for i, p := range d.pages {
		pages[i] = p
	}
	return pages, nil
}

func (d *Document) SetCurrentPage(p backend.Page) error {
	page, ok := p.(*Page)
	if !ok || page.doc != d {
		return fmt.Errorf("page does not belong to this document")
	}
	d.current = page
	return nil
}

func (d *Document) Select(s backend.Shape) error {
	shape, ok := s.(*Shape)
	if !ok || shape.page == nil || shape.page.doc != d {
		return fmt.Errorf("shape does not belong to this document")
	}
	if !slices.Contains(shape.page.shapes, shape) {
		return backend.ErrShapeNotOnPage
	}
	d.selected = shape
	return nil
}

func (d *Document) ExportSelection(format, target string) error {
	if d.closed {
		return ErrClosed
	}
	if format != "png" {
		return fmt.Errorf("%w: export format %s", backend.ErrUnsupported, format)
	}
	if d.selected == nil {
		return errors.New("nothing selected")
	}
	img, err := d.renderShape(d.selected)
	if err != nil {
		return err
	}
	return writePNG(img, target)
}

func (d *Document) ExportPage(width, height int, target string) error {
	if d.closed {
		return ErrClosed
	}
	if d.current == nil {
		return errors.New("no current page")
	}
	img, err := d.renderPage(d.current, width, height)
	if err != nil {
		return err
	}
	return writePNG(img, target)
}

func (d *Document) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	d.current = nil
	d.selected = nil
	if err := d.pres.Close(); err != nil {
		log.Printf("[!] Error closing presentation: %v", err)
		return err
	}
	return nil
}
