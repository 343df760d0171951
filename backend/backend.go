// Package backend describes the two object models the decomposer reads a
// slide deck through: a rendering backend modelled on an office automation
// API, and a parsed-file model that reports geometry in the file's own units.
package backend

import "errors"

var (
	ErrPropertyNotFound = errors.New("property not found")
	ErrUnsupported      = errors.New("operation not supported")
	ErrShapeNotOnPage   = errors.New("shape is not on the page")
)

// PropertySet is any backend object that exposes named properties.
type PropertySet interface {
	// Property returns the value of name and whether the object has it.
	Property(name string) (any, bool)
}

// Shape is one visual element of a page.
type Shape interface {
	PropertySet
	SetProperty(name string, value any) error
	// ID returns a stable identifier shared with the parsed-file model, or ""
	// when the backend has none.
	ID() string
}

// TextShape is a Shape with text capability.
type TextShape interface {
	Shape
	Paragraphs() ([]Paragraph, error)
}

type Paragraph interface {
	PropertySet
	String() string
	Portions() ([]Portion, error)
}

// Portion is a run of text sharing one character style.
type Portion interface {
	PropertySet
	String() string
}

// Page is a slide of the rendering backend. Shapes returns a snapshot in
// document order.
type Page interface {
	PropertySet
	Shapes() []Shape
	Count() int
	Remove(Shape) error
	Add(Shape) error
}

// Document is an opened presentation. It keeps ambient state (current page,
// selection) and must not be shared between goroutines.
type Document interface {
	Pages() ([]Page, error)
	SetCurrentPage(Page) error
	Select(Shape) error
	// ExportSelection writes the selected shape as an image of the given
	// format ("png") to target.
	ExportSelection(format, target string) error
	// ExportPage writes the current page as a PNG of the given pixel size.
	ExportPage(width, height int, target string) error
	Close() error
}

type Backend interface {
	Open(path string) (Document, error)
}

// FileShape is a shape as reported by the parsed-file model, in EMU.
type FileShape struct {
	ID     string
	Name   string
	Left   int64
	Top    int64
	Width  int64
	Height int64
}

// FileModel is the parsed-file view of the same document.
type FileModel interface {
	// PageSize returns the page width and height in EMU.
	PageSize() (width, height int64)
	SlideCount() int
	SlideShapes(index int) ([]FileShape, error)
	Close() error
}

// FileModelOpener opens the parsed-file model of a document.
type FileModelOpener interface {
	OpenFile(path string) (FileModel, error)
}
