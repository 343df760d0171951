package decomposer

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/brandquad/decomposer/backend"
)

type props map[string]any

func (p props) Property(name string) (any, bool) {
	v, ok := p[name]
	return v, ok
}

type fakeShape struct {
	props
	id         string
	failExport bool
	// rotationAtExport is the rotation the shape had when it was exported.
	rotationAtExport any
}

func newShape(p props) *fakeShape {
	if p == nil {
		p = props{}
	}
	return &fakeShape{props: p}
}

func (s *fakeShape) SetProperty(name string, value any) error {
	s.props[name] = value
	return nil
}

func (s *fakeShape) ID() string { return s.id }

type fakeTextShape struct {
	*fakeShape
	paragraphs []backend.Paragraph
}

func (s *fakeTextShape) Paragraphs() ([]backend.Paragraph, error) {
	return s.paragraphs, nil
}

type fakeParagraph struct {
	props
	text     string
	portions []backend.Portion
}

func (p *fakeParagraph) String() string { return p.text }

func (p *fakeParagraph) Portions() ([]backend.Portion, error) {
	return p.portions, nil
}

type fakePortion struct {
	props
	text string
}

func (p *fakePortion) String() string { return p.text }

type fakeRules struct {
	levels map[int][]backend.PropertyValue
}

func (r fakeRules) Count() int { return MaxBulletLevel + 1 }

func (r fakeRules) Level(i int) ([]backend.PropertyValue, error) {
	return r.levels[i], nil
}

type fakePage struct {
	props
	shapes []backend.Shape
	// failRemoveAfter makes Remove fail once that many shapes were removed.
	failRemoveAfter int
	failAdd         bool
	removals        int
}

func newPage(shapes ...backend.Shape) *fakePage {
	return &fakePage{props: props{}, shapes: shapes, failRemoveAfter: -1}
}

func (p *fakePage) Shapes() []backend.Shape { return slices.Clone(p.shapes) }

func (p *fakePage) Count() int { return len(p.shapes) }

func (p *fakePage) Remove(s backend.Shape) error {
	if p.failRemoveAfter >= 0 && p.removals >= p.failRemoveAfter {
		return errors.New("remove failed")
	}
	i := slices.Index(p.shapes, s)
	if i < 0 {
		return backend.ErrShapeNotOnPage
	}
	p.removals++
	p.shapes = slices.Delete(p.shapes, i, i+1)
	return nil
}

func (p *fakePage) Add(s backend.Shape) error {
	if p.failAdd {
		return errors.New("add failed")
	}
	p.shapes = append(p.shapes, s)
	return nil
}

type fakeDocument struct {
	pages    []*fakePage
	current  *fakePage
	selected backend.Shape

	failPageExport bool
	// pageCounts records the shape count of every exported page.
	pageCounts []int
	closed     bool
}

func (d *fakeDocument) Pages() ([]backend.Page, error) {
	out := make([]backend.Page, len(d.pages))
	for i, p := range d.pages {
		out[i] = p
	}
	return out, nil
}

func (d *fakeDocument) SetCurrentPage(p backend.Page) error {
	d.current = p.(*fakePage)
	return nil
}

func (d *fakeDocument) Select(s backend.Shape) error {
	d.selected = s
	return nil
}

func (d *fakeDocument) ExportSelection(format, target string) error {
	var fs *fakeShape
	switch s := d.selected.(type) {
	case *fakeShape:
		fs = s
	case *fakeTextShape:
		fs = s.fakeShape
	}
	if fs == nil || fs.failExport {
		return errors.New("export failed")
	}
	fs.rotationAtExport = fs.props["RotateAngle"]
	return os.WriteFile(target, []byte(format+":"+fmt.Sprint(fs.props["Name"])), 0644)
}

func (d *fakeDocument) ExportPage(width, height int, target string) error {
	if d.failPageExport {
		return errors.New("render failed")
	}
	d.pageCounts = append(d.pageCounts, d.current.Count())
	return os.WriteFile(target, []byte(fmt.Sprintf("page:%dx%d:%d", width, height, d.current.Count())), 0644)
}

func (d *fakeDocument) Close() error {
	d.closed = true
	return nil
}

type fakeBackend struct {
	doc *fakeDocument
	err error
}

func (b fakeBackend) Open(string) (backend.Document, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.doc, nil
}

type fakeModel struct {
	width, height int64
	slides        [][]backend.FileShape
	closed        bool
}

func (m *fakeModel) PageSize() (int64, int64) { return m.width, m.height }

func (m *fakeModel) SlideCount() int { return len(m.slides) }

func (m *fakeModel) SlideShapes(i int) ([]backend.FileShape, error) {
	if i < 0 || i >= len(m.slides) {
		return nil, errors.New("no such slide")
	}
	return m.slides[i], nil
}

func (m *fakeModel) Close() error {
	m.closed = true
	return nil
}

type fakeOpener struct {
	model *fakeModel
	err   error
}

func (o fakeOpener) OpenFile(string) (backend.FileModel, error) {
	if o.err != nil {
		return nil, o.err
	}
	return o.model, nil
}

// identityScaler leaves rasters untouched so tests need no libvips.
type identityScaler struct{}

func (identityScaler) Scale(buf []byte, _ float64) ([]byte, error) {
	return buf, nil
}

// fileShapes gives every shape a parsed-file counterpart at the same index.
func fileShapes(n int) []backend.FileShape {
	out := make([]backend.FileShape, n)
	for i := range out {
		out[i] = backend.FileShape{Left: int64(i) * 914400, Width: 914400, Height: 457200}
	}
	return out
}

// fixture builds a document whose slides hold the given shapes.
func fixture(slides ...[]backend.Shape) (*fakeDocument, *fakeModel) {
	doc := &fakeDocument{}
	model := &fakeModel{width: 9144000, height: 6858000}
	for _, shapes := range slides {
		doc.pages = append(doc.pages, newPage(shapes...))
		model.slides = append(model.slides, fileShapes(len(shapes)))
	}
	return doc, model
}

func newTestDecomposer(doc *fakeDocument, model *fakeModel) *Decomposer {
	return New(fakeBackend{doc: doc}, fakeOpener{model: model}, Config{TempDir: os.TempDir()}, WithScaler(identityScaler{}))
}
