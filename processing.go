package decomposer

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"time"

	"github.com/brandquad/decomposer/backend"
	"github.com/brandquad/decomposer/units"
)

// Thumbnailer renders whole-slide thumbnails of one document.
type Thumbnailer interface {
	Thumbnail(slide int) ([]byte, error)
	Close() error
}

// ThumbnailSource opens a Thumbnailer for a document path.
type ThumbnailSource interface {
	Open(path string) (Thumbnailer, error)
}

// Decomposer turns presentations into slide records. It reads each document
// through a rendering backend and a parsed-file model.
type Decomposer struct {
	backend backend.Backend
	files   backend.FileModelOpener
	config  Config
	scaler  Scaler
	thumbs  ThumbnailSource
	shapes  shapeExtractor
}

type Option func(*Decomposer)

// WithScaler replaces the vips based raster scaler.
func WithScaler(s Scaler) Option {
	return func(d *Decomposer) { d.scaler = s }
}

// WithThumbnailSource renders thumbnails with ts instead of the rendering
// backend.
func WithThumbnailSource(ts ThumbnailSource) Option {
	return func(d *Decomposer) { d.thumbs = ts }
}

func New(b backend.Backend, files backend.FileModelOpener, c Config, opts ...Option) *Decomposer {
	d := &Decomposer{
		backend: b,
		files:   files,
		config:  c,
		scaler:  VipsScaler{},
		shapes:  newShapeExtractor(c),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Presentation is an opened document. Its slides are produced lazily by
// Slides, which can be consumed once.
type Presentation struct {
	FrameSize FrameSize

	shapes   shapeExtractor
	session  *Session
	model    backend.FileModel
	pages    []backend.Page
	thumbs   Thumbnailer
	debug    bool
	consumed bool
	closed   bool
}

// Open opens path with both object models.
func (d *Decomposer) Open(path string) (*Presentation, error) {
	st := time.Now()
	log.Println("[>] Open presentation:", path)
	defer func() {
		log.Printf("[<] Open presentation, at %s", time.Since(st))
	}()

	doc, err := d.backend.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenDocument, err)
	}
	model, err := d.files.OpenFile(path)
	if err != nil {
		doc.Close()
		return nil, fmt.Errorf("%w: %w", ErrOpenDocument, err)
	}
	pages, err := doc.Pages()
	if err != nil {
		doc.Close()
		model.Close()
		return nil, fmt.Errorf("%w: %w", ErrOpenDocument, err)
	}

	w, h := model.PageSize()
	p := &Presentation{
		FrameSize: FrameSize{
			Width:  units.EMUToPixels(float64(w)),
			Height: units.EMUToPixels(float64(h)),
		},
		shapes:  d.shapes,
		session: newSession(doc, d.config, d.scaler),
		model:   model,
		pages:   pages,
		debug:   d.config.DebugMode,
	}

	if d.thumbs != nil {
		t, err := d.thumbs.Open(path)
		if err != nil {
			log.Printf("[!] Thumbnailer unavailable, using backend: %v", err)
		} else {
			p.thumbs = t
		}
	}

	log.Println("Slides:", len(pages))
	log.Printf("Frame size: %.2fx%.2f", p.FrameSize.Width, p.FrameSize.Height)
	return p, nil
}

// DecomposeSlide opens path and decomposes the slide at index only. Shape
// names are the ones a full decomposition would assign.
func (d *Decomposer) DecomposeSlide(path string, index int) (*Slide, error) {
	p, err := d.Open(path)
	if err != nil {
		return nil, err
	}
	defer p.Close()
	return p.Slide(index)
}

// SlideCount is the number of slides of the rendering backend.
func (p *Presentation) SlideCount() int {
	return len(p.pages)
}

// Slides yields every slide in order. The document is closed when the
// sequence ends or the caller stops early.
func (p *Presentation) Slides() iter.Seq2[*Slide, error] {
	return func(yield func(*Slide, error) bool) {
		if p.consumed || p.closed {
			yield(nil, ErrSlidesConsumed)
			return
		}
		p.consumed = true
		defer p.Close()

		st := time.Now()
		counter := NewShapeCounter()
		for i := range p.pages {
			slide, next, err := p.processSlide(i, counter)
			if err != nil {
				yield(nil, err)
				return
			}
			counter = next
			if i == 0 {
				log.Printf("[<] Time to first slide: %s", time.Since(st))
			}
			if !yield(slide, nil) {
				return
			}
		}
		log.Printf("[<] Presentation processed: %d slides at %s", len(p.pages), time.Since(st))
	}
}

// Slide decomposes the slide at index without consuming Slides.
func (p *Presentation) Slide(index int) (*Slide, error) {
	if index < 0 || index >= len(p.pages) {
		return nil, fmt.Errorf("%w: %d, presentation has %d slides", ErrSlideIndexOutOfRange, index, len(p.pages))
	}
	if p.closed {
		return nil, ErrSlidesConsumed
	}
	seed := 1
	for _, page := range p.pages[:index] {
		seed += page.Count()
	}
	slide, _, err := p.processSlide(index, CounterAt(seed))
	return slide, err
}

func (p *Presentation) processSlide(index int, counter ShapeCounter) (*Slide, ShapeCounter, error) {
	st := time.Now()
	log.Printf("[>] Processing slide %d", index)
	defer func() {
		log.Printf("[<] Processing slide %d, at %s", index, time.Since(st))
	}()

	page := p.pages[index]
	files, err := p.model.SlideShapes(index)
	if err != nil {
		return nil, counter, fmt.Errorf("slide %d: parsed shapes: %w", index, err)
	}
	pairs, err := correlate(index, page.Shapes(), files)
	if err != nil {
		return nil, counter, err
	}

	structure, afterStructure := p.structurePass(index, pairs, counter)
	images, afterImages := p.imagePass(index, pairs, counter)
	next := MaxCounter(afterStructure, afterImages)

	thumbnail := p.thumbnail(index)
	background, err := p.backgroundPass(index)
	if err != nil {
		return nil, counter, fmt.Errorf("slide %d: %w", index, err)
	}

	return &Slide{
		Index:           index,
		Shapes:          images,
		Structure:       structure,
		Thumbnail:       thumbnail,
		Background:      background,
		BackgroundColor: BackgroundColor(page),
		FrameSize:       p.FrameSize,
	}, next, nil
}

// structurePass extracts the attributes of every shape of the slide.
func (p *Presentation) structurePass(slide int, pairs []shapePair, counter ShapeCounter) ([]*Shape, ShapeCounter) {
	structure := make([]*Shape, 0, len(pairs))
	for _, pair := range pairs {
		var name string
		name, counter = counter.Next()
		structure = append(structure, p.shapes.extract(slide, pair.shape, pair.file, name))
	}
	return structure, counter
}

// Close releases the backend document, the parsed model and the
// thumbnailer. It is safe to call more than once.
func (p *Presentation) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true

	var errs []error
	if err := p.session.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close document: %w", err))
	}
	if err := p.model.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close parsed model: %w", err))
	}
	if p.thumbs != nil {
		if err := p.thumbs.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close thumbnailer: %w", err))
		}
	}
	log.Println("[-] Presentation closed")
	return errors.Join(errs...)
}
