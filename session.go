package decomposer

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/brandquad/decomposer/backend"
	"github.com/google/uuid"
)

// Session owns an opened backend document for one decomposition. Operations
// that change ambient backend state (rotation, page content) are exposed as
// guarded operations that always restore the state they change.
//
// A Session is not safe for concurrent use.
type Session struct {
	doc    backend.Document
	tmp    string
	keep   bool
	scaler Scaler
}

func newSession(doc backend.Document, c Config, scaler Scaler) *Session {
	tmp := c.TempDir
	if tmp == "" {
		tmp = os.TempDir()
	}
	return &Session{doc: doc, tmp: tmp, keep: c.DebugMode, scaler: scaler}
}

// WithZeroRotation runs fn while shape is rotated to 0 and restores the
// original rotation afterwards, also when fn fails or panics.
func (s *Session) WithZeroRotation(shape backend.Shape, fn func() error) (err error) {
	original, ok := backend.Number(shape, "RotateAngle")
	if !ok {
		log.Println("[!] Could not read rotation, assuming 0")
	}
	if serr := shape.SetProperty("RotateAngle", 0); serr != nil {
		log.Printf("[!] Could not reset rotation: %v", serr)
	}
	defer func() {
		if rerr := shape.SetProperty("RotateAngle", int(original)); rerr != nil {
			err = errors.Join(err, fmt.Errorf("restore rotation: %w", rerr))
		}
	}()
	return fn()
}

// WithShapesRemoved takes every shape off page, runs fn and puts the shapes
// back in their original order, also when fn fails or panics. Shapes are
// removed from the end, so the removed shapes always form a suffix of the
// original sequence and appending them back restores it.
func (s *Session) WithShapesRemoved(page backend.Page, fn func() error) (err error) {
	original := page.Shapes()
	kept := len(original)

	defer func() {
		var errs []error
		for _, sh := range original[kept:] {
			if rerr := page.Add(sh); rerr != nil {
				errs = append(errs, rerr)
			}
		}
		if n := page.Count(); n != len(original) {
			errs = append(errs, fmt.Errorf("page has %d shapes, expected %d", n, len(original)))
		}
		if len(errs) > 0 {
			err = errors.Join(err, fmt.Errorf("%w: %w", ErrShapeRestore, errors.Join(errs...)))
		}
	}()

	for kept > 0 {
		if rerr := page.Remove(original[kept-1]); rerr != nil {
			return fmt.Errorf("remove shape: %w", rerr)
		}
		kept--
	}
	return fn()
}

// ExportShape renders shape unrotated to PNG and scales it by
// ShapeScaleFactor.
func (s *Session) ExportShape(shape backend.Shape) ([]byte, error) {
	target := s.tempFile("png")
	defer s.cleanup(target)

	err := s.WithZeroRotation(shape, func() error {
		if err := s.doc.Select(shape); err != nil {
			return fmt.Errorf("select shape: %w", err)
		}
		return s.doc.ExportSelection("png", target)
	})
	if err != nil {
		return nil, err
	}

	buf, err := os.ReadFile(target)
	if err != nil {
		return nil, err
	}
	return s.scaler.Scale(buf, ShapeScaleFactor)
}

// ExportPage renders page at PageRenderWidth x PageRenderHeight.
func (s *Session) ExportPage(page backend.Page) ([]byte, error) {
	if err := s.doc.SetCurrentPage(page); err != nil {
		return nil, fmt.Errorf("set current page: %w", err)
	}
	target := s.tempFile("png")
	defer s.cleanup(target)

	if err := s.doc.ExportPage(PageRenderWidth, PageRenderHeight, target); err != nil {
		return nil, err
	}
	return os.ReadFile(target)
}

// Background renders page with all shapes removed.
func (s *Session) Background(page backend.Page) ([]byte, error) {
	var buf []byte
	err := s.WithShapesRemoved(page, func() error {
		var err error
		buf, err = s.ExportPage(page)
		return err
	})
	if err != nil {
		return nil, err
	}
	return buf, nil
}

func (s *Session) Close() error {
	return s.doc.Close()
}

func (s *Session) tempFile(ext string) string {
	return filepath.Join(s.tmp, fmt.Sprintf("%s.%s", uuid.New().String(), ext))
}

func (s *Session) cleanup(name string) {
	if s.keep {
		log.Println("[D] Keeping", name)
		return
	}
	if err := os.Remove(name); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("[!] Error removing file: %v", name)
	}
}
