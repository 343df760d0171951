package decomposer

import (
	"log"

	"github.com/brandquad/decomposer/backend"
)

// shapePair joins a rendering backend shape with its parsed-file geometry.
type shapePair struct {
	shape backend.Shape
	file  backend.FileShape
}

// correlate matches the two shape lists of a slide. When both sides carry
// identifiers the match is by identifier; otherwise both lists must have
// the same length and are matched by document order.
func correlate(slide int, shapes []backend.Shape, files []backend.FileShape) ([]shapePair, error) {
	if keyed(shapes, files) {
		return correlateByID(slide, shapes, files)
	}
	if len(shapes) != len(files) {
		return nil, &CorrelationError{
			Slide:     slide,
			Rendering: len(shapes),
			Parsed:    len(files),
			Reason:    "shape counts differ",
		}
	}
	pairs := make([]shapePair, len(shapes))
	for i := range shapes {
		pairs[i] = shapePair{shape: shapes[i], file: files[i]}
	}
	return pairs, nil
}

func correlateByID(slide int, shapes []backend.Shape, files []backend.FileShape) ([]shapePair, error) {
	byID := make(map[string]backend.FileShape, len(files))
	for _, f := range files {
		if _, dup := byID[f.ID]; dup {
			return nil, &CorrelationError{
				Slide:     slide,
				Rendering: len(shapes),
				Parsed:    len(files),
				Reason:    "duplicate shape id " + f.ID,
			}
		}
		byID[f.ID] = f
	}

	pairs := make([]shapePair, 0, len(shapes))
	for _, s := range shapes {
		f, ok := byID[s.ID()]
		if !ok {
			return nil, &CorrelationError{
				Slide:     slide,
				Rendering: len(shapes),
				Parsed:    len(files),
				Reason:    "no parsed shape with id " + s.ID(),
			}
		}
		pairs = append(pairs, shapePair{shape: s, file: f})
	}
	if len(files) > len(shapes) {
		log.Printf("[-] Slide %d: %d parsed shapes are not rendered", slide, len(files)-len(shapes))
	}
	return pairs, nil
}

func keyed(shapes []backend.Shape, files []backend.FileShape) bool {
	if len(shapes) == 0 || len(files) == 0 {
		return false
	}
	for _, s := range shapes {
		if s.ID() == "" {
			return false
		}
	}
	for _, f := range files {
		if f.ID == "" {
			return false
		}
	}
	return true
}
