package decomposer

import (
	"time"
)

const (
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// ProcessingResult reports the progress of a whole decomposition.
type ProcessingResult struct {
	Status              string            `json:"status"`
	Progress            float64           `json:"progress"`
	TotalSlides         int               `json:"total_slides"`
	ProcessedSlides     int               `json:"processed_slides"`
	CurrentSlide        int               `json:"current_slide"`
	FrameSize           FrameSize         `json:"frame_size"`
	Slides              []*PublishedSlide `json:"slides"`
	Error               string            `json:"error,omitempty"`
	TimeElapsed         float64           `json:"time_elapsed"`
	TimeToFirstSlide    *float64          `json:"time_to_first_slide"`
	TotalProcessingTime *float64          `json:"total_processing_time"`

	started time.Time
}

func NewProcessingResult(total int, frame FrameSize) *ProcessingResult {
	return &ProcessingResult{
		Status:      StatusProcessing,
		TotalSlides: total,
		FrameSize:   frame,
		Slides:      make([]*PublishedSlide, 0, total),
		started:     time.Now(),
	}
}

// Add records a finished slide and updates the progress counters.
func (r *ProcessingResult) Add(s *PublishedSlide) {
	r.Slides = append(r.Slides, s)
	r.ProcessedSlides++
	r.CurrentSlide = s.Index
	if r.TotalSlides > 0 {
		r.Progress = float64(r.ProcessedSlides) / float64(r.TotalSlides) * 100
	}
	r.TimeElapsed = time.Since(r.started).Seconds()
	if r.TimeToFirstSlide == nil {
		first := r.TimeElapsed
		r.TimeToFirstSlide = &first
	}
}

// Finish closes the result with err, or as completed when err is nil.
func (r *ProcessingResult) Finish(err error) {
	r.TimeElapsed = time.Since(r.started).Seconds()
	total := r.TimeElapsed
	r.TotalProcessingTime = &total
	if err != nil {
		r.Status = StatusFailed
		r.Error = err.Error()
		return
	}
	r.Status = StatusCompleted
	r.Progress = 100
}
