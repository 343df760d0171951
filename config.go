package decomposer

const (
	// ShapeScaleFactor is applied to every exported shape raster.
	ShapeScaleFactor = 2.0
	// PageRenderWidth and PageRenderHeight size thumbnails and backgrounds.
	PageRenderWidth  = 2048
	PageRenderHeight = 1536
)

type Config struct {
	// TempDir receives intermediate exports. Empty means os.TempDir().
	TempDir string
	// DebugMode keeps intermediate files and logs extra detail.
	DebugMode bool
	// KeepPlaceholderFill disables the transparent placeholder fill policy.
	KeepPlaceholderFill bool
}
