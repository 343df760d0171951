// Package soffice renders slide thumbnails through LibreOffice: the
// presentation is converted to PDF once and every page is rasterised with
// vips on demand.
package soffice

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/davidbyttow/govips/v2/vips"
	"github.com/google/uuid"
	poppler2 "github.com/johbar/go-poppler"

	"github.com/brandquad/decomposer"
)

const macBinary = "/Applications/LibreOffice.app/Contents/MacOS/soffice"

var (
	ErrNotFound     = errors.New("libreoffice not found")
	ErrPageNotFound = errors.New("page not found in converted document")

	outputPathRe = regexp.MustCompile(`->\s+(.+?\.(pdf|PDF))\s`)
)

// Converter opens presentations as PDF backed thumbnailers.
type Converter struct {
	// Binary is the soffice executable. Empty means lookup in PATH.
	Binary string
	// WorkDir holds the converted documents. Empty means os.TempDir().
	WorkDir string
	// Width and Height bound the rendered thumbnail.
	Width  int
	Height int
}

func New(binary, workDir string) *Converter {
	return &Converter{
		Binary:  binary,
		WorkDir: workDir,
		Width:   decomposer.PageRenderWidth,
		Height:  decomposer.PageRenderHeight,
	}
}

// FindBinary resolves the soffice executable, preferring configured.
func FindBinary(configured string) (string, error) {
	if configured != "" {
		if _, err := os.Stat(configured); err != nil {
			return "", fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return configured, nil
	}
	if p, err := exec.LookPath("soffice"); err == nil {
		return p, nil
	}
	if _, err := os.Stat(macBinary); err == nil {
		return macBinary, nil
	}
	return "", ErrNotFound
}

func (c *Converter) Open(path string) (decomposer.Thumbnailer, error) {
	binary, err := FindBinary(c.Binary)
	if err != nil {
		return nil, err
	}

	root := c.WorkDir
	if root == "" {
		root = os.TempDir()
	}
	dir := filepath.Join(root, "soffice-"+uuid.NewString())
	if err := os.MkdirAll(dir, decomposer.DefaultFolderPerm); err != nil {
		return nil, err
	}

	pdf, err := convert(binary, path, dir)
	if err != nil {
		os.RemoveAll(dir)
		return nil, err
	}

	widths, err := pageWidths(pdf)
	if err != nil {
		os.RemoveAll(dir)
		return nil, err
	}
	t := &Thumbnails{
		dir:        dir,
		pdf:        pdf,
		pageWidths: widths,
		width:      c.Width,
		height:     c.Height,
	}
	log.Printf("Converted to PDF: %s, pages: %d", pdf, len(t.pageWidths))
	return t, nil
}

func convert(binary, path, outDir string) (string, error) {
	st := time.Now()
	log.Println("[>] Converting presentation to PDF")
	defer func() {
		log.Printf("[<] Converting presentation to PDF, at %s", time.Since(st))
	}()

	output, err := decomposer.ExecCmd(binary, "--headless", "--convert-to", "pdf", "--outdir", outDir, path)
	if err != nil {
		return "", err
	}
	if p, err := extractOutputPath(string(output)); err == nil {
		return p, nil
	}

	p := filepath.Join(outDir, strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))+".pdf")
	if _, err := os.Stat(p); err != nil {
		return "", fmt.Errorf("converted pdf not found: %w", err)
	}
	return p, nil
}

// pageWidths returns the width in points of every page of pdf.
func pageWidths(pdf string) ([]float64, error) {
	doc, err := poppler2.Open(pdf)
	if err != nil {
		return nil, fmt.Errorf("open converted pdf: %w", err)
	}
	defer doc.Close()

	widths := make([]float64, 0, doc.GetNPages())
	for i := 0; i < doc.GetNPages(); i++ {
		page := doc.GetPage(i)
		w, _ := page.Size()
		page.Close()
		widths = append(widths, w)
	}
	return widths, nil
}

// extractOutputPath reads the target file from the soffice conversion log,
// e.g. "convert deck.pptx -> /tmp/out/deck.pdf using filter : impress_pdf_Export".
func extractOutputPath(output string) (string, error) {
	matches := outputPathRe.FindStringSubmatch(output)
	if len(matches) < 2 {
		return "", errors.New("no pdf path in conversion output")
	}
	return matches[1], nil
}

// Thumbnails renders pages of one converted document.
type Thumbnails struct {
	dir        string
	pdf        string
	pageWidths []float64
	width      int
	height     int
}

func (t *Thumbnails) Pages() int {
	return len(t.pageWidths)
}

// Thumbnail rasterises page slide at a density that covers the target width
// and fits it into Width x Height.
func (t *Thumbnails) Thumbnail(slide int) ([]byte, error) {
	if slide < 0 || slide >= len(t.pageWidths) {
		return nil, fmt.Errorf("%w: %d", ErrPageNotFound, slide)
	}

	params := vips.NewImportParams()
	params.Page.Set(slide)
	params.Density.Set(density(t.pageWidths[slide], t.width))

	ref, err := vips.LoadImageFromFile(t.pdf, params)
	if err != nil {
		return nil, fmt.Errorf("load page %d: %w", slide, err)
	}
	defer ref.Close()

	if err = ref.Thumbnail(t.width, t.height, vips.InterestingNone); err != nil {
		return nil, err
	}
	buffer, _, err := ref.ExportPng(vips.NewPngExportParams())
	if err != nil {
		return nil, err
	}
	return buffer, nil
}

func (t *Thumbnails) Close() error {
	return os.RemoveAll(t.dir)
}

// density is the DPI at which a page widthPt points wide is at least px
// pixels wide.
func density(widthPt float64, px int) int {
	if widthPt <= 0 {
		return 72
	}
	return max(72, int(math.Ceil(float64(px)*72/widthPt)))
}
