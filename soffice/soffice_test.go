package soffice

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractOutputPath(t *testing.T) {
	out := "convert /data/deck.pptx as a Impress document -> /tmp/out/deck.pdf using filter : impress_pdf_Export\n"
	p, err := extractOutputPath(out)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/out/deck.pdf", p)

	_, err = extractOutputPath("Error: source file could not be loaded\n")
	assert.Error(t, err)
}

func TestDensity(t *testing.T) {
	// 10in wide page
	assert.Equal(t, 148, density(720, 1476))
	assert.Equal(t, 205, density(720, 2048))
	assert.Equal(t, 72, density(720, 100))
	assert.Equal(t, 72, density(0, 2048))
}

func TestFindBinary(t *testing.T) {
	bin := filepath.Join(t.TempDir(), "soffice")
	require.NoError(t, os.WriteFile(bin, []byte("#!/bin/sh\n"), 0o755))

	p, err := FindBinary(bin)
	require.NoError(t, err)
	assert.Equal(t, bin, p)

	_, err = FindBinary(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestThumbnailPageBounds(t *testing.T) {
	th := &Thumbnails{pageWidths: []float64{720}, width: 2048, height: 1536}
	assert.Equal(t, 1, th.Pages())

	_, err := th.Thumbnail(1)
	assert.ErrorIs(t, err, ErrPageNotFound)
	_, err = th.Thumbnail(-1)
	assert.ErrorIs(t, err, ErrPageNotFound)
}

func TestOpenWithoutBinary(t *testing.T) {
	c := New(filepath.Join(t.TempDir(), "missing"), t.TempDir())
	_, err := c.Open("deck.pptx")
	assert.ErrorIs(t, err, ErrNotFound)
}

// writePDF writes a minimal PDF whose pages have the given widths in points.
func writePDF(t *testing.T, widths ...int) string {
	t.Helper()
	var objs []string
	kids := ""
	for i := range widths {
		kids += fmt.Sprintf("%d 0 R ", i+3)
	}
	objs = append(objs, "<< /Type /Catalog /Pages 2 0 R >>")
	objs = append(objs, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", kids, len(widths)))
	for _, w := range widths {
		objs = append(objs, fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %d 540] >>", w))
	}

	body := "%PDF-1.4\n"
	offsets := make([]int, len(objs))
	for i, o := range objs {
		offsets[i] = len(body)
		body += fmt.Sprintf("%d 0 obj\n%s\nendobj\n", i+1, o)
	}
	xref := len(body)
	body += fmt.Sprintf("xref\n0 %d\n0000000000 65535 f \n", len(objs)+1)
	for _, off := range offsets {
		body += fmt.Sprintf("%010d 00000 n \n", off)
	}
	body += fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objs)+1, xref)

	p := filepath.Join(t.TempDir(), "deck.pdf")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestPageWidths(t *testing.T) {
	widths, err := pageWidths(writePDF(t, 720, 960))
	require.NoError(t, err)
	assert.Equal(t, []float64{720, 960}, widths)

	_, err = pageWidths(filepath.Join(t.TempDir(), "missing.pdf"))
	assert.Error(t, err)
}
