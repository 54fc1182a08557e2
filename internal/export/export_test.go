package export

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os/exec"
	"testing"
	"time"

	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 37, G: 99, B: 235, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

type fakeRasterizer struct {
	raster   *Raster
	err      error
	html     string
	selector string
}

func (f *fakeRasterizer) Rasterize(_ context.Context, html, selector string) (*Raster, error) {
	f.html = html
	f.selector = selector
	return f.raster, f.err
}

func TestFileName(t *testing.T) {
	tests := []struct {
		fullName string
		want     string
	}{
		{"Ada Lovelace", "Ada Lovelace.pdf"},
		{"  Grace Hopper  ", "Grace Hopper.pdf"},
		{"", "Resume.pdf"},
		{"   ", "Resume.pdf"},
		{"AC/DC", "AC-DC.pdf"},
		{`..\..\etc`, "-..-etc.pdf"},
		{"..", "Resume.pdf"},
		{"Tab\tName", "TabName.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.fullName, func(t *testing.T) {
			assert.Equal(t, tt.want, FileName(tt.fullName))
		})
	}
}

func TestFitToPage(t *testing.T) {
	tests := []struct {
		name       string
		imgW, imgH int
	}{
		{
			name: "exact A4 at 96 dpi fills the page",
			imgW: 794, imgH: 1123,
		},
		{
			name: "tall image is centered horizontally",
			imgW: 100, imgH: 1000,
		},
		{
			name: "wide image is centered vertically",
			imgW: 2000, imgH: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := FitToPage(tt.imgW, tt.imgH, A4Width, A4Height)

			assert.LessOrEqual(t, p.Width, A4Width+1e-9)
			assert.LessOrEqual(t, p.Height, A4Height+1e-9)
			assert.InDelta(t, float64(tt.imgW)/float64(tt.imgH), p.Width/p.Height, 1e-9)
			assert.InDelta(t, A4Width, p.Width+2*p.X, 1e-9)
			assert.InDelta(t, A4Height, p.Height+2*p.Y, 1e-9)
			fillsOne := almost(p.Width, A4Width) || almost(p.Height, A4Height)
			assert.True(t, fillsOne, "placement %+v should touch two page edges", p)
		})
	}
}

func TestFitToPage_TallImage(t *testing.T) {
	p := FitToPage(100, 1000, A4Width, A4Height)

	assert.InDelta(t, A4Height, p.Height, 1e-9)
	assert.InDelta(t, 29.7, p.Width, 1e-9)
	assert.InDelta(t, (A4Width-29.7)/2, p.X, 1e-9)
	assert.InDelta(t, 0, p.Y, 1e-9)
}

func TestFitToPage_Degenerate(t *testing.T) {
	assert.Equal(t, Placement{}, FitToPage(0, 100, A4Width, A4Height))
	assert.Equal(t, Placement{}, FitToPage(100, -1, A4Width, A4Height))
}

func almost(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}

func TestComposePDF(t *testing.T) {
	pdf, err := ComposePDF(encodePNG(t, 400, 600), "Ada Lovelace")
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-")))
	assert.Contains(t, string(pdf), "595.28 841.89")
}

func TestComposePDF_NotAnImage(t *testing.T) {
	_, err := ComposePDF([]byte("not an image"), "x")

	var eerr *Error
	require.ErrorAs(t, err, &eerr)
	assert.Equal(t, StageCompose, eerr.Stage)
}

func TestPDFExporter_Export(t *testing.T) {
	raster := &fakeRasterizer{raster: &Raster{PNG: encodePNG(t, 794, 1123)}}
	exp := NewPDFExporter(raster)

	result, err := exp.Export(context.Background(), "<html></html>", "Ada.pdf")

	require.NoError(t, err)
	assert.Equal(t, "Ada.pdf", result.Filename)
	assert.True(t, bytes.HasPrefix(result.PDF, []byte("%PDF-")))
	assert.Equal(t, "#"+rendering.ContentID, raster.selector)
}

func TestPDFExporter_NodeNotFound(t *testing.T) {
	exp := NewPDFExporter(&fakeRasterizer{err: ErrNodeNotFound})

	result, err := exp.Export(context.Background(), "<html></html>", "Ada.pdf")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrNodeNotFound)
	var eerr *Error
	require.ErrorAs(t, err, &eerr)
	assert.Equal(t, StageRasterize, eerr.Stage)
}

func TestExportResume(t *testing.T) {
	renderer, err := rendering.Default()
	require.NoError(t, err)

	doc := types.DefaultResume()
	doc.PersonalInfo.FullName = "Grace Hopper"
	before := doc.Clone()
	raster := &fakeRasterizer{raster: &Raster{PNG: encodePNG(t, 10, 10)}}

	result, err := ExportResume(context.Background(), NewPDFExporter(raster), renderer, doc)

	require.NoError(t, err)
	assert.Equal(t, "Grace Hopper.pdf", result.Filename)
	assert.Contains(t, raster.html, `id="resume-content"`)
	assert.Equal(t, before, doc)
}

func TestExportResume_FailureLeavesResumeUntouched(t *testing.T) {
	renderer, err := rendering.Default()
	require.NoError(t, err)
	doc := types.DefaultResume()
	before := doc.Clone()

	_, err = ExportResume(context.Background(), NewPDFExporter(&fakeRasterizer{err: errors.New("chrome crashed")}), renderer, doc)

	require.Error(t, err)
	assert.Equal(t, before, doc)
}

func TestChromedpRasterizer_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}
	if !chromeAvailable() {
		t.Skip("Chrome not installed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()
	r := NewChromedpRasterizer("", false)

	raster, err := r.Rasterize(ctx, `<html><body><div id="resume-content" style="width:200px;height:100px">Hi</div></body></html>`, "#resume-content")
	require.NoError(t, err)
	cfg, err := png.DecodeConfig(bytes.NewReader(raster.PNG))
	require.NoError(t, err)
	assert.Equal(t, 400, cfg.Width)

	_, err = r.Rasterize(ctx, `<html><body><p>nothing here</p></body></html>`, "#resume-content")
	assert.ErrorIs(t, err, ErrNodeNotFound)
}

func chromeAvailable() bool {
	for _, name := range []string{"google-chrome", "chromium", "chromium-browser", "headless-shell"} {
		if _, err := exec.LookPath(name); err == nil {
			return true
		}
	}
	return false
}
