package export

import (
	"bytes"
	"context"
	"image"
	_ "image/png" // registers the PNG decoder for image.DecodeConfig
	"log"

	"github.com/go-pdf/fpdf"
	"github.com/jonathan/resume-builder/internal/rendering"
)

// Raster is a PNG image of the rendered resume.
type Raster struct {
	PNG []byte
}

// Rasterizer renders HTML and captures the element matched by selector as a PNG.
// It returns ErrNodeNotFound when nothing matches.
type Rasterizer interface {
	Rasterize(ctx context.Context, html, selector string) (*Raster, error)
}

// PDFExporter rasterizes the resume content and embeds it in an A4 PDF.
type PDFExporter struct {
	rasterizer Rasterizer
	selector   string
	title      string
}

// NewPDFExporter returns an exporter that captures the resume content node.
func NewPDFExporter(r Rasterizer) *PDFExporter {
	return &PDFExporter{rasterizer: r, selector: "#" + rendering.ContentID, title: "Resume"}
}

// Export rasterizes html and composes the PDF.
func (e *PDFExporter) Export(ctx context.Context, html, filename string) (*Result, error) {
	raster, err := e.rasterizer.Rasterize(ctx, html, e.selector)
	if err != nil {
		log.Printf("[EXPORT] Rasterize failed for %s: %v", filename, err)
		return nil, &Error{Stage: StageRasterize, Message: "failed to capture resume", Cause: err}
	}

	pdf, err := ComposePDF(raster.PNG, e.title)
	if err != nil {
		log.Printf("[EXPORT] Compose failed for %s: %v", filename, err)
		return nil, err
	}
	return &Result{Filename: filename, PDF: pdf}, nil
}

// ComposePDF embeds a PNG in a single A4 portrait page, scaled to fit and centered.
func ComposePDF(png []byte, title string) ([]byte, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(png))
	if err != nil {
		return nil, &Error{Stage: StageCompose, Message: "raster is not a readable image", Cause: err}
	}
	if format != "png" {
		return nil, &Error{Stage: StageCompose, Message: "raster must be a PNG, got " + format}
	}

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetTitle(title, true)
	doc.SetCreator("resume-builder", true)
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	pageW, pageH := doc.GetPageSize()
	place := FitToPage(cfg.Width, cfg.Height, pageW, pageH)

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	doc.RegisterImageOptionsReader("resume", opts, bytes.NewReader(png))
	doc.ImageOptions("resume", place.X, place.Y, place.Width, place.Height, false, opts, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, &Error{Stage: StageCompose, Message: "failed to write PDF", Cause: err}
	}
	return buf.Bytes(), nil
}
