// Package export turns a rendered resume into a single-page A4 PDF.
//
// The rendered view is rasterized in a headless browser and the raster is scaled to fit
// the page, centered, and embedded in the PDF. Export never sees or modifies the resume
// document itself, only its rendered HTML.
package export

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
)

// DefaultFileStem is used when the resume has no full name.
const DefaultFileStem = "Resume"

// ErrNodeNotFound is returned when the rendered HTML has no element to rasterize.
var ErrNodeNotFound = errors.New("resume content node not found")

// Result is one exported document.
type Result struct {
	Filename string
	PDF      []byte
}

// Exporter converts rendered resume HTML into a PDF.
type Exporter interface {
	Export(ctx context.Context, html, filename string) (*Result, error)
}

// Stage names the step of an export that failed.
type Stage string

// Export stages.
const (
	StageRender    Stage = "render"
	StageRasterize Stage = "rasterize"
	StageCompose   Stage = "compose"
)

// Error reports a failed export.
type Error struct {
	Stage   Stage
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("export %s failed: %s: %v", e.Stage, e.Message, e.Cause)
	}
	return fmt.Sprintf("export %s failed: %s", e.Stage, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// FileName derives the PDF file name from a full name. Path separators are replaced
// so the result is always a single path element.
func FileName(fullName string) string {
	stem := strings.TrimSpace(fullName)
	stem = strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\':
			return '-'
		case r < 0x20 || r == 0x7f:
			return -1
		}
		return r
	}, stem)
	stem = strings.Trim(stem, ". ")
	if stem == "" {
		stem = DefaultFileStem
	}
	return stem + ".pdf"
}

// ExportResume renders doc with r and exports it under a name derived from the full name.
func ExportResume(ctx context.Context, e Exporter, r *rendering.Renderer, doc *types.Resume) (*Result, error) {
	html, err := r.RenderResume(doc)
	if err != nil {
		return nil, &Error{Stage: StageRender, Message: "failed to render resume", Cause: err}
	}
	return e.Export(ctx, html, FileName(doc.PersonalInfo.FullName))
}
