// Package rendering renders the resume preview and the application views as HTML.
package rendering

import "fmt"

// TemplateError reports a failure loading or executing one of the embedded views.
// Template is empty when the failure is not tied to a single template.
type TemplateError struct {
	Template string
	Message  string
	Cause    error
}

func (e *TemplateError) Error() string {
	msg := e.Message
	if e.Template != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Template)
	}
	if e.Cause != nil {
		return fmt.Sprintf("rendering: %s: %v", msg, e.Cause)
	}
	return "rendering: " + msg
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}
