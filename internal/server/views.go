package server

import (
	"log"
	"net/http"

	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/server/middleware"
	"github.com/jonathan/resume-builder/internal/session"
	"github.com/jonathan/resume-builder/internal/validation"
)

func (s *Server) handleLanding(w http.ResponseWriter, _ *http.Request) {
	page, err := s.renderer.RenderLanding()
	if err != nil {
		log.Printf("[RENDER] landing failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to render page")
		return
	}
	s.htmlResponse(w, http.StatusOK, page)
}

// handleEditor renders the editor for the caller's session, starting a new one
// when the request carries no usable token.
func (s *Server) handleEditor(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionFromRequest(r)
	if sess == nil {
		sess = s.store.Create(nil)
		token, _, err := s.tokens.Issue(sess.ID)
		if err != nil {
			s.store.Delete(sess.ID)
			s.errorResponse(w, http.StatusInternalServerError, "failed to issue session token")
			return
		}
		s.setSessionCookie(w, token)
	}

	doc := sess.Snapshot()
	view := rendering.NewEditorView(doc, validation.Validate(doc), statusLine(sess.Status()))
	page, err := s.renderer.RenderEditor(view)
	if err != nil {
		log.Printf("[RENDER] editor failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to render page")
		return
	}
	s.htmlResponse(w, http.StatusOK, page)
}

func (s *Server) sessionFromRequest(r *http.Request) *session.Session {
	token := middleware.Token(r)
	if token == "" {
		return nil
	}
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil
	}
	sess, ok := s.store.Get(claims.GetSessionID())
	if !ok {
		return nil
	}
	return sess
}

// statusLine summarizes a session status for display.
func statusLine(st session.Status) string {
	switch {
	case st.LastError != "":
		return "Last request failed: " + st.LastError
	case st.Exporting:
		return "Exporting PDF..."
	case len(st.Pending) > 0:
		return "Generating suggestions..."
	}
	return ""
}
