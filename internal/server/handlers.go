package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/jonathan/resume-builder/internal/editor"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/server/middleware"
	"github.com/jonathan/resume-builder/internal/session"
	"github.com/jonathan/resume-builder/internal/suggest"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/validation"
)

// maxBodyBytes bounds request bodies, including uploaded resumes.
const maxBodyBytes = 1 << 20

type sessionHandler func(w http.ResponseWriter, r *http.Request, sess *session.Session)

// withSession resolves the session named by the authenticated token.
func (s *Server) withSession(h sessionHandler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := middleware.GetSessionID(r)
		if err != nil {
			s.errorResponse(w, http.StatusUnauthorized, err.Error())
			return
		}
		sess, ok := s.store.Get(id)
		if !ok {
			s.writeError(w, ErrSessionExpired)
			return
		}
		h(w, r, sess)
	})
}

// decodeBody reads a JSON body into v. An empty body leaves v untouched.
func decodeBody(r *http.Request, v any) error {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		return &ErrValidation{Field: "body", Message: err.Error()}
	}
	if len(data) > maxBodyBytes {
		return &ErrValidation{Field: "body", Message: "request body too large"}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}
	return nil
}

// SessionResponse is returned when a session is created.
type SessionResponse struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expiresAt"`
	Resume    *types.Resume `json:"resume"`
}

// handleCreateSession starts a session, optionally seeded with a resume document in the body.
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil || len(data) > maxBodyBytes {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var doc *types.Resume
	if len(bytes.TrimSpace(data)) > 0 {
		if doc, err = schemas.DecodeResume(data); err != nil {
			s.writeError(w, err)
			return
		}
	}

	sess := s.store.Create(doc)
	token, expires, err := s.tokens.Issue(sess.ID)
	if err != nil {
		s.store.Delete(sess.ID)
		s.errorResponse(w, http.StatusInternalServerError, "failed to issue session token")
		return
	}

	s.setSessionCookie(w, token)
	s.jsonResponse(w, http.StatusCreated, SessionResponse{
		Token:     token,
		ExpiresAt: expires,
		Resume:    sess.Snapshot(),
	})
}

func (s *Server) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.tokens.TTL().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, _ *http.Request, sess *session.Session) {
	s.store.Delete(sess.ID)
	http.SetCookie(w, &http.Cookie{Name: middleware.SessionCookie, Path: "/", MaxAge: -1})
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetResume(w http.ResponseWriter, _ *http.Request, sess *session.Session) {
	s.jsonResponse(w, http.StatusOK, sess.Snapshot())
}

// ValueRequest carries a single scalar value.
type ValueRequest struct {
	Value any `json:"value"`
}

// textValue returns req.Value as a string, or a 400-class error naming field.
func textValue(field string, raw any) (string, error) {
	text, ok := raw.(string)
	if !ok {
		return "", &types.ValueKindError{Field: field, Want: types.KindText, Got: raw}
	}
	return text, nil
}

func (s *Server) handleSetPersonalInfo(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	field, err := types.ParsePersonalInfoField(r.PathValue("field"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	var req ValueRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	value, err := textValue(string(field), req.Value)
	if err != nil {
		s.writeError(w, err)
		return
	}

	_ = sess.Update(func(e *editor.Editor) error {
		e.SetPersonalInfoField(field, value)
		return nil
	})
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSetSummary(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	var req ValueRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	value, err := textValue("summary", req.Value)
	if err != nil {
		s.writeError(w, err)
		return
	}

	_ = sess.Update(func(e *editor.Editor) error {
		e.SetSummary(value)
		return nil
	})
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAddEntity(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	c, err := types.ParseCollection(r.PathValue("collection"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	var id string
	if err := sess.Update(func(e *editor.Editor) error {
		id, err = e.Add(c)
		return err
	}); err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": id})
}

// UpdateRequest names one field of an entity and its new value.
type UpdateRequest struct {
	Field string `json:"field"`
	Value any    `json:"value"`
}

// handleUpdateEntity sets one field. An unknown id is a silent no-op.
func (s *Server) handleUpdateEntity(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	c, err := types.ParseCollection(r.PathValue("collection"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	var req UpdateRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if req.Field == "" {
		s.writeError(w, &ErrValidation{Field: "field", Message: "is required"})
		return
	}

	id := r.PathValue("id")
	if err := sess.Update(func(e *editor.Editor) error {
		_, err := e.Apply(c, id, req.Field, req.Value)
		return err
	}); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleRemoveEntity deletes an entity. An unknown id is a silent no-op.
func (s *Server) handleRemoveEntity(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	c, err := types.ParseCollection(r.PathValue("collection"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	id := r.PathValue("id")
	_ = sess.Update(func(e *editor.Editor) error {
		e.Remove(c, id)
		return nil
	})
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleValidation(w http.ResponseWriter, _ *http.Request, sess *session.Session) {
	s.jsonResponse(w, http.StatusOK, validation.Validate(sess.Snapshot()))
}

func (s *Server) handlePreview(w http.ResponseWriter, _ *http.Request, sess *session.Session) {
	page, err := s.renderer.RenderResume(sess.Snapshot())
	if err != nil {
		log.Printf("[RENDER] preview failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to render preview")
		return
	}
	s.htmlResponse(w, http.StatusOK, page)
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request, sess *session.Session) {
	s.jsonResponse(w, http.StatusOK, sess.Status())
}

func (s *Server) handleSuggestSummary(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	text, err := sess.SuggestSummary(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"summary": text})
}

func (s *Server) handleSuggestJobDescription(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	text, err := sess.SuggestJobDescription(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"description": text})
}

func (s *Server) handleSuggestEducationDescription(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	text, err := sess.SuggestEducationDescription(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"description": text})
}

// SkillsRequest optionally names the job title to suggest skills for.
type SkillsRequest struct {
	JobTitle string `json:"jobTitle"`
}

func (s *Server) handleSuggestSkills(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	var req SkillsRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	got, err := sess.SuggestSkills(r.Context(), strings.TrimSpace(req.JobTitle))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, got)
}

// ImproveRequest selects the passage to rewrite.
type ImproveRequest struct {
	Kind string `json:"kind"`
	ID   string `json:"id,omitempty"`
}

func (s *Server) handleImproveText(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	var req ImproveRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	kind, err := suggest.ParseTextKind(req.Kind)
	if err != nil {
		s.writeError(w, &ErrValidation{Field: "kind", Message: err.Error()})
		return
	}
	if kind != suggest.KindSummary && req.ID == "" {
		s.writeError(w, &ErrValidation{Field: "id", Message: "is required for " + string(kind)})
		return
	}

	text, err := sess.ImproveText(r.Context(), kind, req.ID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"text": text})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	ctx := r.Context()
	if s.exportTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.exportTimeout)
		defer cancel()
	}

	res, err := sess.Export(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Printf("[EXPORT] client went away for session %s", sess.ID)
			return
		}
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.Filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(res.PDF)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(res.PDF); err != nil {
		log.Printf("[EXPORT] failed to write PDF: %v", err)
	}
}
