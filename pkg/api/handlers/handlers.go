package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/Michel-2503/Kopfrechnen/pkg/api/middleware"
	"github.com/Michel-2503/Kopfrechnen/pkg/log"
	"github.com/Michel-2503/Kopfrechnen/pkg/messages"
	"github.com/Michel-2503/Kopfrechnen/pkg/network"
	"github.com/Michel-2503/Kopfrechnen/pkg/quiz/session"
	"github.com/Michel-2503/Kopfrechnen/pkg/quiz/types"
	"github.com/Michel-2503/Kopfrechnen/pkg/state"
	"github.com/Michel-2503/Kopfrechnen/pkg/version"
	"github.com/gorilla/mux"
)

// maxBodySize bounds request bodies; answers are a few bytes.
const maxBodySize = 4096

// SessionService runs the session operations on behalf of an owner.
type SessionService interface {
	StartSession(ctx context.Context, ownerID string) (*types.SessionState, error)
	Get(ctx context.Context, sessionID string, ownerID string) (*types.SessionState, error)
	SubmitAnswer(ctx context.Context, sessionID string, ownerID string, raw string) (*types.SessionState, error)
	Advance(ctx context.Context, sessionID string, ownerID string) (*types.SessionState, error)
	StartNextLevel(ctx context.Context, sessionID string, ownerID string) (*types.SessionState, error)
	Restart(ctx context.Context, sessionID string, ownerID string) (*types.SessionState, error)
}

func HandleStartSession(sessions SessionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := sessions.StartSession(r.Context(), middleware.OwnerFromContext(r.Context()))
		if err != nil {
			writeError(w, "start session", err)
			return
		}
		writeView(w, http.StatusCreated, s)
	}
}

func HandleGetSession(sessions SessionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := sessions.Get(r.Context(), mux.Vars(r)["sessionID"], middleware.OwnerFromContext(r.Context()))
		if err != nil {
			writeError(w, "get session", err)
			return
		}
		writeView(w, http.StatusOK, s)
	}
}

// AnswerRequestBody is the JSON body of an answer. The answer may be sent
// as a string or as a number.
type AnswerRequestBody struct {
	Answer json.RawMessage `json:"answer"`
}

func HandleSubmitAnswer(sessions SessionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, err := parseAnswer(w, r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s, err := sessions.SubmitAnswer(r.Context(), mux.Vars(r)["sessionID"], middleware.OwnerFromContext(r.Context()), raw)
		if err != nil {
			writeError(w, "submit answer", err)
			return
		}
		writeView(w, http.StatusOK, s)
	}
}

// sessionAction is an operation that needs nothing but the session.
type sessionAction func(ctx context.Context, sessionID string, ownerID string) (*types.SessionState, error)

func handleAction(action string, fn sessionAction) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := fn(r.Context(), mux.Vars(r)["sessionID"], middleware.OwnerFromContext(r.Context()))
		if err != nil {
			writeError(w, action, err)
			return
		}
		writeView(w, http.StatusOK, s)
	}
}

func HandleAdvance(sessions SessionService) http.HandlerFunc {
	return handleAction("advance", sessions.Advance)
}

func HandleStartNextLevel(sessions SessionService) http.HandlerFunc {
	return handleAction("start next level", sessions.StartNextLevel)
}

func HandleRestart(sessions SessionService) http.HandlerFunc {
	return handleAction("restart", sessions.Restart)
}

// HandleSessionEvents streams the session's snapshots over a WebSocket.
func HandleSessionEvents(sessions SessionService, stream *network.StreamServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID := middleware.OwnerFromContext(r.Context())
		// checked before the upgrade so unknown sessions get a plain 404
		s, err := sessions.Get(r.Context(), mux.Vars(r)["sessionID"], ownerID)
		if err != nil {
			writeError(w, "subscribe", err)
			return
		}
		stream.ServeSession(w, r, s.ID, func() (*messages.Message, error) {
			current, err := sessions.Get(r.Context(), s.ID, ownerID)
			if err != nil {
				return nil, err
			}
			return messages.NewSnapshotMessage(messages.NewSessionView(current))
		})
	}
}

// HealthResponseBody is returned by the health endpoint
type HealthResponseBody struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func HandleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponseBody{Status: "ok", Version: version.Get()})
	}
}

func parseAnswer(w http.ResponseWriter, r *http.Request) (string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "application/json" {
		if err := r.ParseForm(); err != nil {
			return "", errors.New("invalid form body")
		}
		return r.PostFormValue("answer"), nil
	}

	body := &AnswerRequestBody{}
	if err := json.NewDecoder(r.Body).Decode(body); err != nil && !errors.Is(err, io.EOF) {
		return "", errors.New("invalid JSON body")
	}
	if len(body.Answer) == 0 || string(body.Answer) == "null" {
		return "", nil
	}
	if body.Answer[0] == '"' {
		var answer string
		if err := json.Unmarshal(body.Answer, &answer); err != nil {
			return "", errors.New("invalid answer")
		}
		return answer, nil
	}
	// numbers are passed through as written
	return strings.TrimSpace(string(body.Answer)), nil
}

func writeView(w http.ResponseWriter, status int, s *types.SessionState) {
	writeJSON(w, status, messages.NewSessionView(s))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to encode response: %v", err)
	}
}

// writeError maps service errors to status codes.
func writeError(w http.ResponseWriter, action string, err error) {
	switch {
	case state.IsNotFound(err):
		http.Error(w, "session not found", http.StatusNotFound)
	case errors.Is(err, session.ErrInvalidTransition):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		log.Error("failed to %s: %v", action, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
