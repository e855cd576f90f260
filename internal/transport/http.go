package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ErrMethodUnknown indicates a method outside the dispatch surface.
var ErrMethodUnknown = errors.New("unknown method")

// ErrBadParams indicates parameters the method could not accept.
var ErrBadParams = errors.New("invalid params")

// Handler handles RPC method dispatch.
type Handler interface {
	Handle(ctx context.Context, method string, params json.RawMessage) (any, error)
}

// Server wires HTTP handlers.
type Server struct {
	handler Handler
}

// NewServer creates an HTTP router for the feed RPC surface.
func NewServer(handler Handler) *chi.Mux {
	r := chi.NewRouter()

	srv := &Server{handler: handler}

	r.Post("/rpc", srv.handleRPC)
	r.Get("/health", srv.handleHealth)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleRPC(w http.ResponseWriter, r *http.Request) {
	req, err := ParseRequest(r.Body)
	if err != nil {
		WriteError(w, nil, ErrInvalidReq, "invalid request", nil)
		return
	}

	result, err := s.handler.Handle(r.Context(), req.Method, req.Params)
	if err != nil {
		switch {
		case errors.Is(err, ErrMethodUnknown):
			WriteError(w, req.ID, ErrMethodNotFound, err.Error(), nil)
		case errors.Is(err, ErrBadParams):
			WriteError(w, req.ID, ErrInvalidParams, err.Error(), nil)
		default:
			WriteError(w, req.ID, ErrInternal, err.Error(), nil)
		}
		return
	}

	WriteResult(w, req.ID, result)
}
