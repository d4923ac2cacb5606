// Package v1handler serves the read-mostly v1 status API of the scan service.
package v1handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-faster/jx"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"wifiscan/internal/scanner"
	"wifiscan/pkg/logger"
	"wifiscan/pkg/serrors"
)

// EventCounter reports how many radio events were processed.
type EventCounter interface {
	Processed() uint64
}

// Deps are the services the handler reads from.
type Deps struct {
	Scanner scanner.Scanner
	// Events is optional.
	Events EventCounter
}

type Handler struct {
	deps Deps
}

// New returns a Handler serving the v1 routes from deps.
func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Register mounts the v1 routes on r. r is expected to be a subrouter
// rooted at /v1.
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/schedule", h.GetSchedule).Methods(http.MethodGet)
	r.HandleFunc("/results/background", h.GetBackgroundResults).Methods(http.MethodGet)
	r.HandleFunc("/results/single", h.GetSingleShotResult).Methods(http.MethodGet)
	r.HandleFunc("/scans/single", h.StartSingleShot).Methods(http.MethodPost)
	r.HandleFunc("/hotlist", h.GetHotlist).Methods(http.MethodGet)
	r.HandleFunc("/status", h.GetStatus).Methods(http.MethodGet)
}

// statusOf maps a semantic error kind to an HTTP status code.
func statusOf(err error) (int, serrors.Kind) {
	k := serrors.KindOf(err)
	switch {
	case errors.Is(k, serrors.ErrInvalidArgument):
		return http.StatusBadRequest, k
	case errors.Is(k, serrors.ErrNotFound):
		return http.StatusNotFound, k
	case errors.Is(k, serrors.ErrBusy):
		return http.StatusConflict, k
	default:
		return http.StatusInternalServerError, serrors.ErrInternal
	}
}

// NewError writes err as a JSON error document.
func (h *Handler) NewError(ctx context.Context, w http.ResponseWriter, err error) {
	status, kind := statusOf(err)

	msg := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
		msg = "internal error"
	}

	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("code")
	e.Str(kind.Error())
	e.FieldStart("message")
	e.Str(msg)
	e.ObjEnd()

	writeJSON(w, status, &e)
}

func writeJSON(w http.ResponseWriter, status int, e *jx.Encoder) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(e.Bytes())))
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}

func parseBool(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, serrors.Wrap(serrors.ErrInvalidArgument, err, "invalid %s", name)
	}

	return v, nil
}
