package v1handler

import (
	"context"
	"net/http"

	"github.com/go-faster/jx"
	"go.uber.org/zap"

	"wifiscan/internal/executor"
	"wifiscan/pkg/domain"
	"wifiscan/pkg/logger"
	"wifiscan/pkg/serrors"
)

// GetSchedule writes the installed schedule.
func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	s, err := h.deps.Scanner.Schedule(r.Context())
	if err != nil {
		h.NewError(r.Context(), w, err)

		return
	}

	var e jx.Encoder
	encodeSchedule(&e, s)
	writeJSON(w, http.StatusOK, &e)
}

// GetBackgroundResults writes the buffered background scan generations,
// clearing the buffer when flush is set.
func (h *Handler) GetBackgroundResults(w http.ResponseWriter, r *http.Request) {
	flush, err := parseBool(r, "flush")
	if err != nil {
		h.NewError(r.Context(), w, err)

		return
	}

	data := h.deps.Scanner.BufferedBackgroundResults(r.Context(), flush)

	var e jx.Encoder
	e.ArrStart()
	for _, d := range data {
		encodeScanData(&e, d)
	}
	e.ArrEnd()
	writeJSON(w, http.StatusOK, &e)
}

// GetSingleShotResult writes the outcome of the latest completed single-shot scan.
func (h *Handler) GetSingleShotResult(w http.ResponseWriter, r *http.Request) {
	data, err := h.deps.Scanner.LatestSingleShotResult(r.Context())
	if err != nil {
		h.NewError(r.Context(), w, err)

		return
	}

	var e jx.Encoder
	encodeScanData(&e, data)
	writeJSON(w, http.StatusOK, &e)
}

// StartSingleShot requests a single-shot scan of the given band. The
// result is fetched later with GetSingleShotResult.
func (h *Handler) StartSingleShot(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("band")
	if name == "" {
		name = domain.BandBoth.String()
	}

	band, err := domain.ParseBand(name)
	if err != nil {
		h.NewError(r.Context(), w, serrors.Wrap(serrors.ErrInvalidArgument, err, "invalid band"))

		return
	}

	settings := executor.SingleShotSettings{
		Channels:     domain.ChannelSpec{Band: band},
		ReportEvents: domain.ReportAfterEachScan,
	}

	// the request context ends with the response, the scan outlives it
	ctx := context.WithoutCancel(r.Context())
	if err = h.deps.Scanner.StartSingleShot(ctx, settings, &singleShotLogger{ctx: ctx}); err != nil {
		h.NewError(r.Context(), w, err)

		return
	}

	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("band")
	e.Str(band.String())
	e.FieldStart("status")
	e.Str("started")
	e.ObjEnd()
	writeJSON(w, http.StatusAccepted, &e)
}

// GetHotlist writes the found and lost sets reported the last time each
// event fired. Transitions held back by the minimum event count are not included.
func (h *Handler) GetHotlist(w http.ResponseWriter, r *http.Request) {
	found, lost := h.deps.Scanner.HotlistResults(r.Context())

	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("found")
	encodeResults(&e, found)
	e.FieldStart("lost")
	encodeResults(&e, lost)
	e.ObjEnd()
	writeJSON(w, http.StatusOK, &e)
}

// GetStatus writes the background lifecycle state, whether a scan is in
// flight and the number of radio events processed.
func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	status := h.deps.Scanner.Status(r.Context())

	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("state")
	e.Str(status.State)
	e.FieldStart("busy")
	e.Bool(status.Busy)
	e.FieldStart("buckets")
	e.Int(status.Buckets)
	if h.deps.Events != nil {
		e.FieldStart("radioEvents")
		e.UInt64(h.deps.Events.Processed())
	}
	e.ObjEnd()
	writeJSON(w, http.StatusOK, &e)
}

// singleShotLogger records single-shot outcomes triggered over the API.
type singleShotLogger struct {
	ctx context.Context //nolint: containedctx
}

func (l *singleShotLogger) OnFullResult(domain.ScanResult) {}

func (l *singleShotLogger) OnResultsAvailable(data domain.ScanData) {
	logger.Info(l.ctx, "single-shot scan completed",
		zap.Int("scan_id", data.ID), zap.Int("results", len(data.Results)))
}

func (l *singleShotLogger) OnFailure(err error) {
	logger.Warn(l.ctx, "single-shot scan failed", zap.Error(err))
}
