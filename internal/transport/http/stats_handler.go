package http

import (
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"rkcli/internal/dataprocessing"
	apierrors "rkcli/internal/errors"
	"rkcli/internal/exporter"
)

// StatsHandler serves aggregate statistics over activity exports.
type StatsHandler struct {
	service    StatsService
	exportsDir string
	logger     *slog.Logger
	validate   *validator.Validate
}

// NewStatsHandler creates a new stats handler. exportsDir is the directory
// export filenames are resolved against; requests cannot escape it.
func NewStatsHandler(service StatsService, exportsDir string, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{
		service:    service,
		exportsDir: exportsDir,
		logger:     logger.With(slog.String("handler", "stats")),
		validate:   validator.New(),
	}
}

// StatsRequest carries the validated query parameters of a stats request.
type StatsRequest struct {
	File  string `validate:"required"`
	Start string `validate:"omitempty"`
	End   string `validate:"omitempty"`
}

// StatsResponse is the JSON body of a successful stats request.
type StatsResponse struct {
	Success bool              `json:"success"`
	Stats   exporter.Document `json:"stats"`
}

// GetStats handles GET /api/stats?file=...&start=...&end=...
//
// start and end accept the same date specs as the CLI (2006, 2006-01,
// 2006-01-02, 2006-01-02 15:04:05); start defaults to the epoch and end to
// the request time, both resolved here so the aggregation core never reads
// the clock.
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := StatsRequest{
		File:  r.URL.Query().Get("file"),
		Start: r.URL.Query().Get("start"),
		End:   r.URL.Query().Get("end"),
	}

	if err := h.validate.Struct(req); err != nil {
		render.Render(w, r, apierrors.NewErrorResponse(
			apierrors.ErrValidation("file", "file query parameter is required")))
		return
	}

	start := time.Unix(0, 0).UTC()
	if req.Start != "" {
		t, err := dataprocessing.ParseDateSpec(req.Start)
		if err != nil {
			render.Render(w, r, apierrors.NewErrorResponse(
				apierrors.ErrValidation("start", err.Error())))
			return
		}
		start = t
	}

	end := time.Now().UTC()
	if req.End != "" {
		t, err := dataprocessing.ParseDateSpec(req.End)
		if err != nil {
			render.Render(w, r, apierrors.NewErrorResponse(
				apierrors.ErrValidation("end", err.Error())))
			return
		}
		end = t
	}

	// Resolve within the exports directory only; reject traversal.
	if req.File != filepath.Base(req.File) {
		render.Render(w, r, apierrors.NewErrorResponse(
			apierrors.ErrValidation("file", "must be a bare file name")))
		return
	}
	path := filepath.Join(h.exportsDir, req.File)

	summary, err := h.service.Aggregate(ctx, path, start, end)
	if err != nil {
		h.logger.ErrorContext(ctx, "aggregation failed",
			slog.String("file", req.File),
			slog.String("error", err.Error()))
		render.Render(w, r, apierrors.NewErrorResponse(h.toAPIError(err)))
		return
	}

	render.JSON(w, r, StatsResponse{
		Success: true,
		Stats:   exporter.SummaryDocument(summary),
	})
}

// toAPIError maps aggregation failures to the API error envelope.
func (h *StatsHandler) toAPIError(err error) *apierrors.APIError {
	switch {
	case isResolutionError(err):
		return apierrors.UnresolvedHeaderError(err)
	case isNotFound(err):
		return apierrors.ErrExportNotFound
	default:
		return apierrors.FileSystemError("aggregate", err)
	}
}
