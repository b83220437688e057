package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"SpreadWatch/internal/domain/models"
	drepo "SpreadWatch/internal/domain/repository"
	"SpreadWatch/internal/service/fred"
	"SpreadWatch/internal/services/spread"
	"SpreadWatch/internal/usecase"
	xhttp "SpreadWatch/pkg/http"
	xlogger "SpreadWatch/pkg/logger"

	"github.com/labstack/echo/v4"
)

// SpreadsEchoHandler serves the presentation layer's JSON API: the
// per-definition overview, full spread reports, and the configured
// definition table.
type SpreadsEchoHandler struct {
	logger  *xlogger.Logger
	monitor *usecase.SpreadMonitor
}

func NewSpreadsEchoHandler(logger *xlogger.Logger, monitor *usecase.SpreadMonitor) *SpreadsEchoHandler {
	return &SpreadsEchoHandler{logger: logger, monitor: monitor}
}

func (h *SpreadsEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/spreads", h.Overview)
	g.GET("/spreads/:id", h.Report)
	g.GET("/definitions", h.Definitions)
	g.GET("/health", h.Health)
}

// Overview returns the summary card for every definition. Definitions
// whose data could not be loaded report unavailable; the rest render.
func (h *SpreadsEchoHandler) Overview(c echo.Context) error {
	req := &models.RangeRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	w, appErr := resolveWindow(req)
	if appErr != nil {
		return xhttp.AppErrorResponse(c, appErr)
	}

	overview := h.monitor.Overview(c.Request().Context(), w)
	return xhttp.SuccessResponse(c, overview)
}

// Report returns the full report for one definition: spread series, both
// component legs, summary statistics, classification, and rule table.
func (h *SpreadsEchoHandler) Report(c echo.Context) error {
	req := &models.RangeRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	w, appErr := resolveWindow(req)
	if appErr != nil {
		return xhttp.AppErrorResponse(c, appErr)
	}

	report, err := h.monitor.Report(c.Request().Context(), c.Param("id"), w)
	if err != nil {
		return h.domainError(c, err)
	}
	return xhttp.SuccessResponse(c, report)
}

// Definitions returns the validated spread definition table.
func (h *SpreadsEchoHandler) Definitions(c echo.Context) error {
	defs := h.monitor.Registry().All()
	views := make([]models.DefinitionView, 0, len(defs))
	for _, d := range defs {
		views = append(views, d.View())
	}
	return xhttp.SuccessResponse(c, views)
}

// Health reports liveness and the number of configured definitions.
func (h *SpreadsEchoHandler) Health(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]interface{}{
		"status":      "ok",
		"definitions": h.monitor.Registry().Len(),
	})
}

// resolveWindow turns the validated request into a date window. An
// explicit start wins over the period preset.
func resolveWindow(req *models.RangeRequest) (drepo.Window, *xhttp.AppError) {
	now := time.Now().UTC()
	if req.Start == "" {
		return drepo.WindowForPeriod(drepo.NormalizePeriod(req.Period), now), nil
	}

	start, ok := xhttp.ParseDate(req.Start)
	if !ok {
		return drepo.Window{}, xhttp.BadRequestError("start must be a YYYY-MM-DD date")
	}
	var end time.Time
	if req.End != "" {
		end, ok = xhttp.ParseDate(req.End)
		if !ok {
			return drepo.Window{}, xhttp.BadRequestError("end must be a YYYY-MM-DD date")
		}
	}
	w := drepo.NewWindow(start, end, now)
	if !w.Valid() {
		return drepo.Window{}, xhttp.BadRequestError("start must not be after end")
	}
	return w, nil
}

// domainError maps the domain error taxonomy onto HTTP statuses.
func (h *SpreadsEchoHandler) domainError(c echo.Context, err error) error {
	var (
		fetchErr     *fred.FetchError
		alignErr     *spread.AlignmentError
		integrityErr *spread.DataIntegrityError
	)
	switch {
	case errors.Is(err, usecase.ErrUnknownDefinition):
		return xhttp.AppErrorResponse(c, xhttp.NotFoundError("spread definition not found"))
	case errors.As(err, &fetchErr):
		h.logger.Error("series fetch failed", xlogger.String("series", fetchErr.SeriesID), xlogger.Error(err))
		appErr := xhttp.NewAppError("ERR_UPSTREAM", "",
			fmt.Sprintf("series %s unavailable", fetchErr.SeriesID), http.StatusBadGateway)
		return xhttp.AppErrorResponse(c, appErr.WithError(err))
	case errors.As(err, &alignErr), errors.Is(err, spread.ErrEmptySeries):
		appErr := xhttp.NewAppError("ERR_INSUFFICIENT_DATA", "",
			"insufficient data for requested range", http.StatusUnprocessableEntity)
		return xhttp.AppErrorResponse(c, appErr.WithError(err))
	case errors.As(err, &integrityErr):
		h.logger.Error("spread computation failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalError("spread computation failed").WithError(err))
	default:
		h.logger.Error("report failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalError("internal error").WithError(err))
	}
}
