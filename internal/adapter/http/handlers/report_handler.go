package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	response "pdv_xpto/internal/adapter/http/dto/response"
	"pdv_xpto/internal/usecase"
	"pdv_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPeriodQuery = pkg.NewDomainErrorSimple("INVALID_PERIOD", "Invalid report period; expected start and end as YYYY-MM-DD", http.StatusBadRequest)

// ReportHandler serves the dashboard rollups. Periods are inclusive calendar
// dates: start expands to 00:00:00 UTC and end to the last instant of its
// day.

type ReportHandler struct {
	reports usecase.IReportUseCase
}

func NewReportHandler(reports usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{reports: reports}
}

func (h *ReportHandler) DailySales(c *gin.Context) {
	start, end, ok := h.parsePeriod(c)
	if !ok {
		return
	}

	rollup, err := h.reports.DailyRollup(c.Request.Context(), start, end)
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDailySales(rollup))
}

func (h *ReportHandler) TopProducts(c *gin.Context) {
	start, end, ok := h.parsePeriod(c)
	if !ok {
		return
	}

	limit := 0
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(errInvalidPeriodQuery.HTTPStatus, pkg.NewDomainErrorSimple("INVALID_LIMIT", "Invalid limit", http.StatusBadRequest).ToHTTPError())
			return
		}
		limit = parsed
	}

	top, err := h.reports.TopProducts(c.Request.Context(), start, end, limit)
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTopProducts(top))
}

func (h *ReportHandler) PeriodStats(c *gin.Context) {
	start, end, ok := h.parsePeriod(c)
	if !ok {
		return
	}

	stats, err := h.reports.PeriodStats(c.Request.Context(), start, end)
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPeriodStats(stats))
}

func (h *ReportHandler) parsePeriod(c *gin.Context) (time.Time, time.Time, bool) {
	start, err := time.Parse("2006-01-02", strings.TrimSpace(c.Query("start")))
	if err != nil {
		c.JSON(errInvalidPeriodQuery.HTTPStatus, errInvalidPeriodQuery.ToHTTPError())
		return time.Time{}, time.Time{}, false
	}
	end, err := time.Parse("2006-01-02", strings.TrimSpace(c.Query("end")))
	if err != nil {
		c.JSON(errInvalidPeriodQuery.HTTPStatus, errInvalidPeriodQuery.ToHTTPError())
		return time.Time{}, time.Time{}, false
	}

	startOfDay := start.UTC()
	endOfDay := end.UTC().Add(24*time.Hour - time.Nanosecond)
	if endOfDay.Before(startOfDay) {
		c.JSON(errInvalidPeriodQuery.HTTPStatus, errInvalidPeriodQuery.ToHTTPError())
		return time.Time{}, time.Time{}, false
	}
	return startOfDay, endOfDay, true
}

func mapReportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPeriod):
		return pkg.NewDomainErrorSimple("INVALID_PERIOD", "Invalid report period", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
