package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"moneta/internal/analytics"
	apperrors "moneta/internal/errors"
	"moneta/internal/services"
)

// AnalyticsHandler handles dashboard, reporting, and export requests.
type AnalyticsHandler struct {
	analyticsService services.AnalyticsServicer
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService services.AnalyticsServicer) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// ReportQuery represents the analytics report query parameters.
type ReportQuery struct {
	Window string `form:"window,default=month" binding:"time_window"`
}

// GetDashboard returns the dashboard overview.
// @Summary     Get dashboard
// @Description Get lifetime totals, savings progress, recent activity, and the last seven days
// @Tags        analytics
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.DashboardStats "Dashboard overview"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard [get]
func (h *AnalyticsHandler) GetDashboard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	stats, err := h.analyticsService.GetDashboard(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetReport returns the windowed analytics report.
// @Summary     Get analytics report
// @Description Get totals, a bucketed time series, and category breakdowns for a window
// @Tags        analytics
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       window query string false "Reporting window (week/month/year, default month)"
// @Success     200 {object} services.AnalyticsReport "Analytics report"
// @Failure     400 {object} ErrorResponse "Invalid window"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics [get]
func (h *AnalyticsHandler) GetReport(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var query ReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "window must be 'week', 'month', or 'year'"))
		return
	}

	report, err := h.analyticsService.GetReport(userID, analytics.Window(query.Window), time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// ExportTransactions streams the full transaction history as a CSV download.
// @Summary     Export transactions
// @Description Download the full transaction history as a CSV file
// @Tags        analytics
// @Accept      json
// @Produce     text/csv
// @Security    BearerAuth
// @Success     200 {string} string "CSV file"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/export [get]
func (h *AnalyticsHandler) ExportTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	// Render to a buffer first so a mid-export failure still produces a
	// clean JSON error instead of a truncated file.
	var buf bytes.Buffer
	if err := h.analyticsService.ExportTransactionsCSV(userID, &buf); err != nil {
		respondWithError(c, err)
		return
	}

	filename := fmt.Sprintf("transactions-%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}
