// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ledgerly/backend/internal/application/usecase/dashboard"
	"github.com/ledgerly/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles the derived reporting endpoints.
type DashboardController struct {
	metricsUseCase   *dashboard.GetMetricsUseCase
	dailyUseCase     *dashboard.DailySeriesUseCase
	monthlyUseCase   *dashboard.MonthlySeriesUseCase
	breakdownUseCase *dashboard.CategoryBreakdownUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	metricsUseCase *dashboard.GetMetricsUseCase,
	dailyUseCase *dashboard.DailySeriesUseCase,
	monthlyUseCase *dashboard.MonthlySeriesUseCase,
	breakdownUseCase *dashboard.CategoryBreakdownUseCase,
) *DashboardController {
	return &DashboardController{
		metricsUseCase:   metricsUseCase,
		dailyUseCase:     dailyUseCase,
		monthlyUseCase:   monthlyUseCase,
		breakdownUseCase: breakdownUseCase,
	}
}

// Metrics handles GET /dashboard/metrics requests.
func (c *DashboardController) Metrics(ctx *gin.Context) {
	output, err := c.metricsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute metrics",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMetricListResponse(output.Metrics))
}

// Daily handles GET /dashboard/daily requests. The optional "days" query
// parameter sets the window length.
func (c *DashboardController) Daily(ctx *gin.Context) {
	days := 0
	if daysParam := ctx.Query("days"); daysParam != "" {
		parsed, err := strconv.Atoi(daysParam)
		if err != nil || parsed <= 0 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Query parameter 'days' must be a positive integer",
			})
			return
		}
		days = parsed
	}

	output, err := c.dailyUseCase.Execute(ctx.Request.Context(), dashboard.DailySeriesInput{Days: days})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute daily series",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDailySeriesResponse(output.Points))
}

// Monthly handles GET /dashboard/monthly requests.
func (c *DashboardController) Monthly(ctx *gin.Context) {
	output, err := c.monthlyUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute monthly series",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlySeriesResponse(output.Points))
}

// Categories handles GET /dashboard/categories requests.
func (c *DashboardController) Categories(ctx *gin.Context) {
	output, err := c.breakdownUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute category breakdown",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryBreakdownResponse(output.Slices))
}
