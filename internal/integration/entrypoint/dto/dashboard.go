// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ledgerly/backend/internal/application/usecase/dashboard"
	"github.com/ledgerly/backend/internal/domain/entity"
)

// MetricResponse represents one summary metric in API responses.
type MetricResponse struct {
	Label         string            `json:"label"`
	Value         decimal.Decimal   `json:"value"`
	ChangePercent decimal.Decimal   `json:"changePercent"`
	Trend         string            `json:"trend"`
	History       []decimal.Decimal `json:"history"`
}

// MetricListResponse represents the ordered dashboard metrics.
type MetricListResponse struct {
	Metrics []MetricResponse `json:"metrics"`
}

// DailyPointResponse represents one day's bucket in the cash flow series.
type DailyPointResponse struct {
	Date    string          `json:"date"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// DailySeriesResponse represents the daily cash flow series, oldest first.
type DailySeriesResponse struct {
	Points []DailyPointResponse `json:"points"`
}

// MonthlyPointResponse represents one month's bucket in the series.
type MonthlyPointResponse struct {
	Month   string          `json:"month"` // YYYY-MM
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// MonthlySeriesResponse represents the trailing monthly series, oldest first.
type MonthlySeriesResponse struct {
	Points []MonthlyPointResponse `json:"points"`
}

// CategorySliceResponse represents one category's share of expense spending.
type CategorySliceResponse struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// CategoryBreakdownResponse represents expense totals by category, largest first.
type CategoryBreakdownResponse struct {
	Slices []CategorySliceResponse `json:"slices"`
}

// ToMetricListResponse converts metric entities to a list response.
func ToMetricListResponse(metrics []*entity.Metric) MetricListResponse {
	responses := make([]MetricResponse, len(metrics))
	for i, m := range metrics {
		responses[i] = MetricResponse{
			Label:         m.Label,
			Value:         m.Value,
			ChangePercent: m.ChangePercent,
			Trend:         string(m.Trend),
			History:       m.History,
		}
	}
	return MetricListResponse{Metrics: responses}
}

// ToDailySeriesResponse converts daily series points to a response DTO.
func ToDailySeriesResponse(points []*dashboard.DailyPoint) DailySeriesResponse {
	responses := make([]DailyPointResponse, len(points))
	for i, p := range points {
		responses[i] = DailyPointResponse{
			Date:    p.Date.Format(entity.DateLayout),
			Income:  p.Income,
			Expense: p.Expense,
		}
	}
	return DailySeriesResponse{Points: responses}
}

// ToMonthlySeriesResponse converts monthly series points to a response DTO.
func ToMonthlySeriesResponse(points []*dashboard.MonthlyPoint) MonthlySeriesResponse {
	responses := make([]MonthlyPointResponse, len(points))
	for i, p := range points {
		responses[i] = MonthlyPointResponse{
			Month:   fmt.Sprintf("%04d-%02d", p.Year, int(p.Month)),
			Income:  p.Income,
			Expense: p.Expense,
		}
	}
	return MonthlySeriesResponse{Points: responses}
}

// ToCategoryBreakdownResponse converts category slices to a response DTO.
func ToCategoryBreakdownResponse(slices []*dashboard.CategorySlice) CategoryBreakdownResponse {
	responses := make([]CategorySliceResponse, len(slices))
	for i, s := range slices {
		responses[i] = CategorySliceResponse{Name: s.Name, Value: s.Value}
	}
	return CategoryBreakdownResponse{Slices: responses}
}
