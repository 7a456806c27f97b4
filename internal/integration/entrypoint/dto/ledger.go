// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/rental-ops/backend/internal/application/usecase/ledger"
)

// PeriodResponse represents one bucket of the aggregated time series.
type PeriodResponse struct {
	PeriodKey string `json:"period_key"`
	Label     string `json:"label"`
	Year      int    `json:"year,omitempty"`
	Income    string `json:"income"`
	Expenses  string `json:"expenses"`
	Net       string `json:"net"`
}

// TimeSeriesResponse represents the aggregated chart data.
type TimeSeriesResponse struct {
	Granularity string           `json:"granularity"`
	Periods     []PeriodResponse `json:"periods"`
}

// WindowTotalsResponse represents totals for one roll-up window.
type WindowTotalsResponse struct {
	Gross    string `json:"gross"`
	Expenses string `json:"expenses"`
	Net      string `json:"net"`
}

// PropertySummaryResponse represents the summary-card metrics for one property.
type PropertySummaryResponse struct {
	Property   string               `json:"property"`
	LastMonth  WindowTotalsResponse `json:"last_month"`
	YearToDate WindowTotalsResponse `json:"year_to_date"`
}

// ToTimeSeriesResponse converts a TimeSeries to a TimeSeriesResponse DTO.
func ToTimeSeriesResponse(series *ledger.TimeSeries) TimeSeriesResponse {
	periods := make([]PeriodResponse, len(series.Periods))
	for i, period := range series.Periods {
		periods[i] = PeriodResponse{
			PeriodKey: period.PeriodKey,
			Label:     period.Label,
			Year:      period.Year,
			Income:    period.Income.String(),
			Expenses:  period.Expenses.String(),
			Net:       period.Net.String(),
		}
	}
	return TimeSeriesResponse{
		Granularity: string(series.Granularity),
		Periods:     periods,
	}
}

// ToPropertySummaryResponse converts roll-up metrics to a summary response DTO.
func ToPropertySummaryResponse(property string, metrics ledger.RollupMetrics) PropertySummaryResponse {
	return PropertySummaryResponse{
		Property:   property,
		LastMonth:  toWindowTotalsResponse(metrics.LastMonth),
		YearToDate: toWindowTotalsResponse(metrics.YearToDate),
	}
}

func toWindowTotalsResponse(totals ledger.WindowTotals) WindowTotalsResponse {
	return WindowTotalsResponse{
		Gross:    totals.Gross.String(),
		Expenses: totals.Expenses.String(),
		Net:      totals.Net.String(),
	}
}
