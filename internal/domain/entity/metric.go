// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/shopspring/decimal"

// Trend indicates the direction of a metric relative to its recent history.
type Trend string

const (
	TrendUp      Trend = "up"
	TrendDown    Trend = "down"
	TrendNeutral Trend = "neutral"
)

// Metric is a derived summary figure for the dashboard. Metrics are never
// persisted: they are recomputed whenever accounts or transactions change.
type Metric struct {
	Label         string
	Value         decimal.Decimal
	ChangePercent decimal.Decimal
	Trend         Trend
	History       []decimal.Decimal // Sparkline data
}
