package finreport

import "math"

// Tier is a qualitative bucket of the current ratio.
type Tier struct {
	Name   string
	Title  string
	Marker string
	Min    float64 // lowest current ratio of the tier, inclusive
}

// LiquidityTiers are evaluated in that order, the first tier whose Min is
// reached wins.
var LiquidityTiers = []Tier{
	{Name: "excellent", Title: "Отличная ликвидность", Marker: "✅", Min: 2.0},
	{Name: "normal", Title: "Нормальная ликвидность", Marker: "⚠️", Min: 1.5},
	{Name: "reduced", Title: "Пониженная ликвидность", Marker: "🟡", Min: 1.0},
	{Name: "critical", Title: "Критическая ликвидность", Marker: "❌", Min: math.Inf(-1)},
}

// LiquidityTier returns the tier of a current ratio.
func LiquidityTier(currentRatio float64) Tier {
	for _, t := range LiquidityTiers {
		if currentRatio >= t.Min {
			return t
		}
	}
	return LiquidityTiers[len(LiquidityTiers)-1]
}
