package finreport

import (
	"errors"
	"fmt"
)

// Ratio is the name of a financial ratio.
type Ratio string

const (
	CurrentRatio  Ratio = "current_ratio"
	CashRatio     Ratio = "cash_ratio"
	ROA           Ratio = "roa"
	ROE           Ratio = "roe"
	ROS           Ratio = "ros"
	Autonomy      Ratio = "autonomy"
	AssetTurnover Ratio = "asset_turnover"
	DebtToEquity  Ratio = "debt_to_equity"
)

// Inputs are the figures ratios are computed from. Missing figures are 0.
type Inputs struct {
	TotalAssets        float64
	CurrentAssets      float64
	Cash               float64
	Receivables        float64
	Inventory          float64
	Equity             float64
	CurrentLiabilities float64
	TotalLiabilities   float64
	Revenue            float64
	NetProfit          float64
}

// NewInputs reads the ratio inputs from a period's line items.
// Missing current assets are derived from cash, receivables and inventory.
func NewInputs(items LineItems) Inputs {
	in := Inputs{
		TotalAssets:        items.Get(TotalAssets),
		CurrentAssets:      items.Get(CurrentAssets),
		Cash:               items.Get(Cash),
		Receivables:        items.Get(Receivables),
		Inventory:          items.Get(Inventory),
		Equity:             items.Get(Equity),
		CurrentLiabilities: items.Get(CurrentLiabilities),
		TotalLiabilities:   items.Get(TotalLiabilities),
		Revenue:            items.Get(Revenue),
		NetProfit:          items.Get(NetProfit),
	}
	if in.CurrentAssets == 0 {
		in.CurrentAssets = in.Cash + in.Receivables + in.Inventory
	}
	return in
}

// RatioDef defines how a ratio is computed. The ratio is only computed when
// Denominator is strictly positive.
type RatioDef struct {
	Ratio       Ratio
	Title       string
	Percent     bool // the ratio is expressed in percent
	Numerator   func(Inputs) float64
	Denominator func(Inputs) float64
}

// Ratios is the table of ratios, in report order.
var Ratios = []RatioDef{
	{CurrentRatio, "Коэффициент текущей ликвидности", false,
		func(in Inputs) float64 { return in.CurrentAssets },
		func(in Inputs) float64 { return in.CurrentLiabilities }},
	{CashRatio, "Коэффициент абсолютной ликвидности", false,
		func(in Inputs) float64 { return in.Cash },
		func(in Inputs) float64 { return in.CurrentLiabilities }},
	{ROA, "Рентабельность активов (ROA)", true,
		func(in Inputs) float64 { return in.NetProfit },
		func(in Inputs) float64 { return in.TotalAssets }},
	{ROE, "Рентабельность капитала (ROE)", true,
		func(in Inputs) float64 { return in.NetProfit },
		func(in Inputs) float64 { return in.Equity }},
	{ROS, "Рентабельность продаж (ROS)", true,
		func(in Inputs) float64 { return in.NetProfit },
		func(in Inputs) float64 { return in.Revenue }},
	{Autonomy, "Коэффициент автономии", false,
		func(in Inputs) float64 { return in.Equity },
		func(in Inputs) float64 { return in.TotalAssets }},
	{AssetTurnover, "Оборачиваемость активов", false,
		func(in Inputs) float64 { return in.Revenue },
		func(in Inputs) float64 { return in.TotalAssets }},
	{DebtToEquity, "Соотношение заемного и собственного капитала", false,
		func(in Inputs) float64 { return in.TotalLiabilities },
		func(in Inputs) float64 { return in.Equity }},
}

// LookupRatio returns the definition of r.
func LookupRatio(r Ratio) (RatioDef, bool) {
	for _, def := range Ratios {
		if def.Ratio == r {
			return def, true
		}
	}
	return RatioDef{}, false
}

// errNonFinite is recorded for a ratio whose value is not a finite number.
var errNonFinite = errors.New("ratio is not a finite number")

// RatioValue is a computed ratio.
type RatioValue struct {
	RatioDef
	Value float64
}

// RatioSet accumulates the ratios computed for a period.
// It keeps those that succeeded, in table order, and the errors of those that failed.
type RatioSet struct {
	values []RatioValue
	failed map[Ratio]error
}

// NewRatioSet returns an empty set.
func NewRatioSet() *RatioSet { return &RatioSet{failed: make(map[Ratio]error)} }

// Add records a computed ratio.
func (s *RatioSet) Add(def RatioDef, v float64) {
	s.values = append(s.values, RatioValue{RatioDef: def, Value: v})
}

// Fail records that a ratio could not be computed.
func (s *RatioSet) Fail(r Ratio, err error) { s.failed[r] = err }

// Get returns the value of r, if it was computed.
func (s *RatioSet) Get(r Ratio) (float64, bool) {
	for _, v := range s.values {
		if v.Ratio == r {
			return v.Value, true
		}
	}
	return 0, false
}

// Values returns the computed ratios in table order.
func (s *RatioSet) Values() []RatioValue { return s.values }

// Len returns the number of computed ratios.
func (s *RatioSet) Len() int { return len(s.values) }

// Failed returns the errors of ratios that could not be computed.
func (s *RatioSet) Failed() map[Ratio]error { return s.failed }

// ComputeRatios computes the ratios of a period.
//
// A ratio whose denominator is not strictly positive is omitted. A ratio that
// fails is recorded in the set's failures and the others are still computed.
func ComputeRatios(items LineItems) *RatioSet {
	return NewInputs(items).Ratios(Ratios)
}

// Ratios computes defs over the inputs.
func (in Inputs) Ratios(defs []RatioDef) *RatioSet {
	set := NewRatioSet()
	for _, def := range defs {
		in.compute(set, def)
	}
	return set
}

func (in Inputs) compute(set *RatioSet, def RatioDef) {
	defer func() {
		if r := recover(); r != nil {
			set.Fail(def.Ratio, fmt.Errorf("computing %s: %v", def.Ratio, r))
		}
	}()
	den := def.Denominator(in)
	if !(den > 0) {
		return
	}
	v := def.Numerator(in) / den
	if def.Percent {
		v *= 100
	}
	if !isFinite(v) {
		set.Fail(def.Ratio, fmt.Errorf("computing %s: %w", def.Ratio, errNonFinite))
		return
	}
	set.Add(def, v)
}
