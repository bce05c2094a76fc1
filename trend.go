package finreport

import "math"

// HeadlineItems are the indicators followed in trend reports.
var HeadlineItems = []LineItem{Revenue, NetProfit, TotalAssets, Equity}

// Direction is the sign of a change.
type Direction int

const (
	Flat Direction = iota
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "flat"
	}
}

// Observation is the value of a line item in a period.
type Observation struct {
	Period string
	Value  float64
}

// Trend is the evolution of a line item across the periods where it is reported.
type Trend struct {
	Item   LineItem
	Values []Observation
}

// NewTrend collects the values of item in chronological order.
func NewTrend(d *Dataset, item LineItem) Trend {
	t := Trend{Item: item}
	for _, label := range d.Labels() {
		items := d.Items(label)
		if items.Has(item) {
			t.Values = append(t.Values, Observation{Period: label, Value: items.Get(item)})
		}
	}
	return t
}

// Trends returns the trends of items that are reported at least once.
func Trends(d *Dataset, items ...LineItem) []Trend {
	var res []Trend
	for _, item := range items {
		if t := NewTrend(d, item); len(t.Values) > 0 {
			res = append(res, t)
		}
	}
	return res
}

// HasChange reports whether there are at least two values to compare.
func (t Trend) HasChange() bool { return len(t.Values) >= 2 }

func (t Trend) first() float64 { return t.Values[0].Value }
func (t Trend) last() float64  { return t.Values[len(t.Values)-1].Value }

// Absolute returns the change between the first and the last value.
func (t Trend) Absolute() float64 {
	if !t.HasChange() {
		return 0
	}
	return t.last() - t.first()
}

// Relative returns the change between the first and the last value in
// percent of the first value, 0 when the first value is 0.
func (t Trend) Relative() Percent {
	if !t.HasChange() || t.first() == 0 {
		return 0
	}
	return Percent((t.last() - t.first()) / t.first() * 100)
}

// Direction returns the sign of the relative change.
func (t Trend) Direction() Direction {
	switch r := t.Relative(); {
	case r > 0:
		return Up
	case r < 0:
		return Down
	default:
		return Flat
	}
}

// Forecast projects the value of the next period. When the first and last
// values are positive it compounds their average growth per period, otherwise
// it extends the average step linearly.
func (t Trend) Forecast() (float64, bool) {
	if !t.HasChange() {
		return 0, false
	}
	steps := float64(len(t.Values) - 1)
	first, last := t.first(), t.last()
	if first > 0 && last > 0 {
		growth := math.Pow(last/first, 1/steps)
		return last * growth, true
	}
	return last + (last-first)/steps, true
}
