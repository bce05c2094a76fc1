package renderer

import "github.com/etnz/finreport"

// markers of a trend direction.
var markers = map[finreport.Direction]string{
	finreport.Up:   "📈",
	finreport.Down: "📉",
	finreport.Flat: "➡️",
}

// verdicts are the display of an industry comparison.
var verdicts = map[finreport.Verdict]string{
	finreport.Within: "✅ в пределах нормы",
	finreport.Below:  "🔻 ниже нормы",
	finreport.Above:  "🔺 выше нормы",
}

// trendView is the display of a finreport.Trend.
type trendView struct {
	Title     string
	Values    []finreport.Observation
	HasChange bool
	Absolute  float64
	Relative  finreport.Percent
	Marker    string
	Forecast  float64
	Last      float64
	Step      float64 // Forecast - Last
	Periods   int
}

func newTrendView(t finreport.Trend, dict *finreport.Dictionary) trendView {
	v := trendView{
		Title:     dict.Title(t.Item),
		Values:    t.Values,
		HasChange: t.HasChange(),
		Absolute:  t.Absolute(),
		Relative:  t.Relative(),
		Marker:    markers[t.Direction()],
		Periods:   len(t.Values),
	}
	if len(t.Values) > 0 {
		v.Last = t.Values[len(t.Values)-1].Value
	}
	v.Forecast, _ = t.Forecast()
	v.Step = v.Forecast - v.Last
	return v
}

// amountView is a line item value of a period.
type amountView struct {
	Title string
	Value float64
	Known bool
}

// periodView holds the figures and ratios of a period.
type periodView struct {
	Label   string
	Amounts []amountView
	Ratios  []finreport.RatioValue
}

type analysisView struct {
	Trends  []trendView
	Periods []periodView
}

func dictionary(dict *finreport.Dictionary) *finreport.Dictionary {
	if dict == nil {
		return finreport.DefaultDictionary
	}
	return dict
}

func newAnalysis(d *finreport.Dataset, dict *finreport.Dictionary) analysisView {
	dict = dictionary(dict)
	var v analysisView
	for _, t := range finreport.Trends(d, finreport.HeadlineItems...) {
		v.Trends = append(v.Trends, newTrendView(t, dict))
	}
	for _, label := range d.Labels() {
		set := finreport.ComputeRatios(d.Items(label))
		if set.Len() == 0 {
			continue
		}
		v.Periods = append(v.Periods, periodView{Label: label, Ratios: set.Values()})
	}
	return v
}

type liquidityView struct {
	Label        string
	CurrentRatio float64
	CashRatio    float64
	HasCash      bool
	Tier         finreport.Tier
}

func newLiquidity(d *finreport.Dataset) []liquidityView {
	var res []liquidityView
	for _, label := range d.Labels() {
		set := finreport.ComputeRatios(d.Items(label))
		cr, ok := set.Get(finreport.CurrentRatio)
		if !ok {
			continue
		}
		v := liquidityView{Label: label, CurrentRatio: cr, Tier: finreport.LiquidityTier(cr)}
		v.CashRatio, v.HasCash = set.Get(finreport.CashRatio)
		res = append(res, v)
	}
	return res
}

// newFocus selects some line items and ratios of every period.
// Periods with none of them are left out.
func newFocus(d *finreport.Dataset, dict *finreport.Dictionary, items []finreport.LineItem, ratios []finreport.Ratio) []periodView {
	dict = dictionary(dict)
	var defs []finreport.RatioDef
	for _, r := range ratios {
		if def, ok := finreport.LookupRatio(r); ok {
			defs = append(defs, def)
		}
	}
	var res []periodView
	for _, label := range d.Labels() {
		li := d.Items(label)
		p := periodView{Label: label, Ratios: finreport.NewInputs(li).Ratios(defs).Values()}
		for _, item := range items {
			if li.Has(item) {
				p.Amounts = append(p.Amounts, amountView{Title: dict.Title(item), Value: li.Get(item), Known: true})
			}
		}
		if len(p.Amounts) == 0 && len(p.Ratios) == 0 {
			continue
		}
		res = append(res, p)
	}
	return res
}

type comparisonView struct {
	finreport.Comparison
	Title   string
	Percent bool
	Verdict string
}

type benchmarkView struct {
	Industry    finreport.Industry
	Label       string
	Comparisons []comparisonView
}

func newBenchmark(d *finreport.Dataset, ind finreport.Industry) benchmarkView {
	v := benchmarkView{Industry: ind}
	label, items, ok := d.Latest()
	if !ok {
		return v
	}
	v.Label = label
	for _, c := range ind.Compare(finreport.ComputeRatios(items)) {
		def, _ := finreport.LookupRatio(c.Ratio)
		v.Comparisons = append(v.Comparisons, comparisonView{
			Comparison: c,
			Title:      def.Title,
			Percent:    def.Percent,
			Verdict:    verdicts[c.Verdict],
		})
	}
	return v
}

type groupItemView struct {
	Title  string
	Values []amountView // one per period
}

type groupView struct {
	Name  string
	Items []groupItemView
}

func newGroup(d *finreport.Dataset, dict *finreport.Dictionary, g finreport.Group) groupView {
	dict = dictionary(dict)
	v := groupView{Name: g.Name}
	for _, item := range g.Items {
		iv := groupItemView{Title: dict.Title(item)}
		for _, label := range d.Labels() {
			li := d.Items(label)
			iv.Values = append(iv.Values, amountView{Title: label, Value: li.Get(item), Known: li.Has(item)})
		}
		v.Items = append(v.Items, iv)
	}
	return v
}

func newForecast(d *finreport.Dataset, dict *finreport.Dictionary) []trendView {
	dict = dictionary(dict)
	var res []trendView
	for _, t := range finreport.Trends(d, finreport.HeadlineItems...) {
		if !t.HasChange() {
			continue
		}
		res = append(res, newTrendView(t, dict))
	}
	return res
}
