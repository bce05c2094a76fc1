package finreport

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"
)

// Verdict positions a ratio against an industry range.
type Verdict int

const (
	Within Verdict = iota
	Below
	Above
)

func (v Verdict) String() string {
	switch v {
	case Below:
		return "below"
	case Above:
		return "above"
	default:
		return "within"
	}
}

// Standard is the normal range of a ratio in an industry.
type Standard struct {
	Ratio    Ratio
	Min, Max float64
}

// Assess compares v with the range, bounds included.
func (s Standard) Assess(v float64) Verdict {
	switch {
	case v < s.Min:
		return Below
	case v > s.Max:
		return Above
	default:
		return Within
	}
}

// Industry holds the standard ranges of an industry, in ratio table order.
type Industry struct {
	ID        string
	Name      string
	Standards []Standard
}

//go:embed standards.yaml
var standardsYAML []byte

// Industries are the industries with known standards.
var Industries = mustParseIndustries(standardsYAML)

type yamlIndustry struct {
	ID        string              `yaml:"id"`
	Name      string              `yaml:"name"`
	Standards map[Ratio][]float64 `yaml:"standards"`
}

func mustParseIndustries(data []byte) []Industry {
	var doc struct {
		Industries []yamlIndustry `yaml:"industries"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		panic(fmt.Sprintf("invalid embedded standards: %v", err))
	}
	res := make([]Industry, 0, len(doc.Industries))
	for _, y := range doc.Industries {
		ind := Industry{ID: y.ID, Name: y.Name}
		for _, def := range Ratios {
			bounds, ok := y.Standards[def.Ratio]
			if !ok {
				continue
			}
			if len(bounds) != 2 || bounds[0] > bounds[1] {
				panic(fmt.Sprintf("invalid embedded standards: %s %s range %v", y.ID, def.Ratio, bounds))
			}
			ind.Standards = append(ind.Standards, Standard{Ratio: def.Ratio, Min: bounds[0], Max: bounds[1]})
		}
		res = append(res, ind)
	}
	return res
}

// LookupIndustry returns the industry with that id.
func LookupIndustry(id string) (Industry, error) {
	for _, ind := range Industries {
		if ind.ID == strings.ToLower(strings.TrimSpace(id)) {
			return ind, nil
		}
	}
	return Industry{}, fmt.Errorf("%w: %q", ErrUnknownIndustry, id)
}

// Comparison is a ratio assessed against an industry standard.
type Comparison struct {
	Standard
	Value   float64
	Verdict Verdict
}

// Compare assesses the computed ratios of set against the industry. Ratios
// that were not computed are left out.
func (ind Industry) Compare(set *RatioSet) []Comparison {
	var res []Comparison
	for _, s := range ind.Standards {
		v, ok := set.Get(s.Ratio)
		if !ok {
			continue
		}
		res = append(res, Comparison{Standard: s, Value: v, Verdict: s.Assess(v)})
	}
	return res
}
