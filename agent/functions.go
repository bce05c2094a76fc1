package agent

import (
	"context"
	"fmt"
	"slices"

	"github.com/etnz/finreport"
	"github.com/etnz/finreport/docs"
	"github.com/etnz/finreport/renderer"
	"google.golang.org/genai"
)

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

// newFunc declares a function computing its output from the arguments.
func newFunc(decl *genai.FunctionDeclaration, f func(args map[string]any) (any, error)) *Func {
	return &Func{
		Decl: decl,
		Func: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
			out, err := f(args)
			if err != nil {
				return errorResponse(id, decl.Name, err)
			}
			return outputResponse(id, decl.Name, out)
		},
	}
}

var periodSchema = &genai.Schema{
	Type:        genai.TypeString,
	Description: "The period label as returned by list_periods, like 31.12.2023.",
}

// reportKinds are the reports get_report can render.
var reportKinds = []string{"analysis", "liquidity", "profitability", "stability", "forecast", "benchmark"}

func analystFunctions(s *finreport.Session) []Function {
	dict := finreport.DefaultDictionary
	if s.Extractor != nil && s.Extractor.Dictionary != nil {
		dict = s.Extractor.Dictionary
	}

	// period returns the line items of the period named in args.
	period := func(args map[string]any) (finreport.LineItems, error) {
		d, err := s.Data()
		if err != nil {
			return nil, err
		}
		label, err := stringArg(args, "period")
		if err != nil {
			return nil, err
		}
		if !slices.Contains(d.Labels(), label) {
			return nil, fmt.Errorf("unknown period %q, known periods are %v", label, d.Labels())
		}
		return d.Items(label), nil
	}

	return []Function{
		newFunc(&genai.FunctionDeclaration{
			Name:        "list_periods",
			Description: "Returns the name of the loaded file and the labels of its reporting periods, in chronological order.",
		}, func(map[string]any) (any, error) {
			d, err := s.Data()
			if err != nil {
				return nil, err
			}
			return map[string]any{"file": s.File, "periods": d.Labels()}, nil
		}),

		newFunc(&genai.FunctionDeclaration{
			Name:        "get_line_items",
			Description: "Returns the line items reported in a period: key, Russian title and value. Items not reported are absent.",
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{"period": periodSchema},
				Required:   []string{"period"},
			},
		}, func(args map[string]any) (any, error) {
			items, err := period(args)
			if err != nil {
				return nil, err
			}
			var res []map[string]any
			for _, item := range dict.Keys() {
				if items.Has(item) {
					res = append(res, map[string]any{"item": string(item), "title": dict.Title(item), "value": items.Get(item)})
				}
			}
			return res, nil
		}),

		newFunc(&genai.FunctionDeclaration{
			Name:        "get_ratios",
			Description: "Returns the financial ratios of a period. Percent ratios (roa, roe, ros) are expressed in percent.",
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{"period": periodSchema},
				Required:   []string{"period"},
			},
		}, func(args map[string]any) (any, error) {
			items, err := period(args)
			if err != nil {
				return nil, err
			}
			set := finreport.ComputeRatios(items)
			var res []map[string]any
			for _, r := range set.Values() {
				res = append(res, map[string]any{"ratio": string(r.Ratio), "title": r.Title, "percent": r.Percent, "value": r.Value})
			}
			return res, nil
		}),

		newFunc(&genai.FunctionDeclaration{
			Name:        "get_report",
			Description: "Returns a markdown report of the loaded statements.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"kind": {
						Type:        genai.TypeString,
						Description: "The kind of report.",
						Enum:        reportKinds,
					},
					"industry": {
						Type:        genai.TypeString,
						Description: "For the benchmark report, the industry to compare with: retail, manufacturing or services.",
					},
				},
				Required: []string{"kind"},
			},
		}, func(args map[string]any) (any, error) {
			d, err := s.Data()
			if err != nil {
				return nil, err
			}
			kind, err := stringArg(args, "kind")
			if err != nil {
				return nil, err
			}
			switch kind {
			case "analysis":
				return renderer.Analysis(d, dict), nil
			case "liquidity":
				return renderer.Liquidity(d), nil
			case "profitability":
				return renderer.Profitability(d, dict), nil
			case "stability":
				return renderer.Stability(d, dict), nil
			case "forecast":
				return renderer.Forecast(d, dict), nil
			case "benchmark":
				id, err := stringArg(args, "industry")
				if err != nil {
					return nil, err
				}
				ind, err := finreport.LookupIndustry(id)
				if err != nil {
					return nil, err
				}
				return renderer.Benchmark(d, ind), nil
			}
			return nil, fmt.Errorf("unknown report kind %q, use one of %v", kind, reportKinds)
		}),

		newFunc(&genai.FunctionDeclaration{
			Name:        "get_documentation",
			Description: "Returns the user documentation on a topic: 'ratios' for the ratio definitions, 'file-format' for the expected spreadsheet layout.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"topic": {Type: genai.TypeString, Description: "The documentation topic."},
				},
				Required: []string{"topic"},
			},
		}, func(args map[string]any) (any, error) {
			topic, err := stringArg(args, "topic")
			if err != nil {
				return nil, err
			}
			return docs.GetTopic(topic)
		}),
	}
}
