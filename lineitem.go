package finreport

import (
	_ "embed"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v2"
)

// LineItem is the canonical name of a financial figure, like "total assets".
type LineItem string

// Line items read by the ratio engine and the reports.
// The full list is declared in dictionary.yaml.
const (
	NonCurrentAssets   LineItem = "non-current assets"
	Inventory          LineItem = "inventory"
	Receivables        LineItem = "receivables"
	Cash               LineItem = "cash"
	CurrentAssets      LineItem = "current assets"
	TotalAssets        LineItem = "total assets"
	Equity             LineItem = "equity"
	CurrentLiabilities LineItem = "current liabilities"
	TotalLiabilities   LineItem = "total liabilities"
	Revenue            LineItem = "revenue"
	GrossProfit        LineItem = "gross profit"
	ProfitBeforeTax    LineItem = "profit before tax"
	NetProfit          LineItem = "net profit"
)

// Entry associates a line item with the keywords that identify it in a row label.
type Entry struct {
	Key      LineItem `yaml:"key"`
	Title    string   `yaml:"title"`
	Keywords []string `yaml:"keywords"`
}

// Group is a named selection of line items analysed together.
type Group struct {
	Name  string     `yaml:"name"`
	Items []LineItem `yaml:"items"`
}

// Dictionary is the ordered table of line items and their keywords.
//
// The order of Entries is the classification priority: a label matching the
// keywords of several entries is classified as the first one.
type Dictionary struct {
	Entries []Entry `yaml:"items"`
	Groups  []Group `yaml:"groups"`
}

//go:embed dictionary.yaml
var dictionaryYAML []byte

// DefaultDictionary is the dictionary shipped with the module.
var DefaultDictionary = mustParseDictionary(dictionaryYAML)

func mustParseDictionary(data []byte) *Dictionary {
	d, err := parseDictionary(data)
	if err != nil {
		panic(fmt.Sprintf("invalid embedded dictionary: %v", err))
	}
	return d
}

// LoadDictionary reads a dictionary in the YAML format of dictionary.yaml.
func LoadDictionary(r io.Reader) (*Dictionary, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read dictionary: %w", err)
	}
	return parseDictionary(data)
}

func parseDictionary(data []byte) (*Dictionary, error) {
	var d Dictionary
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("cannot parse dictionary: %w", err)
	}
	if err := d.normalize(); err != nil {
		return nil, err
	}
	return &d, nil
}

// normalize lowercases keywords and checks the dictionary invariants.
func (d *Dictionary) normalize() error {
	if len(d.Entries) == 0 {
		return fmt.Errorf("dictionary has no line items")
	}
	seen := make(map[LineItem]bool, len(d.Entries))
	for i := range d.Entries {
		e := &d.Entries[i]
		if e.Key == "" {
			return fmt.Errorf("line item #%d has no key", i+1)
		}
		if seen[e.Key] {
			return fmt.Errorf("line item %q is declared twice", e.Key)
		}
		seen[e.Key] = true
		keywords := e.Keywords[:0]
		for _, k := range e.Keywords {
			k = strings.ToLower(strings.TrimSpace(k))
			if k != "" {
				keywords = append(keywords, k)
			}
		}
		if len(keywords) == 0 {
			return fmt.Errorf("line item %q has no keywords", e.Key)
		}
		e.Keywords = keywords
		if e.Title == "" {
			e.Title = string(e.Key)
		}
	}
	for _, g := range d.Groups {
		for _, item := range g.Items {
			if !seen[item] {
				return fmt.Errorf("group %q refers to unknown line item %q", g.Name, item)
			}
		}
	}
	return nil
}

// Classify returns the first line item having a keyword contained in label.
func (d *Dictionary) Classify(label string) (LineItem, bool) {
	label = strings.ToLower(strings.TrimSpace(label))
	for _, e := range d.Entries {
		for _, k := range e.Keywords {
			if strings.Contains(label, k) {
				return e.Key, true
			}
		}
	}
	return "", false
}

// Title returns the display title of a line item.
func (d *Dictionary) Title(item LineItem) string {
	for _, e := range d.Entries {
		if e.Key == item {
			return e.Title
		}
	}
	return string(item)
}

// Keys returns the line items in declaration order.
func (d *Dictionary) Keys() []LineItem {
	keys := make([]LineItem, 0, len(d.Entries))
	for _, e := range d.Entries {
		keys = append(keys, e.Key)
	}
	return keys
}

// Group returns the group with that name, the match is case-insensitive.
func (d *Dictionary) Group(name string) (Group, error) {
	for _, g := range d.Groups {
		if strings.EqualFold(g.Name, strings.TrimSpace(name)) {
			return g, nil
		}
	}
	return Group{}, fmt.Errorf("%w: %q", ErrUnknownGroup, name)
}
