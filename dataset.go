package finreport

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// LineItems holds the values of line items in one period.
//
// Only non-zero values are stored: a zero in the statement and a missing
// figure are both "not reported", ratio derivations rely on that convention.
type LineItems map[LineItem]float64

// Get returns the value of item, 0 when not reported.
func (l LineItems) Get(item LineItem) float64 { return l[item] }

// Has reports whether item was reported.
func (l LineItems) Has(item LineItem) bool {
	_, ok := l[item]
	return ok
}

// Keys returns the reported line items, sorted by name.
func (l LineItems) Keys() []LineItem { return slices.Sorted(maps.Keys(l)) }

// Dataset holds the line items extracted for every period of a statement,
// indexed by period label (dd.mm.yyyy) in chronological order.
type Dataset struct {
	labels []string
	data   map[string]LineItems
}

// NewDataset creates a dataset with an empty entry for each period.
// Periods sharing a label share the same entry.
func NewDataset(periods []Period) *Dataset {
	d := &Dataset{data: make(map[string]LineItems)}
	for _, p := range periods {
		d.add(p.Label)
	}
	return d
}

func (d *Dataset) add(label string) LineItems {
	if items, ok := d.data[label]; ok {
		return items
	}
	items := make(LineItems)
	d.labels = append(d.labels, label)
	d.data[label] = items
	return items
}

// Labels returns the period labels in chronological order.
func (d *Dataset) Labels() []string { return slices.Clone(d.labels) }

// Items returns the line items of a period, nil for an unknown period.
func (d *Dataset) Items(label string) LineItems { return d.data[label] }

// Set stores a value, dropping zero values.
func (d *Dataset) Set(label string, item LineItem, v float64) {
	if v == 0 || !isFinite(v) {
		return
	}
	d.add(label)[item] = v
}

// Len returns the number of periods.
func (d *Dataset) Len() int { return len(d.labels) }

// Count returns the number of values stored across all periods.
func (d *Dataset) Count() int {
	n := 0
	for _, items := range d.data {
		n += len(items)
	}
	return n
}

// IsEmpty reports whether no value has been extracted at all.
func (d *Dataset) IsEmpty() bool { return d.Count() == 0 }

// Latest returns the label and items of the last period having values.
func (d *Dataset) Latest() (string, LineItems, bool) {
	for i := len(d.labels) - 1; i >= 0; i-- {
		if items := d.data[d.labels[i]]; len(items) > 0 {
			return d.labels[i], items, true
		}
	}
	return "", nil, false
}

type jsonDataset struct {
	Periods []string             `json:"periods"`
	Data    map[string]LineItems `json:"data"`
}

func (d *Dataset) MarshalJSON() ([]byte, error) {
	labels := d.labels
	if labels == nil {
		labels = []string{}
	}
	return json.Marshal(jsonDataset{Periods: labels, Data: d.data})
}

func (d *Dataset) UnmarshalJSON(data []byte) error {
	var j jsonDataset
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	res := Dataset{data: make(map[string]LineItems)}
	for _, label := range j.Periods {
		if _, ok := res.data[label]; ok {
			return fmt.Errorf("period %q is listed twice", label)
		}
		items := j.Data[label]
		if items == nil {
			items = make(LineItems)
		}
		res.labels = append(res.labels, label)
		res.data[label] = items
	}
	*d = res
	return nil
}
