package finreport

import (
	"slices"
	"strings"
)

// labelColumnKeywords identify the column holding the row labels.
var labelColumnKeywords = []string{"наименование", "показатель"}

// NoiseLabels are row labels of section headers, never classified.
var NoiseLabels = []string{"Актив", "Пассив", "Наименование показателя"}

// Extractor pulls line item values out of a statement table.
type Extractor struct {
	Dictionary *Dictionary // DefaultDictionary when nil
}

// Extract uses the default dictionary to extract the values of periods from t.
func Extract(t *Table, periods []Period) *Dataset {
	return (&Extractor{}).Extract(t, periods)
}

// Extract reads every row of t, classifies its label and stores the value of
// each period column under the line item found.
//
// Without a label column the dataset has an entry for every period but no value.
// Text, blank and zero cells are not reported. When several rows map to the
// same line item, the last one wins.
func (e *Extractor) Extract(t *Table, periods []Period) *Dataset {
	d := NewDataset(periods)

	labelCol := findLabelColumn(t)
	if labelCol < 0 {
		return d
	}
	dict := e.Dictionary
	if dict == nil {
		dict = DefaultDictionary
	}

	for row := 0; row < t.Len(); row++ {
		label := strings.TrimSpace(t.Cell(labelCol, row).String())
		if label == "" || slices.Contains(NoiseLabels, label) {
			continue
		}
		item, ok := dict.Classify(label)
		if !ok {
			continue
		}
		for _, p := range periods {
			v, ok := t.Cell(p.Column, row).Number()
			if !ok {
				continue
			}
			d.Set(p.Label, item, v)
		}
	}
	return d
}

func findLabelColumn(t *Table) int {
	for i, c := range t.Columns {
		name := strings.ToLower(c.Name)
		for _, k := range labelColumnKeywords {
			if strings.Contains(name, k) {
				return i
			}
		}
	}
	return -1
}
