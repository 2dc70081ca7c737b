package item

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Column names as they appear in the input header row.
const (
	ColName     = "Jméno"
	ColLegend   = "Legenda"
	ColMechanic = "Mechanika"
	ColInSet    = "InSet"
	ColSet      = "Set"
	ColSetCount = "SetPocet"
)

// RequiredColumns lists the header columns a magical-item CSV must carry.
var RequiredColumns = []string{ColName, ColLegend, ColMechanic, ColInSet, ColSet, ColSetCount}

// Item is one input row, immutable once read.
type Item struct {
	Name     string
	Legend   string
	Mechanic string
	InSet    bool
	Set      string
	SetCount string
}

// LoadCSV reads all rows from a header-indexed CSV file. Column order is
// free; a missing column yields empty fields (validate reports it up front).
func LoadCSV(path string) ([]Item, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open file %s: %w", path, err)
	}
	defer fp.Close()

	r := csv.NewReader(fp)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("csv %s has no header", path)
	}

	cols := map[string]int{}
	for i, h := range rows[0] {
		cols[strings.TrimSpace(h)] = i
	}

	get := func(row []string, name string) string {
		if idx, ok := cols[name]; ok && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	items := make([]Item, 0, len(rows)-1)
	for _, row := range rows[1:] {
		items = append(items, Item{
			Name:     get(row, ColName),
			Legend:   get(row, ColLegend),
			Mechanic: get(row, ColMechanic),
			InSet:    get(row, ColInSet) == "1",
			Set:      get(row, ColSet),
			SetCount: get(row, ColSetCount),
		})
	}

	return items, nil
}
