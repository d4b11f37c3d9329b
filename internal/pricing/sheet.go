package pricing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// LoadSheet reads a price book from the first sheet of an xlsx file. Columns are
// found by header name: commodity, market (or mandi), state, min, max, modal (or
// average), trend. Rows without a commodity or a modal price are skipped.
func LoadSheet(path string) (*Book, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open price sheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("price sheet %s: no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) <= 1 {
		return nil, fmt.Errorf("price sheet %s: no data rows", path)
	}

	cols := detectColumns(rows[0])
	if cols.commodity < 0 || cols.modal < 0 {
		return nil, fmt.Errorf("price sheet %s: need commodity and modal price columns, got %v", path, rows[0])
	}

	var quotes []Quote
	for _, r := range rows[1:] {
		q := Quote{
			Commodity: cell(r, cols.commodity),
			Market:    cell(r, cols.market),
			State:     cell(r, cols.state),
			Min:       number(cell(r, cols.min)),
			Max:       number(cell(r, cols.max)),
			Modal:     number(cell(r, cols.modal)),
			Trend:     cell(r, cols.trend),
		}
		if q.Commodity == "" || q.Modal <= 0 {
			continue
		}
		quotes = append(quotes, q)
	}
	if len(quotes) == 0 {
		return nil, fmt.Errorf("price sheet %s: no usable rows", path)
	}
	return NewBook(quotes), nil
}

type columns struct {
	commodity, market, state, min, max, modal, trend int
}

func detectColumns(header []string) columns {
	c := columns{-1, -1, -1, -1, -1, -1, -1}
	set := func(idx *int, i int) {
		if *idx == -1 {
			*idx = i
		}
	}
	for i, h := range header {
		l := strings.ToLower(strings.TrimSpace(h))
		switch {
		case strings.Contains(l, "commodity") || strings.Contains(l, "crop") || l == "item":
			set(&c.commodity, i)
		case strings.Contains(l, "market") || strings.Contains(l, "mandi"):
			set(&c.market, i)
		case strings.Contains(l, "state"):
			set(&c.state, i)
		case strings.Contains(l, "min"):
			set(&c.min, i)
		case strings.Contains(l, "max"):
			set(&c.max, i)
		case strings.Contains(l, "modal") || strings.Contains(l, "avg") || strings.Contains(l, "average"):
			set(&c.modal, i)
		case strings.Contains(l, "trend"):
			set(&c.trend, i)
		}
	}
	return c
}

func cell(r []string, idx int) string {
	if idx < 0 || idx >= len(r) {
		return ""
	}
	return strings.TrimSpace(r[idx])
}

func number(s string) float64 {
	s = strings.NewReplacer(",", "", "₹", "", "Rs.", "", "Rs", "").Replace(s)
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
