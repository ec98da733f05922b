// Package importer turns loosely-typed spreadsheet rows into vehicle drafts
// ready for batch insertion.
//
// A decoded row maps arbitrary column header text to a cell value of unknown
// type (string, number, native date, or nothing). The importer normalizes
// headers, resolves each target field through an ordered alias list, coerces
// cell values to their semantic types, and applies defaults for the fields a
// typical rental spreadsheet leaves out.
package importer

import (
	"regexp"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// Row is one parsed spreadsheet row, keyed by raw header text.
type Row map[string]any

// whitespaceRuns matches internal whitespace for header normalization.
var whitespaceRuns = regexp.MustCompile(`\s+`)

// NormalizeHeader canonicalizes a column header: trimmed, lowercased, with
// whitespace runs collapsed to a single underscore. "Plate Number" and
// "plate_number" resolve to the same key.
func NormalizeHeader(h string) string {
	h = strings.TrimSpace(h)
	h = strings.ToLower(h)
	return whitespaceRuns.ReplaceAllString(h, "_")
}

// normalize returns the row re-keyed by normalized headers.
func (r Row) normalize() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[NormalizeHeader(k)] = v
	}
	return out
}

// pick returns the first present, non-empty value among the given keys.
// A nil cell or an empty/whitespace string counts as absent.
func (r Row) pick(keys ...string) (any, bool) {
	for _, k := range keys {
		v, ok := r[k]
		if !ok || v == nil {
			continue
		}
		if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
			continue
		}
		return v, true
	}
	return nil, false
}

// text coerces the cell under the given keys to a string, "" when absent.
func (r Row) text(keys ...string) string {
	v, ok := r.pick(keys...)
	if !ok {
		return ""
	}
	return strings.TrimSpace(cast.ToString(v))
}

// Date layouts accepted when a cell carries a date as text rather than a
// native date value. Four-digit-year layouts are tried first; two-digit
// years are pivoted so "1/2/98" lands in the previous century.
var (
	fourDigitYearLayouts = []string{
		"2006-01-02", "2006/01/02", "2006.01.02",
		"1/2/2006", "01/02/2006", "1-2-2006", "01-02-2006", "1.2.2006",
		"Jan 2, 2006", "2 Jan 2006",
		"2006-01-02T15:04:05Z07:00",
	}
	twoDigitYearLayouts = []string{
		"1/2/06", "01/02/06", "1-2-06", "1.2.06",
	}
)

// twoDigitYearPivot: parsed two-digit years more than this many years in the
// future are shifted back a century.
const twoDigitYearPivot = 20

// ToCalendarDate coerces a cell value to the canonical YYYY-MM-DD encoding.
//
// Native date values render as their own calendar day, regardless of the
// zone the codec attached, so the stored day always matches the day shown in
// the spreadsheet. Date-formatted strings get the same treatment. Anything
// else yields "".
func ToCalendarDate(v any) string {
	switch d := v.(type) {
	case time.Time:
		if d.IsZero() {
			return ""
		}
		return d.Format("2006-01-02")
	case string:
		s := strings.TrimSpace(d)
		if s == "" {
			return ""
		}

		for _, layout := range fourDigitYearLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.Format("2006-01-02")
			}
		}

		pivot := time.Now().Year() + twoDigitYearPivot
		for _, layout := range twoDigitYearLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				if t.Year() > pivot {
					t = t.AddDate(-100, 0, 0)
				}
				return t.Format("2006-01-02")
			}
		}

		return ""
	default:
		return ""
	}
}
