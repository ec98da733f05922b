package fleet

// pipeline.go composes the displayed vehicle list from the raw collection.
//
// The pipeline is a pure function of (collection, view state, reminder
// settings): classification filter, then free-text search, then a stable
// sort. The input slice is never mutated, so the caller can re-run the
// pipeline on every state change against the same fetched collection.

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// Filter is one of the five classification view modes.
type Filter string

const (
	FilterAll                Filter = "all"
	FilterInsurance          Filter = "insurance"
	FilterMaintenance        Filter = "maintenance"
	FilterInsuranceExpired   Filter = "insurance_expired"
	FilterMaintenanceOverdue Filter = "maintenance_overdue"
)

// Valid reports whether f is a known filter mode.
func (f Filter) Valid() bool {
	switch f {
	case FilterAll, FilterInsurance, FilterMaintenance, FilterInsuranceExpired, FilterMaintenanceOverdue:
		return true
	}
	return false
}

// SortKey selects the date column to sort by. An empty key means no sort.
type SortKey string

const (
	SortNone             SortKey = ""
	SortInsuranceRenewal SortKey = "insurance_renewal_date"
	SortNextMaintenance  SortKey = "next_maintenance_date"
)

// Valid reports whether k is a known sort key (including none).
func (k SortKey) Valid() bool {
	return k == SortNone || k == SortInsuranceRenewal || k == SortNextMaintenance
}

// SortDirection is the requested sort order.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// View is the display state the pipeline is computed from.
type View struct {
	Filter    Filter
	Query     string
	SortKey   SortKey
	SortDir   SortDirection
}

// ToggleSort returns the view after the user selects key: selecting the
// active key flips the direction, selecting a new key resets to ascending.
func (v View) ToggleSort(key SortKey) View {
	if v.SortKey == key {
		if v.SortDir == SortAsc {
			v.SortDir = SortDesc
		} else {
			v.SortDir = SortAsc
		}
		return v
	}
	v.SortKey = key
	v.SortDir = SortAsc
	return v
}

// Apply runs the three pipeline stages over vehicles and returns the ordered
// sequence to display. The input slice is left untouched.
func Apply(vehicles []Vehicle, view View, settings ReminderSettings) []Vehicle {
	out := filterByClassification(vehicles, view.Filter, settings)
	out = filterByQuery(out, view.Query)
	sortByDate(out, view.SortKey, view.SortDir)
	return out
}

// filterByClassification applies the due-date bucket filter. It always
// returns a fresh slice so later stages may reorder freely.
func filterByClassification(vehicles []Vehicle, f Filter, settings ReminderSettings) []Vehicle {
	keep := func(Vehicle) bool { return true }

	switch f {
	case FilterInsurance:
		keep = func(v Vehicle) bool {
			return IsWithinDays(v.InsuranceRenewalDate, settings.InsuranceReminderDays)
		}
	case FilterMaintenance:
		keep = func(v Vehicle) bool {
			return IsWithinDays(v.NextMaintenanceDate, settings.MaintenanceReminderDays)
		}
	case FilterInsuranceExpired:
		keep = func(v Vehicle) bool { return IsDatePast(v.InsuranceRenewalDate) }
	case FilterMaintenanceOverdue:
		keep = func(v Vehicle) bool { return IsDatePast(v.NextMaintenanceDate) }
	}

	out := make([]Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// filterByQuery keeps vehicles where any searchable field contains the query,
// case-insensitively. An empty query keeps everything.
func filterByQuery(vehicles []Vehicle, query string) []Vehicle {
	if query == "" {
		return vehicles
	}

	q := strings.ToLower(query)
	out := vehicles[:0]
	for _, v := range vehicles {
		if matchesQuery(v, q) {
			out = append(out, v)
		}
	}
	return out
}

func matchesQuery(v Vehicle, q string) bool {
	fields := []string{
		v.Make,
		v.Model,
		strconv.Itoa(v.Year),
		v.LicensePlate,
		v.VIN,
		v.RenterName,
		v.InsuranceCompany,
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// sortByDate orders vehicles by the chosen date column in place. Vehicles
// with an empty or unparseable date sort after all dated vehicles regardless
// of direction, and ties keep their original relative order.
func sortByDate(vehicles []Vehicle, key SortKey, dir SortDirection) {
	if key == SortNone {
		return
	}

	dateOf := func(v Vehicle) (time.Time, bool) {
		s := v.InsuranceRenewalDate
		if key == SortNextMaintenance {
			s = v.NextMaintenanceDate
		}
		if s == "" {
			return time.Time{}, false
		}
		return parseCalendarDate(s)
	}

	sort.SliceStable(vehicles, func(i, j int) bool {
		a, aok := dateOf(vehicles[i])
		b, bok := dateOf(vehicles[j])

		// Missing values sort last for both directions.
		if !aok {
			return false
		}
		if !bok {
			return true
		}

		if dir == SortDesc {
			return b.Before(a)
		}
		return a.Before(b)
	})
}
