package fleet

// export.go selects which records a report covers. The spreadsheet encoding
// itself lives in internal/sheet; this file only decides membership.

import (
	"errors"
	"time"
)

// ExportCriteria describes a report request. When IncludeAll is false the
// category flags and the date range bound the selection.
type ExportCriteria struct {
	StartDate          string `json:"start_date"`
	EndDate            string `json:"end_date"`
	IncludeInsurance   bool   `json:"include_insurance"`
	IncludeMaintenance bool   `json:"include_maintenance"`
	IncludeAll         bool   `json:"include_all"`
}

// ErrNoCategory and ErrNoDateRange are returned by Validate before any
// store or codec work happens.
var (
	ErrNoCategory  = errors.New("select at least one category or a full export")
	ErrNoDateRange = errors.New("start and end dates are required for a date-range export")
)

// Validate enforces the criteria policy: a non-full export needs at least
// one category flag and both range dates.
func (c ExportCriteria) Validate() error {
	if c.IncludeAll {
		return nil
	}
	if !c.IncludeInsurance && !c.IncludeMaintenance {
		return ErrNoCategory
	}
	if c.StartDate == "" || c.EndDate == "" {
		return ErrNoDateRange
	}
	return nil
}

// SelectForExport returns the records the criteria cover, deduplicated by id
// and in the collection's original order. With IncludeAll every record is
// selected; otherwise a record is selected when its insurance renewal date
// (if IncludeInsurance) or next maintenance date (if IncludeMaintenance)
// falls within [StartDate, EndDate], inclusive on both ends.
func SelectForExport(vehicles []Vehicle, c ExportCriteria) []Vehicle {
	if c.IncludeAll {
		out := make([]Vehicle, len(vehicles))
		copy(out, vehicles)
		return out
	}

	start, sok := parseCalendarDate(c.StartDate)
	end, eok := parseCalendarDate(c.EndDate)
	if !sok || !eok {
		return nil
	}

	inRange := func(date string) bool {
		d, ok := parseCalendarDate(date)
		if !ok {
			return false
		}
		return !d.Before(start) && !d.After(end)
	}

	var out []Vehicle
	for _, v := range vehicles {
		if c.IncludeInsurance && inRange(v.InsuranceRenewalDate) {
			out = append(out, v)
			continue
		}
		if c.IncludeMaintenance && inRange(v.NextMaintenanceDate) {
			out = append(out, v)
		}
	}
	return out
}

// TodaysUpdates returns the records created or updated on the current
// calendar day, per IsToday.
func TodaysUpdates(vehicles []Vehicle) []Vehicle {
	var out []Vehicle
	for _, v := range vehicles {
		if IsToday(v.UpdatedAt) || IsToday(v.CreatedAt) {
			out = append(out, v)
		}
	}
	return out
}

// ReportFileName returns the attachment name for a criteria-based report,
// stamped with today's date.
func ReportFileName(now time.Time) string {
	return "Fairental-Report_" + now.Format(DateLayout) + ".xlsx"
}

// TodaysUpdatesFileName returns the attachment name for a today's-updates
// report.
func TodaysUpdatesFileName(now time.Time) string {
	return "Fairental_Todays-Updates_" + now.Format(DateLayout) + ".xlsx"
}
