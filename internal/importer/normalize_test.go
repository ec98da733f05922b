package importer

import (
	"testing"
	"time"

	"github.com/fairental/fleet/internal/fleet"
)

func TestNormalize(t *testing.T) {
	row := Row{
		"Make":             "Toyota",
		"Model":            "Corolla",
		"Year":             2021,
		"Plate Number":     "ABC-123",
		"VIN":              "JTDBU4EE9A9123456",
		"Color":            "Silver",
		"Insurance Expiry": "2025-03-09",
		"Renter Status":    "Active",
		"Renter Name":      "Dana",
		"Notes":            "Second key in office",
	}

	got := Normalize(row)

	want := fleet.Draft{
		Make:                 "Toyota",
		Model:                "Corolla",
		Year:                 2021,
		LicensePlate:         "ABC-123",
		VIN:                  "JTDBU4EE9A9123456",
		Color:                "Silver",
		InsuranceRenewalDate: "2025-03-09",
		NextMaintenanceDate:  time.Now().AddDate(0, 6, 0).Format("2006-01-02"),
		RenterStatus:         "Active",
		RenterName:           "Dana",
		Notes:                "Second key in office",
	}

	if got != want {
		t.Errorf("Normalize() = %+v, want %+v", got, want)
	}
}

func TestNormalize_Defaults(t *testing.T) {
	got := Normalize(Row{"Make": "Honda"})

	if got.Year != time.Now().Year() {
		t.Errorf("Year = %d, want current year", got.Year)
	}
	if want := time.Now().AddDate(0, 6, 0).Format("2006-01-02"); got.NextMaintenanceDate != want {
		t.Errorf("NextMaintenanceDate = %q, want %q", got.NextMaintenanceDate, want)
	}
	if got.RenterStatus != "Inactive" {
		t.Errorf("RenterStatus = %q, want Inactive", got.RenterStatus)
	}
	if got.InsuranceRenewalDate != "" {
		t.Errorf("InsuranceRenewalDate = %q, want empty", got.InsuranceRenewalDate)
	}
}

func TestNormalize_AliasPriority(t *testing.T) {
	row := Row{
		"Insurance Expiry":       "2025-01-01",
		"Insurance Renewal Date": "2026-01-01",
		"License Plate":          "XYZ-999",
	}

	got := Normalize(row)

	if got.InsuranceRenewalDate != "2025-01-01" {
		t.Errorf("InsuranceRenewalDate = %q, want the higher-priority alias value", got.InsuranceRenewalDate)
	}
	if got.LicensePlate != "XYZ-999" {
		t.Errorf("LicensePlate = %q, want XYZ-999", got.LicensePlate)
	}
}

func TestNormalize_TruncatedInsuranceHeader(t *testing.T) {
	got := Normalize(Row{"Insurance Expir": "2025-03-09"})
	if got.InsuranceRenewalDate != "2025-03-09" {
		t.Errorf("InsuranceRenewalDate = %q, want 2025-03-09", got.InsuranceRenewalDate)
	}
}

func TestNormalize_UnparseableMaintenanceDateStaysEmpty(t *testing.T) {
	// The six-month default covers only a missing cell; a value that fails
	// date coercion must not be silently replaced with a future date.
	got := Normalize(Row{"Next Maintenance Date": "garbage"})
	if got.NextMaintenanceDate != "" {
		t.Errorf("NextMaintenanceDate = %q, want empty for an unparseable cell", got.NextMaintenanceDate)
	}
}

func TestNormalize_BlankMaintenanceCellDefaults(t *testing.T) {
	// A whitespace-only cell counts as absent, like a missing column.
	got := Normalize(Row{"Next Maintenance Date": "   "})
	if want := time.Now().AddDate(0, 6, 0).Format("2006-01-02"); got.NextMaintenanceDate != want {
		t.Errorf("NextMaintenanceDate = %q, want %q", got.NextMaintenanceDate, want)
	}
}

func TestNormalize_UnparseableYear(t *testing.T) {
	got := Normalize(Row{"Year": "twenty twenty-one"})
	if got.Year != time.Now().Year() {
		t.Errorf("Year = %d, want current-year fallback", got.Year)
	}
}

func TestNormalize_NativeDateCell(t *testing.T) {
	got := Normalize(Row{
		"Insurance Expiry": time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC),
	})
	if got.InsuranceRenewalDate != "2025-03-09" {
		t.Errorf("InsuranceRenewalDate = %q, want 2025-03-09", got.InsuranceRenewalDate)
	}
}

func TestNormalizeAll(t *testing.T) {
	drafts := NormalizeAll([]Row{
		{"Make": "Toyota"},
		{"Make": "Honda"},
	})
	if len(drafts) != 2 {
		t.Fatalf("NormalizeAll returned %d drafts, want 2", len(drafts))
	}
	if drafts[0].Make != "Toyota" || drafts[1].Make != "Honda" {
		t.Errorf("NormalizeAll order wrong: %q, %q", drafts[0].Make, drafts[1].Make)
	}
}
