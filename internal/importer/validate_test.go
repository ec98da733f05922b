package importer

import (
	"testing"

	"github.com/fairental/fleet/internal/fleet"
)

func validDraft() fleet.Draft {
	return fleet.Draft{
		Make:                 "Toyota",
		Model:                "Corolla",
		Year:                 2021,
		LicensePlate:         "ABC-123",
		VIN:                  "JTDBU4EE9A9123456",
		InsuranceRenewalDate: "2025-03-09",
		NextMaintenanceDate:  "2025-01-01",
		RenterStatus:         "Active",
	}
}

func TestAdmissible(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*fleet.Draft)
		want   bool
	}{
		{name: "complete active draft", mutate: func(*fleet.Draft) {}, want: true},
		{
			name:   "status compares case-insensitively",
			mutate: func(d *fleet.Draft) { d.RenterStatus = "ACTIVE" },
			want:   true,
		},
		{
			name:   "status with surrounding whitespace",
			mutate: func(d *fleet.Draft) { d.RenterStatus = " active " },
			want:   true,
		},
		{
			name:   "inactive status",
			mutate: func(d *fleet.Draft) { d.RenterStatus = "Inactive" },
			want:   false,
		},
		{
			name:   "missing make",
			mutate: func(d *fleet.Draft) { d.Make = "" },
			want:   false,
		},
		{
			name:   "missing model",
			mutate: func(d *fleet.Draft) { d.Model = "" },
			want:   false,
		},
		{
			name:   "zero year",
			mutate: func(d *fleet.Draft) { d.Year = 0 },
			want:   false,
		},
		{
			name:   "missing plate",
			mutate: func(d *fleet.Draft) { d.LicensePlate = "" },
			want:   false,
		},
		{
			name:   "missing vin",
			mutate: func(d *fleet.Draft) { d.VIN = "" },
			want:   false,
		},
		{
			name:   "missing insurance renewal date",
			mutate: func(d *fleet.Draft) { d.InsuranceRenewalDate = "" },
			want:   false,
		},
		{
			name:   "missing maintenance date is still admissible",
			mutate: func(d *fleet.Draft) { d.NextMaintenanceDate = "" },
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(&d)
			if got := Admissible(d); got != tt.want {
				t.Errorf("Admissible() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterAdmissible(t *testing.T) {
	inactive := validDraft()
	inactive.RenterStatus = "Inactive"

	noVIN := validDraft()
	noVIN.VIN = ""

	got := FilterAdmissible([]fleet.Draft{inactive, validDraft(), noVIN})
	if len(got) != 1 {
		t.Fatalf("FilterAdmissible kept %d drafts, want 1", len(got))
	}
	if got[0] != validDraft() {
		t.Errorf("FilterAdmissible kept the wrong draft: %+v", got[0])
	}
}

func TestFilterAdmissible_EmptyResult(t *testing.T) {
	inactive := validDraft()
	inactive.RenterStatus = "Inactive"

	got := FilterAdmissible([]fleet.Draft{inactive})
	if len(got) != 0 {
		t.Errorf("FilterAdmissible kept %d drafts, want none", len(got))
	}
}
