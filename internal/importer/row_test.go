package importer

import (
	"testing"
	"time"
)

func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Plate Number", "plate_number"},
		{"  Insurance Expiry  ", "insurance_expiry"},
		{"VIN", "vin"},
		{"next_maintenance_date", "next_maintenance_date"},
		{"Renter\tName", "renter_name"},
		{"Insurance   Company", "insurance_company"},
	}

	for _, tt := range tests {
		if got := NormalizeHeader(tt.in); got != tt.want {
			t.Errorf("NormalizeHeader(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRowPick(t *testing.T) {
	row := Row{
		"plate_number":  "  ",
		"license_plate": "ABC-123",
		"vin":           nil,
	}

	v, ok := row.pick("plate_number", "license_plate")
	if !ok || v != "ABC-123" {
		t.Errorf("pick skipped to %v/%v, want ABC-123", v, ok)
	}

	if _, ok := row.pick("vin"); ok {
		t.Error("pick should treat a nil cell as absent")
	}
	if _, ok := row.pick("missing"); ok {
		t.Error("pick should miss on absent keys")
	}
}

func TestToCalendarDate(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{
			name: "native date value",
			in:   time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC),
			want: "2025-03-09",
		},
		{
			name: "native date keeps its own calendar day",
			in:   time.Date(2025, time.March, 9, 23, 30, 0, 0, time.FixedZone("UTC+13", 13*3600)),
			want: "2025-03-09",
		},
		{name: "canonical string", in: "2025-03-09", want: "2025-03-09"},
		{name: "slash-separated", in: "2025/03/09", want: "2025-03-09"},
		{name: "us order", in: "3/9/2025", want: "2025-03-09"},
		{name: "padded us order", in: "03/09/2025", want: "2025-03-09"},
		{name: "month name", in: "Mar 9, 2025", want: "2025-03-09"},
		{name: "rfc3339", in: "2025-03-09T00:00:00Z", want: "2025-03-09"},
		{name: "two-digit recent year", in: "3/9/25", want: "2025-03-09"},
		{name: "two-digit pivoted year", in: "3/9/98", want: "1998-03-09"},
		{name: "whitespace trimmed", in: "  2025-03-09  ", want: "2025-03-09"},
		{name: "empty string", in: "", want: ""},
		{name: "free text", in: "next spring", want: ""},
		{name: "nil cell", in: nil, want: ""},
		{name: "numeric cell", in: 44927, want: ""},
		{name: "zero time", in: time.Time{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToCalendarDate(tt.in); got != tt.want {
				t.Errorf("ToCalendarDate(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
