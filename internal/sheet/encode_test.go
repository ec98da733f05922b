package sheet

import (
	"bytes"
	"testing"
	"time"

	"github.com/fairental/fleet/internal/fleet"
	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	created := time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)
	vehicles := []fleet.Vehicle{
		{
			Make:                 "Toyota",
			Model:                "Corolla",
			Year:                 2021,
			LicensePlate:         "ABC-123",
			VIN:                  "JTDBU4EE9A9123456",
			Color:                "Silver",
			RenterStatus:         "Active",
			RenterName:           "Dana",
			InsuranceCompany:     "Acme Insurance",
			InsuranceRenewalDate: "2025-03-09",
			NextMaintenanceDate:  "2024-12-01",
			Notes:                "Second key in office",
			CreatedAt:            created,
			UpdatedAt:            created,
		},
		{
			Make:  "Honda",
			Model: "Civic",
			Year:  2019,
		},
	}

	var buf bytes.Buffer
	if err := WriteXLSX(&buf, vehicles); err != nil {
		t.Fatalf("WriteXLSX() error = %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	if sheets := f.GetSheetList(); len(sheets) != 1 || sheets[0] != SheetName {
		t.Fatalf("sheets = %v, want [%s]", sheets, SheetName)
	}

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("workbook has %d rows, want header plus 2", len(rows))
	}

	if rows[0][0] != "Make" || rows[0][9] != "Insurance Renewal Date" {
		t.Errorf("header row = %v", rows[0])
	}
	if rows[1][0] != "Toyota" || rows[1][9] != "2025-03-09" || rows[1][12] != "2024-06-01" {
		t.Errorf("first data row = %v", rows[1])
	}

	// Empty dates and zero timestamps render as N/A.
	if rows[2][9] != "N/A" || rows[2][10] != "N/A" || rows[2][12] != "N/A" {
		t.Errorf("missing values should render as N/A: %v", rows[2])
	}
}

func TestWriteXLSX_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, nil); err != nil {
		t.Fatalf("WriteXLSX() error = %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Errorf("empty export has %d rows, want just the header", len(rows))
	}
}
