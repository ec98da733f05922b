package sheet

import (
	"fmt"
	"io"
	"time"

	"github.com/fairental/fleet/internal/fleet"
	"github.com/xuri/excelize/v2"
)

// SheetName is the single worksheet every report carries.
const SheetName = "Vehicles"

// exportColumns are the human-readable report headers, with per-column
// widths tuned for readability.
var exportColumns = []struct {
	Header string
	Width  float64
}{
	{"Make", 15},
	{"Model", 20},
	{"Year", 8},
	{"License Plate", 15},
	{"VIN", 20},
	{"Color", 12},
	{"Renter Status", 12},
	{"Renter Name", 20},
	{"Insurance Company", 20},
	{"Insurance Renewal Date", 20},
	{"Next Maintenance Date", 20},
	{"Notes", 50},
	{"Created At", 15},
	{"Updated At", 15},
}

// WriteXLSX encodes vehicles as a one-sheet workbook and writes it to w.
func WriteXLSX(w io.Writer, vehicles []fleet.Vehicle) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	headers := make([]any, len(exportColumns))
	for i, col := range exportColumns {
		headers[i] = col.Header

		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("column name: %w", err)
		}
		if err := f.SetColWidth(SheetName, name, name, col.Width); err != nil {
			return fmt.Errorf("set column width: %w", err)
		}
	}
	if err := f.SetSheetRow(SheetName, "A1", &headers); err != nil {
		return fmt.Errorf("write header row: %w", err)
	}

	for i, v := range vehicles {
		row := []any{
			v.Make,
			v.Model,
			v.Year,
			v.LicensePlate,
			v.VIN,
			v.Color,
			v.RenterStatus,
			v.RenterName,
			v.InsuranceCompany,
			dateCell(v.InsuranceRenewalDate),
			dateCell(v.NextMaintenanceDate),
			v.Notes,
			timestampCell(v.CreatedAt),
			timestampCell(v.UpdatedAt),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("row coordinates: %w", err)
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func dateCell(date string) string {
	if date == "" {
		return "N/A"
	}
	return date
}

func timestampCell(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format(fleet.DateLayout)
}
