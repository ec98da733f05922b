package importer

import (
	"time"

	"github.com/fairental/fleet/internal/fleet"
	"github.com/spf13/cast"
)

// Accepted header aliases per target field, in priority order. The insurance
// aliases include the truncated "insurance_expir" seen in real upload files.
var (
	insuranceDateAliases   = []string{"insurance_expiry", "insurance_expir", "insurance_renewal_date"}
	licensePlateAliases    = []string{"plate_number", "license_plate"}
	maintenanceDateAliases = []string{"next_maintenance_date"}
)

// maintenanceDefaultLead is how far out the maintenance date defaults when
// the uploaded row has none.
const maintenanceDefaultLead = 6 // calendar months

// Normalize maps one raw spreadsheet row to a vehicle draft.
//
// Defaults: Year falls back to the current year when absent or unparseable,
// NextMaintenanceDate to today plus six calendar months, RenterStatus to
// "Inactive". Text fields default to "". The draft is not yet validated;
// see FilterAdmissible.
func Normalize(raw Row) fleet.Draft {
	row := raw.normalize()

	year := cast.ToInt(firstValue(row, "year"))
	if year == 0 {
		year = time.Now().Year()
	}

	// The default only covers a missing cell. A present but unparseable
	// value coerces to "" and stays empty.
	maintenanceCell := firstValue(row, maintenanceDateAliases...)
	maintenance := ToCalendarDate(maintenanceCell)
	if maintenanceCell == nil {
		maintenance = time.Now().AddDate(0, maintenanceDefaultLead, 0).Format("2006-01-02")
	}

	status := row.text("renter_status")
	if status == "" {
		status = "Inactive"
	}

	return fleet.Draft{
		Make:                 row.text("make"),
		Model:                row.text("model"),
		Year:                 year,
		LicensePlate:         row.text(licensePlateAliases...),
		VIN:                  row.text("vin"),
		Color:                row.text("color"),
		InsuranceCompany:     row.text("insurance_company"),
		InsuranceRenewalDate: ToCalendarDate(firstValue(row, insuranceDateAliases...)),
		NextMaintenanceDate:  maintenance,
		RenterStatus:         status,
		RenterName:           row.text("renter_name"),
		Notes:                row.text("notes"),
	}
}

// NormalizeAll maps every row of a decoded sheet to a draft.
func NormalizeAll(rows []Row) []fleet.Draft {
	drafts := make([]fleet.Draft, len(rows))
	for i, r := range rows {
		drafts[i] = Normalize(r)
	}
	return drafts
}

// firstValue is pick without the string coercion, for cells that may hold
// native date or numeric values.
func firstValue(row Row, keys ...string) any {
	v, ok := row.pick(keys...)
	if !ok {
		return nil
	}
	return v
}
