// Package fleet provides the business logic for the rental fleet tracker.
// This package has no HTTP or storage dependencies and can be used by any frontend.
package fleet

import "time"

// Vehicle represents one tracked rental vehicle.
//
// The two due dates are calendar dates encoded as YYYY-MM-DD strings; an
// empty string means the date is unset. CreatedAt and UpdatedAt are assigned
// by the store.
type Vehicle struct {
	ID                   string    `json:"id"`
	Make                 string    `json:"make"`
	Model                string    `json:"model"`
	Year                 int       `json:"year"`
	LicensePlate         string    `json:"license_plate"`
	VIN                  string    `json:"vin"`
	Color                string    `json:"color"`
	InsuranceCompany     string    `json:"insurance_company"`
	InsuranceRenewalDate string    `json:"insurance_renewal_date"`
	NextMaintenanceDate  string    `json:"next_maintenance_date"`
	RenterStatus         string    `json:"renter_status"`
	RenterName           string    `json:"renter_name"`
	Notes                string    `json:"notes"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// Draft is a vehicle candidate without identity or timestamps. Drafts come
// from the create/edit form and from spreadsheet import, prior to insertion.
type Draft struct {
	Make                 string `json:"make"`
	Model                string `json:"model"`
	Year                 int    `json:"year"`
	LicensePlate         string `json:"license_plate"`
	VIN                  string `json:"vin"`
	Color                string `json:"color"`
	InsuranceCompany     string `json:"insurance_company"`
	InsuranceRenewalDate string `json:"insurance_renewal_date"`
	NextMaintenanceDate  string `json:"next_maintenance_date"`
	RenterStatus         string `json:"renter_status"`
	RenterName           string `json:"renter_name"`
	Notes                string `json:"notes"`
}

// Draft returns the editable fields of v as a Draft.
func (v Vehicle) Draft() Draft {
	return Draft{
		Make:                 v.Make,
		Model:                v.Model,
		Year:                 v.Year,
		LicensePlate:         v.LicensePlate,
		VIN:                  v.VIN,
		Color:                v.Color,
		InsuranceCompany:     v.InsuranceCompany,
		InsuranceRenewalDate: v.InsuranceRenewalDate,
		NextMaintenanceDate:  v.NextMaintenanceDate,
		RenterStatus:         v.RenterStatus,
		RenterName:           v.RenterName,
		Notes:                v.Notes,
	}
}

// ReminderSettings holds the user-configurable reminder windows, in days.
type ReminderSettings struct {
	InsuranceReminderDays   int `json:"insurance_reminder_days"`
	MaintenanceReminderDays int `json:"maintenance_reminder_days"`
}

// Default reminder windows, used when no saved setting exists.
const (
	DefaultInsuranceReminderDays   = 30
	DefaultMaintenanceReminderDays = 14
)

// DefaultReminderSettings returns the out-of-the-box reminder windows.
func DefaultReminderSettings() ReminderSettings {
	return ReminderSettings{
		InsuranceReminderDays:   DefaultInsuranceReminderDays,
		MaintenanceReminderDays: DefaultMaintenanceReminderDays,
	}
}
