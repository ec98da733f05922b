// Package settings loads and saves the user-configurable reminder windows.
// Values live under fixed keys in the app's key-value store; absent or
// non-numeric values fall back to the defaults (30 days for insurance,
// 14 for maintenance).
package settings

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fairental/fleet/internal/fleet"
	"github.com/fairental/fleet/internal/store"
)

// Storage keys. Fixed: existing deployments have settings saved under them.
const (
	KeyInsuranceDays   = "insuranceReminderDays"
	KeyMaintenanceDays = "maintenanceReminderDays"
)

// Load reads the reminder settings, applying defaults where a key is absent
// or does not parse as a positive integer. A store failure is returned along
// with the defaults so the caller can still start with sane values.
func Load(ctx context.Context, kv store.KVStorage) (fleet.ReminderSettings, error) {
	s := fleet.DefaultReminderSettings()

	insurance, err := loadDays(ctx, kv, KeyInsuranceDays, s.InsuranceReminderDays)
	if err != nil {
		return s, err
	}
	maintenance, err := loadDays(ctx, kv, KeyMaintenanceDays, s.MaintenanceReminderDays)
	if err != nil {
		return s, err
	}

	s.InsuranceReminderDays = insurance
	s.MaintenanceReminderDays = maintenance
	return s, nil
}

func loadDays(ctx context.Context, kv store.KVStorage, key string, fallback int) (int, error) {
	raw, ok, err := kv.Get(ctx, key)
	if err != nil {
		return fallback, fmt.Errorf("load %s: %w", key, err)
	}
	if !ok {
		return fallback, nil
	}

	days, err := strconv.Atoi(raw)
	if err != nil || days <= 0 {
		return fallback, nil
	}
	return days, nil
}

// Save validates and persists the reminder settings.
func Save(ctx context.Context, kv store.KVStorage, s fleet.ReminderSettings) error {
	if s.InsuranceReminderDays <= 0 || s.MaintenanceReminderDays <= 0 {
		return fmt.Errorf("reminder days must be positive, got insurance=%d maintenance=%d",
			s.InsuranceReminderDays, s.MaintenanceReminderDays)
	}

	if err := kv.Set(ctx, KeyInsuranceDays, strconv.Itoa(s.InsuranceReminderDays)); err != nil {
		return err
	}
	return kv.Set(ctx, KeyMaintenanceDays, strconv.Itoa(s.MaintenanceReminderDays))
}
