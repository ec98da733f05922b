package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/fairental/fleet/internal/fleet"
)

// memoryKV is an in-memory KVStorage for tests.
type memoryKV struct {
	values map[string]string
	getErr error
	setErr error
}

func newMemoryKV() *memoryKV {
	return &memoryKV{values: map[string]string{}}
}

func (m *memoryKV) Get(_ context.Context, key string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memoryKV) Set(_ context.Context, key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	return nil
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name            string
		stored          map[string]string
		wantInsurance   int
		wantMaintenance int
	}{
		{
			name:            "empty store yields defaults",
			stored:          map[string]string{},
			wantInsurance:   fleet.DefaultInsuranceReminderDays,
			wantMaintenance: fleet.DefaultMaintenanceReminderDays,
		},
		{
			name: "stored values win",
			stored: map[string]string{
				KeyInsuranceDays:   "45",
				KeyMaintenanceDays: "7",
			},
			wantInsurance:   45,
			wantMaintenance: 7,
		},
		{
			name: "non-numeric value falls back",
			stored: map[string]string{
				KeyInsuranceDays:   "soon",
				KeyMaintenanceDays: "7",
			},
			wantInsurance:   fleet.DefaultInsuranceReminderDays,
			wantMaintenance: 7,
		},
		{
			name: "non-positive value falls back",
			stored: map[string]string{
				KeyInsuranceDays:   "0",
				KeyMaintenanceDays: "-3",
			},
			wantInsurance:   fleet.DefaultInsuranceReminderDays,
			wantMaintenance: fleet.DefaultMaintenanceReminderDays,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := newMemoryKV()
			kv.values = tt.stored

			got, err := Load(context.Background(), kv)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if got.InsuranceReminderDays != tt.wantInsurance {
				t.Errorf("InsuranceReminderDays = %d, want %d", got.InsuranceReminderDays, tt.wantInsurance)
			}
			if got.MaintenanceReminderDays != tt.wantMaintenance {
				t.Errorf("MaintenanceReminderDays = %d, want %d", got.MaintenanceReminderDays, tt.wantMaintenance)
			}
		})
	}
}

func TestLoad_StoreFailureReturnsDefaults(t *testing.T) {
	kv := newMemoryKV()
	kv.getErr = errors.New("connection refused")

	got, err := Load(context.Background(), kv)
	if err == nil {
		t.Fatal("Load() should surface the store error")
	}
	if got != fleet.DefaultReminderSettings() {
		t.Errorf("Load() on store failure = %+v, want defaults", got)
	}
}

func TestSave(t *testing.T) {
	kv := newMemoryKV()

	err := Save(context.Background(), kv, fleet.ReminderSettings{
		InsuranceReminderDays:   45,
		MaintenanceReminderDays: 7,
	})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if kv.values[KeyInsuranceDays] != "45" {
		t.Errorf("stored insurance = %q, want 45", kv.values[KeyInsuranceDays])
	}
	if kv.values[KeyMaintenanceDays] != "7" {
		t.Errorf("stored maintenance = %q, want 7", kv.values[KeyMaintenanceDays])
	}
}

func TestSave_RejectsNonPositive(t *testing.T) {
	kv := newMemoryKV()

	err := Save(context.Background(), kv, fleet.ReminderSettings{
		InsuranceReminderDays:   0,
		MaintenanceReminderDays: 7,
	})
	if err == nil {
		t.Fatal("Save() should reject non-positive reminder days")
	}
	if len(kv.values) != 0 {
		t.Error("Save() must not write anything when validation fails")
	}
}

func TestSave_PropagatesStoreError(t *testing.T) {
	kv := newMemoryKV()
	kv.setErr = errors.New("connection refused")

	err := Save(context.Background(), kv, fleet.DefaultReminderSettings())
	if err == nil {
		t.Fatal("Save() should surface the store error")
	}
}
