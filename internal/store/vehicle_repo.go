package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fairental/fleet/internal/fleet"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const vehicleColumns = `id, make, model, year, license_plate, vin, color,
	insurance_company, insurance_renewal_date, next_maintenance_date,
	renter_status, renter_name, notes, created_at, updated_at`

type vehicleRepo struct {
	db *pgxpool.Pool
}

// NewVehicleRepo returns the PostgreSQL-backed vehicle store.
func NewVehicleRepo(db *pgxpool.Pool) VehicleStorage {
	return &vehicleRepo{db: db}
}

func scanVehicle(row pgx.Row) (fleet.Vehicle, error) {
	var v fleet.Vehicle
	err := row.Scan(
		&v.ID, &v.Make, &v.Model, &v.Year, &v.LicensePlate, &v.VIN, &v.Color,
		&v.InsuranceCompany, &v.InsuranceRenewalDate, &v.NextMaintenanceDate,
		&v.RenterStatus, &v.RenterName, &v.Notes, &v.CreatedAt, &v.UpdatedAt,
	)
	return v, err
}

func (r *vehicleRepo) List(ctx context.Context) ([]fleet.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []fleet.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

func (r *vehicleRepo) Get(ctx context.Context, id string) (fleet.Vehicle, error) {
	if uuid.Validate(id) != nil {
		// A malformed id cannot match a row; don't let it become a cast
		// error on the uuid column.
		return fleet.Vehicle{}, ErrNotFound
	}

	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`
	v, err := scanVehicle(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return fleet.Vehicle{}, ErrNotFound
	}
	if err != nil {
		return fleet.Vehicle{}, fmt.Errorf("get vehicle: %w", err)
	}
	return v, nil
}

func (r *vehicleRepo) Insert(ctx context.Context, d fleet.Draft) (fleet.Vehicle, error) {
	query := `INSERT INTO vehicles (
			make, model, year, license_plate, vin, color, insurance_company,
			insurance_renewal_date, next_maintenance_date, renter_status,
			renter_name, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + vehicleColumns

	v, err := scanVehicle(r.db.QueryRow(ctx, query,
		d.Make, d.Model, d.Year, d.LicensePlate, d.VIN, d.Color,
		d.InsuranceCompany, d.InsuranceRenewalDate, d.NextMaintenanceDate,
		d.RenterStatus, d.RenterName, d.Notes,
	))
	if err != nil {
		return fleet.Vehicle{}, fmt.Errorf("insert vehicle: %w", err)
	}
	return v, nil
}

// BatchInsert loads a batch of drafts through the COPY protocol, which keeps
// large imports a single round trip.
func (r *vehicleRepo) BatchInsert(ctx context.Context, drafts []fleet.Draft) (int64, error) {
	if len(drafts) == 0 {
		return 0, nil
	}

	copyRows := make([][]any, len(drafts))
	for i, d := range drafts {
		copyRows[i] = []any{
			d.Make, d.Model, d.Year, d.LicensePlate, d.VIN, d.Color,
			d.InsuranceCompany, d.InsuranceRenewalDate, d.NextMaintenanceDate,
			d.RenterStatus, d.RenterName, d.Notes,
		}
	}

	n, err := r.db.CopyFrom(ctx,
		pgx.Identifier{"vehicles"},
		[]string{
			"make", "model", "year", "license_plate", "vin", "color",
			"insurance_company", "insurance_renewal_date", "next_maintenance_date",
			"renter_status", "renter_name", "notes",
		},
		pgx.CopyFromRows(copyRows),
	)
	if err != nil {
		return 0, fmt.Errorf("batch insert vehicles: %w", err)
	}

	slog.Info("vehicles imported", "count", n)
	return n, nil
}

func (r *vehicleRepo) Update(ctx context.Context, id string, d fleet.Draft) (fleet.Vehicle, error) {
	if uuid.Validate(id) != nil {
		return fleet.Vehicle{}, ErrNotFound
	}

	query := `UPDATE vehicles SET
			make = $2, model = $3, year = $4, license_plate = $5, vin = $6,
			color = $7, insurance_company = $8, insurance_renewal_date = $9,
			next_maintenance_date = $10, renter_status = $11, renter_name = $12,
			notes = $13, updated_at = now()
		WHERE id = $1
		RETURNING ` + vehicleColumns

	v, err := scanVehicle(r.db.QueryRow(ctx, query, id,
		d.Make, d.Model, d.Year, d.LicensePlate, d.VIN, d.Color,
		d.InsuranceCompany, d.InsuranceRenewalDate, d.NextMaintenanceDate,
		d.RenterStatus, d.RenterName, d.Notes,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return fleet.Vehicle{}, ErrNotFound
	}
	if err != nil {
		return fleet.Vehicle{}, fmt.Errorf("update vehicle: %w", err)
	}
	return v, nil
}

func (r *vehicleRepo) Delete(ctx context.Context, id string) error {
	if uuid.Validate(id) != nil {
		return ErrNotFound
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vehicle: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
