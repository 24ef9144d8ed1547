package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anyulbade/dealer-credit-simulator/internal/model"
)

type VehicleRepository struct {
	pool *pgxpool.Pool
}

func NewVehicleRepository(pool *pgxpool.Pool) *VehicleRepository {
	return &VehicleRepository{pool: pool}
}

// FindVehicle returns pgx.ErrNoRows when the vehicle does not exist.
func (r *VehicleRepository) FindVehicle(ctx context.Context, id string) (*model.Vehicle, error) {
	v := &model.Vehicle{}
	err := r.pool.QueryRow(ctx,
		`SELECT id::text, brand, model, year, price, available, created_at
		FROM vehicles WHERE id = $1`, id).
		Scan(&v.ID, &v.Brand, &v.Model, &v.Year, &v.Price, &v.Available, &v.CreatedAt)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *VehicleRepository) ListAvailableVehicles(ctx context.Context, limit, offset int) ([]model.Vehicle, int, error) {
	var total int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM vehicles WHERE available`).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count vehicles: %w", err)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id::text, brand, model, year, price, available, created_at
		FROM vehicles WHERE available
		ORDER BY brand, model, year DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []model.Vehicle
	for rows.Next() {
		var v model.Vehicle
		if err := rows.Scan(&v.ID, &v.Brand, &v.Model, &v.Year, &v.Price, &v.Available, &v.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan vehicle: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, total, rows.Err()
}
