package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anyulbade/dealer-credit-simulator/internal/model"
)

const profileColumns = `id, name, annual_rate, legal_fee, insurance_rate, desgravamen_rate, gps_fee, gps_billing`

type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

// FindProfile returns pgx.ErrNoRows for unknown or inactive profiles.
func (r *ProfileRepository) FindProfile(ctx context.Context, id string) (*model.FinancingProfile, error) {
	p := &model.FinancingProfile{}
	err := r.pool.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM financing_profiles WHERE id = $1 AND active`, id).
		Scan(&p.ID, &p.Name, &p.AnnualRate, &p.LegalFee, &p.InsuranceRate, &p.DesgravamenRate, &p.GPSFee, &p.GPSBilling)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProfileRepository) ListProfiles(ctx context.Context) ([]model.FinancingProfile, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+profileColumns+` FROM financing_profiles WHERE active ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []model.FinancingProfile
	for rows.Next() {
		var p model.FinancingProfile
		if err := rows.Scan(&p.ID, &p.Name, &p.AnnualRate, &p.LegalFee, &p.InsuranceRate, &p.DesgravamenRate, &p.GPSFee, &p.GPSBilling); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}
