package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/anyulbade/dealer-credit-simulator/seeddata"
)

type profileEntry struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	AnnualRate      decimal.Decimal `json:"annual_rate"`
	LegalFee        decimal.Decimal `json:"legal_fee"`
	InsuranceRate   decimal.Decimal `json:"insurance_rate"`
	DesgravamenRate decimal.Decimal `json:"desgravamen_rate"`
	GPSFee          decimal.Decimal `json:"gps_fee"`
	GPSBilling      string          `json:"gps_billing"`
}

type vehicleEntry struct {
	Brand     string          `json:"brand"`
	Model     string          `json:"model"`
	Year      int             `json:"year"`
	Price     decimal.Decimal `json:"price"`
	Available bool            `json:"available"`
}

// SeedData loads the embedded financing profiles and vehicle inventory into
// an empty database.
func SeedData(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM financing_profiles").Scan(&count)
	if err != nil {
		return fmt.Errorf("check existing data: %w", err)
	}
	if count > 0 {
		log.Info().Msg("seed data already exists, skipping")
		return nil
	}

	var profiles []profileEntry
	if err := json.Unmarshal(seeddata.FinancingProfilesJSON, &profiles); err != nil {
		return fmt.Errorf("parse profiles JSON: %w", err)
	}
	var vehicles []vehicleEntry
	if err := json.Unmarshal(seeddata.VehiclesJSON, &vehicles); err != nil {
		return fmt.Errorf("parse vehicles JSON: %w", err)
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, p := range profiles {
		_, err := tx.Exec(ctx,
			`INSERT INTO financing_profiles (id, name, annual_rate, legal_fee, insurance_rate, desgravamen_rate, gps_fee, gps_billing)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			p.ID, p.Name, p.AnnualRate, p.LegalFee, p.InsuranceRate, p.DesgravamenRate, p.GPSFee, p.GPSBilling)
		if err != nil {
			return fmt.Errorf("insert profile %s: %w", p.ID, err)
		}
	}
	log.Info().Int("count", len(profiles)).Msg("inserted financing profiles")

	for _, v := range vehicles {
		_, err := tx.Exec(ctx,
			`INSERT INTO vehicles (brand, model, year, price, available) VALUES ($1, $2, $3, $4, $5)`,
			v.Brand, v.Model, v.Year, v.Price, v.Available)
		if err != nil {
			return fmt.Errorf("insert vehicle %s %s: %w", v.Brand, v.Model, err)
		}
	}
	log.Info().Int("count", len(vehicles)).Msg("inserted vehicles")

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit seed data: %w", err)
	}

	log.Info().Msg("seed data generation complete")
	return nil
}
