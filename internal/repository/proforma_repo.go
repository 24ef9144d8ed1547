package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anyulbade/dealer-credit-simulator/internal/model"
)

const proformaColumns = `id, created_by, status, vehicle_id::text, profile_id, fee_model, method, price,
	down_payment_pct, down_payment_amount, term_months, periodic_rate, start_date, capital_financed,
	total_interest, total_insurance, total_desgravamen, total_gps, total_debt, first_installment,
	expires_at, created_at, updated_at`

type ProformaRepository struct {
	pool *pgxpool.Pool
}

func NewProformaRepository(pool *pgxpool.Pool) *ProformaRepository {
	return &ProformaRepository{pool: pool}
}

func (r *ProformaRepository) Insert(ctx context.Context, p *model.Proforma) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO proformas (id, created_by, status, vehicle_id, profile_id, fee_model, method, price,
			down_payment_pct, down_payment_amount, term_months, periodic_rate, start_date, capital_financed,
			total_interest, total_insurance, total_desgravamen, total_gps, total_debt, first_installment, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		RETURNING created_at, updated_at`,
		p.ID, p.CreatedBy, p.Status, p.VehicleID, p.ProfileID, p.FeeModel, p.Method, p.Price,
		p.DownPaymentPct, p.DownPaymentAmount, p.TermMonths, p.PeriodicRate, p.StartDate, p.CapitalFinanced,
		p.TotalInterest, p.TotalInsurance, p.TotalDesgravamen, p.TotalGPS, p.TotalDebt, p.FirstInstallment, p.ExpiresAt,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
}

// FindByID returns pgx.ErrNoRows when the proforma does not exist.
func (r *ProformaRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Proforma, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+proformaColumns+` FROM proformas WHERE id = $1`, id)
	p, err := scanProforma(row)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProformaRepository) ListByCreator(ctx context.Context, creator uuid.UUID, limit, offset int) ([]model.Proforma, int, error) {
	var total int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM proformas WHERE created_by = $1`, creator).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count proformas: %w", err)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+proformaColumns+` FROM proformas WHERE created_by = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`, creator, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list proformas: %w", err)
	}
	defer rows.Close()

	var proformas []model.Proforma
	for rows.Next() {
		p, err := scanProforma(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan proforma: %w", err)
		}
		proformas = append(proformas, *p)
	}
	return proformas, total, rows.Err()
}

// UpdateStatus moves a proforma from one status to another. It returns
// pgx.ErrNoRows when the proforma does not exist or is not in status from.
func (r *ProformaRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to string) (*model.Proforma, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE proformas SET status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $2
		RETURNING `+proformaColumns, id, from, to)
	return scanProforma(row)
}

// ExpireDrafts marks every draft whose validity ended before now as expired.
func (r *ProformaRepository) ExpireDrafts(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE proformas SET status = $1, updated_at = NOW()
		WHERE status = $2 AND expires_at < $3`,
		model.ProformaExpired, model.ProformaDraft, now)
	if err != nil {
		return 0, fmt.Errorf("expire proformas: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanProforma(row pgx.Row) (*model.Proforma, error) {
	p := &model.Proforma{}
	err := row.Scan(&p.ID, &p.CreatedBy, &p.Status, &p.VehicleID, &p.ProfileID, &p.FeeModel, &p.Method, &p.Price,
		&p.DownPaymentPct, &p.DownPaymentAmount, &p.TermMonths, &p.PeriodicRate, &p.StartDate, &p.CapitalFinanced,
		&p.TotalInterest, &p.TotalInsurance, &p.TotalDesgravamen, &p.TotalGPS, &p.TotalDebt, &p.FirstInstallment,
		&p.ExpiresAt, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}
