package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"

	"github.com/anyulbade/dealer-credit-simulator/internal/dto"
	"github.com/anyulbade/dealer-credit-simulator/internal/metrics"
	"github.com/anyulbade/dealer-credit-simulator/internal/model"
)

type ProformaStore interface {
	Insert(ctx context.Context, p *model.Proforma) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Proforma, error)
	ListByCreator(ctx context.Context, creator uuid.UUID, limit, offset int) ([]model.Proforma, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to string) (*model.Proforma, error)
	ExpireDrafts(ctx context.Context, now time.Time) (int64, error)
}

// ProformaService saves simulations as proformas. A proforma is always
// recomputed server side and stores only the headline figures.
type ProformaService struct {
	sims     *SimulationService
	store    ProformaStore
	validity time.Duration
	now      func() time.Time
}

func NewProformaService(sims *SimulationService, store ProformaStore, validity time.Duration) *ProformaService {
	return &ProformaService{sims: sims, store: store, validity: validity, now: time.Now}
}

func (s *ProformaService) Create(ctx context.Context, req *dto.SimulationRequest, creator uuid.UUID) (*model.Proforma, error) {
	sim, err := s.sims.Simulate(ctx, req)
	if err != nil {
		return nil, err
	}

	p := newProforma(sim, creator, s.now().Add(s.validity))
	if err := s.store.Insert(ctx, p); err != nil {
		return nil, fmt.Errorf("save proforma: %w", err)
	}
	metrics.ProformasSaved.Inc()

	log.Info().
		Str("proforma_id", p.ID.String()).
		Str("created_by", creator.String()).
		Str("method", p.Method).
		Str("total_debt", p.TotalDebt.StringFixed(2)).
		Msg("proforma saved")
	return p, nil
}

// Get returns a proforma owned by creator. Proformas of other creators are
// reported as not found.
func (s *ProformaService) Get(ctx context.Context, id, creator uuid.UUID) (*model.Proforma, error) {
	p, err := s.store.FindByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) || (err == nil && p.CreatedBy != creator) {
		return nil, fmt.Errorf("proforma %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find proforma: %w", err)
	}
	return p, nil
}

func (s *ProformaService) ListByCreator(ctx context.Context, creator uuid.UUID, limit, offset int) ([]model.Proforma, int, error) {
	proformas, total, err := s.store.ListByCreator(ctx, creator, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	if proformas == nil {
		proformas = []model.Proforma{}
	}
	return proformas, total, nil
}

// UpdateStatus accepts or rejects a draft owned by creator. Any other
// transition fails with ErrInvalidTransition.
func (s *ProformaService) UpdateStatus(ctx context.Context, id, creator uuid.UUID, status string) (*model.Proforma, error) {
	if status != model.ProformaAccepted && status != model.ProformaRejected {
		return nil, fmt.Errorf("%w: cannot move to %s", ErrInvalidTransition, status)
	}

	current, err := s.Get(ctx, id, creator)
	if err != nil {
		return nil, err
	}
	if current.Status != model.ProformaDraft {
		return nil, fmt.Errorf("%w: proforma %s is %s", ErrInvalidTransition, id, current.Status)
	}

	p, err := s.store.UpdateStatus(ctx, id, model.ProformaDraft, status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: proforma %s is no longer a draft", ErrInvalidTransition, id)
	}
	if err != nil {
		return nil, fmt.Errorf("update proforma status: %w", err)
	}

	log.Info().Str("proforma_id", id.String()).Str("status", status).Msg("proforma status updated")
	return p, nil
}

// ExpireStale moves drafts past their validity to EXPIRED.
func (s *ProformaService) ExpireStale(ctx context.Context) (int64, error) {
	n, err := s.store.ExpireDrafts(ctx, s.now())
	if err != nil {
		return 0, err
	}
	metrics.ProformasExpired.Add(float64(n))
	return n, nil
}

func newProforma(sim *Simulation, creator uuid.UUID, expiresAt time.Time) *model.Proforma {
	out := sim.Output.Rounded()
	p := &model.Proforma{
		ID:                uuid.New(),
		CreatedBy:         creator,
		Status:            model.ProformaDraft,
		FeeModel:          string(out.FeeModel),
		Method:            string(out.Method),
		Price:             out.Price,
		DownPaymentPct:    out.DownPaymentPct.Round(4),
		DownPaymentAmount: out.DownPaymentAmount,
		TermMonths:        out.TermMonths,
		PeriodicRate:      out.PeriodicRate.Round(8),
		StartDate:         out.StartDate,
		CapitalFinanced:   out.CapitalFinanced,
		TotalInterest:     out.Totals.TotalInterest,
		TotalInsurance:    out.Totals.TotalInsurance,
		TotalDesgravamen:  out.Totals.TotalDesgravamen,
		TotalGPS:          out.Totals.TotalGPS,
		TotalDebt:         out.Totals.TotalDebt,
		FirstInstallment:  out.Totals.FirstInstallment,
		ExpiresAt:         expiresAt,
	}
	if sim.VehicleID != "" {
		p.VehicleID = &sim.VehicleID
	}
	if sim.ProfileID != "" {
		p.ProfileID = &sim.ProfileID
	}
	return p
}
