package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/anyulbade/dealer-credit-simulator/internal/credit"
	"github.com/anyulbade/dealer-credit-simulator/internal/dto"
	"github.com/anyulbade/dealer-credit-simulator/internal/metrics"
	"github.com/anyulbade/dealer-credit-simulator/internal/model"
)

var tracer = otel.Tracer("github.com/anyulbade/dealer-credit-simulator/internal/service")

var hundred = decimal.NewFromInt(100)

// Policy holds the dealership rules applied to every simulation.
type Policy struct {
	MinDownPaymentPct decimal.Decimal
	MaxTermMonths     int
}

type SimulationService struct {
	catalog *CatalogService
	policy  Policy
	now     func() time.Time
}

func NewSimulationService(catalog *CatalogService, policy Policy) *SimulationService {
	return &SimulationService{catalog: catalog, policy: policy, now: time.Now}
}

// Simulation is an engine result together with the reference data it was
// computed from.
type Simulation struct {
	Output    *credit.Output
	VehicleID string
	ProfileID string
}

func (s *SimulationService) Simulate(ctx context.Context, req *dto.SimulationRequest) (*Simulation, error) {
	ctx, span := tracer.Start(ctx, "SimulationService.Simulate",
		trace.WithAttributes(attribute.String("credit.method", req.Method)))
	defer span.End()
	started := time.Now()

	sim, err := s.simulate(ctx, &req.SimulationParams, req.Method)
	label := methodLabel(req.Method)
	metrics.SimulationsTotal.WithLabelValues(label, metrics.Outcome(err)).Inc()
	metrics.SimulationDuration.WithLabelValues(label).Observe(time.Since(started).Seconds())
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("credit.term_months", sim.Output.TermMonths),
		attribute.String("credit.fee_model", string(sim.Output.FeeModel)),
	)
	return sim, nil
}

func (s *SimulationService) simulate(ctx context.Context, params *dto.SimulationParams, method string) (*Simulation, error) {
	m, err := credit.ParseMethod(method)
	if err != nil {
		return nil, err
	}
	in, err := s.buildInput(ctx, params)
	if err != nil {
		return nil, err
	}
	in.Method = m

	out, err := credit.Simulate(in)
	if err != nil {
		return nil, err
	}
	return &Simulation{Output: out, VehicleID: params.VehicleID, ProfileID: params.ProfileID}, nil
}

func (s *SimulationService) Compare(ctx context.Context, req *dto.CompareRequest) (*credit.Comparison, error) {
	ctx, span := tracer.Start(ctx, "SimulationService.Compare")
	defer span.End()

	methods := make([]credit.Method, 0, len(req.Methods))
	for _, raw := range req.Methods {
		m, err := credit.ParseMethod(raw)
		if err != nil {
			recordError(span, err)
			return nil, err
		}
		methods = append(methods, m)
	}

	in, err := s.buildInput(ctx, &req.SimulationParams)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	cmp, err := credit.Compare(in, methods...)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	log.Debug().
		Str("cheapest", string(cmp.Cheapest)).
		Str("savings", cmp.Savings.StringFixed(2)).
		Msg("methods compared")
	return cmp, nil
}

// buildInput resolves the vehicle and profile concurrently and maps the
// request onto an engine input. Engine-level validation is left to the engine.
func (s *SimulationService) buildInput(ctx context.Context, p *dto.SimulationParams) (credit.Input, error) {
	if s.policy.MaxTermMonths > 0 && p.TermMonths > s.policy.MaxTermMonths {
		return credit.Input{}, &credit.FieldError{
			Kind:    credit.ErrInvalidInput,
			Field:   "term_months",
			Message: fmt.Sprintf("must not exceed %d months", s.policy.MaxTermMonths),
		}
	}
	start, err := s.startDate(p.StartDate)
	if err != nil {
		return credit.Input{}, err
	}

	var (
		vehicle *model.Vehicle
		profile *model.FinancingProfile
	)
	g, gctx := errgroup.WithContext(ctx)
	if p.VehicleID != "" {
		g.Go(func() error {
			v, err := s.availableVehicle(gctx, p.VehicleID)
			vehicle = v
			return err
		})
	}
	if p.ProfileID != "" {
		g.Go(func() error {
			pr, err := s.profile(gctx, p.ProfileID)
			profile = pr
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return credit.Input{}, err
	}

	in := credit.Input{
		DownPayment: credit.DownPaymentInput{
			Mode:       credit.DownPaymentMode(p.DownPaymentMode),
			Percentage: p.DownPaymentPct,
			Amount:     p.DownPaymentAmount,
		},
		MinDownPaymentPct: s.policy.MinDownPaymentPct,
		TermMonths:        p.TermMonths,
		StartDate:         start,
	}
	switch {
	case vehicle != nil:
		in.Price = vehicle.Price
	case p.Price != nil:
		in.Price = *p.Price
	}
	if profile != nil {
		in.Profile = toEngineProfile(profile)
	}
	if p.Direct != nil {
		in.Direct = &credit.DirectTerms{
			MonthlyRate:     p.Direct.MonthlyRatePct.Div(hundred),
			LegalFee:        p.Direct.LegalFee,
			GPSFee:          p.Direct.GPSFee,
			InsuranceRate:   p.Direct.InsuranceRatePct.Div(hundred),
			DesgravamenRate: p.Direct.DesgravamenRatePct.Div(hundred),
		}
	}
	return in, nil
}

func (s *SimulationService) availableVehicle(ctx context.Context, id string) (*model.Vehicle, error) {
	v, err := s.catalog.GetVehicle(ctx, id)
	if err != nil {
		return nil, err
	}
	if !v.Available {
		return nil, &credit.FieldError{Kind: credit.ErrInvalidInput, Field: "vehicle_id", Message: "is not available"}
	}
	return v, nil
}

func (s *SimulationService) profile(ctx context.Context, id string) (*model.FinancingProfile, error) {
	p, err := s.catalog.GetProfile(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, &credit.FieldError{
			Kind:    credit.ErrConfiguration,
			Field:   "profile_id",
			Message: fmt.Sprintf("unknown financing profile %q", id),
		}
	}
	return p, err
}

func (s *SimulationService) startDate(raw string) (time.Time, error) {
	if raw == "" {
		y, m, d := s.now().Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	start, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, &credit.FieldError{Kind: credit.ErrInvalidInput, Field: "start_date", Message: "must be formatted as YYYY-MM-DD"}
	}
	return start, nil
}

// methodLabel keeps metric label values to the supported methods.
func methodLabel(raw string) string {
	m, err := credit.ParseMethod(raw)
	if err != nil {
		return "UNKNOWN"
	}
	return string(m)
}

func toEngineProfile(p *model.FinancingProfile) *credit.FinancingProfile {
	return &credit.FinancingProfile{
		ID:              p.ID,
		Name:            p.Name,
		AnnualRate:      p.AnnualRate,
		LegalFee:        p.LegalFee,
		InsuranceRate:   p.InsuranceRate,
		DesgravamenRate: p.DesgravamenRate,
		GPSFee:          p.GPSFee,
		GPSBilling:      credit.GPSBilling(p.GPSBilling),
	}
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
