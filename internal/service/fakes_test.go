package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/anyulbade/dealer-credit-simulator/internal/model"
)

const (
	kiaID     = "3f0c8a52-8d7e-4f7a-9a11-2b8f6a0d1c01"
	soldOutID = "3f0c8a52-8d7e-4f7a-9a11-2b8f6a0d1c02"
)

type fakeVehicles struct {
	byID map[string]model.Vehicle
}

func newFakeVehicles() *fakeVehicles {
	return &fakeVehicles{byID: map[string]model.Vehicle{
		kiaID:     {ID: kiaID, Brand: "Kia", Model: "Soluto EX", Year: 2025, Price: decimal.RequireFromString("15000"), Available: true},
		soldOutID: {ID: soldOutID, Brand: "Hyundai", Model: "Accent GL", Year: 2024, Price: decimal.RequireFromString("17490"), Available: false},
	}}
}

func (f *fakeVehicles) FindVehicle(_ context.Context, id string) (*model.Vehicle, error) {
	v, ok := f.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &v, nil
}

func (f *fakeVehicles) ListAvailableVehicles(_ context.Context, limit, offset int) ([]model.Vehicle, int, error) {
	var out []model.Vehicle
	for _, v := range f.byID {
		if v.Available {
			out = append(out, v)
		}
	}
	total := len(out)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return out[offset:end], total, nil
}

type fakeProfiles struct {
	byID map[string]model.FinancingProfile
}

func newFakeProfiles() *fakeProfiles {
	money := decimal.RequireFromString
	return &fakeProfiles{byID: map[string]model.FinancingProfile{
		"BANK_A": {
			ID:              "BANK_A",
			Name:            "Bank A",
			AnnualRate:      money("0.18"),
			LegalFee:        money("300"),
			InsuranceRate:   money("0.036"),
			DesgravamenRate: money("0.006"),
			GPSFee:          money("25"),
			GPSBilling:      "MONTHLY",
		},
	}}
}

func (f *fakeProfiles) FindProfile(_ context.Context, id string) (*model.FinancingProfile, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &p, nil
}

func (f *fakeProfiles) ListProfiles(_ context.Context) ([]model.FinancingProfile, error) {
	var out []model.FinancingProfile
	for _, p := range f.byID {
		out = append(out, p)
	}
	return out, nil
}

type fakeProformas struct {
	mu   sync.Mutex
	byID map[uuid.UUID]*model.Proforma
	err  error
}

func newFakeProformas() *fakeProformas {
	return &fakeProformas{byID: map[uuid.UUID]*model.Proforma{}}
}

func (f *fakeProformas) Insert(_ context.Context, p *model.Proforma) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	cp := *p
	f.byID[p.ID] = &cp
	return nil
}

func (f *fakeProformas) FindByID(_ context.Context, id uuid.UUID) (*model.Proforma, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProformas) ListByCreator(_ context.Context, creator uuid.UUID, limit, offset int) ([]model.Proforma, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Proforma
	for _, p := range f.byID {
		if p.CreatedBy == creator {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	total := len(out)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return out[offset:end], total, nil
}

func (f *fakeProformas) UpdateStatus(_ context.Context, id uuid.UUID, from, to string) (*model.Proforma, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.byID[id]
	if !ok || p.Status != from {
		return nil, pgx.ErrNoRows
	}
	p.Status = to
	cp := *p
	return &cp, nil
}

func (f *fakeProformas) ExpireDrafts(_ context.Context, now time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, p := range f.byID {
		if p.Status == model.ProformaDraft && p.ExpiresAt.Before(now) {
			p.Status = model.ProformaExpired
			n++
		}
	}
	return n, nil
}
