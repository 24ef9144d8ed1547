package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/anyulbade/dealer-credit-simulator/internal/model"
)

type VehicleStore interface {
	FindVehicle(ctx context.Context, id string) (*model.Vehicle, error)
	ListAvailableVehicles(ctx context.Context, limit, offset int) ([]model.Vehicle, int, error)
}

type ProfileStore interface {
	FindProfile(ctx context.Context, id string) (*model.FinancingProfile, error)
	ListProfiles(ctx context.Context) ([]model.FinancingProfile, error)
}

// CatalogService exposes the vehicle inventory and the financing profiles.
// Both are read-only here.
type CatalogService struct {
	vehicles VehicleStore
	profiles ProfileStore
}

func NewCatalogService(vehicles VehicleStore, profiles ProfileStore) *CatalogService {
	return &CatalogService{vehicles: vehicles, profiles: profiles}
}

func (s *CatalogService) ListVehicles(ctx context.Context, limit, offset int) ([]model.Vehicle, int, error) {
	vehicles, total, err := s.vehicles.ListAvailableVehicles(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	if vehicles == nil {
		vehicles = []model.Vehicle{}
	}
	return vehicles, total, nil
}

func (s *CatalogService) GetVehicle(ctx context.Context, id string) (*model.Vehicle, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("vehicle %q: %w", id, ErrNotFound)
	}
	v, err := s.vehicles.FindVehicle(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("vehicle %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find vehicle: %w", err)
	}
	return v, nil
}

func (s *CatalogService) ListProfiles(ctx context.Context) ([]model.FinancingProfile, error) {
	profiles, err := s.profiles.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}
	if profiles == nil {
		profiles = []model.FinancingProfile{}
	}
	return profiles, nil
}

func (s *CatalogService) GetProfile(ctx context.Context, id string) (*model.FinancingProfile, error) {
	p, err := s.profiles.FindProfile(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("financing profile %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return p, nil
}
