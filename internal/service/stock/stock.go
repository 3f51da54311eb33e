package stock

import (
	"context"
	"fmt"
	"strings"

	"fleetdesk/internal/entities"
)

type Stock struct {
	repository Repository
}

func New(repository Repository) *Stock {
	return &Stock{
		repository: repository,
	}
}

func (s *Stock) CreateStockVehicle(ctx context.Context, stockModify entities.StockVehicleModify) (int64, error) {
	if stockModify.VIN == nil ||
		stockModify.Model == nil ||
		stockModify.Trim == nil ||
		stockModify.Color == nil ||
		stockModify.Year == nil ||
		stockModify.Price == nil ||
		stockModify.Location == nil ||
		stockModify.UserID == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidText(*stockModify.Model) ||
		!isValidText(*stockModify.Trim) ||
		!isValidText(*stockModify.Color) ||
		!isValidText(*stockModify.Location) {
		return 0, ErrMissingRequiredFields
	}

	normalizedVIN := strings.ToUpper(strings.TrimSpace(*stockModify.VIN))
	if !isValidVIN(normalizedVIN) {
		return 0, ErrInvalidVIN
	}
	stockModify.VIN = &normalizedVIN

	if !isValidYear(*stockModify.Year) {
		return 0, ErrInvalidYear
	}
	if !isValidPrice(*stockModify.Price) {
		return 0, ErrInvalidPrice
	}

	if stockModify.Status == nil {
		initialStatus := entities.StockAvailable
		stockModify.Status = &initialStatus
	}
	if !isValidStatus(stockModify.Status.String()) {
		return 0, ErrInvalidStatus
	}

	id, err := s.repository.Create(ctx, stockModify)
	if err != nil {
		return 0, fmt.Errorf("create stock vehicle: %w", err)
	}

	return id, nil
}

func (s *Stock) UpdateStockVehicle(ctx context.Context, stockModify entities.StockVehicleModify) (*entities.StockVehicle, error) {
	if stockModify.ID == nil || *stockModify.ID <= 0 {
		return nil, ErrInvalidStockID
	}

	if stockModify.VIN == nil &&
		stockModify.Model == nil &&
		stockModify.Trim == nil &&
		stockModify.Color == nil &&
		stockModify.Year == nil &&
		stockModify.Price == nil &&
		stockModify.Location == nil &&
		stockModify.Status == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if stockModify.VIN != nil {
		normalizedVIN := strings.ToUpper(strings.TrimSpace(*stockModify.VIN))
		if !isValidVIN(normalizedVIN) {
			return nil, ErrInvalidVIN
		}
		stockModify.VIN = &normalizedVIN
	}
	if stockModify.Year != nil && !isValidYear(*stockModify.Year) {
		return nil, ErrInvalidYear
	}
	if stockModify.Price != nil && !isValidPrice(*stockModify.Price) {
		return nil, ErrInvalidPrice
	}
	if stockModify.Status != nil && !isValidStatus(stockModify.Status.String()) {
		return nil, ErrInvalidStatus
	}

	vehicle, err := s.repository.Update(ctx, stockModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update stock vehicle: %w", err)
	}
	return vehicle, nil
}

func (s *Stock) GetStockVehicle(ctx context.Context, id int64) (*entities.StockVehicle, error) {
	if id <= 0 {
		return nil, ErrInvalidStockID
	}

	vehicle, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get stock vehicle: %w", err)
	}

	return vehicle, nil
}

func (s *Stock) GetStockVehicles(ctx context.Context, filter entities.StockFilter) ([]entities.StockVehicle, error) {
	if filter.Status != nil && !isValidStatus(filter.Status.String()) {
		return nil, ErrInvalidStatus
	}

	vehicles, err := s.repository.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get stock vehicles: %w", err)
	}

	return vehicles, nil
}
