package service

import (
	"fmt"
	"time"

	"github.com/gayaldassanayake/portfolio-manager/internal/api/request"
	"github.com/gayaldassanayake/portfolio-manager/internal/apperrors"
	"github.com/gayaldassanayake/portfolio-manager/internal/model"
	"github.com/gayaldassanayake/portfolio-manager/internal/performance"
	"github.com/gayaldassanayake/portfolio-manager/internal/repository"
	"github.com/google/uuid"
)

// UnitTrustService handles unit trust business logic, including the
// derived per-trust statistics shown in listings.
type UnitTrustService struct {
	unitTrustRepo   *repository.UnitTrustRepository
	priceRepo       *repository.PriceRepository
	transactionRepo *repository.TransactionRepository
}

// NewUnitTrustService creates a new UnitTrustService with the provided repository dependencies.
func NewUnitTrustService(
	unitTrustRepo *repository.UnitTrustRepository,
	priceRepo *repository.PriceRepository,
	transactionRepo *repository.TransactionRepository,
) *UnitTrustService {
	return &UnitTrustService{
		unitTrustRepo:   unitTrustRepo,
		priceRepo:       priceRepo,
		transactionRepo: transactionRepo,
	}
}

// GetUnitTrusts retrieves all unit trusts enriched with derived holding
// statistics: units held, average cost, latest price, and current value.
func (s *UnitTrustService) GetUnitTrusts() ([]model.UnitTrustStats, error) {
	trusts, err := s.unitTrustRepo.GetUnitTrusts()
	if err != nil {
		return nil, err
	}
	txnsByTrust, err := s.transactionRepo.GetTransactionsByTrust()
	if err != nil {
		return nil, err
	}
	latestPrices, err := s.priceRepo.GetLatestPrices()
	if err != nil {
		return nil, err
	}

	stats := make([]model.UnitTrustStats, 0, len(trusts))
	for _, ut := range trusts {
		holding, err := performance.ComputeHolding(txnsByTrust[ut.ID], time.Now())
		if err != nil {
			return nil, fmt.Errorf("failed to compute holding for %s: %w", ut.ID, err)
		}

		st := model.UnitTrustStats{
			UnitTrust:      ut,
			UnitsHeld:      holding.UnitsHeld,
			AvgCostPerUnit: round(holding.AvgCostPerUnit),
		}
		if latest, ok := latestPrices[ut.ID]; ok {
			p := latest.Price
			st.LatestPrice = &p
			st.CurrentValue = round(holding.UnitsHeld * p)
		}
		stats = append(stats, st)
	}
	return stats, nil
}

// GetUnitTrust retrieves a single unit trust by ID.
func (s *UnitTrustService) GetUnitTrust(id string) (model.UnitTrust, error) {
	return s.unitTrustRepo.GetUnitTrust(id)
}

// CreateUnitTrust creates a new unit trust. Symbols must be unique
// across all trusts.
func (s *UnitTrustService) CreateUnitTrust(req request.CreateUnitTrustRequest) (model.UnitTrust, error) {
	exists, err := s.unitTrustRepo.SymbolExists(req.Symbol, "")
	if err != nil {
		return model.UnitTrust{}, err
	}
	if exists {
		return model.UnitTrust{}, apperrors.ErrDuplicateSymbol
	}

	ut := model.UnitTrust{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Symbol:      req.Symbol,
		Description: req.Description,
		Provider:    req.Provider,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.unitTrustRepo.CreateUnitTrust(ut); err != nil {
		return model.UnitTrust{}, fmt.Errorf("failed to create unit trust: %w", err)
	}
	return ut, nil
}

// UpdateUnitTrust applies the provided fields to an existing unit trust.
func (s *UnitTrustService) UpdateUnitTrust(id string, req request.UpdateUnitTrustRequest) (model.UnitTrust, error) {
	ut, err := s.unitTrustRepo.GetUnitTrust(id)
	if err != nil {
		return model.UnitTrust{}, err
	}

	if req.Name != nil {
		ut.Name = *req.Name
	}
	if req.Symbol != nil {
		exists, err := s.unitTrustRepo.SymbolExists(*req.Symbol, id)
		if err != nil {
			return model.UnitTrust{}, err
		}
		if exists {
			return model.UnitTrust{}, apperrors.ErrDuplicateSymbol
		}
		ut.Symbol = *req.Symbol
	}
	if req.Description != nil {
		ut.Description = *req.Description
	}
	if req.Provider != nil {
		ut.Provider = *req.Provider
	}

	if err := s.unitTrustRepo.UpdateUnitTrust(ut); err != nil {
		return model.UnitTrust{}, err
	}
	return ut, nil
}

// DeleteUnitTrust removes a unit trust along with its prices and
// transactions.
func (s *UnitTrustService) DeleteUnitTrust(id string) error {
	return s.unitTrustRepo.DeleteUnitTrust(id)
}
