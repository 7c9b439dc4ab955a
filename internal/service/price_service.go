package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/gayaldassanayake/portfolio-manager/internal/api/request"
	"github.com/gayaldassanayake/portfolio-manager/internal/apperrors"
	"github.com/gayaldassanayake/portfolio-manager/internal/model"
	"github.com/gayaldassanayake/portfolio-manager/internal/provider"
	"github.com/gayaldassanayake/portfolio-manager/internal/repository"
)

// fetchConcurrency caps parallel provider requests during bulk refresh.
const fetchConcurrency = 4

// FetchResult summarizes one trust's provider fetch during a refresh.
type FetchResult struct {
	UnitTrustID string `json:"unitTrustId"`
	Symbol      string `json:"symbol"`
	Fetched     int    `json:"fetched"`
	Inserted    int    `json:"inserted"`
	Error       string `json:"error,omitempty"`
}

// BulkCreateResult summarizes a bulk price import.
type BulkCreateResult struct {
	Received int `json:"received"`
	Inserted int `json:"inserted"`
}

// PriceService handles price record management and provider fetches.
type PriceService struct {
	priceRepo     *repository.PriceRepository
	unitTrustRepo *repository.UnitTrustRepository
	providers     *provider.Registry
}

// NewPriceService creates a new PriceService with the provided dependencies.
func NewPriceService(
	priceRepo *repository.PriceRepository,
	unitTrustRepo *repository.UnitTrustRepository,
	providers *provider.Registry,
) *PriceService {
	return &PriceService{
		priceRepo:     priceRepo,
		unitTrustRepo: unitTrustRepo,
		providers:     providers,
	}
}

// GetPrices retrieves a unit trust's prices within the optional date
// range, oldest first. The trust must exist.
func (s *PriceService) GetPrices(unitTrustID string, startDate, endDate time.Time) ([]model.PriceResponse, error) {
	if _, err := s.unitTrustRepo.GetUnitTrust(unitTrustID); err != nil {
		return nil, err
	}
	prices, err := s.priceRepo.GetPrices(unitTrustID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	responses := make([]model.PriceResponse, 0, len(prices))
	for _, p := range prices {
		responses = append(responses, p.ToResponse())
	}
	return responses, nil
}

// CreatePrice records a manually entered price. One price per trust per
// day; a second entry for the same date is rejected.
func (s *PriceService) CreatePrice(req request.CreatePriceRequest) (model.PriceResponse, error) {
	if _, err := s.unitTrustRepo.GetUnitTrust(req.UnitTrustID); err != nil {
		return model.PriceResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return model.PriceResponse{}, err
	}

	exists, err := s.priceRepo.PriceExists(req.UnitTrustID, date)
	if err != nil {
		return model.PriceResponse{}, err
	}
	if exists {
		return model.PriceResponse{}, apperrors.ErrDuplicatePrice
	}

	p := model.Price{
		ID:          uuid.New().String(),
		UnitTrustID: req.UnitTrustID,
		Date:        date,
		Price:       req.Price,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.priceRepo.CreatePrice(p); err != nil {
		return model.PriceResponse{}, fmt.Errorf("failed to create price: %w", err)
	}
	return p.ToResponse(), nil
}

// BulkCreatePrices imports a batch of prices for one unit trust in a
// single statement, skipping dates already recorded. Returns how many
// entries were received and how many were actually inserted.
func (s *PriceService) BulkCreatePrices(req request.BulkCreatePricesRequest) (BulkCreateResult, error) {
	if _, err := s.unitTrustRepo.GetUnitTrust(req.UnitTrustID); err != nil {
		return BulkCreateResult{}, err
	}

	rows := make([]model.Price, 0, len(req.Prices))
	now := time.Now().UTC()
	for _, entry := range req.Prices {
		date, err := time.Parse("2006-01-02", entry.Date)
		if err != nil {
			return BulkCreateResult{}, err
		}
		rows = append(rows, model.Price{
			ID:          uuid.New().String(),
			UnitTrustID: req.UnitTrustID,
			Date:        date,
			Price:       entry.Price,
			CreatedAt:   now,
		})
	}

	inserted, err := s.priceRepo.BulkCreatePrices(rows)
	if err != nil {
		return BulkCreateResult{}, err
	}
	return BulkCreateResult{Received: len(rows), Inserted: inserted}, nil
}

// UpdatePrice rewrites the value of an existing price record.
func (s *PriceService) UpdatePrice(id string, req request.UpdatePriceRequest) (model.PriceResponse, error) {
	if err := s.priceRepo.UpdatePrice(id, *req.Price); err != nil {
		return model.PriceResponse{}, err
	}
	p, err := s.priceRepo.GetPrice(id)
	if err != nil {
		return model.PriceResponse{}, err
	}
	return p.ToResponse(), nil
}

// DeletePrice removes a price record.
func (s *PriceService) DeletePrice(id string) error {
	return s.priceRepo.DeletePrice(id)
}

// FetchPrices pulls historical prices for one unit trust from its
// configured provider and stores them, skipping dates already recorded.
func (s *PriceService) FetchPrices(ctx context.Context, unitTrustID string, startDate, endDate time.Time) (FetchResult, error) {
	ut, err := s.unitTrustRepo.GetUnitTrust(unitTrustID)
	if err != nil {
		return FetchResult{}, err
	}
	if ut.Provider == "" {
		return FetchResult{}, fmt.Errorf("unit trust %s has no provider configured: %w",
			ut.Symbol, apperrors.ErrProviderNotFound)
	}
	src, err := s.providers.Get(ut.Provider)
	if err != nil {
		return FetchResult{}, err
	}

	fetched, err := src.FetchPrices(ctx, ut.Symbol, startDate, endDate)
	if err != nil {
		return FetchResult{}, fmt.Errorf("%w: %s", apperrors.ErrFailedToFetchPrices, err)
	}

	rows := make([]model.Price, 0, len(fetched))
	now := time.Now().UTC()
	for _, fp := range fetched {
		rows = append(rows, model.Price{
			ID:          uuid.New().String(),
			UnitTrustID: ut.ID,
			Date:        fp.Date,
			Price:       fp.Price,
			CreatedAt:   now,
		})
	}
	inserted, err := s.priceRepo.BulkCreatePrices(rows)
	if err != nil {
		return FetchResult{}, err
	}
	return FetchResult{
		UnitTrustID: ut.ID,
		Symbol:      ut.Symbol,
		Fetched:     len(fetched),
		Inserted:    inserted,
	}, nil
}

// RefreshAllPrices fetches the trailing week of prices for every
// provider-backed unit trust, a bounded number at a time. Per-trust
// failures are reported in the results rather than aborting the batch.
func (s *PriceService) RefreshAllPrices(ctx context.Context) ([]FetchResult, error) {
	trusts, err := s.unitTrustRepo.GetUnitTrusts()
	if err != nil {
		return nil, err
	}

	endDate := time.Now().UTC()
	startDate := endDate.AddDate(0, 0, -7)

	var mu sync.Mutex
	results := []FetchResult{}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)
	for _, ut := range trusts {
		if ut.Provider == "" {
			continue
		}
		ut := ut
		g.Go(func() error {
			result, err := s.FetchPrices(ctx, ut.ID, startDate, endDate)
			if err != nil {
				result = FetchResult{UnitTrustID: ut.ID, Symbol: ut.Symbol, Error: err.Error()}
			}
			mu.Lock()
			results = append(results, result)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
