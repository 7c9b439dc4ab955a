package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/gayaldassanayake/portfolio-manager/internal/api/request"
	"github.com/gayaldassanayake/portfolio-manager/internal/apperrors"
	"github.com/gayaldassanayake/portfolio-manager/internal/model"
	"github.com/gayaldassanayake/portfolio-manager/internal/repository"
	"github.com/google/uuid"
)

// Status filter values accepted by GetFixedDeposits.
const (
	DepositStatusAll     = "all"
	DepositStatusActive  = "active"
	DepositStatusMatured = "matured"
)

// FixedDepositService handles fixed deposit business logic, including
// the derived value figures shown in listings.
type FixedDepositService struct {
	fixedDepositRepo *repository.FixedDepositRepository
}

// NewFixedDepositService creates a new FixedDepositService with the provided repository dependency.
func NewFixedDepositService(fixedDepositRepo *repository.FixedDepositRepository) *FixedDepositService {
	return &FixedDepositService{
		fixedDepositRepo: fixedDepositRepo,
	}
}

// GetFixedDeposits retrieves deposits enriched with accrued interest,
// current value, and maturity countdown as of today. The status filter
// accepts "active" or "matured" ("" and "all" return everything); the
// institution filter is a case-insensitive substring match.
func (s *FixedDepositService) GetFixedDeposits(status, institution string) ([]model.FixedDepositWithValue, error) {
	deposits, err := s.fixedDepositRepo.GetFixedDeposits()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	enriched := make([]model.FixedDepositWithValue, 0, len(deposits))
	for _, fd := range deposits {
		fdv := enrichDeposit(fd, now)
		switch status {
		case DepositStatusActive:
			if fdv.IsMatured {
				continue
			}
		case DepositStatusMatured:
			if !fdv.IsMatured {
				continue
			}
		}
		if institution != "" &&
			!strings.Contains(strings.ToLower(fdv.InstitutionName), strings.ToLower(institution)) {
			continue
		}
		enriched = append(enriched, fdv)
	}
	return enriched, nil
}

// GetFixedDeposit retrieves a single deposit with its derived values.
func (s *FixedDepositService) GetFixedDeposit(id string) (model.FixedDepositWithValue, error) {
	fd, err := s.fixedDepositRepo.GetFixedDeposit(id)
	if err != nil {
		return model.FixedDepositWithValue{}, err
	}
	return enrichDeposit(fd, time.Now().UTC()), nil
}

// CreateFixedDeposit creates a new fixed deposit record.
func (s *FixedDepositService) CreateFixedDeposit(req request.CreateFixedDepositRequest) (model.FixedDepositWithValue, error) {
	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return model.FixedDepositWithValue{}, err
	}
	maturityDate, err := time.Parse("2006-01-02", req.MaturityDate)
	if err != nil {
		return model.FixedDepositWithValue{}, err
	}

	now := time.Now().UTC()
	fd := model.FixedDeposit{
		ID:                uuid.New().String(),
		InstitutionName:   req.InstitutionName,
		AccountNumber:     req.AccountNumber,
		PrincipalAmount:   req.PrincipalAmount,
		InterestRate:      req.InterestRate,
		StartDate:         startDate.UTC(),
		MaturityDate:      maturityDate.UTC(),
		PayoutFrequency:   req.PayoutFrequency,
		CalculationMethod: req.CalculationMethod,
		Notes:             req.Notes,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.fixedDepositRepo.CreateFixedDeposit(fd); err != nil {
		return model.FixedDepositWithValue{}, fmt.Errorf("failed to create fixed deposit: %w", err)
	}
	return enrichDeposit(fd, now), nil
}

// UpdateFixedDeposit applies the provided fields to an existing deposit.
// Date changes are checked against the stored record so the maturity
// date can never end up on or before the start date.
func (s *FixedDepositService) UpdateFixedDeposit(id string, req request.UpdateFixedDepositRequest) (model.FixedDepositWithValue, error) {
	fd, err := s.fixedDepositRepo.GetFixedDeposit(id)
	if err != nil {
		return model.FixedDepositWithValue{}, err
	}

	if req.InstitutionName != nil {
		fd.InstitutionName = *req.InstitutionName
	}
	if req.AccountNumber != nil {
		fd.AccountNumber = *req.AccountNumber
	}
	if req.PrincipalAmount != nil {
		fd.PrincipalAmount = *req.PrincipalAmount
	}
	if req.InterestRate != nil {
		fd.InterestRate = *req.InterestRate
	}
	if req.StartDate != nil {
		startDate, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			return model.FixedDepositWithValue{}, err
		}
		fd.StartDate = startDate.UTC()
	}
	if req.MaturityDate != nil {
		maturityDate, err := time.Parse("2006-01-02", *req.MaturityDate)
		if err != nil {
			return model.FixedDepositWithValue{}, err
		}
		fd.MaturityDate = maturityDate.UTC()
	}
	if !fd.MaturityDate.After(fd.StartDate) {
		return model.FixedDepositWithValue{}, apperrors.ErrInvalidDateRange
	}
	if req.PayoutFrequency != nil {
		fd.PayoutFrequency = *req.PayoutFrequency
	}
	if req.CalculationMethod != nil {
		fd.CalculationMethod = *req.CalculationMethod
	}
	if req.Notes != nil {
		fd.Notes = *req.Notes
	}
	fd.UpdatedAt = time.Now().UTC()

	if err := s.fixedDepositRepo.UpdateFixedDeposit(fd); err != nil {
		return model.FixedDepositWithValue{}, err
	}
	return enrichDeposit(fd, fd.UpdatedAt), nil
}

// DeleteFixedDeposit removes a deposit and its notification logs.
func (s *FixedDepositService) DeleteFixedDeposit(id string) error {
	return s.fixedDepositRepo.DeleteFixedDeposit(id)
}

// PreviewInterest calculates interest figures for prospective deposit
// terms without persisting anything.
func (s *FixedDepositService) PreviewInterest(req request.InterestPreviewRequest) (model.InterestPreview, error) {
	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return model.InterestPreview{}, err
	}
	maturityDate, err := time.Parse("2006-01-02", req.MaturityDate)
	if err != nil {
		return model.InterestPreview{}, err
	}
	asOf := time.Now().UTC()
	if req.AsOfDate != "" {
		asOf, err = time.Parse("2006-01-02", req.AsOfDate)
		if err != nil {
			return model.InterestPreview{}, err
		}
	}
	return PreviewInterest(req.PrincipalAmount, req.InterestRate,
		startDate.UTC(), maturityDate.UTC(), req.PayoutFrequency, req.CalculationMethod, asOf.UTC()), nil
}

func enrichDeposit(fd model.FixedDeposit, now time.Time) model.FixedDepositWithValue {
	preview := PreviewInterest(fd.PrincipalAmount, fd.InterestRate,
		fd.StartDate, fd.MaturityDate, fd.PayoutFrequency, fd.CalculationMethod, now)

	return model.FixedDepositWithValue{
		FixedDepositResponse: fd.ToResponse(),
		CurrentValue:         preview.CurrentValue,
		AccruedInterest:      preview.CurrentInterest,
		DaysToMaturity:       daysBetween(now, fd.MaturityDate),
		IsMatured:            daysBetween(now, fd.MaturityDate) <= 0,
		TermDays:             preview.TermDays,
	}
}
