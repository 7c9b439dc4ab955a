package service

import (
	"fmt"
	"time"

	"github.com/gayaldassanayake/portfolio-manager/internal/api/request"
	"github.com/gayaldassanayake/portfolio-manager/internal/model"
	"github.com/gayaldassanayake/portfolio-manager/internal/performance"
	"github.com/gayaldassanayake/portfolio-manager/internal/repository"
	"github.com/google/uuid"
)

// TransactionService handles buy/sell transaction business logic. Sells
// are validated against the replayed position so the ledger can never
// record more units leaving than were ever held.
type TransactionService struct {
	transactionRepo *repository.TransactionRepository
	unitTrustRepo   *repository.UnitTrustRepository
}

// NewTransactionService creates a new TransactionService with the provided repository dependencies.
func NewTransactionService(
	transactionRepo *repository.TransactionRepository,
	unitTrustRepo *repository.UnitTrustRepository,
) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		unitTrustRepo:   unitTrustRepo,
	}
}

// GetTransactions retrieves transactions enriched with unit trust names,
// optionally filtered to one trust and an inclusive date range.
func (s *TransactionService) GetTransactions(unitTrustID string, startDate, endDate time.Time) ([]model.TransactionResponse, error) {
	if unitTrustID != "" {
		if _, err := s.unitTrustRepo.GetUnitTrust(unitTrustID); err != nil {
			return nil, err
		}
	}
	txns, err := s.transactionRepo.GetTransactions(unitTrustID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	return s.toResponses(txns)
}

// GetTransaction retrieves a single transaction by ID.
func (s *TransactionService) GetTransaction(id string) (model.TransactionResponse, error) {
	tx, err := s.transactionRepo.GetTransaction(id)
	if err != nil {
		return model.TransactionResponse{}, err
	}
	responses, err := s.toResponses([]model.Transaction{tx})
	if err != nil {
		return model.TransactionResponse{}, err
	}
	return responses[0], nil
}

// CreateTransaction records a buy or sell. A sell is rejected with
// apperrors.ErrInsufficientUnits when replaying the ledger with it would
// drive the position negative at any point.
func (s *TransactionService) CreateTransaction(req request.CreateTransactionRequest) (model.TransactionResponse, error) {
	if _, err := s.unitTrustRepo.GetUnitTrust(req.UnitTrustID); err != nil {
		return model.TransactionResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return model.TransactionResponse{}, err
	}

	tx := model.Transaction{
		ID:           uuid.New().String(),
		UnitTrustID:  req.UnitTrustID,
		Type:         req.Type,
		Units:        req.Units,
		PricePerUnit: req.PricePerUnit,
		Date:         date.UTC(),
		Notes:        req.Notes,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.checkLedger(req.UnitTrustID, &tx, ""); err != nil {
		return model.TransactionResponse{}, err
	}

	if err := s.transactionRepo.CreateTransaction(tx); err != nil {
		return model.TransactionResponse{}, fmt.Errorf("failed to create transaction: %w", err)
	}
	responses, err := s.toResponses([]model.Transaction{tx})
	if err != nil {
		return model.TransactionResponse{}, err
	}
	return responses[0], nil
}

// UpdateTransaction applies the provided fields to an existing
// transaction, re-validating the whole ledger with the modified record
// in place.
func (s *TransactionService) UpdateTransaction(id string, req request.UpdateTransactionRequest) (model.TransactionResponse, error) {
	tx, err := s.transactionRepo.GetTransaction(id)
	if err != nil {
		return model.TransactionResponse{}, err
	}

	if req.Type != nil {
		tx.Type = *req.Type
	}
	if req.Units != nil {
		tx.Units = *req.Units
	}
	if req.PricePerUnit != nil {
		tx.PricePerUnit = *req.PricePerUnit
	}
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return model.TransactionResponse{}, err
		}
		tx.Date = date.UTC()
	}
	if req.Notes != nil {
		tx.Notes = *req.Notes
	}

	if err := s.checkLedger(tx.UnitTrustID, &tx, id); err != nil {
		return model.TransactionResponse{}, err
	}

	if err := s.transactionRepo.UpdateTransaction(tx); err != nil {
		return model.TransactionResponse{}, err
	}
	responses, err := s.toResponses([]model.Transaction{tx})
	if err != nil {
		return model.TransactionResponse{}, err
	}
	return responses[0], nil
}

// DeleteTransaction removes a transaction record after replaying the
// ledger without it. Deleting a buy that later sells depend on is
// rejected with apperrors.ErrInsufficientUnits, the same as a create or
// update that would oversell.
func (s *TransactionService) DeleteTransaction(id string) error {
	tx, err := s.transactionRepo.GetTransaction(id)
	if err != nil {
		return err
	}
	if err := s.checkLedger(tx.UnitTrustID, nil, id); err != nil {
		return err
	}
	return s.transactionRepo.DeleteTransaction(id)
}

// checkLedger replays the trust's transactions with excludeID removed
// and candidate (when non-nil) included, and surfaces any oversell.
func (s *TransactionService) checkLedger(unitTrustID string, candidate *model.Transaction, excludeID string) error {
	existing, err := s.transactionRepo.GetTransactions(unitTrustID, time.Time{}, time.Time{})
	if err != nil {
		return err
	}
	ledger := make([]model.Transaction, 0, len(existing)+1)
	for _, tx := range existing {
		if tx.ID == excludeID {
			continue
		}
		ledger = append(ledger, tx)
	}
	if candidate != nil {
		ledger = append(ledger, *candidate)
	}

	_, err = performance.ComputeHolding(ledger, time.Time{})
	return err
}

func (s *TransactionService) toResponses(txns []model.Transaction) ([]model.TransactionResponse, error) {
	trusts, err := s.unitTrustRepo.GetUnitTrusts()
	if err != nil {
		return nil, err
	}
	trustByID := make(map[string]model.UnitTrust, len(trusts))
	for _, ut := range trusts {
		trustByID[ut.ID] = ut
	}

	responses := make([]model.TransactionResponse, 0, len(txns))
	for _, tx := range txns {
		ut := trustByID[tx.UnitTrustID]
		responses = append(responses, model.TransactionResponse{
			ID:              tx.ID,
			UnitTrustID:     tx.UnitTrustID,
			UnitTrustName:   ut.Name,
			UnitTrustSymbol: ut.Symbol,
			Type:            tx.Type,
			Units:           tx.Units,
			PricePerUnit:    tx.PricePerUnit,
			Date:            tx.Date.Format("2006-01-02"),
			Notes:           tx.Notes,
		})
	}
	return responses, nil
}
