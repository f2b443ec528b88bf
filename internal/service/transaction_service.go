package service

import (
	"context"
	"errors"
	"time"

	"github.com/harold2001/financer-manager-app/internal/dto"
	"github.com/harold2001/financer-manager-app/internal/models"
	"github.com/harold2001/financer-manager-app/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidType         = errors.New("type must be income or expense")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrMissingCategory     = errors.New("category is required")
	ErrMissingDescription  = errors.New("description is required")
	ErrInvalidDate         = errors.New("date must be a valid YYYY-MM-DD date")
)

type TransactionService struct {
	txRepo *repository.TransactionRepository
	logger *zap.Logger
}

func NewTransactionService(txRepo *repository.TransactionRepository, logger *zap.Logger) *TransactionService {
	return &TransactionService{
		txRepo: txRepo,
		logger: logger,
	}
}

func (s *TransactionService) List(ctx context.Context, userID uuid.UUID) ([]*dto.TransactionResponse, error) {
	transactions, err := s.txRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		responses = append(responses, toTransactionResponse(tx))
	}
	return responses, nil
}

func (s *TransactionService) GetByID(ctx context.Context, userID, id uuid.UUID) (*dto.TransactionResponse, error) {
	tx, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return toTransactionResponse(tx), nil
}

func (s *TransactionService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if err := validateTransactionInput(req.Type, req.Amount, req.Category, req.Description); err != nil {
		return nil, err
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	tx := &models.Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        models.TransactionType(req.Type),
		Amount:      req.Amount,
		Category:    sanitizeUTF8(req.Category),
		Date:        date,
		Description: sanitizeUTF8(req.Description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.txRepo.Create(ctx, tx); err != nil {
		return nil, err
	}

	s.logger.Info("Transaction created",
		zap.String("id", tx.ID.String()),
		zap.String("type", string(tx.Type)),
	)

	return toTransactionResponse(tx), nil
}

func (s *TransactionService) Update(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateTransactionRequest) (*dto.TransactionResponse, error) {
	tx, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if err := applyUpdate(tx, req); err != nil {
		return nil, err
	}
	tx.UpdatedAt = time.Now()

	if err := s.txRepo.Update(ctx, tx); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}

	return toTransactionResponse(tx), nil
}

func (s *TransactionService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.txRepo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrTransactionNotFound
		}
		return err
	}

	s.logger.Info("Transaction deleted", zap.String("id", id.String()))
	return nil
}

// getOwned fetches a transaction and hides other users' records behind
// not-found.
func (s *TransactionService) getOwned(ctx context.Context, userID, id uuid.UUID) (*models.Transaction, error) {
	tx, err := s.txRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	if tx.UserID != userID {
		return nil, ErrTransactionNotFound
	}
	return tx, nil
}

func validateTransactionInput(txType string, amount float64, category, description string) error {
	if !models.TransactionType(txType).Valid() {
		return ErrInvalidType
	}
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if category == "" {
		return ErrMissingCategory
	}
	if description == "" {
		return ErrMissingDescription
	}
	return nil
}

func applyUpdate(tx *models.Transaction, req *dto.UpdateTransactionRequest) error {
	if req.Type != nil {
		txType := models.TransactionType(*req.Type)
		if !txType.Valid() {
			return ErrInvalidType
		}
		tx.Type = txType
	}
	if req.Amount != nil {
		if *req.Amount <= 0 {
			return ErrInvalidAmount
		}
		tx.Amount = *req.Amount
	}
	if req.Category != nil {
		if *req.Category == "" {
			return ErrMissingCategory
		}
		tx.Category = sanitizeUTF8(*req.Category)
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return err
		}
		tx.Date = date
	}
	if req.Description != nil {
		if *req.Description == "" {
			return ErrMissingDescription
		}
		tx.Description = sanitizeUTF8(*req.Description)
	}
	return nil
}

func parseDate(s string) (time.Time, error) {
	date, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return date, nil
}

func toTransactionResponse(tx *models.Transaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		ID:          tx.ID.String(),
		Type:        string(tx.Type),
		Amount:      tx.Amount,
		Category:    tx.Category,
		Date:        tx.Date.Format(dateLayout),
		Description: tx.Description,
		UserID:      tx.UserID.String(),
		CreatedAt:   tx.CreatedAt.Format(time.RFC3339),
	}
}
