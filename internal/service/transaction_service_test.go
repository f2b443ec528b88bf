package service

import (
	"errors"
	"testing"
	"time"

	"github.com/harold2001/financer-manager-app/internal/dto"
	"github.com/harold2001/financer-manager-app/internal/models"
)

func TestValidateTransactionInput(t *testing.T) {
	tests := []struct {
		name        string
		txType      string
		amount      float64
		category    string
		description string
		wantErr     error
	}{
		{"valid expense", "expense", 12.5, "Food & Dining", "lunch", nil},
		{"valid income", "income", 1000, "Salary", "march salary", nil},
		{"unknown type", "transfer", 10, "Other", "x", ErrInvalidType},
		{"empty type", "", 10, "Other", "x", ErrInvalidType},
		{"zero amount", "expense", 0, "Other", "x", ErrInvalidAmount},
		{"negative amount", "expense", -5, "Other", "x", ErrInvalidAmount},
		{"missing category", "expense", 10, "", "x", ErrMissingCategory},
		{"missing description", "expense", 10, "Other", "", ErrMissingDescription},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTransactionInput(tt.txType, tt.amount, tt.category, tt.description)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	date, err := parseDate("2024-02-29")
	if err != nil {
		t.Fatalf("parseDate: %v", err)
	}
	if date.Year() != 2024 || date.Month() != time.February || date.Day() != 29 {
		t.Errorf("got %v, want 2024-02-29", date)
	}

	for _, bad := range []string{"", "2024-13-01", "2023-02-29", "01/02/2024", "2024-01-05T00:00:00"} {
		if _, err := parseDate(bad); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("parseDate(%q): got %v, want ErrInvalidDate", bad, err)
		}
	}
}

func TestApplyUpdate_Partial(t *testing.T) {
	tx := &models.Transaction{
		Type:        models.TypeExpense,
		Amount:      40,
		Category:    "Food & Dining",
		Date:        time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		Description: "groceries",
	}

	newAmount := 55.5
	newDate := "2024-01-10"
	if err := applyUpdate(tx, &dto.UpdateTransactionRequest{
		Amount: &newAmount,
		Date:   &newDate,
	}); err != nil {
		t.Fatalf("applyUpdate: %v", err)
	}

	if tx.Amount != 55.5 {
		t.Errorf("amount: got %v, want 55.5", tx.Amount)
	}
	if got := tx.Date.Format(dateLayout); got != "2024-01-10" {
		t.Errorf("date: got %q, want %q", got, "2024-01-10")
	}
	if tx.Category != "Food & Dining" || tx.Description != "groceries" {
		t.Error("fields not present in the request must be left unchanged")
	}
	if tx.Type != models.TypeExpense {
		t.Errorf("type: got %q, want %q", tx.Type, models.TypeExpense)
	}
}

func TestApplyUpdate_RejectsInvalidFields(t *testing.T) {
	base := func() *models.Transaction {
		return &models.Transaction{
			Type:        models.TypeExpense,
			Amount:      40,
			Category:    "Food & Dining",
			Date:        time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			Description: "groceries",
		}
	}

	badType := "transfer"
	badAmount := -1.0
	emptyCategory := ""
	badDate := "garbage"
	emptyDescription := ""

	tests := []struct {
		name    string
		req     *dto.UpdateTransactionRequest
		wantErr error
	}{
		{"invalid type", &dto.UpdateTransactionRequest{Type: &badType}, ErrInvalidType},
		{"invalid amount", &dto.UpdateTransactionRequest{Amount: &badAmount}, ErrInvalidAmount},
		{"empty category", &dto.UpdateTransactionRequest{Category: &emptyCategory}, ErrMissingCategory},
		{"invalid date", &dto.UpdateTransactionRequest{Date: &badDate}, ErrInvalidDate},
		{"empty description", &dto.UpdateTransactionRequest{Description: &emptyDescription}, ErrMissingDescription},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := applyUpdate(base(), tt.req); !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSanitizeUTF8(t *testing.T) {
	if got := sanitizeUTF8("café"); got != "café" {
		t.Errorf("valid string must pass through, got %q", got)
	}
	if got := sanitizeUTF8("bad\xffbyte"); got != "badbyte" {
		t.Errorf("invalid bytes must be dropped, got %q", got)
	}
}
