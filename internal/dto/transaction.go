package dto

type CreateTransactionRequest struct {
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Date        string  `json:"date"` // YYYY-MM-DD
	Description string  `json:"description"`
	UserID      string  `json:"user_id"` // informational; the owner comes from the token
}

// UpdateTransactionRequest is a partial update; nil fields are left unchanged.
type UpdateTransactionRequest struct {
	Type        *string  `json:"type,omitempty"`
	Amount      *float64 `json:"amount,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Date        *string  `json:"date,omitempty"`
	Description *string  `json:"description,omitempty"`
}

type TransactionResponse struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	UserID      string  `json:"user_id"`
	CreatedAt   string  `json:"created_at"`
}
