package models

import "time"

// TransferState — состояние перевода. Переходы строго последовательные,
// автоматических ретраев нет: любой повтор — новое действие пользователя.
type TransferState string

const (
	StateDraft           TransferState = "DRAFT"
	StateReviewing       TransferState = "REVIEWING"
	StateNetworkMismatch TransferState = "NETWORK_MISMATCH"
	StateConfirming      TransferState = "CONFIRMING"
	StateSubmitting      TransferState = "SUBMITTING"
	StateRecording       TransferState = "RECORDING"
	StateSucceeded       TransferState = "SUCCEEDED"
	StateFailed          TransferState = "FAILED"
)

// TransferDraft — черновик перевода, живёт пока пользователь заполняет форму
type TransferDraft struct {
	TokenSymbol string `json:"token_symbol"`
	Receiver    string `json:"receiver"`
	Amount      string `json:"amount"` // человеческий ввод: '.' — тысячи, ',' — дробная часть
	Network     string `json:"network"`
}

// ReviewResult — итог проверки черновика перед подтверждением
type ReviewResult struct {
	State        TransferState `json:"state"`
	Token        Token         `json:"token"`
	Receiver     string        `json:"receiver"`
	ContactName  string        `json:"contact_name,omitempty"`
	Amount       string        `json:"amount"`
	Network      string        `json:"network"`
	RequiredChId int64         `json:"required_chain_id"`
}

// TransferResult — терминальный исход попытки перевода
type TransferResult struct {
	State  TransferState `json:"state"`
	TxHash string        `json:"tx_hash,omitempty"`
	Error  string        `json:"error,omitempty"`
}

type Transaction struct {
	ID          int64     `db:"id" json:"id"`
	UserID      int64     `db:"user_id" json:"user_id"`
	Type        string    `db:"type" json:"type"`
	Amount      float64   `db:"amount" json:"amount"`
	Description string    `db:"description" json:"description"`
	TxHash      string    `db:"tx_hash" json:"tx_hash"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
