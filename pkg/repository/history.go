package repository

import (
	"github.com/jmoiron/sqlx"

	"social_wallet_back/models"
)

type HistoryPostgres struct {
	db *sqlx.DB
}

func NewHistoryPostgres(db *sqlx.DB) *HistoryPostgres {
	return &HistoryPostgres{db: db}
}

func (r *HistoryPostgres) CreateTransaction(userID int64, txType string, amount float64, description, txHash string) error {
	query := `
        INSERT INTO transactions_history (user_id, type, amount, description, tx_hash)
        VALUES ($1, $2, $3, $4, $5)
    `
	_, err := r.db.Exec(query, userID, txType, amount, description, txHash)
	return err
}

func (r *HistoryPostgres) GetTransactions(userID int64) ([]models.Transaction, error) {
	var transactions []models.Transaction
	query := `
        SELECT id, user_id, type, amount, description, tx_hash, created_at
        FROM transactions_history
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	err := r.db.Select(&transactions, query, userID)
	return transactions, err
}
