package repository

import (
	"github.com/jmoiron/sqlx"

	"social_wallet_back/models"
)

type WalletPostgres struct {
	db *sqlx.DB
}

func NewWalletPostgres(db *sqlx.DB) *WalletPostgres {
	return &WalletPostgres{db: db}
}

func (r *WalletPostgres) CreateWallet(userID int64, privKey, address string) (int64, error) {
	var id int64
	query := `
        INSERT INTO wallets (user_id, private_key, address)
        VALUES ($1, $2, $3)
        RETURNING id
    `
	err := r.db.QueryRow(query, userID, privKey, address).Scan(&id)
	return id, err
}

func (r *WalletPostgres) GetWallet(userID int64) (models.Wallet, error) {
	var wallet models.Wallet
	query := `SELECT id, user_id, private_key, address, created_at FROM wallets WHERE user_id = $1`
	err := r.db.Get(&wallet, query, userID)
	return wallet, err
}
