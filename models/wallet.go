package models

import "time"

type Wallet struct {
	ID         int64     `db:"id" json:"id"`
	UserID     int64     `db:"user_id" json:"user_id"`
	PrivateKey string    `db:"private_key" json:"-"`
	Address    string    `db:"address" json:"address"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

type WalletResponse struct {
	WalletID int64  `json:"id" db:"id"`
	Address  string `json:"address" db:"address"`
}
