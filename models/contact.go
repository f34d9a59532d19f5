package models

import "time"

type Contact struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Name      string    `db:"contact_name" json:"contact_name"`
	Address   string    `db:"contact_wallet_address" json:"contact_wallet_address"`
	Network   string    `db:"network" json:"network"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type ContactInput struct {
	Name    string `json:"contact_name" binding:"required"`
	Address string `json:"contact_wallet_address" binding:"required"`
	Network string `json:"network"`
}
