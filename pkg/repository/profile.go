package repository

import (
	"github.com/jmoiron/sqlx"

	"social_wallet_back/models"
)

type ProfilePostgres struct {
	db *sqlx.DB
}

func NewProfilePostgres(db *sqlx.DB) *ProfilePostgres {
	return &ProfilePostgres{db: db}
}

func (r *ProfilePostgres) GetProfile(userID int64) (models.Profile, error) {
	var profile models.Profile
	query := `SELECT user_id, username, avatar_url FROM profiles WHERE user_id = $1`
	err := r.db.Get(&profile, query, userID)
	return profile, err
}
