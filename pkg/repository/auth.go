package repository

import (
	"github.com/jmoiron/sqlx"

	"social_wallet_back/models"
)

type AuthPostgres struct {
	db *sqlx.DB
}

func NewAuthPostgres(db *sqlx.DB) *AuthPostgres {
	return &AuthPostgres{db: db}
}

func (r *AuthPostgres) GetUserByExternalId(externalID string) (models.User, error) {
	var user models.User
	query := `SELECT id, external_id, username FROM users WHERE external_id = $1`
	err := r.db.Get(&user, query, externalID)
	return user, err
}

func (r *AuthPostgres) CreateUser(user models.User) (int64, error) {
	var id int64
	query := `
        INSERT INTO users (external_id, username)
        VALUES ($1, $2)
        RETURNING id
    `
	err := r.db.QueryRow(query, user.ExternalID, user.Username).Scan(&id)
	return id, err
}
