package repository

import (
	"github.com/jmoiron/sqlx"

	"social_wallet_back/models"
)

type ContactPostgres struct {
	db *sqlx.DB
}

func NewContactPostgres(db *sqlx.DB) *ContactPostgres {
	return &ContactPostgres{db: db}
}

func (r *ContactPostgres) GetContacts(userID int64) ([]models.Contact, error) {
	var contacts []models.Contact
	query := `
        SELECT id, user_id, contact_name, contact_wallet_address, network, created_at
        FROM wallet_contacts
        WHERE user_id = $1
        ORDER BY contact_name
    `
	err := r.db.Select(&contacts, query, userID)
	return contacts, err
}

func (r *ContactPostgres) CreateContact(userID int64, input models.ContactInput) (int64, error) {
	var id int64
	query := `
        INSERT INTO wallet_contacts (user_id, contact_name, contact_wallet_address, network)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `
	err := r.db.QueryRow(query, userID, input.Name, input.Address, input.Network).Scan(&id)
	return id, err
}

func (r *ContactPostgres) DeleteContact(userID, contactID int64) error {
	query := `DELETE FROM wallet_contacts WHERE id = $1 AND user_id = $2`
	_, err := r.db.Exec(query, contactID, userID)
	return err
}
