package repository

import (
	"github.com/jmoiron/sqlx"

	"social_wallet_back/models"
)

type Authorization interface {
	GetUserByExternalId(externalID string) (models.User, error)
	CreateUser(models.User) (int64, error)
}

type Wallet interface {
	CreateWallet(userID int64, privKey, address string) (int64, error)
	GetWallet(userID int64) (models.Wallet, error)
}

type Contact interface {
	GetContacts(userID int64) ([]models.Contact, error)
	CreateContact(userID int64, input models.ContactInput) (int64, error)
	DeleteContact(userID, contactID int64) error
}

// History — append-only журнал переводов
type History interface {
	CreateTransaction(userID int64, txType string, amount float64, description, txHash string) error
	GetTransactions(userID int64) ([]models.Transaction, error)
}

type Profile interface {
	GetProfile(userID int64) (models.Profile, error)
}

type Repository struct {
	Authorization
	Wallet
	Contact
	History
	Profile
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Authorization: NewAuthPostgres(db),
		Wallet:        NewWalletPostgres(db),
		Contact:       NewContactPostgres(db),
		History:       NewHistoryPostgres(db),
		Profile:       NewProfilePostgres(db),
	}
}
