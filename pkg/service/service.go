package service

import (
	"context"
	"math/big"

	"social_wallet_back/models"
	"social_wallet_back/pkg/repository"
)

// ChainClient — возможности подключённых сетей. Балансы читаются из любой
// поддерживаемой сети по chainID; отправка идёт через активную сеть.
type ChainClient interface {
	ActiveChainID() int64
	SwitchChain(chainID int64) error
	NativeBalance(ctx context.Context, chainID int64, address string) (*big.Int, error)
	TokenBalance(ctx context.Context, chainID int64, contract, owner string) (*big.Int, error)
	SendNative(ctx context.Context, privKeyHex, to string, amount *big.Int) (string, error)
	TransferToken(ctx context.Context, privKeyHex, contract, to string, amount *big.Int) (string, error)
}

type Authorization interface {
	GetUserByExternalId(externalID string) (models.User, error)
	CreateUser(models.User) (int64, error)
}

type Wallet interface {
	CreateWallet(userID int64) (models.WalletResponse, error)
	GetWallet(userID int64) (models.WalletResponse, error)
}

type Prices interface {
	GetPrices(ctx context.Context) models.PriceTable
	RefreshPrices(ctx context.Context) models.PriceTable
}

type Balances interface {
	Resolve(ctx context.Context, network, address string) models.BalanceSheet
	ActiveNetwork() string
}

type Transfers interface {
	GetDraft(userID int64) models.TransferDraft
	UpdateDraft(userID int64, input models.TransferDraft) models.TransferDraft
	Review(ctx context.Context, userID int64) (models.ReviewResult, error)
	Confirm(ctx context.Context, userID int64) (models.TransferResult, error)
	GetTransactions(userID int64) ([]models.Transaction, error)
}

type Contacts interface {
	GetContacts(userID int64) ([]models.Contact, error)
	CreateContact(userID int64, input models.ContactInput) (int64, error)
	DeleteContact(userID, contactID int64) error
	Lookup(contacts []models.Contact, address string) (string, bool)
}

type Profiles interface {
	GetProfile(userID int64) (models.Profile, error)
}

type Service struct {
	Authorization
	Wallet
	Prices
	Balances
	Transfers
	Contacts
	Profiles
}

func NewService(repos *repository.Repository, chain ChainClient) *Service {
	prices := NewPriceService()
	contacts := NewContactService(repos.Contact)

	return &Service{
		Authorization: NewAuthService(repos.Authorization),
		Wallet:        NewWalletService(repos.Wallet),
		Prices:        prices,
		Balances:      NewBalanceService(chain, prices),
		Transfers:     NewTransferService(chain, repos.Wallet, contacts, repos.History),
		Contacts:      contacts,
		Profiles:      NewProfileService(repos.Profile),
	}
}
