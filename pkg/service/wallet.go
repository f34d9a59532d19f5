package service

import (
	"github.com/pkg/errors"

	"social_wallet_back/internal/wallet"
	"social_wallet_back/models"
	"social_wallet_back/pkg/repository"
)

type WalletService struct {
	repos repository.Wallet
}

func NewWalletService(repos repository.Wallet) *WalletService {
	return &WalletService{
		repos: repos,
	}
}

// CreateWallet генерирует новый кошелёк и сохраняет его за пользователем
func (s *WalletService) CreateWallet(userID int64) (models.WalletResponse, error) {
	w, err := wallet.GenerateWallet()
	if err != nil {
		return models.WalletResponse{}, errors.Wrap(err, "не удалось сгенерировать кошелёк")
	}

	id, err := s.repos.CreateWallet(userID, w.PrivateKey, w.Address)
	if err != nil {
		return models.WalletResponse{}, errors.Wrap(err, "не удалось сохранить кошелёк")
	}

	return models.WalletResponse{
		WalletID: id,
		Address:  w.Address,
	}, nil
}

func (s *WalletService) GetWallet(userID int64) (models.WalletResponse, error) {
	w, err := s.repos.GetWallet(userID)
	if err != nil {
		return models.WalletResponse{}, err
	}
	return models.WalletResponse{
		WalletID: w.ID,
		Address:  w.Address,
	}, nil
}
