package service

import (
	"social_wallet_back/models"
	"social_wallet_back/pkg/repository"
)

type AuthService struct {
	repos repository.Authorization
}

func NewAuthService(repos repository.Authorization) *AuthService {
	return &AuthService{
		repos: repos,
	}
}

func (s *AuthService) CreateUser(user models.User) (int64, error) {
	return s.repos.CreateUser(user)
}

func (s *AuthService) GetUserByExternalId(externalID string) (models.User, error) {
	return s.repos.GetUserByExternalId(externalID)
}
