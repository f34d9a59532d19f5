package service

import (
	"social_wallet_back/models"
	"social_wallet_back/pkg/repository"
)

type ProfileService struct {
	repos repository.Profile
}

func NewProfileService(repos repository.Profile) *ProfileService {
	return &ProfileService{
		repos: repos,
	}
}

func (s *ProfileService) GetProfile(userID int64) (models.Profile, error) {
	return s.repos.GetProfile(userID)
}
