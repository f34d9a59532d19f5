package service

import (
	"strings"

	"social_wallet_back/models"
	"social_wallet_back/pkg/repository"
)

type ContactService struct {
	repos repository.Contact
}

func NewContactService(repos repository.Contact) *ContactService {
	return &ContactService{
		repos: repos,
	}
}

func (s *ContactService) GetContacts(userID int64) ([]models.Contact, error) {
	return s.repos.GetContacts(userID)
}

func (s *ContactService) CreateContact(userID int64, input models.ContactInput) (int64, error) {
	return s.repos.CreateContact(userID, input)
}

func (s *ContactService) DeleteContact(userID, contactID int64) error {
	return s.repos.DeleteContact(userID, contactID)
}

// Lookup ищет имя контакта по адресу, сравнение без учёта регистра
func (s *ContactService) Lookup(contacts []models.Contact, address string) (string, bool) {
	for _, contact := range contacts {
		if strings.EqualFold(contact.Address, address) {
			return contact.Name, true
		}
	}
	return "", false
}
