package mocks

import (
	"vitrina/internal/domain/entity"
	"vitrina/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// PasswordHasher is a mock implementation of service.PasswordHasher.
type PasswordHasher struct {
	mock.Mock
}

func (m *PasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *PasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

// TokenService is a mock implementation of service.TokenService.
type TokenService struct {
	mock.Mock
}

func (m *TokenService) GenerateToken(account *entity.Account) (string, error) {
	args := m.Called(account)

	return args.String(0), args.Error(1)
}

func (m *TokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.Claims), args.Error(1)
}

// QRCodeService is a mock implementation of service.QRCodeService.
type QRCodeService struct {
	mock.Mock
}

func (m *QRCodeService) GenerateListingQR(listingID uuid.UUID) ([]byte, error) {
	args := m.Called(listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]byte), args.Error(1)
}
