package services

import (
	"encoding/hex"
	"errors"
	"strings"

	"popcornhour/models"
	"popcornhour/repositories"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Compared against when the email is unknown so both failure paths cost one bcrypt check.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("popcornhour-timing-equalizer"), bcrypt.DefaultCost)

type AuthService interface {
	Register(req models.SignupRequest) (*models.User, error)
	Verify(email, password string) (*models.User, error)
	Login(req models.LoginRequest) (*models.Identity, error)
	GetUserByID(id uint) (*models.User, error)
}

type authService struct {
	userRepo        repositories.UserRepository
	moderatorDomain string
}

func NewAuthService(userRepo repositories.UserRepository, moderatorDomain string) AuthService {
	return &authService{userRepo: userRepo, moderatorDomain: moderatorDomain}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) Register(req models.SignupRequest) (*models.User, error) {
	if req.Password != req.ConfirmPassword {
		return nil, models.ErrPasswordMismatch
	}
	email := normalizeEmail(req.Email)

	// Check if user already exists
	_, err := s.userRepo.GetByEmail(email)
	if err == nil {
		return nil, models.ErrEmailInUse
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, translateError(err, "")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.ErrorValidation{Message: err.Error()}
	}

	user := &models.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Password: hex.EncodeToString(hashed),
		Role:     models.RoleStandard,
	}

	if err := s.userRepo.Create(user); err != nil {
		// Lost a race with a concurrent signup for the same address.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrEmailInUse
		}
		return nil, translateError(err, "")
	}

	return user, nil
}

// Verify returns the user only when the password matches. Unknown email and
// wrong password both yield (nil, nil); only storage failures are errors.
func (s *authService) Verify(email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(normalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return nil, nil
		}
		return nil, translateError(err, "")
	}

	hash, err := hex.DecodeString(user.Password)
	if err != nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, nil
	}
	if bcrypt.CompareHashAndPassword(hash, []byte(password)) != nil {
		return nil, nil
	}
	return user, nil
}

func (s *authService) Login(req models.LoginRequest) (*models.Identity, error) {
	user, err := s.Verify(req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.ErrInvalidCredentials
	}
	return NewIdentity(user, s.moderatorDomain), nil
}

func (s *authService) GetUserByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, translateError(err, "user not found")
	}
	return user, nil
}
