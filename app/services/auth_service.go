package services

import (
	"errors"

	"inkwell/app/models"
	"inkwell/app/repositories"
	"inkwell/app/sessions"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, login and session management.
type AuthService struct {
	userRepo repositories.UserRepository
	store    *sessions.Store
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.UserRepository, store *sessions.Store) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		store:    store,
	}
}

// Register creates a new user with a bcrypt-hashed password.
func (s *AuthService) Register(name, password string) (*models.User, error) {
	if name == "" || password == "" {
		return nil, &ValidationError{Message: "Name and password are required."}
	}

	_, err := s.userRepo.GetByName(name)
	if err == nil {
		return nil, &ValidationError{Message: "User " + name + " is already registered."}
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     name,
		Password: string(hash),
	}
	user.BeforeCreate()
	if err := user.Validate(); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks the credentials and returns the user. The failure message
// is the same whether the name or the password was wrong.
func (s *AuthService) Login(name, password string) (*models.User, error) {
	user, err := s.userRepo.GetByName(name)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, &ValidationError{Message: "Incorrect name or password."}
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, &ValidationError{Message: "Incorrect name or password."}
	}
	return user, nil
}

// StartSession opens a session for the user and returns its cookie token.
func (s *AuthService) StartSession(userID int) (string, error) {
	return s.store.Create(userID)
}

// EndSession destroys a session token.
func (s *AuthService) EndSession(token string) error {
	return s.store.Destroy(token)
}

// UserFromToken resolves a session token to its user. A token whose user
// no longer exists resolves to nothing, same as an expired one.
func (s *AuthService) UserFromToken(token string) (*models.User, error) {
	userID, err := s.store.UserID(token)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(userID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, sessions.ErrNoSession
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
