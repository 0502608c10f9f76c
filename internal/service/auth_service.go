package service

import (
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"go-nexus-crm/internal/model"
	"go-nexus-crm/internal/repository"
	"go-nexus-crm/internal/session"
	"go-nexus-crm/pkg/jwt"
)

// ErrInvalidCredentials is the only error surfaced for a failed login.
// Wrong password, unknown username, and inactive account are deliberately
// indistinguishable to the caller, to avoid account enumeration.
var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService interface {
	Login(username, password string) (*LoginResponse, error)
	Logout() error
	Session() (*model.User, bool)
}

type LoginResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

type authService struct {
	userRepo       repository.UserRepository
	sessions       *session.Store
	passphraseHash []byte
}

// NewAuthService hashes the system passphrase once at construction; login
// attempts are compared against the hash, never the plaintext.
func NewAuthService(userRepo repository.UserRepository, sessions *session.Store, passphrase string) (AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(passphrase), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &authService{
		userRepo:       userRepo,
		sessions:       sessions,
		passphraseHash: hash,
	}, nil
}

func (s *authService) Login(username, password string) (*LoginResponse, error) {
	// 1. Verify the passphrase
	if err := bcrypt.CompareHashAndPassword(s.passphraseHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// 2. Resolve the username
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	// 3. Inactive accounts never authenticate
	if !user.AccountActive {
		return nil, ErrInvalidCredentials
	}

	// 4. Commit the session before handing out the token, so the guard
	// observes the login on the very next request.
	tokenVersion := uuid.New().String()
	if err := s.sessions.Set(user, tokenVersion); err != nil {
		return nil, errors.New("failed to persist session")
	}

	// 5. Issue the bearer token
	token, err := jwt.GenerateToken(user.ID, user.Username, user.RoleName(), tokenVersion)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &LoginResponse{Token: token, User: *user}, nil
}

func (s *authService) Logout() error {
	return s.sessions.Clear()
}

func (s *authService) Session() (*model.User, bool) {
	user, _ := s.sessions.Current()
	return user, user != nil
}
