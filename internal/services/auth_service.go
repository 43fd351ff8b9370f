package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Omar1Ach/-shahd-beekeeping/internal/models"
	"github.com/Omar1Ach/-shahd-beekeeping/internal/redis"
	"github.com/Omar1Ach/-shahd-beekeeping/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("operation not permitted for this role")
)

// Identity is the resolved caller passed explicitly into every service
// operation. Nothing below the HTTP layer reads ambient session state.
type Identity struct {
	UserID     uint
	Role       models.UserRole
	CustomerID *uint
}

func (id Identity) IsAdmin() bool {
	return id.Role == models.RoleAdmin
}

// OwnsCustomer reports whether the caller is the customer behind customerID.
func (id Identity) OwnsCustomer(customerID uint) bool {
	return id.CustomerID != nil && *id.CustomerID == customerID
}

type AuthService interface {
	Login(email, password string) (string, *models.User, error)
	Logout(token string) error
	Resolve(token string) (*Identity, error)
	Register(email, password, name string, role models.UserRole, customerID *uint) (*models.User, error)
	EnsureAdmin(email, password, name string) error
}

type authService struct {
	userRepo   repository.UserRepository
	sessions   *redis.Client
	sessionTTL time.Duration
	bcryptCost int
}

func NewAuthService(userRepo repository.UserRepository, sessions *redis.Client, sessionTTL time.Duration, bcryptCost int) AuthService {
	return &authService{
		userRepo:   userRepo,
		sessions:   sessions,
		sessionTTL: sessionTTL,
		bcryptCost: bcryptCost,
	}
}

func (s *authService) Login(email, password string) (string, *models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := redis.NewSessionToken()
	if err != nil {
		return "", nil, err
	}

	session := &redis.SessionData{
		UserID:     user.ID,
		Role:       user.Role,
		CustomerID: user.CustomerID,
		CreatedAt:  time.Now(),
	}
	if err := s.sessions.SetSession(token, session, s.sessionTTL); err != nil {
		return "", nil, fmt.Errorf("failed to store session: %w", err)
	}

	return token, user, nil
}

func (s *authService) Logout(token string) error {
	return s.sessions.DeleteSession(token)
}

func (s *authService) Resolve(token string) (*Identity, error) {
	session, err := s.sessions.GetSession(token)
	if err != nil {
		return nil, err
	}
	// Sliding expiry: activity keeps the session alive.
	s.sessions.RefreshSession(token, s.sessionTTL)

	return &Identity{
		UserID:     session.UserID,
		Role:       models.UserRole(session.Role),
		CustomerID: session.CustomerID,
	}, nil
}

func (s *authService) Register(email, password, name string, role models.UserRole, customerID *uint) (*models.User, error) {
	if email == "" || password == "" || name == "" {
		return nil, fmt.Errorf("%w: email, password and name are required", repository.ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         string(role),
		CustomerID:   customerID,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// EnsureAdmin creates the bootstrap admin account if it does not exist yet.
func (s *authService) EnsureAdmin(email, password, name string) error {
	_, err := s.userRepo.GetByEmail(email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	_, err = s.Register(email, password, name, models.RoleAdmin, nil)
	return err
}
