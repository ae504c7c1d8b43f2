package services

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"jobportal/internal/apperror"
	"jobportal/internal/models"
	"jobportal/internal/repository"
	"jobportal/internal/utils"

	"github.com/google/uuid"
)

type RegisterInput struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	AdminCode string `json:"adminCode"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResult struct {
	Token string            `json:"token"`
	User  models.PublicUser `json:"user"`
}

type AuthService struct {
	users     repository.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	adminCode string

	checkPassword func(hash, password string) bool
}

func NewAuthService(users repository.UserRepository, jwtSecret string, tokenTTL time.Duration, adminCode string) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		adminCode: adminCode,

		checkPassword: utils.CheckPassword,
	}
}

func (s *AuthService) Register(in RegisterInput) (*AuthResult, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = normalizeEmail(in.Email)
	if err := validateInput(in); err != nil {
		return nil, err
	}

	if _, err := s.users.FindByEmail(in.Email); err == nil {
		return nil, apperror.Conflict("Email already registered")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up email: %w", err)
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: hash,
		Role:     s.roleFor(in.AdminCode),
	}
	if err := s.users.Create(user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperror.Conflict("Email already registered")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issue(user)
}

// roleFor grants admin only when a non-empty secret is configured and matched exactly.
func (s *AuthService) roleFor(code string) models.Role {
	if s.adminCode == "" || code == "" {
		return models.RoleUser
	}
	if subtle.ConstantTimeCompare([]byte(code), []byte(s.adminCode)) == 1 {
		return models.RoleAdmin
	}
	return models.RoleUser
}

func (s *AuthService) Login(in LoginInput) (*AuthResult, error) {
	in.Email = normalizeEmail(in.Email)
	if in.Email == "" || in.Password == "" {
		return nil, apperror.Validation("Please provide email and password")
	}

	user, err := s.users.FindByEmail(in.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.checkPassword(utils.DummyPasswordHash(), in.Password)
			return nil, apperror.Unauthorized("Invalid credentials")
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !s.checkPassword(user.Password, in.Password) {
		return nil, apperror.Unauthorized("Invalid credentials")
	}

	return s.issue(user)
}

func (s *AuthService) CurrentUser(id uuid.UUID) (*models.PublicUser, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	public := user.Public()
	return &public, nil
}

// Promote grants the admin role to an existing user.
func (s *AuthService) Promote(id uuid.UUID) (*models.PublicUser, error) {
	user, err := s.users.UpdateRole(id, models.RoleAdmin)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, fmt.Errorf("failed to promote user: %w", err)
	}
	public := user.Public()
	return &public, nil
}

func (s *AuthService) issue(user *models.User) (*AuthResult, error) {
	token, err := utils.GenerateToken(s.jwtSecret, user, s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &AuthResult{Token: token, User: user.Public()}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
