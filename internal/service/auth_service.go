package service

import (
	"context"
	"errors"
	"strings"

	"siteadmin/config"
	"siteadmin/internal/auth"
	"siteadmin/internal/domain"
	"siteadmin/internal/models"
	"siteadmin/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

type AuthService struct {
	cfg     *config.JWTConfig
	admins  *repository.AdminRepository
	changes ChangeNotifier
}

func NewAuthService(cfg *config.JWTConfig, admins *repository.AdminRepository, changes ChangeNotifier) *AuthService {
	return &AuthService{cfg: cfg, admins: admins, changes: notifierOrNop(changes)}
}

// Register stores a new admin with a bcrypt hash. The confirmation is only compared, never stored.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.Admin, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" || in.Password == "" || in.ConfirmPassword == "" {
		return nil, validationError("All fields are required")
	}
	if err := auth.ValidateCredentials(email, in.Password); err != nil {
		return nil, credentialError(err)
	}
	if in.Password != in.ConfirmPassword {
		return nil, validationError("Passwords do not match")
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, credentialError(err)
	}
	a := &models.Admin{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.admins.Create(ctx, a); err != nil {
		return nil, writeError(err, "Email already registered")
	}
	s.changes.Notify(domain.EntityAdmin, domain.ActionCreated, a.ID)
	return a, nil
}

func credentialError(err error) error {
	switch {
	case errors.Is(err, auth.ErrInvalidEmail):
		return validationError("Invalid email format")
	case errors.Is(err, auth.ErrPasswordTooShort):
		return validationError("Password must be at least 6 characters long")
	case errors.Is(err, auth.ErrPasswordTooLong):
		return validationError("Password is too long")
	}
	return err
}

// Login verifies credentials and returns the admin with a signed bearer token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.Admin, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, "", validationError("Email and password are required")
	}
	a, err := s.admins.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", storeError(err, "Admin not found")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		return nil, "", authError("Invalid credentials")
	}
	if a.IsBlocked {
		return nil, "", authError("Account is blocked")
	}
	token, err := auth.GenerateAccessToken(s.cfg, a.ID, a.Email)
	if err != nil {
		return nil, "", err
	}
	return a, token, nil
}

// Me resolves the admin behind a verified token.
func (s *AuthService) Me(ctx context.Context, adminID uint) (*models.Admin, error) {
	a, err := s.admins.GetByID(ctx, adminID)
	if err != nil {
		return nil, storeError(err, "Admin not found")
	}
	if a.IsBlocked {
		return nil, authError("Account is blocked")
	}
	return a, nil
}

// SetBlocked blocks or unblocks another admin. Blocked admins cannot log in.
func (s *AuthService) SetBlocked(ctx context.Context, actorID, targetID uint, blocked bool) (*models.Admin, error) {
	if actorID == targetID {
		return nil, validationError("You cannot change your own block status")
	}
	if err := s.admins.SetBlocked(ctx, targetID, blocked); err != nil {
		return nil, storeError(err, "Admin not found")
	}
	a, err := s.admins.GetByID(ctx, targetID)
	if err != nil {
		return nil, storeError(err, "Admin not found")
	}
	s.changes.Notify(domain.EntityAdmin, domain.ActionUpdated, a.ID)
	return a, nil
}
