package service

import (
	"context"
	"strings"

	"siteadmin/internal/domain"
	"siteadmin/internal/models"
	"siteadmin/internal/repository"
)

type ContactInput struct {
	FullName    string
	Email       string
	City        string
	ProjectType string
	Phone       string
	Company     string
	Message     string
	File        string
}

type ContactService struct {
	repo    *repository.ContactRepository
	changes ChangeNotifier
}

func NewContactService(repo *repository.ContactRepository, changes ChangeNotifier) *ContactService {
	return &ContactService{repo: repo, changes: notifierOrNop(changes)}
}

// Submit stores an inquiry. Only name, email and phone are required.
func (s *ContactService) Submit(ctx context.Context, in ContactInput) (*models.ContactQuery, error) {
	q := &models.ContactQuery{
		FullName:    strings.TrimSpace(in.FullName),
		Email:       strings.TrimSpace(in.Email),
		City:        strings.TrimSpace(in.City),
		ProjectType: strings.TrimSpace(in.ProjectType),
		Phone:       strings.TrimSpace(in.Phone),
		Company:     strings.TrimSpace(in.Company),
		Message:     in.Message,
		File:        strings.TrimSpace(in.File),
	}
	if q.FullName == "" || q.Email == "" || q.Phone == "" {
		return nil, validationError("Full name, email, and phone are required")
	}
	if err := s.repo.Create(ctx, q); err != nil {
		return nil, err
	}
	s.changes.Notify(domain.EntityContactQuery, domain.ActionCreated, q.ID)
	return q, nil
}

func (s *ContactService) List(ctx context.Context) ([]models.ContactQuery, error) {
	return s.repo.List(ctx)
}
