package service

import (
	"context"
	"strings"

	"siteadmin/internal/domain"
	"siteadmin/internal/models"
	"siteadmin/internal/repository"
)

type TagService struct {
	repo    *repository.TagRepository
	changes ChangeNotifier
}

func NewTagService(repo *repository.TagRepository, changes ChangeNotifier) *TagService {
	return &TagService{repo: repo, changes: notifierOrNop(changes)}
}

// Create stores a tag; names collide case-insensitively.
func (s *TagService) Create(ctx context.Context, name string) (*models.Tag, []models.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil, validationError("Tag name is required")
	}
	t := &models.Tag{Name: name}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, nil, writeError(err, "Tag already exists")
	}
	s.changes.Notify(domain.EntityTag, domain.ActionCreated, t.ID)
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	return t, list, nil
}

func (s *TagService) List(ctx context.Context) ([]models.Tag, error) {
	return s.repo.List(ctx)
}

func (s *TagService) Update(ctx context.Context, id uint, name string) (*models.Tag, []models.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil, validationError("Tag name is required")
	}
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, storeError(err, "Tag not found")
	}
	t.Name = name
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, nil, writeError(storeError(err, "Tag not found"), "Tag already exists")
	}
	s.changes.Notify(domain.EntityTag, domain.ActionUpdated, t.ID)
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	return t, list, nil
}

func (s *TagService) Delete(ctx context.Context, id uint) ([]models.Tag, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, storeError(err, "Tag not found")
	}
	s.changes.Notify(domain.EntityTag, domain.ActionDeleted, id)
	return s.repo.List(ctx)
}
