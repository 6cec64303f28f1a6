package service

import (
	"context"
	"strings"

	"siteadmin/internal/domain"
	"siteadmin/internal/models"
	"siteadmin/internal/repository"
)

type CategoryInput struct {
	Name  string
	Image string
	Video string
}

// CategoryPatch holds optional fields; nil leaves the stored value unchanged.
type CategoryPatch struct {
	Name  *string
	Image *string
	Video *string
}

type CategoryService struct {
	repo    *repository.CategoryRepository
	changes ChangeNotifier
}

func NewCategoryService(repo *repository.CategoryRepository, changes ChangeNotifier) *CategoryService {
	return &CategoryService{repo: repo, changes: notifierOrNop(changes)}
}

// Create stores the category and returns it with the refreshed list.
func (s *CategoryService) Create(ctx context.Context, in CategoryInput) (*models.Category, []models.Category, error) {
	c := &models.Category{
		Name:  strings.TrimSpace(in.Name),
		Image: strings.TrimSpace(in.Image),
		Video: strings.TrimSpace(in.Video),
	}
	if c.Name == "" || c.Image == "" || c.Video == "" {
		return nil, nil, validationError("All fields are required.")
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, nil, writeError(err, "Category already exists.")
	}
	s.changes.Notify(domain.EntityCategory, domain.ActionCreated, c.ID)
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	return c, list, nil
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.repo.List(ctx)
}

func (s *CategoryService) Update(ctx context.Context, id uint, p CategoryPatch) (*models.Category, []models.Category, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, storeError(err, "Category not found!")
	}
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return nil, nil, validationError("Category name cannot be empty")
		}
		c.Name = name
	}
	if p.Image != nil {
		if strings.TrimSpace(*p.Image) == "" {
			return nil, nil, validationError("Category image cannot be empty")
		}
		c.Image = strings.TrimSpace(*p.Image)
	}
	if p.Video != nil {
		if strings.TrimSpace(*p.Video) == "" {
			return nil, nil, validationError("Category video cannot be empty")
		}
		c.Video = strings.TrimSpace(*p.Video)
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, nil, writeError(storeError(err, "Category not found!"), "Category name already exists!")
	}
	s.changes.Notify(domain.EntityCategory, domain.ActionUpdated, c.ID)
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	return c, list, nil
}

// Delete removes the category and returns the remaining list. Products naming it are untouched.
func (s *CategoryService) Delete(ctx context.Context, id uint) ([]models.Category, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, storeError(err, "Category not found")
	}
	s.changes.Notify(domain.EntityCategory, domain.ActionDeleted, id)
	return s.repo.List(ctx)
}
