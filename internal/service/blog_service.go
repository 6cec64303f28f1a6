package service

import (
	"context"
	"strings"

	"siteadmin/internal/domain"
	"siteadmin/internal/models"
	"siteadmin/internal/repository"
)

type BlogInput struct {
	Heading     string
	Description string
	Image       string
	Content     string
}

// BlogPatch distinguishes an omitted field (nil) from an explicit value.
// Only Content may be cleared with an empty string.
type BlogPatch struct {
	Heading     *string
	Description *string
	Image       *string
	Content     *string
}

type BlogService struct {
	repo    *repository.BlogRepository
	changes ChangeNotifier
}

func NewBlogService(repo *repository.BlogRepository, changes ChangeNotifier) *BlogService {
	return &BlogService{repo: repo, changes: notifierOrNop(changes)}
}

func (s *BlogService) Create(ctx context.Context, in BlogInput) (*models.Blog, []models.Blog, error) {
	b := &models.Blog{
		Heading:     strings.TrimSpace(in.Heading),
		Description: strings.TrimSpace(in.Description),
		Image:       strings.TrimSpace(in.Image),
		Content:     in.Content,
	}
	if b.Heading == "" || b.Description == "" || b.Image == "" {
		return nil, nil, validationError("Blog heading, description, and image are required")
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, nil, err
	}
	s.changes.Notify(domain.EntityBlog, domain.ActionCreated, b.ID)
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	return b, list, nil
}

func (s *BlogService) List(ctx context.Context) ([]models.Blog, error) {
	return s.repo.List(ctx)
}

// Latest returns the newest LatestBlogLimit blogs.
func (s *BlogService) Latest(ctx context.Context) ([]models.Blog, error) {
	return s.repo.Latest(ctx, domain.LatestBlogLimit)
}

func (s *BlogService) Get(ctx context.Context, id uint) (*models.Blog, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "Blog not found")
	}
	return b, nil
}

func (s *BlogService) Update(ctx context.Context, id uint, p BlogPatch) (*models.Blog, []models.Blog, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, storeError(err, "Blog not found")
	}
	required := []struct {
		in   *string
		out  *string
		name string
	}{
		{p.Heading, &b.Heading, "heading"},
		{p.Description, &b.Description, "description"},
		{p.Image, &b.Image, "image"},
	}
	for _, f := range required {
		if f.in == nil {
			continue
		}
		v := strings.TrimSpace(*f.in)
		if v == "" {
			return nil, nil, validationError("Blog " + f.name + " cannot be empty")
		}
		*f.out = v
	}
	if p.Content != nil {
		b.Content = *p.Content
	}
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, nil, storeError(err, "Blog not found")
	}
	s.changes.Notify(domain.EntityBlog, domain.ActionUpdated, b.ID)
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	return b, list, nil
}

func (s *BlogService) Delete(ctx context.Context, id uint) ([]models.Blog, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, storeError(err, "Blog not found")
	}
	s.changes.Notify(domain.EntityBlog, domain.ActionDeleted, id)
	return s.repo.List(ctx)
}
