package service

import (
	"context"
	"strings"

	"siteadmin/internal/domain"
	"siteadmin/internal/models"
	"siteadmin/internal/repository"

	"gorm.io/datatypes"
)

type ProductInput struct {
	Name         string
	Category     string
	Tag          string
	Description  string
	FeatureTitle string
	Features     []string
	Image        string
}

// ProductUpdate replaces the required fields; FeatureTitle and Features are
// left unchanged when nil.
type ProductUpdate struct {
	Name         string
	Category     string
	Tag          string
	Description  string
	Image        string
	FeatureTitle *string
	Features     *[]string
}

type ProductService struct {
	repo    *repository.ProductRepository
	changes ChangeNotifier
}

func NewProductService(repo *repository.ProductRepository, changes ChangeNotifier) *ProductService {
	return &ProductService{repo: repo, changes: notifierOrNop(changes)}
}

func (s *ProductService) Create(ctx context.Context, in ProductInput) (*models.Product, error) {
	features := in.Features
	if features == nil {
		features = []string{}
	}
	p := &models.Product{
		Name:         strings.TrimSpace(in.Name),
		Category:     strings.TrimSpace(in.Category),
		Tag:          strings.TrimSpace(in.Tag),
		Description:  in.Description,
		FeatureTitle: strings.TrimSpace(in.FeatureTitle),
		Features:     datatypes.JSONSlice[string](features),
		Image:        strings.TrimSpace(in.Image),
	}
	if p.Name == "" || p.Category == "" || p.Tag == "" || strings.TrimSpace(p.Description) == "" ||
		p.FeatureTitle == "" || p.Image == "" {
		return nil, validationError("Product name, category, tag, description, feature title, and image are required!")
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, writeError(err, "Product already exists!")
	}
	s.changes.Notify(domain.EntityProduct, domain.ActionCreated, p.ID)
	return p, nil
}

func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	return s.repo.List(ctx)
}

func (s *ProductService) Get(ctx context.Context, id uint) (*models.Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "Product not found")
	}
	return p, nil
}

// Update checks uniqueness on the same trimmed name as Create.
func (s *ProductService) Update(ctx context.Context, id uint, in ProductUpdate) (*models.Product, error) {
	name := strings.TrimSpace(in.Name)
	category := strings.TrimSpace(in.Category)
	tag := strings.TrimSpace(in.Tag)
	image := strings.TrimSpace(in.Image)
	if name == "" || category == "" || tag == "" || strings.TrimSpace(in.Description) == "" || image == "" {
		return nil, validationError("All fields are required!")
	}
	var featureTitle string
	if in.FeatureTitle != nil {
		featureTitle = strings.TrimSpace(*in.FeatureTitle)
		if featureTitle == "" {
			return nil, validationError("Feature title cannot be empty")
		}
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "Product not found!")
	}
	p.Name = name
	p.Category = category
	p.Tag = tag
	p.Description = in.Description
	p.Image = image
	if in.FeatureTitle != nil {
		p.FeatureTitle = featureTitle
	}
	if in.Features != nil {
		features := *in.Features
		if features == nil {
			features = []string{}
		}
		p.Features = datatypes.JSONSlice[string](features)
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, writeError(storeError(err, "Product not found"), "Another product with the same name already exists!")
	}
	s.changes.Notify(domain.EntityProduct, domain.ActionUpdated, p.ID)
	return p, nil
}

func (s *ProductService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError(err, "Product not found!")
	}
	s.changes.Notify(domain.EntityProduct, domain.ActionDeleted, id)
	return nil
}
