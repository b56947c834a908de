package service

import (
	"context"

	"github.com/willjrcristo/boardcamp-api/internal/domain"
	"github.com/willjrcristo/boardcamp-api/internal/repository"
)

// CategoryService encapsula as regras de negócio de categorias.
type CategoryService struct {
	repo repository.CategoryRepository
}

// NewCategoryService cria uma nova instância do CategoryService.
func NewCategoryService(repo repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) Create(ctx context.Context, name string) (domain.Category, error) {
	taken, err := s.repo.ExistsByName(ctx, name)
	if err != nil {
		return domain.Category{}, err
	}
	if taken {
		return domain.Category{}, ErrCategoryNameTaken
	}

	category := domain.Category{Name: name}
	id, err := s.repo.Create(ctx, category)
	if err != nil {
		return domain.Category{}, err
	}
	category.ID = id
	return category, nil
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.repo.GetAll(ctx)
}
