package service

import (
	"context"

	"github.com/willjrcristo/boardcamp-api/internal/domain"
	"github.com/willjrcristo/boardcamp-api/internal/repository"
)

// GameService encapsula as regras de negócio de jogos.
type GameService struct {
	repo       repository.GameRepository
	categories repository.CategoryRepository
}

// NewGameService cria uma nova instância do GameService.
func NewGameService(repo repository.GameRepository, categories repository.CategoryRepository) *GameService {
	return &GameService{repo: repo, categories: categories}
}

func (s *GameService) Create(ctx context.Context, game domain.Game) (domain.Game, error) {
	category, err := s.categories.GetByID(ctx, game.CategoryID)
	if err != nil {
		return domain.Game{}, err
	}
	if category == nil {
		return domain.Game{}, ErrCategoryNotFound
	}

	taken, err := s.repo.ExistsByName(ctx, game.Name)
	if err != nil {
		return domain.Game{}, err
	}
	if taken {
		return domain.Game{}, ErrGameNameTaken
	}

	id, err := s.repo.Create(ctx, game)
	if err != nil {
		return domain.Game{}, err
	}
	game.ID = id
	return game, nil
}

func (s *GameService) List(ctx context.Context, namePrefix string) ([]domain.Game, error) {
	return s.repo.List(ctx, namePrefix)
}
