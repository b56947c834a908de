package service

import (
	"context"

	"github.com/willjrcristo/boardcamp-api/internal/domain"
	"github.com/willjrcristo/boardcamp-api/internal/repository"
)

// CustomerService encapsula as regras de negócio de clientes.
type CustomerService struct {
	repo repository.CustomerRepository
}

// NewCustomerService cria uma nova instância do CustomerService.
func NewCustomerService(repo repository.CustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

func (s *CustomerService) Create(ctx context.Context, customer domain.Customer) (domain.Customer, error) {
	taken, err := s.repo.ExistsByCPF(ctx, customer.CPF, 0)
	if err != nil {
		return domain.Customer{}, err
	}
	if taken {
		return domain.Customer{}, ErrCPFTaken
	}

	id, err := s.repo.Create(ctx, customer)
	if err != nil {
		return domain.Customer{}, err
	}
	customer.ID = id
	return customer, nil
}

func (s *CustomerService) List(ctx context.Context, cpfPrefix string) ([]domain.Customer, error) {
	return s.repo.List(ctx, cpfPrefix)
}

func (s *CustomerService) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	customer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	return customer, nil
}

func (s *CustomerService) Update(ctx context.Context, id int64, customer domain.Customer) (domain.Customer, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return domain.Customer{}, err
	}

	// A checagem de unicidade exclui o próprio registro: atualizar um cliente
	// sem trocar o cpf não pode falhar por conflito com ele mesmo.
	taken, err := s.repo.ExistsByCPF(ctx, customer.CPF, id)
	if err != nil {
		return domain.Customer{}, err
	}
	if taken {
		return domain.Customer{}, ErrCPFTaken
	}

	if err := s.repo.Update(ctx, id, customer); err != nil {
		return domain.Customer{}, err
	}
	customer.ID = id
	return customer, nil
}
