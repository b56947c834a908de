package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willjrcristo/boardcamp-api/internal/domain"
	"github.com/willjrcristo/boardcamp-api/internal/service"
)

// MockCustomerService é uma implementação falsa da interface CustomerService.
type MockCustomerService struct {
	CreateFn  func(ctx context.Context, customer domain.Customer) (domain.Customer, error)
	ListFn    func(ctx context.Context, cpfPrefix string) ([]domain.Customer, error)
	GetByIDFn func(ctx context.Context, id int64) (*domain.Customer, error)
	UpdateFn  func(ctx context.Context, id int64, customer domain.Customer) (domain.Customer, error)
}

func (m *MockCustomerService) Create(ctx context.Context, customer domain.Customer) (domain.Customer, error) {
	return m.CreateFn(ctx, customer)
}
func (m *MockCustomerService) List(ctx context.Context, cpfPrefix string) ([]domain.Customer, error) {
	return m.ListFn(ctx, cpfPrefix)
}
func (m *MockCustomerService) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	return m.GetByIDFn(ctx, id)
}
func (m *MockCustomerService) Update(ctx context.Context, id int64, customer domain.Customer) (domain.Customer, error) {
	return m.UpdateFn(ctx, id, customer)
}

func customerRouter(mock *MockCustomerService) chi.Router {
	r := chi.NewRouter()
	r.Mount("/customers", NewCustomerHandler(mock).Routes())
	return r
}

func validCustomerBody() []byte {
	body, _ := json.Marshal(map[string]string{
		"name":     "João Alfredo",
		"phone":    "21998899222",
		"cpf":      "01234567890",
		"birthday": "1992-10-05",
	})
	return body
}

func TestCustomerHandler_Create(t *testing.T) {
	t.Run("sucesso - deve criar o cliente e retornar 201", func(t *testing.T) {
		mock := &MockCustomerService{
			CreateFn: func(ctx context.Context, customer domain.Customer) (domain.Customer, error) {
				assert.Equal(t, "01234567890", customer.CPF)
				assert.Equal(t, "1992-10-05", customer.Birthday.String())
				customer.ID = 4
				return customer, nil
			},
		}

		req := httptest.NewRequest("POST", "/customers", bytes.NewBuffer(validCustomerBody()))
		rr := httptest.NewRecorder()
		customerRouter(mock).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var customer domain.Customer
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &customer))
		assert.Equal(t, int64(4), customer.ID)
	})

	t.Run("cpf duplicado - deve retornar 409", func(t *testing.T) {
		mock := &MockCustomerService{
			CreateFn: func(ctx context.Context, customer domain.Customer) (domain.Customer, error) {
				return domain.Customer{}, service.ErrCPFTaken
			},
		}

		req := httptest.NewRequest("POST", "/customers", bytes.NewBuffer(validCustomerBody()))
		rr := httptest.NewRecorder()
		customerRouter(mock).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("cpf com tamanho errado - deve retornar 400 com o campo apontado", func(t *testing.T) {
		mock := &MockCustomerService{
			CreateFn: func(ctx context.Context, customer domain.Customer) (domain.Customer, error) {
				t.Fatal("o serviço não pode ser chamado com corpo inválido")
				return domain.Customer{}, nil
			},
		}

		body, _ := json.Marshal(map[string]string{
			"name": "João", "phone": "21998899222", "cpf": "123", "birthday": "1992-10-05",
		})
		req := httptest.NewRequest("POST", "/customers", bytes.NewBuffer(body))
		rr := httptest.NewRecorder()
		customerRouter(mock).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "cpf")
	})

	t.Run("birthday fora do formato - deve retornar 400", func(t *testing.T) {
		mock := &MockCustomerService{}

		body, _ := json.Marshal(map[string]string{
			"name": "João", "phone": "21998899222", "cpf": "01234567890", "birthday": "05/10/1992",
		})
		req := httptest.NewRequest("POST", "/customers", bytes.NewBuffer(body))
		rr := httptest.NewRecorder()
		customerRouter(mock).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestCustomerHandler_GetByID(t *testing.T) {
	t.Run("sucesso - deve retornar o cliente e 200", func(t *testing.T) {
		mock := &MockCustomerService{
			GetByIDFn: func(ctx context.Context, id int64) (*domain.Customer, error) {
				assert.Equal(t, int64(4), id)
				return &domain.Customer{ID: 4, Name: "João"}, nil
			},
		}

		req := httptest.NewRequest("GET", "/customers/4", nil)
		rr := httptest.NewRecorder()
		customerRouter(mock).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var customer domain.Customer
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &customer))
		assert.Equal(t, "João", customer.Name)
	})

	t.Run("cliente inexistente - deve retornar 404", func(t *testing.T) {
		mock := &MockCustomerService{
			GetByIDFn: func(ctx context.Context, id int64) (*domain.Customer, error) {
				return nil, service.ErrCustomerNotFound
			},
		}

		req := httptest.NewRequest("GET", "/customers/999", nil)
		rr := httptest.NewRecorder()
		customerRouter(mock).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestCustomerHandler_Update(t *testing.T) {
	t.Run("sucesso - deve retornar 200 com o cliente atualizado", func(t *testing.T) {
		mock := &MockCustomerService{
			UpdateFn: func(ctx context.Context, id int64, customer domain.Customer) (domain.Customer, error) {
				assert.Equal(t, int64(4), id)
				customer.ID = id
				return customer, nil
			},
		}

		req := httptest.NewRequest("PUT", "/customers/4", bytes.NewBuffer(validCustomerBody()))
		rr := httptest.NewRecorder()
		customerRouter(mock).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("cpf de outro cliente - deve retornar 409", func(t *testing.T) {
		mock := &MockCustomerService{
			UpdateFn: func(ctx context.Context, id int64, customer domain.Customer) (domain.Customer, error) {
				return domain.Customer{}, service.ErrCPFTaken
			},
		}

		req := httptest.NewRequest("PUT", "/customers/4", bytes.NewBuffer(validCustomerBody()))
		rr := httptest.NewRecorder()
		customerRouter(mock).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestCustomerHandler_List(t *testing.T) {
	mock := &MockCustomerService{
		ListFn: func(ctx context.Context, cpfPrefix string) ([]domain.Customer, error) {
			assert.Equal(t, "012", cpfPrefix)
			return nil, nil
		},
	}

	req := httptest.NewRequest("GET", "/customers?cpf=012", nil)
	rr := httptest.NewRecorder()
	customerRouter(mock).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "[]", rr.Body.String())
}
