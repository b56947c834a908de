package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/willjrcristo/boardcamp-api/internal/domain"
	"github.com/willjrcristo/boardcamp-api/internal/service"
)

// CustomerService é a interface que o handler espera da camada de serviço.
type CustomerService interface {
	Create(ctx context.Context, customer domain.Customer) (domain.Customer, error)
	List(ctx context.Context, cpfPrefix string) ([]domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	Update(ctx context.Context, id int64, customer domain.Customer) (domain.Customer, error)
}

// CustomerHandler gerencia as rotas de /customers.
type CustomerHandler struct {
	service CustomerService
}

// NewCustomerHandler cria uma nova instância do CustomerHandler.
func NewCustomerHandler(s CustomerService) *CustomerHandler {
	return &CustomerHandler{service: s}
}

// Routes define e retorna as rotas deste handler.
func (h *CustomerHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)           // GET /customers?cpf=
	r.Post("/", h.Create)        // POST /customers
	r.Get("/{id}", h.GetByID)    // GET /customers/{id}
	r.Put("/{id}", h.Update)     // PUT /customers/{id}
	return r
}

// customerRequest é o corpo de criação e de atualização de cliente.
// O birthday chega como string para o validador checar o formato antes do parse.
type customerRequest struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required,alphanum,min=10,max=11"`
	CPF      string `json:"cpf" validate:"required,alphanum,len=11"`
	Birthday string `json:"birthday" validate:"required,datetime=2006-01-02"`
}

func (req customerRequest) toDomain() domain.Customer {
	// O formato já foi validado pela tag datetime; o erro aqui é impossível.
	t, _ := time.Parse(domain.DateLayout, req.Birthday)
	return domain.Customer{
		Name:     req.Name,
		Phone:    req.Phone,
		CPF:      req.CPF,
		Birthday: domain.NewDate(t),
	}
}

// @Summary      Cadastra um novo cliente
// @Description  Cria um cliente; o cpf deve ser único
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        customer  body      customerRequest  true  "Dados do cliente"
// @Success      201       {object}  domain.Customer
// @Failure      400       {object}  map[string]string
// @Failure      409       {object}  map[string]string
// @Failure      500       {object}  map[string]string
// @Router       /customers [post]
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	customer, err := h.service.Create(r.Context(), req.toDomain())
	if err != nil {
		switch err {
		case service.ErrCPFTaken:
			respondWithError(w, http.StatusConflict, err.Error())
		default:
			respondWithError(w, http.StatusInternalServerError, "erro ao criar cliente")
		}
		return
	}

	respondWithJSON(w, http.StatusCreated, customer)
}

// @Summary      Lista os clientes
// @Description  Retorna os clientes; aceita filtro por prefixo de cpf
// @Tags         customers
// @Produce      json
// @Param        cpf  query     string  false  "Prefixo do cpf"
// @Success      200  {array}   domain.Customer
// @Failure      500  {object}  map[string]string
// @Router       /customers [get]
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.service.List(r.Context(), r.URL.Query().Get("cpf"))
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "erro ao buscar clientes")
		return
	}
	if customers == nil {
		customers = []domain.Customer{}
	}
	respondWithJSON(w, http.StatusOK, customers)
}

// @Summary      Busca um cliente por ID
// @Tags         customers
// @Produce      json
// @Param        id   path      int  true  "ID do cliente"
// @Success      200  {object}  domain.Customer
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /customers/{id} [get]
func (h *CustomerHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "id inválido")
		return
	}

	customer, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if err == service.ErrCustomerNotFound {
			respondWithError(w, http.StatusNotFound, err.Error())
		} else {
			respondWithError(w, http.StatusInternalServerError, "erro ao buscar cliente")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, customer)
}

// @Summary      Atualiza um cliente
// @Description  Atualiza os dados de um cliente; o cpf continua único, mas o próprio registro não conta como duplicata
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id        path      int              true  "ID do cliente"
// @Param        customer  body      customerRequest  true  "Dados do cliente"
// @Success      200       {object}  domain.Customer
// @Failure      400       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Failure      409       {object}  map[string]string
// @Failure      500       {object}  map[string]string
// @Router       /customers/{id} [put]
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "id inválido")
		return
	}

	var req customerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	customer, err := h.service.Update(r.Context(), id, req.toDomain())
	if err != nil {
		switch err {
		case service.ErrCustomerNotFound:
			respondWithError(w, http.StatusNotFound, err.Error())
		case service.ErrCPFTaken:
			respondWithError(w, http.StatusConflict, err.Error())
		default:
			respondWithError(w, http.StatusInternalServerError, "erro ao atualizar cliente")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, customer)
}
