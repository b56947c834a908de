package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/willjrcristo/boardcamp-api/internal/domain"
	"github.com/willjrcristo/boardcamp-api/internal/service"
)

// CategoryService é a interface que o handler espera da camada de serviço.
type CategoryService interface {
	Create(ctx context.Context, name string) (domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
}

// CategoryHandler gerencia as rotas de /categories.
type CategoryHandler struct {
	service CategoryService
}

// NewCategoryHandler cria uma nova instância do CategoryHandler.
func NewCategoryHandler(s CategoryService) *CategoryHandler {
	return &CategoryHandler{service: s}
}

// Routes define e retorna as rotas deste handler.
func (h *CategoryHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)    // GET /categories
	r.Post("/", h.Create) // POST /categories
	return r
}

type createCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

// @Summary      Cria uma nova categoria
// @Description  Cadastra uma categoria de jogo; o nome deve ser único
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        category  body      createCategoryRequest  true  "Dados da categoria"
// @Success      201       {object}  domain.Category
// @Failure      400       {object}  map[string]string
// @Failure      409       {object}  map[string]string
// @Failure      500       {object}  map[string]string
// @Router       /categories [post]
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	category, err := h.service.Create(r.Context(), req.Name)
	if err != nil {
		switch err {
		case service.ErrCategoryNameTaken:
			respondWithError(w, http.StatusConflict, err.Error())
		default:
			respondWithError(w, http.StatusInternalServerError, "erro ao criar categoria")
		}
		return
	}

	respondWithJSON(w, http.StatusCreated, category)
}

// @Summary      Lista as categorias
// @Description  Retorna todas as categorias cadastradas
// @Tags         categories
// @Produce      json
// @Success      200  {array}   domain.Category
// @Failure      500  {object}  map[string]string
// @Router       /categories [get]
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.List(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "erro ao buscar categorias")
		return
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	respondWithJSON(w, http.StatusOK, categories)
}
