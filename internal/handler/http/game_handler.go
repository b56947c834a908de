package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/willjrcristo/boardcamp-api/internal/domain"
	"github.com/willjrcristo/boardcamp-api/internal/service"
)

// GameService é a interface que o handler espera da camada de serviço.
type GameService interface {
	Create(ctx context.Context, game domain.Game) (domain.Game, error)
	List(ctx context.Context, namePrefix string) ([]domain.Game, error)
}

// GameHandler gerencia as rotas de /games.
type GameHandler struct {
	service GameService
}

// NewGameHandler cria uma nova instância do GameHandler.
func NewGameHandler(s GameService) *GameHandler {
	return &GameHandler{service: s}
}

// Routes define e retorna as rotas deste handler.
func (h *GameHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)    // GET /games?name=
	r.Post("/", h.Create) // POST /games
	return r
}

type createGameRequest struct {
	Name        string `json:"name" validate:"required"`
	Image       string `json:"image" validate:"required"`
	StockTotal  int64  `json:"stockTotal" validate:"required,gt=0"`
	CategoryID  int64  `json:"categoryId" validate:"required,gt=0"`
	PricePerDay int64  `json:"pricePerDay" validate:"required,gt=0"`
}

// @Summary      Cadastra um novo jogo
// @Description  Cria um jogo no catálogo; o nome é único e a categoria deve existir. Preços em centavos.
// @Tags         games
// @Accept       json
// @Produce      json
// @Param        game  body      createGameRequest  true  "Dados do jogo"
// @Success      201   {object}  domain.Game
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /games [post]
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	game, err := h.service.Create(r.Context(), domain.Game{
		Name:        req.Name,
		Image:       req.Image,
		StockTotal:  req.StockTotal,
		CategoryID:  req.CategoryID,
		PricePerDay: req.PricePerDay,
	})
	if err != nil {
		switch err {
		case service.ErrCategoryNotFound:
			respondWithError(w, http.StatusBadRequest, err.Error())
		case service.ErrGameNameTaken:
			respondWithError(w, http.StatusConflict, err.Error())
		default:
			respondWithError(w, http.StatusInternalServerError, "erro ao criar jogo")
		}
		return
	}

	respondWithJSON(w, http.StatusCreated, game)
}

// @Summary      Lista os jogos
// @Description  Retorna os jogos com o nome da categoria; aceita filtro por prefixo de nome (sem diferenciar caixa)
// @Tags         games
// @Produce      json
// @Param        name  query     string  false  "Prefixo do nome do jogo"
// @Success      200   {array}   domain.Game
// @Failure      500   {object}  map[string]string
// @Router       /games [get]
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	games, err := h.service.List(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "erro ao buscar jogos")
		return
	}
	if games == nil {
		games = []domain.Game{}
	}
	respondWithJSON(w, http.StatusOK, games)
}
