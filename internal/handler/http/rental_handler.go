package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/willjrcristo/boardcamp-api/internal/domain"
	"github.com/willjrcristo/boardcamp-api/internal/service"
)

// RentalService é a interface que o handler espera do motor de aluguéis.
type RentalService interface {
	Create(ctx context.Context, customerID, gameID, daysRented int64) (domain.Rental, error)
	Return(ctx context.Context, id int64) (domain.Rental, error)
	Cancel(ctx context.Context, id int64) error
	List(ctx context.Context, customerID, gameID *int64) ([]domain.RentalDetail, error)
}

// RentalHandler gerencia as rotas de /rentals.
type RentalHandler struct {
	service RentalService
}

// NewRentalHandler cria uma nova instância do RentalHandler.
func NewRentalHandler(s RentalService) *RentalHandler {
	return &RentalHandler{service: s}
}

// Routes define e retorna as rotas deste handler.
func (h *RentalHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)                  // GET /rentals?customerId=&gameId=
	r.Post("/", h.Create)               // POST /rentals
	r.Post("/{id}/return", h.Return)    // POST /rentals/{id}/return
	r.Delete("/{id}", h.Delete)         // DELETE /rentals/{id}
	return r
}

type createRentalRequest struct {
	CustomerID int64 `json:"customerId" validate:"required,gt=0"`
	GameID     int64 `json:"gameId" validate:"required,gt=0"`
	DaysRented int64 `json:"daysRented" validate:"required,gt=0"`
}

// @Summary      Cria um novo aluguel
// @Description  Aluga um jogo para um cliente. O jogo e o cliente devem existir e o jogo precisa ter unidade livre no estoque.
// @Tags         rentals
// @Accept       json
// @Produce      json
// @Param        rental  body      createRentalRequest  true  "Dados do aluguel"
// @Success      201     {object}  domain.Rental
// @Failure      400     {object}  map[string]string
// @Failure      500     {object}  map[string]string
// @Router       /rentals [post]
func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRentalRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	rental, err := h.service.Create(r.Context(), req.CustomerID, req.GameID, req.DaysRented)
	if err != nil {
		switch err {
		case service.ErrGameNotFound, service.ErrCustomerNotFound, service.ErrOutOfStock:
			respondWithError(w, http.StatusBadRequest, err.Error())
		default:
			respondWithError(w, http.StatusInternalServerError, "erro ao criar aluguel")
		}
		return
	}

	respondWithJSON(w, http.StatusCreated, rental)
}

// @Summary      Devolve um aluguel
// @Description  Fecha um aluguel aberto, gravando a data de devolução e a multa por atraso (zero se dentro do prazo)
// @Tags         rentals
// @Produce      json
// @Param        id   path      int  true  "ID do aluguel"
// @Success      200  {object}  domain.Rental
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /rentals/{id}/return [post]
func (h *RentalHandler) Return(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "id inválido")
		return
	}

	rental, err := h.service.Return(r.Context(), id)
	if err != nil {
		switch err {
		case service.ErrRentalNotFound:
			respondWithError(w, http.StatusNotFound, err.Error())
		case service.ErrRentalClosed:
			respondWithError(w, http.StatusConflict, err.Error())
		default:
			respondWithError(w, http.StatusInternalServerError, "erro ao devolver aluguel")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, rental)
}

// @Summary      Cancela um aluguel
// @Description  Remove um aluguel ainda aberto. Aluguéis já devolvidos fazem parte do histórico e não podem ser apagados.
// @Tags         rentals
// @Produce      json
// @Param        id   path      int  true  "ID do aluguel"
// @Success      200  {string}  string "OK"
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /rentals/{id} [delete]
func (h *RentalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "id inválido")
		return
	}

	if err := h.service.Cancel(r.Context(), id); err != nil {
		switch err {
		case service.ErrRentalNotFound:
			respondWithError(w, http.StatusNotFound, err.Error())
		case service.ErrRentalClosed:
			respondWithError(w, http.StatusConflict, err.Error())
		default:
			respondWithError(w, http.StatusInternalServerError, "erro ao cancelar aluguel")
		}
		return
	}

	w.WriteHeader(http.StatusOK)
}

// @Summary      Lista os aluguéis
// @Description  Retorna os aluguéis com cliente e jogo embutidos; filtros por customerId e gameId podem ser combinados
// @Tags         rentals
// @Produce      json
// @Param        customerId  query     int  false  "Filtra pelos aluguéis do cliente"
// @Param        gameId      query     int  false  "Filtra pelos aluguéis do jogo"
// @Success      200         {array}   domain.RentalDetail
// @Failure      400         {object}  map[string]string
// @Failure      500         {object}  map[string]string
// @Router       /rentals [get]
func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	var customerID, gameID *int64

	if raw := r.URL.Query().Get("customerId"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "customerId inválido")
			return
		}
		customerID = &v
	}
	if raw := r.URL.Query().Get("gameId"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "gameId inválido")
			return
		}
		gameID = &v
	}

	rentals, err := h.service.List(r.Context(), customerID, gameID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "erro ao buscar aluguéis")
		return
	}
	if rentals == nil {
		rentals = []domain.RentalDetail{}
	}
	respondWithJSON(w, http.StatusOK, rentals)
}
