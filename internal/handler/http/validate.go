package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Instância única do validador, compartilhada por todos os handlers.
// As regras ficam nas tags `validate` dos DTOs de requisição.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Os erros de campo saem com o nome do JSON (daysRented), não o da struct.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeAndValidate lê o corpo JSON para dst e valida as tags do DTO.
// Se algo falhar, responde 400 com o detalhe por campo e devolve false:
// validação reprovada encerra a requisição aqui, o handler não continua.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondWithError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return false
	}

	if err := validate.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			details := make(map[string]string, len(fieldErrs))
			for _, fe := range fieldErrs {
				details[fe.Field()] = fe.Tag()
			}
			respondWithJSON(w, http.StatusBadRequest, map[string]any{
				"error":  "dados inválidos",
				"fields": details,
			})
		} else {
			respondWithError(w, http.StatusBadRequest, "dados inválidos")
		}
		return false
	}
	return true
}
