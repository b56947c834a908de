package domain

// Category é uma categoria de jogo de tabuleiro (ex: "Estratégia", "Cartas").
// O nome é único no catálogo.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
