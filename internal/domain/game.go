package domain

// Game é um jogo do catálogo da loja.
// Todos os valores monetários da API são em centavos (pricePerDay = 1500 → R$ 15,00).
type Game struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	StockTotal  int64  `json:"stockTotal"`
	CategoryID  int64  `json:"categoryId"`
	PricePerDay int64  `json:"pricePerDay"`

	// Preenchido apenas na listagem (join com categories); não é persistido no jogo.
	CategoryName string `json:"categoryName,omitempty"`
}
