package domain

// Rental é um aluguel de jogo. Enquanto ReturnDate for nil o aluguel está "aberto"
// e ocupa uma unidade do estoque do jogo. A devolução fecha o aluguel uma única vez:
// ReturnDate e DelayFee são gravados juntos e nunca mais mudam.
type Rental struct {
	ID            int64  `json:"id"`
	CustomerID    int64  `json:"customerId"`
	GameID        int64  `json:"gameId"`
	RentDate      Date   `json:"rentDate"`
	DaysRented    int64  `json:"daysRented"`
	ReturnDate    *Date  `json:"returnDate"`
	OriginalPrice int64  `json:"originalPrice"`
	DelayFee      *int64 `json:"delayFee"`
}

// Open informa se o aluguel ainda não foi devolvido.
func (r Rental) Open() bool {
	return r.ReturnDate == nil
}

// RentalCustomer é o resumo do cliente embutido na listagem de aluguéis.
type RentalCustomer struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// RentalGame é o resumo do jogo embutido na listagem de aluguéis.
type RentalGame struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	CategoryID   int64  `json:"categoryId"`
	CategoryName string `json:"categoryName"`
}

// RentalDetail é o aluguel enriquecido com cliente e jogo, como a listagem devolve.
// É montado na leitura (join); nada disso fica gravado no aluguel.
type RentalDetail struct {
	Rental
	Customer RentalCustomer `json:"customer"`
	Game     RentalGame     `json:"game"`
}
