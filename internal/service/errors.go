package service

import "errors"

// Erros de negócio da API. Os handlers fazem switch nesses valores para
// escolher o status HTTP; qualquer outro erro vira 500 genérico.
var (
	ErrCategoryNotFound  = errors.New("categoria não encontrada")
	ErrCategoryNameTaken = errors.New("já existe uma categoria com esse nome")

	ErrGameNotFound  = errors.New("jogo não encontrado")
	ErrGameNameTaken = errors.New("já existe um jogo com esse nome")

	ErrCustomerNotFound = errors.New("cliente não encontrado")
	ErrCPFTaken         = errors.New("já existe um cliente com esse cpf")

	ErrRentalNotFound = errors.New("aluguel não encontrado")
	ErrRentalClosed   = errors.New("aluguel já devolvido")
	ErrOutOfStock     = errors.New("jogo sem unidades disponíveis para aluguel")
)
