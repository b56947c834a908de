package domain

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// Layout do formato de data usado em toda a API (sem hora, sem fuso).
const DateLayout = "2006-01-02"

// Date representa uma data com precisão de dia, como "2021-06-20".
// A API inteira trabalha com datas assim: o aluguel guarda o dia, nunca a hora.
type Date struct {
	time.Time
}

// NewDate trunca um time.Time para a precisão de dia, descartando hora e fuso.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// DaysUntil conta os dias inteiros decorridos entre d e other.
func (d Date) DaysUntil(other Date) int64 {
	return int64(other.Sub(d.Time) / (24 * time.Hour))
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

// MarshalJSON serializa a data no formato "2006-01-02" (sem aspas de RFC3339 completo).
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("data inválida: %s", s)
	}
	t, err := time.Parse(DateLayout, s[1:len(s)-1])
	if err != nil {
		return fmt.Errorf("data inválida: %w", err)
	}
	*d = Date{Time: t}
	return nil
}

// Value grava a data como TEXT no banco.
func (d Date) Value() (driver.Value, error) {
	return d.Format(DateLayout), nil
}

// Scan lê a data de volta do banco, aceitando TEXT ou time.Time do driver.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case string:
		t, err := time.Parse(DateLayout, v)
		if err != nil {
			return fmt.Errorf("data inválida no banco: %w", err)
		}
		*d = Date{Time: t}
		return nil
	case []byte:
		return d.Scan(string(v))
	case time.Time:
		*d = NewDate(v)
		return nil
	default:
		return fmt.Errorf("tipo inesperado para Date: %T", src)
	}
}
