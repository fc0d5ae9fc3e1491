package models

import "github.com/shopspring/decimal"

// Material is something a project needs to buy or gather
type Material struct {
	ID          int
	ProjectID   int
	Name        string
	NumRequired int
	Cost        decimal.Decimal
}

func (m *Material) GetID() int {
	return m.ID
}
