package models

import "github.com/shopspring/decimal"

// Project is the aggregate root tracked by obra.
// Materials, Steps and Categories are only populated by a fetch by ID;
// list queries return the scalar columns alone.
type Project struct {
	ID             int
	Name           string
	EstimatedHours decimal.Decimal
	ActualHours    decimal.Decimal
	Difficulty     int // 1-5, not enforced
	Notes          string

	Materials  []Material
	Steps      []Step
	Categories []Category
}

// GetID lets output formatters print the ID in quiet mode
func (p *Project) GetID() int {
	return p.ID
}
