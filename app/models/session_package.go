package models

import "github.com/shopspring/decimal"

// SessionPackage is a lesson bundle a student can be assigned: how many
// sessions it buys and how many instruments it covers.
type SessionPackage struct {
	ID             string          `json:"package_id"`
	PackageName    string          `json:"package_name" validate:"required"`
	Sessions       int             `json:"sessions" validate:"required,min=1"`
	MaxInstruments int             `json:"max_instruments" validate:"required,min=1,max=3"`
	Price          decimal.Decimal `json:"price"`
	Description    *string         `json:"description,omitempty"`
}
