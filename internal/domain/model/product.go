package model

import "github.com/shopspring/decimal"

type Product struct {
	Document
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	CategoryID  string          `gorm:"type:varchar(36);not null;index" json:"categoryId"`
	Category    *Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	Stock       int64           `gorm:"not null;default:0" json:"stock"`
	Images      []string        `gorm:"serializer:json;type:text" json:"images"`
}
