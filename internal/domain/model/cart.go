package model

import "github.com/shopspring/decimal"

// 1ユーザーにつきカートは1つ
type Cart struct {
	Document
	UserID     string          `gorm:"type:varchar(36);not null;uniqueIndex" json:"userId"`
	User       *User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items      []CartItem      `gorm:"foreignKey:CartID" json:"products"`
	TotalPrice decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"totalPrice"`
}
