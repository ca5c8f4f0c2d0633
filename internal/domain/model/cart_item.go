package model

// カートの明細
type CartItem struct {
	ID        uint     `gorm:"primaryKey;autoIncrement" json:"-"`
	CartID    string   `gorm:"type:varchar(36);not null;index" json:"-"`
	ProductID string   `gorm:"type:varchar(36);not null" json:"productId"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity  int64    `gorm:"not null" json:"quantity"`
}
