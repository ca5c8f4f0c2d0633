package model

// 注文の明細
type OrderItem struct {
	ID        uint     `gorm:"primaryKey;autoIncrement" json:"-"`
	OrderID   string   `gorm:"type:varchar(36);not null;index" json:"-"`
	ProductID string   `gorm:"type:varchar(36);not null" json:"productId"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity  int64    `gorm:"not null" json:"quantity"`
}
