package model

// 1ユーザー1商品につき1件
type Review struct {
	Document
	UserID    string   `gorm:"type:varchar(36);not null;uniqueIndex:idx_reviews_user_product" json:"userId"`
	User      *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	ProductID string   `gorm:"type:varchar(36);not null;uniqueIndex:idx_reviews_user_product;index" json:"productId"`
	Rating    int      `gorm:"not null" json:"rating"`
	Review    string   `gorm:"type:text" json:"review"`
	Images    []string `gorm:"serializer:json;type:text" json:"images"`
}
