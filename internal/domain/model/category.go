package model

// 名前は大文字小文字を区別せず一意
type Category struct {
	Document
	Name        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}
