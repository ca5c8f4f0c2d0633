package model

type UserStatus string

const (
	UserStatusActive   UserStatus = "Active"
	UserStatusInactive UserStatus = "Inactive"
)

func (s UserStatus) IsValid() bool {
	return s == UserStatusActive || s == UserStatusInactive
}

// 購入者アカウント
type User struct {
	Document
	FullName     string     `gorm:"type:varchar(255);not null" json:"fullName"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"column:password_hash;not null" json:"-"`
	PhoneNumber  string     `gorm:"type:varchar(32);uniqueIndex;not null" json:"phoneNumber"`
	Address      []string   `gorm:"serializer:json;type:text" json:"address"`
	Status       UserStatus `gorm:"type:varchar(20);not null;default:'Active'" json:"status"`
}
