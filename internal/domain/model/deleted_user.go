package model

import "time"

const (
	DefaultDeletionReason      = "User-initiated or admin deletion"
	DefaultAdminDeletionReason = "Deleted by admin"
)

// 削除されたユーザーのスナップショット。削除前に必ず保存する
type DeletedUser struct {
	Document
	UserID         string    `gorm:"type:varchar(36);not null;index" json:"userId"`
	FullName       string    `gorm:"type:varchar(255);not null" json:"fullName"`
	Email          string    `gorm:"type:varchar(255);not null" json:"email"`
	PhoneNumber    string    `gorm:"type:varchar(32);not null" json:"phoneNumber"`
	Address        []string  `gorm:"serializer:json;type:text" json:"address"`
	DeletionReason string    `gorm:"type:text;not null" json:"deletionReason"`
	DeletedAt      time.Time `gorm:"not null;index" json:"deletedAt"`
	DeletedByAdmin bool      `gorm:"not null;default:false" json:"deletedByAdmin"`
	AdminID        *string   `gorm:"type:varchar(36)" json:"adminId,omitempty"`
	AdminName      string    `gorm:"type:varchar(255)" json:"adminName,omitempty"`
}

// ユーザーからスナップショットを作る。reasonが空ならdefaultReason
func NewDeletedUser(u User, reason string, defaultReason string, now time.Time) DeletedUser {
	if reason == "" {
		reason = defaultReason
	}
	return DeletedUser{
		UserID:         u.ID,
		FullName:       u.FullName,
		Email:          u.Email,
		PhoneNumber:    u.PhoneNumber,
		Address:        u.Address,
		DeletionReason: reason,
		DeletedAt:      now,
	}
}
