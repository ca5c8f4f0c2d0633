package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// 全コレクション共通のID・作成時刻・更新時刻
type Document struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}

// IDが空ならUUIDを振る
func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
