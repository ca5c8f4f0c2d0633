package model

import "time"

// 配送ステータス。遷移の順序は強制しない
type DeliveryStatus string

const (
	DeliveryStatusPending        DeliveryStatus = "Pending"
	DeliveryStatusOutForDelivery DeliveryStatus = "Out for Delivery"
	DeliveryStatusDelivered      DeliveryStatus = "Delivered"
)

func (s DeliveryStatus) IsValid() bool {
	switch s {
	case DeliveryStatusPending, DeliveryStatusOutForDelivery, DeliveryStatusDelivered:
		return true
	}
	return false
}

type Delivery struct {
	Document
	OrderID               string         `gorm:"type:varchar(36);not null;index" json:"orderId"`
	Order                 *Order         `gorm:"foreignKey:OrderID" json:"order,omitempty"`
	Courier               string         `gorm:"type:varchar(255)" json:"courier"`
	Status                DeliveryStatus `gorm:"type:varchar(32);not null;default:'Pending'" json:"status"`
	EstimatedDeliveryTime *time.Time     `json:"estimatedDeliveryTime,omitempty"`
}
