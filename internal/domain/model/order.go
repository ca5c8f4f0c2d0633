package model

import "github.com/shopspring/decimal"

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "Pending"
	PaymentStatusPaid     PaymentStatus = "Paid"
	PaymentStatusFailed   PaymentStatus = "Failed"
	PaymentStatusRefunded PaymentStatus = "Refunded"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

type OrderDeliveryStatus string

const (
	OrderDeliveryPending   OrderDeliveryStatus = "Pending"
	OrderDeliveryShipped   OrderDeliveryStatus = "Shipped"
	OrderDeliveryDelivered OrderDeliveryStatus = "Delivered"
	OrderDeliveryCancelled OrderDeliveryStatus = "Cancelled"
)

func (s OrderDeliveryStatus) IsValid() bool {
	switch s {
	case OrderDeliveryPending, OrderDeliveryShipped, OrderDeliveryDelivered, OrderDeliveryCancelled:
		return true
	}
	return false
}

type Order struct {
	Document
	UserID         string              `gorm:"type:varchar(36);not null;index" json:"userId"`
	User           *User               `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items          []OrderItem         `gorm:"foreignKey:OrderID" json:"products"`
	TotalPrice     decimal.Decimal     `gorm:"type:numeric(14,2);not null" json:"totalPrice"`
	PaymentStatus  PaymentStatus       `gorm:"type:varchar(20);not null;default:'Pending'" json:"paymentStatus"`
	DeliveryStatus OrderDeliveryStatus `gorm:"type:varchar(20);not null;default:'Pending'" json:"deliveryStatus"`
}
