package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusConfirmed OrderStatus = "Confirmed"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// Order is the immutable snapshot produced at checkout. TotalPrice is fixed
// at checkout time and never recomputed from current product prices.
type Order struct {
	ID            uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	Phone         string      `gorm:"not null" json:"phone"`
	PaymentMethod string      `gorm:"not null" json:"paymentMethod"`
	ShippingLat   *float64    `json:"shippingLat"`
	ShippingLng   *float64    `json:"shippingLng"`
	Items         []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`

	TotalPrice decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"totalPrice"`
	Status     OrderStatus     `gorm:"type:varchar(20);default:'Pending'" json:"status"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// OrderItem captures the purchased product at its checkout-time price and
// quantity, so the order survives later catalog edits.
type OrderItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"-"`
	OrderID     uuid.UUID       `gorm:"type:uuid;index" json:"-"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null" json:"productId"`
	ProductName string          `json:"productName"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unitPrice"`
	Quantity    int             `gorm:"not null" json:"quantity"`
}
