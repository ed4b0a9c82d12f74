package model

import (
	"time"

	"github.com/google/uuid"
)

// Order represents a placed order. Only the paid/delivered flags and
// their timestamps change after creation.
type Order struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	UserID        *uuid.UUID `json:"userId,omitempty" db:"user_id"`
	PaymentMethod string     `json:"paymentMethod" db:"payment_method"`
	TaxPrice      float64    `json:"taxPrice" db:"tax_price"`
	ShippingPrice float64    `json:"shippingPrice" db:"shipping_price"`
	TotalPrice    float64    `json:"totalPrice" db:"total_price"`
	IsPaid        bool       `json:"isPaid" db:"is_paid"`
	PaidAt        *time.Time `json:"paidAt,omitempty" db:"paid_at"`
	IsDelivered   bool       `json:"isDelivered" db:"is_delivered"`
	DeliveredAt   *time.Time `json:"deliveredAt,omitempty" db:"delivered_at"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
}

// OrderItem is a line item snapshotting the product's name and image at
// order time, so later product edits don't alter historical orders.
type OrderItem struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	OrderID   uuid.UUID  `json:"-" db:"order_id"`
	ProductID *uuid.UUID `json:"productId,omitempty" db:"product_id"`
	Name      string     `json:"name" db:"name"`
	Image     string     `json:"image" db:"image"`
	Qty       int        `json:"qty" db:"qty"`
	Price     float64    `json:"price" db:"price"`
}

// ShippingAddress belongs to exactly one order.
type ShippingAddress struct {
	ID            uuid.UUID `json:"id" db:"id"`
	OrderID       uuid.UUID `json:"-" db:"order_id"`
	Address       string    `json:"address" db:"address"`
	City          string    `json:"city" db:"city"`
	PostalCode    string    `json:"postalCode" db:"postal_code"`
	Country       string    `json:"country" db:"country"`
	ShippingPrice float64   `json:"shippingPrice" db:"shipping_price"`
}

// OrderItemRequest is a single cart line submitted at checkout.
type OrderItemRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Qty       int       `json:"qty" validate:"gt=0"`
	Price     float64   `json:"price" validate:"gte=0"`
}

// ShippingAddressRequest holds the address fields submitted at checkout.
type ShippingAddressRequest struct {
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postalCode" validate:"required"`
	Country    string `json:"country" validate:"required"`
}

// PlaceOrderRequest is the payload for POST /api/orders/addOrder. The
// cart itself is never persisted; it exists only in this payload.
type PlaceOrderRequest struct {
	PaymentMethod   string                 `json:"paymentMethod" validate:"required"`
	TaxPrice        float64                `json:"taxPrice" validate:"gte=0"`
	ShippingPrice   float64                `json:"shippingPrice" validate:"gte=0"`
	TotalPrice      float64                `json:"totalPrice" validate:"gte=0"`
	OrderItems      []OrderItemRequest     `json:"orderItems" validate:"dive"`
	ShippingAddress ShippingAddressRequest `json:"shippingAddress"`
}

// OrderDetail is the fully assembled order returned by the API: the
// order row with its items, shipping address, and owning user.
type OrderDetail struct {
	Order
	OrderItems      []OrderItem      `json:"orderItems"`
	ShippingAddress *ShippingAddress `json:"shippingAddress,omitempty"`
	User            *User            `json:"user,omitempty"`
}
