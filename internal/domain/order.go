package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPaid      OrderStatus = "paid"
	OrderShipped   OrderStatus = "shipped"
	OrderCancelled OrderStatus = "cancelled"
)

// Valid сообщает, известен ли статус заказа.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderPaid, OrderShipped, OrderCancelled:
		return true
	default:
		return false
	}
}

// Order описывает заказ пользователя
type Order struct {
	ID          ID
	UserID      string
	Status      OrderStatus
	TotalAmount decimal.Decimal
	Items       []OrderItem
	CreatedAt   time.Time
}

// OrderItem — строка заказа
type OrderItem struct {
	ID        ID
	OrderID   ID
	ProductID ID
	Quantity  int
	Price     decimal.Decimal // цена за единицу на момент заказа
	Product   *Product
}

type OrderPatch struct {
	Status *OrderStatus
}

func (p OrderPatch) Empty() bool {
	return p.Status == nil
}

// Total считает сумму заказа по строкам.
func (o Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}
