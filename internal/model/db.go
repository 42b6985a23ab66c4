package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

type User struct {
	ID       string `gorm:"primaryKey;size:36;not null" json:"id"`
	Name     string `gorm:"size:128;not null" json:"name"`
	Email    string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password string `gorm:"size:128;not null" json:"-"` // bcrypt hash, never serialized
	Phone    string `gorm:"size:32" json:"phone"`
	Address  string `gorm:"size:512" json:"address"`
	Role     Role   `gorm:"size:16;not null;default:customer" json:"role"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Category struct {
	ID          string `gorm:"primaryKey;size:36;not null" json:"id"`
	Name        string `gorm:"size:128;uniqueIndex;not null" json:"name"`
	Slug        string `gorm:"size:128;uniqueIndex;not null" json:"slug"`
	Image       string `gorm:"size:512" json:"image"`
	Description string `gorm:"size:1024" json:"description"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Product struct {
	ID            string          `gorm:"primaryKey;size:36;not null" json:"id"`
	Name          string          `gorm:"size:255;index;not null" json:"name"`
	Description   string          `gorm:"size:4096;not null" json:"description"`
	Price         decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	DiscountPrice decimal.Decimal `gorm:"type:decimal(12,2)" json:"discountPrice"` // zero means no discount
	CategoryID    string          `gorm:"size:36;index;not null" json:"categoryId"`
	Category      *Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Images        []string        `gorm:"serializer:json" json:"images"`
	Stock         int             `gorm:"not null;default:0" json:"stock"`
	Sold          int             `gorm:"not null;default:0" json:"sold"`
	RatingAvg     float64         `gorm:"not null;default:0" json:"ratingAverage"`
	RatingCount   int             `gorm:"not null;default:0" json:"ratingCount"`
	IsFeatured    bool            `gorm:"not null;default:false" json:"isFeatured"`
	IsActive      bool            `gorm:"not null;default:true" json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EffectivePrice is the price a buyer actually pays: the discount price
// when one is set, the list price otherwise.
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.DiscountPrice.IsPositive() {
		return p.DiscountPrice
	}
	return p.Price
}

type Order struct {
	ID     string      `gorm:"primaryKey;size:36;not null" json:"id"`
	UserID string      `gorm:"size:36;index;not null" json:"userId"`
	User   *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items  []OrderItem `gorm:"foreignKey:OrderID" json:"items"`

	Street   string `gorm:"size:255;not null" json:"street"`
	City     string `gorm:"size:128;not null" json:"city"`
	District string `gorm:"size:128;not null" json:"district"`
	State    string `gorm:"size:128;not null" json:"state"`
	Pincode  string `gorm:"size:6;not null" json:"pincode"`

	PaymentMethod PaymentMethod   `gorm:"size:16;not null" json:"paymentMethod"`
	PaymentStatus PaymentStatus   `gorm:"size:16;index;not null;default:pending" json:"paymentStatus"`
	OrderStatus   OrderStatus     `gorm:"size:16;index;not null;default:processing" json:"orderStatus"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"totalAmount"`
	PaymentRef    string          `gorm:"size:64" json:"paymentRef,omitempty"`
	DeliveredAt   *time.Time      `json:"deliveredAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OrderItem is a snapshot of the product at order time so later edits to
// the live product do not change historical orders.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"-"`
	OrderID   string          `gorm:"size:36;index;not null" json:"-"`
	ProductID string          `gorm:"size:36;index;not null" json:"productId"`
	Name      string          `gorm:"size:255;not null" json:"name"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Image     string          `gorm:"size:512" json:"image"`

	CreatedAt time.Time `json:"-"`
}
