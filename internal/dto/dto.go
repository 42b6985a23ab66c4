package dto

import (
	"storefront-api/internal/model"

	"github.com/shopspring/decimal"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is the public profile plus a fresh bearer token.
type AuthResponse struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Email string     `json:"email"`
	Role  model.Role `json:"role"`
	Token string     `json:"token"`
}

type UpdateProfileRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Password string `json:"password" validate:"omitempty,min=6"`
}

type CreateProductRequest struct {
	Name          string          `json:"name" validate:"required"`
	Description   string          `json:"description" validate:"required"`
	Price         decimal.Decimal `json:"price"`
	DiscountPrice decimal.Decimal `json:"discountPrice"`
	CategoryID    string          `json:"categoryId" validate:"required"`
	Images        []string        `json:"images"`
	Stock         int             `json:"stock" validate:"gte=0"`
	IsFeatured    bool            `json:"isFeatured"`
}

// UpdateProductRequest uses pointers so absent fields are left untouched.
type UpdateProductRequest struct {
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	Price         *decimal.Decimal `json:"price"`
	DiscountPrice *decimal.Decimal `json:"discountPrice"`
	CategoryID    *string          `json:"categoryId"`
	Images        *[]string        `json:"images"`
	Stock         *int             `json:"stock"`
	IsFeatured    *bool            `json:"isFeatured"`
	IsActive      *bool            `json:"isActive"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Slug        string `json:"slug" validate:"required"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Image       *string `json:"image"`
	Description *string `json:"description"`
}

type OrderItemRequest struct {
	ProductID string `json:"product" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

type ShippingAddress struct {
	Street   string `json:"street" validate:"required"`
	City     string `json:"city" validate:"required"`
	District string `json:"district" validate:"required"`
	State    string `json:"state" validate:"required"`
	Pincode  string `json:"pincode" validate:"required,len=6,numeric"`
}

type PlaceOrderRequest struct {
	Items           []OrderItemRequest  `json:"items" validate:"dive"`
	ShippingAddress ShippingAddress     `json:"shippingAddress" validate:"required"`
	PaymentMethod   model.PaymentMethod `json:"paymentMethod" validate:"required"`
	TotalAmount     decimal.Decimal     `json:"totalAmount"`
	PaymentRef      string              `json:"paymentRef"`
}

type UpdateOrderStatusRequest struct {
	OrderStatus   model.OrderStatus   `json:"orderStatus"`
	PaymentStatus model.PaymentStatus `json:"paymentStatus"`
}

// OrderItemView pairs the immutable snapshot with current product display
// fields for listings.
type OrderItemView struct {
	model.OrderItem
	Product *ProductRef `json:"product,omitempty"`
}

type ProductRef struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Images []string `json:"images,omitempty"`
}

type OrderView struct {
	model.Order
	Items []OrderItemView `json:"items"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
