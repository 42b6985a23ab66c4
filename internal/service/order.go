package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront-api/internal/dto"
	"storefront-api/internal/model"
	"storefront-api/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, userID string, req *dto.PlaceOrderRequest) (*model.Order, error)
	ListMyOrders(ctx context.Context, userID string) ([]*dto.OrderView, error)
	ListAllOrders(ctx context.Context) ([]*dto.OrderView, error)
	UpdateOrderStatus(ctx context.Context, orderID string, req *dto.UpdateOrderStatusRequest) (*model.Order, error)
}

type orderServiceImpl struct {
	db          *gorm.DB
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

func NewOrderService(
	db *gorm.DB,
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
) OrderService {
	return &orderServiceImpl{
		db:          db,
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

// PlaceOrder validates the cart against live products, snapshots each line
// item, and commits the order together with every stock adjustment in a
// single transaction. Any line that cannot be covered by current stock
// aborts the whole order.
func (s *orderServiceImpl) PlaceOrder(ctx context.Context, userID string, req *dto.PlaceOrderRequest) (*model.Order, error) {
	if len(req.Items) == 0 {
		return nil, ErrNoItems
	}
	if !req.PaymentMethod.Valid() {
		return nil, ErrInvalidPayment
	}

	productIDs := make([]string, len(req.Items))
	for i, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		productIDs[i] = item.ProductID
	}

	var order *model.Order

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		products, err := s.productRepo.FindManyActive(ctx, tx, productIDs)
		if err != nil {
			return fmt.Errorf("load products: %w", err)
		}

		byID := make(map[string]*model.Product, len(products))
		for _, p := range products {
			byID[p.ID] = p
		}

		total := decimal.Zero
		items := make([]model.OrderItem, len(req.Items))
		for i, line := range req.Items {
			product, ok := byID[line.ProductID]
			if !ok {
				return ErrProductUnavailable
			}

			unitPrice := product.EffectivePrice()
			total = total.Add(unitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))

			image := ""
			if len(product.Images) > 0 {
				image = product.Images[0]
			}

			items[i] = model.OrderItem{
				ProductID: product.ID,
				Name:      product.Name,
				UnitPrice: unitPrice,
				Quantity:  line.Quantity,
				Image:     image,
			}
		}

		if !total.Equal(req.TotalAmount) {
			return ErrTotalMismatch
		}

		for _, line := range req.Items {
			if err := s.productRepo.AdjustStock(ctx, tx, line.ProductID, line.Quantity); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrInsufficientStock
				}
				return fmt.Errorf("adjust stock: %w", err)
			}
		}

		order = &model.Order{
			ID:            uuid.NewString(),
			UserID:        userID,
			Items:         items,
			Street:        req.ShippingAddress.Street,
			City:          req.ShippingAddress.City,
			District:      req.ShippingAddress.District,
			State:         req.ShippingAddress.State,
			Pincode:       req.ShippingAddress.Pincode,
			PaymentMethod: req.PaymentMethod,
			PaymentStatus: model.PaymentPending,
			OrderStatus:   model.OrderProcessing,
			TotalAmount:   total,
			PaymentRef:    req.PaymentRef,
		}

		if err := s.orderRepo.Create(ctx, tx, order); err != nil {
			return fmt.Errorf("store order: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

func (s *orderServiceImpl) ListMyOrders(ctx context.Context, userID string) ([]*dto.OrderView, error) {
	orders, err := s.orderRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	return s.toViews(ctx, orders)
}

func (s *orderServiceImpl) ListAllOrders(ctx context.Context) ([]*dto.OrderView, error) {
	orders, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	return s.toViews(ctx, orders)
}

// UpdateOrderStatus applies a partial status merge under the transition
// table. Moving into delivered stamps DeliveredAt once.
func (s *orderServiceImpl) UpdateOrderStatus(ctx context.Context, orderID string, req *dto.UpdateOrderStatusRequest) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}

	if req.OrderStatus != "" {
		switch req.OrderStatus {
		case model.OrderProcessing, model.OrderConfirmed, model.OrderShipped, model.OrderDelivered, model.OrderCancelled:
		default:
			return nil, ErrInvalidStatus
		}

		if !order.OrderStatus.CanTransitionTo(req.OrderStatus) {
			return nil, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, order.OrderStatus, req.OrderStatus)
		}

		if req.OrderStatus == model.OrderDelivered && order.OrderStatus != model.OrderDelivered {
			now := time.Now()
			order.DeliveredAt = &now
		}
		order.OrderStatus = req.OrderStatus
	}

	if req.PaymentStatus != "" {
		switch req.PaymentStatus {
		case model.PaymentPending, model.PaymentPaid, model.PaymentFailed:
		default:
			return nil, ErrInvalidStatus
		}

		if !order.PaymentStatus.CanTransitionTo(req.PaymentStatus) {
			return nil, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, order.PaymentStatus, req.PaymentStatus)
		}
		order.PaymentStatus = req.PaymentStatus
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, fmt.Errorf("save order: %w", err)
	}

	return order, nil
}

// toViews joins current product display fields onto the immutable item
// snapshots. Products that vanished since the order stay snapshot-only.
func (s *orderServiceImpl) toViews(ctx context.Context, orders []*model.Order) ([]*dto.OrderView, error) {
	idSet := make(map[string]struct{})
	for _, order := range orders {
		for _, item := range order.Items {
			idSet[item.ProductID] = struct{}{}
		}
	}

	productIDs := make([]string, 0, len(idSet))
	for id := range idSet {
		productIDs = append(productIDs, id)
	}

	refs := map[string]*model.Product{}
	if len(productIDs) > 0 {
		var err error
		refs, err = s.productRepo.FindRefs(ctx, productIDs)
		if err != nil {
			return nil, fmt.Errorf("load product refs: %w", err)
		}
	}

	views := make([]*dto.OrderView, len(orders))
	for i, order := range orders {
		view := &dto.OrderView{
			Order: *order,
			Items: make([]dto.OrderItemView, len(order.Items)),
		}
		for j, item := range order.Items {
			itemView := dto.OrderItemView{OrderItem: item}
			if ref, ok := refs[item.ProductID]; ok {
				itemView.Product = &dto.ProductRef{
					ID:     ref.ID,
					Name:   ref.Name,
					Images: ref.Images,
				}
			}
			view.Items[j] = itemView
		}
		views[i] = view
	}

	return views, nil
}
