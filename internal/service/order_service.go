package service

import (
	"context"
	"fmt"
	"time"

	"proshop/internal/model"
	"proshop/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	validate    *validator.Validate
	logger      zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		validate:    validator.New(),
		logger:      logger.With().Str("service", "order").Logger(),
	}
}

// PlaceOrder atomically creates the order, its shipping address and
// line items, decrementing stock for each line. Any failure rolls the
// whole checkout back; no partial rows remain.
func (s *orderService) PlaceOrder(ctx context.Context, userID uuid.UUID, req *model.PlaceOrderRequest) (*model.OrderDetail, error) {
	if req == nil || len(req.OrderItems) == 0 {
		return nil, model.ErrEmptyCart
	}

	if err := s.validate.Struct(req); err != nil {
		s.logger.Warn().Err(err).Msg("invalid order payload")
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, model.ErrUserNotFound
	}

	// Resolve every cart line to a product before touching the store,
	// so the item name/image snapshot comes from the live product.
	products := make(map[uuid.UUID]*model.Product, len(req.OrderItems))
	for _, line := range req.OrderItems {
		product, err := s.productRepo.GetByID(ctx, line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("failed to load product: %w", err)
		}
		if product == nil {
			s.logger.Warn().Str("product_id", line.ProductID.String()).
				Msg("order references unknown product")
			return nil, model.ErrProductNotFound
		}
		products[line.ProductID] = product
	}

	// Start transaction
	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	// Ensure transaction is rolled back on error
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	now := time.Now()
	order := &model.Order{
		ID:            uuid.New(),
		UserID:        &user.ID,
		PaymentMethod: req.PaymentMethod,
		TaxPrice:      req.TaxPrice,
		ShippingPrice: req.ShippingPrice,
		TotalPrice:    req.TotalPrice,
		CreatedAt:     now,
	}

	if err = s.orderRepo.CreateOrder(ctx, tx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to create order")
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	address := &model.ShippingAddress{
		ID:            uuid.New(),
		OrderID:       order.ID,
		Address:       req.ShippingAddress.Address,
		City:          req.ShippingAddress.City,
		PostalCode:    req.ShippingAddress.PostalCode,
		Country:       req.ShippingAddress.Country,
		ShippingPrice: req.ShippingPrice,
	}

	if err = s.orderRepo.CreateShippingAddress(ctx, tx, address); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).
			Msg("failed to create shipping address")
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	// Snapshot each line from the live product and decrement its stock.
	items := make([]model.OrderItem, len(req.OrderItems))
	for i, line := range req.OrderItems {
		product := products[line.ProductID]
		productID := line.ProductID
		items[i] = model.OrderItem{
			ID:        uuid.New(),
			OrderID:   order.ID,
			ProductID: &productID,
			Name:      product.Name,
			Image:     product.Image,
			Qty:       line.Qty,
			Price:     line.Price,
		}
	}

	if err = s.orderRepo.CreateOrderItems(ctx, tx, items); err != nil {
		s.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Int("item_count", len(items)).
			Msg("failed to create order items")
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	for _, line := range req.OrderItems {
		if err = s.productRepo.DecrementStock(ctx, tx, line.ProductID, line.Qty); err != nil {
			s.logger.Warn().
				Err(err).
				Str("order_id", order.ID.String()).
				Str("product_id", line.ProductID.String()).
				Int("qty", line.Qty).
				Msg("stock decrement failed")
			return nil, err
		}
	}

	// Commit transaction
	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("user_id", user.ID.String()).
		Int("item_count", len(items)).
		Msg("order placed successfully")

	return &model.OrderDetail{
		Order:           *order,
		OrderItems:      items,
		ShippingAddress: address,
		User:            user,
	}, nil
}

// GetByID retrieves an order if the requester owns it or is admin.
func (s *orderService) GetByID(ctx context.Context, id, requesterID uuid.UUID, admin bool) (*model.OrderDetail, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}

	if !admin && (order.UserID == nil || *order.UserID != requesterID) {
		s.logger.Warn().
			Str("order_id", id.String()).
			Str("requester_id", requesterID.String()).
			Msg("order access denied")
		return nil, model.ErrForbidden
	}

	return s.assemble(ctx, order)
}

// assemble loads the order's items, shipping address and owning user.
func (s *orderService) assemble(ctx context.Context, order *model.Order) (*model.OrderDetail, error) {
	items, err := s.orderRepo.GetItems(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order items: %w", err)
	}

	address, err := s.orderRepo.GetShippingAddress(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shipping address: %w", err)
	}

	var user *model.User
	if order.UserID != nil {
		user, err = s.userRepo.GetByID(ctx, *order.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to load order user: %w", err)
		}
	}

	return &model.OrderDetail{
		Order:           *order,
		OrderItems:      items,
		ShippingAddress: address,
		User:            user,
	}, nil
}

// ListMine retrieves the requester's own orders.
func (s *orderService) ListMine(ctx context.Context, userID uuid.UUID) ([]model.Order, error) {
	orders, err := s.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// ListAll retrieves every order.
func (s *orderService) ListAll(ctx context.Context) ([]model.Order, error) {
	orders, err := s.orderRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list all orders")
		return nil, fmt.Errorf("failed to list all orders: %w", err)
	}
	return orders, nil
}

// MarkPaid stamps the paid flag and timestamp. Re-invoking simply
// re-stamps the timestamp.
func (s *orderService) MarkPaid(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	found, err := s.orderRepo.SetPaid(ctx, id, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to mark order paid: %w", err)
	}
	if !found {
		return nil, model.ErrOrderNotFound
	}

	s.logger.Info().Str("order_id", id.String()).Msg("order marked paid")
	return s.orderRepo.GetByID(ctx, id)
}

// MarkDelivered stamps the delivered flag and timestamp.
func (s *orderService) MarkDelivered(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	found, err := s.orderRepo.SetDelivered(ctx, id, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to mark order delivered: %w", err)
	}
	if !found {
		return nil, model.ErrOrderNotFound
	}

	s.logger.Info().Str("order_id", id.String()).Msg("order marked delivered")
	return s.orderRepo.GetByID(ctx, id)
}

// Delete removes an order.
func (s *orderService) Delete(ctx context.Context, id uuid.UUID) error {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if order == nil {
		return model.ErrOrderNotFound
	}

	if err := s.orderRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	s.logger.Info().Str("order_id", id.String()).Msg("order deleted")
	return nil
}
