package repository

import (
	"context"
	"time"

	"proshop/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UserRepository defines the interface for user data access operations.
type UserRepository interface {
	// Create inserts a new user.
	Create(ctx context.Context, user *model.User) error

	// GetByID retrieves a user by ID, or nil if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)

	// GetByUsername retrieves a user by username, or nil if absent.
	GetByUsername(ctx context.Context, username string) (*model.User, error)

	// Exists reports whether a user with the username or email exists.
	Exists(ctx context.Context, username, email string) (bool, error)

	// GetAll retrieves all users.
	GetAll(ctx context.Context) ([]model.User, error)

	// Update overwrites the user's mutable fields.
	Update(ctx context.Context, user *model.User) error

	// Delete removes a user. Owned products, orders and reviews keep
	// their rows with a nulled user reference.
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// Search retrieves products whose name contains the keyword
	// case-insensitively. An empty keyword matches everything.
	Search(ctx context.Context, keyword string) ([]model.Product, error)

	// GetByID retrieves a single product by its ID, or nil if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// Create inserts a new product.
	Create(ctx context.Context, p *model.Product) error

	// Update overwrites the product's editable fields.
	Update(ctx context.Context, p *model.Product) error

	// Delete removes a product, nulling references on order items and
	// reviews.
	Delete(ctx context.Context, id uuid.UUID) error

	// SetImage stores the image reference on the product.
	SetImage(ctx context.Context, id uuid.UUID, image string) error

	// DecrementStock performs a conditional stock decrement within the
	// transaction, failing with ErrInsufficientStock when fewer than
	// qty items remain.
	DecrementStock(ctx context.Context, tx pgx.Tx, id uuid.UUID, qty int) error

	// CreateReview inserts a review.
	CreateReview(ctx context.Context, review *model.Review) error

	// HasReview reports whether the user already reviewed the product.
	HasReview(ctx context.Context, productID, userID uuid.UUID) (bool, error)

	// RefreshRating recomputes the product's rating and review count
	// from its reviews.
	RefreshRating(ctx context.Context, productID uuid.UUID) error
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrder inserts a new order within the provided transaction.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateShippingAddress inserts the order's shipping address within
	// the provided transaction.
	CreateShippingAddress(ctx context.Context, tx pgx.Tx, addr *model.ShippingAddress) error

	// CreateOrderItems inserts multiple order items within the provided transaction.
	CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error

	// GetByID retrieves an order by its ID, or nil if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)

	// GetItems retrieves the order's line items.
	GetItems(ctx context.Context, orderID uuid.UUID) ([]model.OrderItem, error)

	// GetShippingAddress retrieves the order's shipping address, or nil
	// if absent.
	GetShippingAddress(ctx context.Context, orderID uuid.UUID) (*model.ShippingAddress, error)

	// ListByUser retrieves all orders owned by the user.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Order, error)

	// ListAll retrieves all orders.
	ListAll(ctx context.Context) ([]model.Order, error)

	// SetPaid stamps the paid flag and timestamp. Returns false when no
	// such order exists.
	SetPaid(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)

	// SetDelivered stamps the delivered flag and timestamp. Returns
	// false when no such order exists.
	SetDelivered(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)

	// Delete removes an order. The shipping address cascades; order
	// items keep their rows with a nulled order reference.
	Delete(ctx context.Context, id uuid.UUID) error
}
