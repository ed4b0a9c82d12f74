package service

import (
	"context"
	"io"

	"proshop/internal/model"

	"github.com/google/uuid"
)

// UserService defines registration, login and account management.
type UserService interface {
	// Register creates an account and returns the profile with a token pair.
	Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error)

	// Login verifies credentials and returns the profile with a token pair.
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)

	// GetProfile retrieves the caller's own profile.
	GetProfile(ctx context.Context, userID uuid.UUID) (*model.User, error)

	// UpdateProfile updates the caller's own profile.
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *model.UpdateProfileRequest) (*model.User, error)

	// ListUsers retrieves all accounts.
	ListUsers(ctx context.Context) ([]model.User, error)

	// GetUser retrieves one account by ID.
	GetUser(ctx context.Context, id uuid.UUID) (*model.User, error)

	// UpdateUser updates an account's name, email and admin flag.
	UpdateUser(ctx context.Context, id uuid.UUID, req *model.UpdateUserRequest) (*model.User, error)

	// DeleteUser removes an account.
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// ProductService defines catalogue operations.
type ProductService interface {
	// List retrieves products matching the keyword; an empty keyword
	// returns the whole catalogue.
	List(ctx context.Context, keyword string) ([]model.Product, error)

	// GetByID retrieves a single product.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// Create inserts a placeholder product owned by the given user.
	Create(ctx context.Context, ownerID uuid.UUID) (*model.Product, error)

	// Update overwrites the product's editable fields.
	Update(ctx context.Context, id uuid.UUID, req *model.UpdateProductRequest) (*model.Product, error)

	// Delete removes a product.
	Delete(ctx context.Context, id uuid.UUID) error

	// AttachImage stores an uploaded image and records its reference on
	// the product.
	AttachImage(ctx context.Context, productID uuid.UUID, filename string, content io.Reader) (*model.Product, error)

	// CreateReview adds a review to a product and recomputes its rating.
	CreateReview(ctx context.Context, productID, userID uuid.UUID, req *model.CreateReviewRequest) error
}

// OrderService defines checkout and order management.
type OrderService interface {
	// PlaceOrder atomically creates the order, its shipping address and
	// line items, decrementing stock for each line.
	PlaceOrder(ctx context.Context, userID uuid.UUID, req *model.PlaceOrderRequest) (*model.OrderDetail, error)

	// GetByID retrieves an order if the requester owns it or is admin.
	GetByID(ctx context.Context, id, requesterID uuid.UUID, admin bool) (*model.OrderDetail, error)

	// ListMine retrieves the requester's own orders.
	ListMine(ctx context.Context, userID uuid.UUID) ([]model.Order, error)

	// ListAll retrieves every order.
	ListAll(ctx context.Context) ([]model.Order, error)

	// MarkPaid stamps the paid flag and timestamp.
	MarkPaid(ctx context.Context, id uuid.UUID) (*model.Order, error)

	// MarkDelivered stamps the delivered flag and timestamp.
	MarkDelivered(ctx context.Context, id uuid.UUID) (*model.Order, error)

	// Delete removes an order.
	Delete(ctx context.Context, id uuid.UUID) error
}
