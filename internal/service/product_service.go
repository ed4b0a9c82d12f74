package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"proshop/internal/model"
	"proshop/internal/repository"
	"proshop/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	images      storage.Store
	validate    *validator.Validate
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	images storage.Store,
	logger zerolog.Logger,
) ProductService {
	return &productService{
		productRepo: productRepo,
		userRepo:    userRepo,
		images:      images,
		validate:    validator.New(),
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// List retrieves products matching the keyword.
func (s *productService) List(ctx context.Context, keyword string) ([]model.Product, error) {
	products, err := s.productRepo.Search(ctx, keyword)
	if err != nil {
		s.logger.Error().Err(err).Str("keyword", keyword).Msg("failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	s.logger.Debug().
		Str("keyword", keyword).
		Int("count", len(products)).
		Msg("products listed")

	return products, nil
}

// GetByID retrieves a single product.
func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}
	return product, nil
}

// Create inserts a placeholder product owned by the given user. The
// admin fills the real fields in through a subsequent update.
func (s *productService) Create(ctx context.Context, ownerID uuid.UUID) (*model.Product, error) {
	product := &model.Product{
		ID:          uuid.New(),
		UserID:      &ownerID,
		Name:        "Sample Name",
		Image:       "/placeholder.png",
		Brand:       "Sample Brand",
		Category:    "Sample Category",
		Description: "",
		CreatedAt:   time.Now(),
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		s.logger.Error().Err(err).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().Str("product_id", product.ID.String()).Msg("product created")
	return product, nil
}

// Update overwrites the product's editable fields. All listed fields
// are required; there is no partial update.
func (s *productService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateProductRequest) (*model.Product, error) {
	if err := s.validate.Struct(req); err != nil {
		s.logger.Warn().Err(err).Msg("invalid product payload")
		return nil, err
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}

	product.Name = req.Name
	product.Price = req.Price
	product.Brand = req.Brand
	product.CountInStock = req.CountInStock
	product.Category = req.Category
	product.Description = req.Description

	if err := s.productRepo.Update(ctx, product); err != nil {
		s.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	s.logger.Info().Str("product_id", id.String()).Msg("product updated")
	return product, nil
}

// Delete removes a product.
func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if product == nil {
		return model.ErrProductNotFound
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	s.logger.Info().Str("product_id", id.String()).Msg("product deleted")
	return nil
}

// AttachImage stores an uploaded image and records its reference on the
// product.
func (s *productService) AttachImage(ctx context.Context, productID uuid.UUID, filename string, content io.Reader) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to attach image: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}

	// Prefix with the product ID so concurrent uploads cannot clobber
	// each other's files.
	ref, err := s.images.Put(ctx, fmt.Sprintf("%s-%s", productID, filename), content)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", productID.String()).
			Msg("failed to store image")
		return nil, fmt.Errorf("failed to store image: %w", err)
	}

	if err := s.productRepo.SetImage(ctx, productID, ref); err != nil {
		return nil, fmt.Errorf("failed to attach image: %w", err)
	}

	product.Image = ref

	s.logger.Info().
		Str("product_id", productID.String()).
		Str("image", ref).
		Msg("image attached to product")

	return product, nil
}

// CreateReview adds a review to a product and recomputes its rating.
func (s *productService) CreateReview(ctx context.Context, productID, userID uuid.UUID, req *model.CreateReviewRequest) error {
	if err := s.validate.Struct(req); err != nil {
		s.logger.Warn().Err(err).Msg("invalid review payload")
		return err
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	if product == nil {
		return model.ErrProductNotFound
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	if user == nil {
		return model.ErrUserNotFound
	}

	reviewed, err := s.productRepo.HasReview(ctx, productID, userID)
	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	if reviewed {
		return model.ErrAlreadyReviewed
	}

	review := &model.Review{
		ID:        uuid.New(),
		ProductID: &productID,
		UserID:    &userID,
		Name:      user.Name,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now(),
	}

	if err := s.productRepo.CreateReview(ctx, review); err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}

	if err := s.productRepo.RefreshRating(ctx, productID); err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}

	s.logger.Info().
		Str("product_id", productID.String()).
		Str("user_id", userID.String()).
		Int("rating", req.Rating).
		Msg("review created")

	return nil
}
