package repository

import (
	"context"
	"fmt"

	"proshop/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

const productColumns = `id, user_id, name, image, brand, category, description,
	rating, num_reviews, price, count_in_stock, created_at`

// Search retrieves products whose name contains the keyword
// case-insensitively. An empty keyword matches everything.
func (r *productRepository) Search(ctx context.Context, keyword string) ([]model.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY created_at
	`

	rows, err := r.pool.Query(ctx, query, keyword)
	if err != nil {
		r.logger.Error().Err(err).Str("keyword", keyword).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Image, &p.Brand, &p.Category,
			&p.Description, &p.Rating, &p.NumReviews, &p.Price, &p.CountInStock, &p.CreatedAt)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// GetByID retrieves a single product by its ID, or nil if absent.
func (r *productRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	var p model.Product
	err := r.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.UserID, &p.Name, &p.Image,
		&p.Brand, &p.Category, &p.Description, &p.Rating, &p.NumReviews, &p.Price,
		&p.CountInStock, &p.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("product_id", id.String()).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return &p, nil
}

// Create inserts a new product.
func (r *productRepository) Create(ctx context.Context, p *model.Product) error {
	query := `
		INSERT INTO products (id, user_id, name, image, brand, category, description,
			rating, num_reviews, price, count_in_stock, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.pool.Exec(ctx, query, p.ID, p.UserID, p.Name, p.Image, p.Brand,
		p.Category, p.Description, p.Rating, p.NumReviews, p.Price, p.CountInStock, p.CreatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", p.ID.String()).Msg("failed to create product")
		return fmt.Errorf("failed to create product: %w", err)
	}

	r.logger.Debug().Str("product_id", p.ID.String()).Msg("product created successfully")
	return nil
}

// Update overwrites the product's editable fields.
func (r *productRepository) Update(ctx context.Context, p *model.Product) error {
	query := `
		UPDATE products
		SET name = $2, price = $3, brand = $4, count_in_stock = $5, category = $6, description = $7
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, query, p.ID, p.Name, p.Price, p.Brand,
		p.CountInStock, p.Category, p.Description)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", p.ID.String()).Msg("failed to update product")
		return fmt.Errorf("failed to update product: %w", err)
	}

	r.logger.Debug().Str("product_id", p.ID.String()).Msg("product updated successfully")
	return nil
}

// Delete removes a product.
func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	r.logger.Debug().Str("product_id", id.String()).Msg("product deleted successfully")
	return nil
}

// SetImage stores the image reference on the product.
func (r *productRepository) SetImage(ctx context.Context, id uuid.UUID, image string) error {
	_, err := r.pool.Exec(ctx, `UPDATE products SET image = $2 WHERE id = $1`, id, image)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to set product image")
		return fmt.Errorf("failed to set product image: %w", err)
	}

	return nil
}

// DecrementStock performs a conditional stock decrement within the
// transaction. The WHERE clause makes the decrement a compare-and-swap:
// two concurrent checkouts cannot drive count_in_stock negative.
func (r *productRepository) DecrementStock(ctx context.Context, tx pgx.Tx, id uuid.UUID, qty int) error {
	query := `
		UPDATE products
		SET count_in_stock = count_in_stock - $2
		WHERE id = $1 AND count_in_stock >= $2
	`

	tag, err := tx.Exec(ctx, query, id, qty)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", id.String()).Int("qty", qty).
			Msg("failed to decrement stock")
		return fmt.Errorf("failed to decrement stock: %w", err)
	}

	if tag.RowsAffected() == 0 {
		r.logger.Warn().Str("product_id", id.String()).Int("qty", qty).
			Msg("insufficient stock for decrement")
		return model.ErrInsufficientStock
	}

	return nil
}

// CreateReview inserts a review.
func (r *productRepository) CreateReview(ctx context.Context, review *model.Review) error {
	query := `
		INSERT INTO reviews (id, product_id, user_id, name, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query, review.ID, review.ProductID, review.UserID,
		review.Name, review.Rating, review.Comment, review.CreatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("review_id", review.ID.String()).Msg("failed to create review")
		return fmt.Errorf("failed to create review: %w", err)
	}

	return nil
}

// HasReview reports whether the user already reviewed the product.
func (r *productRepository) HasReview(ctx context.Context, productID, userID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM reviews WHERE product_id = $1 AND user_id = $2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, productID, userID).Scan(&exists); err != nil {
		r.logger.Error().Err(err).Str("product_id", productID.String()).
			Msg("failed to check review existence")
		return false, fmt.Errorf("failed to check review existence: %w", err)
	}

	return exists, nil
}

// RefreshRating recomputes the product's rating and review count from
// its reviews.
func (r *productRepository) RefreshRating(ctx context.Context, productID uuid.UUID) error {
	query := `
		UPDATE products
		SET num_reviews = (SELECT COUNT(*) FROM reviews WHERE product_id = $1),
		    rating = (SELECT COALESCE(AVG(rating), 0) FROM reviews WHERE product_id = $1)
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, query, productID)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", productID.String()).
			Msg("failed to refresh product rating")
		return fmt.Errorf("failed to refresh product rating: %w", err)
	}

	return nil
}
