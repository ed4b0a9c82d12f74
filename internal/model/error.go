package model

// ErrorResponse is the wire shape of every non-success response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON        = "INVALID_JSON"
	ErrCodeValidation         = "VALIDATION"
	ErrCodeEmptyCart          = "EMPTY_CART"
	ErrCodeProductNotFound    = "PRODUCT_NOT_FOUND"
	ErrCodeOrderNotFound      = "ORDER_NOT_FOUND"
	ErrCodeUserNotFound       = "USER_NOT_FOUND"
	ErrCodeInsufficientStock  = "INSUFFICIENT_STOCK"
	ErrCodeUserExists         = "USER_EXISTS"
	ErrCodeAlreadyReviewed    = "ALREADY_REVIEWED"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeUnauthorised       = "UNAUTHORIZED"
	ErrCodeForbidden          = "FORBIDDEN"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrEmptyCart          = NewDomainError(ErrCodeEmptyCart, "No order items")
	ErrProductNotFound    = NewDomainError(ErrCodeProductNotFound, "Product does not exist")
	ErrOrderNotFound      = NewDomainError(ErrCodeOrderNotFound, "Order does not exist")
	ErrUserNotFound       = NewDomainError(ErrCodeUserNotFound, "User does not exist")
	ErrInsufficientStock  = NewDomainError(ErrCodeInsufficientStock, "Not enough items in stock")
	ErrUserExists         = NewDomainError(ErrCodeUserExists, "User with this username or email already exists")
	ErrAlreadyReviewed    = NewDomainError(ErrCodeAlreadyReviewed, "Product already reviewed")
	ErrInvalidCredentials = NewDomainError(ErrCodeInvalidCredentials, "Invalid username or password")
	ErrForbidden          = NewDomainError(ErrCodeForbidden, "Not authorized to view this resource")
)
