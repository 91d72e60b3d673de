package e

import "fmt"

var (
	// Ошибки конфигурации удалённого хранилища
	ErrRemoteNotConfigured  = fmt.Errorf("remote store is not configured")
	ErrStorageNotConfigured = fmt.Errorf("image storage is not configured")

	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound  = fmt.Errorf("transaction not found")
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")

	// 404 Not Found
	ErrNotFound = fmt.Errorf("not found")

	// 400 Bad Request
	ErrStatusBadRequest     = fmt.Errorf("bad request")
	ErrInvalidID            = fmt.Errorf("invalid identifier")
	ErrMissingFields        = fmt.Errorf("missing required fields")
	ErrProductNameRequired  = fmt.Errorf("product name is required")
	ErrCategoryNameRequired = fmt.Errorf("category name is required")
	ErrInvalidPrice         = fmt.Errorf("price must be a non-negative number")
	ErrPricePrecision       = fmt.Errorf("price must have at most 2 decimal places")
	ErrInvalidRating        = fmt.Errorf("rating must be between 0 and 5")
	ErrNegativeCount        = fmt.Errorf("counts must not be negative")
	ErrEmptyOrder           = fmt.Errorf("order must contain at least one item")
	ErrInvalidQuantity      = fmt.Errorf("item quantity must be positive")
	ErrUserRequired         = fmt.Errorf("user id is required")
	ErrNoChanges            = fmt.Errorf("no fields to update")
	ErrExpectedMultipart    = fmt.Errorf("expected multipart/form-data")
	ErrNoImages             = fmt.Errorf("no image provided")

	// 413 / 415
	ErrFileTooLarge         = fmt.Errorf("Image file size must be less than 5MB")
	ErrUnsupportedMediaType = fmt.Errorf("Please select a valid image file (JPEG, PNG, or WebP)")

	// 500 / 503
	ErrInternalServerError = fmt.Errorf("internal server error")
	ErrServiceUnavailable  = fmt.Errorf("service unavailable")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
