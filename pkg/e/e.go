package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Внутренние ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect env variable")

	// 400 Bad Request
	ErrStatusBadRequest     = fmt.Errorf("bad request")
	ErrMissingFields        = fmt.Errorf("missing required fields")
	ErrInvalidPrice         = fmt.Errorf("invalid price")
	ErrPricePrecision       = fmt.Errorf("price must have at most 2 decimal places")
	ErrInvalidProductID     = fmt.Errorf("invalid product id")
	ErrInvalidRetailerID    = fmt.Errorf("invalid retailer id")
	ErrProductNameRequired  = fmt.Errorf("product name is required")
	ErrMessageRequired      = fmt.Errorf("alert message is required")
	ErrEmailRequired        = fmt.Errorf("email is required")
	ErrInvalidSortParams    = fmt.Errorf("invalid sort parameters")
	ErrExpectedMultipart    = fmt.Errorf("expected multipart/form-data")
	ErrTooManyImages        = fmt.Errorf("too many images")
	ErrNoImages             = fmt.Errorf("no images provided")
	ErrFileTooLarge         = fmt.Errorf("file too large")
	ErrUnsupportedMediaType = fmt.Errorf("unsupported media type")

	// 404 Not Found
	ErrCategoryNotFound     = fmt.Errorf("category not found")
	ErrRetailerNotFound     = fmt.Errorf("retailer not found")
	ErrProductNotFound      = fmt.Errorf("product not found")
	ErrPriceNotFound        = fmt.Errorf("price record not found")
	ErrSubscriptionNotFound = fmt.Errorf("subscription not found")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
