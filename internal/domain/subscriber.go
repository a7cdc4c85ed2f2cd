package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Subscriber — оплаченный тариф пользователя и окно его действия.
// Записи никогда не удаляются: отмена только снимает флаг IsActive
// (история нужна для биллинга и аудита).
type Subscriber struct {
	ID        int64
	UserID    string
	Email     string
	Plan      string
	Price     decimal.Decimal
	Start     time.Time
	End       time.Time
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt *time.Time
}
