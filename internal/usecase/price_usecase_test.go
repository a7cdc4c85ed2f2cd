package usecase

import (
	"testing"

	"github.com/Liso15/UbuntuExpress/pkg/e"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidatePrice(t *testing.T) {
	tests := []struct {
		name    string
		price   string
		wantErr error
	}{
		{"valid price", "199.99", nil},
		{"zero is allowed", "0", nil},
		{"whole rand", "250", nil},
		{"upper bound", "1000000", nil},
		{"negative", "-1.00", e.ErrInvalidPrice},
		{"above upper bound", "1000000.01", e.ErrInvalidPrice},
		{"sub-cent precision", "19.999", e.ErrPricePrecision},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePrice(decimal.RequireFromString(tt.price))
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
