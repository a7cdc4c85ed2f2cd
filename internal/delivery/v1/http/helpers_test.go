package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/Liso15/UbuntuExpress/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"plain price", "199.99", "199.99", nil},
		{"whole rand", "250", "250", nil},
		{"zero", "0", "0", nil},
		{"empty", "", "", e.ErrInvalidPrice},
		{"blank", "   ", "", e.ErrInvalidPrice},
		{"not a number", "abc", "", e.ErrInvalidPrice},
		{"negative", "-10.00", "", e.ErrInvalidPrice},
		{"sub-cent precision", "19.999", "", e.ErrPricePrecision},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePrice(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParseRetailerIDs(t *testing.T) {
	assert.Nil(t, parseRetailerIDs(""))
	assert.Equal(t, []int64{1, 3, 5}, parseRetailerIDs("1,3,5"))
	assert.Equal(t, []int64{2, 4}, parseRetailerIDs(" 2 , 4 "))
	assert.Equal(t, []int64{7}, parseRetailerIDs("7,abc,-1,0,"))
	assert.Empty(t, parseRetailerIDs("abc,,-5"))
}

func TestToHTTPResponse(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"bad request sentinel", e.ErrInvalidPrice, http.StatusBadRequest},
		{"wrapped bad request", e.Wrap("PriceUseCase.UpsertPrice", e.ErrPricePrecision), http.StatusBadRequest},
		{"missing fields", e.ErrMissingFields, http.StatusBadRequest},
		{"invalid sort", e.ErrInvalidSortParams, http.StatusBadRequest},
		{"category not found", e.ErrCategoryNotFound, http.StatusNotFound},
		{"product not found", e.Wrap("CatalogUseCase.GetProductByID", e.ErrProductNotFound), http.StatusNotFound},
		{"price not found", e.ErrPriceNotFound, http.StatusNotFound},
		{"subscription not found", e.ErrSubscriptionNotFound, http.StatusNotFound},
		{"unknown error hides details", errors.New("pq: connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, msg := ToHTTPResponse(tt.err)
			assert.Equal(t, tt.wantCode, code)
			assert.NotEmpty(t, msg)
			if tt.wantCode == http.StatusInternalServerError {
				assert.Equal(t, e.ErrInternalServerError.Error(), msg, "внутренние детали не должны утекать клиенту")
			}
		})
	}
}
