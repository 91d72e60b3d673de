package domain

import (
	"math"
	"testing"

	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	valid := []any{3, int64(3), int32(3), uint(3), "3", " 3 ", "03", 3.0, float32(3), "3.0"}
	for _, v := range valid {
		id, err := ParseID(v)
		require.NoError(t, err, "%#v", v)
		assert.Equal(t, ID(3), id, "%#v", v)
	}

	invalid := []any{"", "abc", "-1", 0, -5, nil, struct{}{}, "3b", 3.5, "3.5", float32(2.25), -3.0, math.NaN(), math.Inf(1)}
	for _, v := range invalid {
		_, err := ParseID(v)
		assert.ErrorIs(t, err, e.ErrInvalidID, "%#v", v)
	}
}

func TestImageFileValidate(t *testing.T) {
	tests := []struct {
		name string
		file ImageFile
		err  error
	}{
		{"gif rejected", ImageFile{ContentType: "image/gif", Size: 1024}, e.ErrUnsupportedMediaType},
		{"exactly 5 MiB", ImageFile{ContentType: "image/jpeg", Size: 5 * 1024 * 1024}, nil},
		{"5 MiB plus one byte", ImageFile{ContentType: "image/jpeg", Size: 5*1024*1024 + 1}, e.ErrFileTooLarge},
		{"png 1 KiB", ImageFile{ContentType: "image/png", Size: 1024}, nil},
		{"webp", ImageFile{ContentType: "image/webp", Size: 10}, nil},
		{"jpg alias", ImageFile{ContentType: "image/jpg", Size: 10}, nil},
		{"empty type", ImageFile{Size: 10}, e.ErrUnsupportedMediaType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.file.Validate()
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
			assert.NotEmpty(t, err.Error())
		})
	}
}

func TestProductCloneDoesNotShareStock(t *testing.T) {
	stock := 5
	p := Product{ID: 1, StockQuantity: &stock}

	c := p.Clone()
	*c.StockQuantity = 7

	assert.Equal(t, 5, *p.StockQuantity)
}

func TestPatchEmpty(t *testing.T) {
	assert.True(t, ProductPatch{}.Empty())
	name := "Lamp"
	assert.False(t, ProductPatch{Name: &name}.Empty())
	assert.True(t, CategoryPatch{}.Empty())
	assert.True(t, OrderPatch{}.Empty())
}

func TestOrderTotal(t *testing.T) {
	o := Order{Items: []OrderItem{
		{Quantity: 2, Price: decimal.RequireFromString("49.99")},
		{Quantity: 1, Price: decimal.RequireFromString("79.99")},
	}}

	assert.True(t, decimal.RequireFromString("179.97").Equal(o.Total()))
}

func TestOrderStatusValid(t *testing.T) {
	assert.True(t, OrderPending.Valid())
	assert.False(t, OrderStatus("lost").Valid())
}
