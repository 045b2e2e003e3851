package catalog_test

import (
	"testing"

	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProduct_IsAvailable(t *testing.T) {
	tests := []struct {
		name       string
		active     bool
		archived   bool
		stock      catalog.Stock
		available  bool
	}{
		{name: "active untracked", active: true, available: true},
		{name: "inactive", active: false, available: false},
		{name: "archived", active: true, archived: true, available: false},
		{name: "tracked with stock", active: true, stock: catalog.Stock{Tracked: true, Quantity: 1}, available: true},
		{name: "tracked out of stock", active: true, stock: catalog.Stock{Tracked: true}, available: false},
		{name: "untracked zero stock", active: true, stock: catalog.Stock{Quantity: 0}, available: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := catalog.NewProduct(kernel.NewUUID(), "Pelmeni", kernel.MustMoney("300"), tt.active, tt.archived, tt.stock, nil)

			require.NoError(t, err)
			assert.Equal(t, tt.available, p.IsAvailable())
		})
	}
}

func TestProduct_SelectOptions(t *testing.T) {
	large := catalog.ModifierOption{ID: kernel.NewUUID(), Name: "Large", PriceAdjustment: kernel.MustPriceAdjustment("50"), IsActive: true}
	spicy := catalog.ModifierOption{ID: kernel.NewUUID(), Name: "Spicy", PriceAdjustment: kernel.ZeroPriceAdjustment(), IsActive: false}
	p, err := catalog.NewProduct(kernel.NewUUID(), "Ramen", kernel.MustMoney("450"), true, false, catalog.Stock{}, []catalog.ModifierOption{large, spicy})
	require.NoError(t, err)

	t.Run("resolves active options", func(t *testing.T) {
		selected, err := p.SelectOptions([]kernel.UUID{large.ID})

		require.NoError(t, err)
		require.Len(t, selected, 1)
		assert.Equal(t, "Large", selected[0].Name)
	})

	t.Run("unknown option is not found", func(t *testing.T) {
		_, err := p.SelectOptions([]kernel.UUID{kernel.NewUUID()})

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("inactive option is invalid", func(t *testing.T) {
		_, err := p.SelectOptions([]kernel.UUID{spicy.ID})

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("no options selected", func(t *testing.T) {
		selected, err := p.SelectOptions(nil)

		require.NoError(t, err)
		assert.Empty(t, selected)
	})
}

func TestNewProduct_Validation(t *testing.T) {
	_, err := catalog.NewProduct(kernel.NewUUID(), "", kernel.MustMoney("1"), true, false, catalog.Stock{}, nil)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = catalog.NewProduct(kernel.UUID{}, "Tea", kernel.MustMoney("1"), true, false, catalog.Stock{}, nil)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
