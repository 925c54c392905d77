package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/developer2iverto/Dresscollections-sub000/models"
)

func TestDiscountedPrice(t *testing.T) {
	pct := func(v float64) models.Offer {
		return models.Offer{DiscountType: models.DiscountPercentage, DiscountValue: v}
	}
	fixed := func(v float64) models.Offer {
		return models.Offer{DiscountType: models.DiscountFixed, DiscountValue: v}
	}

	assert.Equal(t, 50.0, DiscountedPrice(100, pct(50)))
	assert.Equal(t, 1039.0, DiscountedPrice(1299, pct(20)))
	assert.Equal(t, 905.0, DiscountedPrice(1005, pct(10)))
	assert.Equal(t, 0.0, DiscountedPrice(100, pct(150)))
	assert.Equal(t, 400.0, DiscountedPrice(499, fixed(99)))
	assert.Equal(t, 0.0, DiscountedPrice(50, fixed(100)))
	assert.Equal(t, 799.0, DiscountedPrice(799, models.Offer{DiscountType: models.DiscountBuyXGetY, DiscountValue: 1}))
	assert.Equal(t, 799.0, DiscountedPrice(799, models.Offer{DiscountType: "mystery", DiscountValue: 10}))
}

func promoCatalog() []models.Product {
	orig := 150.0
	return []models.Product{
		{ID: "a", Price: 100},
		{ID: "b", Price: 120, OriginalPrice: &orig, IsOnSale: true},
	}
}

func TestPromotionRoundTrip(t *testing.T) {
	engine := NewPromotionEngine()
	products := promoCatalog()

	require.NoError(t, engine.ApplyToAll(products, models.Offer{Title: "Half", DiscountType: models.DiscountPercentage, DiscountValue: 50}))

	assert.Equal(t, 50.0, products[0].Price)
	assert.True(t, products[0].IsOnSale)
	require.NotNil(t, products[0].OriginalPrice)
	assert.Equal(t, 100.0, *products[0].OriginalPrice)
	assert.Equal(t, 60.0, products[1].Price)
	assert.Equal(t, 150.0, *products[1].OriginalPrice)

	active := engine.Active()
	require.NotNil(t, active)
	assert.Equal(t, 2, active.AffectedProducts)

	engine.ResetAll(products)

	assert.Equal(t, promoCatalog(), products)
	assert.Nil(t, engine.Active())
}

func TestPromotionRejectsReapplication(t *testing.T) {
	engine := NewPromotionEngine()
	products := promoCatalog()
	half := models.Offer{DiscountType: models.DiscountPercentage, DiscountValue: 50}

	require.NoError(t, engine.ApplyToAll(products, half))
	err := engine.ApplyToAll(products, half)

	assert.ErrorIs(t, err, ErrPromotionActive)
	assert.Equal(t, 50.0, products[0].Price)
}

func TestPromotionUsesBasePriceAfterReset(t *testing.T) {
	engine := NewPromotionEngine()
	products := promoCatalog()

	require.NoError(t, engine.ApplyToAll(products, models.Offer{DiscountType: models.DiscountFixed, DiscountValue: 10}))
	engine.ResetAll(products)
	require.NoError(t, engine.ApplyToAll(products, models.Offer{DiscountType: models.DiscountPercentage, DiscountValue: 10}))

	assert.Equal(t, 90.0, products[0].Price)
}

func TestResetClearsSaleFlagOnProductsAddedDuringOffer(t *testing.T) {
	engine := NewPromotionEngine()
	products := promoCatalog()
	require.NoError(t, engine.ApplyToAll(products, models.Offer{DiscountType: models.DiscountFixed, DiscountValue: 10}))

	products = append(products, models.Product{ID: "late", Price: 80, IsOnSale: true})
	engine.ResetAll(products)

	assert.False(t, products[2].IsOnSale)
	assert.Equal(t, 80.0, products[2].Price)
}
