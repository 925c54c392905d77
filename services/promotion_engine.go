package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/developer2iverto/Dresscollections-sub000/models"
)

var ErrPromotionActive = errors.New("a promotion is already active; reset it before applying another")

// prePromotionState is what a product looked like before the first offer
// touched it.
type prePromotionState struct {
	price         float64
	isOnSale      bool
	originalPrice *float64
}

// PromotionEngine applies one catalog-wide offer at a time. Discounts are
// always computed from the recorded pre-promotion price, never from the
// live (possibly already discounted) price.
type PromotionEngine struct {
	basePrices map[string]prePromotionState
	active     *models.ActiveOffer
	now        func() time.Time
}

func NewPromotionEngine() *PromotionEngine {
	return &PromotionEngine{
		basePrices: make(map[string]prePromotionState),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Active returns the offer currently applied, if any.
func (e *PromotionEngine) Active() *models.ActiveOffer {
	if e.active == nil {
		return nil
	}
	a := *e.active
	return &a
}

// ApplyToAll discounts every product in place. It refuses to run while
// another offer is active.
func (e *PromotionEngine) ApplyToAll(products []models.Product, offer models.Offer) error {
	if e.active != nil {
		return ErrPromotionActive
	}

	for i := range products {
		p := &products[i]

		state, ok := e.basePrices[p.ID]
		if !ok {
			state = prePromotionState{
				price:         p.Price,
				isOnSale:      p.IsOnSale,
				originalPrice: copyFloat(p.OriginalPrice),
			}
			e.basePrices[p.ID] = state
		}

		p.Price = DiscountedPrice(state.price, offer)
		p.IsOnSale = true
		if p.OriginalPrice == nil {
			p.OriginalPrice = copyFloat(&state.price)
		}
	}

	e.active = &models.ActiveOffer{
		Offer:            offer,
		AppliedAt:        e.now(),
		AffectedProducts: len(products),
	}
	return nil
}

// ResetAll restores every recorded product to its pre-promotion state.
// Products added while the offer was running only lose their sale flag.
func (e *PromotionEngine) ResetAll(products []models.Product) {
	for i := range products {
		p := &products[i]
		state, ok := e.basePrices[p.ID]
		if !ok {
			p.IsOnSale = false
			continue
		}
		p.Price = state.price
		p.IsOnSale = state.isOnSale
		p.OriginalPrice = copyFloat(state.originalPrice)
	}

	e.basePrices = make(map[string]prePromotionState)
	e.active = nil
}

// Discard ends the active offer without touching any product. Used when the
// catalog is replaced and the recorded prices no longer describe it.
func (e *PromotionEngine) Discard() {
	e.basePrices = make(map[string]prePromotionState)
	e.active = nil
}

// Forget drops the recorded state of a removed product.
func (e *PromotionEngine) Forget(id string) {
	delete(e.basePrices, id)
}

// DiscountedPrice computes the offer price of base. Unknown discount types
// leave the price unchanged, like buy_x_get_y.
func DiscountedPrice(base float64, offer models.Offer) float64 {
	price := decimal.NewFromFloat(base)
	value := decimal.NewFromFloat(offer.DiscountValue)

	var discounted decimal.Decimal
	switch offer.DiscountType {
	case models.DiscountPercentage:
		factor := decimal.NewFromInt(1).Sub(value.Div(decimal.NewFromInt(100)))
		discounted = price.Mul(factor).Round(0)
	case models.DiscountFixed:
		discounted = price.Sub(value).Round(0)
	default:
		return base
	}

	if discounted.IsNegative() {
		return 0
	}
	return discounted.InexactFloat64()
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
