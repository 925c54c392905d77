package models

import "time"

const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
	DiscountBuyXGetY   = "buy_x_get_y"
)

// Offer is a transient promotion applied to the whole catalog. It is never
// stored per product; its only effect is on price and sale flags.
type Offer struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	DiscountType  string  `json:"discountType"`
	DiscountValue float64 `json:"discountValue"`
}

type ApplyOfferRequest struct {
	ID            string  `json:"id"`
	Title         string  `json:"title" binding:"required"`
	DiscountType  string  `json:"discountType" binding:"required,oneof=percentage fixed buy_x_get_y"`
	DiscountValue float64 `json:"discountValue" binding:"min=0"`
}

// ActiveOffer describes the promotion currently applied to the catalog.
type ActiveOffer struct {
	Offer            Offer     `json:"offer"`
	AppliedAt        time.Time `json:"appliedAt"`
	AffectedProducts int       `json:"affectedProducts"`
}
