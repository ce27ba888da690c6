package negotiation

// Range holds the three anchor points the seller negotiates between.
// Opening is the first quote, Target the preferred outcome, Reservation the
// walk-away limit.
type Range struct {
	Opening     float64 `json:"opening"`
	Target      float64 `json:"target"`
	Reservation float64 `json:"reservation"`
}

// DeliveryRange is the delivery-time counterpart of Range, in whole days.
type DeliveryRange struct {
	Opening     int `json:"opening"`
	Target      int `json:"target"`
	Reservation int `json:"reservation"`
}

// DealParams are the hidden numbers that drive one negotiation session.
// They are generated once at session start and never shown to the user.
type DealParams struct {
	Price          Range         `json:"price"`
	Delivery       DeliveryRange `json:"delivery"`
	StandardVolume int           `json:"standard_volume"`
}

// Terms are the concrete numbers extracted from conversation text.
// Nil fields mean the term was not mentioned.
type Terms struct {
	Price    *float64 `json:"price,omitempty"`
	Delivery *int     `json:"delivery,omitempty"`
	Volume   *int     `json:"volume,omitempty"`
}

// Complete reports whether both critical terms (price and delivery) are set.
func (t Terms) Complete() bool {
	return t.Price != nil && t.Delivery != nil
}
