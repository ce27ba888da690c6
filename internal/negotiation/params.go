package negotiation

import (
	"fmt"
	"hash/fnv"
	"math"
	"math/rand"
)

const standardVolume = 1000

// GenerateParams builds the hidden deal parameters for a new session.
// The same seed always produces the same parameters, which makes training
// scenarios reproducible per student. An empty seed uses a random source.
func GenerateParams(seed string) DealParams {
	var rng *rand.Rand
	if seed != "" {
		h := fnv.New64a()
		h.Write([]byte(seed))
		rng = rand.New(rand.NewSource(int64(h.Sum64())))
	} else {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	openingPrice := round2(uniform(rng, 30, 50) * 10)
	targetPrice := round2(openingPrice * (1 - uniform(rng, 0.05, 0.08)))
	reservationPrice := round2(openingPrice * (1 - uniform(rng, 0.12, 0.15)))

	openingDelivery := 25 + rng.Intn(21) // 25..45 days
	targetDelivery := int(float64(openingDelivery) * 0.85)
	reservationDelivery := int(float64(openingDelivery) * 0.70)

	return DealParams{
		Price:          Range{Opening: openingPrice, Target: targetPrice, Reservation: reservationPrice},
		Delivery:       DeliveryRange{Opening: openingDelivery, Target: targetDelivery, Reservation: reservationDelivery},
		StandardVolume: standardVolume,
	}
}

// FormatParams renders the parameters as the data block injected into the
// seller prompt.
func FormatParams(p DealParams) string {
	return fmt.Sprintf(`--- NEGOTIATION DATA ---
1. Opening Price: $%.2f
2. Target Price: $%.2f
3. Walk-away Price: $%.2f
4. Standard Volume: %d units
5. Opening Delivery: %d days`,
		p.Price.Opening, p.Price.Target, p.Price.Reservation,
		p.StandardVolume, p.Delivery.Opening)
}

// Greeting is the seller's opening message for a new session.
func Greeting(p DealParams) string {
	return fmt.Sprintf(
		"Hello! I'm Alex from ChipSource Inc. We are looking to sell our CS-1000 chips. "+
			"Our standard opening is $%.2f per unit with %d-day delivery. What works for you?",
		p.Price.Opening, p.Delivery.Opening)
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
