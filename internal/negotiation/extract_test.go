package negotiation

import "testing"

func TestExtractPrice(t *testing.T) {
	t.Run("simple price", func(t *testing.T) {
		p := ExtractPrice("I can do $350 per unit")
		if p == nil || *p != 350 {
			t.Fatalf("expected 350, got %v", p)
		}
	})

	t.Run("last price wins", func(t *testing.T) {
		p := ExtractPrice("you said $400 but I offer $380.50")
		if p == nil || *p != 380.50 {
			t.Fatalf("expected 380.50, got %v", p)
		}
	})

	t.Run("thousands separator", func(t *testing.T) {
		p := ExtractPrice("total would be $1,250.75")
		if p == nil || *p != 1250.75 {
			t.Fatalf("expected 1250.75, got %v", p)
		}
	})

	t.Run("no price", func(t *testing.T) {
		if p := ExtractPrice("no numbers here"); p != nil {
			t.Fatalf("expected nil, got %v", *p)
		}
	})
}

func TestExtractDelivery(t *testing.T) {
	t.Run("days", func(t *testing.T) {
		d := ExtractDelivery("can you deliver in 30 days?")
		if d == nil || *d != 30 {
			t.Fatalf("expected 30, got %v", d)
		}
	})

	t.Run("singular day", func(t *testing.T) {
		d := ExtractDelivery("1 day turnaround")
		if d == nil || *d != 1 {
			t.Fatalf("expected 1, got %v", d)
		}
	})

	t.Run("last mention wins", func(t *testing.T) {
		d := ExtractDelivery("not 45 days, I need 25 days")
		if d == nil || *d != 25 {
			t.Fatalf("expected 25, got %v", d)
		}
	})
}

func TestExtractVolume(t *testing.T) {
	t.Run("k shorthand", func(t *testing.T) {
		v := ExtractVolume("we need 10k")
		if v == nil || *v != 10000 {
			t.Fatalf("expected 10000, got %v", v)
		}
	})

	t.Run("fractional k", func(t *testing.T) {
		v := ExtractVolume("about 1.5k chips")
		if v == nil || *v != 1500 {
			t.Fatalf("expected 1500, got %v", v)
		}
	})

	t.Run("units with separator", func(t *testing.T) {
		v := ExtractVolume("order of 2,000 units")
		if v == nil || *v != 2000 {
			t.Fatalf("expected 2000, got %v", v)
		}
	})

	t.Run("no volume", func(t *testing.T) {
		if v := ExtractVolume("just a question"); v != nil {
			t.Fatalf("expected nil, got %v", *v)
		}
	})
}
