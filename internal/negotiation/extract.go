package negotiation

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	priceRe    = regexp.MustCompile(`\$\s*([0-9][0-9,]*(?:\.\d+)?)`)
	deliveryRe = regexp.MustCompile(`(\d+)\s*days?`)
	volumeKRe  = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*k\b`)
	volumeURe  = regexp.MustCompile(`(\d+(?:,\d{3})*)\s*(?:units?|pcs|chips)`)
)

// ExtractPrice returns the last dollar amount mentioned in text, or nil.
func ExtractPrice(text string) *float64 {
	matches := priceRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	raw := strings.ReplaceAll(matches[len(matches)-1][1], ",", "")
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

// ExtractDelivery returns the last "N days" figure mentioned in text, or nil.
func ExtractDelivery(text string) *int {
	matches := deliveryRe.FindAllStringSubmatch(strings.ToLower(text), -1)
	if len(matches) == 0 {
		return nil
	}
	v, err := strconv.Atoi(matches[len(matches)-1][1])
	if err != nil {
		return nil
	}
	return &v
}

// ExtractVolume returns the order volume mentioned in text, or nil.
// Accepts both "10k" shorthand and "10,000 units" forms.
func ExtractVolume(text string) *int {
	lower := strings.ToLower(text)
	if m := volumeKRe.FindStringSubmatch(lower); m != nil {
		f, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			v := int(f * 1000)
			return &v
		}
	}
	if m := volumeURe.FindStringSubmatch(lower); m != nil {
		raw := strings.ReplaceAll(m[1], ",", "")
		v, err := strconv.Atoi(raw)
		if err == nil {
			return &v
		}
	}
	return nil
}

// ExtractTerms scans text for all three deal terms at once.
func ExtractTerms(text string) Terms {
	return Terms{
		Price:    ExtractPrice(text),
		Delivery: ExtractDelivery(text),
		Volume:   ExtractVolume(text),
	}
}
