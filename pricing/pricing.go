package pricing

import (
	"errors"
	"math"
	"time"

	"goflare.io/marina/models"
	"goflare.io/marina/models/enum"
)

// ErrInvalidDateRange is returned when the end date is not after the start
// date by at least one full day.
var ErrInvalidDateRange = errors.New("end date must be after start date by at least 1 day")

// DisclosureNote is attached to every breakdown.
const DisclosureNote = "Prices include all fees and taxes. No hidden fees."

// Currency is fixed; multi-currency support is out of scope.
const Currency = "USD"

// Extra is one entry of the extras catalog.
type Extra struct {
	Mode   enum.ExtraPricingMode
	Amount float64
}

// Catalog maps an extra key to its pricing rule. The catalog is
// deployment-wide configuration, not boat-specific data.
type Catalog map[string]Extra

// DefaultCatalog returns the stock extras catalog.
func DefaultCatalog() Catalog {
	return Catalog{
		"skipper": {Mode: enum.ExtraPerDay, Amount: 150.0},
		"fuel":    {Mode: enum.ExtraPerDay, Amount: 80.0},
		"snorkel": {Mode: enum.ExtraPerPersonPerDay, Amount: 20.0},
	}
}

// Engine computes price breakdowns. It performs no I/O and holds no
// mutable state; identical inputs always yield identical breakdowns.
type Engine struct {
	catalog Catalog
}

func NewEngine(catalog Catalog) *Engine {
	return &Engine{catalog: catalog}
}

// Nights returns the whole-day span between two calendar dates.
func Nights(start, end time.Time) (int, error) {
	nights := int(end.Sub(start) / (24 * time.Hour))
	if nights < 1 {
		return 0, ErrInvalidDateRange
	}
	return nights, nil
}

// ComputeQuote prices a rental of the given boat. Extras with a false
// flag and extras the catalog does not know are skipped; an unknown key
// is never an error.
func (e *Engine) ComputeQuote(boat *models.Boat, start, end time.Time, guests int, extras map[string]bool) (*models.PriceBreakdown, error) {
	nights, err := Nights(start, end)
	if err != nil {
		return nil, err
	}

	breakdown := &models.PriceBreakdown{
		Nights:      nights,
		Base:        round2(boat.BasePricePerDay * float64(nights)),
		Extras:      make(map[string]float64),
		CleaningFee: round2(boat.CleaningFee),
		Currency:    Currency,
		Transparent: true,
		Notes:       DisclosureNote,
	}

	var extrasTotal float64
	for key, enabled := range extras {
		if !enabled {
			continue
		}
		rule, ok := e.catalog[key]
		if !ok {
			continue
		}
		var cost float64
		switch rule.Mode {
		case enum.ExtraPerDay:
			cost = rule.Amount * float64(nights)
		case enum.ExtraPerPersonPerDay:
			cost = rule.Amount * float64(guests) * float64(nights)
		}
		cost = round2(cost)
		breakdown.Extras[key] = cost
		extrasTotal += cost
	}

	// Subtotal sums the already-rounded components. Repeated summation of
	// rounded figures is the defined behavior, not a shortcut.
	subtotal := breakdown.Base + extrasTotal + breakdown.CleaningFee
	breakdown.Tax = round2(subtotal * boat.TaxRate)
	breakdown.Total = round2(subtotal + breakdown.Tax)

	return breakdown, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
