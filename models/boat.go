package models

// Boat represents a rentable boat and its rate card
type Boat struct {
	ID              string   `json:"id,omitempty"`
	Name            string   `json:"name"`
	Type            string   `json:"type"`
	Capacity        int      `json:"capacity"`
	BasePricePerDay float64  `json:"base_price_per_day"`
	Location        string   `json:"location"`
	Images          []string `json:"images"`
	Description     string   `json:"description"`
	Features        []string `json:"features"`
	TaxRate         float64  `json:"tax_rate"`
	CleaningFee     float64  `json:"cleaning_fee"`
}
