package models

// PriceBreakdown is the itemized result of a quote computation. Every
// monetary field is rounded to 2 decimal places at computation time.
type PriceBreakdown struct {
	BoatID      string             `json:"boat_id,omitempty"`
	Nights      int                `json:"nights"`
	Base        float64            `json:"base"`
	Extras      map[string]float64 `json:"extras"`
	CleaningFee float64            `json:"cleaning_fee"`
	Tax         float64            `json:"tax"`
	Total       float64            `json:"total"`
	Currency    string             `json:"currency"`
	Transparent bool               `json:"transparent"`
	Notes       string             `json:"notes"`
}
