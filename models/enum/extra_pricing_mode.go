package enum

type ExtraPricingMode string

const (
	ExtraPerDay          ExtraPricingMode = "per_day"
	ExtraPerPersonPerDay ExtraPricingMode = "per_person_per_day"
)
