package boat

import "goflare.io/marina/models"

func sampleBoats() []*models.Boat {
	return []*models.Boat{
		{
			Name:            "Aqua Breeze 32",
			Type:            "sailboat",
			Capacity:        6,
			BasePricePerDay: 420.0,
			Location:        "Marina Grande",
			Images: []string{
				"https://images.unsplash.com/photo-1505852679233-d9fd70aff56d?q=80&w=1600&auto=format&fit=crop",
			},
			Description: "Elegant cruiser perfect for day sails and weekend getaways.",
			Features:    []string{"GPS", "Bluetooth Audio", "Bimini", "Fresh water shower"},
			TaxRate:     0.08,
			CleaningFee: 35.0,
		},
		{
			Name:            "Sunset Whisper 45",
			Type:            "yacht",
			Capacity:        10,
			BasePricePerDay: 850.0,
			Location:        "Harbor Cove",
			Images: []string{
				"https://images.unsplash.com/photo-1502877338535-766e1452684a?q=80&w=1600&auto=format&fit=crop",
			},
			Description: "Spacious comfort with refined finishes for premium charters.",
			Features:    []string{"Skylounge", "Air Conditioning", "Kitchenette", "Skipper ready"},
			TaxRate:     0.1,
			CleaningFee: 60.0,
		},
		{
			Name:            "Sandline 24",
			Type:            "speedboat",
			Capacity:        4,
			BasePricePerDay: 260.0,
			Location:        "Pier 7",
			Images: []string{
				"https://images.unsplash.com/photo-1504367087812-9f34b82a0f05?q=80&w=1600&auto=format&fit=crop",
			},
			Description: "Sporty and nimble for quick coastal hops and snorkeling.",
			Features:    []string{"Life vests", "Cooler", "Sun awning"},
			TaxRate:     0.07,
			CleaningFee: 25.0,
		},
	}
}
