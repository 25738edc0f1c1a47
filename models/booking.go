package models

import (
	"time"

	"goflare.io/marina/models/enum"
)

// QuoteRequest is the ephemeral input to a price quote. It is never
// persisted.
type QuoteRequest struct {
	BoatID    string          `json:"boat_id"`
	StartDate Date            `json:"start_date"`
	EndDate   Date            `json:"end_date"`
	Guests    int             `json:"guests"`
	Extras    map[string]bool `json:"extras"`
}

// BookingRequest is a quote request plus the customer details needed to
// record a booking.
type BookingRequest struct {
	BoatID        string          `json:"boat_id"`
	StartDate     Date            `json:"start_date"`
	EndDate       Date            `json:"end_date"`
	Guests        int             `json:"guests"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email"`
	CustomerPhone string          `json:"customer_phone,omitempty"`
	Extras        map[string]bool `json:"extras"`
	Notes         string          `json:"notes,omitempty"`
}

// Booking is the persisted booking record. It is created once and never
// mutated by this service.
type Booking struct {
	ID            string             `json:"id,omitempty"`
	BoatID        string             `json:"boat_id"`
	StartDate     string             `json:"start_date"`
	EndDate       string             `json:"end_date"`
	Guests        int                `json:"guests"`
	CustomerName  string             `json:"customer_name"`
	CustomerEmail string             `json:"customer_email"`
	CustomerPhone string             `json:"customer_phone,omitempty"`
	Extras        map[string]bool    `json:"extras"`
	Notes         string             `json:"notes,omitempty"`
	Pricing       *PriceBreakdown    `json:"pricing"`
	Status        enum.BookingStatus `json:"status"`
	CreatedAt     time.Time          `json:"created_at"`
}

// BookingConfirmation is returned to the caller after a booking is
// recorded.
type BookingConfirmation struct {
	ID      string             `json:"id"`
	Status  enum.BookingStatus `json:"status"`
	Pricing *PriceBreakdown    `json:"pricing"`
}
