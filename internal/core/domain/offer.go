package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// SegmentPoint is one end of a flight segment with its resolved airport descriptor.
type SegmentPoint struct {
	Code     string `json:"code"`
	Airport  string `json:"airport"`
	Location string `json:"location"`
	At       string `json:"at"` // provider local timestamp, RFC3339 without zone
}

// Amenity is a fare amenity attached to a segment's fare details.
type Amenity struct {
	Description  string `json:"description"`
	IsChargeable bool   `json:"isChargeable"`
}

// Segment is a single flight leg between two airports.
type Segment struct {
	MarketingCarrier     string    `json:"marketingCarrier"`
	MarketingCarrierName string    `json:"marketingCarrierName"`
	FlightNumber         string    `json:"flightNumber"`
	OperatingCarrier     string    `json:"operatingCarrier,omitempty"`
	OperatingCarrierName string    `json:"operatingCarrierName,omitempty"`
	Departure            SegmentPoint `json:"departure"`
	Arrival              SegmentPoint `json:"arrival"`
	Duration             string    `json:"duration"` // "2H 30Min"
	BookingClass         string    `json:"bookingClass"`
	Cabin                string    `json:"cabin"`
	BaggageKg            int       `json:"baggageKg"`
	Amenities            []Amenity `json:"amenities,omitempty"`
}

// FlightLeg groups the segments of one direction of travel together with the
// endpoint summary and the transit gaps between consecutive segments.
type FlightLeg struct {
	Departure     string            `json:"departure"`
	DepartureTime string            `json:"departureTime"`
	DepartureDate string            `json:"departureDate"`
	Arrival       string            `json:"arrival"`
	ArrivalTime   string            `json:"arrivalTime"`
	ArrivalDate   string            `json:"arrivalDate"`
	Duration      string            `json:"duration,omitempty"`
	Segments      []Segment         `json:"segments"`
	Transit       map[string]string `json:"transit,omitempty"` // "transit1" -> "2H 30Min"
}

// Stopover is an intermediate technical stop within a segment, with its
// location resolved against the reference data.
type Stopover struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	Location      string `json:"location"`
	Duration      string `json:"duration"`
	ArrivalDate   string `json:"arrivalDate"`
	ArrivalTime   string `json:"arrivalTime"`
	DepartureDate string `json:"departureDate"`
	DepartureTime string `json:"departureTime"`
}

// PaxFare is the per-traveler price breakdown of an offer.
type PaxFare struct {
	PaxType      string          `json:"paxType"`
	PaxCount     int             `json:"paxCount"`
	BaseFare     decimal.Decimal `json:"baseFare"`
	Tax          decimal.Decimal `json:"tax"`
	CheckedBagKg int             `json:"checkedBagKg"`
	CabinBagKg   int             `json:"cabinBagKg"`
}

// CanonicalOffer is the normalized, provider-agnostic representation of one
// priced itinerary option. It is constructed fresh per provider response and
// never mutated in place.
type CanonicalOffer struct {
	System         string          `json:"system"`
	OfferID        string          `json:"offerId"`
	TripType       TripType        `json:"tripType"`
	SegmentCount   int             `json:"segmentCount"`
	Carrier        string          `json:"carrier"`
	CarrierName    string          `json:"carrierName"`
	LastTicketTime string          `json:"lastTicketTime,omitempty"`
	BasePrice      decimal.Decimal `json:"basePrice"`
	Taxes          decimal.Decimal `json:"taxes"`
	NetPrice       decimal.Decimal `json:"netPrice"`
	Price          decimal.Decimal `json:"price"`
	FareCurrency   string          `json:"fareCurrency"`
	PriceBreakdown []PaxFare       `json:"priceBreakdown"`
	Outbound       FlightLeg       `json:"outbound"`
	Inbound        *FlightLeg      `json:"inbound,omitempty"`
	SeatsRemaining int             `json:"seatsRemaining"`
	CabinClass     string          `json:"cabinClass"`
	Refundable     bool            `json:"refundable"`
	Stopovers      []Stopover      `json:"stopovers,omitempty"`

	// RawOffer echoes the provider's offer payload so pricing and order
	// creation can resend it verbatim.
	RawOffer json.RawMessage `json:"airFareData,omitempty"`
}

// PricedOffer is a CanonicalOffer confirmed against current provider pricing,
// extended with the booking requirements the order-creation step needs.
type PricedOffer struct {
	CanonicalOffer
	BookingHoldDays     int  `json:"bookingHoldDays"`
	PassportRequired    bool `json:"passportRequired"`
	DateOfBirthRequired bool `json:"dateOfBirthRequired"`
}

// MaxBookingHoldDays is the provider-imposed cap on how long a created order
// can defer ticketing.
const MaxBookingHoldDays = 6
