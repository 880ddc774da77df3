package domain

import "time"

// AuditFields holds the standard creation/update metadata shared by persisted entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// TripType distinguishes one-way from round-trip itineraries.
type TripType string

const (
	OneWay    TripType = "oneway"
	RoundTrip TripType = "roundtrip"
)

// GdsSystem names the upstream provider an offer or booking came from.
const GdsSystem = "Amadeus"
