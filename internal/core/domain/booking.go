package domain

// BookingStatus is the persisted lifecycle state of a booking. Search and
// pricing states are transient and never stored.
type BookingStatus string

const (
	StatusBooked    BookingStatus = "Booked"
	StatusCancelled BookingStatus = "Cancelled"
)

// Traveler is a passenger on a booking, echoed back from the provider's
// order retrieval (authoritative for name/document data).
type Traveler struct {
	FirstName          string  `json:"firstName"`
	LastName           string  `json:"lastName"`
	Gender             string  `json:"gender"`
	Email              string  `json:"emailAddress"`
	CountryCallingCode string  `json:"countryCallingCode"`
	Phone              string  `json:"phoneNumber"`
	DateOfBirth        *string `json:"dateOfBirth,omitempty"`
	PassportNumber     *string `json:"passportNumber,omitempty"`
	PassportExpiry     *string `json:"passportExpireDate,omitempty"`
	IssuanceCountry    *string `json:"issuanceCountry,omitempty"`
	ValidityCountry    *string `json:"validityCountry,omitempty"`
	Nationality        *string `json:"nationality,omitempty"`
}

// GdsBookingRef maps an internally minted booking id to the provider's native
// order id and issuing office. One row is written per booking attempt, before
// the booking record itself; it is the recovery anchor when the second phase
// of booking persistence fails.
type GdsBookingRef struct {
	BookingID       string `json:"bookingID"`
	GdsID           string `json:"gdsID"`
	QueuingOfficeID string `json:"queuingOfficeID"`
	AuditFields
}

// NormalizedOrder is the canonical view of a provider order, produced by the
// normalizer from order creation or retrieval and consumed by booking
// persistence.
type NormalizedOrder struct {
	GdsID           string         `json:"gdsID"`
	QueuingOfficeID string         `json:"queuingOfficeID"`
	GdsPNR          string         `json:"gdsPNR"`
	AirlinePNR      string         `json:"airlinePNR"`
	BookingDateTime string         `json:"bookingDateTime"`
	TripType        TripType       `json:"tripType"`
	Offer           CanonicalOffer `json:"offer"`
	Travellers      []Traveler     `json:"travellers"`
}

// BookingRecord is the persisted booking. Financial and itinerary facts are
// frozen at creation time and never re-derived; the only permitted mutation
// is the Booked -> Cancelled status flip.
type BookingRecord struct {
	BookingID       string        `json:"bookingID"`
	OfferID         string        `json:"offerId"`
	System          string        `json:"system"`
	Status          BookingStatus `json:"status"`
	BookingDateTime string        `json:"bookingDateTime,omitempty"`
	TripType        TripType      `json:"tripType"`
	GdsPNR          string        `json:"gdsPNR,omitempty"`
	AirlinePNR      string        `json:"airlinePNR,omitempty"`

	Offer CanonicalOffer `json:"offer"`

	Travellers []Traveler `json:"travellers"`
	Owner      OwnerRef   `json:"owner"`
	AuditFields
}
