package amadeus

import "encoding/json"

// --- shared response fragments ---

// Price is the monetary block attached to offers and traveler pricings.
// Amounts arrive as decimal strings and are parsed during normalization.
type Price struct {
	Currency   string `json:"currency"`
	Total      string `json:"total"`
	Base       string `json:"base"`
	GrandTotal string `json:"grandTotal,omitempty"`
}

// SegmentEndpoint is the departure or arrival side of a segment.
type SegmentEndpoint struct {
	IataCode string `json:"iataCode"`
	Terminal string `json:"terminal,omitempty"`
	At       string `json:"at"`
}

// OperatingCarrier is present when the operating airline differs from the
// marketing one. It may be missing entirely.
type OperatingCarrier struct {
	CarrierCode string `json:"carrierCode"`
}

// Stop is a technical stop inside a segment.
type Stop struct {
	IataCode    string `json:"iataCode"`
	Duration    string `json:"duration"`
	ArrivalAt   string `json:"arrivalAt"`
	DepartureAt string `json:"departureAt"`
}

// Segment is one flight leg of an itinerary.
type Segment struct {
	ID            string            `json:"id"`
	Departure     SegmentEndpoint   `json:"departure"`
	Arrival       SegmentEndpoint   `json:"arrival"`
	CarrierCode   string            `json:"carrierCode"`
	Number        string            `json:"number"`
	Aircraft      Aircraft          `json:"aircraft"`
	Operating     *OperatingCarrier `json:"operating,omitempty"`
	Duration      string            `json:"duration"` // ISO-8601, e.g. "PT2H30M"
	NumberOfStops int               `json:"numberOfStops"`
	Stops         []Stop            `json:"stops,omitempty"`
}

// Aircraft holds the equipment code of a segment.
type Aircraft struct {
	Code string `json:"code"`
}

// Itinerary is one direction of travel.
type Itinerary struct {
	Duration string    `json:"duration"`
	Segments []Segment `json:"segments"`
}

// BaggageAllowance is the included baggage of a fare, expressed as weight,
// piece count, or both.
type BaggageAllowance struct {
	Weight     *int   `json:"weight,omitempty"`
	WeightUnit string `json:"weightUnit,omitempty"`
	Quantity   *int   `json:"quantity,omitempty"`
}

// FareAmenity is a fare attribute such as refundability or seat selection.
type FareAmenity struct {
	Description  string `json:"description"`
	IsChargeable bool   `json:"isChargeable"`
}

// FareSegmentDetail is the per-segment fare data of one traveler pricing.
type FareSegmentDetail struct {
	SegmentID           string            `json:"segmentId"`
	Cabin               string            `json:"cabin"`
	FareBasis           string            `json:"fareBasis,omitempty"`
	Class               string            `json:"class"`
	IncludedCheckedBags *BaggageAllowance `json:"includedCheckedBags,omitempty"`
	IncludedCabinBags   *BaggageAllowance `json:"includedCabinBags,omitempty"`
	Amenities           []FareAmenity     `json:"amenities,omitempty"`
}

// TravelerPricing is the fare of one traveler on an offer.
type TravelerPricing struct {
	TravelerID           string              `json:"travelerId"`
	FareOption           string              `json:"fareOption,omitempty"`
	TravelerType         string              `json:"travelerType"`
	AssociatedAdultID    string              `json:"associatedAdultId,omitempty"`
	Price                Price               `json:"price"`
	FareDetailsBySegment []FareSegmentDetail `json:"fareDetailsBySegment"`
}

// FlightOffer is a single priced itinerary option from shopping or pricing.
type FlightOffer struct {
	Type                     string            `json:"type"`
	ID                       string            `json:"id"`
	Source                   string            `json:"source,omitempty"`
	InstantTicketingRequired bool              `json:"instantTicketingRequired"`
	NumberOfBookableSeats    int               `json:"numberOfBookableSeats"`
	LastTicketingDate        string            `json:"lastTicketingDate,omitempty"`
	LastTicketingDateTime    string            `json:"lastTicketingDateTime,omitempty"`
	Itineraries              []Itinerary       `json:"itineraries"`
	Price                    Price             `json:"price"`
	ValidatingAirlineCodes   []string          `json:"validatingAirlineCodes,omitempty"`
	TravelerPricings         []TravelerPricing `json:"travelerPricings"`

	// Raw holds the offer bytes exactly as received. Pricing and order
	// creation resend the offer verbatim, so lossy re-marshalling of the
	// typed struct is never used on the wire.
	Raw json.RawMessage `json:"-"`
}

func (o *FlightOffer) UnmarshalJSON(b []byte) error {
	type alias FlightOffer
	var a alias
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	*o = FlightOffer(a)
	o.Raw = append(json.RawMessage(nil), b...)
	return nil
}

// SearchResponse is the body of GET/POST flight-offers search.
type SearchResponse struct {
	Meta struct {
		Count int `json:"count"`
	} `json:"meta"`
	Data []FlightOffer `json:"data"`
}

// --- pricing ---

// TravelerRequirement is the per-traveler document demands returned by pricing.
type TravelerRequirement struct {
	TravelerID          string `json:"travelerId"`
	GenderRequired      bool   `json:"genderRequired,omitempty"`
	DocumentRequired    bool   `json:"documentRequired,omitempty"`
	DateOfBirthRequired bool   `json:"dateOfBirthRequired,omitempty"`
	ResidenceRequired   bool   `json:"residenceRequired,omitempty"`
}

// BookingRequirements lists what order creation will demand for this fare.
type BookingRequirements struct {
	EmailAddressRequired      bool                  `json:"emailAddressRequired,omitempty"`
	MobilePhoneNumberRequired bool                  `json:"mobilePhoneNumberRequired,omitempty"`
	TravelerRequirements      []TravelerRequirement `json:"travelerRequirements,omitempty"`
}

// PricingResponse is the body of the pricing confirmation call.
type PricingResponse struct {
	Data struct {
		Type                string               `json:"type"`
		FlightOffers        []FlightOffer        `json:"flightOffers"`
		BookingRequirements *BookingRequirements `json:"bookingRequirements,omitempty"`
	} `json:"data"`
}

// --- orders ---

// AssociatedRecord is a PNR reference attached to a created order. The first
// entry is the airline record, the second (when present) the GDS record.
type AssociatedRecord struct {
	Reference        string `json:"reference"`
	CreationDate     string `json:"creationDate"`
	OriginSystemCode string `json:"originSystemCode"`
	FlightOfferID    string `json:"flightOfferId,omitempty"`
}

// Order is a created or retrieved flight order.
type Order struct {
	Type               string              `json:"type"`
	ID                 string              `json:"id"`
	QueuingOfficeID    string              `json:"queuingOfficeId"`
	AssociatedRecords  []AssociatedRecord  `json:"associatedRecords"`
	FlightOffers       []FlightOffer       `json:"flightOffers"`
	Travelers          []OrderTraveler     `json:"travelers"`
	TicketingAgreement *TicketingAgreement `json:"ticketingAgreement,omitempty"`
}

// OrderResponse wraps an order payload.
type OrderResponse struct {
	Data Order `json:"data"`
}

// --- request bodies ---

// DateTimeRange limits an origin-destination to a departure date.
type DateTimeRange struct {
	Date string `json:"date"`
}

// OriginDestination is one requested direction of travel.
type OriginDestination struct {
	ID                      string        `json:"id"`
	OriginLocationCode      string        `json:"originLocationCode"`
	DestinationLocationCode string        `json:"destinationLocationCode"`
	DepartureDateTimeRange  DateTimeRange `json:"departureDateTimeRange"`
}

// SearchTraveler is one requested passenger. Infants reference the adult
// whose lap they occupy.
type SearchTraveler struct {
	ID                string `json:"id"`
	TravelerType      string `json:"travelerType"`
	AssociatedAdultID string `json:"associatedAdultId,omitempty"`
}

// CabinRestriction pins the requested cabin over a set of origin-destinations.
type CabinRestriction struct {
	Cabin                string   `json:"cabin"`
	Coverage             string   `json:"coverage"`
	OriginDestinationIDs []string `json:"originDestinationIds"`
}

// FlightFilters carries the optional search filters.
type FlightFilters struct {
	CabinRestrictions []CabinRestriction `json:"cabinRestrictions,omitempty"`
}

// SearchCriteria bounds the search result set.
type SearchCriteria struct {
	MaxFlightOffers int            `json:"maxFlightOffers"`
	FlightFilters   *FlightFilters `json:"flightFilters,omitempty"`
}

// SearchRequest is the body of POST /v2/shopping/flight-offers.
type SearchRequest struct {
	CurrencyCode       string              `json:"currencyCode"`
	OriginDestinations []OriginDestination `json:"originDestinations"`
	Travelers          []SearchTraveler    `json:"travelers"`
	Sources            []string            `json:"sources"`
	SearchCriteria     SearchCriteria      `json:"searchCriteria"`
}

// PricingRequest is the body of the pricing confirmation call. The offer is
// resent exactly as it was received from search.
type PricingRequest struct {
	Data struct {
		Type         string            `json:"type"`
		FlightOffers []json.RawMessage `json:"flightOffers"`
	} `json:"data"`
}

// Name is a traveler's structured name.
type Name struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Phone is a traveler contact number.
type Phone struct {
	DeviceType         string `json:"deviceType"`
	CountryCallingCode string `json:"countryCallingCode"`
	Number             string `json:"number"`
}

// Contact is a traveler's contact block.
type Contact struct {
	EmailAddress string  `json:"emailAddress"`
	Phones       []Phone `json:"phones"`
}

// Document is a traveler identity document.
type Document struct {
	DocumentType    string `json:"documentType"`
	Number          string `json:"number"`
	ExpiryDate      string `json:"expiryDate"`
	IssuanceCountry string `json:"issuanceCountry"`
	ValidityCountry string `json:"validityCountry"`
	Nationality     string `json:"nationality"`
	Holder          bool   `json:"holder"`
}

// OrderTraveler is one passenger on an order request or retrieval.
type OrderTraveler struct {
	ID          string     `json:"id"`
	DateOfBirth string     `json:"dateOfBirth,omitempty"`
	Gender      string     `json:"gender"`
	Name        Name       `json:"name"`
	Contact     Contact    `json:"contact"`
	Documents   []Document `json:"documents,omitempty"`
}

// TicketingAgreement defers ticket issuance on a created order.
type TicketingAgreement struct {
	Option string `json:"option"`
	Delay  string `json:"delay"`
}

// OrderRequest is the body of POST /v1/booking/flight-orders.
type OrderRequest struct {
	Data struct {
		Type               string             `json:"type"`
		FlightOffers       []json.RawMessage  `json:"flightOffers"`
		Travelers          []OrderTraveler    `json:"travelers"`
		TicketingAgreement TicketingAgreement `json:"ticketingAgreement"`
	} `json:"data"`
}
