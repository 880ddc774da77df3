package domain

import "github.com/shopspring/decimal"

// HotelQuote is a display price in one conversion currency.
type HotelQuote struct {
	Currency string          `json:"currency"`
	Price    decimal.Decimal `json:"price"`
}

// HotelSummary is one availability result enriched with display quotes and,
// when the content call succeeds, the hotel's content sheet.
type HotelSummary struct {
	HotelCode       string          `json:"hotelCode"`
	Name            string          `json:"name"`
	Rating          string          `json:"rating"`
	DestinationName string          `json:"destinationName"`
	ZoneName        string          `json:"zoneName"`
	MinRate         decimal.Decimal `json:"minRate"`
	RateCurrency    string          `json:"rateCurrency"`
	Quotes          []HotelQuote    `json:"quotes,omitempty"`
	Details         *HotelDetails   `json:"details,omitempty"`
}

// HotelRoom is one room type with its matched photos.
type HotelRoom struct {
	RoomCode    string   `json:"roomCode"`
	Description string   `json:"description"`
	MinPax      int      `json:"minPax"`
	MaxPax      int      `json:"maxPax"`
	MinAdults   int      `json:"minAdults"`
	MaxAdults   int      `json:"maxAdults"`
	MaxChildren int      `json:"maxChildren"`
	Images      []string `json:"images"`
}

// HotelImage is a categorized photo outside the room and general sets.
type HotelImage struct {
	URL  string `json:"image"`
	Name string `json:"imageName,omitempty"`
}

// PointOfInterest is a nearby place with its distance from the hotel.
type PointOfInterest struct {
	PlaceName string `json:"placeName"`
	Distance  string `json:"distance"`
}

// HotelDetails is the flattened content sheet of one hotel.
type HotelDetails struct {
	HotelCode      string            `json:"hotelCode"`
	HotelName      string            `json:"hotelName"`
	Description    string            `json:"description"`
	Country        string            `json:"country"`
	State          string            `json:"state"`
	Destination    string            `json:"destination"`
	Zone           string            `json:"zone"`
	Rating         string            `json:"rating"`
	CategoryGroup  string            `json:"categoryGroup"`
	Boards         []string          `json:"boardDescriptions"`
	Segments       []string          `json:"segments"`
	Address        string            `json:"address"`
	PostCode       string            `json:"postCode"`
	City           string            `json:"city"`
	Rooms          []HotelRoom       `json:"rooms"`
	GeneralImages  []string          `json:"generalImages"`
	OtherImages    []HotelImage      `json:"otherImages"`
	FreeFacilities []string          `json:"freeFacilities"`
	PaidFacilities []string          `json:"paidFacilities"`
	ClosestPlaces  []PointOfInterest `json:"closestPlaces"`
}

// HotelDestination is a bookable destination from the content catalogue.
type HotelDestination struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	IsoCode     string `json:"isoCode"`
	CountryCode string `json:"countryCode"`
}
