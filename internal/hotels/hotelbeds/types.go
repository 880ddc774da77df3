package hotelbeds

import "encoding/json"

// --- availability ---

// Stay bounds the requested nights.
type Stay struct {
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
}

// Occupancy is one requested room configuration.
type Occupancy struct {
	Rooms    int `json:"rooms"`
	Adults   int `json:"adults"`
	Children int `json:"children"`
}

// Destination names the searched location by its provider code.
type Destination struct {
	Code string `json:"code"`
}

// SearchRequest is the body of POST /hotel-api/1.0/hotels.
type SearchRequest struct {
	Stay        Stay        `json:"stay"`
	Occupancies []Occupancy `json:"occupancies"`
	Destination Destination `json:"destination"`
	Language    string      `json:"language,omitempty"`
	Currency    string      `json:"currency,omitempty"`
}

// Hotel is one availability result. Rates arrive as decimal strings in the
// response currency, EUR unless requested otherwise.
type Hotel struct {
	Code            int    `json:"code"`
	Name            string `json:"name"`
	CategoryName    string `json:"categoryName"`
	DestinationName string `json:"destinationName"`
	ZoneName        string `json:"zoneName"`
	MinRate         string `json:"minRate"`
	MaxRate         string `json:"maxRate"`
	Currency        string `json:"currency"`
}

// SearchResponse is the availability body. The provider nests the hotel list
// inside a block of the same name.
type SearchResponse struct {
	Hotels struct {
		Total  int     `json:"total"`
		Hotels []Hotel `json:"hotels"`
	} `json:"hotels"`
}

// --- content ---

// Content is the provider's wrapper around localized text.
type Content struct {
	Content string `json:"content"`
}

// InterestPoint is a nearby place on a content sheet. Distance arrives in
// meters, sometimes as a number and sometimes as a string.
type InterestPoint struct {
	PoiName  string      `json:"poiName"`
	Distance json.Number `json:"distance"`
}

// ContentRoom is one room type on a content sheet.
type ContentRoom struct {
	RoomCode    string `json:"roomCode"`
	Description string `json:"description"`
	MinPax      int    `json:"minPax"`
	MaxPax      int    `json:"maxPax"`
	MinAdults   int    `json:"minAdults"`
	MaxAdults   int    `json:"maxAdults"`
	MaxChildren int    `json:"maxChildren"`
}

// Image is one photo reference. Room photos carry the room code they belong
// to, or only the characteristic code shared by similar rooms.
type Image struct {
	Path               string `json:"path"`
	RoomCode           string `json:"roomCode,omitempty"`
	CharacteristicCode string `json:"characteristicCode,omitempty"`
	Type               struct {
		Description Content `json:"description"`
	} `json:"type"`
}

// Facility is one amenity. IndFee is absent on entries that are not
// facilities in the fee sense; those are skipped during normalization.
type Facility struct {
	Description Content `json:"description"`
	IndFee      *bool   `json:"indFee,omitempty"`
}

// HotelContent is the full content sheet of one hotel.
type HotelContent struct {
	Code        int     `json:"code"`
	Name        Content `json:"name"`
	Description Content `json:"description"`
	Country     struct {
		Description Content `json:"description"`
	} `json:"country"`
	State struct {
		Name string `json:"name"`
	} `json:"state"`
	Destination struct {
		Name Content `json:"name"`
	} `json:"destination"`
	Zone struct {
		Name string `json:"name"`
	} `json:"zone"`
	Category struct {
		Description Content `json:"description"`
	} `json:"category"`
	CategoryGroup struct {
		Description Content `json:"description"`
	} `json:"categoryGroup"`
	Boards []struct {
		Description Content `json:"description"`
	} `json:"boards"`
	Segments []struct {
		Description Content `json:"description"`
	} `json:"segments"`
	Address        Content         `json:"address"`
	PostalCode     string          `json:"postalCode"`
	City           Content         `json:"city"`
	InterestPoints []InterestPoint `json:"interestPoints"`
	Rooms          []ContentRoom   `json:"rooms"`
	Images         []Image         `json:"images"`
	Facilities     []Facility      `json:"facilities"`
}

// DetailsResponse is the body of the per-hotel content call.
type DetailsResponse struct {
	Hotel HotelContent `json:"hotel"`
}

// DestinationEntry is one bookable destination from the content catalogue.
type DestinationEntry struct {
	Code        string  `json:"code"`
	Name        Content `json:"name"`
	IsoCode     string  `json:"isoCode"`
	CountryCode string  `json:"countryCode"`
}

// DestinationsResponse is the body of the destination catalogue call.
type DestinationsResponse struct {
	From         int                `json:"from"`
	To           int                `json:"to"`
	Total        int                `json:"total"`
	Destinations []DestinationEntry `json:"destinations"`
}
