// Package refdata provides the static airport and airline lookup tables used
// during offer normalization. The tables are decoded once at construction into
// immutable maps; lookups are pure and allocation-free.
package refdata

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed data/airports.json
var airportsRaw []byte

//go:embed data/airlines.json
var airlinesRaw []byte

// Airport describes an airport referenced by IATA code. Location is the
// human-readable "City, State, Country" string shown on itineraries.
type Airport struct {
	Code     string  `json:"iataCode"`
	Name     string  `json:"name"`
	City     string  `json:"city"`
	State    string  `json:"state"`
	Country  string  `json:"country"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Timezone string  `json:"tz"`
}

// Location renders the display location for the airport.
func (a Airport) Location() string {
	if a.Code == "" {
		return ""
	}
	return fmt.Sprintf("%s, %s, %s", a.City, a.State, a.Country)
}

// Airline describes a carrier referenced by IATA code.
type Airline struct {
	Code string `json:"iataCode"`
	Name string `json:"businessName"`
}

// Lookup is the read-only code -> descriptor interface consumed by the
// normalizer. Misses return zero-value descriptors, never errors: unknown
// codes degrade to empty display fields.
type Lookup interface {
	AirportByCode(code string) Airport
	AirlineByCode(code string) Airline
}

// Store is the embedded-table implementation of Lookup.
type Store struct {
	airports map[string]Airport
	airlines map[string]Airline
}

var _ Lookup = (*Store)(nil)

// NewStore decodes the embedded tables. Called once at process start.
func NewStore() (*Store, error) {
	var airports []Airport
	if err := json.Unmarshal(airportsRaw, &airports); err != nil {
		return nil, fmt.Errorf("failed to decode airport table: %w", err)
	}
	var airlines []Airline
	if err := json.Unmarshal(airlinesRaw, &airlines); err != nil {
		return nil, fmt.Errorf("failed to decode airline table: %w", err)
	}

	s := &Store{
		airports: make(map[string]Airport, len(airports)),
		airlines: make(map[string]Airline, len(airlines)),
	}
	for _, a := range airports {
		s.airports[a.Code] = a
	}
	for _, a := range airlines {
		s.airlines[a.Code] = a
	}
	return s, nil
}

// AirportByCode returns the airport descriptor for the IATA code, or a zero
// value when the code is unknown or empty.
func (s *Store) AirportByCode(code string) Airport {
	return s.airports[code]
}

// AirlineByCode returns the airline descriptor for the IATA code, or a zero
// value when the code is unknown or empty.
func (s *Store) AirlineByCode(code string) Airline {
	return s.airlines[code]
}
