package amadeus

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epicquest/travel-backend/internal/core/domain"
)

func strPtr(s string) *string { return &s }

func TestBuildSearchRequest_RoundTrip(t *testing.T) {
	req := BuildSearchRequest(domain.SearchQuery{
		TripType:      domain.RoundTrip,
		Origin:        "DAC",
		Destination:   "DXB",
		DepartureDate: "2026-09-10",
		ReturnDate:    "2026-09-20",
		Adults:        2,
		Children:      1,
		Infants:       3,
		CabinClass:    "economy",
	})

	require.Len(t, req.OriginDestinations, 2)
	assert.Equal(t, "DAC", req.OriginDestinations[0].OriginLocationCode)
	assert.Equal(t, "2026-09-10", req.OriginDestinations[0].DepartureDateTimeRange.Date)
	assert.Equal(t, "DXB", req.OriginDestinations[1].OriginLocationCode)
	assert.Equal(t, "DAC", req.OriginDestinations[1].DestinationLocationCode)
	assert.Equal(t, "2026-09-20", req.OriginDestinations[1].DepartureDateTimeRange.Date)

	require.Len(t, req.Travelers, 6)
	assert.Equal(t, "ADULT", req.Travelers[0].TravelerType)
	assert.Equal(t, "ADULT", req.Travelers[1].TravelerType)
	assert.Equal(t, "CHILD", req.Travelers[2].TravelerType)
	// infants alternate between the two adults
	assert.Equal(t, "HELD_INFANT", req.Travelers[3].TravelerType)
	assert.Equal(t, "1", req.Travelers[3].AssociatedAdultID)
	assert.Equal(t, "2", req.Travelers[4].AssociatedAdultID)
	assert.Equal(t, "1", req.Travelers[5].AssociatedAdultID)

	assert.Equal(t, "USD", req.CurrencyCode)
	assert.Equal(t, []string{"GDS"}, req.Sources)
	assert.Equal(t, 100, req.SearchCriteria.MaxFlightOffers)
	require.NotNil(t, req.SearchCriteria.FlightFilters)
	restriction := req.SearchCriteria.FlightFilters.CabinRestrictions[0]
	assert.Equal(t, "ECONOMY", restriction.Cabin)
	assert.Equal(t, "MOST_SEGMENTS", restriction.Coverage)
	assert.Equal(t, []string{"1", "2"}, restriction.OriginDestinationIDs)
}

func TestBuildSearchRequest_OneWay(t *testing.T) {
	req := BuildSearchRequest(domain.SearchQuery{
		TripType:      domain.OneWay,
		Origin:        "DAC",
		Destination:   "LHR",
		DepartureDate: "2026-10-01",
		Adults:        1,
		CabinClass:    "business",
	})

	require.Len(t, req.OriginDestinations, 1)
	assert.Equal(t, []string{"1"}, req.SearchCriteria.FlightFilters.CabinRestrictions[0].OriginDestinationIDs)
}

func TestBuildOrderRequest_DocumentsRequireFullPassport(t *testing.T) {
	raw := json.RawMessage(`{"id":"1"}`)
	travelers := []domain.Traveler{
		{
			FirstName:          "Rahim",
			LastName:           "Uddin",
			Gender:             "male",
			Email:              "rahim@example.com",
			CountryCallingCode: "880",
			Phone:              "1712345678",
			DateOfBirth:        strPtr("1990-04-12"),
			PassportNumber:     strPtr("BX1234567"),
			PassportExpiry:     strPtr("2030-01-01"),
			IssuanceCountry:    strPtr("BD"),
			ValidityCountry:    strPtr("BD"),
			Nationality:        strPtr("BD"),
		},
		{
			FirstName:          "Karima",
			LastName:           "Uddin",
			Gender:             "female",
			Email:              "karima@example.com",
			CountryCallingCode: "880",
			Phone:              "1798765432",
			PassportNumber:     strPtr("BX7654321"),
			// expiry missing, so no document block at all
		},
	}

	req := BuildOrderRequest(raw, travelers, 0)

	require.Len(t, req.Data.Travelers, 2)
	first := req.Data.Travelers[0]
	assert.Equal(t, "1", first.ID)
	assert.Equal(t, "MALE", first.Gender)
	assert.Equal(t, "1990-04-12", first.DateOfBirth)
	require.Len(t, first.Documents, 1)
	assert.Equal(t, "PASSPORT", first.Documents[0].DocumentType)
	assert.True(t, first.Documents[0].Holder)
	assert.Equal(t, "MOBILE", first.Contact.Phones[0].DeviceType)

	second := req.Data.Travelers[1]
	assert.Equal(t, "2", second.ID)
	assert.Empty(t, second.Documents)

	assert.Equal(t, "DELAY_TO_CANCEL", req.Data.TicketingAgreement.Option)
	assert.Equal(t, "2D", req.Data.TicketingAgreement.Delay)
}

func TestBuildOrderRequest_HoldDays(t *testing.T) {
	req := BuildOrderRequest(json.RawMessage(`{}`), nil, 5)
	assert.Equal(t, "5D", req.Data.TicketingAgreement.Delay)
}

func TestBuildPricingRequest(t *testing.T) {
	raw := json.RawMessage(`{"id":"7","price":{"total":"210.00"}}`)
	req := BuildPricingRequest(raw)

	assert.Equal(t, "flight-offers-pricing", req.Data.Type)
	require.Len(t, req.Data.FlightOffers, 1)
	assert.JSONEq(t, string(raw), string(req.Data.FlightOffers[0]))
}
