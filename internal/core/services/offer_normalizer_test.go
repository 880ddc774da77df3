package services_test

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epicquest/travel-backend/internal/core/domain"
	svcports "github.com/epicquest/travel-backend/internal/core/ports/services"
	"github.com/epicquest/travel-backend/internal/core/services"
	"github.com/epicquest/travel-backend/internal/gds/amadeus"
	"github.com/epicquest/travel-backend/internal/refdata"
)

type offerFixture struct {
	ID               string
	InstantTicketing bool
	LastTicketing    string
	SecondDepartAt   string
	CheckedBags      string
}

func defaultFixture() offerFixture {
	return offerFixture{
		ID:               "1",
		InstantTicketing: false,
		LastTicketing:    "2026-09-08T23:59:00",
		SecondDepartAt:   "2026-09-10T16:30:00",
		CheckedBags:      `{"weight":23,"weightUnit":"KG","quantity":2}`,
	}
}

func (f offerFixture) JSON() string {
	return fmt.Sprintf(`{
		"type":"flight-offer","id":%q,"instantTicketingRequired":%t,
		"numberOfBookableSeats":4,
		"lastTicketingDateTime":%q,
		"itineraries":[{"duration":"PT10H0M","segments":[
			{"id":"s1","departure":{"iataCode":"DAC","at":"2026-09-10T10:30:00"},"arrival":{"iataCode":"DXB","at":"2026-09-10T14:00:00"},"carrierCode":"EK","number":"585","aircraft":{"code":"77W"},"duration":"PT5H30M","numberOfStops":0},
			{"id":"s2","departure":{"iataCode":"DXB","at":%q},"arrival":{"iataCode":"LHR","at":"2026-09-10T20:30:00"},"carrierCode":"EK","number":"3","aircraft":{"code":"388"},"operating":{"carrierCode":"EK"},"duration":"PT2H0M","numberOfStops":0}
		]}],
		"price":{"currency":"USD","total":"210.00","base":"180.00"},
		"validatingAirlineCodes":["EK"],
		"travelerPricings":[{"travelerId":"1","travelerType":"ADULT","price":{"currency":"USD","total":"210.00","base":"180.00"},
			"fareDetailsBySegment":[
				{"segmentId":"s1","cabin":"ECONOMY","class":"Y","includedCheckedBags":%s,"includedCabinBags":{"quantity":1},"amenities":[{"description":"REFUNDABLE TICKET","isChargeable":true}]},
				{"segmentId":"s2","cabin":"ECONOMY","class":"Y","includedCheckedBags":%s}
			]}]
	}`, f.ID, f.InstantTicketing, f.LastTicketing, f.SecondDepartAt, f.CheckedBags, f.CheckedBags)
}

func searchResponse(t *testing.T, offers ...offerFixture) *amadeus.SearchResponse {
	t.Helper()
	payload := `{"meta":{"count":` + fmt.Sprint(len(offers)) + `},"data":[`
	for i, f := range offers {
		if i > 0 {
			payload += ","
		}
		payload += f.JSON()
	}
	payload += `]}`

	var resp amadeus.SearchResponse
	require.NoError(t, json.Unmarshal([]byte(payload), &resp))
	return &resp
}

func newNormalizer(t *testing.T, now time.Time) svcports.OfferNormalizer {
	t.Helper()
	lookup, err := refdata.NewStore()
	require.NoError(t, err)
	return services.NewOfferNormalizer(lookup, func() time.Time { return now })
}

func TestNormalizeSearch_CanonicalFields(t *testing.T) {
	n := newNormalizer(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))

	offers := n.NormalizeSearch(searchResponse(t, defaultFixture()))
	require.Len(t, offers, 1)
	offer := offers[0]

	assert.Equal(t, "Amadeus", offer.System)
	assert.Equal(t, "1", offer.OfferID)
	assert.Equal(t, domain.OneWay, offer.TripType)
	assert.Equal(t, 2, offer.SegmentCount)
	assert.Equal(t, "EK", offer.Carrier)
	assert.Equal(t, "Emirates", offer.CarrierName)
	assert.Equal(t, 4, offer.SeatsRemaining)
	assert.Equal(t, "economy", offer.CabinClass)
	assert.True(t, offer.Refundable)
	assert.Nil(t, offer.Inbound)

	assert.Equal(t, "180", offer.BasePrice.String())
	assert.Equal(t, "30", offer.Taxes.String())
	assert.Equal(t, "210", offer.Price.String())
	// 5% margin on the provider total, rounded to cents
	assert.Equal(t, "220.5", offer.NetPrice.String())
	assert.Equal(t, "USD", offer.FareCurrency)

	assert.Equal(t, "DAC", offer.Outbound.Departure)
	assert.Equal(t, "2026-09-10", offer.Outbound.DepartureDate)
	assert.Equal(t, "10:30:00", offer.Outbound.DepartureTime)
	assert.Equal(t, "LHR", offer.Outbound.Arrival)
	assert.Equal(t, "10H 0Min", offer.Outbound.Duration)
	assert.Equal(t, map[string]string{"transit1": "2H 30Min"}, offer.Outbound.Transit)

	require.Len(t, offer.Outbound.Segments, 2)
	seg := offer.Outbound.Segments[0]
	assert.Equal(t, "EK", seg.MarketingCarrier)
	assert.Equal(t, "Emirates", seg.MarketingCarrierName)
	assert.Equal(t, "585", seg.FlightNumber)
	assert.Empty(t, seg.OperatingCarrier)
	assert.Equal(t, "Hazrat Shahjalal International Airport", seg.Departure.Airport)
	assert.Equal(t, "Dhaka, Dhaka, Bangladesh", seg.Departure.Location)
	assert.Equal(t, "5H 30Min", seg.Duration)
	assert.Equal(t, 46, seg.BaggageKg)
	assert.Equal(t, "EK", offer.Outbound.Segments[1].OperatingCarrier)

	require.Len(t, offer.PriceBreakdown, 1)
	fare := offer.PriceBreakdown[0]
	assert.Equal(t, "ADULT", fare.PaxType)
	assert.Equal(t, 1, fare.PaxCount)
	assert.Equal(t, 46, fare.CheckedBagKg)
	assert.Equal(t, 7, fare.CabinBagKg)

	// the provider payload rides along untouched for the pricing call
	assert.JSONEq(t, defaultFixture().JSON(), string(offer.RawOffer))
}

func TestNormalizeSearch_BaggageFallbacks(t *testing.T) {
	n := newNormalizer(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))

	cases := []struct {
		name        string
		checkedBags string
		wantKg      int
	}{
		{"weight and quantity multiply", `{"weight":23,"quantity":2}`, 46},
		{"weight alone", `{"weight":23,"weightUnit":"KG"}`, 23},
		{"quantity alone uses per-piece default", `{"quantity":2}`, 40},
		{"no allowance", `null`, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := defaultFixture()
			f.CheckedBags = tc.checkedBags
			offers := n.NormalizeSearch(searchResponse(t, f))
			require.Len(t, offers, 1)
			assert.Equal(t, tc.wantKg, offers[0].Outbound.Segments[0].BaggageKg)
		})
	}
}

func TestNormalizeSearch_ExcludesInstantTicketing(t *testing.T) {
	n := newNormalizer(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))

	instant := defaultFixture()
	instant.ID = "2"
	instant.InstantTicketing = true

	offers := n.NormalizeSearch(searchResponse(t, defaultFixture(), instant))
	require.Len(t, offers, 1)
	assert.Equal(t, "1", offers[0].OfferID)
}

func TestNormalizeSearch_DropsNegativeTransit(t *testing.T) {
	n := newNormalizer(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))

	corrupt := defaultFixture()
	corrupt.ID = "3"
	// second segment departs before the first one lands
	corrupt.SecondDepartAt = "2026-09-10T13:00:00"

	offers := n.NormalizeSearch(searchResponse(t, corrupt, defaultFixture()))
	require.Len(t, offers, 1)
	assert.Equal(t, "1", offers[0].OfferID)
}

func TestNormalizeSearch_IsIdempotent(t *testing.T) {
	n := newNormalizer(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))

	first := n.NormalizeSearch(searchResponse(t, defaultFixture()))
	second := n.NormalizeSearch(searchResponse(t, defaultFixture()))
	assert.Equal(t, first, second)
}

func pricingResponse(t *testing.T, f offerFixture, requirements string) *amadeus.PricingResponse {
	t.Helper()
	payload := `{"data":{"type":"flight-offers-pricing","flightOffers":[` + f.JSON() + `]`
	if requirements != "" {
		payload += `,"bookingRequirements":` + requirements
	}
	payload += `}}`

	var resp amadeus.PricingResponse
	require.NoError(t, json.Unmarshal([]byte(payload), &resp))
	return &resp
}

func TestNormalizePricing_HoldAndRequirements(t *testing.T) {
	n := newNormalizer(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))

	f := defaultFixture()
	f.LastTicketing = "2026-09-04T10:00:00"
	reqs := `{"travelerRequirements":[{"travelerId":"1","documentRequired":true,"dateOfBirthRequired":true}]}`

	priced, err := n.NormalizePricing(pricingResponse(t, f, reqs))
	require.NoError(t, err)

	assert.Equal(t, 3, priced.BookingHoldDays)
	assert.True(t, priced.PassportRequired)
	assert.True(t, priced.DateOfBirthRequired)
}

func TestNormalizePricing_HoldIsClamped(t *testing.T) {
	n := newNormalizer(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))

	f := defaultFixture()
	f.LastTicketing = "2026-09-30T10:00:00"

	priced, err := n.NormalizePricing(pricingResponse(t, f, ""))
	require.NoError(t, err)
	assert.Equal(t, domain.MaxBookingHoldDays, priced.BookingHoldDays)
	assert.False(t, priced.PassportRequired)
}

func TestNormalizePricing_EmptyResponseFails(t *testing.T) {
	n := newNormalizer(t, time.Now())

	var resp amadeus.PricingResponse
	require.NoError(t, json.Unmarshal([]byte(`{"data":{"type":"flight-offers-pricing","flightOffers":[]}}`), &resp))

	_, err := n.NormalizePricing(&resp)
	assert.Error(t, err)
}

func orderResponse(t *testing.T, records string) *amadeus.OrderResponse {
	t.Helper()
	payload := `{"data":{"type":"flight-order","id":"eJzTd9f3CbV0BAA=","queuingOfficeId":"DACBG08AA",
		"associatedRecords":` + records + `,
		"flightOffers":[` + defaultFixture().JSON() + `],
		"travelers":[{"id":"1","dateOfBirth":"1990-04-12","gender":"MALE",
			"name":{"firstName":"Rahim","lastName":"Uddin"},
			"contact":{"emailAddress":"rahim@example.com","phones":[{"deviceType":"MOBILE","countryCallingCode":"880","number":"1712345678"}]},
			"documents":[{"documentType":"PASSPORT","number":"BX1234567","expiryDate":"2030-01-01","issuanceCountry":"BD","validityCountry":"BD","nationality":"BD","holder":true}]}]}}`

	var resp amadeus.OrderResponse
	require.NoError(t, json.Unmarshal([]byte(payload), &resp))
	return &resp
}

func TestNormalizeOrder_TwoRecords(t *testing.T) {
	n := newNormalizer(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))

	records := `[{"reference":"ABC123","creationDate":"2026-09-01T10:00:00","originSystemCode":"GDS"},
		{"reference":"XYZ789","creationDate":"2026-09-01T10:00:05","originSystemCode":"1A"}]`

	order, err := n.NormalizeOrder(orderResponse(t, records))
	require.NoError(t, err)

	assert.Equal(t, "eJzTd9f3CbV0BAA=", order.GdsID)
	assert.Equal(t, "DACBG08AA", order.QueuingOfficeID)
	assert.Equal(t, "ABC123", order.AirlinePNR)
	assert.Equal(t, "XYZ789", order.GdsPNR)
	assert.Equal(t, "2026-09-01T10:00:05", order.BookingDateTime)
	assert.Equal(t, domain.OneWay, order.TripType)

	require.Len(t, order.Travellers, 1)
	traveler := order.Travellers[0]
	assert.Equal(t, "Rahim", traveler.FirstName)
	assert.Equal(t, "880", traveler.CountryCallingCode)
	require.NotNil(t, traveler.PassportNumber)
	assert.Equal(t, "BX1234567", *traveler.PassportNumber)
}

func TestNormalizeOrder_SingleRecordServesBothPNRs(t *testing.T) {
	n := newNormalizer(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))

	records := `[{"reference":"ABC123","creationDate":"2026-09-01T10:00:00","originSystemCode":"GDS"}]`

	order, err := n.NormalizeOrder(orderResponse(t, records))
	require.NoError(t, err)
	assert.Equal(t, "ABC123", order.AirlinePNR)
	assert.Equal(t, "ABC123", order.GdsPNR)
	assert.Equal(t, "2026-09-01T10:00:00", order.BookingDateTime)
}
