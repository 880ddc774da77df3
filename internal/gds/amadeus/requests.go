package amadeus

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/epicquest/travel-backend/internal/core/domain"
)

const (
	defaultCurrency    = "USD"
	maxFlightOffers    = 100
	cabinCoverage      = "MOST_SEGMENTS"
	ticketingOption    = "DELAY_TO_CANCEL"
	defaultHoldDays    = 2
	travelerTypeAdult  = "ADULT"
	travelerTypeChild  = "CHILD"
	travelerTypeInfant = "HELD_INFANT"
)

// BuildSearchRequest translates a validated search query into the provider's
// shopping request. Round trips carry a second, reversed origin-destination;
// lap infants are distributed round-robin across the adult travelers.
func BuildSearchRequest(q domain.SearchQuery) SearchRequest {
	dests := []OriginDestination{{
		ID:                      "1",
		OriginLocationCode:      q.Origin,
		DestinationLocationCode: q.Destination,
		DepartureDateTimeRange:  DateTimeRange{Date: q.DepartureDate},
	}}
	if q.TripType == domain.RoundTrip {
		dests = append(dests, OriginDestination{
			ID:                      "2",
			OriginLocationCode:      q.Destination,
			DestinationLocationCode: q.Origin,
			DepartureDateTimeRange:  DateTimeRange{Date: q.ReturnDate},
		})
	}

	travelers := make([]SearchTraveler, 0, q.Adults+q.Children+q.Infants)
	next := 1
	for i := 0; i < q.Adults; i++ {
		travelers = append(travelers, SearchTraveler{ID: strconv.Itoa(next), TravelerType: travelerTypeAdult})
		next++
	}
	for i := 0; i < q.Children; i++ {
		travelers = append(travelers, SearchTraveler{ID: strconv.Itoa(next), TravelerType: travelerTypeChild})
		next++
	}
	for i := 0; i < q.Infants; i++ {
		travelers = append(travelers, SearchTraveler{
			ID:                strconv.Itoa(next),
			TravelerType:      travelerTypeInfant,
			AssociatedAdultID: strconv.Itoa(i%q.Adults + 1),
		})
		next++
	}

	destIDs := make([]string, len(dests))
	for i, d := range dests {
		destIDs[i] = d.ID
	}

	currency := q.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	return SearchRequest{
		CurrencyCode:       currency,
		OriginDestinations: dests,
		Travelers:          travelers,
		Sources:            []string{"GDS"},
		SearchCriteria: SearchCriteria{
			MaxFlightOffers: maxFlightOffers,
			FlightFilters: &FlightFilters{
				CabinRestrictions: []CabinRestriction{{
					Cabin:                strings.ToUpper(q.CabinClass),
					Coverage:             cabinCoverage,
					OriginDestinationIDs: destIDs,
				}},
			},
		},
	}
}

// BuildPricingRequest wraps the stored raw offer for the pricing confirmation
// call. The offer bytes are resent exactly as received from search.
func BuildPricingRequest(rawOffer json.RawMessage) PricingRequest {
	var req PricingRequest
	req.Data.Type = "flight-offers-pricing"
	req.Data.FlightOffers = []json.RawMessage{rawOffer}
	return req
}

// BuildOrderRequest assembles the order-creation body. Traveler ids are the
// 1-based position in the submitted list; passport documents are attached
// only when every passport field is present. holdDays <= 0 falls back to the
// default two-day ticketing hold.
func BuildOrderRequest(rawOffer json.RawMessage, travelers []domain.Traveler, holdDays int) OrderRequest {
	if holdDays <= 0 {
		holdDays = defaultHoldDays
	}

	orderTravelers := make([]OrderTraveler, 0, len(travelers))
	for i, t := range travelers {
		ot := OrderTraveler{
			ID:     strconv.Itoa(i + 1),
			Gender: strings.ToUpper(t.Gender),
			Name:   Name{FirstName: t.FirstName, LastName: t.LastName},
			Contact: Contact{
				EmailAddress: t.Email,
				Phones: []Phone{{
					DeviceType:         "MOBILE",
					CountryCallingCode: t.CountryCallingCode,
					Number:             t.Phone,
				}},
			},
		}
		if t.DateOfBirth != nil {
			ot.DateOfBirth = *t.DateOfBirth
		}
		if hasFullPassport(t) {
			ot.Documents = []Document{{
				DocumentType:    "PASSPORT",
				Number:          *t.PassportNumber,
				ExpiryDate:      *t.PassportExpiry,
				IssuanceCountry: *t.IssuanceCountry,
				ValidityCountry: *t.ValidityCountry,
				Nationality:     *t.Nationality,
				Holder:          true,
			}}
		}
		orderTravelers = append(orderTravelers, ot)
	}

	var req OrderRequest
	req.Data.Type = "flight-order"
	req.Data.FlightOffers = []json.RawMessage{rawOffer}
	req.Data.Travelers = orderTravelers
	req.Data.TicketingAgreement = TicketingAgreement{
		Option: ticketingOption,
		Delay:  fmt.Sprintf("%dD", holdDays),
	}
	return req
}

func hasFullPassport(t domain.Traveler) bool {
	for _, f := range []*string{t.PassportNumber, t.PassportExpiry, t.IssuanceCountry, t.ValidityCountry, t.Nationality} {
		if f == nil || *f == "" {
			return false
		}
	}
	return true
}
