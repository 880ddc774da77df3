package dto

import (
	"encoding/json"
	"strings"

	"github.com/epicquest/travel-backend/internal/core/domain"
)

// FlightSearchRequest is the search endpoint body. Cross-field rules that
// binding tags cannot express (return date on round trips, infants per adult)
// are enforced in the service layer.
type FlightSearchRequest struct {
	JourneyType   string `json:"journeyType" binding:"required,oneof=oneway roundtrip"`
	Origin        string `json:"origin" binding:"required,len=3,alpha"`
	Destination   string `json:"destination" binding:"required,len=3,alpha"`
	DepartureDate string `json:"departureDate" binding:"required,datetime=2006-01-02"`
	ReturnDate    string `json:"returnDate" binding:"omitempty,datetime=2006-01-02"`
	Adults        int    `json:"adults" binding:"required,min=1,max=9"`
	Children      int    `json:"children" binding:"omitempty,min=0,max=8"`
	Infants       int    `json:"infants" binding:"omitempty,min=0,max=8"`
	CabinClass    string `json:"cabinClass" binding:"required,cabin"`
}

// ToQuery maps the request to the validated domain query.
func (r FlightSearchRequest) ToQuery() domain.SearchQuery {
	return domain.SearchQuery{
		TripType:      domain.TripType(r.JourneyType),
		Origin:        strings.ToUpper(r.Origin),
		Destination:   strings.ToUpper(r.Destination),
		DepartureDate: r.DepartureDate,
		ReturnDate:    r.ReturnDate,
		Adults:        r.Adults,
		Children:      r.Children,
		Infants:       r.Infants,
		CabinClass:    strings.ToLower(r.CabinClass),
	}
}

// FlightPriceRequest re-prices a previously returned offer. AirFareData is
// the provider offer payload echoed back untouched by the caller.
type FlightPriceRequest struct {
	AirFareData json.RawMessage `json:"airFareData" binding:"required"`
}

// TravelerRequest is one passenger on a booking request.
type TravelerRequest struct {
	FirstName          string  `json:"firstName" binding:"required"`
	LastName           string  `json:"lastName" binding:"required"`
	Gender             string  `json:"gender" binding:"required,oneof=male female MALE FEMALE"`
	Email              string  `json:"emailAddress" binding:"required,email"`
	CountryCallingCode string  `json:"countryCallingCode" binding:"required"`
	Phone              string  `json:"phoneNumber" binding:"required"`
	DateOfBirth        *string `json:"dateOfBirth,omitempty" binding:"omitempty,datetime=2006-01-02"`
	PassportNumber     *string `json:"passportNumber,omitempty"`
	PassportExpiry     *string `json:"passportExpireDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	IssuanceCountry    *string `json:"issuanceCountry,omitempty"`
	ValidityCountry    *string `json:"validityCountry,omitempty"`
	Nationality        *string `json:"nationality,omitempty"`
}

// ToDomain maps the request traveler to the domain representation.
func (r TravelerRequest) ToDomain() domain.Traveler {
	return domain.Traveler{
		FirstName:          r.FirstName,
		LastName:           r.LastName,
		Gender:             r.Gender,
		Email:              r.Email,
		CountryCallingCode: r.CountryCallingCode,
		Phone:              r.Phone,
		DateOfBirth:        r.DateOfBirth,
		PassportNumber:     r.PassportNumber,
		PassportExpiry:     r.PassportExpiry,
		IssuanceCountry:    r.IssuanceCountry,
		ValidityCountry:    r.ValidityCountry,
		Nationality:        r.Nationality,
	}
}

// BookFlightRequest creates a booking from a priced offer. The booking is
// attributed to the authenticated caller; the body never names the payer.
type BookFlightRequest struct {
	AirFareData json.RawMessage   `json:"airFareData" binding:"required"`
	Travellers  []TravelerRequest `json:"travellers" binding:"required,min=1,dive"`
}
