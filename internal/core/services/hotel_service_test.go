package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/epicquest/travel-backend/internal/apperrors"
	"github.com/epicquest/travel-backend/internal/core/domain"
	svcports "github.com/epicquest/travel-backend/internal/core/ports/services"
	"github.com/epicquest/travel-backend/internal/core/services"
	"github.com/epicquest/travel-backend/internal/dto"
	"github.com/epicquest/travel-backend/internal/hotels/hotelbeds"
)

type hotelFixture struct {
	provider   *mockHotelProvider
	currencies *mockCurrencyService
	svc        svcports.HotelService
}

func newHotelFixture() *hotelFixture {
	f := &hotelFixture{
		provider:   new(mockHotelProvider),
		currencies: new(mockCurrencyService),
	}
	f.svc = services.NewHotelService(f.provider, f.currencies)
	return f
}

func hotelSearchRequest() dto.HotelSearchRequest {
	return dto.HotelSearchRequest{
		Stay:        dto.HotelStayRequest{CheckIn: "2026-10-01", CheckOut: "2026-10-04"},
		Occupancies: []dto.HotelOccupancyRequest{{Rooms: 1, Adults: 2}},
		Destination: dto.HotelDestinationRequest{Code: "MNL"},
	}
}

func availability(hotels ...hotelbeds.Hotel) *hotelbeds.SearchResponse {
	resp := &hotelbeds.SearchResponse{}
	resp.Hotels.Total = len(hotels)
	resp.Hotels.Hotels = hotels
	return resp
}

func contentImage(path, kind, roomCode, characteristic string) hotelbeds.Image {
	img := hotelbeds.Image{Path: path, RoomCode: roomCode, CharacteristicCode: characteristic}
	img.Type.Description.Content = kind
	return img
}

func conversionTable() []domain.Currency {
	return []domain.Currency{
		{Code: "EUR", Value: decimal.RequireFromString("0.9")},
		{Code: "PHP", Value: decimal.RequireFromString("50")},
		{Code: "USD", Value: decimal.RequireFromString("1")},
	}
}

func TestHotelSearch_CheckOutMustFollowCheckIn(t *testing.T) {
	f := newHotelFixture()

	req := hotelSearchRequest()
	req.Stay.CheckOut = req.Stay.CheckIn
	_, err := f.svc.Search(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	req.Stay.CheckOut = "2026-09-30"
	_, err = f.svc.Search(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	f.provider.AssertNotCalled(t, "SearchHotels")
}

func TestHotelSearch_QuotesDisplayCurrencies(t *testing.T) {
	f := newHotelFixture()
	f.provider.On("SearchHotels", mock.Anything, mock.Anything).
		Return(availability(hotelbeds.Hotel{Code: 4951, Name: "Pearl Manila", MinRate: "100.00", Currency: "EUR"}), nil)
	f.provider.On("HotelDetails", mock.Anything, "4951").
		Return(&hotelbeds.DetailsResponse{Hotel: hotelbeds.HotelContent{Code: 4951}}, nil)
	f.currencies.On("ListCurrencies", mock.Anything).Return(conversionTable(), nil)

	summaries, err := f.svc.Search(context.Background(), hotelSearchRequest())
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	// 100 EUR at 0.9 EUR and 50 PHP per USD
	quotes := summaries[0].Quotes
	require.Len(t, quotes, 2)
	assert.Equal(t, "USD", quotes[0].Currency)
	assert.True(t, quotes[0].Price.Equal(decimal.RequireFromString("111.11")), quotes[0].Price.String())
	assert.Equal(t, "PHP", quotes[1].Currency)
	assert.True(t, quotes[1].Price.Equal(decimal.RequireFromString("5555.56")), quotes[1].Price.String())
}

func TestHotelSearch_TruncatesToTopMatches(t *testing.T) {
	f := newHotelFixture()
	hotels := make([]hotelbeds.Hotel, 7)
	for i := range hotels {
		hotels[i] = hotelbeds.Hotel{Code: 1000 + i, Name: fmt.Sprintf("Hotel %d", i), MinRate: "80.00"}
	}
	f.provider.On("SearchHotels", mock.Anything, mock.Anything).Return(availability(hotels...), nil)
	f.provider.On("HotelDetails", mock.Anything, mock.Anything).
		Return(&hotelbeds.DetailsResponse{}, nil)
	f.currencies.On("ListCurrencies", mock.Anything).Return(nil, errors.New("table empty"))

	summaries, err := f.svc.Search(context.Background(), hotelSearchRequest())
	require.NoError(t, err)
	assert.Len(t, summaries, 5)
	assert.Empty(t, summaries[0].Quotes)
	f.provider.AssertNumberOfCalls(t, "HotelDetails", 5)
}

func TestHotelSearch_ContentFailureKeepsAvailability(t *testing.T) {
	f := newHotelFixture()
	f.provider.On("SearchHotels", mock.Anything, mock.Anything).
		Return(availability(
			hotelbeds.Hotel{Code: 1, Name: "No Sheet", MinRate: "60.00"},
			hotelbeds.Hotel{Code: 2, Name: "Bad Rate", MinRate: "n/a"},
		), nil)
	f.provider.On("HotelDetails", mock.Anything, "1").Return(nil, errors.New("content down"))
	f.currencies.On("ListCurrencies", mock.Anything).Return(conversionTable(), nil)

	summaries, err := f.svc.Search(context.Background(), hotelSearchRequest())
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "No Sheet", summaries[0].Name)
	assert.Nil(t, summaries[0].Details)
}

func TestHotelDetails_FlattensContentSheet(t *testing.T) {
	f := newHotelFixture()

	free, paid := false, true
	content := hotelbeds.HotelContent{
		Code:       4951,
		PostalCode: "1000",
		Rooms: []hotelbeds.ContentRoom{
			{RoomCode: "DBT.ST", Description: "Double Standard", MinPax: 1, MaxPax: 2},
			{RoomCode: "TPL.DBL-1", Description: "Triple", MinPax: 1, MaxPax: 3},
		},
		Images: []hotelbeds.Image{
			contentImage("00/004951/room-st.jpg", "Room", "DBT.ST", "ST"),
			contentImage("00/004951/room-dbl.jpg", "Room", "", "DBL"),
			contentImage("00/004951/lobby.jpg", "General view", "", ""),
			contentImage("00/004951/pool.jpg", "Pool", "", ""),
		},
		Facilities: []hotelbeds.Facility{
			{Description: hotelbeds.Content{Content: "Wi-Fi"}, IndFee: &free},
			{Description: hotelbeds.Content{Content: "Parking"}, IndFee: &paid},
			{Description: hotelbeds.Content{Content: "Year built"}},
		},
		InterestPoints: []hotelbeds.InterestPoint{{PoiName: "Rizal Park", Distance: "350"}},
	}
	content.Name.Content = "Pearl Manila"
	f.provider.On("HotelDetails", mock.Anything, "4951").
		Return(&hotelbeds.DetailsResponse{Hotel: content}, nil)

	details, err := f.svc.Details(context.Background(), "4951")
	require.NoError(t, err)

	assert.Equal(t, "4951", details.HotelCode)
	assert.Equal(t, "Pearl Manila", details.HotelName)

	require.Len(t, details.Rooms, 2)
	// direct room-code match
	assert.Equal(t, []string{"https://photos.hotelbeds.com/giata/00/004951/room-st.jpg"}, details.Rooms[0].Images)
	// no image carries the TPL room code; the DBL characteristic matches
	assert.Equal(t, []string{"https://photos.hotelbeds.com/giata/00/004951/room-dbl.jpg"}, details.Rooms[1].Images)

	assert.Equal(t, []string{"https://photos.hotelbeds.com/giata/00/004951/lobby.jpg"}, details.GeneralImages)
	require.Len(t, details.OtherImages, 1)
	assert.Equal(t, "Pool", details.OtherImages[0].Name)

	assert.Equal(t, []string{"Wi-Fi"}, details.FreeFacilities)
	assert.Equal(t, []string{"Parking"}, details.PaidFacilities)

	require.Len(t, details.ClosestPlaces, 1)
	assert.Equal(t, "350m", details.ClosestPlaces[0].Distance)
}

func TestHotelDestinations_MapsCatalogue(t *testing.T) {
	f := newHotelFixture()
	resp := &hotelbeds.DestinationsResponse{
		Total: 1,
		Destinations: []hotelbeds.DestinationEntry{
			{Code: "MNL", Name: hotelbeds.Content{Content: "Manila"}, IsoCode: "PH", CountryCode: "PH"},
		},
	}
	f.provider.On("ListDestinations", mock.Anything).Return(resp, nil)

	destinations, err := f.svc.Destinations(context.Background())
	require.NoError(t, err)
	require.Len(t, destinations, 1)
	assert.Equal(t, domain.HotelDestination{Code: "MNL", Name: "Manila", IsoCode: "PH", CountryCode: "PH"}, destinations[0])
}
