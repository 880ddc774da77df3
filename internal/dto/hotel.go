package dto

import "github.com/epicquest/travel-backend/internal/hotels/hotelbeds"

// HotelStayRequest bounds the requested nights. The check-out ordering rule
// is enforced in the service layer.
type HotelStayRequest struct {
	CheckIn  string `json:"checkIn" binding:"required,datetime=2006-01-02"`
	CheckOut string `json:"checkOut" binding:"required,datetime=2006-01-02"`
}

// HotelOccupancyRequest is one requested room configuration.
type HotelOccupancyRequest struct {
	Rooms    int `json:"rooms" binding:"required,min=1"`
	Adults   int `json:"adults" binding:"required,min=1"`
	Children int `json:"children" binding:"omitempty,min=0"`
}

// HotelDestinationRequest names the searched location by its provider code.
type HotelDestinationRequest struct {
	Code string `json:"code" binding:"required"`
}

// HotelSearchRequest is the hotel availability endpoint body.
type HotelSearchRequest struct {
	Stay        HotelStayRequest        `json:"stay" binding:"required"`
	Occupancies []HotelOccupancyRequest `json:"occupancies" binding:"required,min=1,dive"`
	Destination HotelDestinationRequest `json:"destination" binding:"required"`
	Language    string                  `json:"language" binding:"omitempty,len=3"`
	Currency    string                  `json:"currency" binding:"omitempty,len=3"`
}

// ToProvider maps the request to the provider availability body.
func (r HotelSearchRequest) ToProvider() hotelbeds.SearchRequest {
	occupancies := make([]hotelbeds.Occupancy, 0, len(r.Occupancies))
	for _, o := range r.Occupancies {
		occupancies = append(occupancies, hotelbeds.Occupancy{
			Rooms:    o.Rooms,
			Adults:   o.Adults,
			Children: o.Children,
		})
	}
	return hotelbeds.SearchRequest{
		Stay:        hotelbeds.Stay{CheckIn: r.Stay.CheckIn, CheckOut: r.Stay.CheckOut},
		Occupancies: occupancies,
		Destination: hotelbeds.Destination{Code: r.Destination.Code},
		Language:    r.Language,
		Currency:    r.Currency,
	}
}

// HotelDetailsRequest asks for one hotel's content sheet.
type HotelDetailsRequest struct {
	HotelCode string `form:"hotelCode" binding:"required"`
}
