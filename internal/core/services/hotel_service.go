package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/epicquest/travel-backend/internal/apperrors"
	"github.com/epicquest/travel-backend/internal/core/domain"
	svcports "github.com/epicquest/travel-backend/internal/core/ports/services"
	"github.com/epicquest/travel-backend/internal/dto"
	"github.com/epicquest/travel-backend/internal/hotels/hotelbeds"
	"github.com/epicquest/travel-backend/internal/middleware"
)

// Availability rates arrive in EUR; the back-office currency table stores
// units per USD. Quotes are produced for the display currencies only.
const (
	maxShownHotels   = 5
	rateBaseCurrency = "EUR"
	imageBaseURL     = "https://photos.hotelbeds.com/giata/"
)

var quoteCurrencies = []string{"USD", "PHP"}

// hotelService drives the hotel pipeline: availability search capped to the
// best matches, content enrichment per hotel, and display-quote conversion.
type hotelService struct {
	provider   svcports.HotelProvider
	currencies svcports.CurrencyService
}

var _ svcports.HotelService = (*hotelService)(nil)

// NewHotelService wires the hotel pipeline.
func NewHotelService(provider svcports.HotelProvider, currencies svcports.CurrencyService) svcports.HotelService {
	return &hotelService{provider: provider, currencies: currencies}
}

// Search shops availability and enriches each hit. A hotel whose rate cannot
// be parsed is dropped; a hotel whose content sheet cannot be fetched keeps
// its availability entry without details.
func (s *hotelService) Search(ctx context.Context, req dto.HotelSearchRequest) ([]domain.HotelSummary, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Stay.CheckOut <= req.Stay.CheckIn {
		return nil, fmt.Errorf("%w: check-out must follow check-in", apperrors.ErrValidation)
	}

	resp, err := s.provider.SearchHotels(ctx, req.ToProvider())
	if err != nil {
		return nil, fmt.Errorf("hotel availability failed: %w", err)
	}

	hotels := resp.Hotels.Hotels
	if len(hotels) > maxShownHotels {
		hotels = hotels[:maxShownHotels]
	}

	rates := s.loadRates(ctx)

	summaries := make([]domain.HotelSummary, 0, len(hotels))
	for _, h := range hotels {
		minRate, err := decimal.NewFromString(h.MinRate)
		if err != nil {
			logger.WarnContext(ctx, "hotel dropped, unparseable rate",
				slog.Int("hotelCode", h.Code),
				slog.String("minRate", h.MinRate),
			)
			continue
		}

		currency := h.Currency
		if currency == "" {
			currency = rateBaseCurrency
		}
		summary := domain.HotelSummary{
			HotelCode:       strconv.Itoa(h.Code),
			Name:            h.Name,
			Rating:          h.CategoryName,
			DestinationName: h.DestinationName,
			ZoneName:        h.ZoneName,
			MinRate:         minRate,
			RateCurrency:    currency,
			Quotes:          quoteRates(minRate, rates),
		}

		details, err := s.Details(ctx, summary.HotelCode)
		if err != nil {
			logger.WarnContext(ctx, "hotel content unavailable",
				slog.String("hotelCode", summary.HotelCode),
				slog.String("error", err.Error()),
			)
		} else {
			summary.Details = details
		}
		summaries = append(summaries, summary)
	}

	logger.InfoContext(ctx, "hotel search served",
		slog.Int("received", resp.Hotels.Total),
		slog.Int("returned", len(summaries)),
	)
	return summaries, nil
}

// Details fetches and flattens one hotel's content sheet.
func (s *hotelService) Details(ctx context.Context, hotelCode string) (*domain.HotelDetails, error) {
	resp, err := s.provider.HotelDetails(ctx, hotelCode)
	if err != nil {
		return nil, fmt.Errorf("hotel content lookup failed: %w", err)
	}
	return normalizeHotelContent(&resp.Hotel), nil
}

// Destinations lists the bookable destination catalogue.
func (s *hotelService) Destinations(ctx context.Context) ([]domain.HotelDestination, error) {
	resp, err := s.provider.ListDestinations(ctx)
	if err != nil {
		return nil, fmt.Errorf("destination catalogue failed: %w", err)
	}
	out := make([]domain.HotelDestination, 0, len(resp.Destinations))
	for _, d := range resp.Destinations {
		out = append(out, domain.HotelDestination{
			Code:        d.Code,
			Name:        d.Name.Content,
			IsoCode:     d.IsoCode,
			CountryCode: d.CountryCode,
		})
	}
	return out, nil
}

// loadRates maps currency code to its per-USD value. A missing table skips
// quoting rather than failing the search.
func (s *hotelService) loadRates(ctx context.Context) map[string]decimal.Decimal {
	list, err := s.currencies.ListCurrencies(ctx)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).WarnContext(ctx, "currency table unavailable, quotes skipped",
			slog.String("error", err.Error()),
		)
		return nil
	}
	rates := make(map[string]decimal.Decimal, len(list))
	for _, c := range list {
		rates[c.Code] = c.Value
	}
	return rates
}

// quoteRates converts a base-currency rate into the display currencies. The
// table stores units per USD, so target over base converts from the base.
func quoteRates(rate decimal.Decimal, rates map[string]decimal.Decimal) []domain.HotelQuote {
	base, ok := rates[rateBaseCurrency]
	if !ok || base.IsZero() {
		return nil
	}
	quotes := make([]domain.HotelQuote, 0, len(quoteCurrencies))
	for _, cur := range quoteCurrencies {
		target, ok := rates[cur]
		if !ok {
			if cur != "USD" {
				continue
			}
			target = decimal.NewFromInt(1)
		}
		quotes = append(quotes, domain.HotelQuote{
			Currency: cur,
			Price:    target.Div(base).Mul(rate).Round(2),
		})
	}
	return quotes
}

// normalizeHotelContent flattens the provider's content sheet.
func normalizeHotelContent(h *hotelbeds.HotelContent) *domain.HotelDetails {
	d := &domain.HotelDetails{
		HotelCode:     strconv.Itoa(h.Code),
		HotelName:     h.Name.Content,
		Description:   h.Description.Content,
		Country:       h.Country.Description.Content,
		State:         h.State.Name,
		Destination:   h.Destination.Name.Content,
		Zone:          h.Zone.Name,
		Rating:        h.Category.Description.Content,
		CategoryGroup: h.CategoryGroup.Description.Content,
		Address:       h.Address.Content,
		PostCode:      h.PostalCode,
		City:          h.City.Content,
	}

	for _, b := range h.Boards {
		d.Boards = append(d.Boards, b.Description.Content)
	}
	for _, seg := range h.Segments {
		d.Segments = append(d.Segments, seg.Description.Content)
	}
	for _, p := range h.InterestPoints {
		d.ClosestPlaces = append(d.ClosestPlaces, domain.PointOfInterest{
			PlaceName: p.PoiName,
			Distance:  p.Distance.String() + "m",
		})
	}

	for _, room := range h.Rooms {
		d.Rooms = append(d.Rooms, domain.HotelRoom{
			RoomCode:    room.RoomCode,
			Description: room.Description,
			MinPax:      room.MinPax,
			MaxPax:      room.MaxPax,
			MinAdults:   room.MinAdults,
			MaxAdults:   room.MaxAdults,
			MaxChildren: room.MaxChildren,
			Images:      roomImages(h.Images, room.RoomCode),
		})
	}

	for _, img := range h.Images {
		switch kind := img.Type.Description.Content; kind {
		case "Room":
			// matched per room above
		case "General view":
			d.GeneralImages = append(d.GeneralImages, imageBaseURL+img.Path)
		default:
			d.OtherImages = append(d.OtherImages, domain.HotelImage{
				URL:  imageBaseURL + img.Path,
				Name: kind,
			})
		}
	}

	for _, f := range h.Facilities {
		if f.IndFee == nil || f.Description.Content == "" {
			continue
		}
		if *f.IndFee {
			d.PaidFacilities = append(d.PaidFacilities, f.Description.Content)
		} else {
			d.FreeFacilities = append(d.FreeFacilities, f.Description.Content)
		}
	}
	return d
}

// roomImages picks the room photos matching a room code, falling back to the
// characteristic code shared by similar rooms when no direct match exists.
func roomImages(images []hotelbeds.Image, roomCode string) []string {
	var out []string
	for _, img := range images {
		if img.Type.Description.Content == "Room" && img.RoomCode == roomCode {
			out = append(out, imageBaseURL+img.Path)
		}
	}
	if len(out) > 0 {
		return out
	}

	code := characteristicOf(roomCode)
	if code == "" {
		return out
	}
	for _, img := range images {
		if img.Type.Description.Content == "Room" && img.CharacteristicCode == code {
			out = append(out, imageBaseURL+img.Path)
		}
	}
	return out
}

// characteristicOf extracts "DBL" from a room code like "DBT.DBL-1".
func characteristicOf(roomCode string) string {
	_, rest, ok := strings.Cut(roomCode, ".")
	if !ok {
		return ""
	}
	code, _, _ := strings.Cut(rest, "-")
	return code
}
