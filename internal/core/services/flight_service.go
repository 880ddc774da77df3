package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/epicquest/travel-backend/internal/apperrors"
	"github.com/epicquest/travel-backend/internal/cache"
	"github.com/epicquest/travel-backend/internal/core/domain"
	repoports "github.com/epicquest/travel-backend/internal/core/ports/repositories"
	svcports "github.com/epicquest/travel-backend/internal/core/ports/services"
	"github.com/epicquest/travel-backend/internal/dto"
	"github.com/epicquest/travel-backend/internal/gds/amadeus"
	"github.com/epicquest/travel-backend/internal/middleware"
	"github.com/epicquest/travel-backend/internal/utils"
)

// flightService drives the offer pipeline against the GDS: shopping with a
// short-TTL cache, fare confirmation, the two-phase booking flow, and the
// guarded cancel.
type flightService struct {
	provider   svcports.GdsProvider
	normalizer svcports.OfferNormalizer
	bookings   repoports.BookingRepository
	gdsRefs    repoports.GdsRefRepository
	ledger     svcports.LedgerService
	cache      cache.SearchCache
	now        func() time.Time
}

var _ svcports.FlightService = (*flightService)(nil)

// NewFlightService wires the pipeline. A nil cache disables caching; a nil
// clock uses time.Now.
func NewFlightService(
	provider svcports.GdsProvider,
	normalizer svcports.OfferNormalizer,
	bookings repoports.BookingRepository,
	gdsRefs repoports.GdsRefRepository,
	ledger svcports.LedgerService,
	searchCache cache.SearchCache,
	now func() time.Time,
) svcports.FlightService {
	if searchCache == nil {
		searchCache = cache.NoOpCache{}
	}
	if now == nil {
		now = time.Now
	}
	return &flightService{
		provider:   provider,
		normalizer: normalizer,
		bookings:   bookings,
		gdsRefs:    gdsRefs,
		ledger:     ledger,
		cache:      searchCache,
		now:        now,
	}
}

// Search validates the query and shops the provider. Provider failures are
// logged and degrade to an empty result set.
func (s *flightService) Search(ctx context.Context, query domain.SearchQuery) ([]domain.CanonicalOffer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validateQuery(query); err != nil {
		return nil, err
	}

	if offers, ok := s.cache.Get(ctx, query); ok {
		logger.InfoContext(ctx, "search served from cache", slog.Int("offers", len(offers)))
		return offers, nil
	}

	resp, err := s.provider.Search(ctx, query)
	if err != nil {
		logger.WarnContext(ctx, "provider search failed, returning empty result", slog.String("error", err.Error()))
		return []domain.CanonicalOffer{}, nil
	}

	offers := s.normalizer.NormalizeSearch(resp)
	logger.InfoContext(ctx, "search normalized",
		slog.Int("received", len(resp.Data)),
		slog.Int("usable", len(offers)),
	)

	if len(offers) > 0 {
		s.cache.Set(ctx, query, offers)
	}
	return offers, nil
}

func validateQuery(q domain.SearchQuery) error {
	if q.TripType != domain.OneWay && q.TripType != domain.RoundTrip {
		return fmt.Errorf("%w: unknown journey type %q", apperrors.ErrValidation, q.TripType)
	}
	if q.Origin == q.Destination {
		return fmt.Errorf("%w: origin and destination are the same", apperrors.ErrValidation)
	}
	if q.TripType == domain.RoundTrip {
		if q.ReturnDate == "" {
			return fmt.Errorf("%w: round trip requires a return date", apperrors.ErrValidation)
		}
		if q.ReturnDate < q.DepartureDate {
			return fmt.Errorf("%w: return date precedes departure", apperrors.ErrValidation)
		}
	}
	if q.Infants > q.Adults {
		return fmt.Errorf("%w: each lap infant needs an adult", apperrors.ErrValidation)
	}
	return nil
}

// Price confirms the offer's current fare and booking requirements.
func (s *flightService) Price(ctx context.Context, rawOffer json.RawMessage) (*domain.PricedOffer, error) {
	resp, err := s.provider.Price(ctx, rawOffer)
	if err != nil {
		return nil, fmt.Errorf("fare confirmation failed: %w", err)
	}
	return s.normalizer.NormalizePricing(resp)
}

// Book runs the two-phase booking flow. The owner comes from the verified
// bearer token, never from the request body. The provider order is created
// first; from that point on the id mapping row is the recovery anchor, and
// any later failure surfaces as ErrUnreconciled rather than retrying upstream.
func (s *flightService) Book(ctx context.Context, owner domain.OwnerRef, req dto.BookFlightRequest) (*domain.BookingRecord, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if owner.IsZero() {
		return nil, fmt.Errorf("%w: booking needs an authenticated owner", apperrors.ErrValidation)
	}

	travelers := make([]domain.Traveler, 0, len(req.Travellers))
	for _, t := range req.Travellers {
		travelers = append(travelers, t.ToDomain())
	}

	hold := s.normalizer.BookingHold(lastTicketTime(req.AirFareData))

	created, err := s.provider.CreateOrder(ctx, req.AirFareData, travelers, hold)
	if err != nil {
		var provErr *amadeus.ProviderError
		if errors.As(err, &provErr) {
			return nil, fmt.Errorf("%w: order creation rejected: %s", apperrors.ErrConflict, provErr.Payload)
		}
		// transport failure: the order may or may not exist upstream
		return nil, fmt.Errorf("%w: order creation outcome unknown: %v", apperrors.ErrIndeterminate, err)
	}

	bookingID, err := utils.NewBookingID()
	if err != nil {
		return nil, s.unreconciled(ctx, created.Data.ID, "failed to mint booking id", err)
	}

	ref := domain.GdsBookingRef{
		BookingID:       bookingID,
		GdsID:           created.Data.ID,
		QueuingOfficeID: created.Data.QueuingOfficeID,
	}
	ref.CreatedAt = s.now()
	ref.LastUpdatedAt = ref.CreatedAt
	if err := s.gdsRefs.SaveRef(ctx, ref); err != nil {
		return nil, s.unreconciled(ctx, created.Data.ID, "failed to register order mapping", err)
	}

	retrieved, err := s.provider.RetrieveOrder(ctx, created.Data.ID)
	if err != nil {
		return nil, s.unreconciled(ctx, created.Data.ID, "failed to retrieve created order", err)
	}
	order, err := s.normalizer.NormalizeOrder(retrieved)
	if err != nil {
		return nil, s.unreconciled(ctx, created.Data.ID, "failed to normalize created order", err)
	}

	// Settlement: the net price leaves the owner's balance before the record
	// is written. An insufficient balance voids the order upstream.
	if _, err := s.ledger.DebitForBooking(ctx, owner, order.Offer.NetPrice, order.Offer.FareCurrency); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			if cancelErr := s.provider.CancelOrder(ctx, created.Data.ID); cancelErr != nil {
				return nil, s.unreconciled(ctx, created.Data.ID, "order void after failed settlement also failed", cancelErr)
			}
			return nil, fmt.Errorf("%w: insufficient balance for booking", apperrors.ErrConflict)
		}
		return nil, s.unreconciled(ctx, created.Data.ID, "settlement failed", err)
	}

	record := domain.BookingRecord{
		BookingID:       bookingID,
		OfferID:         order.Offer.OfferID,
		System:          order.Offer.System,
		Status:          domain.StatusBooked,
		BookingDateTime: order.BookingDateTime,
		TripType:        order.TripType,
		GdsPNR:          order.GdsPNR,
		AirlinePNR:      order.AirlinePNR,
		Offer:           order.Offer,
		Travellers:      order.Travellers,
		Owner:           owner,
	}
	if len(record.Travellers) == 0 {
		record.Travellers = travelers
	}
	record.CreatedAt = s.now()
	record.LastUpdatedAt = record.CreatedAt

	if err := s.bookings.SaveBooking(ctx, record); err != nil {
		return nil, s.unreconciled(ctx, created.Data.ID, "failed to persist booking", err)
	}

	logger.InfoContext(ctx, "booking created",
		slog.String("bookingID", bookingID),
		slog.String("gdsPNR", record.GdsPNR),
	)
	return &record, nil
}

func (s *flightService) unreconciled(ctx context.Context, gdsID, msg string, err error) error {
	middleware.GetLoggerFromCtx(ctx).ErrorContext(ctx, msg,
		slog.String("gdsID", gdsID),
		slog.String("error", err.Error()),
	)
	return fmt.Errorf("%w: %s: %v", apperrors.ErrUnreconciled, msg, err)
}

// Cancel voids the order upstream, then flips the record. The conditional
// status flip makes concurrent cancels resolve to exactly one winner.
func (s *flightService) Cancel(ctx context.Context, bookingID string) (*domain.BookingRecord, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	booking, err := s.bookings.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != domain.StatusBooked {
		return nil, fmt.Errorf("%w: booking %s is %s", apperrors.ErrNotCancellable, bookingID, booking.Status)
	}

	ref, err := s.gdsRefs.GetRefByBookingID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: booking %s has no provider mapping", apperrors.ErrNotFound, bookingID)
		}
		return nil, err
	}

	if err := s.provider.CancelOrder(ctx, ref.GdsID); err != nil {
		var provErr *amadeus.ProviderError
		if errors.As(err, &provErr) {
			return nil, fmt.Errorf("%w: provider refused cancellation: %s", apperrors.ErrConflict, provErr.Payload)
		}
		return nil, fmt.Errorf("%w: cancellation outcome unknown: %v", apperrors.ErrIndeterminate, err)
	}

	if err := s.bookings.MarkCancelled(ctx, bookingID); err != nil {
		return nil, err
	}

	booking.Status = domain.StatusCancelled
	booking.LastUpdatedAt = s.now()
	logger.InfoContext(ctx, "booking cancelled", slog.String("bookingID", bookingID))
	return booking, nil
}

// lastTicketTime pulls the ticketing deadline out of the raw offer without
// failing the flow on malformed input; an empty string defaults the hold.
func lastTicketTime(raw json.RawMessage) string {
	var offer amadeus.FlightOffer
	if err := json.Unmarshal(raw, &offer); err != nil {
		return ""
	}
	if offer.LastTicketingDateTime != "" {
		return offer.LastTicketingDateTime
	}
	return offer.LastTicketingDate
}
