package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/epicquest/travel-backend/internal/apperrors"
	"github.com/epicquest/travel-backend/internal/core/domain"
	svcports "github.com/epicquest/travel-backend/internal/core/ports/services"
	"github.com/epicquest/travel-backend/internal/gds/amadeus"
	"github.com/epicquest/travel-backend/internal/refdata"
)

const (
	defaultCheckedBagKg = 20
	defaultCabinBagKg   = 7
	serviceFeeRate      = "0.05"
)

// offerNormalizer folds provider shopping, pricing and order payloads into
// the canonical offer shape. Reference lookups come from the arena built at
// startup; the clock is injectable for the booking-hold computation.
type offerNormalizer struct {
	lookup refdata.Lookup
	now    func() time.Time
}

var _ svcports.OfferNormalizer = (*offerNormalizer)(nil)

// NewOfferNormalizer builds the normalizer. A nil clock uses time.Now.
func NewOfferNormalizer(lookup refdata.Lookup, now func() time.Time) svcports.OfferNormalizer {
	if now == nil {
		now = time.Now
	}
	return &offerNormalizer{lookup: lookup, now: now}
}

// NormalizeSearch maps every usable offer. Offers requiring instant
// ticketing are excluded; offers that fail integrity checks are dropped
// rather than failing the batch.
func (n *offerNormalizer) NormalizeSearch(resp *amadeus.SearchResponse) []domain.CanonicalOffer {
	offers := make([]domain.CanonicalOffer, 0, len(resp.Data))
	for i := range resp.Data {
		if resp.Data[i].InstantTicketingRequired {
			continue
		}
		offer, err := n.normalizeOffer(&resp.Data[i])
		if err != nil {
			continue
		}
		offers = append(offers, *offer)
	}
	return offers
}

// NormalizePricing maps the confirmed offer plus the booking requirements
// the order step will enforce.
func (n *offerNormalizer) NormalizePricing(resp *amadeus.PricingResponse) (*domain.PricedOffer, error) {
	if len(resp.Data.FlightOffers) == 0 {
		return nil, fmt.Errorf("%w: pricing response carries no offer", apperrors.ErrOfferIntegrity)
	}
	offer, err := n.normalizeOffer(&resp.Data.FlightOffers[0])
	if err != nil {
		return nil, err
	}

	priced := &domain.PricedOffer{
		CanonicalOffer:  *offer,
		BookingHoldDays: n.BookingHold(offer.LastTicketTime),
	}
	if reqs := resp.Data.BookingRequirements; reqs != nil {
		for _, tr := range reqs.TravelerRequirements {
			priced.PassportRequired = priced.PassportRequired || tr.DocumentRequired
			priced.DateOfBirthRequired = priced.DateOfBirthRequired || tr.DateOfBirthRequired
		}
	}
	return priced, nil
}

// NormalizeOrder maps a created or retrieved order into the fields the
// booking record freezes.
func (n *offerNormalizer) NormalizeOrder(resp *amadeus.OrderResponse) (*domain.NormalizedOrder, error) {
	order := resp.Data
	if order.ID == "" {
		return nil, fmt.Errorf("%w: order response carries no id", apperrors.ErrOfferIntegrity)
	}
	if len(order.FlightOffers) == 0 {
		return nil, fmt.Errorf("%w: order %s carries no offer", apperrors.ErrOfferIntegrity, order.ID)
	}

	offer, err := n.normalizeOffer(&order.FlightOffers[0])
	if err != nil {
		return nil, err
	}

	out := &domain.NormalizedOrder{
		GdsID:           order.ID,
		QueuingOfficeID: order.QueuingOfficeID,
		TripType:        offer.TripType,
		Offer:           *offer,
	}

	// The airline record is first; the GDS record follows when the provider
	// returns both. A single record serves as both references.
	if len(order.AssociatedRecords) > 0 {
		out.AirlinePNR = order.AssociatedRecords[0].Reference
		out.GdsPNR = order.AssociatedRecords[0].Reference
		out.BookingDateTime = order.AssociatedRecords[0].CreationDate
	}
	if len(order.AssociatedRecords) > 1 {
		out.GdsPNR = order.AssociatedRecords[1].Reference
		out.BookingDateTime = order.AssociatedRecords[1].CreationDate
	}

	for _, t := range order.Travelers {
		out.Travellers = append(out.Travellers, orderTravelerToDomain(t))
	}
	return out, nil
}

func orderTravelerToDomain(t amadeus.OrderTraveler) domain.Traveler {
	d := domain.Traveler{
		FirstName: t.Name.FirstName,
		LastName:  t.Name.LastName,
		Gender:    t.Gender,
		Email:     t.Contact.EmailAddress,
	}
	if t.DateOfBirth != "" {
		dob := t.DateOfBirth
		d.DateOfBirth = &dob
	}
	if len(t.Contact.Phones) > 0 {
		d.CountryCallingCode = t.Contact.Phones[0].CountryCallingCode
		d.Phone = t.Contact.Phones[0].Number
	}
	if len(t.Documents) > 0 {
		doc := t.Documents[0]
		d.PassportNumber = &doc.Number
		d.PassportExpiry = &doc.ExpiryDate
		d.IssuanceCountry = &doc.IssuanceCountry
		d.ValidityCountry = &doc.ValidityCountry
		d.Nationality = &doc.Nationality
	}
	return d
}

// normalizeOffer builds one canonical offer. Any structural defect surfaces
// as an ErrOfferIntegrity wrapped error and the offer never reaches callers.
func (n *offerNormalizer) normalizeOffer(src *amadeus.FlightOffer) (*domain.CanonicalOffer, error) {
	if len(src.Itineraries) == 0 {
		return nil, fmt.Errorf("%w: offer %s has no itineraries", apperrors.ErrOfferIntegrity, src.ID)
	}
	if len(src.TravelerPricings) == 0 {
		return nil, fmt.Errorf("%w: offer %s has no traveler pricings", apperrors.ErrOfferIntegrity, src.ID)
	}

	base, err := decimal.NewFromString(src.Price.Base)
	if err != nil {
		return nil, fmt.Errorf("%w: offer %s base fare %q: %v", apperrors.ErrOfferIntegrity, src.ID, src.Price.Base, err)
	}
	total, err := decimal.NewFromString(src.Price.Total)
	if err != nil {
		return nil, fmt.Errorf("%w: offer %s total fare %q: %v", apperrors.ErrOfferIntegrity, src.ID, src.Price.Total, err)
	}

	tripType := domain.OneWay
	if len(src.Itineraries) > 1 {
		tripType = domain.RoundTrip
	}

	fareDetails := indexFareDetails(src.TravelerPricings[0])

	outbound, err := n.normalizeLeg(src.ID, src.Itineraries[0], fareDetails)
	if err != nil {
		return nil, err
	}

	offer := &domain.CanonicalOffer{
		System:         domain.GdsSystem,
		OfferID:        src.ID,
		TripType:       tripType,
		BasePrice:      base,
		Taxes:          total.Sub(base),
		Price:          total,
		NetPrice:       withServiceFee(total),
		FareCurrency:   src.Price.Currency,
		Outbound:       *outbound,
		SeatsRemaining: src.NumberOfBookableSeats,
		Refundable:     isRefundable(src.TravelerPricings),
		RawOffer:       src.Raw,
	}

	if tripType == domain.RoundTrip {
		inbound, err := n.normalizeLeg(src.ID, src.Itineraries[1], fareDetails)
		if err != nil {
			return nil, err
		}
		offer.Inbound = inbound
	}

	for _, it := range src.Itineraries {
		offer.SegmentCount += len(it.Segments)
	}

	if len(src.ValidatingAirlineCodes) > 0 {
		offer.Carrier = src.ValidatingAirlineCodes[0]
		offer.CarrierName = n.lookup.AirlineByCode(offer.Carrier).Name
	}

	offer.LastTicketTime = src.LastTicketingDateTime
	if offer.LastTicketTime == "" {
		offer.LastTicketTime = src.LastTicketingDate
	}

	if fd, ok := fareDetails[src.Itineraries[0].Segments[0].ID]; ok {
		offer.CabinClass = strings.ToLower(fd.Cabin)
	}

	offer.PriceBreakdown = buildPaxFares(src.TravelerPricings)
	offer.Stopovers = n.collectStopovers(src.Itineraries)

	return offer, nil
}

// normalizeLeg maps one itinerary. Transit gaps between consecutive segments
// must be non-negative; anything else marks the offer corrupt.
func (n *offerNormalizer) normalizeLeg(offerID string, it amadeus.Itinerary, fareDetails map[string]amadeus.FareSegmentDetail) (*domain.FlightLeg, error) {
	if len(it.Segments) == 0 {
		return nil, fmt.Errorf("%w: offer %s has an empty itinerary", apperrors.ErrOfferIntegrity, offerID)
	}

	first, last := it.Segments[0], it.Segments[len(it.Segments)-1]
	depDate, depTime := splitAt(first.Departure.At)
	arrDate, arrTime := splitAt(last.Arrival.At)

	leg := &domain.FlightLeg{
		Departure:     first.Departure.IataCode,
		DepartureDate: depDate,
		DepartureTime: depTime,
		Arrival:       last.Arrival.IataCode,
		ArrivalDate:   arrDate,
		ArrivalTime:   arrTime,
		Duration:      formatISODuration(it.Duration),
		Segments:      make([]domain.Segment, 0, len(it.Segments)),
	}

	for i, seg := range it.Segments {
		leg.Segments = append(leg.Segments, n.normalizeSegment(seg, fareDetails[seg.ID]))

		if i == 0 {
			continue
		}
		gap, err := transitGap(it.Segments[i-1].Arrival.At, seg.Departure.At)
		if err != nil {
			return nil, fmt.Errorf("%w: offer %s: %v", apperrors.ErrOfferIntegrity, offerID, err)
		}
		if leg.Transit == nil {
			leg.Transit = make(map[string]string, len(it.Segments)-1)
		}
		leg.Transit[fmt.Sprintf("transit%d", i)] = gap
	}
	return leg, nil
}

func (n *offerNormalizer) normalizeSegment(seg amadeus.Segment, fd amadeus.FareSegmentDetail) domain.Segment {
	out := domain.Segment{
		MarketingCarrier:     seg.CarrierCode,
		MarketingCarrierName: n.lookup.AirlineByCode(seg.CarrierCode).Name,
		FlightNumber:         seg.Number,
		Departure:            n.segmentPoint(seg.Departure),
		Arrival:              n.segmentPoint(seg.Arrival),
		Duration:             formatISODuration(seg.Duration),
		BookingClass:         fd.Class,
		Cabin:                fd.Cabin,
		BaggageKg:            baggageKg(fd.IncludedCheckedBags, defaultCheckedBagKg),
	}
	// A missing operating block means the marketing airline flies the
	// segment itself; the operating fields stay empty.
	if seg.Operating != nil {
		out.OperatingCarrier = seg.Operating.CarrierCode
		out.OperatingCarrierName = n.lookup.AirlineByCode(seg.Operating.CarrierCode).Name
	}
	for _, a := range fd.Amenities {
		out.Amenities = append(out.Amenities, domain.Amenity{
			Description:  a.Description,
			IsChargeable: a.IsChargeable,
		})
	}
	return out
}

func (n *offerNormalizer) segmentPoint(ep amadeus.SegmentEndpoint) domain.SegmentPoint {
	airport := n.lookup.AirportByCode(ep.IataCode)
	return domain.SegmentPoint{
		Code:     ep.IataCode,
		Airport:  airport.Name,
		Location: airport.Location(),
		At:       ep.At,
	}
}

func (n *offerNormalizer) collectStopovers(itineraries []amadeus.Itinerary) []domain.Stopover {
	var stops []domain.Stopover
	for _, it := range itineraries {
		for _, seg := range it.Segments {
			for _, s := range seg.Stops {
				airport := n.lookup.AirportByCode(s.IataCode)
				arrDate, arrTime := splitAt(s.ArrivalAt)
				depDate, depTime := splitAt(s.DepartureAt)
				stops = append(stops, domain.Stopover{
					Code:          s.IataCode,
					Name:          airport.Name,
					Location:      airport.Location(),
					Duration:      formatISODuration(s.Duration),
					ArrivalDate:   arrDate,
					ArrivalTime:   arrTime,
					DepartureDate: depDate,
					DepartureTime: depTime,
				})
			}
		}
	}
	return stops
}

// BookingHold is the whole days remaining until the ticketing deadline,
// clamped to [0, MaxBookingHoldDays]. An absent or unparseable deadline
// yields zero and the order step falls back to its default hold.
func (n *offerNormalizer) BookingHold(lastTicketTime string) int {
	deadline, err := parseProviderTime(lastTicketTime)
	if err != nil {
		return 0
	}
	days := int(deadline.Sub(n.now()).Hours() / 24)
	if days < 0 {
		return 0
	}
	if days > domain.MaxBookingHoldDays {
		return domain.MaxBookingHoldDays
	}
	return days
}

// --- helpers ---

func indexFareDetails(tp amadeus.TravelerPricing) map[string]amadeus.FareSegmentDetail {
	out := make(map[string]amadeus.FareSegmentDetail, len(tp.FareDetailsBySegment))
	for _, fd := range tp.FareDetailsBySegment {
		out[fd.SegmentID] = fd
	}
	return out
}

// baggageKg resolves an allowance to kilograms. Weight and piece count
// multiply when both are present; a bare piece count falls back to the
// conventional per-piece weight; no allowance means zero.
func baggageKg(b *amadeus.BaggageAllowance, perPieceKg int) int {
	if b == nil {
		return 0
	}
	switch {
	case b.Weight != nil && b.Quantity != nil:
		return *b.Weight * *b.Quantity
	case b.Weight != nil:
		return *b.Weight
	case b.Quantity != nil:
		return *b.Quantity * perPieceKg
	default:
		return 0
	}
}

// withServiceFee adds the 5% service margin, rounded to cents, on top of the
// provider total.
func withServiceFee(total decimal.Decimal) decimal.Decimal {
	fee := total.Mul(decimal.RequireFromString(serviceFeeRate)).Round(2)
	return total.Add(fee)
}

// isRefundable scans every fare amenity across travelers and segments; the
// fare counts as refundable only on an explicit REFUNDABLE marker.
func isRefundable(pricings []amadeus.TravelerPricing) bool {
	for _, tp := range pricings {
		for _, fd := range tp.FareDetailsBySegment {
			for _, a := range fd.Amenities {
				if strings.Contains(strings.ToUpper(a.Description), "REFUNDABLE") {
					return true
				}
			}
		}
	}
	return false
}

func buildPaxFares(pricings []amadeus.TravelerPricing) []domain.PaxFare {
	var fares []domain.PaxFare
	index := make(map[string]int)
	for _, tp := range pricings {
		if i, ok := index[tp.TravelerType]; ok {
			fares[i].PaxCount++
			continue
		}

		base, errBase := decimal.NewFromString(tp.Price.Base)
		total, errTotal := decimal.NewFromString(tp.Price.Total)
		if errBase != nil || errTotal != nil {
			continue
		}

		fare := domain.PaxFare{
			PaxType:  tp.TravelerType,
			PaxCount: 1,
			BaseFare: base,
			Tax:      total.Sub(base),
		}
		if len(tp.FareDetailsBySegment) > 0 {
			fd := tp.FareDetailsBySegment[0]
			fare.CheckedBagKg = baggageKg(fd.IncludedCheckedBags, defaultCheckedBagKg)
			fare.CabinBagKg = baggageKg(fd.IncludedCabinBags, defaultCabinBagKg)
		}
		index[tp.TravelerType] = len(fares)
		fares = append(fares, fare)
	}
	return fares
}

// formatISODuration rewrites an ISO-8601 duration like "PT2H30M" into the
// display form "2H 30Min".
func formatISODuration(d string) string {
	return strings.TrimSpace(strings.NewReplacer("PT", "", "H", "H ", "M", "Min").Replace(d))
}

// transitGap measures the ground time between an arrival and the following
// departure. A negative gap means the provider payload is inconsistent.
func transitGap(arriveAt, departAt string) (string, error) {
	arrive, err := parseProviderTime(arriveAt)
	if err != nil {
		return "", fmt.Errorf("bad arrival time %q", arriveAt)
	}
	depart, err := parseProviderTime(departAt)
	if err != nil {
		return "", fmt.Errorf("bad departure time %q", departAt)
	}

	gap := depart.Sub(arrive)
	if gap < 0 {
		return "", fmt.Errorf("negative transit between %q and %q", arriveAt, departAt)
	}
	return fmt.Sprintf("%dH %dMin", int(gap.Hours()), int(gap.Minutes())%60), nil
}

// parseProviderTime accepts the provider's zone-less timestamps and bare
// dates.
func parseProviderTime(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", s)
}

// splitAt divides a provider timestamp into its date and time parts.
func splitAt(at string) (date, clock string) {
	date, clock, _ = strings.Cut(at, "T")
	return date, clock
}
