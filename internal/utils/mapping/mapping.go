// Package mapping converts between database models and domain types.
package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/epicquest/travel-backend/internal/core/domain"
	"github.com/epicquest/travel-backend/internal/models"
)

func ToModelUser(u domain.User) models.User {
	return models.User{
		UserID:        u.UserID,
		Name:          u.Name,
		Email:         u.Email,
		PasswordHash:  u.PasswordHash,
		Phone:         u.Phone,
		IsVerified:    u.IsVerified,
		CreatedAt:     u.CreatedAt,
		LastUpdatedAt: u.LastUpdatedAt,
	}
}

func ToDomainUser(m models.User) domain.User {
	u := domain.User{
		UserID:       m.UserID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Phone:        m.Phone,
		IsVerified:   m.IsVerified,
	}
	u.CreatedAt = m.CreatedAt
	u.LastUpdatedAt = m.LastUpdatedAt
	return u
}

func ToModelWallet(w domain.Wallet) models.Wallet {
	return models.Wallet{
		WalletID:      w.WalletID,
		UserID:        w.UserID,
		Amount:        w.Amount,
		Currency:      w.Currency,
		CreatedAt:     w.CreatedAt,
		LastUpdatedAt: w.LastUpdatedAt,
	}
}

func ToDomainWallet(m models.Wallet) domain.Wallet {
	w := domain.Wallet{
		WalletID: m.WalletID,
		UserID:   m.UserID,
		Amount:   m.Amount,
		Currency: m.Currency,
	}
	w.CreatedAt = m.CreatedAt
	w.LastUpdatedAt = m.LastUpdatedAt
	return w
}

func ToModelAgent(a domain.Agent) models.Agent {
	return models.Agent{
		AgentID:       a.AgentID,
		Name:          a.Name,
		Email:         a.Email,
		PasswordHash:  a.PasswordHash,
		Phone:         a.Phone,
		IsVerified:    a.IsVerified,
		Amount:        a.Amount,
		CreatedAt:     a.CreatedAt,
		LastUpdatedAt: a.LastUpdatedAt,
	}
}

func ToDomainAgent(m models.Agent) domain.Agent {
	a := domain.Agent{
		AgentID:      m.AgentID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Phone:        m.Phone,
		IsVerified:   m.IsVerified,
		Amount:       m.Amount,
	}
	a.CreatedAt = m.CreatedAt
	a.LastUpdatedAt = m.LastUpdatedAt
	return a
}

func ToModelBooking(b domain.BookingRecord) (models.Booking, error) {
	offer, err := json.Marshal(b.Offer)
	if err != nil {
		return models.Booking{}, fmt.Errorf("failed to encode offer snapshot: %w", err)
	}
	travellers, err := json.Marshal(b.Travellers)
	if err != nil {
		return models.Booking{}, fmt.Errorf("failed to encode travellers: %w", err)
	}
	return models.Booking{
		BookingID:       b.BookingID,
		OfferID:         b.OfferID,
		System:          b.System,
		Status:          string(b.Status),
		BookingDateTime: b.BookingDateTime,
		TripType:        string(b.TripType),
		GdsPNR:          b.GdsPNR,
		AirlinePNR:      b.AirlinePNR,
		Offer:           offer,
		Travellers:      travellers,
		UserID:          b.Owner.UserID,
		AgentID:         b.Owner.AgentID,
		CreatedAt:       b.CreatedAt,
		LastUpdatedAt:   b.LastUpdatedAt,
	}, nil
}

func ToDomainBooking(m models.Booking) (domain.BookingRecord, error) {
	b := domain.BookingRecord{
		BookingID:       m.BookingID,
		OfferID:         m.OfferID,
		System:          m.System,
		Status:          domain.BookingStatus(m.Status),
		BookingDateTime: m.BookingDateTime,
		TripType:        domain.TripType(m.TripType),
		GdsPNR:          m.GdsPNR,
		AirlinePNR:      m.AirlinePNR,
		Owner:           domain.OwnerRef{UserID: m.UserID, AgentID: m.AgentID},
	}
	if len(m.Offer) > 0 {
		if err := json.Unmarshal(m.Offer, &b.Offer); err != nil {
			return domain.BookingRecord{}, fmt.Errorf("failed to decode offer snapshot for %s: %w", m.BookingID, err)
		}
	}
	if len(m.Travellers) > 0 {
		if err := json.Unmarshal(m.Travellers, &b.Travellers); err != nil {
			return domain.BookingRecord{}, fmt.Errorf("failed to decode travellers for %s: %w", m.BookingID, err)
		}
	}
	b.CreatedAt = m.CreatedAt
	b.LastUpdatedAt = m.LastUpdatedAt
	return b, nil
}

func ToModelGdsRef(r domain.GdsBookingRef) models.GdsBookingRef {
	return models.GdsBookingRef{
		BookingID:       r.BookingID,
		GdsID:           r.GdsID,
		QueuingOfficeID: r.QueuingOfficeID,
		CreatedAt:       r.CreatedAt,
		LastUpdatedAt:   r.LastUpdatedAt,
	}
}

func ToDomainGdsRef(m models.GdsBookingRef) domain.GdsBookingRef {
	r := domain.GdsBookingRef{
		BookingID:       m.BookingID,
		GdsID:           m.GdsID,
		QueuingOfficeID: m.QueuingOfficeID,
	}
	r.CreatedAt = m.CreatedAt
	r.LastUpdatedAt = m.LastUpdatedAt
	return r
}

func ToModelTransaction(t domain.Transaction) models.Transaction {
	m := models.Transaction{
		TransactionID:  t.TransactionID,
		Currency:       t.Currency,
		Amount:         t.Amount,
		PreviousAmount: t.PreviousAmount,
		UpdatedAmount:  t.UpdatedAmount,
		UserID:         t.Owner.UserID,
		AgentID:        t.Owner.AgentID,
		CreatedAt:      t.CreatedAt,
		LastUpdatedAt:  t.LastUpdatedAt,
	}
	if t.Gateway != nil {
		m.GatewayReference = &t.Gateway.Reference
		m.GatewayID = &t.Gateway.CorrelationID
		m.RiskType = &t.Gateway.RiskType
	}
	return m
}

func ToDomainTransaction(m models.Transaction) domain.Transaction {
	t := domain.Transaction{
		TransactionID:  m.TransactionID,
		Currency:       m.Currency,
		Amount:         m.Amount,
		PreviousAmount: m.PreviousAmount,
		UpdatedAmount:  m.UpdatedAmount,
		Owner:          domain.OwnerRef{UserID: m.UserID, AgentID: m.AgentID},
	}
	if m.GatewayReference != nil || m.GatewayID != nil {
		t.Gateway = &domain.GatewayMeta{}
		if m.GatewayReference != nil {
			t.Gateway.Reference = *m.GatewayReference
		}
		if m.GatewayID != nil {
			t.Gateway.CorrelationID = *m.GatewayID
		}
		if m.RiskType != nil {
			t.Gateway.RiskType = *m.RiskType
		}
	}
	t.CreatedAt = m.CreatedAt
	t.LastUpdatedAt = m.LastUpdatedAt
	return t
}

func ToModelCurrency(c domain.Currency) models.Currency {
	return models.Currency{
		Code:          c.Code,
		Value:         c.Value,
		CreatedAt:     c.CreatedAt,
		LastUpdatedAt: c.LastUpdatedAt,
	}
}

func ToDomainCurrency(m models.Currency) domain.Currency {
	c := domain.Currency{
		Code:  m.Code,
		Value: m.Value,
	}
	c.CreatedAt = m.CreatedAt
	c.LastUpdatedAt = m.LastUpdatedAt
	return c
}
