package models

import "time"

// Receipt is the priced snapshot of a cart taken at purchase time.
type Receipt struct {
	CartView
	PurchasedAt time.Time `json:"purchased_at"`
}

// Session is one participant's browsing session. It owns its Cart exclusively.
type Session struct {
	ID            string        `json:"id"`
	ParticipantID string        `json:"participant_id"`
	State         CheckoutState `json:"state"`
	Cart          Cart          `json:"cart"`
	LastPurchase  *Receipt      `json:"last_purchase,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func NewSession(id, participantID string, now time.Time) *Session {
	return &Session{
		ID:            id,
		ParticipantID: participantID,
		State:         StateBrowsing,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Clone returns a copy that can be mutated without affecting s.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	out := *s
	out.Cart = s.Cart.Clone()
	if s.LastPurchase != nil {
		r := *s.LastPurchase
		r.Items = append([]CartViewItem(nil), s.LastPurchase.Items...)
		out.LastPurchase = &r
	}
	return &out
}
