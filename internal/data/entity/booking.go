package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusAssigned   BookingStatus = "assigned"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

// legalTransitions is the full life cycle:
// pending -> assigned -> in_progress -> completed | cancelled.
// Terminal states have no outgoing transitions and states cannot be skipped.
var legalTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:    {BookingStatusAssigned},
	BookingStatusAssigned:   {BookingStatusInProgress},
	BookingStatusInProgress: {BookingStatusCompleted, BookingStatusCancelled},
}

// CanTransition reports whether moving from s to next is legal
func (s BookingStatus) CanTransition(next BookingStatus) bool {
	for _, allowed := range legalTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether s has no outgoing transitions
func (s BookingStatus) IsTerminal() bool {
	return len(legalTransitions[s]) == 0
}

// IsValid reports whether s is a known status value
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusAssigned, BookingStatusInProgress,
		BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

type BookingAddress struct {
	Street   string  `db:"street" json:"street"`
	City     string  `db:"city" json:"city"`
	State    string  `db:"state" json:"state"`
	Pincode  string  `db:"pincode" json:"pincode"`
	Landmark *string `db:"landmark" json:"landmark,omitempty"`
}

// Booking is immutable after creation in its services, total_price and
// address fields; only the status advances. The services slice is an owned
// snapshot of the submitted items, independent of any live cart.
type Booking struct {
	Base
	CustomerID    uuid.UUID      `db:"customer_id"`
	CustomerName  string         `db:"customer_name"`
	CustomerPhone string         `db:"customer_phone"`
	Services      []CartItem     `db:"services"`
	TotalPrice    float64        `db:"total_price"`
	Status        BookingStatus  `db:"status"`
	ScheduledAt   time.Time      `db:"scheduled_at"`
	Address       BookingAddress `db:"-"`
	Images        []string       `db:"images"`
}
