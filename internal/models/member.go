package models

import (
	"errors"
	"time"
)

// Member statuses.
const (
	MemberStatusActive    = "active"
	MemberStatusExpired   = "expired"
	MemberStatusSuspended = "suspended"
)

// BillingDay is the day of month every subscription cycle is anchored to.
const BillingDay = 15

var ErrMemberSuspended = errors.New("member is suspended")

// Member is a recurring subscription identity with a monthly billing cycle.
type Member struct {
	BaseModel
	Name         string     `json:"name"`
	Phone        string     `json:"phone"`
	Username     string     `gorm:"uniqueIndex" json:"username"`
	PasswordHash string     `json:"-"`
	RxSpeed      string     `json:"rx_speed"`
	TxSpeed      string     `json:"tx_speed"`
	DeviceLimit  int        `json:"device_limit"`
	Price        int        `json:"price"`
	Status       string     `gorm:"index;default:active" json:"status"`
	DueDate      time.Time  `json:"due_date"`
	LastPayment  *time.Time `json:"last_payment"`
}

// NextDueDate returns the 15th of the month following the given due date.
// Renewal is cycle-based: the anchor is the current due date, never the wall
// clock at the time the renewal is requested.
func NextDueDate(from time.Time) time.Time {
	return time.Date(from.Year(), from.Month()+1, BillingDay, 0, 0, 0, 0, from.Location())
}

// Renew advances the billing cycle by one month and reactivates the member.
// Suspended members must be reactivated explicitly first.
func (m *Member) Renew(now time.Time) error {
	if m.Status == MemberStatusSuspended {
		return ErrMemberSuspended
	}
	m.DueDate = NextDueDate(m.DueDate)
	m.Status = MemberStatusActive
	m.LastPayment = &now
	return nil
}

// Suspend takes the member out of service until explicitly reactivated.
func (m *Member) Suspend() {
	m.Status = MemberStatusSuspended
}

// Reactivate lifts a suspension. The member comes back as active when the due
// date is still ahead, expired otherwise.
func (m *Member) Reactivate(now time.Time) {
	if m.Status != MemberStatusSuspended {
		return
	}
	if now.After(m.DueDate) {
		m.Status = MemberStatusExpired
	} else {
		m.Status = MemberStatusActive
	}
}

// Overdue reports whether the member's cycle has lapsed.
func (m *Member) Overdue(now time.Time) bool {
	return now.After(m.DueDate)
}
