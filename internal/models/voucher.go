package models

import (
	"errors"
	"time"
)

// Voucher statuses. A voucher starts active and moves to used or expired
// exactly once; neither transition ever reverts.
const (
	VoucherStatusActive  = "active"
	VoucherStatusUsed    = "used"
	VoucherStatusExpired = "expired"
)

// Redemption failures surfaced to the portal as domain errors.
var (
	ErrVoucherUsed    = errors.New("voucher already used")
	ErrVoucherExpired = errors.New("voucher expired")
)

// Voucher is a single-use access credential granting a fixed time allotment.
type Voucher struct {
	BaseModel
	Code            string     `gorm:"uniqueIndex;size:5" json:"code"`
	Type            string     `json:"type"`
	DurationMinutes int        `json:"duration_minutes"`
	Price           int        `json:"price"`
	Status          string     `gorm:"index;default:active" json:"status"`
	Comment         string     `gorm:"index" json:"comment"`
	UsedAt          *time.Time `json:"used_at"`
}

// Redeem performs the active->used transition. It fails without mutating the
// voucher when the status is anything but active.
func (v *Voucher) Redeem(now time.Time) error {
	switch v.Status {
	case VoucherStatusActive:
	case VoucherStatusUsed:
		return ErrVoucherUsed
	case VoucherStatusExpired:
		return ErrVoucherExpired
	default:
		return errors.New("voucher is not redeemable")
	}

	v.Status = VoucherStatusUsed
	v.UsedAt = &now
	return nil
}
