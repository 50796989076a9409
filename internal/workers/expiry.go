package workers

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/example/hotspot/internal/models"
)

// ExpiryWorker runs the time-triggered status transitions: unredeemed
// vouchers past the validity window and members past their due date.
type ExpiryWorker struct {
	db              *gorm.DB
	voucherValidity time.Duration
	interval        time.Duration
}

// NewExpiryWorker builds the worker. voucherValidity of zero disables the
// voucher sweep; there is no default window.
func NewExpiryWorker(db *gorm.DB, voucherValidity, interval time.Duration) *ExpiryWorker {
	return &ExpiryWorker{db: db, voucherValidity: voucherValidity, interval: interval}
}

// Start runs the sweeps until ctx is cancelled.
func (w *ExpiryWorker) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *ExpiryWorker) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("expiry worker stopped")
			return
		case <-ticker.C:
			w.sweep(time.Now())
		}
	}
}

func (w *ExpiryWorker) sweep(now time.Time) {
	if w.voucherValidity > 0 {
		cutoff := now.Add(-w.voucherValidity)
		result := w.db.Model(&models.Voucher{}).
			Where("status = ? AND created_at < ?", models.VoucherStatusActive, cutoff).
			Update("status", models.VoucherStatusExpired)
		if result.Error != nil {
			log.Printf("error expiring vouchers: %v", result.Error)
		} else if result.RowsAffected > 0 {
			log.Printf("marked %d vouchers as expired", result.RowsAffected)
		}
	}

	result := w.db.Model(&models.Member{}).
		Where("status = ? AND due_date < ?", models.MemberStatusActive, now).
		Update("status", models.MemberStatusExpired)
	if result.Error != nil {
		log.Printf("error expiring members: %v", result.Error)
	} else if result.RowsAffected > 0 {
		log.Printf("marked %d members as expired", result.RowsAffected)
	}
}
