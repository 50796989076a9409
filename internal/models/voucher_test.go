package models

import (
	"testing"
	"time"
)

func TestRedeemActiveVoucher(t *testing.T) {
	v := Voucher{Code: "1JK9P", Status: VoucherStatusActive, DurationMinutes: 60}
	now := time.Date(2025, 6, 29, 15, 45, 0, 0, time.Local)

	if err := v.Redeem(now); err != nil {
		t.Fatalf("redeem active voucher: %v", err)
	}
	if v.Status != VoucherStatusUsed {
		t.Errorf("status = %q, want used", v.Status)
	}
	if v.UsedAt == nil || !v.UsedAt.Equal(now) {
		t.Errorf("used_at = %v, want %v", v.UsedAt, now)
	}
}

func TestRedeemIsSingleShot(t *testing.T) {
	v := Voucher{Code: "1JK9P", Status: VoucherStatusActive}
	first := time.Date(2025, 6, 29, 15, 45, 0, 0, time.Local)
	if err := v.Redeem(first); err != nil {
		t.Fatalf("first redeem: %v", err)
	}

	if err := v.Redeem(first.Add(time.Hour)); err != ErrVoucherUsed {
		t.Fatalf("second redeem error = %v, want ErrVoucherUsed", err)
	}
	if !v.UsedAt.Equal(first) {
		t.Errorf("used_at changed after failed redeem: %v", v.UsedAt)
	}
}

func TestRedeemRejectsTerminalStates(t *testing.T) {
	stamp := time.Date(2025, 6, 1, 10, 0, 0, 0, time.Local)

	used := Voucher{Code: "3J6NH", Status: VoucherStatusUsed, UsedAt: &stamp}
	if err := used.Redeem(time.Now()); err != ErrVoucherUsed {
		t.Errorf("used voucher error = %v, want ErrVoucherUsed", err)
	}
	if !used.UsedAt.Equal(stamp) {
		t.Errorf("used_at altered on failed redeem")
	}

	expired := Voucher{Code: "6JM7F", Status: VoucherStatusExpired}
	if err := expired.Redeem(time.Now()); err != ErrVoucherExpired {
		t.Errorf("expired voucher error = %v, want ErrVoucherExpired", err)
	}
	if expired.UsedAt != nil {
		t.Errorf("used_at stamped on expired voucher")
	}
	if expired.Status != VoucherStatusExpired {
		t.Errorf("expired voucher status changed to %q", expired.Status)
	}
}
