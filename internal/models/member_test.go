package models

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestNextDueDate(t *testing.T) {
	cases := []struct {
		from, want time.Time
	}{
		{date(2025, time.June, 15), date(2025, time.July, 15)},
		{date(2025, time.December, 15), date(2026, time.January, 15)},
		{date(2025, time.January, 15), date(2025, time.February, 15)},
	}
	for _, c := range cases {
		if got := NextDueDate(c.from); !got.Equal(c.want) {
			t.Errorf("NextDueDate(%v) = %v, want %v", c.from, got, c.want)
		}
	}
}

func TestRenewIsCycleBased(t *testing.T) {
	m := Member{Username: "john_doe", Status: MemberStatusExpired, DueDate: date(2025, time.June, 15)}

	// The wall clock at renewal time must not influence the next due date.
	renewedAt := date(2025, time.September, 3)
	if err := m.Renew(renewedAt); err != nil {
		t.Fatalf("renew: %v", err)
	}

	if want := date(2025, time.July, 15); !m.DueDate.Equal(want) {
		t.Errorf("due date = %v, want %v", m.DueDate, want)
	}
	if m.Status != MemberStatusActive {
		t.Errorf("status = %q, want active", m.Status)
	}
	if m.LastPayment == nil || !m.LastPayment.Equal(renewedAt) {
		t.Errorf("last payment = %v, want %v", m.LastPayment, renewedAt)
	}
}

func TestRenewRejectsSuspended(t *testing.T) {
	m := Member{Status: MemberStatusSuspended, DueDate: date(2025, time.June, 15)}
	if err := m.Renew(time.Now()); err != ErrMemberSuspended {
		t.Fatalf("renew suspended error = %v, want ErrMemberSuspended", err)
	}
	if !m.DueDate.Equal(date(2025, time.June, 15)) {
		t.Errorf("due date changed on failed renew")
	}
}

func TestReactivate(t *testing.T) {
	m := Member{Status: MemberStatusSuspended, DueDate: date(2025, time.July, 15)}
	m.Reactivate(date(2025, time.July, 1))
	if m.Status != MemberStatusActive {
		t.Errorf("status = %q, want active", m.Status)
	}

	m = Member{Status: MemberStatusSuspended, DueDate: date(2025, time.June, 15)}
	m.Reactivate(date(2025, time.July, 1))
	if m.Status != MemberStatusExpired {
		t.Errorf("status = %q, want expired for lapsed cycle", m.Status)
	}

	// No-op on non-suspended members.
	m = Member{Status: MemberStatusActive, DueDate: date(2025, time.July, 15)}
	m.Reactivate(date(2025, time.July, 1))
	if m.Status != MemberStatusActive {
		t.Errorf("reactivate touched an active member")
	}
}
