package service

import (
	"errors"
	"fmt"
	"time"

	"Wayn-App/internal/domain/model"
)

// ErrInsufficientPoints is returned when the visitor asked to spend
// points but holds fewer than the spend cost.
var ErrInsufficientPoints = errors.New("ليس لديك نقاط كافية!")

// QuotaExhaustedError is returned when the daily attempts are used up
// and the request did not opt into spending points. It carries the
// balance so the handler can hint whether spending is even possible.
type QuotaExhaustedError struct {
	Points         int
	CanSpendPoints bool
}

func (e *QuotaExhaustedError) Error() string {
	return fmt.Sprintf("لقد استهلكت محاولاتك اليومية (%d). عُد غدًا أو استخدم %d نقاط للمزيد.",
		model.DefaultDailyAttempts, model.SpendCost)
}

// QuotaLedger gates each suggestion request against the per-user daily
// allowance, with the points-based override. All mutations land on the
// in-memory user; the caller persists them in one write after the
// suggestion fetch succeeds.
type QuotaLedger struct{}

// NewQuotaLedger creates a new QuotaLedger.
func NewQuotaLedger() *QuotaLedger {
	return &QuotaLedger{}
}

// Authorize decides whether the request may proceed and applies the
// attempt decrement or point debit to the in-memory user. On a denial
// no counter is mutated.
func (l *QuotaLedger) Authorize(user *model.User, spendPoints bool, now time.Time) error {
	// New calendar day: the allowance resets before anything else.
	if !sameDay(user.LastSuggestionDate, now) {
		user.DailyAttempts = model.DefaultDailyAttempts
	}

	if user.DailyAttempts > 0 {
		user.DailyAttempts--
		return nil
	}

	if !spendPoints {
		return &QuotaExhaustedError{
			Points:         user.Points,
			CanSpendPoints: user.Points >= model.SpendCost,
		}
	}

	if user.Points < model.SpendCost {
		return ErrInsufficientPoints
	}

	user.Points -= model.SpendCost
	return nil
}

// Settle records the successful suggestion on the in-memory user:
// stamps the request time and rewards one point, unless this request
// was itself paid for with points.
func (l *QuotaLedger) Settle(user *model.User, spendPoints bool, now time.Time) {
	t := now
	user.LastSuggestionDate = &t
	if !spendPoints {
		user.Points++
	}
}

// sameDay compares two dates on the server's local calendar.
func sameDay(d *time.Time, now time.Time) bool {
	if d == nil {
		return false
	}
	y1, m1, day1 := d.Date()
	y2, m2, day2 := now.Date()
	return y1 == y2 && m1 == m2 && day1 == day2
}
