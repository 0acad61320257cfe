package flow

import "github.com/pr-poehali-dev/loft-massage-site/internal/domain"

// CancelState is the public cancellation flow position. Invalid token,
// missing token and lookup failure are deliberately merged into NotFound;
// AlreadyCancelled and Cancelled are render-equivalent terminal states.
type CancelState int

const (
	CancelNotFound CancelState = iota
	CancelPending
	CancelAlreadyCancelled
	CancelCancelled
	CancelFailed
)

func (s CancelState) String() string {
	switch s {
	case CancelNotFound:
		return "not_found"
	case CancelPending:
		return "pending"
	case CancelAlreadyCancelled:
		return "already_cancelled"
	case CancelCancelled:
		return "cancelled"
	case CancelFailed:
		return "failed"
	}
	return "unknown"
}

// Terminal reports whether the flow offers no further action besides
// navigating back to the booking entry point.
func (s CancelState) Terminal() bool {
	return s == CancelAlreadyCancelled || s == CancelCancelled
}

// Resolve maps a token lookup outcome onto the flow state.
func Resolve(b *domain.Booking, err error) CancelState {
	switch {
	case err != nil || b == nil:
		return CancelNotFound
	case b.Status == domain.BookingStatusCancelled:
		return CancelAlreadyCancelled
	default:
		return CancelPending
	}
}

// AfterCancel maps a delete-by-token outcome onto the flow state. A failed
// request returns the flow to pending via CancelFailed so the user can
// retry.
func AfterCancel(res domain.CancelResult, err error) CancelState {
	switch {
	case err != nil:
		return CancelFailed
	case res.AlreadyCancelled:
		return CancelAlreadyCancelled
	default:
		return CancelCancelled
	}
}
