package ports

import (
	"context"

	"github.com/pr-poehali-dev/loft-massage-site/internal/domain"
)

type AdminNotifier interface {
	NotifyBookingCreated(ctx context.Context, b *domain.Booking)
	NotifyBookingCancelled(ctx context.Context, b *domain.Booking)
	NotifyDailySchedule(ctx context.Context, date string, bookings []*domain.Booking)
}
