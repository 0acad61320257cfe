package ports

import (
	"context"

	"github.com/pr-poehali-dev/loft-massage-site/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	List(ctx context.Context) ([]*domain.Booking, error)
	BookedTimes(ctx context.Context, date string) ([]string, error)
	GetByToken(ctx context.Context, token string) (*domain.Booking, error)
	CancelByID(ctx context.Context, id int64) (*domain.Booking, error)
	CancelByToken(ctx context.Context, token string) (*domain.Booking, error)
}
