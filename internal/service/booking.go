package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/pr-poehali-dev/loft-massage-site/internal/domain"
	"github.com/pr-poehali-dev/loft-massage-site/internal/flow"
	"github.com/pr-poehali-dev/loft-massage-site/internal/schedule"
	"github.com/pr-poehali-dev/loft-massage-site/internal/service/ports"
)

// StatusFilterAll accepts every booking regardless of status.
const StatusFilterAll = "all"

type BookingService struct {
	repo     ports.BookingRepo
	catalog  ports.ServiceCatalog
	notifier ports.AdminNotifier
	week     schedule.Week
	logger   logger.Logger
	now      func() time.Time
}

func NewBookingService(
	repo ports.BookingRepo,
	catalog ports.ServiceCatalog,
	notifier ports.AdminNotifier,
	week schedule.Week,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		repo:     repo,
		catalog:  catalog,
		notifier: notifier,
		week:     week,
		logger:   logger,
		now:      time.Now,
	}
}

// Create validates the payload by replaying it through the booking wizard,
// so the server enforces exactly the transitions the wizard allows: a known
// service, a date no earlier than today, a slot the schedule produces for
// that date, and non-empty contact fields.
func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	var draft flow.Draft
	draft.SelectService(input.Service)

	if input.BookingDate == "" || input.BookingTime == "" {
		return nil, fmt.Errorf("%w: all fields are required", domain.ErrValidation)
	}
	if err := draft.SelectDate(s.now(), input.BookingDate); err != nil {
		return nil, fmt.Errorf("select date: %w", err)
	}
	if err := draft.SelectTime(s.week, input.BookingTime); err != nil {
		return nil, fmt.Errorf("select time: %w", err)
	}
	draft.SetName(input.CustomerName)
	draft.SetPhone(input.CustomerPhone)

	if !draft.Ready() {
		return nil, fmt.Errorf("%w: all fields are required", domain.ErrValidation)
	}
	if _, ok := s.catalog.ServiceByTitle(draft.Service); !ok {
		return nil, domain.ErrServiceNotFound
	}

	token, err := newCancelToken()
	if err != nil {
		return nil, fmt.Errorf("cancel token: %w", err)
	}

	payload := draft.Input()
	booking := &domain.Booking{
		Service:       payload.Service,
		BookingDate:   payload.BookingDate,
		BookingTime:   payload.BookingTime,
		CustomerName:  payload.CustomerName,
		CustomerPhone: payload.CustomerPhone,
		Status:        domain.BookingStatusActive,
		CancelToken:   token,
	}

	if err = s.repo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.Int64("booking_id", booking.ID),
		logger.String("service", booking.Service),
		logger.String("date", booking.BookingDate),
		logger.String("time", booking.BookingTime),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), booking)

	return booking, nil
}

// AvailableSlots returns the schedule's slots for the date minus the times
// already held by active bookings. Closed days surface domain.ErrClosedDay
// so callers render "day off" rather than an empty list.
func (s *BookingService) AvailableSlots(ctx context.Context, date string) ([]string, error) {
	parsed, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date", domain.ErrValidation)
	}

	slots, err := s.week.SlotsFor(parsed)
	if err != nil {
		return nil, err
	}

	booked, err := s.repo.BookedTimes(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("booked times: %w", err)
	}

	taken := make(map[string]struct{}, len(booked))
	for _, t := range booked {
		taken[t] = struct{}{}
	}

	free := make([]string, 0, len(slots))
	for _, slot := range slots {
		if _, ok := taken[slot]; !ok {
			free = append(free, slot)
		}
	}

	return free, nil
}

// AdminList fetches every booking and applies the admin filters: status
// (all/active/cancelled) and exact calendar date. The result is sorted
// ascending by date, then by slot time of day.
func (s *BookingService) AdminList(ctx context.Context, status, date string) ([]*domain.Booking, error) {
	if status != "" && status != StatusFilterAll &&
		status != string(domain.BookingStatusActive) && status != string(domain.BookingStatusCancelled) {
		return nil, fmt.Errorf("%w: unknown status filter %q", domain.ErrValidation, status)
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	filtered := make([]*domain.Booking, 0, len(all))
	for _, b := range all {
		if status != "" && status != StatusFilterAll && string(b.Status) != status {
			continue
		}
		if date != "" && b.BookingDate != date {
			continue
		}
		filtered = append(filtered, b)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].BookingDate != filtered[j].BookingDate {
			return filtered[i].BookingDate < filtered[j].BookingDate
		}
		// Slot labels are not zero-padded ("9:00"), so compare by time of
		// day rather than lexicographically.
		return slotMinutes(filtered[i].BookingTime) < slotMinutes(filtered[j].BookingTime)
	})

	return filtered, nil
}

func slotMinutes(label string) int {
	m, err := schedule.ParseLabel(label)
	if err != nil {
		return 0
	}
	return m
}

func (s *BookingService) GetByToken(ctx context.Context, token string) (*domain.Booking, error) {
	if token == "" {
		return nil, domain.ErrBookingNotFound
	}
	return s.repo.GetByToken(ctx, token)
}

// CancelByID cancels a booking from the admin panel. A booking that is
// already cancelled is a terminal no-op reported in the result, not an
// error.
func (s *BookingService) CancelByID(ctx context.Context, id int64) (domain.CancelResult, error) {
	booking, err := s.repo.CancelByID(ctx, id)
	return s.cancelResult(ctx, booking, err, logger.Int64("booking_id", id))
}

// CancelByToken cancels a booking via the public cancellation link.
func (s *BookingService) CancelByToken(ctx context.Context, token string) (domain.CancelResult, error) {
	if token == "" {
		return domain.CancelResult{}, domain.ErrBookingNotFound
	}
	booking, err := s.repo.CancelByToken(ctx, token)
	return s.cancelResult(ctx, booking, err, logger.String("via", "token"))
}

func (s *BookingService) cancelResult(ctx context.Context, booking *domain.Booking, err error, attr logger.Attr) (domain.CancelResult, error) {
	if errors.Is(err, domain.ErrAlreadyCancelled) {
		return domain.CancelResult{Booking: booking, AlreadyCancelled: true}, nil
	}
	if err != nil {
		return domain.CancelResult{}, err
	}

	s.logger.Info("booking cancelled",
		logger.Int64("booking_id", booking.ID),
		attr,
	)

	go s.notifier.NotifyBookingCancelled(context.WithoutCancel(ctx), booking)

	return domain.CancelResult{Booking: booking}, nil
}

// DailyDigest sends the admin chat today's active bookings.
func (s *BookingService) DailyDigest(ctx context.Context) (int, error) {
	today := s.now().Format(domain.DateLayout)

	bookings, err := s.AdminList(ctx, string(domain.BookingStatusActive), today)
	if err != nil {
		return 0, fmt.Errorf("daily digest: %w", err)
	}

	s.notifier.NotifyDailySchedule(ctx, today, bookings)

	return len(bookings), nil
}

func newCancelToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
