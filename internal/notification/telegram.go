package notification

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/pr-poehali-dev/loft-massage-site/internal/domain"
)

// TelegramNotifier sends admin notifications to a single chat. With an empty
// token the notifier stays up but drops every message, so local runs do not
// need a bot.
type TelegramNotifier struct {
	bot     *tgbotapi.BotAPI
	chatID  int64
	baseURL string
	logger  logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, baseURL string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, chatID: chatID, baseURL: baseURL, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, baseURL: baseURL, logger: logger}, nil
}

// Bot exposes the underlying API client for the booking bot, nil when disabled.
func (n *TelegramNotifier) Bot() *tgbotapi.BotAPI {
	return n.bot
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Новая запись!*\n\n"+
			"Услуга: %s\n"+
			"Дата: %s\n"+
			"Время: %s\n"+
			"Имя: %s\n"+
			"Телефон: %s\n\n"+
			"Отмена: %s/cancel?token=%s",
		b.Service, b.BookingDate, b.BookingTime, b.CustomerName, b.CustomerPhone,
		n.baseURL, b.CancelToken,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Запись отменена*\n\n"+
			"Услуга: %s\n"+
			"Дата: %s\n"+
			"Время: %s\n"+
			"Имя: %s",
		b.Service, b.BookingDate, b.BookingTime, b.CustomerName,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyDailySchedule(ctx context.Context, date string, bookings []*domain.Booking) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "*Расписание на %s*\n\n", date)
	if len(bookings) == 0 {
		sb.WriteString("Записей нет.")
	}
	for _, b := range bookings {
		fmt.Fprintf(&sb, "%s — %s, %s (%s)\n", b.BookingTime, b.Service, b.CustomerName, b.CustomerPhone)
	}
	n.send(ctx, sb.String())
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.chatID == 0 {
		n.logger.Debug("notification skipped (no admin chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
