package bot

import (
	"context"
	"fmt"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/pr-poehali-dev/loft-massage-site/internal/domain"
	"github.com/pr-poehali-dev/loft-massage-site/internal/flow"
	"github.com/pr-poehali-dev/loft-massage-site/internal/schedule"
)

// inputDateLayout is what clients type in chat, DD.MM.YYYY.
const inputDateLayout = "02.01.2006"

type bookingCreator interface {
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	AvailableSlots(ctx context.Context, date string) ([]string, error)
}

type serviceCatalog interface {
	Services() []domain.Service
}

// Bot runs the chat booking wizard over long polling. Each chat owns one
// draft; the draft itself decides which step comes next.
type Bot struct {
	api     *tgbotapi.BotAPI
	booking bookingCreator
	catalog serviceCatalog
	week    schedule.Week
	logger  logger.Logger
	now     func() time.Time
	send    func(msg tgbotapi.Chattable) (tgbotapi.Message, error)

	mu     sync.Mutex
	drafts map[int64]*flow.Draft
}

func New(
	api *tgbotapi.BotAPI,
	booking bookingCreator,
	catalog serviceCatalog,
	week schedule.Week,
	logger logger.Logger,
) *Bot {
	return &Bot{
		api:     api,
		booking: booking,
		catalog: catalog,
		week:    week,
		logger:  logger,
		now:     time.Now,
		send:    api.Send,
		drafts:  make(map[int64]*flow.Draft),
	}
}

func (b *Bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	updates := b.api.GetUpdatesChan(u)

	b.logger.Info("telegram bot started", logger.String("username", b.api.Self.UserName))

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.logger.Info("telegram bot stopped")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	switch msg.Command() {
	case "start":
		b.reply(chatID, "👋 Привет! Я бот для записи на массаж.\n\nИспользуйте команду /book для записи на сеанс.", removeKeyboard())
		return
	case "book":
		b.setDraft(chatID, &flow.Draft{})
		b.askService(chatID)
		return
	case "cancel":
		b.clearDraft(chatID)
		b.reply(chatID, "❌ Запись отменена.\nИспользуйте /book для новой записи.", removeKeyboard())
		return
	}

	draft, ok := b.draft(chatID)
	if !ok {
		b.reply(chatID, "Используйте команду /book для записи на сеанс.", removeKeyboard())
		return
	}

	switch draft.Step() {
	case flow.StepService:
		b.stepService(chatID, draft, msg.Text)
	case flow.StepDate:
		b.stepDate(ctx, chatID, draft, msg.Text)
	case flow.StepTime:
		b.stepTime(chatID, draft, msg.Text)
	case flow.StepContact:
		b.stepContact(ctx, chatID, draft, msg)
	}
}

func (b *Bot) askService(chatID int64) {
	services := b.catalog.Services()
	rows := make([][]tgbotapi.KeyboardButton, 0, len(services))
	for _, s := range services {
		rows = append(rows, tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(s.Title)))
	}
	kb := tgbotapi.NewReplyKeyboard(rows...)
	kb.ResizeKeyboard = true

	b.reply(chatID, "📝 Начнем запись!\n\nВыберите услугу:", kb)
}

func (b *Bot) stepService(chatID int64, draft *flow.Draft, text string) {
	for _, s := range b.catalog.Services() {
		if s.Title == text {
			draft.SelectService(text)
			b.setDraft(chatID, draft)
			b.reply(chatID, "Укажите желаемую дату записи.\nФормат: ДД.ММ.ГГГГ (например, 25.10.2025)", removeKeyboard())
			return
		}
	}
	b.reply(chatID, "Пожалуйста, выберите услугу кнопкой на клавиатуре.", nil)
}

func (b *Bot) stepDate(ctx context.Context, chatID int64, draft *flow.Draft, text string) {
	parsed, err := time.Parse(inputDateLayout, text)
	if err != nil {
		b.reply(chatID, "❌ Неверный формат даты. Используйте формат ДД.ММ.ГГГГ\nНапример: 25.10.2025", nil)
		return
	}

	date := parsed.Format(domain.DateLayout)
	if err := draft.SelectDate(b.now(), date); err != nil {
		b.reply(chatID, "❌ Эта дата уже прошла. Укажите дату в будущем.", nil)
		return
	}

	slots, err := b.booking.AvailableSlots(ctx, date)
	if err != nil {
		// The date selection must be undone, otherwise the next message
		// would be read as a slot for a day that has none.
		draft.ClearDate()
		b.setDraft(chatID, draft)
		b.reply(chatID, "В этот день салон не работает. Укажите другую дату.", nil)
		return
	}
	if len(slots) == 0 {
		draft.ClearDate()
		b.setDraft(chatID, draft)
		b.reply(chatID, "На эту дату всё занято. Укажите другую дату.", nil)
		return
	}

	b.setDraft(chatID, draft)
	b.reply(chatID, "Выберите удобное время:", slotsKeyboard(slots))
}

func (b *Bot) stepTime(chatID int64, draft *flow.Draft, text string) {
	if err := draft.SelectTime(b.week, text); err != nil {
		b.reply(chatID, "❌ Такого слота нет. Выберите время кнопкой на клавиатуре.", nil)
		return
	}

	b.setDraft(chatID, draft)
	b.reply(chatID, "Как вас зовут?", removeKeyboard())
}

func (b *Bot) stepContact(ctx context.Context, chatID int64, draft *flow.Draft, msg *tgbotapi.Message) {
	if draft.Name == "" {
		draft.SetName(msg.Text)
		b.setDraft(chatID, draft)

		kb := tgbotapi.NewReplyKeyboard(
			tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButtonContact("📱 Отправить номер")),
		)
		kb.ResizeKeyboard = true
		b.reply(chatID, fmt.Sprintf("Приятно познакомиться, %s!\n\nПоделитесь своим номером телефона:", msg.Text), kb)
		return
	}

	phone := msg.Text
	if msg.Contact != nil {
		phone = msg.Contact.PhoneNumber
	}
	draft.SetPhone(phone)

	if !draft.Ready() {
		b.clearDraft(chatID)
		b.reply(chatID, "Что-то пошло не так. Начните заново: /book", removeKeyboard())
		return
	}

	booking, err := b.booking.Create(ctx, draft.Input())
	b.clearDraft(chatID)
	if err != nil {
		b.logger.Error("bot booking failed", logger.String("error", err.Error()))
		b.reply(chatID, "❌ Это время уже занято или недоступно. Начните заново: /book", removeKeyboard())
		return
	}

	confirmation := fmt.Sprintf(
		"✅ Ваша запись принята!\n\n"+
			"💆 Услуга: %s\n"+
			"👤 Имя: %s\n"+
			"📱 Телефон: %s\n"+
			"📅 Дата: %s\n"+
			"🕐 Время: %s\n\n"+
			"Скоро с вами свяжется мастер для подтверждения.",
		booking.Service, booking.CustomerName, booking.CustomerPhone,
		booking.BookingDate, booking.BookingTime,
	)
	b.reply(chatID, confirmation, removeKeyboard())
}

func (b *Bot) reply(chatID int64, text string, markup interface{}) {
	msg := tgbotapi.NewMessage(chatID, text)
	if markup != nil {
		msg.ReplyMarkup = markup
	}
	if _, err := b.send(msg); err != nil {
		b.logger.Error("failed to send bot reply",
			logger.Int64("chat_id", chatID),
			logger.String("error", err.Error()),
		)
	}
}

func slotsKeyboard(slots []string) tgbotapi.ReplyKeyboardMarkup {
	rows := make([][]tgbotapi.KeyboardButton, 0, (len(slots)+1)/2)
	for i := 0; i < len(slots); i += 2 {
		row := []tgbotapi.KeyboardButton{tgbotapi.NewKeyboardButton(slots[i])}
		if i+1 < len(slots) {
			row = append(row, tgbotapi.NewKeyboardButton(slots[i+1]))
		}
		rows = append(rows, row)
	}
	kb := tgbotapi.NewReplyKeyboard(rows...)
	kb.ResizeKeyboard = true
	return kb
}

func removeKeyboard() tgbotapi.ReplyKeyboardRemove {
	return tgbotapi.NewRemoveKeyboard(true)
}

func (b *Bot) draft(chatID int64) (*flow.Draft, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	d, ok := b.drafts[chatID]
	return d, ok
}

func (b *Bot) setDraft(chatID int64, d *flow.Draft) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.drafts[chatID] = d
}

func (b *Bot) clearDraft(chatID int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.drafts, chatID)
}
