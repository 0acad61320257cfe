package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/wb-go/wbf/ginext"

	"github.com/pr-poehali-dev/loft-massage-site/internal/content"
	"github.com/pr-poehali-dev/loft-massage-site/internal/domain"
	"github.com/pr-poehali-dev/loft-massage-site/internal/flow"
	"github.com/pr-poehali-dev/loft-massage-site/internal/handler/dto"
)

type BookingSvc interface {
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	AvailableSlots(ctx context.Context, date string) ([]string, error)
	AdminList(ctx context.Context, status, date string) ([]*domain.Booking, error)
	GetByToken(ctx context.Context, token string) (*domain.Booking, error)
	CancelByID(ctx context.Context, id int64) (domain.CancelResult, error)
	CancelByToken(ctx context.Context, token string) (domain.CancelResult, error)
}

type Catalog interface {
	Services() []domain.Service
	Gallery() []string
	Certificates() []string
	Contacts() content.Contacts
}

type Handler struct {
	bookingService BookingSvc
	catalog        Catalog
}

func NewHandler(bookingService BookingSvc, catalog Catalog) *Handler {
	return &Handler{
		bookingService: bookingService,
		catalog:        catalog,
	}
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "all fields are required"})
		return
	}

	booking, err := h.bookingService.Create(c.Request.Context(), domain.CreateBookingInput{
		Service:       req.Service,
		BookingDate:   req.BookingDate,
		BookingTime:   req.BookingTime,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

// GetBookings serves both lookups of the bookings endpoint: with ?token= it
// resolves a single booking for the public cancellation flow, without it it
// lists bookings for the admin panel (optionally filtered by ?status= and
// ?date=).
func (h *Handler) GetBookings(c *ginext.Context) {
	if token := c.Query("token"); token != "" {
		booking, err := h.bookingService.GetByToken(c.Request.Context(), token)
		if err != nil {
			h.handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
		return
	}

	bookings, err := h.bookingService.AdminList(c.Request.Context(), c.Query("status"), c.Query("date"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

// CancelBooking cancels by ?token= (public link) or ?id= (admin). An
// already-cancelled booking is a 200 with already_cancelled set, matching
// the terminal flow state, not an error.
func (h *Handler) CancelBooking(c *ginext.Context) {
	ctx := c.Request.Context()

	var (
		res domain.CancelResult
		err error
	)

	switch {
	case c.Query("token") != "":
		res, err = h.bookingService.CancelByToken(ctx, c.Query("token"))
	case c.Query("id") != "":
		id, parseErr := strconv.ParseInt(c.Query("id"), 10, 64)
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
			return
		}
		res, err = h.bookingService.CancelByID(ctx, id)
	default:
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "token or id is required"})
		return
	}

	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CancelResponse{
		Message:          "booking cancelled",
		AlreadyCancelled: res.AlreadyCancelled,
		Booking:          dto.ToBookingResponse(res.Booking),
	})
}

// Slots

func (h *Handler) GetSlots(c *ginext.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "date is required"})
		return
	}

	slots, err := h.bookingService.AvailableSlots(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, domain.ErrClosedDay) {
			c.JSON(http.StatusOK, dto.SlotsResponse{Date: date, Closed: true, Slots: []string{}})
			return
		}
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SlotsResponse{Date: date, Closed: false, Slots: slots})
}

// Services

func (h *Handler) ListServices(c *ginext.Context) {
	services := h.catalog.Services()

	resp := make([]dto.ServiceResponse, 0, len(services))
	for _, s := range services {
		resp = append(resp, dto.ToServiceResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

// Pages

func (h *Handler) IndexPage(c *ginext.Context) {
	c.HTML(http.StatusOK, "index.html", ginext.H{
		"Services":     h.catalog.Services(),
		"Gallery":      h.catalog.Gallery(),
		"Certificates": h.catalog.Certificates(),
		"Contacts":     h.catalog.Contacts(),
	})
}

func (h *Handler) AdminPage(c *ginext.Context) {
	c.HTML(http.StatusOK, "admin.html", nil)
}

// CancelPage resolves the ?token= and renders the cancellation flow at its
// starting state: pending confirmation, already cancelled, or not found.
func (h *Handler) CancelPage(c *ginext.Context) {
	token := c.Query("token")

	var (
		booking *domain.Booking
		err     error
	)
	if token == "" {
		err = domain.ErrBookingNotFound
	} else {
		booking, err = h.bookingService.GetByToken(c.Request.Context(), token)
	}

	state := flow.Resolve(booking, err)

	data := ginext.H{
		"State":    state.String(),
		"Token":    token,
		"Terminal": state.Terminal(),
	}
	if booking != nil {
		data["Booking"] = booking
	}

	c.HTML(http.StatusOK, "cancel.html", data)
}

// CancelSubmit performs the confirmed cancellation and renders the flow at
// its final state. A failed request is not terminal: the page offers the
// same confirmation again.
func (h *Handler) CancelSubmit(c *ginext.Context) {
	token := c.PostForm("token")

	res, err := h.bookingService.CancelByToken(c.Request.Context(), token)
	state := flow.AfterCancel(res, err)

	data := ginext.H{
		"State":    state.String(),
		"Token":    token,
		"Terminal": state.Terminal(),
	}
	if res.Booking != nil {
		data["Booking"] = res.Booking
	}

	c.HTML(http.StatusOK, "cancel.html", data)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSlotTaken),
		errors.Is(err, domain.ErrAlreadyCancelled):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrPastDate),
		errors.Is(err, domain.ErrClosedDay),
		errors.Is(err, domain.ErrInvalidSlot),
		errors.Is(err, domain.ErrServiceNotFound):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
