package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/pr-poehali-dev/loft-massage-site/internal/content"
	"github.com/pr-poehali-dev/loft-massage-site/internal/domain"
	"github.com/pr-poehali-dev/loft-massage-site/internal/handler/dto"
	hmocks "github.com/pr-poehali-dev/loft-massage-site/internal/handler/mocks"
)

func setupRouter(t *testing.T) (*hmocks.MockBookingSvc, http.Handler) {
	t.Helper()
	bookingSvc := hmocks.NewMockBookingSvc(t)

	h := NewHandler(bookingSvc, content.Default())

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings", h.GetBookings)
		api.DELETE("/bookings", h.CancelBooking)
		api.GET("/slots", h.GetSlots)
		api.GET("/services", h.ListServices)
	}

	return bookingSvc, r
}

func setupPagesRouter(t *testing.T) (*hmocks.MockBookingSvc, http.Handler) {
	t.Helper()
	bookingSvc := hmocks.NewMockBookingSvc(t)

	h := NewHandler(bookingSvc, content.Default())

	r := ginext.New("test")
	r.LoadHTMLGlob("../../web/templates/*")
	r.GET("/cancel", h.CancelPage)
	r.POST("/cancel", h.CancelSubmit)

	return bookingSvc, r
}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:            1,
		Service:       "Классический массаж спина",
		BookingDate:   "2025-06-07",
		BookingTime:   "10:00",
		CustomerName:  "Анна",
		CustomerPhone: "+79000000000",
		Status:        domain.BookingStatusActive,
		CancelToken:   "tok123",
		CreatedAt:     time.Now(),
	}
}

// --- Create ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(testBooking(), nil)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		Service:       "Классический массаж спина",
		BookingDate:   "2025-06-07",
		BookingTime:   "10:00",
		CustomerName:  "Анна",
		CustomerPhone: "+79000000000",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.EqualValues(t, 1, resp.ID)
	assert.Equal(t, "tok123", resp.CancelToken)
}

func TestHandler_CreateBooking_MissingFields(t *testing.T) {
	_, r := setupRouter(t)

	body := []byte(`{"service":"Массаж"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_SlotTaken(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrSlotTaken)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		Service:       "Классический массаж спина",
		BookingDate:   "2025-06-07",
		BookingTime:   "10:00",
		CustomerName:  "Анна",
		CustomerPhone: "+79000000000",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreateBooking_ClosedDay(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrClosedDay)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		Service:       "Классический массаж спина",
		BookingDate:   "2025-06-03",
		BookingTime:   "11:00",
		CustomerName:  "Анна",
		CustomerPhone: "+79000000000",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Get ---

func TestHandler_GetBookings_List(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().AdminList(mock.Anything, "active", "2025-06-10").
		Return([]*domain.Booking{testBooking()}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings?status=active&date=2025-06-10", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
}

func TestHandler_GetBookings_EmptyList(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().AdminList(mock.Anything, "", "").Return(nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestHandler_GetBookings_ByToken(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().GetByToken(mock.Anything, "tok123").Return(testBooking(), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings?token=tok123", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "active", resp.Status)
}

func TestHandler_GetBookings_TokenNotFound(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().GetByToken(mock.Anything, "missing").Return(nil, domain.ErrBookingNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings?token=missing", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Cancel ---

func TestHandler_CancelBooking_ByToken(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	b := testBooking()
	b.Status = domain.BookingStatusCancelled
	bookingSvc.EXPECT().CancelByToken(mock.Anything, "tok123").
		Return(domain.CancelResult{Booking: b}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/bookings?token=tok123", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CancelResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.AlreadyCancelled)
	assert.Equal(t, "cancelled", resp.Booking.Status)
}

func TestHandler_CancelBooking_AlreadyCancelled(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	b := testBooking()
	b.Status = domain.BookingStatusCancelled
	bookingSvc.EXPECT().CancelByToken(mock.Anything, "tok123").
		Return(domain.CancelResult{Booking: b, AlreadyCancelled: true}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/bookings?token=tok123", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CancelResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.AlreadyCancelled)
}

func TestHandler_CancelBooking_ByID(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	b := testBooking()
	b.Status = domain.BookingStatusCancelled
	bookingSvc.EXPECT().CancelByID(mock.Anything, int64(1)).
		Return(domain.CancelResult{Booking: b}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/bookings?id=1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CancelBooking_BadID(t *testing.T) {
	_, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/bookings?id=abc", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelBooking_NoParams(t *testing.T) {
	_, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelBooking_NotFound(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().CancelByToken(mock.Anything, "missing").
		Return(domain.CancelResult{}, domain.ErrBookingNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/bookings?token=missing", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Cancel page ---

func TestHandler_CancelPage_Pending(t *testing.T) {
	bookingSvc, r := setupPagesRouter(t)

	bookingSvc.EXPECT().GetByToken(mock.Anything, "tok123").Return(testBooking(), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cancel?token=tok123", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Вы действительно хотите отменить")
	assert.Contains(t, w.Body.String(), `name="token" value="tok123"`)
}

func TestHandler_CancelPage_UnknownToken(t *testing.T) {
	bookingSvc, r := setupPagesRouter(t)

	bookingSvc.EXPECT().GetByToken(mock.Anything, "missing").Return(nil, domain.ErrBookingNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cancel?token=missing", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Запись не найдена")
}

func TestHandler_CancelSubmit_Cancelled(t *testing.T) {
	bookingSvc, r := setupPagesRouter(t)

	b := testBooking()
	b.Status = domain.BookingStatusCancelled
	bookingSvc.EXPECT().CancelByToken(mock.Anything, "tok123").
		Return(domain.CancelResult{Booking: b}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/cancel", strings.NewReader("token=tok123"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Запись отменена")
}

func TestHandler_CancelSubmit_AlreadyCancelled(t *testing.T) {
	bookingSvc, r := setupPagesRouter(t)

	b := testBooking()
	b.Status = domain.BookingStatusCancelled
	bookingSvc.EXPECT().CancelByToken(mock.Anything, "tok123").
		Return(domain.CancelResult{Booking: b, AlreadyCancelled: true}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/cancel", strings.NewReader("token=tok123"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Запись уже отменена")
}

func TestHandler_CancelSubmit_FailureOffersRetry(t *testing.T) {
	bookingSvc, r := setupPagesRouter(t)

	bookingSvc.EXPECT().CancelByToken(mock.Anything, "tok123").
		Return(domain.CancelResult{}, errors.New("db down"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/cancel", strings.NewReader("token=tok123"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Не удалось отменить запись")
	// Failed is not terminal: the confirmation form is offered again.
	assert.Contains(t, w.Body.String(), `name="token" value="tok123"`)
}

// --- Slots ---

func TestHandler_GetSlots_Success(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().AvailableSlots(mock.Anything, "2025-06-07").
		Return([]string{"9:00", "10:00"}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/slots?date=2025-06-07", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SlotsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Closed)
	assert.Equal(t, []string{"9:00", "10:00"}, resp.Slots)
}

func TestHandler_GetSlots_ClosedDay(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().AvailableSlots(mock.Anything, "2025-06-03").
		Return(nil, domain.ErrClosedDay)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/slots?date=2025-06-03", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SlotsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Closed)
	assert.Empty(t, resp.Slots)
}

func TestHandler_GetSlots_MissingDate(t *testing.T) {
	_, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/slots", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetSlots_ServiceError(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().AvailableSlots(mock.Anything, "2025-06-07").
		Return(nil, errors.New("db down"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/slots?date=2025-06-07", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// --- Services ---

func TestHandler_ListServices(t *testing.T) {
	_, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/services", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ServiceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 4)
	assert.Equal(t, "Классический массаж спина", resp[0].Title)
}
