package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"rentalite/models"
	"rentalite/services/booking"
	"rentalite/services/property"
	"rentalite/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memPropertyRepo struct {
	properties map[string]models.Property
}

func (f *memPropertyRepo) FindAll() ([]models.Property, error) {
	all := []models.Property{}
	for _, p := range f.properties {
		all = append(all, p)
	}
	return all, nil
}

func (f *memPropertyRepo) FindByID(id string) (*models.Property, error) {
	if p, ok := f.properties[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (f *memPropertyRepo) Save(p *models.Property) error {
	f.properties[p.ID] = *p
	return nil
}

type memBookingRepo struct {
	bookings []models.Booking
}

func (f *memBookingRepo) FindAll() ([]models.Booking, error) {
	return append([]models.Booking{}, f.bookings...), nil
}

func (f *memBookingRepo) FindByID(id string) (*models.Booking, error) {
	for _, b := range f.bookings {
		if b.ID == id {
			copied := b
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *memBookingRepo) Save(b *models.Booking) error {
	if b.ID == "" {
		b.ID = fmt.Sprintf("booking-%d", len(f.bookings)+1)
		f.bookings = append(f.bookings, *b)
		return nil
	}
	for i := range f.bookings {
		if f.bookings[i].ID == b.ID {
			f.bookings[i] = *b
			return nil
		}
	}
	f.bookings = append(f.bookings, *b)
	return nil
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	propRepo := &memPropertyRepo{properties: map[string]models.Property{
		"p1": {ID: "p1", Name: "Beach house", DailyPrice: 100},
	}}
	bookRepo := &memBookingRepo{}

	bookingSvc := &booking.DefaultBookingService{Bookings: bookRepo, Properties: propRepo}
	propertySvc := &property.DefaultPropertyService{Repo: propRepo}

	logger := utils.GetLogger()
	bookingHandler := NewBookingHandler(bookingSvc, logger)
	propertyHandler := NewPropertyHandler(propertySvc, logger)

	router := gin.New()
	router.POST("/booking", bookingHandler.CreateBooking)
	router.GET("/booking", bookingHandler.ListBookings)
	router.PUT("/booking/:id/cancel", bookingHandler.CancelBooking)
	router.GET("/property", propertyHandler.ListProperties)
	router.GET("/property/:id", propertyHandler.GetPropertyByID)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func bookingPayload(start, end string) map[string]any {
	return map[string]any{
		"startDate":    start,
		"endDate":      end,
		"customerName": "Juan Perez",
		"property":     map[string]any{"id": "p1"},
	}
}

func TestCreateBookingEndpoint(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/booking", bookingPayload("2024-01-15", "2024-01-20"))
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "2024-01-15", created.StartDate)
	assert.Equal(t, 500.0, created.TotalPrice)
	assert.False(t, created.IsCancelled)
	assert.Equal(t, "Beach house", created.Property.Name)
}

func TestCreateBookingEndpointValidationFailure(t *testing.T) {
	router := newTestRouter()

	// 2024-01-14 is a Sunday.
	w := doJSON(t, router, http.MethodPost, "/booking", bookingPayload("2024-01-14", "2024-01-16"))
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body utils.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, http.StatusBadRequest, body.Status)
	assert.Equal(t, "Validation failed", body.Error)
	assert.Equal(t, "cannot book on Sunday", body.Message)
	assert.False(t, body.Timestamp.IsZero())
}

func TestCreateBookingEndpointUnknownProperty(t *testing.T) {
	router := newTestRouter()

	payload := bookingPayload("2024-01-15", "2024-01-20")
	payload["property"] = map[string]any{"id": "missing"}
	w := doJSON(t, router, http.MethodPost, "/booking", payload)
	require.Equal(t, http.StatusNotFound, w.Code)

	var body utils.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Property not found", body.Error)
}

func TestCreateBookingEndpointMalformedBody(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/booking", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListBookingsEndpoint(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/booking", bookingPayload("2024-01-15", "2024-01-20"))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/booking", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var all []models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	assert.Len(t, all, 1)
}

func TestCancelBookingEndpoint(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/booking", bookingPayload("2024-01-15", "2024-01-20"))
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, router, http.MethodPut, "/booking/"+created.ID+"/cancel", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var cancelled models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cancelled))
	assert.True(t, cancelled.IsCancelled)
}

func TestCancelBookingEndpointNotFound(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPut, "/booking/missing/cancel", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	var body utils.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Booking not found", body.Error)
	assert.Equal(t, http.StatusNotFound, body.Status)
}

func TestPropertyEndpoints(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodGet, "/property", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var all []models.Property
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	assert.Len(t, all, 1)

	w = doJSON(t, router, http.MethodGet, "/property/p1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var prop models.Property
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &prop))
	assert.Equal(t, 100.0, prop.DailyPrice)

	w = doJSON(t, router, http.MethodGet, "/property/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
