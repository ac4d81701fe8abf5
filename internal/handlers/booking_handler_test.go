package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func busBookingPayload(seats ...string) gin.H {
	return gin.H{
		"item_id":        "B1",
		"booking_type":   "bus",
		"customer_name":  "Jane Doe",
		"customer_email": "jane@example.com",
		"travel_date":    "2024-12-01",
		"passengers":     len(seats),
		"selected_seats": seats,
	}
}

func TestCreateBooking_Authenticated(t *testing.T) {
	router, _ := newTestAPI(t)
	cookie := signupAndCookie(t, router, "jane@example.com", "janedoe")

	w := doJSON(t, router, http.MethodPost, "/api/bookings", busBookingPayload("1A"), cookie)

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "confirmed", body["status"])
	assert.NotNil(t, body["user_id"])
	assert.Regexp(t, `^TB-`, body["confirmation_number"])
}

func TestCreateBooking_Anonymous(t *testing.T) {
	router, _ := newTestAPI(t)

	w := doJSON(t, router, http.MethodPost, "/api/bookings", busBookingPayload("1A"))

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "confirmed", body["status"])
	assert.Nil(t, body["user_id"])
}

func TestCreateBooking_TypeSpecificValidation(t *testing.T) {
	router, _ := newTestAPI(t)

	w := doJSON(t, router, http.MethodPost, "/api/bookings", gin.H{
		"item_id":        "H1",
		"booking_type":   "hotel",
		"customer_name":  "Jane Doe",
		"customer_email": "jane@example.com",
		// missing room_type, check_in, check_out, guests
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	fields := body["fields"].(map[string]interface{})
	assert.Contains(t, fields, "room_type")
	assert.Contains(t, fields, "check_in")
	assert.Contains(t, fields, "guests")
}

func TestCreateBooking_MissingFieldsUseJSONNames(t *testing.T) {
	router, _ := newTestAPI(t)

	w := doJSON(t, router, http.MethodPost, "/api/bookings", gin.H{
		"booking_type": "bus",
		// missing item_id, customer_name, customer_email
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	fields := body["fields"].(map[string]interface{})
	assert.Contains(t, fields, "item_id")
	assert.Contains(t, fields, "customer_name")
	assert.Contains(t, fields, "customer_email")
	assert.Equal(t, "item_id is required", fields["item_id"])
	assert.NotContains(t, fields, "item_i_d")
}

func TestCreateBooking_UnknownType(t *testing.T) {
	router, _ := newTestAPI(t)

	w := doJSON(t, router, http.MethodPost, "/api/bookings", gin.H{
		"item_id":        "X1",
		"booking_type":   "cruise",
		"customer_name":  "Jane Doe",
		"customer_email": "jane@example.com",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	fields := body["fields"].(map[string]interface{})
	assert.Contains(t, fields, "booking_type")
}

func TestListBookings_ScopesToUser(t *testing.T) {
	router, _ := newTestAPI(t)

	// Unauthenticated callers get an empty array, not an error.
	w := doJSON(t, router, http.MethodGet, "/api/bookings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))

	jane := signupAndCookie(t, router, "jane@example.com", "janedoe")
	other := signupAndCookie(t, router, "other@example.com", "otherdoe")

	w = doJSON(t, router, http.MethodPost, "/api/bookings", busBookingPayload("1A"), jane)
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, router, http.MethodPost, "/api/bookings", busBookingPayload("2B"), other)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/bookings", nil, jane)
	require.Equal(t, http.StatusOK, w.Code)

	var bookings []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bookings))
	require.Len(t, bookings, 1)
	seats := bookings[0]["selected_seats"].([]interface{})
	assert.Equal(t, "1A", seats[0])
}

func TestGetBooking_OwnershipStatuses(t *testing.T) {
	router, _ := newTestAPI(t)
	jane := signupAndCookie(t, router, "jane@example.com", "janedoe")
	other := signupAndCookie(t, router, "other@example.com", "otherdoe")

	w := doJSON(t, router, http.MethodPost, "/api/bookings", busBookingPayload("1A"), jane)
	require.Equal(t, http.StatusCreated, w.Code)
	bookingID := decodeBody(t, w)["id"].(string)

	// Owner reads it
	w = doJSON(t, router, http.MethodGet, "/api/bookings/"+bookingID, nil, jane)
	assert.Equal(t, http.StatusOK, w.Code)

	// Different user is forbidden
	w = doJSON(t, router, http.MethodGet, "/api/bookings/"+bookingID, nil, other)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// No credential at all is unauthenticated
	w = doJSON(t, router, http.MethodGet, "/api/bookings/"+bookingID, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Unknown id is a 404
	w = doJSON(t, router, http.MethodGet, "/api/bookings/00000000-0000-0000-0000-000000000001", nil, jane)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Malformed id is a 400
	w = doJSON(t, router, http.MethodGet, "/api/bookings/not-a-uuid", nil, jane)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingReceipt(t *testing.T) {
	router, _ := newTestAPI(t)
	jane := signupAndCookie(t, router, "jane@example.com", "janedoe")

	w := doJSON(t, router, http.MethodPost, "/api/bookings", busBookingPayload("1A", "1B"), jane)
	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	bookingID := body["id"].(string)
	confirmation := body["confirmation_number"].(string)

	w = doJSON(t, router, http.MethodGet, "/api/bookings/"+bookingID+"/receipt", nil, jane)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, w.Body.String(), confirmation)
	assert.Contains(t, w.Body.String(), "1A, 1B")
}

func TestCancelBooking_Statuses(t *testing.T) {
	router, _ := newTestAPI(t)
	jane := signupAndCookie(t, router, "jane@example.com", "janedoe")
	other := signupAndCookie(t, router, "other@example.com", "otherdoe")

	w := doJSON(t, router, http.MethodPost, "/api/bookings", busBookingPayload("1A"), jane)
	require.Equal(t, http.StatusCreated, w.Code)
	bookingID := decodeBody(t, w)["id"].(string)

	// Anonymous cancel is rejected before any ownership check
	w = doJSON(t, router, http.MethodPut, "/api/bookings/"+bookingID+"/cancel", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Non-owner is forbidden
	w = doJSON(t, router, http.MethodPut, "/api/bookings/"+bookingID+"/cancel", nil, other)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Owner cancels
	w = doJSON(t, router, http.MethodPut, "/api/bookings/"+bookingID+"/cancel", nil, jane)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cancelled", decodeBody(t, w)["status"])

	// Cancelled is terminal
	w = doJSON(t, router, http.MethodPut, "/api/bookings/"+bookingID+"/cancel", nil, jane)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already cancelled")

	// Unknown booking
	w = doJSON(t, router, http.MethodPut, "/api/bookings/00000000-0000-0000-0000-000000000001/cancel", nil, jane)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOccupiedSeats_Endpoint(t *testing.T) {
	router, _ := newTestAPI(t)
	jane := signupAndCookie(t, router, "jane@example.com", "janedoe")

	w := doJSON(t, router, http.MethodPost, "/api/bookings", busBookingPayload("1A", "1B"), jane)
	require.Equal(t, http.StatusCreated, w.Code)
	bookingID := decodeBody(t, w)["id"].(string)

	w = doJSON(t, router, http.MethodGet, "/api/bookings/seats?busId=B1&travelDate=2024-12-01", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var seats []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &seats))
	assert.Equal(t, []string{"1A", "1B"}, seats)

	// Cancelled seats free up
	w = doJSON(t, router, http.MethodPut, "/api/bookings/"+bookingID+"/cancel", nil, jane)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/bookings/seats?busId=B1&travelDate=2024-12-01", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &seats))
	assert.Empty(t, seats)

	// Missing query params
	w = doJSON(t, router, http.MethodGet, "/api/bookings/seats", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
