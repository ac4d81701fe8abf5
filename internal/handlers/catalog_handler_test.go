package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_CreateAndList(t *testing.T) {
	router, _ := newTestAPI(t)

	w := doJSON(t, router, http.MethodPost, "/api/destinations", gin.H{
		"name":             "Kyoto",
		"country":          "Japan",
		"rating":           4.8,
		"price_per_person": 1200,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeBody(t, w)
	assert.NotEmpty(t, created["id"])

	w = doJSON(t, router, http.MethodGet, "/api/destinations", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var destinations []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &destinations))
	require.Len(t, destinations, 1)
	assert.Equal(t, "Kyoto", destinations[0]["name"])
}

func TestCatalog_GetByID(t *testing.T) {
	router, _ := newTestAPI(t)

	w := doJSON(t, router, http.MethodPost, "/api/buses", gin.H{
		"operator_name": "Night Express",
		"from_city":     "Colombo",
		"to_city":       "Kandy",
		"total_seats":   40,
		"seat_layout":   "2x2",
		"price":         12.5,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	busID := decodeBody(t, w)["id"].(string)

	w = doJSON(t, router, http.MethodGet, "/api/buses/"+busID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Night Express", decodeBody(t, w)["operator_name"])

	w = doJSON(t, router, http.MethodGet, "/api/buses/00000000-0000-0000-0000-000000000009", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/buses/nope", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalog_ValidationOnCreate(t *testing.T) {
	router, _ := newTestAPI(t)

	w := doJSON(t, router, http.MethodPost, "/api/hotels", gin.H{
		"location": "Paris",
		"rating":   9, // out of range, name missing
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	fields := decodeBody(t, w)["fields"].(map[string]interface{})
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "rating")
}

func TestCatalog_ListFieldsDefaultToEmptyArray(t *testing.T) {
	router, _ := newTestAPI(t)

	w := doJSON(t, router, http.MethodPost, "/api/hotels", gin.H{
		"name":     "Hotel du Lac",
		"location": "Geneva",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Amenities was omitted but comes back as [], not null
	assert.Contains(t, w.Body.String(), `"amenities":[]`)

	w = doJSON(t, router, http.MethodPost, "/api/travel-packages", gin.H{
		"name": "Highlands Loop",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"destinations":[]`)
}

func TestCatalog_EmptyListsAreArrays(t *testing.T) {
	router, _ := newTestAPI(t)

	for _, path := range []string{
		"/api/destinations", "/api/hotels", "/api/restaurants",
		"/api/trip-planners", "/api/buses", "/api/private-cars",
		"/api/travel-packages",
	} {
		w := doJSON(t, router, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, w.Code, path)
		assert.Equal(t, "[]", w.Body.String(), path)
	}
}
