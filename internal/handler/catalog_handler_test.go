package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anyulbade/dealer-credit-simulator/internal/dto"
)

func TestCatalogHandler(t *testing.T) {
	router := newFakeRouter()

	t.Run("happy: list vehicles with pagination", func(t *testing.T) {
		w := doJSON(router, "GET", "/api/v1/vehicles?page=1&page_size=10", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.VehicleListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Data, 1)
		assert.Equal(t, 1, resp.Pagination.TotalItems)
		assert.Equal(t, 10, resp.Pagination.PageSize)
	})

	t.Run("edge: page beyond the end is empty", func(t *testing.T) {
		w := doJSON(router, "GET", "/api/v1/vehicles?page=3", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"data":[]`)
	})

	t.Run("happy: get vehicle", func(t *testing.T) {
		w := doJSON(router, "GET", "/api/v1/vehicles/"+kiaID, nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"model":"Soluto EX"`)
	})

	t.Run("error: vehicle id not a uuid", func(t *testing.T) {
		w := doJSON(router, "GET", "/api/v1/vehicles/not-a-uuid", nil, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("happy: list profiles", func(t *testing.T) {
		w := doJSON(router, "GET", "/api/v1/financing-profiles", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"id":"BANK_A"`)
	})

	t.Run("error: unknown profile", func(t *testing.T) {
		w := doJSON(router, "GET", "/api/v1/financing-profiles/NOPE", nil, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
