package contact

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pkruszek/scout-assistant/internal/middleware"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := setupTestDB(t)
	r := gin.New()
	api := r.Group("/api")
	api.Use(middleware.ScoutMiddleware())
	RegisterContactRoutes(api, db)
	return r, db
}

func postJSON(t *testing.T, r *gin.Engine, scout string, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/contacts", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if scout != "" {
		req.Header.Set(middleware.ScoutHeader, scout)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUpsertContactHappyPath(t *testing.T) {
	r, db := setupRouter(t)

	w := postJSON(t, r, "scout1", map[string]any{
		"manager_id":   "500",
		"manager_nick": "mgr500",
		"status":       StatusMailSent,
		"contact_date": "2025-03-01",
		"notes":        "sent intro mail",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var n int64
	require.NoError(t, db.Model(&Contact{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)

	var stored Contact
	require.NoError(t, db.First(&stored).Error)
	assert.Equal(t, "scout1", stored.ScoutNick)
	assert.Equal(t, StatusMailSent, stored.Status)
}

func TestUpsertContactEmptyManagerIDRejected(t *testing.T) {
	r, db := setupRouter(t)

	for _, body := range []map[string]any{
		{"manager_nick": "mgr500"}, // manager_id absent
		{"manager_id": "   "},      // whitespace only
	} {
		w := postJSON(t, r, "scout1", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	// No mutation reached the store.
	var n int64
	require.NoError(t, db.Model(&Contact{}).Count(&n).Error)
	assert.Equal(t, int64(0), n)
}

func TestUpsertContactUnknownStatusRejected(t *testing.T) {
	r, db := setupRouter(t)

	w := postJSON(t, r, "scout1", map[string]any{
		"manager_id": "500",
		"status":     "Best friends",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var n int64
	require.NoError(t, db.Model(&Contact{}).Count(&n).Error)
	assert.Equal(t, int64(0), n)
}

func TestUpsertContactDefaultsStatusAndDate(t *testing.T) {
	r, db := setupRouter(t)

	w := postJSON(t, r, "scout1", map[string]any{"manager_id": "500"})
	assert.Equal(t, http.StatusOK, w.Code)

	var stored Contact
	require.NoError(t, db.First(&stored).Error)
	assert.Equal(t, StatusNewToContact, stored.Status)
	assert.False(t, stored.ContactDate.IsZero())
}

func TestUpsertContactBadDateRejected(t *testing.T) {
	r, _ := setupRouter(t)

	w := postJSON(t, r, "scout1", map[string]any{
		"manager_id":   "500",
		"contact_date": "03/01/2025",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContactRoutesRequireScoutHeader(t *testing.T) {
	r, _ := setupRouter(t)

	w := postJSON(t, r, "", map[string]any{"manager_id": "500"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/contacts", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListContactsReturnsOwnRowsOnly(t *testing.T) {
	r, _ := setupRouter(t)

	require.Equal(t, http.StatusOK, postJSON(t, r, "scout1", map[string]any{"manager_id": "500"}).Code)
	require.Equal(t, http.StatusOK, postJSON(t, r, "scout2", map[string]any{"manager_id": "600"}).Code)

	req := httptest.NewRequest(http.MethodGet, "/api/contacts", nil)
	req.Header.Set(middleware.ScoutHeader, "scout1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []Contact `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "500", resp.Data[0].ManagerID)
}

func TestDeleteContactIsIdempotentOverHTTP(t *testing.T) {
	r, db := setupRouter(t)

	require.Equal(t, http.StatusOK, postJSON(t, r, "scout1", map[string]any{"manager_id": "500"}).Code)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodDelete, "/api/contacts/500", nil)
		req.Header.Set(middleware.ScoutHeader, "scout1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, fmt.Sprintf("delete attempt %d", i+1))
	}

	var n int64
	require.NoError(t, db.Model(&Contact{}).Count(&n).Error)
	assert.Equal(t, int64(0), n)
}
