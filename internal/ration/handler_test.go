package ration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"pashumitra/internal/catalog"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cat, err := catalog.New(catalog.DefaultStatusProfiles(), catalog.DefaultFeedItems())
	if err != nil {
		t.Fatalf("building catalog: %v", err)
	}
	h := NewHandler(NewService(cat))

	r := gin.New()
	r.GET("/api/ration/statuses", h.ListStatuses)
	r.GET("/api/ration/feeds", h.ListFeeds)
	r.POST("/api/ration/calculate", h.Calculate)
	r.POST("/api/ration/export", h.Export)
	r.POST("/api/ration/export/pdf", h.ExportPDF)

	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCalculateEndpoint(t *testing.T) {
	r := setupTestRouter(t)

	w := postJSON(t, r, "/api/ration/calculate", gin.H{
		"status_id":      "milking_medium",
		"body_weight_kg": 450,
		"milk_yield_l":   8,
		"feeds": []gin.H{
			{"feed_id": "green_fodder", "selected": true},
			{"feed_id": "cattle_feed", "selected": true},
		},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var result Result
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !almostEqual(result.Required.DMKg, 21.2) {
		t.Errorf("required DM: expected 21.2, got %v", result.Required.DMKg)
	}
	if len(result.Lines) != 2 {
		t.Errorf("expected 2 lines, got %d", len(result.Lines))
	}
}

func TestCalculateEndpointInvalidInput(t *testing.T) {
	r := setupTestRouter(t)

	w := postJSON(t, r, "/api/ration/calculate", gin.H{
		"status_id":      "milking_medium",
		"body_weight_kg": -10,
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestCalculateEndpointEmptySelectionIsNotAnError(t *testing.T) {
	r := setupTestRouter(t)

	w := postJSON(t, r, "/api/ration/calculate", gin.H{
		"status_id":      "milking_medium",
		"body_weight_kg": 450,
		"milk_yield_l":   8,
		"feeds":          []gin.H{},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200 for empty selection, got %d", w.Code)
	}

	var result Result
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if result.TotalCost != 0 || result.ProteinStatus != Deficient {
		t.Errorf("expected zero-cost deficient report, got %+v", result)
	}
}

func TestListStatusesEndpoint(t *testing.T) {
	r := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/ration/statuses", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var body struct {
		Statuses []catalog.StatusProfile `json:"statuses"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(body.Statuses) == 0 {
		t.Fatal("expected status profiles in response")
	}
}

func TestExportEndpointReturnsWorkbook(t *testing.T) {
	r := setupTestRouter(t)

	w := postJSON(t, r, "/api/ration/export", gin.H{
		"status_id":      "milking_medium",
		"body_weight_kg": 450,
		"milk_yield_l":   8,
		"feeds":          []gin.H{{"feed_id": "green_fodder", "selected": true}},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("unexpected content type %q", ct)
	}
	if w.Body.Len() == 0 {
		t.Error("expected workbook bytes in response")
	}
}

func TestExportPDFIsStubbed(t *testing.T) {
	r := setupTestRouter(t)

	w := postJSON(t, r, "/api/ration/export/pdf", gin.H{
		"status_id":      "milking_medium",
		"body_weight_kg": 450,
	})

	if w.Code != http.StatusNotImplemented {
		t.Fatalf("expected status 501, got %d", w.Code)
	}
}
