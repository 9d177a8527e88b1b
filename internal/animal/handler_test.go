package animal

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"pashumitra/internal/auth"
	"pashumitra/internal/middleware"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewHandler(NewService(NewInMemoryRepository()))

	r := gin.New()
	animals := r.Group("/api/animals")
	animals.Use(middleware.AuthMiddleware())
	{
		animals.POST("", handler.Create)
		animals.GET("", handler.List)
		animals.GET("/:id", handler.Get)
		animals.PUT("/:id", handler.Update)
		animals.DELETE("/:id", handler.Delete)
	}

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAnimalCRUDFlow(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing-only")
	r := setupTestRouter()

	farmerToken, err := auth.GenerateToken("farmer-1", "9876543210", auth.RoleFarmer)
	if err != nil {
		t.Fatalf("failed to generate test token: %v", err)
	}
	vetToken, err := auth.GenerateToken("vet-1", "9000000001", auth.RoleVeterinarian)
	if err != nil {
		t.Fatalf("failed to generate test token: %v", err)
	}

	// create
	w := doJSON(t, r, http.MethodPost, "/api/animals", farmerToken, gin.H{
		"tag_id":     "TAG-001",
		"species":    "cattle",
		"breed":      "Gir",
		"age_months": 30,
		"gender":     "female",
		"weight_kg":  420,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var created Animal
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}

	// farmer sees own animal
	w = doJSON(t, r, http.MethodGet, "/api/animals", farmerToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list: expected status 200, got %d", w.Code)
	}

	// vet sees it too
	w = doJSON(t, r, http.MethodGet, "/api/animals/"+created.ID, vetToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("staff get: expected status 200, got %d", w.Code)
	}

	// update
	w = doJSON(t, r, http.MethodPut, "/api/animals/"+created.ID, farmerToken, gin.H{
		"tag_id":  "TAG-001",
		"species": "cattle",
		"breed":   "Gir",
		"gender":  "female",
		"status":  "sick",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update: expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	// delete
	w = doJSON(t, r, http.MethodDelete, "/api/animals/"+created.ID, farmerToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: expected status 200, got %d", w.Code)
	}
}

func TestAnimalRoutesRequireAuth(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing-only")
	r := setupTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/animals", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", w.Code)
	}
}

func TestAnimalOwnershipAcrossFarmers(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing-only")
	r := setupTestRouter()

	ownerToken, err := auth.GenerateToken("farmer-1", "9876543210", auth.RoleFarmer)
	if err != nil {
		t.Fatalf("failed to generate test token: %v", err)
	}
	otherToken, err := auth.GenerateToken("farmer-2", "9876543211", auth.RoleFarmer)
	if err != nil {
		t.Fatalf("failed to generate test token: %v", err)
	}

	w := doJSON(t, r, http.MethodPost, "/api/animals", ownerToken, gin.H{
		"tag_id":  "TAG-001",
		"species": "goat",
		"breed":   "Jamunapari",
		"gender":  "male",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected status 201, got %d", w.Code)
	}

	var created Animal
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}

	w = doJSON(t, r, http.MethodGet, "/api/animals/"+created.ID, otherToken, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected status 403 for another farmer, got %d", w.Code)
	}
}
