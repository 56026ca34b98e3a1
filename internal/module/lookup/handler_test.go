package lookup

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/hbaskar/GC-PDC/internal/pkg"
)

// setupRouter registers the real module routes against the mock repository.
func setupRouter(repo Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewModule(NewHandler(NewService(repo))).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func postJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandlerCreateType(t *testing.T) {
	r := setupRouter(newMockRepo())

	body := `{"lookup_type":"media_type","display_name":"Media Types","created_by":"alice"}`
	w := postJSON(r, http.MethodPost, "/api/v1/lookup-types", body)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}
}

func TestHandlerCreateType_ValidationError(t *testing.T) {
	r := setupRouter(newMockRepo())

	w := postJSON(r, http.MethodPost, "/api/v1/lookup-types", `{"lookup_type":"x"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}

	var resp pkg.ValidationErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	for _, field := range []string{"lookup_type", "display_name", "created_by"} {
		if _, ok := resp.Errors[field]; !ok {
			t.Errorf("expected %q in errors map, got %v", field, resp.Errors)
		}
	}
}

func TestHandlerGetType_NotFound(t *testing.T) {
	r := setupRouter(newMockRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/lookup-types/missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestHandlerDeleteType_Conflict(t *testing.T) {
	repo := newMockRepo()
	repo.seedType("media_type")
	repo.codes[codeKey{"media_type", "paper"}] = newCode("media_type", "paper", 1)
	r := setupRouter(repo)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/lookup-types/media_type", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", w.Code)
	}
}

func TestHandlerCodeRoutes(t *testing.T) {
	repo := newMockRepo()
	repo.seedType("media_type")
	r := setupRouter(repo)

	body := `{"lookup_type":"media_type","lookup_code":"paper","display_name":"Paper","created_by":"alice"}`
	if w := postJSON(r, http.MethodPost, "/api/v1/lookup-codes", body); w.Code != http.StatusCreated {
		t.Fatalf("create code: expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/lookup-codes/media_type/paper", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("get code: expected status 200, got %d", w.Code)
	}

	update := `{"display_name":"Paper records","modified_by":"bob"}`
	if w := postJSON(r, http.MethodPut, "/api/v1/lookup-codes/media_type/paper", update); w.Code != http.StatusOK {
		t.Fatalf("update code: expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/v1/lookup-codes/media_type/paper", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("delete code: expected status 200, got %d", w.Code)
	}
}

func TestHandlerBatchGet(t *testing.T) {
	repo := newMockRepo()
	r := setupRouter(repo)

	body := `{"lookup_types":["media_type","file_type"]}`
	w := postJSON(r, http.MethodPost, "/api/v1/lookup-codes/batch-get", body)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(repo.batchGot) != 2 {
		t.Errorf("repository saw %v; want both keys", repo.batchGot)
	}
}

func TestHandlerBatchUpsert(t *testing.T) {
	repo := newMockRepo()
	r := setupRouter(repo)

	body := `{
		"modified_by": "bob",
		"codes": [
			{"lookup_type":"media_type","lookup_code":"paper","display_name":"Paper"},
			{"lookup_type":"media_type","lookup_code":"electronic","display_name":"Electronic"}
		]
	}`
	w := postJSON(r, http.MethodPut, "/api/v1/lookup-codes/batch", body)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp pkg.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("expected Data to be a map, got %T", resp.Data)
	}
	if n, _ := data["processed"].(float64); int(n) != 2 {
		t.Errorf("expected processed=2, got %v", data["processed"])
	}
}

func TestHandlerBatchUpsert_EmptyCodes(t *testing.T) {
	r := setupRouter(newMockRepo())

	w := postJSON(r, http.MethodPut, "/api/v1/lookup-codes/batch", `{"modified_by":"bob","codes":[]}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestHandlerStaticCodeRoutesResolve(t *testing.T) {
	r := setupRouter(newMockRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/lookup-codes/summary", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("summary: expected status 200, got %d", w.Code)
	}
}
