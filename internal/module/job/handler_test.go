package job

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// stubSaver fakes upload storage for handler tests.
type stubSaver struct {
	stored string
	err    error
	calls  int
}

func (s *stubSaver) Save(_ *multipart.FileHeader) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.stored, nil
}

// setupStack wires a router around a real service and an in-memory database
// so apply requests run the whole pipeline.
func setupStack(t *testing.T, saver *stubSaver) (*gin.Engine, Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := setupTestDB(t)
	svc := NewService(NewJobRepository(db), NewApplicationRepository(db), &recordingRemover{}, testAssetBase)

	r := gin.New()
	public := r.Group("/api/v1")
	admin := r.Group("/api/v1")
	NewModule(NewJobHandler(svc, saver)).RegisterRoutes(public, admin)
	return r, svc
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func applyForm(t *testing.T, fields map[string]string, resume string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field %q: %v", k, err)
		}
	}
	if resume != "" {
		fw, err := mw.CreateFormFile("resume", resume)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write([]byte("%PDF-1.4 fake")); err != nil {
			t.Fatalf("write resume: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return buf, mw.FormDataContentType()
}

func TestApplyHandler_WithResume(t *testing.T) {
	saver := &stubSaver{stored: "stored-resume.pdf"}
	r, svc := setupStack(t, saver)

	w := doJSON(t, r, http.MethodPost, "/api/v1/jobs", `{"title":"Backend Engineer"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create job status = %d, body %s", w.Code, w.Body.String())
	}

	body, contentType := applyForm(t, map[string]string{
		"name":  "Amira Hassan",
		"email": "amira@example.com",
	}, "my cv.pdf")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs/1/apply", body)
	req.Header.Set("Content-Type", contentType)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("apply status = %d, body %s", w.Code, w.Body.String())
	}
	if saver.calls != 1 {
		t.Errorf("saver.calls = %d, want 1", saver.calls)
	}

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Resume    string `json:"resume"`
			ResumeURL string `json:"resume_url"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if !resp.Success {
		t.Error("expected success envelope")
	}
	if resp.Data.Resume != "stored-resume.pdf" {
		t.Errorf("resume = %q, want stored name", resp.Data.Resume)
	}
	if resp.Data.ResumeURL != testAssetBase+"/stored-resume.pdf" {
		t.Errorf("resume_url = %q, want derived URL", resp.Data.ResumeURL)
	}

	record, err := svc.GetApplication(req.Context(), 1)
	if err != nil {
		t.Fatalf("GetApplication: %v", err)
	}
	if record.Name != "Amira Hassan" {
		t.Errorf("persisted Name = %q", record.Name)
	}
}

func TestApplyHandler_WithoutResume(t *testing.T) {
	saver := &stubSaver{stored: "unused.pdf"}
	r, _ := setupStack(t, saver)

	if w := doJSON(t, r, http.MethodPost, "/api/v1/jobs", `{"title":"Sales Agent"}`); w.Code != http.StatusCreated {
		t.Fatalf("create job status = %d", w.Code)
	}

	body, contentType := applyForm(t, map[string]string{
		"name":  "Omar Saleh",
		"email": "omar@example.com",
	}, "")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs/1/apply", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("apply status = %d, body %s", w.Code, w.Body.String())
	}
	if saver.calls != 0 {
		t.Errorf("saver.calls = %d, want 0 when no file is supplied", saver.calls)
	}
	if !strings.Contains(w.Body.String(), `"resume":""`) {
		t.Errorf("expected empty resume in body, got %s", w.Body.String())
	}
}

func TestApplyHandler_Validation(t *testing.T) {
	r, _ := setupStack(t, &stubSaver{})

	if w := doJSON(t, r, http.MethodPost, "/api/v1/jobs", `{"title":"Sales Agent"}`); w.Code != http.StatusCreated {
		t.Fatalf("create job status = %d", w.Code)
	}

	w := doJSON(t, r, http.MethodPost, "/api/v1/jobs/1/apply", `{"name":"A","email":"not-an-email"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var resp struct {
		Success bool              `json:"success"`
		Errors  map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Success {
		t.Error("expected failure envelope")
	}
	if _, ok := resp.Errors["name"]; !ok {
		t.Errorf("expected validation error for name, got %v", resp.Errors)
	}
	if _, ok := resp.Errors["email"]; !ok {
		t.Errorf("expected validation error for email, got %v", resp.Errors)
	}
}

func TestApplyHandler_MissingJob(t *testing.T) {
	r, _ := setupStack(t, &stubSaver{})

	w := doJSON(t, r, http.MethodPost, "/api/v1/jobs/42/apply", `{"name":"Amira Hassan","email":"amira@example.com"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404, body %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Job not found") {
		t.Errorf("body = %s, want job not found message", w.Body.String())
	}
}

func TestApplyHandler_StoreFailure(t *testing.T) {
	saver := &stubSaver{err: errors.New("disk full")}
	r, _ := setupStack(t, saver)

	if w := doJSON(t, r, http.MethodPost, "/api/v1/jobs", `{"title":"Sales Agent"}`); w.Code != http.StatusCreated {
		t.Fatalf("create job status = %d", w.Code)
	}

	body, contentType := applyForm(t, map[string]string{
		"name":  "Amira Hassan",
		"email": "amira@example.com",
	}, "cv.pdf")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs/1/apply", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500, body %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "failed to store uploaded file") {
		t.Errorf("body = %s, want store failure message", w.Body.String())
	}
}

func TestJobHandler_PublicListing(t *testing.T) {
	r, _ := setupStack(t, &stubSaver{})

	for _, title := range []string{"Backend Engineer", "Sales Agent"} {
		if w := doJSON(t, r, http.MethodPost, "/api/v1/jobs", `{"title":"`+title+`"}`); w.Code != http.StatusCreated {
			t.Fatalf("create job %q status = %d", title, w.Code)
		}
	}
	if w := doJSON(t, r, http.MethodDelete, "/api/v1/jobs/2", ""); w.Code != http.StatusOK {
		t.Fatalf("delete job status = %d", w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/api/v1/jobs", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}

	var resp struct {
		Pagination struct {
			TotalItems int64 `json:"totalItems"`
		} `json:"pagination"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Pagination.TotalItems != 1 {
		t.Errorf("totalItems = %d, want soft-deleted postings hidden", resp.Pagination.TotalItems)
	}
}
