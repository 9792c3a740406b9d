package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shutterfolio/backend/internal/model"
	"github.com/shutterfolio/backend/internal/repository"
	"github.com/shutterfolio/backend/internal/service"
)

// ---------------------------------------------------------------------------
// POST /api/contact tests
// ---------------------------------------------------------------------------

func TestContactHandler_Submit_Success(t *testing.T) {
	var captured *model.ContactMessage
	mock := &mockContactService{
		submitFunc: func(ctx context.Context, msg *model.ContactMessage) error {
			captured = msg
			msg.ID = "M1"
			return nil
		},
	}
	h := NewContactHandler(mock)

	body := `{"name":"Alice","email":"test@example.com","phone":"0771234567","date":"12 Dec 2025","message":"Hello!"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d, body: %s", rec.Code, rec.Body.String())
	}
	if captured == nil {
		t.Fatal("expected Submit to be called with a ContactMessage, got nil")
	}
	if captured.Email != "test@example.com" || captured.Name != "Alice" || captured.Message != "Hello!" {
		t.Errorf("unexpected message %+v", captured)
	}
	if captured.Phone != "0771234567" || captured.Date != "12 Dec 2025" {
		t.Errorf("optional fields not forwarded: %+v", captured)
	}
	var resp map[string]string
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if resp["id"] != "M1" {
		t.Errorf("expected id M1 in response, got %v", resp)
	}
}

func TestContactHandler_Submit_MissingFieldMapsToCode(t *testing.T) {
	mock := &mockContactService{
		submitFunc: func(ctx context.Context, msg *model.ContactMessage) error {
			return &service.FieldError{Field: "email", Err: service.ErrMissingField}
		},
	}
	rec := httptest.NewRecorder()
	NewContactHandler(mock).Submit(rec, httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{"name":"Bob","message":"Hi"}`)))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if code := decodeError(t, rec); code != "email_required" {
		t.Errorf("expected email_required, got %q", code)
	}
}

func TestContactHandler_Submit_InvalidJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	NewContactHandler(&mockContactService{}).Submit(rec, httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{`)))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if code := decodeError(t, rec); code != "invalid_json" {
		t.Errorf("expected invalid_json, got %q", code)
	}
}

func TestContactHandler_Submit_ServiceError(t *testing.T) {
	mock := &mockContactService{
		submitFunc: func(ctx context.Context, msg *model.ContactMessage) error {
			return errors.New("db unavailable")
		},
	}
	rec := httptest.NewRecorder()
	NewContactHandler(mock).Submit(rec, httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{"name":"a","email":"a@b.c","message":"m"}`)))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
	if code := decodeError(t, rec); code != "submit_failed" {
		t.Errorf("expected submit_failed, got %q", code)
	}
}

// ---------------------------------------------------------------------------
// GET /api/admin/contacts tests
// ---------------------------------------------------------------------------

func TestContactHandler_AdminList_Pagination(t *testing.T) {
	var captured model.ContactListOptions
	mock := &mockContactService{
		listFunc: func(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error) {
			captured = opts
			return []*model.ContactMessage{
				{ID: "2", Name: "B", CreatedAt: model.NativeTimestamp(time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC))},
				{ID: "1", Name: "A", CreatedAt: model.ISOTimestamp("2024-05-01T00:00:00.000Z")},
			}, nil
		},
	}
	rec := httptest.NewRecorder()
	NewContactHandler(mock).AdminList(rec, httptest.NewRequest(http.MethodGet, "/api/admin/contacts?limit=10&offset=20", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if captured.Limit != 10 || captured.Offset != 20 {
		t.Errorf("expected limit=10 offset=20, got %+v", captured)
	}
	var resp struct {
		Messages []struct {
			ID        string `json:"id"`
			CreatedAt string `json:"created_at"`
		} `json:"messages"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Messages) != 2 || resp.Messages[0].ID != "2" {
		t.Fatalf("expected order preserved, got %+v", resp.Messages)
	}
	if resp.Messages[1].CreatedAt != "2024-05-01T00:00:00.000Z" {
		t.Errorf("expected legacy timestamp passed through, got %q", resp.Messages[1].CreatedAt)
	}
}

func TestContactHandler_AdminList_DefaultsAndBounds(t *testing.T) {
	var captured model.ContactListOptions
	mock := &mockContactService{
		listFunc: func(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error) {
			captured = opts
			return nil, nil
		},
	}
	rec := httptest.NewRecorder()
	NewContactHandler(mock).AdminList(rec, httptest.NewRequest(http.MethodGet, "/api/admin/contacts?limit=100000&offset=-3", nil))

	if captured.Limit != defaultContactPageSize || captured.Offset != 0 {
		t.Errorf("expected defaults, got %+v", captured)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != `{"messages":[]}` {
		t.Errorf("expected empty array, got %s", body)
	}
}

// ---------------------------------------------------------------------------
// DELETE /api/admin/contacts/{id} tests
// ---------------------------------------------------------------------------

func TestContactHandler_Delete(t *testing.T) {
	var gotID string
	mock := &mockContactService{
		deleteFunc: func(ctx context.Context, id string) error {
			gotID = id
			if id == "missing" {
				return repository.ErrNotFound
			}
			return nil
		},
	}
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /api/admin/contacts/{id}", NewContactHandler(mock).Delete)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/admin/contacts/M7", nil))
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
	if gotID != "M7" {
		t.Errorf("expected id M7, got %q", gotID)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/admin/contacts/missing", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
