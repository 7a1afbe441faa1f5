package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/rsweeney/sleepaid/internal/avatar"
)

func newAvatarHandler(t *testing.T) *AvatarHandler {
	t.Helper()
	store, err := avatar.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	return NewAvatarHandler(store)
}

func TestAvatarHandler_PutGetDelete(t *testing.T) {
	handler := newAvatarHandler(t)
	userID := uuid.New().String()
	image := []byte("\x89PNG\r\n\x1a\nfake-image-bytes")

	// Upload
	req := httptest.NewRequest(http.MethodPut, "/v1/users/"+userID+"/avatar", bytes.NewReader(image))
	req = withUserParam(req, userID)
	rec := httptest.NewRecorder()
	handler.Put(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("Put() status = %d, body: %s", rec.Code, rec.Body.String())
	}

	// Fetch it back
	req = httptest.NewRequest(http.MethodGet, "/v1/users/"+userID+"/avatar", nil)
	req = withUserParam(req, userID)
	rec = httptest.NewRecorder()
	handler.Get(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("Get() status = %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "image/png" {
		t.Errorf("Content-Type = %q", got)
	}
	if !bytes.Equal(rec.Body.Bytes(), image) {
		t.Error("fetched avatar differs from upload")
	}

	// Remove
	req = httptest.NewRequest(http.MethodDelete, "/v1/users/"+userID+"/avatar", nil)
	req = withUserParam(req, userID)
	rec = httptest.NewRecorder()
	handler.Delete(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("Delete() status = %d", rec.Code)
	}

	// Gone now
	req = httptest.NewRequest(http.MethodGet, "/v1/users/"+userID+"/avatar", nil)
	req = withUserParam(req, userID)
	rec = httptest.NewRecorder()
	handler.Get(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("Get() after delete status = %d, want 404", rec.Code)
	}
}

func TestAvatarHandler_PutEmptyBody(t *testing.T) {
	handler := newAvatarHandler(t)
	userID := uuid.New().String()

	req := httptest.NewRequest(http.MethodPut, "/v1/users/"+userID+"/avatar", bytes.NewReader(nil))
	req = withUserParam(req, userID)
	rec := httptest.NewRecorder()
	handler.Put(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Put() with empty body status = %d, want 400", rec.Code)
	}
}

func TestAvatarHandler_DeleteMissing(t *testing.T) {
	handler := newAvatarHandler(t)
	userID := uuid.New().String()

	req := httptest.NewRequest(http.MethodDelete, "/v1/users/"+userID+"/avatar", nil)
	req = withUserParam(req, userID)
	rec := httptest.NewRecorder()
	handler.Delete(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("Delete() missing avatar status = %d, want 404", rec.Code)
	}
}
