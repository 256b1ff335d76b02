package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/autogestion/dealership-backend/internal/session"
	"github.com/autogestion/dealership-backend/pkg/enums"
)

type stubSessionService struct {
	current   *session.Session
	err       error
	loggedOut bool
}

func (s *stubSessionService) Login(_ context.Context, username string, role enums.ActorRole) (*session.Session, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.current = &session.Session{ID: 1, Username: username, Role: role}
	return s.current, nil
}

func (s *stubSessionService) Current(context.Context) (*session.Session, bool) {
	if s.current == nil {
		return nil, false
	}
	return s.current, true
}

func (s *stubSessionService) Logout(context.Context) bool {
	s.loggedOut = true
	s.current = nil
	return true
}

func TestSessionLoginSuccess(t *testing.T) {
	stub := &stubSessionService{}
	handler := SessionLogin(stub, nil)

	payload := []byte(`{"username":"mgarcia","role":"seller"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/session", bytes.NewReader(payload))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d body=%s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Data session.Session `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Username != "mgarcia" || envelope.Data.Role != enums.ActorRoleSeller {
		t.Fatalf("session = %+v", envelope.Data)
	}
}

func TestSessionLoginRejectsUnknownRole(t *testing.T) {
	handler := SessionLogin(&stubSessionService{}, nil)

	payload := []byte(`{"username":"mgarcia","role":"janitor"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/session", bytes.NewReader(payload))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestSessionCurrentUnauthorized(t *testing.T) {
	handler := SessionCurrent(&stubSessionService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/session", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rec.Code)
	}
}

func TestSessionLogout(t *testing.T) {
	stub := &stubSessionService{current: &session.Session{ID: 1, Username: "mgarcia", Role: enums.ActorRoleAdmin}}
	handler := SessionLogout(stub, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/session", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if !stub.loggedOut {
		t.Fatal("Logout was not called")
	}
}
