package discord

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSendMessage(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected method %q, got %q", http.MethodPost, r.Method)
		}
		if r.URL.Path != "/channels/123456/messages" {
			t.Errorf("Unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bot test-token" {
			t.Errorf("Expected authorization %q, got %q", "Bot test-token", got)
		}
		var payload struct {
			Content string `json:"content"`
		}
		err := json.NewDecoder(r.Body).Decode(&payload)
		if err != nil {
			t.Errorf("Unexpected error decoding payload: %+v", err)
		}
		if payload.Content != "hello" {
			t.Errorf("Expected content %q, got %q", "hello", payload.Content)
		}
		w.Header().Set("content-type", "application/json")
		_, err = w.Write([]byte(`{"id":"1"}`))
		if err != nil {
			t.Errorf("Unexpected error writing response: %+v", err)
		}
	}))
	defer server.Close()

	session := NewSession(server.Client(), server.URL, "test-token")
	err := session.SendMessage(context.Background(), "123456", "hello")
	if err != nil {
		t.Fatalf("Unexpected error sending message: %+v", err)
	}
}

func TestSendMessageAPIError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("content-type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, err := w.Write([]byte(`{"code":50001,"message":"Missing Access"}`))
		if err != nil {
			t.Errorf("Unexpected error writing response: %+v", err)
		}
	}))
	defer server.Close()

	session := NewSession(server.Client(), server.URL, "test-token")
	err := session.SendMessage(context.Background(), "123456", "hello")
	var apiErr APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected an APIError, got %+v", err)
	}
	if apiErr.Code != 50001 {
		t.Errorf("Expected code %d, got %d", 50001, apiErr.Code)
	}
	if apiErr.Status != http.StatusForbidden {
		t.Errorf("Expected status %d, got %d", http.StatusForbidden, apiErr.Status)
	}
	if apiErr.Message != "Missing Access" {
		t.Errorf("Expected message %q, got %q", "Missing Access", apiErr.Message)
	}
}
