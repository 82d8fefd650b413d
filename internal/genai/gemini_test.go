package genai

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestGeminiClient_GenerateContent(t *testing.T) {
	var gotPath, gotKey, gotBody string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("failed to read body: %v", err)
		}
		gotBody = string(body)

		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Try a "},{"text":"two-pointer approach."}]}}]}`))
	}))
	defer server.Close()

	client := NewGeminiClient(server.URL, "test-key", "gemini-2.5-flash", 5*time.Second, zap.NewNop())

	text, err := client.GenerateContent(context.Background(), "how do I reverse a string?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/v1beta/models/gemini-2.5-flash:generateContent" {
		t.Errorf("unexpected request path: %s", gotPath)
	}
	if gotKey != "test-key" {
		t.Errorf("expected API key header, got %q", gotKey)
	}
	if !strings.Contains(gotBody, "how do I reverse a string?") {
		t.Errorf("request body should contain the prompt, got %s", gotBody)
	}
	if text != "Try a two-pointer approach." {
		t.Errorf("expected concatenated candidate parts, got %q", text)
	}
}

func TestGeminiClient_UpstreamHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"API key not valid"}}`, http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewGeminiClient(server.URL, "bad-key", "gemini-2.5-flash", 5*time.Second, zap.NewNop())

	_, err := client.GenerateContent(context.Background(), "hello")
	if err == nil {
		t.Fatal("expected error on non-2xx upstream status")
	}
}

func TestGeminiClient_NoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	client := NewGeminiClient(server.URL, "k", "gemini-2.5-flash", 5*time.Second, zap.NewNop())

	_, err := client.GenerateContent(context.Background(), "hello")
	if err == nil {
		t.Fatal("expected error when response has no candidates")
	}
}
