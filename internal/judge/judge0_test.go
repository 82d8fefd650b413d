package judge

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestJudge0Client_Submit(t *testing.T) {
	var gotPath, gotKey, gotHost string
	var gotSub Submission

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.RequestURI()
		gotKey = r.Header.Get("X-RapidAPI-Key")
		gotHost = r.Header.Get("X-RapidAPI-Host")
		if err := json.NewDecoder(r.Body).Decode(&gotSub); err != nil {
			t.Errorf("failed to decode submission: %v", err)
		}

		stdout := "5\n"
		json.NewEncoder(w).Encode(Result{
			Status: Status{ID: 3, Description: "Accepted"},
			Stdout: &stdout,
		})
	}))
	defer server.Close()

	client := NewJudge0Client(server.URL, "test-key", "test-host", 5*time.Second, zap.NewNop())

	result, err := client.Submit(context.Background(), Submission{
		LanguageID: 71,
		SourceCode: "print(2+3)",
		Stdin:      "",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/submissions?base64_encoded=false&wait=true" {
		t.Errorf("unexpected request path: %s", gotPath)
	}
	if gotKey != "test-key" {
		t.Errorf("expected API key header, got %q", gotKey)
	}
	if gotHost != "test-host" {
		t.Errorf("expected API host header, got %q", gotHost)
	}
	if gotSub.LanguageID != 71 {
		t.Errorf("expected language_id 71, got %d", gotSub.LanguageID)
	}
	if gotSub.SourceCode != "print(2+3)" {
		t.Errorf("unexpected source_code: %q", gotSub.SourceCode)
	}

	if result.Status.ID != 3 {
		t.Errorf("expected status 3, got %d", result.Status.ID)
	}
	if result.Stdout == nil || *result.Stdout != "5\n" {
		t.Errorf("expected stdout %q, got %v", "5\n", result.Stdout)
	}
}

func TestJudge0Client_NullChannels(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":{"id":6,"description":"Compilation Error"},"stdout":null,"stderr":null,"compile_output":null}`))
	}))
	defer server.Close()

	client := NewJudge0Client(server.URL, "k", "h", 5*time.Second, zap.NewNop())

	result, err := client.Submit(context.Background(), Submission{LanguageID: 54, SourceCode: "int main("})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.CompileOutput != nil {
		t.Errorf("expected nil compile_output, got %q", *result.CompileOutput)
	}
	if result.Verdict() != VerdictCompileError {
		t.Errorf("expected compile error verdict, got %v", result.Verdict())
	}
}

func TestJudge0Client_UpstreamHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewJudge0Client(server.URL, "k", "h", 5*time.Second, zap.NewNop())

	_, err := client.Submit(context.Background(), Submission{LanguageID: 71, SourceCode: "print(1)"})
	if err == nil {
		t.Fatal("expected error on non-2xx upstream status")
	}
}

func TestJudge0Client_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := NewJudge0Client(server.URL, "k", "h", time.Second, zap.NewNop())

	_, err := client.Submit(context.Background(), Submission{LanguageID: 71, SourceCode: "print(1)"})
	if err == nil {
		t.Fatal("expected error on transport failure")
	}
}
