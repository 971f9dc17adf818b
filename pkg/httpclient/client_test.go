package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFetchHTMLBrowserHeaders(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte("<html><body>ok</body></html>"))
	}))
	defer server.Close()

	client := NewClient(BrowserClient)
	body, err := client.FetchHTML(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("FetchHTML failed: %v", err)
	}
	if !strings.Contains(body, "ok") {
		t.Errorf("Expected body content, got '%s'", body)
	}
	if !strings.Contains(gotUA, "Mozilla/5.0") {
		t.Errorf("Expected browser User-Agent, got '%s'", gotUA)
	}
}

func TestFetchHTMLStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(PlainClient)
	if _, err := client.FetchHTML(context.Background(), server.URL); err == nil {
		t.Error("Expected error for 404 response")
	}
}
