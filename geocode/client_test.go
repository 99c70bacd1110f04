package geocode

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hfxtransit/assistant/config"
)

func testClient(url string) *Client {
	return NewClient(config.GeocodeConfig{URL: url, TimeoutMS: 2000})
}

func TestReverse_Decode(t *testing.T) {
	var gotUA, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"display_name":"1649 Lower Water St, Halifax, NS"}`))
	}))
	defer srv.Close()

	addr, err := testClient(srv.URL).Reverse(44.6476, -63.5683)
	if err != nil {
		t.Fatalf("Reverse: %v", err)
	}
	if addr != "1649 Lower Water St, Halifax, NS" {
		t.Errorf("address = %q", addr)
	}
	if gotUA != "transit_locator" {
		t.Errorf("User-Agent = %q, want transit_locator", gotUA)
	}
	for _, want := range []string{"format=jsonv2", "lat=44.6476", "lon=-63.5683"} {
		if !strings.Contains(gotQuery, want) {
			t.Errorf("query %q missing %q", gotQuery, want)
		}
	}
}

func TestReverse_NoKnownPlace(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	addr, err := testClient(srv.URL).Reverse(0, 0)
	if err != nil {
		t.Fatalf("Reverse: %v", err)
	}
	if addr != "" {
		t.Errorf("address = %q, want empty", addr)
	}
}

func TestReverse_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	if _, err := testClient(srv.URL).Reverse(44.65, -63.58); err == nil {
		t.Error("Reverse should fail on HTTP 429")
	}
}

func TestReverse_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	if _, err := testClient(srv.URL).Reverse(44.65, -63.58); err == nil {
		t.Error("Reverse should fail on a malformed payload")
	}
}
