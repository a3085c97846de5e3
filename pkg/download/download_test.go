// SPDX-License-Identifier: Apache-2.0
package download

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestBytes(t *testing.T) {
	body := []byte("payload-bytes")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Test") != "1" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		w.Write(body)
	}))
	defer srv.Close()

	var last float64
	got, err := Bytes(context.Background(), srv.URL, &Options{
		Headers:          map[string]string{"X-Test": "1"},
		ProgressCallback: func(p float64) { last = p },
	})
	if err != nil {
		t.Fatalf("Bytes() error: %v", err)
	}
	if string(got) != string(body) {
		t.Errorf("got %q, want %q", got, body)
	}
	if last != 1 {
		t.Errorf("expected final progress 1, got %v", last)
	}

	if _, err := Bytes(context.Background(), srv.URL, nil); err == nil {
		t.Error("expected error for non-200 status")
	}
}

func TestIsURL(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{in: "https://example.com/app.xz", want: true},
		{in: "http://localhost/app", want: true},
		{in: "./dist/app.xz", want: false},
		{in: "ftp://example.com/app", want: false},
	}

	for _, tt := range tests {
		if got := IsURL(tt.in); got != tt.want {
			t.Errorf("IsURL(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
