// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"funtree/internal/tree"
)

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.NewRouter().ServeHTTP(rec, req)
	return rec
}

func TestGetTreeText(t *testing.T) {
	rec := get(t, &Server{}, "/tree/3")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got, want := rec.Body.String(), tree.String(3); got != want {
		t.Errorf("body = %q, want %q", got, want)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestGetTreeYAML(t *testing.T) {
	rec := get(t, &Server{}, "/tree/1?format=yaml")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "size: 1") {
		t.Errorf("body = %q, want YAML document", rec.Body.String())
	}
}

func TestGetTreeJSON(t *testing.T) {
	rec := get(t, &Server{}, "/tree/2?format=json")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var doc tree.Document
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if doc.Size != 2 || doc.Apex != "  *" || len(doc.Rows) != 2 {
		t.Errorf("doc = %+v", doc)
	}
}

func TestGetTreeRejectsBadRequests(t *testing.T) {
	tests := []struct {
		name   string
		target string
		server *Server
	}{
		{"non numeric", "/tree/abc", &Server{}},
		{"negative", "/tree/-2", &Server{}},
		{"over max", "/tree/11", &Server{MaxSize: 10}},
		{"unknown format", "/tree/2?format=xml", &Server{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, tt.server, tt.target)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestHealthz(t *testing.T) {
	rec := get(t, &Server{}, "/healthz")
	if rec.Code != http.StatusOK || strings.TrimSpace(rec.Body.String()) != "ok" {
		t.Errorf("healthz = %d %q", rec.Code, rec.Body.String())
	}
}

func TestPostNotAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/tree/3", nil)
	rec := httptest.NewRecorder()
	(&Server{}).NewRouter().ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}
