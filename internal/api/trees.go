// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package api implements the HTTP endpoints served by `funtree serve`.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"funtree/internal/logger"
	"funtree/internal/tree"

	"github.com/gorilla/mux"
)

// Server holds the settings shared by the handlers.
type Server struct {
	// MaxSize bounds the accepted size; 0 disables the bound
	MaxSize int
}

// RegisterTreeRoutes wires the tree endpoints onto router.
func (s *Server) RegisterTreeRoutes(router *mux.Router) {
	router.HandleFunc("/healthz", healthHandler).Methods("GET")
	router.HandleFunc("/tree/{size}", s.getTreeHandler).Methods("GET")
}

// NewRouter returns a router with every funtree route registered.
func (s *Server) NewRouter() *mux.Router {
	router := mux.NewRouter()
	s.RegisterTreeRoutes(router)
	return router
}

// writeJSONResponse writes a JSON response with CORS headers
func writeJSONResponse(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	json.NewEncoder(w).Encode(data)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "ok")
}

// getTreeHandler serves GET /tree/{size}.
//
// Query parameters:
// - format: text (default), yaml or json
//
// Response:
// - 200 OK: the rendered tree
// - 400 Bad Request: size is not a non-negative integer, exceeds the bound, or format is unknown
// - 500 Internal Server Error: the tree could not be encoded
func (s *Server) getTreeHandler(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["size"]

	size, err := tree.ParseSize(raw)
	if err == nil {
		err = tree.CheckMax(size, s.MaxSize)
	}
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, tree.ErrInvalidArgument) {
			status = http.StatusBadRequest
		}
		logger.Warn("rejected tree request", "size", raw, "error", err)
		http.Error(w, err.Error(), status)
		return
	}

	format := r.URL.Query().Get("format")
	logger.Debug("serving tree", "size", int(size), "format", format)

	switch format {
	case "", "text":
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if err := tree.Render(w, size); err != nil {
			logger.Error("failed to write tree response", "error", err)
		}
	case "yaml":
		out, err := tree.NewDocument(size).YAML()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/yaml")
		fmt.Fprint(w, out)
	case "json":
		writeJSONResponse(w, tree.NewDocument(size))
	default:
		http.Error(w, fmt.Sprintf("unknown format %q", format), http.StatusBadRequest)
	}
}
