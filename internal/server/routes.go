package server

import "net/http"

// registerRoutes sets up all REST API routes on the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/", s.handleRoot)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/version", s.handleVersion)

	mux.HandleFunc("/stock", s.handleStock)
	mux.HandleFunc("/predict", s.handlePredict)
	mux.HandleFunc("/news", s.handleNews)
	mux.HandleFunc("/suggest", s.handleSuggest)
}
