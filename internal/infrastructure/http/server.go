package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"finbot-service/internal/application"
	"finbot-service/internal/domain"

	"github.com/go-chi/chi/v5"
)

type Server struct {
	market    *application.MarketService
	portfolio *application.PortfolioService
	ping      func(ctx context.Context) error
}

func NewServer(market *application.MarketService, portfolio *application.PortfolioService) *Server {
	return &Server{market: market, portfolio: portfolio}
}

// WithPing wires a readiness probe for the active portfolio store.
func (s *Server) WithPing(ping func(ctx context.Context) error) *Server {
	s.ping = ping
	return s
}

type marketResponse struct {
	Market  string               `json:"market"`
	Prices  []domain.PriceQuote  `json:"prices,omitempty"`
	Changes []domain.ChangeQuote `json:"changes,omitempty"`
}

func (s *Server) GetMarket(w http.ResponseWriter, r *http.Request) {
	market := application.Market(chi.URLParam(r, "market"))
	src, ok := s.market.Source(market)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown market")
		return
	}
	qs, err := src.Fetch(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, "upstream unavailable")
		return
	}
	resp := marketResponse{Market: string(market)}
	for _, inst := range qs.Instruments() {
		if q, ok := qs.Price(inst); ok {
			resp.Prices = append(resp.Prices, q)
			continue
		}
		if q, ok := qs.Change(inst); ok {
			resp.Changes = append(resp.Changes, q)
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

type portfolioResponse struct {
	UserID    string           `json:"user_id"`
	Holdings  domain.Holdings  `json:"holdings"`
	Valuation domain.Valuation `json:"valuation"`
}

func (s *Server) GetPortfolio(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	h, v, err := s.portfolio.Valuate(r.Context(), userID)
	if errors.Is(err, application.ErrNotFound) {
		writeError(w, http.StatusNotFound, "no portfolio for user")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "portfolio store unavailable")
		return
	}
	writeJSON(w, http.StatusOK, portfolioResponse{UserID: userID, Holdings: h, Valuation: v})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
