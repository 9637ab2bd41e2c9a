package handlers

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/adiyatma/coin-tracker-be/internal/models"
	"github.com/adiyatma/coin-tracker-be/internal/services"
)

// CatalogRefresher triggers an on-demand catalog reload from upstream.
type CatalogRefresher interface {
	Refresh(ctx context.Context) error
}

// CoinHandler handles HTTP requests for the coin catalog.
type CoinHandler struct {
	coins     services.CoinServiceProvider
	refresher CatalogRefresher
}

// NewCoinHandler creates a new CoinHandler.
func NewCoinHandler(coins services.CoinServiceProvider, refresher CatalogRefresher) *CoinHandler {
	return &CoinHandler{coins: coins, refresher: refresher}
}

// GetAll returns the full coin catalog.
func (h *CoinHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	coins, err := h.coins.GetAllCoins()
	if err != nil {
		log.Error().Err(err).Msg("Failed to retrieve coins")
		respondError(w, err)
		return
	}
	if coins == nil {
		coins = []models.Coin{}
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"data": coins})
}

// Refresh reloads the catalog from the upstream price source immediately,
// outside the regular schedule.
func (h *CoinHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.refresher.Refresh(r.Context()); err != nil {
		log.Error().Err(err).Msg("Manual catalog refresh failed")
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "catalog refreshed"})
}
