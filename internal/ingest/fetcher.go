package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/adiyatma/coin-tracker-be/internal/models"
	"github.com/adiyatma/coin-tracker-be/internal/services"
)

// Fetcher pulls the asset list from the upstream price source and converts it
// into catalog entries.
type Fetcher struct {
	apiURL     string
	usdIdrRate float64
	client     *http.Client
}

// NewFetcher creates a Fetcher for the given CoinCap-style assets endpoint.
func NewFetcher(apiURL string, usdIdrRate float64, timeout time.Duration) *Fetcher {
	return &Fetcher{
		apiURL:     apiURL,
		usdIdrRate: usdIdrRate,
		client:     &http.Client{Timeout: timeout},
	}
}

// The upstream serves numbers as strings ("priceUsd": "26927.31...").
type upstreamAsset struct {
	ID       string `json:"id"`
	Rank     string `json:"rank"`
	Name     string `json:"name"`
	PriceUsd string `json:"priceUsd"`
}

type upstreamResponse struct {
	Data []upstreamAsset `json:"data"`
}

// Fetch retrieves the current asset snapshot. Any transport, status or
// decode problem is reported as ErrUpstreamUnavailable; individual assets
// with unparsable numbers are skipped rather than failing the batch.
func (f *Fetcher) Fetch(ctx context.Context) ([]models.Coin, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", services.ErrUpstreamUnavailable, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", services.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: upstream returned status %d", services.ErrUpstreamUnavailable, resp.StatusCode)
	}

	var payload upstreamResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: malformed payload: %v", services.ErrUpstreamUnavailable, err)
	}

	coins := make([]models.Coin, 0, len(payload.Data))
	for _, asset := range payload.Data {
		priceUsd, err := strconv.ParseFloat(asset.PriceUsd, 64)
		if err != nil {
			log.Warn().Str("asset", asset.ID).Str("priceUsd", asset.PriceUsd).Msg("Skipping asset with unparsable price")
			continue
		}
		rank, err := strconv.Atoi(asset.Rank)
		if err != nil {
			log.Warn().Str("asset", asset.ID).Str("rank", asset.Rank).Msg("Skipping asset with unparsable rank")
			continue
		}

		coins = append(coins, models.Coin{
			Name:      asset.Name,
			ShortName: asset.ID,
			Rank:      rank,
			PriceUsd:  round2(priceUsd),
			PriceIdr:  round2(priceUsd * f.usdIdrRate),
		})
	}
	return coins, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
