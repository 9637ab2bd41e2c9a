package models

// TrackedCoin is a coin joined with the watchlist entry that references it,
// as returned by the tracking list endpoint.
type TrackedCoin struct {
	CoinID    int64   `json:"coinId"`
	Name      string  `json:"name"`
	ShortName string  `json:"shortName"`
	Rank      int     `json:"rank"`
	PriceUsd  float64 `json:"priceUsd"`
	PriceIdr  float64 `json:"priceIdr"`
}
