package models

// Coin is one entry of the price catalog. The catalog is owned by the
// ingestion job, which replaces it wholesale on every refresh; the rest of
// the system only reads it.
type Coin struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	ShortName string  `json:"shortName"` // Upstream asset identifier, e.g. "bitcoin"
	Rank      int     `json:"rank"`
	PriceUsd  float64 `json:"priceUsd"`
	PriceIdr  float64 `json:"priceIdr"`
}
