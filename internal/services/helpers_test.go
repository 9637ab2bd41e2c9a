package services

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adiyatma/coin-tracker-be/internal/database"
	"github.com/adiyatma/coin-tracker-be/internal/models"
)

// setupTestDB opens a fresh in-memory database with migrations applied.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

// seedCoins loads a small catalog and returns it with assigned ids.
func seedCoins(t *testing.T, svc *CoinService) []models.Coin {
	t.Helper()

	_, err := svc.ReplaceAll([]models.Coin{
		{Name: "Bitcoin", ShortName: "bitcoin", Rank: 1, PriceUsd: 26927.31, PriceIdr: 420306484.66},
		{Name: "Ethereum", ShortName: "ethereum", Rank: 2, PriceUsd: 1659.40, PriceIdr: 25901408.66},
		{Name: "Tether", ShortName: "tether", Rank: 3, PriceUsd: 1.00, PriceIdr: 15608.90},
	})
	require.NoError(t, err)

	coins, err := svc.GetAllCoins()
	require.NoError(t, err)
	require.Len(t, coins, 3)
	return coins
}
