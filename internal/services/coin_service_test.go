package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adiyatma/coin-tracker-be/internal/models"
)

func TestCoinService_ReplaceAllAndGetAll(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCoinService(db)

	coins := seedCoins(t, svc)

	// Ordered by rank.
	assert.Equal(t, "bitcoin", coins[0].ShortName)
	assert.Equal(t, "ethereum", coins[1].ShortName)
	assert.Equal(t, "tether", coins[2].ShortName)
	assert.Equal(t, 26927.31, coins[0].PriceUsd)
}

func TestCoinService_GetCoinByID(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCoinService(db)

	coins := seedCoins(t, svc)

	coin, err := svc.GetCoinByID(coins[0].ID)
	require.NoError(t, err)
	assert.Equal(t, coins[0].ShortName, coin.ShortName)

	_, err = svc.GetCoinByID(9999)
	assert.ErrorIs(t, err, ErrCoinNotFound)
}

func TestCoinService_ReplaceAll_SwapsCatalog(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCoinService(db)

	old := seedCoins(t, svc)

	count, err := svc.ReplaceAll([]models.Coin{
		{Name: "Dogecoin", ShortName: "dogecoin", Rank: 1, PriceUsd: 0.06, PriceIdr: 936.53},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	coins, err := svc.GetAllCoins()
	require.NoError(t, err)
	require.Len(t, coins, 1)
	assert.Equal(t, "dogecoin", coins[0].ShortName)

	// Ids from the previous load no longer resolve.
	_, err = svc.GetCoinByID(old[0].ID)
	assert.ErrorIs(t, err, ErrCoinNotFound)
}

func TestCoinService_GetAllCoins_EmptyCatalog(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCoinService(db)

	coins, err := svc.GetAllCoins()
	require.NoError(t, err)
	assert.Empty(t, coins)
}
