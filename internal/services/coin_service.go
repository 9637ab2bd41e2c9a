package services

import (
	"database/sql"
	"fmt"

	"github.com/adiyatma/coin-tracker-be/internal/models"
)

// CoinServiceProvider defines the interface for catalog services.
type CoinServiceProvider interface {
	GetAllCoins() ([]models.Coin, error)
	GetCoinByID(id int64) (models.Coin, error)
	ReplaceAll(coins []models.Coin) (int, error)
}

// CoinService provides read access to the coin catalog and the wholesale
// replace used by the ingestion job.
type CoinService struct {
	db *sql.DB
}

// NewCoinService creates a new CoinService.
func NewCoinService(db *sql.DB) *CoinService {
	return &CoinService{db: db}
}

// GetAllCoins retrieves the full catalog ordered by market rank.
func (s *CoinService) GetAllCoins() ([]models.Coin, error) {
	rows, err := s.db.Query("SELECT id, name, short_name, rank, price_usd, price_idr FROM coins ORDER BY rank")
	if err != nil {
		return nil, fmt.Errorf("failed to query coins: %w", err)
	}
	defer rows.Close()

	var coins []models.Coin
	for rows.Next() {
		var coin models.Coin
		if err := rows.Scan(&coin.ID, &coin.Name, &coin.ShortName, &coin.Rank, &coin.PriceUsd, &coin.PriceIdr); err != nil {
			return nil, fmt.Errorf("failed to scan coin: %w", err)
		}
		coins = append(coins, coin)
	}
	return coins, rows.Err()
}

// GetCoinByID retrieves a single catalog entry.
func (s *CoinService) GetCoinByID(id int64) (models.Coin, error) {
	var coin models.Coin
	row := s.db.QueryRow("SELECT id, name, short_name, rank, price_usd, price_idr FROM coins WHERE id = ?", id)
	err := row.Scan(&coin.ID, &coin.Name, &coin.ShortName, &coin.Rank, &coin.PriceUsd, &coin.PriceIdr)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Coin{}, ErrCoinNotFound
		}
		return models.Coin{}, fmt.Errorf("failed to get coin: %w", err)
	}
	return coin, nil
}

// ReplaceAll swaps the entire catalog for the given snapshot in one
// transaction, so readers never observe a half-loaded catalog. Coin ids are
// reassigned on every load; tracking edges pointing at ids that did not come
// back simply stop resolving until the coin reappears.
func (s *CoinService) ReplaceAll(coins []models.Coin) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin catalog reload: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM coins"); err != nil {
		return 0, fmt.Errorf("failed to clear catalog: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO coins (name, short_name, rank, price_usd, price_idr) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("failed to prepare catalog insert: %w", err)
	}
	defer stmt.Close()

	for _, coin := range coins {
		if _, err := stmt.Exec(coin.Name, coin.ShortName, coin.Rank, coin.PriceUsd, coin.PriceIdr); err != nil {
			return 0, fmt.Errorf("failed to insert coin %s: %w", coin.ShortName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit catalog reload: %w", err)
	}
	return len(coins), nil
}
