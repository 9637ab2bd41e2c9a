package services

import (
	"database/sql"
	"fmt"

	"github.com/adiyatma/coin-tracker-be/internal/models"
)

// TrackingServiceProvider defines the interface for watchlist services.
type TrackingServiceProvider interface {
	AddTracking(userID string, coinID int64) error
	RemoveTracking(userID string, coinID int64) error
	GetTrackedCoins(userID string) ([]models.TrackedCoin, error)
}

// TrackingService manages the user/coin watchlist relation.
type TrackingService struct {
	db      *sql.DB
	coinSvc CoinServiceProvider
}

// NewTrackingService creates a new TrackingService.
func NewTrackingService(db *sql.DB, coinSvc CoinServiceProvider) *TrackingService {
	return &TrackingService{db: db, coinSvc: coinSvc}
}

// AddTracking subscribes the user to a coin. The coin's existence is checked
// against the catalog at call time, since ids can vanish on a refresh. The
// UNIQUE(user_id, coin_id) constraint guards against double-tracking.
func (s *TrackingService) AddTracking(userID string, coinID int64) error {
	if _, err := s.coinSvc.GetCoinByID(coinID); err != nil {
		return err
	}

	_, err := s.db.Exec("INSERT INTO user_coins (user_id, coin_id) VALUES (?, ?)", userID, coinID)
	if err != nil {
		if isUniqueViolation(err, "user_coins.user_id, user_coins.coin_id") {
			return ErrAlreadyTracked
		}
		return fmt.Errorf("failed to insert tracking: %w", err)
	}
	return nil
}

// RemoveTracking unsubscribes the user from a coin. Removing a coin that is
// not tracked is an error, not a no-op, so misbehaving clients hear about it.
func (s *TrackingService) RemoveTracking(userID string, coinID int64) error {
	res, err := s.db.Exec("DELETE FROM user_coins WHERE user_id = ? AND coin_id = ?", userID, coinID)
	if err != nil {
		return fmt.Errorf("failed to delete tracking: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return ErrNotTracked
	}
	return nil
}

// GetTrackedCoins lists the coins a user tracks, oldest subscription first.
// A user tracking nothing gets an empty list. Edges whose coin id fell out of
// the catalog on the last refresh are skipped by the join.
func (s *TrackingService) GetTrackedCoins(userID string) ([]models.TrackedCoin, error) {
	rows, err := s.db.Query(`
		SELECT coins.id, coins.name, coins.short_name, coins.rank, coins.price_usd, coins.price_idr
		FROM coins
		JOIN user_coins ON user_coins.coin_id = coins.id
		WHERE user_coins.user_id = ?
		ORDER BY user_coins.id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tracked coins: %w", err)
	}
	defer rows.Close()

	tracked := []models.TrackedCoin{}
	for rows.Next() {
		var tc models.TrackedCoin
		if err := rows.Scan(&tc.CoinID, &tc.Name, &tc.ShortName, &tc.Rank, &tc.PriceUsd, &tc.PriceIdr); err != nil {
			return nil, fmt.Errorf("failed to scan tracked coin: %w", err)
		}
		tracked = append(tracked, tc)
	}
	return tracked, rows.Err()
}
