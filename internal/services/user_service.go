package services

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/adiyatma/coin-tracker-be/internal/models"
)

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	Register(username, password string) (models.User, error)
	Authenticate(username, password string) (models.User, error)
	GetUserByID(id string) (models.User, error)
}

// UserService provides registration and credential verification.
type UserService struct {
	db *sql.DB
}

// NewUserService creates a new UserService.
func NewUserService(db *sql.DB) *UserService {
	return &UserService{db: db}
}

// Register creates a new user with a bcrypt-hashed password. The username's
// uniqueness is enforced by the UNIQUE constraint rather than a prior SELECT,
// so two concurrent registrations of the same name cannot both succeed.
func (s *UserService) Register(username, password string) (models.User, error) {
	if username == "" || password == "" {
		return models.User{}, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hashedPassword),
	}

	_, err = s.db.Exec("INSERT INTO users (id, username, password_hash) VALUES (?, ?, ?)",
		user.ID, user.Username, user.PasswordHash)
	if err != nil {
		if isUniqueViolation(err, "users.username") {
			return models.User{}, ErrDuplicateUsername
		}
		return models.User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	// Return user without password hash
	user.PasswordHash = ""
	return user, nil
}

// Authenticate verifies a user's credentials. Unknown usernames and wrong
// passwords both come back as ErrInvalidCredentials.
func (s *UserService) Authenticate(username, password string) (models.User, error) {
	user, err := s.getUserByUsername(username)
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	// Don't send the password hash to the client
	user.PasswordHash = ""
	return user, nil
}

// GetUserByID retrieves a single user by their ID.
func (s *UserService) GetUserByID(id string) (models.User, error) {
	var user models.User
	row := s.db.QueryRow("SELECT id, username, created_at FROM users WHERE id = ?", id)
	err := row.Scan(&user.ID, &user.Username, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// getUserByUsername retrieves a user including the password hash.
func (s *UserService) getUserByUsername(username string) (models.User, error) {
	var user models.User
	row := s.db.QueryRow("SELECT id, username, password_hash, created_at FROM users WHERE username = ?", username)
	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
