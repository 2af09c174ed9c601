package domain

import (
	"context"
	"time"
)

// User represents a user entity in the system.
// A user can write articles, comment on them and follow other users.
type User struct {
	ID        int64     // Unique identifier
	Name      string    // Display name
	Username  string    // Login username (unique)
	Email     string    // Notification address
	Password  string    // Bcrypt hashed password
	CreatedAt time.Time // Account creation timestamp
	UpdatedAt time.Time // Last profile update timestamp

	// Followers 关注者列表, only filled by GetWithFollowers
	Followers []User
}

// UserRepository defines the contract for user data persistence.
type UserRepository interface {
	// GetByID retrieves a user by their ID.
	// Returns ErrNotFound if the user doesn't exist.
	GetByID(ctx context.Context, id int64) (User, error)

	// GetWithFollowers retrieves a user together with the users following
	// them. Returns ErrNotFound if the user doesn't exist; an empty
	// Followers slice is not an error.
	GetWithFollowers(ctx context.Context, id int64) (User, error)

	GetByIDs(ctx context.Context, userIDs []int64) ([]User, error)
}
