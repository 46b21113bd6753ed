package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/calperez/auth-service/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword satisfies the registration password policy.
const DefaultPassword = "Valid1Pass!"

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	email    string
	password string
	active   bool
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		email:    fmt.Sprintf("user_%s@example.com", uuid.New().String()[:8]),
		password: DefaultPassword,
		active:   true,
	}
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Inactive marks the user as deactivated
func (b *UserBuilder) Inactive() *UserBuilder {
	b.active = false
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		Email:          b.email,
		HashedPassword: string(hashedPassword),
		CreatedAt:      time.Now().UTC(),
		IsActive:       b.active,
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// UserPayload matches the API user object
type UserPayload struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	IsActive  bool      `json:"is_active"`
}

// AuthResponse matches the register/login response
type AuthResponse struct {
	Message string      `json:"message"`
	User    UserPayload `json:"user"`
}

// RegisterViaAPI registers the builder's user through the HTTP API using the
// given client and returns the response payload. The session cookie ends up
// in the client's jar.
func (b *UserBuilder) RegisterViaAPI(t *testing.T, ts *TestServer, client *http.Client) (*AuthResponse, string) {
	t.Helper()

	body, _ := json.Marshal(map[string]string{
		"email":    b.email,
		"password": b.password,
	})

	resp, err := client.Post(ts.APIURL("/auth/register"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to register user: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}

	var authResp AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&authResp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	return &authResp, b.password
}
