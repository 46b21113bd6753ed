// Package password wraps bcrypt hashing for stored credentials.
package password

import "golang.org/x/crypto/bcrypt"

// Hash returns the bcrypt hash of password with a fresh random salt.
// The salt is embedded in the returned string.
func Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether plain matches the stored bcrypt hash.
// A mismatch is not an error, just false.
func Verify(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}

// dummyHash is a fixed bcrypt hash at DefaultCost. Comparing any password
// against it costs the same as a real verification.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// FakeVerify burns one bcrypt comparison and discards the result. It is
// called on the unknown-user path so that its latency resembles a failed
// password check, making email enumeration by timing harder.
func FakeVerify() {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte("fake_password"))
}
