package password_test

import (
	"strings"
	"testing"
	"time"

	"github.com/calperez/auth-service/internal/password"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hashed, err := password.Hash("Valid1Pass!")
	require.NoError(t, err)
	assert.NotEqual(t, "Valid1Pass!", hashed)
	assert.True(t, strings.HasPrefix(hashed, "$2"), "expected a bcrypt hash, got %q", hashed)

	assert.True(t, password.Verify("Valid1Pass!", hashed))
	assert.False(t, password.Verify("Valid1Pass?", hashed))
	assert.False(t, password.Verify("", hashed))
}

func TestHashProducesUniqueSalts(t *testing.T) {
	first, err := password.Hash("Valid1Pass!")
	require.NoError(t, err)
	second, err := password.Hash("Valid1Pass!")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "two hashes of the same password must differ by salt")
}

func TestVerifyGarbageHash(t *testing.T) {
	assert.False(t, password.Verify("Valid1Pass!", "not-a-bcrypt-hash"))
}

func TestFakeVerifyCost(t *testing.T) {
	hashed, err := password.Hash("Valid1Pass!")
	require.NoError(t, err)

	start := time.Now()
	password.Verify("wrong-password", hashed)
	realCost := time.Since(start)

	start = time.Now()
	password.FakeVerify()
	fakeCost := time.Since(start)

	// Not a strict constant-time guarantee, just the same order of
	// magnitude so unknown-email logins are not obviously cheaper.
	assert.Greater(t, fakeCost, realCost/10, "fake verification is too cheap (real=%v fake=%v)", realCost, fakeCost)
}
