package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(bcrypt.MinCost)

	t.Run("hash verifies against original password", func(t *testing.T) {
		t.Parallel()

		hashed, err := hasher.Hash("rahasia")
		require.NoError(t, err)
		require.NotEmpty(t, hashed)
		assert.NotEqual(t, "rahasia", hashed)

		assert.NoError(t, hasher.Compare(hashed, "rahasia"))
	})

	t.Run("compare rejects wrong password", func(t *testing.T) {
		t.Parallel()

		hashed, err := hasher.Hash("rahasia")
		require.NoError(t, err)

		assert.Error(t, hasher.Compare(hashed, "salah"))
	})

	t.Run("hashes are salted", func(t *testing.T) {
		t.Parallel()

		first, err := hasher.Hash("rahasia")
		require.NoError(t, err)
		second, err := hasher.Hash("rahasia")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})
}

func TestNewBcryptHasherDefaultsCost(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(0)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}

func TestUUIDTokenGenerator(t *testing.T) {
	t.Parallel()

	gen := NewUUIDTokenGenerator()

	token := gen.Generate()
	_, err := uuid.Parse(token)
	require.NoError(t, err, "tokens are well-formed UUIDs")

	assert.NotEqual(t, token, gen.Generate(), "tokens are unique per call")
}
