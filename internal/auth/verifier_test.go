package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNew(t *testing.T) {
	v, err := New(SchemePlaintext)
	require.NoError(t, err)
	assert.IsType(t, Plaintext{}, v)

	v, err = New(SchemeBcrypt)
	require.NoError(t, err)
	assert.IsType(t, &Bcrypt{}, v)

	_, err = New("sha1")
	assert.Error(t, err)
}

func TestPlaintext(t *testing.T) {
	v := Plaintext{}

	sealed, err := v.Seal("p")
	require.NoError(t, err)
	assert.Equal(t, "p", sealed)

	assert.True(t, v.Verify("p", "p"))
	assert.False(t, v.Verify("p", "P"))
	assert.False(t, v.Verify("", "p"))
	assert.False(t, v.Verify("pp", "p"))
}

func TestBcrypt(t *testing.T) {
	v := NewBcryptWithCost(bcrypt.MinCost)

	tests := []struct {
		name     string
		password string
	}{
		{name: "simple password", password: "password123"},
		{name: "symbols", password: "admin#1947"},
		{name: "unicode password", password: "पासवर्ड123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := v.Seal(tt.password)
			require.NoError(t, err)
			assert.NotEqual(t, tt.password, hash)

			assert.True(t, v.Verify(tt.password, hash))
			assert.False(t, v.Verify(tt.password+"x", hash))
			assert.False(t, v.Verify(tt.password, tt.password), "plaintext stored value must not verify")
		})
	}
}

func TestAccount_Matches(t *testing.T) {
	admin := Account{Email: "admin@admin.com", Password: "admin#1947"}

	assert.True(t, admin.Matches("admin@admin.com", "admin#1947"))
	assert.False(t, admin.Matches("admin@admin.com", "admin#1948"))
	assert.False(t, admin.Matches("Admin@admin.com", "admin#1947"))
	assert.False(t, Account{}.Matches("", ""), "an unset account never matches")
}

func TestBcrypt_PasswordTooLong(t *testing.T) {
	v := NewBcryptWithCost(bcrypt.MinCost)

	_, err := v.Seal(strings.Repeat("a", MaxBcryptPasswordLen))
	require.NoError(t, err)

	_, err = v.Seal(strings.Repeat("a", MaxBcryptPasswordLen+1))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}
