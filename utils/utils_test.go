package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trial-shop/models"
)

func TestFormatParticipantID(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"p01", "P01"},
		{"  p 01 ", "P-01"},
		{"lab_a  7", "LAB_A-7"},
	}
	for _, tt := range tests {
		got, err := FormatParticipantID(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	for _, bad := range []string{"", "   ", "p/01", "<script>", strings.Repeat("a", 65)} {
		_, err := FormatParticipantID(bad)
		assert.True(t, models.IsValidationError(err), "%q", bad)
	}
}

func TestSessionToken_RoundTrip(t *testing.T) {
	token, err := GenerateSessionToken("secret", "s-1", "P-01", time.Hour, time.Now())
	require.NoError(t, err)

	claims, err := ValidateSessionToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "s-1", claims.SessionID)
	assert.Equal(t, "P-01", claims.ParticipantID)
}

func TestSessionToken_Rejected(t *testing.T) {
	token, err := GenerateSessionToken("secret", "s-1", "P-01", time.Hour, time.Now())
	require.NoError(t, err)

	_, err = ValidateSessionToken("other", token)
	assert.Error(t, err)

	expired, err := GenerateSessionToken("secret", "s-1", "P-01", time.Minute, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	_, err = ValidateSessionToken("secret", expired)
	assert.Error(t, err)

	_, err = ValidateSessionToken("secret", "not-a-token")
	assert.Error(t, err)
}

func TestAdminKey(t *testing.T) {
	hash, err := HashAdminKey("open sesame")
	require.NoError(t, err)

	ok, err := VerifyAdminKey(hash, "open sesame")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, _ = VerifyAdminKey(hash, "wrong")
	assert.False(t, ok)

	ok, err = VerifyAdminKey("", "open sesame")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = HashAdminKey("")
	assert.Error(t, err)
}
