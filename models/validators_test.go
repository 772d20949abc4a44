package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeHexColor(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"ff0000", "#FF0000"},
		{"#ff0000", "#FF0000"},
		{" #AbCdEf ", "#ABCDEF"},
		{"00FF00", "#00FF00"},
	}
	for _, tc := range cases {
		got, err := NormalizeHexColor(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
	}
}

func TestNormalizeHexColorRejectsBadInput(t *testing.T) {
	for _, in := range []string{"", "fff", "ff00000", "gg0000", "#12345z"} {
		_, err := NormalizeHexColor(in)
		assert.Error(t, err, in)
	}
}

func TestValidateUsername(t *testing.T) {
	for _, username := range []string{"alice", "a.b", "a@b", "a+b", "a-b", "under_score", "User123"} {
		assert.NoError(t, ValidateUsername(username), username)
	}
	for _, username := range []string{"", "has space", "slash/name", "semi;colon", "q?mark"} {
		assert.Error(t, ValidateUsername(username), username)
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "alice@example.com", NormalizeEmail("Alice@EXAMPLE.com"))
	assert.Equal(t, "alice@example.com", NormalizeEmail("  alice@example.com  "))
	assert.Equal(t, "not-an-email", NormalizeEmail("not-an-email"))
}
