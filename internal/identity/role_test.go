package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	cases := []struct {
		raw  string
		want Role
	}{
		{"creator", RoleCreator},
		{"  Creator ", RoleCreator},
		{"REPRESENTATIVE", RoleRepresentative},
		{"admin", RoleAdmin},
	}
	for _, tc := range cases {
		got, err := ParseRole(tc.raw)
		assert.NoError(t, err, tc.raw)
		assert.Equal(t, tc.want, got, tc.raw)
	}

	for _, raw := range []string{"", "root", "creators"} {
		_, err := ParseRole(raw)
		assert.ErrorIs(t, err, ErrInvalidRole, raw)
	}
}
