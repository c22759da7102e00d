// file: model/role_test.go

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	t.Run("known values map to themselves", func(t *testing.T) {
		assert.Equal(t, RoleClient, ParseRole("client"))
		assert.Equal(t, RoleExpert, ParseRole("expert"))
	})

	t.Run("unknown values fall back to the default", func(t *testing.T) {
		assert.Equal(t, DefaultRole, ParseRole(""))
		assert.Equal(t, DefaultRole, ParseRole("admin"))
		assert.Equal(t, DefaultRole, ParseRole("CLIENT"))
	})
}

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleClient.Valid())
	assert.True(t, RoleExpert.Valid())
	assert.False(t, Role("moderator").Valid())
	assert.False(t, Role("").Valid())
}

func TestRole_Label(t *testing.T) {
	assert.Equal(t, "Find an Expert", RoleClient.Label())
	assert.Equal(t, "Join as Expert", RoleExpert.Label())
}

func TestRole_SubjectLine(t *testing.T) {
	assert.Equal(t, "New signup: CLIENT", RoleClient.SubjectLine())
	assert.Equal(t, "New signup: EXPERT", RoleExpert.SubjectLine())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "form", StateForm.String())
	assert.Equal(t, "submitted", StateSubmitted.String())
}
