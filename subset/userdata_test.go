package subset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	toolKey  = &UserDataKey{Name: "tool"}
	otherKey = &UserDataKey{Name: "other"}
)

func TestUserDataReplace(t *testing.T) {
	in := New()
	require.NotNil(t, in)
	defer in.Destroy()
	var destroyed []any
	destroy := func(data any) { destroyed = append(destroyed, data) }

	assert.Nil(t, in.GetUserData(toolKey))
	assert.True(t, in.SetUserData(toolKey, "first", destroy, false))
	assert.Equal(t, "first", in.GetUserData(toolKey))

	assert.False(t, in.SetUserData(toolKey, "second", destroy, false), "collision without replace must fail")
	assert.Equal(t, "first", in.GetUserData(toolKey))
	assert.Empty(t, destroyed)

	assert.True(t, in.SetUserData(toolKey, "second", destroy, true))
	assert.Equal(t, "second", in.GetUserData(toolKey))
	assert.Equal(t, []any{"first"}, destroyed, "replaced data must be destroyed")
}

func TestUserDataDestroyedWithInput(t *testing.T) {
	in := New()
	require.NotNil(t, in)
	var destroyed []any
	destroy := func(data any) { destroyed = append(destroyed, data) }
	in.SetUserData(toolKey, 1, destroy, false)
	in.SetUserData(otherKey, 2, nil, false)
	Reference(in)
	in.Destroy()
	assert.Empty(t, destroyed, "user data must live as long as the input")
	assert.Equal(t, 1, in.GetUserData(toolKey))
	in.Destroy()
	assert.Equal(t, []any{1}, destroyed)
	assert.Nil(t, in.GetUserData(toolKey))
	assert.False(t, in.SetUserData(toolKey, 3, destroy, true), "destroyed input must not take user data")
}

func TestUserDataKeysByIdentity(t *testing.T) {
	in := New()
	defer in.Destroy()
	sameName := &UserDataKey{Name: "tool"}
	in.SetUserData(toolKey, "a", nil, false)
	assert.Nil(t, in.GetUserData(sameName), "keys are compared by identity")
	assert.False(t, in.SetUserData(nil, "x", nil, true), "nil key must be rejected")
	var nilInput *Input
	assert.False(t, nilInput.SetUserData(toolKey, "x", nil, true))
	assert.Nil(t, nilInput.GetUserData(toolKey))
}
