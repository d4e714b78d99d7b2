package dto

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemColorCreateDTO_Normalize(t *testing.T) {
	d := ItemColorCreateDTO{Name: " Red ", HexCode: "#AABBCC"}
	d.Normalize()
	assert.Equal(t, ItemColorCreateDTO{Name: "red", HexCode: "#aabbcc"}, d)
}

func TestItemColorCreateDTO_NormalizeHexPreservesLength(t *testing.T) {
	for _, hex := range []string{"#000000", "#FFFFFF", "#aBcDeF", "#09fA3c"} {
		d := ItemColorCreateDTO{Name: "x", HexCode: hex}
		d.Normalize()
		assert.Len(t, d.HexCode, len(hex))
		assert.Equal(t, strings.ToLower(hex), d.HexCode)
	}
}

func TestItemColorCreateDTO_NormalizeIdempotent(t *testing.T) {
	inputs := []ItemColorCreateDTO{
		{Name: " Sky Blue ", HexCode: "#87CEEB"},
		{Name: "ÉCRU", HexCode: "#c2b280"},
		{Name: "\tteal\t", HexCode: "#008080"},
	}
	for _, in := range inputs {
		once := in
		once.Normalize()
		twice := once
		twice.Normalize()
		assert.Equal(t, once, twice)
	}
}

func TestRegisterUserRequest_Normalize(t *testing.T) {
	r := RegisterUserRequest{Username: " Jane_Doe ", Email: " Jane@Example.COM ", Password: " Keep1! "}
	r.Normalize()
	assert.Equal(t, "Jane_Doe", r.Username)
	assert.Equal(t, "jane@example.com", r.Email)
	assert.Equal(t, " Keep1! ", r.Password, "passwords are never rewritten")
}

func TestTaskListDTOs_Normalize(t *testing.T) {
	c := TaskListCreateDTO{Name: "  Chores ", Description: " weekly "}
	c.Normalize()
	assert.Equal(t, "Chores", c.Name)
	assert.Equal(t, "weekly", c.Description)

	name := " Errands "
	u := TaskListUpdateDTO{Name: &name}
	u.Normalize()
	assert.Equal(t, "Errands", *u.Name)
	assert.Nil(t, u.Description)
	assert.Equal(t, " Errands ", name, "caller's string is not modified")
}

func TestNewCustomError(t *testing.T) {
	e := NewCustomError(404, "not found", nil)
	assert.Equal(t, 404, e.Status)
	assert.NotNil(t, e.Errors)
	assert.Empty(t, e.Errors)
}

func TestJSONKeysAreCamelCase(t *testing.T) {
	payloads := []any{
		AuthResponse{User: UserDTO{ID: 1}},
		RefreshRequest{RefreshToken: "tok"},
		ItemColorDTO{ID: 1},
		TaskListDTO{ID: 1},
	}
	for _, p := range payloads {
		b, err := json.Marshal(p)
		require.NoError(t, err)
		assert.NotContains(t, string(b), "_", "%T", p)
	}

	b, err := json.Marshal(AuthResponse{})
	require.NoError(t, err)
	for _, key := range []string{`"accessToken"`, `"refreshToken"`, `"expiresIn"`, `"createdAt"`} {
		assert.Contains(t, string(b), key)
	}
}
