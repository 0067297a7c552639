package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFullName(t *testing.T) {
	require.Equal(t, "Foo Bar", User{FirstName: "Foo", LastName: "Bar"}.FullName())
	require.Equal(t, "Foo", User{FirstName: "Foo"}.FullName())
	require.Equal(t, "Bar", User{LastName: "Bar"}.FullName())
	require.Equal(t, "", User{}.FullName())
}

func TestPasswordHashNeverMarshals(t *testing.T) {
	hash := "$2a$10$fakehash"
	b, err := json.Marshal(User{Username: "foobar", PasswordHash: &hash})
	require.NoError(t, err)
	require.NotContains(t, string(b), "fakehash")
}
