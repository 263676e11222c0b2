package service

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	e := newEnv()

	resp, err := e.auth.Register(context.Background(), RegisterInput{
		Name:     "Ada Lovelace",
		Email:    "ada@example.edu",
		Password: "Sup3rSecret",
	})
	require.NoError(t, err)
	require.NotNil(t, resp.User)
	assert.Equal(t, "Ada Lovelace", resp.User.Name)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEqual(t, "Sup3rSecret", resp.User.PasswordHash)

	token, err := jwt.Parse(resp.AccessToken, func(*jwt.Token) (any, error) {
		return []byte(testJWTSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)
	sub, err := token.Claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID.String(), sub)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	e := newEnv()
	e.addUser(t, "Ada", "ada@example.edu")

	_, err := e.auth.Register(context.Background(), RegisterInput{
		Name:     "Imposter",
		Email:    "ada@example.edu",
		Password: "An0therPass",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)

	// Email uniqueness is case-insensitive.
	_, err = e.auth.Register(context.Background(), RegisterInput{
		Name:     "Imposter",
		Email:    "ADA@EXAMPLE.EDU",
		Password: "An0therPass",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	e := newEnv()
	user := e.addUser(t, "Ada", "ada@example.edu")

	resp, err := e.auth.Login(context.Background(), LoginInput{
		Email:    "ada@example.edu",
		Password: "Sup3rSecret",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, resp.User.ID)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestLoginInvalidCredentials(t *testing.T) {
	e := newEnv()
	e.addUser(t, "Ada", "ada@example.edu")

	_, err := e.auth.Login(context.Background(), LoginInput{
		Email:    "ada@example.edu",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, ErrInvalidCreds)

	_, err = e.auth.Login(context.Background(), LoginInput{
		Email:    "nobody@example.edu",
		Password: "Sup3rSecret",
	})
	assert.ErrorIs(t, err, ErrInvalidCreds)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := hashPassword("Sup3rSecret")
	require.NoError(t, err)
	assert.Contains(t, hash, ":")

	assert.True(t, verifyPassword("Sup3rSecret", hash))
	assert.False(t, verifyPassword("sup3rsecret", hash))
	assert.False(t, verifyPassword("Sup3rSecret", "not-a-valid-hash"))

	// Salted: hashing the same password twice yields different encodings.
	other, err := hashPassword("Sup3rSecret")
	require.NoError(t, err)
	assert.NotEqual(t, hash, other)
}
