package user

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"uk.co.dudmesh.contacts/internal/model"
	"uk.co.dudmesh.contacts/internal/store"
)

func testService(t *testing.T) *service {
	t.Helper()
	db, err := store.Open(strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(db)
}

func TestRegister(t *testing.T) {
	assert := assert.New(t)
	service := testService(t)

	params := &model.RegisterUserRequest{Username: "u1", Password: "p1", Name: "User One"}

	user, err := service.Register(params)
	assert.Nil(err)
	assert.Equal("u1", user.Username)
	assert.Equal("User One", user.Name)
	assert.Empty(user.Token)

	t.Run("duplicate username", func(t *testing.T) {
		_, err := service.Register(params)
		assert.ErrorIs(err, model.ErrorUsernameExists)
	})

	t.Run("password never echoed or stored raw", func(t *testing.T) {
		stored, err := service.store.FindUserByUsername("u1")
		assert.Nil(err)
		assert.NotEqual("p1", stored.Password)
	})
}

func TestLogin(t *testing.T) {
	assert := assert.New(t)
	service := testService(t)

	_, err := service.Register(&model.RegisterUserRequest{Username: "u1", Password: "p1", Name: "User One"})
	require.NoError(t, err)

	t.Run("wrong password and unknown user are indistinguishable", func(t *testing.T) {
		_, wrongPassword := service.Login(&model.LoginUserRequest{Username: "u1", Password: "nope"})
		_, unknownUser := service.Login(&model.LoginUserRequest{Username: "ghost", Password: "p1"})
		assert.ErrorIs(wrongPassword, model.ErrorInvalidUsernameOrPassword)
		assert.ErrorIs(unknownUser, model.ErrorInvalidUsernameOrPassword)
		assert.Equal(wrongPassword.Error(), unknownUser.Error())
	})

	t.Run("token resolves until logout", func(t *testing.T) {
		user, err := service.Login(&model.LoginUserRequest{Username: "u1", Password: "p1"})
		assert.Nil(err)
		assert.NotEmpty(user.Token)

		principal, err := service.Resolve(user.Token)
		assert.Nil(err)
		assert.Equal("u1", principal.Username)

		_, err = service.Logout(principal)
		assert.Nil(err)

		_, err = service.Resolve(user.Token)
		assert.ErrorIs(err, model.ErrorUserNotFound)
	})

	t.Run("relogin overwrites the previous token", func(t *testing.T) {
		first, err := service.Login(&model.LoginUserRequest{Username: "u1", Password: "p1"})
		assert.Nil(err)
		second, err := service.Login(&model.LoginUserRequest{Username: "u1", Password: "p1"})
		assert.Nil(err)
		assert.NotEqual(first.Token, second.Token)

		_, err = service.Resolve(first.Token)
		assert.ErrorIs(err, model.ErrorUserNotFound)
		_, err = service.Resolve(second.Token)
		assert.Nil(err)
	})
}

func TestUpdate(t *testing.T) {
	assert := assert.New(t)
	service := testService(t)

	_, err := service.Register(&model.RegisterUserRequest{Username: "u1", Password: "p1", Name: "User One"})
	require.NoError(t, err)
	principal, err := service.store.FindUserByUsername("u1")
	require.NoError(t, err)

	t.Run("password only leaves name untouched", func(t *testing.T) {
		updated, err := service.Update(principal, &model.UpdateUserRequest{Password: "p2"})
		assert.Nil(err)
		assert.Equal("User One", updated.Name)

		_, err = service.Login(&model.LoginUserRequest{Username: "u1", Password: "p1"})
		assert.ErrorIs(err, model.ErrorInvalidUsernameOrPassword)
		_, err = service.Login(&model.LoginUserRequest{Username: "u1", Password: "p2"})
		assert.Nil(err)
	})

	t.Run("name only leaves password untouched", func(t *testing.T) {
		principal, err := service.store.FindUserByUsername("u1")
		assert.Nil(err)
		updated, err := service.Update(principal, &model.UpdateUserRequest{Name: "Renamed"})
		assert.Nil(err)
		assert.Equal("Renamed", updated.Name)

		_, err = service.Login(&model.LoginUserRequest{Username: "u1", Password: "p2"})
		assert.Nil(err)
	})
}
