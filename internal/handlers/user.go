package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"uk.co.dudmesh.contacts/internal/model"
)

type UserService interface {
	Register(params *model.RegisterUserRequest) (*model.UserResponse, error)
	Login(params *model.LoginUserRequest) (*model.UserResponse, error)
	Resolve(token string) (*model.User, error)
	Get(user *model.User) *model.UserResponse
	Update(user *model.User, params *model.UpdateUserRequest) (*model.UserResponse, error)
	Logout(user *model.User) (*model.UserResponse, error)
}

func RegisterUser(users UserService) echo.HandlerFunc {
	return func(c echo.Context) error {
		params := &model.RegisterUserRequest{}
		if err := c.Bind(params); err != nil {
			return err
		}
		c.Logger().Debugf("registering user %q", params.Username)
		user, err := users.Register(params)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, model.WebResponse{Data: user})
	}
}

func LoginUser(users UserService) echo.HandlerFunc {
	return func(c echo.Context) error {
		params := &model.LoginUserRequest{}
		if err := c.Bind(params); err != nil {
			return err
		}
		c.Logger().Debugf("login attempt for %q", params.Username)
		user, err := users.Login(params)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, model.WebResponse{Data: user})
	}
}

func CurrentUser(users UserService) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, model.WebResponse{Data: users.Get(Principal(c))})
	}
}

func UpdateUser(users UserService) echo.HandlerFunc {
	return func(c echo.Context) error {
		params := &model.UpdateUserRequest{}
		if err := c.Bind(params); err != nil {
			return err
		}
		user, err := users.Update(Principal(c), params)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, model.WebResponse{Data: user})
	}
}

func LogoutUser(users UserService) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := users.Logout(Principal(c))
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, model.WebResponse{Data: user})
	}
}
