package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"uk.co.dudmesh.contacts/internal/model"
)

// HTTPErrorHandler maps service errors onto the wire. Ownership failures
// surface as plain not-found, so other users' data cannot be probed for;
// the duplicate-username conflict keeps the original API's 400 status.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "internal server error"

	var validationErr *model.ValidationError
	var httpErr *echo.HTTPError

	switch {
	case errors.As(err, &validationErr):
		status, message = http.StatusBadRequest, validationErr.Error()
	case errors.Is(err, model.ErrorUsernameExists):
		status, message = http.StatusBadRequest, model.ErrorUsernameExists.Error()
	case errors.Is(err, model.ErrorInvalidUsernameOrPassword):
		status, message = http.StatusUnauthorized, model.ErrorInvalidUsernameOrPassword.Error()
	case errors.Is(err, model.ErrorUnauthorized):
		status, message = http.StatusUnauthorized, model.ErrorUnauthorized.Error()
	case errors.Is(err, model.ErrorUserNotFound),
		errors.Is(err, model.ErrorContactNotFound),
		errors.Is(err, model.ErrorAddressNotFound):
		status, message = http.StatusNotFound, err.Error()
	case errors.As(err, &httpErr):
		status, message = httpErr.Code, fmt.Sprintf("%v", httpErr.Message)
	default:
		c.Logger().Errorf("request failed: %+v", err)
	}

	if err := c.JSON(status, model.WebResponse{Errors: message}); err != nil {
		c.Logger().Errorf("writing error response: %+v", err)
	}
}
