package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"uk.co.dudmesh.contacts/internal/model"
)

type ContactService interface {
	Create(user *model.User, params *model.CreateContactRequest) (*model.ContactResponse, error)
	Get(user *model.User, contactID model.ContactID) (*model.ContactResponse, error)
	Update(user *model.User, params *model.UpdateContactRequest) (*model.ContactResponse, error)
	Remove(user *model.User, contactID model.ContactID) (*model.ContactResponse, error)
	Search(user *model.User, params *model.SearchContactRequest) ([]model.ContactResponse, *model.Paging, error)
}

func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, &model.ValidationError{Field: name, Message: "must be a number"}
	}
	return id, nil
}

func queryInt(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &model.ValidationError{Field: name, Message: "must be a number"}
	}
	return value, nil
}

func CreateContact(contacts ContactService) echo.HandlerFunc {
	return func(c echo.Context) error {
		params := &model.CreateContactRequest{}
		if err := c.Bind(params); err != nil {
			return err
		}
		contact, err := contacts.Create(Principal(c), params)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, model.WebResponse{Data: contact})
	}
}

func GetContact(contacts ContactService) echo.HandlerFunc {
	return func(c echo.Context) error {
		contactID, err := pathID(c, "contactId")
		if err != nil {
			return err
		}
		contact, err := contacts.Get(Principal(c), model.ContactID(contactID))
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, model.WebResponse{Data: contact})
	}
}

func UpdateContact(contacts ContactService) echo.HandlerFunc {
	return func(c echo.Context) error {
		contactID, err := pathID(c, "contactId")
		if err != nil {
			return err
		}
		params := &model.UpdateContactRequest{}
		if err := c.Bind(params); err != nil {
			return err
		}
		params.ID = model.ContactID(contactID)
		contact, err := contacts.Update(Principal(c), params)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, model.WebResponse{Data: contact})
	}
}

func RemoveContact(contacts ContactService) echo.HandlerFunc {
	return func(c echo.Context) error {
		contactID, err := pathID(c, "contactId")
		if err != nil {
			return err
		}
		if _, err := contacts.Remove(Principal(c), model.ContactID(contactID)); err != nil {
			return err
		}
		return c.JSON(http.StatusOK, model.WebResponse{Data: true})
	}
}

func SearchContacts(contacts ContactService) echo.HandlerFunc {
	return func(c echo.Context) error {
		page, err := queryInt(c, "page")
		if err != nil {
			return err
		}
		size, err := queryInt(c, "size")
		if err != nil {
			return err
		}
		params := &model.SearchContactRequest{
			Name:  c.QueryParam("name"),
			Email: c.QueryParam("email"),
			Phone: c.QueryParam("phone"),
			Page:  page,
			Size:  size,
		}
		results, paging, err := contacts.Search(Principal(c), params)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, model.WebResponse{Data: results, Paging: paging})
	}
}
