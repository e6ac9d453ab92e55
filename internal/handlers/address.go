package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"uk.co.dudmesh.contacts/internal/model"
)

type AddressService interface {
	Create(user *model.User, params *model.CreateAddressRequest) (*model.AddressResponse, error)
	Get(user *model.User, params *model.GetAddressRequest) (*model.AddressResponse, error)
	Update(user *model.User, params *model.UpdateAddressRequest) (*model.AddressResponse, error)
	Remove(user *model.User, params *model.RemoveAddressRequest) (*model.AddressResponse, error)
	List(user *model.User, contactID model.ContactID) ([]model.AddressResponse, error)
}

func CreateAddress(addresses AddressService) echo.HandlerFunc {
	return func(c echo.Context) error {
		contactID, err := pathID(c, "contactId")
		if err != nil {
			return err
		}
		params := &model.CreateAddressRequest{}
		if err := c.Bind(params); err != nil {
			return err
		}
		params.ContactID = model.ContactID(contactID)
		address, err := addresses.Create(Principal(c), params)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, model.WebResponse{Data: address})
	}
}

func GetAddress(addresses AddressService) echo.HandlerFunc {
	return func(c echo.Context) error {
		contactID, err := pathID(c, "contactId")
		if err != nil {
			return err
		}
		addressID, err := pathID(c, "addressId")
		if err != nil {
			return err
		}
		address, err := addresses.Get(Principal(c), &model.GetAddressRequest{
			ContactID: model.ContactID(contactID),
			AddressID: model.AddressID(addressID),
		})
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, model.WebResponse{Data: address})
	}
}

func UpdateAddress(addresses AddressService) echo.HandlerFunc {
	return func(c echo.Context) error {
		contactID, err := pathID(c, "contactId")
		if err != nil {
			return err
		}
		addressID, err := pathID(c, "addressId")
		if err != nil {
			return err
		}
		params := &model.UpdateAddressRequest{}
		if err := c.Bind(params); err != nil {
			return err
		}
		params.ID = model.AddressID(addressID)
		params.ContactID = model.ContactID(contactID)
		address, err := addresses.Update(Principal(c), params)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, model.WebResponse{Data: address})
	}
}

func RemoveAddress(addresses AddressService) echo.HandlerFunc {
	return func(c echo.Context) error {
		contactID, err := pathID(c, "contactId")
		if err != nil {
			return err
		}
		addressID, err := pathID(c, "addressId")
		if err != nil {
			return err
		}
		if _, err := addresses.Remove(Principal(c), &model.RemoveAddressRequest{
			ContactID: model.ContactID(contactID),
			AddressID: model.AddressID(addressID),
		}); err != nil {
			return err
		}
		return c.JSON(http.StatusOK, model.WebResponse{Data: true})
	}
}

func ListAddresses(addresses AddressService) echo.HandlerFunc {
	return func(c echo.Context) error {
		contactID, err := pathID(c, "contactId")
		if err != nil {
			return err
		}
		list, err := addresses.List(Principal(c), model.ContactID(contactID))
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, model.WebResponse{Data: list})
	}
}
