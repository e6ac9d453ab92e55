package address

import (
	"fmt"

	"uk.co.dudmesh.contacts/internal/model"
	"uk.co.dudmesh.contacts/internal/store"
)

// ContactGate confirms that a contact belongs to a user before any address
// under it may be touched.
type ContactGate interface {
	CheckContactMustExists(username string, contactID model.ContactID) (*model.Contact, error)
}

type service struct {
	store    *store.Store
	contacts ContactGate
}

func New(store *store.Store, contacts ContactGate) *service {
	return &service{store, contacts}
}

func (s *service) Create(user *model.User, params *model.CreateAddressRequest) (*model.AddressResponse, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.contacts.CheckContactMustExists(user.Username, params.ContactID); err != nil {
		return nil, err
	}

	address := &model.Address{
		ContactID:  params.ContactID,
		Street:     params.Street,
		City:       params.City,
		Province:   params.Province,
		Country:    params.Country,
		PostalCode: params.PostalCode,
	}
	if err := s.store.CreateAddress(address); err != nil {
		return nil, fmt.Errorf("creating address: %w", err)
	}

	return address.Response(), nil
}

func (s *service) CheckAddressMustExists(contactID model.ContactID, addressID model.AddressID) (*model.Address, error) {
	return s.store.FindAddress(contactID, addressID)
}

func (s *service) Get(user *model.User, params *model.GetAddressRequest) (*model.AddressResponse, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.contacts.CheckContactMustExists(user.Username, params.ContactID); err != nil {
		return nil, err
	}

	address, err := s.CheckAddressMustExists(params.ContactID, params.AddressID)
	if err != nil {
		return nil, err
	}
	return address.Response(), nil
}

func (s *service) Update(user *model.User, params *model.UpdateAddressRequest) (*model.AddressResponse, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.contacts.CheckContactMustExists(user.Username, params.ContactID); err != nil {
		return nil, err
	}

	address, err := s.CheckAddressMustExists(params.ContactID, params.ID)
	if err != nil {
		return nil, err
	}

	if params.Street != "" {
		address.Street = params.Street
	}
	if params.City != "" {
		address.City = params.City
	}
	if params.Province != "" {
		address.Province = params.Province
	}
	address.Country = params.Country
	address.PostalCode = params.PostalCode
	if err := s.store.UpdateAddress(address); err != nil {
		return nil, fmt.Errorf("updating address: %w", err)
	}

	return address.Response(), nil
}

func (s *service) Remove(user *model.User, params *model.RemoveAddressRequest) (*model.AddressResponse, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.contacts.CheckContactMustExists(user.Username, params.ContactID); err != nil {
		return nil, err
	}

	address, err := s.CheckAddressMustExists(params.ContactID, params.AddressID)
	if err != nil {
		return nil, err
	}

	if err := s.store.DeleteAddress(params.ContactID, params.AddressID); err != nil {
		return nil, fmt.Errorf("deleting address: %w", err)
	}

	return address.Response(), nil
}

func (s *service) List(user *model.User, contactID model.ContactID) ([]model.AddressResponse, error) {
	if _, err := s.contacts.CheckContactMustExists(user.Username, contactID); err != nil {
		return nil, err
	}

	addresses, err := s.store.ListAddresses(contactID)
	if err != nil {
		return nil, fmt.Errorf("listing addresses: %w", err)
	}

	responses := make([]model.AddressResponse, len(addresses))
	for i := range addresses {
		responses[i] = *addresses[i].Response()
	}
	return responses, nil
}
