package contact

import (
	"fmt"

	"uk.co.dudmesh.contacts/internal/model"
	"uk.co.dudmesh.contacts/internal/store"
)

type service struct {
	store *store.Store
}

func New(store *store.Store) *service {
	return &service{store}
}

func (s *service) Create(user *model.User, params *model.CreateContactRequest) (*model.ContactResponse, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	contact := &model.Contact{
		Username:  user.Username,
		FirstName: params.FirstName,
		LastName:  params.LastName,
		Email:     params.Email,
		Phone:     params.Phone,
	}
	if err := s.store.CreateContact(contact); err != nil {
		return nil, fmt.Errorf("creating contact: %w", err)
	}

	return contact.Response(), nil
}

// CheckContactMustExists is the ownership gate: it resolves a contact only
// when it belongs to username. The address service goes through it before
// touching anything under a contact.
func (s *service) CheckContactMustExists(username string, contactID model.ContactID) (*model.Contact, error) {
	return s.store.FindContact(username, contactID)
}

func (s *service) Get(user *model.User, contactID model.ContactID) (*model.ContactResponse, error) {
	contact, err := s.CheckContactMustExists(user.Username, contactID)
	if err != nil {
		return nil, err
	}
	return contact.Response(), nil
}

func (s *service) Update(user *model.User, params *model.UpdateContactRequest) (*model.ContactResponse, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	contact, err := s.CheckContactMustExists(user.Username, params.ID)
	if err != nil {
		return nil, err
	}

	contact.FirstName = params.FirstName
	if params.LastName != "" {
		contact.LastName = params.LastName
	}
	if params.Email != "" {
		contact.Email = params.Email
	}
	if params.Phone != "" {
		contact.Phone = params.Phone
	}
	if err := s.store.UpdateContact(contact); err != nil {
		return nil, fmt.Errorf("updating contact: %w", err)
	}

	return contact.Response(), nil
}

func (s *service) Remove(user *model.User, contactID model.ContactID) (*model.ContactResponse, error) {
	contact, err := s.CheckContactMustExists(user.Username, contactID)
	if err != nil {
		return nil, err
	}

	if err := s.store.DeleteContact(user.Username, contactID); err != nil {
		return nil, fmt.Errorf("deleting contact: %w", err)
	}

	return contact.Response(), nil
}

// Search pages through the user's contacts. The total is taken from a
// separate count query over the same filters, so total_page covers the
// whole result set rather than the returned page.
func (s *service) Search(user *model.User, params *model.SearchContactRequest) ([]model.ContactResponse, *model.Paging, error) {
	if err := params.Validate(); err != nil {
		return nil, nil, err
	}

	filter := store.ContactFilter{
		Name:  params.Name,
		Email: params.Email,
		Phone: params.Phone,
	}

	skip := (params.Page - 1) * params.Size
	contacts, err := s.store.SearchContacts(user.Username, filter, params.Size, skip)
	if err != nil {
		return nil, nil, fmt.Errorf("searching contacts: %w", err)
	}

	total, err := s.store.CountContacts(user.Username, filter)
	if err != nil {
		return nil, nil, fmt.Errorf("counting contacts: %w", err)
	}

	responses := make([]model.ContactResponse, len(contacts))
	for i := range contacts {
		responses[i] = *contacts[i].Response()
	}

	paging := &model.Paging{
		CurrentPage: params.Page,
		Size:        params.Size,
		TotalPage:   (total + params.Size - 1) / params.Size,
	}
	return responses, paging, nil
}
