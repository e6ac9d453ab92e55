package store

import (
	"database/sql"
	"errors"
	"fmt"

	"uk.co.dudmesh.contacts/internal/model"
)

func (s *Store) CreateAddress(address *model.Address) error {
	res, err := s.db.NamedExec(`insert into addresses
		(contact_id, street, city, province, country, postal_code)
		values(:contact_id, :street, :city, :province, :country, :postal_code)`, address)
	if err != nil {
		return fmt.Errorf("inserting address: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting address id: %w", err)
	}
	address.ID = model.AddressID(id)
	return nil
}

func (s *Store) FindAddress(contactID model.ContactID, id model.AddressID) (*model.Address, error) {
	address := &model.Address{}
	err := s.db.Get(address, `select * from addresses where id = ? and contact_id = ?`, id, contactID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrorAddressNotFound
		}
		return nil, fmt.Errorf("fetching address: %w", err)
	}
	return address, nil
}

func (s *Store) UpdateAddress(address *model.Address) error {
	res, err := s.db.NamedExec(`update addresses
		set street = :street, city = :city, province = :province,
			country = :country, postal_code = :postal_code
		where id = :id and contact_id = :contact_id`, address)
	if err != nil {
		return fmt.Errorf("updating address: %w", err)
	}
	return oneRowAffected(res)
}

func (s *Store) DeleteAddress(contactID model.ContactID, id model.AddressID) error {
	res, err := s.db.Exec(`delete from addresses where id = ? and contact_id = ?`, id, contactID)
	if err != nil {
		return fmt.Errorf("deleting address: %w", err)
	}
	return oneRowAffected(res)
}

func (s *Store) ListAddresses(contactID model.ContactID) ([]model.Address, error) {
	addresses := []model.Address{}
	err := s.db.Select(&addresses, `select * from addresses where contact_id = ?`, contactID)
	if err != nil {
		return nil, fmt.Errorf("listing addresses: %w", err)
	}
	return addresses, nil
}
