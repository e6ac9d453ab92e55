package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"uk.co.dudmesh.contacts/internal/model"
)

// ContactFilter holds the optional substring filters of a contact search.
// Present filters are ANDed together; Name matches either name column.
type ContactFilter struct {
	Name  string
	Email string
	Phone string
}

func (f ContactFilter) where(username string) (string, []interface{}) {
	clauses := []string{"username = ?"}
	args := []interface{}{username}

	if f.Name != "" {
		clauses = append(clauses, "(first_name like ? or last_name like ?)")
		pattern := "%" + f.Name + "%"
		args = append(args, pattern, pattern)
	}
	if f.Email != "" {
		clauses = append(clauses, "email like ?")
		args = append(args, "%"+f.Email+"%")
	}
	if f.Phone != "" {
		clauses = append(clauses, "phone like ?")
		args = append(args, "%"+f.Phone+"%")
	}

	return strings.Join(clauses, " and "), args
}

func (s *Store) CreateContact(contact *model.Contact) error {
	res, err := s.db.NamedExec(`insert into contacts
		(username, first_name, last_name, email, phone)
		values(:username, :first_name, :last_name, :email, :phone)`, contact)
	if err != nil {
		return fmt.Errorf("inserting contact: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting contact id: %w", err)
	}
	contact.ID = model.ContactID(id)
	return nil
}

// FindContact scopes the lookup to the owning username, so a contact owned
// by another user is indistinguishable from a missing one.
func (s *Store) FindContact(username string, id model.ContactID) (*model.Contact, error) {
	contact := &model.Contact{}
	err := s.db.Get(contact, `select * from contacts where id = ? and username = ?`, id, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrorContactNotFound
		}
		return nil, fmt.Errorf("fetching contact: %w", err)
	}
	return contact, nil
}

func (s *Store) UpdateContact(contact *model.Contact) error {
	res, err := s.db.NamedExec(`update contacts
		set first_name = :first_name, last_name = :last_name, email = :email, phone = :phone
		where id = :id and username = :username`, contact)
	if err != nil {
		return fmt.Errorf("updating contact: %w", err)
	}
	return oneRowAffected(res)
}

func (s *Store) DeleteContact(username string, id model.ContactID) error {
	res, err := s.db.Exec(`delete from contacts where id = ? and username = ?`, id, username)
	if err != nil {
		return fmt.Errorf("deleting contact: %w", err)
	}
	return oneRowAffected(res)
}

func (s *Store) SearchContacts(username string, filter ContactFilter, limit, offset int) ([]model.Contact, error) {
	where, args := filter.where(username)
	args = append(args, limit, offset)

	contacts := []model.Contact{}
	err := s.db.Select(&contacts, `select * from contacts where `+where+` limit ? offset ?`, args...)
	if err != nil {
		return nil, fmt.Errorf("searching contacts: %w", err)
	}
	return contacts, nil
}

// CountContacts applies the same filter set as SearchContacts without the
// page window, so paging totals cover the whole result set.
func (s *Store) CountContacts(username string, filter ContactFilter) (int, error) {
	where, args := filter.where(username)

	var count int
	err := s.db.Get(&count, `select count(*) from contacts where `+where, args...)
	if err != nil {
		return 0, fmt.Errorf("counting contacts: %w", err)
	}
	return count, nil
}
