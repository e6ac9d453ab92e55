package store

import (
	"database/sql"
	"errors"
	"fmt"

	"uk.co.dudmesh.contacts/internal/model"
)

func (s *Store) CountByUsername(username string) (int, error) {
	var count int
	err := s.db.Get(&count, `select count(*) from users where username = ?`, username)
	if err != nil {
		return 0, fmt.Errorf("counting users: %w", err)
	}
	return count, nil
}

func (s *Store) CreateUser(user *model.User) error {
	res, err := s.db.NamedExec(`insert into users
		(username, name, password)
		values(:username, :name, :password)`, user)
	if err != nil {
		return fmt.Errorf("inserting user: %w", err)
	}
	return oneRowAffected(res)
}

func (s *Store) FindUserByUsername(username string) (*model.User, error) {
	user := &model.User{}
	err := s.db.Get(user, `select * from users where username = ?`, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrorUserNotFound
		}
		return nil, fmt.Errorf("fetching user: %w", err)
	}
	return user, nil
}

func (s *Store) FindUserByToken(token string) (*model.User, error) {
	user := &model.User{}
	err := s.db.Get(user, `select * from users where token = ?`, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrorUserNotFound
		}
		return nil, fmt.Errorf("fetching user by token: %w", err)
	}
	return user, nil
}

func (s *Store) UpdateUser(user *model.User) error {
	res, err := s.db.NamedExec(`update users
		set name = :name, password = :password
		where username = :username`, user)
	if err != nil {
		return fmt.Errorf("updating user: %w", err)
	}
	return oneRowAffected(res)
}

func (s *Store) SetToken(username string, token string) error {
	res, err := s.db.Exec(`update users set token = ? where username = ?`, token, username)
	if err != nil {
		return fmt.Errorf("setting token: %w", err)
	}
	return oneRowAffected(res)
}

// ClearToken touches only the token column; the rest of the row is left
// exactly as it was.
func (s *Store) ClearToken(username string) error {
	res, err := s.db.Exec(`update users set token = null where username = ?`, username)
	if err != nil {
		return fmt.Errorf("clearing token: %w", err)
	}
	return oneRowAffected(res)
}
