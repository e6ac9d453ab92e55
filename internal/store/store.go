package store

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

type Store struct {
	db *sqlx.DB
}

// Open connects to the sqlite database at path, creating the schema on
// first use. path may carry sqlite URI options (used by tests to get an
// in-memory database).
func Open(path string) (*Store, error) {
	dsn := "file:" + path
	if strings.Contains(path, "?") {
		dsn += "&_foreign_keys=on"
	} else {
		dsn += "?_foreign_keys=on"
	}

	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	store := &Store{db}
	if err := store.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating tables: %w", err)
	}

	return store, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createTables() error {
	_, err := s.db.Exec(`create table if not exists users (
		username    text not null primary key,
		name        text not null,
		password    text not null,
		token       text null
	)`)
	if err != nil {
		return fmt.Errorf("creating users table: %w", err)
	}

	_, err = s.db.Exec(`create table if not exists contacts (
		id          integer not null primary key autoincrement,
		username    text not null references users(username),
		first_name  text not null,
		last_name   text not null default '',
		email       text not null default '',
		phone       text not null default ''
	)`)
	if err != nil {
		return fmt.Errorf("creating contacts table: %w", err)
	}

	_, err = s.db.Exec(`create table if not exists addresses (
		id          integer not null primary key autoincrement,
		contact_id  integer not null references contacts(id) on delete cascade,
		street      text not null default '',
		city        text not null default '',
		province    text not null default '',
		country     text not null,
		postal_code text not null
	)`)
	if err != nil {
		return fmt.Errorf("creating addresses table: %w", err)
	}

	for _, index := range []string{
		`create index if not exists idx_users_token on users(token)`,
		`create index if not exists idx_contacts_username on contacts(username)`,
		`create index if not exists idx_addresses_contact on addresses(contact_id)`,
	} {
		if _, err := s.db.Exec(index); err != nil {
			return fmt.Errorf("creating index: %w", err)
		}
	}

	return nil
}

func oneRowAffected(res interface{ RowsAffected() (int64, error) }) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rows != 1 {
		return fmt.Errorf("expected 1 row to be affected, got %d", rows)
	}
	return nil
}
