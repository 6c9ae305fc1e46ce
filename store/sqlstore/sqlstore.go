// Package sqlstore implements store.Store on top of a MySQL database.
//
// All maps live in a single table keyed by map name and key.
package sqlstore

import (
	"database/sql"

	"github.com/go-sql-driver/mysql"
	"gopkg.in/errgo.v2/fmt/errors"

	"github.com/rogpeppe/rpn/store"
)

const createTable = `
CREATE TABLE IF NOT EXISTS rpn_store (
	name VARCHAR(64) NOT NULL,
	k VARCHAR(255) NOT NULL,
	v TEXT NOT NULL,
	PRIMARY KEY (name, k)
)`

// Store is a store.Store kept in an SQL database.
type Store struct {
	db *sql.DB
}

var _ store.Store = (*Store)(nil)

// ParseDSN checks a MySQL data source name, such as
// "user:password@tcp(localhost:3306)/rpn", and returns
// it in canonical form.
func ParseDSN(dsn string) (string, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", errors.Notef(err, nil, "invalid MySQL data source name")
	}
	return cfg.FormatDSN(), nil
}

// Open connects to the MySQL database named by dsn
// and creates the store table if needed.
func Open(dsn string) (*Store, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, errors.Notef(err, nil, "invalid MySQL data source name")
	}
	conn, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, errors.Wrap(err)
	}
	db := sql.OpenDB(conn)
	s, err := New(db)
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err)
	}
	return s, nil
}

// New returns a store that uses the given database,
// creating the store table if needed.
func New(db *sql.DB) (*Store, error) {
	if _, err := db.Exec(createTable); err != nil {
		return nil, errors.Notef(err, nil, "cannot create store table")
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Load(name string) (map[string]string, error) {
	rows, err := s.db.Query("SELECT k, v FROM rpn_store WHERE name = ?", name)
	if err != nil {
		return nil, errors.Notef(err, nil, "cannot load %s", name)
	}
	defer rows.Close()
	var m map[string]string
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, errors.Wrap(err)
		}
		if m == nil {
			m = make(map[string]string)
		}
		m[k] = v
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Notef(err, nil, "cannot load %s", name)
	}
	return m, nil
}

func (s *Store) Save(name string, m map[string]string) (err error) {
	tx, err := s.db.Begin()
	if err != nil {
		return errors.Wrap(err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()
	if _, err := tx.Exec("DELETE FROM rpn_store WHERE name = ?", name); err != nil {
		return errors.Notef(err, nil, "cannot save %s", name)
	}
	for _, k := range store.Keys(m) {
		if _, err := tx.Exec("INSERT INTO rpn_store (name, k, v) VALUES (?, ?, ?)", name, k, m[k]); err != nil {
			return errors.Notef(err, nil, "cannot save %s", name)
		}
	}
	if err := tx.Commit(); err != nil {
		return errors.Notef(err, nil, "cannot save %s", name)
	}
	return nil
}
