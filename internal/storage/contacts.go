package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"safeguard/internal/logger"
	"safeguard/internal/models"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS contacts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	country TEXT NOT NULL,
	police TEXT,
	fire TEXT,
	ambulance TEXT
);`

// ErrCountryRequired rejects contacts without a country.
var ErrCountryRequired = errors.New("contact country is required")

// ContactsStore keeps emergency contacts in a single SQLite file. Each call
// opens and closes its own connection.
type ContactsStore struct {
	path   string
	logger logger.Logger
}

// NewContactsStore creates the database directory if needed. The schema is
// created by EnsureSchema.
func NewContactsStore(path string, log logger.Logger) (*ContactsStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	return &ContactsStore{
		path:   path,
		logger: log,
	}, nil
}

// Path returns the database file location.
func (s *ContactsStore) Path() string {
	return s.path
}

// EnsureSchema creates the contacts table when it is missing.
func (s *ContactsStore) EnsureSchema(ctx context.Context) error {
	return s.withDB(func(db *sql.DB) error {
		if _, err := db.ExecContext(ctx, schema); err != nil {
			return fmt.Errorf("create contacts table: %w", err)
		}
		s.logger.Debug("ContactsStore", "schema ready", map[string]interface{}{
			"path": s.path,
		})
		return nil
	})
}

// List returns every contact, or only those for country when it is not
// empty, ordered by insertion.
func (s *ContactsStore) List(ctx context.Context, country string) ([]models.Contact, error) {
	var contacts []models.Contact

	err := s.withDB(func(db *sql.DB) error {
		query := "SELECT id, country, police, fire, ambulance FROM contacts"
		args := []interface{}{}
		if country != "" {
			query += " WHERE country = ?"
			args = append(args, country)
		}
		query += " ORDER BY id"

		rows, err := db.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("query contacts: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var (
				c                       models.Contact
				police, fire, ambulance sql.NullString
			)
			if err := rows.Scan(&c.ID, &c.Country, &police, &fire, &ambulance); err != nil {
				return fmt.Errorf("scan contact: %w", err)
			}
			c.Police, c.Fire, c.Ambulance = police.String, fire.String, ambulance.String
			contacts = append(contacts, c)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return contacts, nil
}

// Add inserts a contact and returns it with its assigned id.
func (s *ContactsStore) Add(ctx context.Context, contact models.Contact) (models.Contact, error) {
	contact.Country = strings.TrimSpace(contact.Country)
	if contact.Country == "" {
		return models.Contact{}, ErrCountryRequired
	}

	err := s.withDB(func(db *sql.DB) error {
		res, err := db.ExecContext(ctx,
			"INSERT INTO contacts (country, police, fire, ambulance) VALUES (?, ?, ?, ?)",
			contact.Country, nullable(contact.Police), nullable(contact.Fire), nullable(contact.Ambulance))
		if err != nil {
			return fmt.Errorf("insert contact: %w", err)
		}

		contact.ID, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return models.Contact{}, err
	}

	s.logger.Info("ContactsStore", "contact added", map[string]interface{}{
		"id":      contact.ID,
		"country": contact.Country,
	})
	return contact, nil
}

func (s *ContactsStore) withDB(fn func(db *sql.DB) error) error {
	db, err := sql.Open("sqlite3", s.path)
	if err != nil {
		return fmt.Errorf("open contacts database: %w", err)
	}
	defer db.Close()

	return fn(db)
}

func nullable(value string) interface{} {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return value
}
