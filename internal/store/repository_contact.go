package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/contactkeeper/go-contact-keeper/internal/logger"
	"github.com/contactkeeper/go-contact-keeper/models"
)

// contactRepository is the PostgreSQL-backed implementation of
// [ContactRepository]. It owns all reads and writes against the "contacts"
// table; the service layer never holds an authoritative in-memory copy.
type contactRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewContactRepository constructs a [ContactRepository] backed by the
// provided database connection and logger.
func NewContactRepository(db *DB, logger *logger.Logger) ContactRepository {
	logger.Debug().Msg("creating contact repository")
	return &contactRepository{
		db:     db,
		logger: logger,
	}
}

// CreateContact persists a new contact and returns it with the
// server-assigned ContactID.
func (r *contactRepository) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createContact,
		contact.FirstName, contact.LastName, contact.Email,
		contact.PhoneNumber, contact.Birthday, contact.AdditionalInfo)

	created, err := scanContact(row)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.CreateContact").Msg("error creating contact")
		return models.Contact{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// GetContacts returns a page of contacts using skip/limit pagination in
// storage order (contact_id ascending).
func (r *contactRepository) GetContacts(ctx context.Context, skip, limit int) ([]models.Contact, error) {
	query, args, err := buildListQuery(skip, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryContacts(ctx, query, args...)
}

// GetContact returns the contact with the given id, or [ErrContactNotFound].
func (r *contactRepository) GetContact(ctx context.Context, contactID int64) (models.Contact, error) {
	row := r.db.QueryRowContext(ctx, getContact, contactID)

	found, err := scanContact(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Contact{}, ErrContactNotFound
		}
		return models.Contact{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// UpdateContact replaces every field of the contact with the given id.
// Full-record semantics: all fields are written, there is no partial patch.
//
// Returns [ErrContactNotFound] without mutating anything when the id does
// not exist.
func (r *contactRepository) UpdateContact(ctx context.Context, contactID int64, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateContact, contactID,
		contact.FirstName, contact.LastName, contact.Email,
		contact.PhoneNumber, contact.Birthday, contact.AdditionalInfo)

	updated, err := scanContact(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Contact{}, ErrContactNotFound
		}

		log.Err(err).Str("func", "*contactRepository.UpdateContact").Msg("error updating contact")
		return models.Contact{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteContact removes the contact with the given id and returns its prior
// state, or [ErrContactNotFound] when the id does not exist.
func (r *contactRepository) DeleteContact(ctx context.Context, contactID int64) (models.Contact, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, deleteContact, contactID)

	deleted, err := scanContact(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Contact{}, ErrContactNotFound
		}

		log.Err(err).Str("func", "*contactRepository.DeleteContact").Msg("error deleting contact")
		return models.Contact{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return deleted, nil
}

// SearchContacts returns every contact whose first name, last name or email
// contains the query as a case-sensitive substring.
func (r *contactRepository) SearchContacts(ctx context.Context, query string) ([]models.Contact, error) {
	sqlQuery, args, err := buildSearchQuery(query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryContacts(ctx, sqlQuery, args...)
}

// GetAllContacts returns the full contacts table. Used by the
// upcoming-birthdays scan, which filters in application code.
func (r *contactRepository) GetAllContacts(ctx context.Context) ([]models.Contact, error) {
	query, args, err := buildGetAllQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryContacts(ctx, query, args...)
}

// queryContacts runs a multi-row contact query and scans the result set.
func (r *contactRepository) queryContacts(ctx context.Context, query string, args ...any) ([]models.Contact, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.queryContacts").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	contacts := make([]models.Contact, 0)
	for rows.Next() {
		var c models.Contact
		if err := rows.Scan(&c.ContactID, &c.FirstName, &c.LastName, &c.Email, &c.PhoneNumber, &c.Birthday, &c.AdditionalInfo); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		contacts = append(contacts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return contacts, nil
}

// scanContact scans a single contact row in canonical column order.
func scanContact(row *sql.Row) (models.Contact, error) {
	var c models.Contact
	err := row.Scan(&c.ContactID, &c.FirstName, &c.LastName, &c.Email, &c.PhoneNumber, &c.Birthday, &c.AdditionalInfo)
	return c, err
}
