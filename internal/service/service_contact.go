package service

import (
	"context"
	"fmt"
	"time"

	"github.com/contactkeeper/go-contact-keeper/internal/logger"
	"github.com/contactkeeper/go-contact-keeper/internal/store"
	"github.com/contactkeeper/go-contact-keeper/models"
)

const (
	// defaultContactsLimit is applied when the caller omits the page size.
	defaultContactsLimit = 10

	// birthdayWindowDays is the length of the upcoming-birthdays window.
	// The window is inclusive on both ends: [today, today+7].
	birthdayWindowDays = 7
)

// contactService is the concrete implementation of ContactService.
// All reads re-fetch from the repository; the service holds no authoritative
// in-memory copy of any contact.
type contactService struct {
	contactRepository store.ContactRepository

	// now returns the current time. Injected so the birthday-window
	// computation can be pinned in tests; defaults to time.Now.
	now func() time.Time

	logger *logger.Logger
}

// NewContactService constructs a ContactService backed by the given
// repository.
func NewContactService(contactRepository store.ContactRepository, logger *logger.Logger) ContactService {
	return &contactService{
		contactRepository: contactRepository,
		now:               time.Now,
		logger:            logger,
	}
}

// CreateContact validates required fields and persists a new contact.
func (c *contactService) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	if err := validateContact(contact); err != nil {
		log.Err(err).Msg("invalid contact data provided")
		return models.Contact{}, err
	}

	created, err := c.contactRepository.CreateContact(ctx, contact)
	if err != nil {
		log.Err(err).Msg("contact creation ended with error")
		return models.Contact{}, fmt.Errorf("contact creation ended with error: %w", err)
	}

	return created, nil
}

// ListContacts returns a page of contacts using skip/take pagination.
// Negative skip is clamped to zero; a non-positive limit falls back to the
// default page size.
func (c *contactService) ListContacts(ctx context.Context, skip, limit int) ([]models.Contact, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultContactsLimit
	}

	return c.contactRepository.GetContacts(ctx, skip, limit)
}

// GetContact returns the contact with the given id or
// store.ErrContactNotFound.
func (c *contactService) GetContact(ctx context.Context, contactID int64) (models.Contact, error) {
	return c.contactRepository.GetContact(ctx, contactID)
}

// UpdateContact performs a full-record replace of the contact with the given
// id. A nonexistent id yields store.ErrContactNotFound and no mutation.
func (c *contactService) UpdateContact(ctx context.Context, contactID int64, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	if err := validateContact(contact); err != nil {
		log.Err(err).Int64("id", contactID).Msg("invalid contact data provided")
		return models.Contact{}, err
	}

	return c.contactRepository.UpdateContact(ctx, contactID, contact)
}

// DeleteContact removes the contact with the given id and returns its prior
// state, or store.ErrContactNotFound.
func (c *contactService) DeleteContact(ctx context.Context, contactID int64) (models.Contact, error) {
	return c.contactRepository.DeleteContact(ctx, contactID)
}

// SearchContacts returns contacts whose first name, last name, or email
// contains the query as a case-sensitive substring.
func (c *contactService) SearchContacts(ctx context.Context, query string) ([]models.Contact, error) {
	if query == "" {
		return nil, ErrInvalidDataProvided
	}

	return c.contactRepository.SearchContacts(ctx, query)
}

// UpcomingBirthdays returns the contacts whose next birthday occurrence
// falls within the inclusive [today, today+7 days] window.
//
// For each contact, the birthday's month/day are projected onto the current
// year; if that date has already passed, next year's occurrence is used
// instead. This handles year-end wraparound: a December birthday queried in
// late December stays in the current year, while an early-January birthday
// rolls over to the following year and is still within the window.
func (c *contactService) UpcomingBirthdays(ctx context.Context) ([]models.Contact, error) {
	contacts, err := c.contactRepository.GetAllContacts(ctx)
	if err != nil {
		return nil, err
	}

	today := truncateToDate(c.now())
	windowEnd := today.AddDate(0, 0, birthdayWindowDays)

	upcoming := make([]models.Contact, 0)
	for _, contact := range contacts {
		occurrence := nextBirthdayOccurrence(contact.Birthday.Time, today)
		if !occurrence.Before(today) && !occurrence.After(windowEnd) {
			upcoming = append(upcoming, contact)
		}
	}

	return upcoming, nil
}

// nextBirthdayOccurrence projects the stored birthday onto the current year,
// rolling over to the next year when this year's date has already passed.
func nextBirthdayOccurrence(birthday, today time.Time) time.Time {
	occurrence := time.Date(today.Year(), birthday.Month(), birthday.Day(), 0, 0, 0, 0, time.UTC)
	if occurrence.Before(today) {
		occurrence = time.Date(today.Year()+1, birthday.Month(), birthday.Day(), 0, 0, 0, 0, time.UTC)
	}

	return occurrence
}

// truncateToDate drops the time-of-day component, keeping date precision.
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// validateContact checks that every required contact field is present.
// AdditionalInfo is the only optional field.
func validateContact(contact models.Contact) error {
	if contact.FirstName == "" || contact.LastName == "" ||
		contact.Email == "" || contact.PhoneNumber == "" ||
		contact.Birthday.IsZero() {
		return ErrInvalidDataProvided
	}

	return nil
}
