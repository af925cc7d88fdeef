package models

// Contact represents a single address-book entry.
// Contacts are not linked to an owning user: every authenticated caller
// operates on the same shared table.
type Contact struct {
	// ContactID is the internal unique identifier of the contact.
	ContactID int64 `json:"id"`

	// FirstName is the contact's given name.
	FirstName string `json:"first_name"`

	// LastName is the contact's family name.
	LastName string `json:"last_name"`

	// Email is the contact's email address. No uniqueness is enforced.
	Email string `json:"email"`

	// PhoneNumber is the contact's phone number in free form.
	PhoneNumber string `json:"phone_number"`

	// Birthday is the contact's date of birth, date precision only.
	Birthday Date `json:"birthday"`

	// AdditionalInfo is optional free-form text attached to the contact.
	AdditionalInfo string `json:"additional_info,omitempty"`
}

// TableName returns the name of the database table
// associated with the Contact model.
func (c Contact) TableName() string {
	return "contacts"
}
