package models

// User represents a registered account of the contacts API.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Username is the display name chosen at registration.
	// It is also used as the storage key for the user's avatar.
	Username string `json:"username"`

	// Email is the unique address the account is registered under.
	// It doubles as the login identifier and the JWT subject claim.
	Email string `json:"email"`

	// Password stores the bcrypt hash of the user's password.
	// This value MUST be a hash, never plaintext.
	// It is never serialized into API responses.
	Password string `json:"-"`

	// Confirmed reports whether the user has redeemed a valid
	// email-confirmation token. Defaults to false at registration.
	Confirmed bool `json:"confirmed"`

	// AvatarURL is the public CDN URL of the user's avatar, if any.
	AvatarURL string `json:"avatar_url,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
