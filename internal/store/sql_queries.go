package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (username, email, password)
    VALUES ($1, $2, $3)
    RETURNING user_id, username, email, password, confirmed, avatar_url;`

	findUserByEmail = `SELECT user_id, username, email, password, confirmed, avatar_url
    FROM users
    WHERE email = $1;`

	confirmUserEmail = `UPDATE users
    SET confirmed = true
    WHERE email = $1;`

	updateUserAvatar = `UPDATE users
    SET avatar_url = $2
    WHERE email = $1
    RETURNING user_id, username, email, password, confirmed, avatar_url;`

	createContact = `INSERT INTO contacts (first_name, last_name, email, phone_number, birthday, additional_info)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING contact_id, first_name, last_name, email, phone_number, birthday, additional_info;`

	getContact = `SELECT contact_id, first_name, last_name, email, phone_number, birthday, additional_info
    FROM contacts
    WHERE contact_id = $1;`

	updateContact = `UPDATE contacts
    SET first_name = $2, last_name = $3, email = $4, phone_number = $5, birthday = $6, additional_info = $7
    WHERE contact_id = $1
    RETURNING contact_id, first_name, last_name, email, phone_number, birthday, additional_info;`

	deleteContact = `DELETE FROM contacts
    WHERE contact_id = $1
    RETURNING contact_id, first_name, last_name, email, phone_number, birthday, additional_info;`
)

// contactColumns is the canonical column order shared by every contact query.
var contactColumns = []string{
	"contact_id", "first_name", "last_name", "email",
	"phone_number", "birthday", "additional_info",
}

// psql is a squirrel statement builder preconfigured for PostgreSQL
// dollar-sign placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListQuery builds the paginated SELECT used by GetContacts.
func buildListQuery(skip, limit int) (string, []any, error) {
	return psql.
		Select(contactColumns...).
		From("contacts").
		OrderBy("contact_id").
		Offset(uint64(skip)).
		Limit(uint64(limit)).
		ToSql()
}

// buildSearchQuery builds the substring search over first name, last name
// and email. LIKE without ILIKE keeps the match case-sensitive.
func buildSearchQuery(query string) (string, []any, error) {
	pattern := "%" + query + "%"
	return psql.
		Select(contactColumns...).
		From("contacts").
		Where(sq.Or{
			sq.Like{"first_name": pattern},
			sq.Like{"last_name": pattern},
			sq.Like{"email": pattern},
		}).
		ToSql()
}

// buildGetAllQuery builds the unfiltered SELECT used by the birthday scan.
func buildGetAllQuery() (string, []any, error) {
	return psql.
		Select(contactColumns...).
		From("contacts").
		ToSql()
}
