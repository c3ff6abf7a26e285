package domain

import (
	"strings"

	"enrollment-report/internal/apperr"
)

// User is the canonical representation of one user record. Name and contact
// arrive as nested objects on the wire and are flattened here.
type User struct {
	ID        string
	UserName  string
	Given     string
	Family    string
	Email     string
	Available bool
}

// NormalizeUser builds a User from one raw record. The email must contain an
// "@" after trimming; there is no stricter address validation upstream.
func NormalizeUser(r Raw) (User, error) {
	id, err := stringField(r, KindUser, "id")
	if err != nil {
		return User{}, err
	}
	userName, err := stringField(r, KindUser, "userName")
	if err != nil {
		return User{}, err
	}

	name, err := object(r, KindUser, "name")
	if err != nil {
		return User{}, err
	}
	given, err := stringField(name, KindUser, "given")
	if err != nil {
		return User{}, err
	}
	family, err := stringField(name, KindUser, "family")
	if err != nil {
		return User{}, err
	}

	contact, err := object(r, KindUser, "contact")
	if err != nil {
		return User{}, err
	}
	email, err := stringField(contact, KindUser, "email")
	if err != nil {
		return User{}, err
	}
	if !strings.Contains(email, "@") {
		return User{}, apperr.Newf(apperr.CodeInvalidEmail, "user %s has invalid email %q: missing '@'", id, email)
	}

	return User{
		ID:        id,
		UserName:  userName,
		Given:     given,
		Family:    family,
		Email:     email,
		Available: CoerceAvailable(availableValue(r)),
	}, nil
}
