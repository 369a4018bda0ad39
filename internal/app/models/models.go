package models

// Role defines the user role type
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleStaff Role = "STAFF"
)

// Valid returns true when the role is a supported value.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleStaff:
		return true
	default:
		return false
	}
}

// Term represents a school term within an academic year
type Term string

const (
	TermFirst  Term = "TERM_1"
	TermSecond Term = "TERM_2"
	TermThird  Term = "TERM_3"
)

// Valid returns true when the term is a supported value.
func (t Term) Valid() bool {
	switch t {
	case TermFirst, TermSecond, TermThird:
		return true
	default:
		return false
	}
}
