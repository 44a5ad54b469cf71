// Package types holds the record types shared by the storage, form and UI layers.
package types

import "strconv"

// Employee is one persisted row of the employees table.
// ID is assigned by storage on insert and never changes afterwards.
type Employee struct {
	ID    int64  `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Sex   string `json:"sex" yaml:"sex"`
	Email string `json:"email" yaml:"email"`
}

// Columns are the list headers, in display order.
var Columns = []string{"ID", "Name", "Sex", "Email"}

// Row renders the record as display cells matching Columns.
func (e Employee) Row() []string {
	return []string{strconv.FormatInt(e.ID, 10), e.Name, e.Sex, e.Email}
}

// MissingField returns the name of the first empty field, or "" when
// name, sex and email all carry a value. Whitespace counts as a value.
func (e Employee) MissingField() string {
	switch {
	case isEmpty(e.Name):
		return "name"
	case isEmpty(e.Sex):
		return "sex"
	case isEmpty(e.Email):
		return "email"
	}
	return ""
}

func isEmpty(s string) bool {
	return s == ""
}
