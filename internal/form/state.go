package form

import "employeedesk/internal/types"

// State is the editable content of the form: the three text fields.
// The selected record is not part of it; Update and Delete read the
// selection from the Listing at the moment they run.
type State struct {
	Name  string
	Sex   string
	Email string
}

// Reset empties every field.
func (s *State) Reset() {
	*s = State{}
}

// Fill copies a record's values into the fields.
func (s *State) Fill(e types.Employee) {
	s.Name = e.Name
	s.Sex = e.Sex
	s.Email = e.Email
}

// IsEmpty reports whether all three fields are empty.
func (s State) IsEmpty() bool {
	return s == State{}
}

// Employee builds a record from the fields with the given id.
func (s State) Employee(id int64) types.Employee {
	return types.Employee{ID: id, Name: s.Name, Sex: s.Sex, Email: s.Email}
}
