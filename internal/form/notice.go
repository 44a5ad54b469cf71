package form

import "fmt"

// Level classifies a notice the way a message box would: info, warning or error.
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// Notice is a user-visible message produced by a form action.
type Notice struct {
	Level   Level
	Title   string
	Message string
}

func (n Notice) String() string {
	return fmt.Sprintf("%s: %s", n.Title, n.Message)
}

// Notifier displays notices to the user.
type Notifier interface {
	Notify(n Notice)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(n Notice)

func (f NotifierFunc) Notify(n Notice) { f(n) }

// NoticeLog records every notice it receives. The terminal UI shows the most
// recent one; tests inspect the whole history.
type NoticeLog struct {
	notices []Notice
}

func (l *NoticeLog) Notify(n Notice) {
	l.notices = append(l.notices, n)
}

// Last returns the most recent notice, if any.
func (l *NoticeLog) Last() (Notice, bool) {
	if len(l.notices) == 0 {
		return Notice{}, false
	}
	return l.notices[len(l.notices)-1], true
}

// All returns every notice in the order received.
func (l *NoticeLog) All() []Notice {
	return append([]Notice(nil), l.notices...)
}

// Len returns the number of notices recorded.
func (l *NoticeLog) Len() int { return len(l.notices) }


// Notice texts.
const (
	titleSuccess     = "Success"
	titleEmptyFields = "Empty fields"
	titleNoSelection = "No selection"
	titleDatabase    = "Database error"

	msgAdded        = "Employee added successfully."
	msgUpdated      = "Employee updated successfully."
	msgDeleted      = "Employee deleted successfully."
	msgFieldsNeeded = "All fields are required."
	msgSelectUpdate = "Please select an employee from the list to update."
	msgSelectDelete = "Please select an employee from the list to delete."

	// DeletePrompt is the question asked before a record is removed.
	DeletePrompt = "Are you sure you want to delete this employee?"
)

func databaseNotice(err error) Notice {
	return Notice{Level: LevelError, Title: titleDatabase, Message: fmt.Sprintf("Query failed: %v", err)}
}
