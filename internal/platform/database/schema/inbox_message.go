package schema

// InboxMessageTable represents the 'inbox.message' table
type InboxMessageTable struct {
	Table     string
	ID        string
	Name      string
	Email     string
	Subject   string
	Message   string
	Read      string
	CreatedAt string
}

var InboxMessage = InboxMessageTable{
	Table:     "inbox.message",
	ID:        "id",
	Name:      "name",
	Email:     "email",
	Subject:   "subject",
	Message:   "message",
	Read:      "read",
	CreatedAt: "createdat",
}

func (t InboxMessageTable) Columns() []string {
	return []string{t.ID, t.Name, t.Email, t.Subject, t.Message, t.Read, t.CreatedAt}
}
