package schema

// UsersAccountTable represents the 'users.account' table.
//
// Folio is a single-admin system: this table is expected to hold exactly
// one row, seeded at deploy time.
type UsersAccountTable struct {
	Table        string
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    string
}

var UsersAccount = UsersAccountTable{
	Table:        "users.account",
	ID:           "id",
	Username:     "username",
	Email:        "email",
	PasswordHash: "passwordhash",
	CreatedAt:    "createdat",
}
