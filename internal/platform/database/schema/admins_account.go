package schema

// AdminsAccountTable represents the 'admins.account' table
type AdminsAccountTable struct {
	Table        string
	ID           string
	Username     string
	Name         string
	PasswordHash string
	CreatedAt    string
	UpdatedAt    string
}

// AdminsAccount is the schema definition for admins.account
var AdminsAccount = AdminsAccountTable{
	Table:        "admins.account",
	ID:           "id",
	Username:     "username",
	Name:         "name",
	PasswordHash: "passwordhash",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}

func (t AdminsAccountTable) Columns() []string {
	return []string{t.ID, t.Username, t.Name, t.PasswordHash, t.CreatedAt, t.UpdatedAt}
}
