package schema

// StaffEmployeeTable represents the 'staff.employee' table
type StaffEmployeeTable struct {
	Table       string
	ID          string
	Name        string
	Email       string
	Mobile      string
	Designation string
	Gender      string
	Course      string
	AvatarURL   string
	CreatedAt   string
	UpdatedAt   string
}

// StaffEmployee is the schema definition for staff.employee
var StaffEmployee = StaffEmployeeTable{
	Table:       "staff.employee",
	ID:          "id",
	Name:        "name",
	Email:       "email",
	Mobile:      "mobile",
	Designation: "designation",
	Gender:      "gender",
	Course:      "course",
	AvatarURL:   "avatarurl",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

func (t StaffEmployeeTable) Columns() []string {
	return []string{t.ID, t.Name, t.Email, t.Mobile, t.Designation, t.Gender, t.Course, t.AvatarURL, t.CreatedAt, t.UpdatedAt}
}
