package domain

// Sprint is a time-boxed grouping of tasks owned by the projects subsystem.
// Only the columns needed to enforce foreign keys are declared here.
type Sprint struct {
	BaseModel
	Name string `gorm:"type:varchar(255)" json:"name"`
}

// TableName specifies the table name for Sprint
func (Sprint) TableName() string {
	return "sprints"
}

// User is an actor owned by the accounts subsystem.
// Only the columns needed to enforce foreign keys are declared here.
type User struct {
	BaseModel
	Username string `gorm:"type:varchar(150)" json:"username"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
