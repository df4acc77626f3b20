package domain

// Label is a named tag that can be attached to tasks through TaskLabel
type Label struct {
	BaseModel
	Name string `gorm:"type:varchar(255);not null" json:"name"`
}

// TableName specifies the table name for Label
func (Label) TableName() string {
	return "labels"
}

func (l Label) String() string {
	return l.Name
}
