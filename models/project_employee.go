package models

// ProjectEmployee is the association row linking an employee to a project.
// The composite primary key keeps any (project, employee) pair unique.
type ProjectEmployee struct {
	ProjectID  string `json:"projectId" gorm:"primaryKey;type:uuid"`
	EmployeeID string `json:"employeeId" gorm:"primaryKey;type:uuid"`

	// Relations
	Project  *Project  `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
	Employee *Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
}
