package models

// Employee represents one row of the employees table.
// EmpID is the caller-supplied primary key.
type Employee struct {
	EmpID      string `json:"emp_id"`
	Name       string `json:"name"`
	ImagePath  string `json:"image_path,omitempty"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	Salary     int64  `json:"salary"`
	Gender     string `json:"gender"`
	Status     string `json:"status"`
}

// EmployeeRef is the (id, name) pair used by selection lists
// such as the salary-update form.
type EmployeeRef struct {
	EmpID string `json:"emp_id"`
	Name  string `json:"name"`
}
