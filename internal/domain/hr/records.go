package hr

// Record shapes as served by the upstream HR REST API. The gateway only
// reads the identity and foreign-key fields; everything else passes through
// untouched for the frontend to render.

type Employee struct {
	ID           ID      `json:"id"`
	UserID       ID      `json:"userId,omitempty"`
	EmployeeCode string  `json:"employeeCode,omitempty"`
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone,omitempty"`
	Position     string  `json:"position,omitempty"`
	Status       string  `json:"status,omitempty"`
	Salary       float64 `json:"salary,omitempty"`
	HireDate     string  `json:"hireDate,omitempty"`
	DepartmentID ID      `json:"departmentId,omitempty"`
}

type Department struct {
	ID           ID     `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	ManagerID    ID     `json:"managerId,omitempty"`
	ManagerEmail string `json:"managerEmail,omitempty"`
}

type Attendance struct {
	ID           ID      `json:"id"`
	EmployeeID   ID      `json:"employeeId"`
	EmployeeName string  `json:"employeeName,omitempty"`
	Date         string  `json:"date"`
	CheckIn      string  `json:"checkIn,omitempty"`
	CheckOut     string  `json:"checkOut,omitempty"`
	Status       string  `json:"status,omitempty"`
	WorkingHours float64 `json:"workingHours,omitempty"`
	Comments     string  `json:"comments,omitempty"`
}

type LeaveRequest struct {
	ID           ID     `json:"id"`
	EmployeeID   ID     `json:"employeeId"`
	EmployeeName string `json:"employeeName,omitempty"`
	LeaveType    string `json:"leaveType"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Days         int    `json:"days,omitempty"`
	Reason       string `json:"reason,omitempty"`
	Status       string `json:"status"`
	Comments     string `json:"comments,omitempty"`
}

type PayrollRecord struct {
	ID         ID      `json:"id"`
	EmployeeID ID      `json:"employeeId"`
	Month      string  `json:"month,omitempty"`
	BaseSalary float64 `json:"baseSalary,omitempty"`
	Allowances float64 `json:"allowances,omitempty"`
	Deductions float64 `json:"deductions,omitempty"`
	NetSalary  float64 `json:"netSalary"`
	Status     string  `json:"status,omitempty"`
}

// LeaveStatusPending is the only leave status the dashboards count.
const LeaveStatusPending = "pending"

// AttendanceStatusPresent marks an attendance row counted as present today.
const AttendanceStatusPresent = "present"

// EmployeeRef gives the scope filter a uniform way to read the employee
// foreign key off any scopable record.
func (a Attendance) EmployeeRef() ID    { return a.EmployeeID }
func (l LeaveRequest) EmployeeRef() ID  { return l.EmployeeID }
func (p PayrollRecord) EmployeeRef() ID { return p.EmployeeID }
func (e Employee) EmployeeRef() ID      { return e.ID }
