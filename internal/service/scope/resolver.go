package scope

import (
	"errors"
	"strings"

	"github.com/hrsystem/hr-gateway/internal/domain/hr"
	"github.com/hrsystem/hr-gateway/internal/domain/user"
)

var (
	// ErrDepartmentUnresolved means a manager has no resolvable
	// department. The filter fails closed on it: an empty result, never a
	// fallback to everything. Distinct from a zero-member team, which is
	// a legitimate empty state with no error attached.
	ErrDepartmentUnresolved = errors.New("manager department could not be resolved")

	// ErrEmployeeUnresolved means the signed-in user has no linked
	// employee record, so self-scoping has nothing to match against.
	ErrEmployeeUnresolved = errors.New("no employee record linked to user")
)

// Resolver answers identity questions against a snapshot of the employee
// and department collections: which employee record belongs to this user,
// and which department does this manager run. It never fetches anything;
// callers hand it already-loaded collections.
type Resolver struct {
	employees   []hr.Employee
	departments []hr.Department
	deptByEmp   map[string]hr.ID
}

func NewResolver(employees []hr.Employee, departments []hr.Department) *Resolver {
	deptByEmp := make(map[string]hr.ID, len(employees))
	for _, emp := range employees {
		if !emp.ID.IsZero() {
			deptByEmp[emp.ID.Key()] = emp.DepartmentID
		}
	}
	return &Resolver{
		employees:   employees,
		departments: departments,
		deptByEmp:   deptByEmp,
	}
}

// EmployeeFor finds the employee record linked to a user profile: by the
// profile's employee reference, by the record's back-reference to the
// user, or by email as a last resort.
func (r *Resolver) EmployeeFor(p user.Profile) (hr.Employee, bool) {
	linked := hr.ID(p.EmployeeID)
	for _, emp := range r.employees {
		if emp.ID.Equal(linked) {
			return emp, true
		}
		if emp.UserID.Equal(hr.ID(p.ID)) {
			return emp, true
		}
		if p.Email != "" && strings.EqualFold(emp.Email, p.Email) {
			return emp, true
		}
	}
	return hr.Employee{}, false
}

// DepartmentFor resolves the department a manager is responsible for.
// Two strategies, in order: the department on the manager's own employee
// record, then being registered as a department's designated head. Both
// failing is ErrDepartmentUnresolved, never a fallback to all data.
func (r *Resolver) DepartmentFor(p user.Profile) (hr.ID, error) {
	if emp, ok := r.EmployeeFor(p); ok && !emp.DepartmentID.IsZero() {
		return emp.DepartmentID, nil
	}
	if p.DepartmentID != "" {
		return hr.ID(p.DepartmentID), nil
	}

	for _, dept := range r.departments {
		if dept.ManagerID.Equal(hr.ID(p.ID)) || dept.ManagerID.Equal(hr.ID(p.EmployeeID)) {
			return dept.ID, nil
		}
		if dept.ManagerEmail != "" && strings.EqualFold(dept.ManagerEmail, p.Email) {
			return dept.ID, nil
		}
	}
	return "", ErrDepartmentUnresolved
}

// departmentOf looks up the department of a record's referenced employee.
func (r *Resolver) departmentOf(employeeID hr.ID) (hr.ID, bool) {
	dept, ok := r.deptByEmp[employeeID.Key()]
	if !ok || dept.IsZero() {
		return "", false
	}
	return dept, true
}
