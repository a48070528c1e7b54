// Package scope narrows resource collections to the subset the signed-in
// user is entitled to see: everything for admins, the own department for
// managers, only the user's own records for employees.
//
// The filtering here exists so the frontend never renders data the user
// has no business seeing. It is a UX convenience, not a security
// boundary: the upstream API must enforce the same rules server-side.
package scope

import (
	"github.com/hrsystem/hr-gateway/internal/domain/hr"
	"github.com/hrsystem/hr-gateway/internal/domain/user"
)

// Record is any resource row carrying an employee foreign key.
type Record interface {
	EmployeeRef() hr.ID
}

// Visible returns the records the viewer may see. It is pure: no network,
// no mutation of the input, and the same inputs always select the same
// subset. Unknown roles and unresolvable identities fail closed with an
// empty, non-nil slice.
func Visible[T Record](records []T, viewer user.Profile, res *Resolver) ([]T, error) {
	switch viewer.Role {
	case user.RoleAdmin:
		return records, nil

	case user.RoleManager:
		dept, err := res.DepartmentFor(viewer)
		if err != nil {
			return []T{}, err
		}
		visible := []T{}
		for _, rec := range records {
			if recDept, ok := res.departmentOf(rec.EmployeeRef()); ok && recDept.Equal(dept) {
				visible = append(visible, rec)
			}
		}
		return visible, nil

	case user.RoleEmployee:
		emp, ok := res.EmployeeFor(viewer)
		if !ok {
			return []T{}, ErrEmployeeUnresolved
		}
		visible := []T{}
		for _, rec := range records {
			if rec.EmployeeRef().Equal(emp.ID) {
				visible = append(visible, rec)
			}
		}
		return visible, nil

	default:
		return []T{}, user.ErrUnknownRole
	}
}
