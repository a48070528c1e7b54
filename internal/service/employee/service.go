package employee

import (
	"context"

	"github.com/hrsystem/hr-gateway/internal/domain/hr"
	"github.com/hrsystem/hr-gateway/internal/domain/user"
	"github.com/hrsystem/hr-gateway/internal/pkg/validator"
	"github.com/hrsystem/hr-gateway/internal/service/scope"
)

// EmployeeService lists the employee directory scoped to the viewer and
// passes admin writes through to the upstream API.
type EmployeeService interface {
	List(ctx context.Context, token string, viewer user.Profile) (scope.Listing[hr.Employee], error)
	Create(ctx context.Context, token string, emp hr.Employee) (hr.Employee, error)
	Update(ctx context.Context, token string, id hr.ID, emp hr.Employee) (hr.Employee, error)
	Delete(ctx context.Context, token string, id hr.ID) error
}

type Upstream interface {
	Employees(ctx context.Context, token string) ([]hr.Employee, error)
	CreateEmployee(ctx context.Context, token string, emp hr.Employee) (hr.Employee, error)
	UpdateEmployee(ctx context.Context, token string, id hr.ID, emp hr.Employee) (hr.Employee, error)
	DeleteEmployee(ctx context.Context, token string, id hr.ID) error
}

type EmployeeServiceImpl struct {
	upstream Upstream
	loader   *scope.Loader
}

func NewEmployeeService(upstream Upstream, loader *scope.Loader) EmployeeService {
	return &EmployeeServiceImpl{upstream: upstream, loader: loader}
}

func (s *EmployeeServiceImpl) List(ctx context.Context, token string, viewer user.Profile) (scope.Listing[hr.Employee], error) {
	records, err := s.upstream.Employees(ctx, token)
	if err != nil {
		return scope.Listing[hr.Employee]{}, err
	}

	// Admins see the directory unscoped, so skip the resolver round trip.
	if viewer.IsAdmin() {
		return scope.List(records, viewer, nil)
	}

	res, err := s.loader.Resolver(ctx, token)
	if err != nil {
		return scope.Listing[hr.Employee]{}, err
	}
	return scope.List(records, viewer, res)
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, token string, emp hr.Employee) (hr.Employee, error) {
	if err := validateEmployee(emp); err != nil {
		return hr.Employee{}, err
	}
	return s.upstream.CreateEmployee(ctx, token, emp)
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, token string, id hr.ID, emp hr.Employee) (hr.Employee, error) {
	if id.IsZero() {
		return hr.Employee{}, validator.ValidationErrors{{Field: "id", Message: "id is required"}}
	}
	if err := validateEmployee(emp); err != nil {
		return hr.Employee{}, err
	}
	return s.upstream.UpdateEmployee(ctx, token, id, emp)
}

func (s *EmployeeServiceImpl) Delete(ctx context.Context, token string, id hr.ID) error {
	if id.IsZero() {
		return validator.ValidationErrors{{Field: "id", Message: "id is required"}}
	}
	return s.upstream.DeleteEmployee(ctx, token, id)
}

func validateEmployee(emp hr.Employee) error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(emp.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "firstName", Message: "first name is required"})
	}
	if validator.IsEmpty(emp.LastName) {
		errs = append(errs, validator.ValidationError{Field: "lastName", Message: "last name is required"})
	}
	if validator.IsEmpty(emp.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is required"})
	} else if !validator.IsValidEmail(emp.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email format is invalid"})
	}
	if emp.HireDate != "" {
		if _, ok := validator.IsValidDate(emp.HireDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "hireDate", Message: "hire date must be YYYY-MM-DD"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
