package department

import (
	"context"

	"github.com/hrsystem/hr-gateway/internal/domain/hr"
	"github.com/hrsystem/hr-gateway/internal/pkg/validator"
)

// DepartmentService serves the department directory. Departments are
// organisational metadata visible to every signed-in role, so the list
// is never scoped; writes are admin-only and enforced at the route.
type DepartmentService interface {
	List(ctx context.Context, token string) ([]hr.Department, error)
	Create(ctx context.Context, token string, dept hr.Department) (hr.Department, error)
	Update(ctx context.Context, token string, id hr.ID, dept hr.Department) (hr.Department, error)
	Delete(ctx context.Context, token string, id hr.ID) error
}

type Upstream interface {
	Departments(ctx context.Context, token string) ([]hr.Department, error)
	CreateDepartment(ctx context.Context, token string, dept hr.Department) (hr.Department, error)
	UpdateDepartment(ctx context.Context, token string, id hr.ID, dept hr.Department) (hr.Department, error)
	DeleteDepartment(ctx context.Context, token string, id hr.ID) error
}

type DepartmentServiceImpl struct {
	upstream Upstream
}

func NewDepartmentService(upstream Upstream) DepartmentService {
	return &DepartmentServiceImpl{upstream: upstream}
}

func (s *DepartmentServiceImpl) List(ctx context.Context, token string) ([]hr.Department, error) {
	return s.upstream.Departments(ctx, token)
}

func (s *DepartmentServiceImpl) Create(ctx context.Context, token string, dept hr.Department) (hr.Department, error) {
	if validator.IsEmpty(dept.Name) {
		return hr.Department{}, validator.ValidationErrors{{Field: "name", Message: "name is required"}}
	}
	return s.upstream.CreateDepartment(ctx, token, dept)
}

func (s *DepartmentServiceImpl) Update(ctx context.Context, token string, id hr.ID, dept hr.Department) (hr.Department, error) {
	if id.IsZero() {
		return hr.Department{}, validator.ValidationErrors{{Field: "id", Message: "id is required"}}
	}
	if validator.IsEmpty(dept.Name) {
		return hr.Department{}, validator.ValidationErrors{{Field: "name", Message: "name is required"}}
	}
	return s.upstream.UpdateDepartment(ctx, token, id, dept)
}

func (s *DepartmentServiceImpl) Delete(ctx context.Context, token string, id hr.ID) error {
	if id.IsZero() {
		return validator.ValidationErrors{{Field: "id", Message: "id is required"}}
	}
	return s.upstream.DeleteDepartment(ctx, token, id)
}
