package payroll

import (
	"context"

	"github.com/hrsystem/hr-gateway/internal/domain/hr"
	"github.com/hrsystem/hr-gateway/internal/domain/user"
	"github.com/hrsystem/hr-gateway/internal/pkg/validator"
	"github.com/hrsystem/hr-gateway/internal/service/scope"
)

// PayrollService lists payroll records scoped to the viewer and lets
// admins create new ones. Creation sits behind an admin-only route.
type PayrollService interface {
	List(ctx context.Context, token string, viewer user.Profile) (scope.Listing[hr.PayrollRecord], error)
	Create(ctx context.Context, token string, rec hr.PayrollRecord) (hr.PayrollRecord, error)
}

type Upstream interface {
	PayrollRecords(ctx context.Context, token string) ([]hr.PayrollRecord, error)
	CreatePayrollRecord(ctx context.Context, token string, rec hr.PayrollRecord) (hr.PayrollRecord, error)
}

type PayrollServiceImpl struct {
	upstream Upstream
	loader   *scope.Loader
}

func NewPayrollService(upstream Upstream, loader *scope.Loader) PayrollService {
	return &PayrollServiceImpl{upstream: upstream, loader: loader}
}

func (s *PayrollServiceImpl) List(ctx context.Context, token string, viewer user.Profile) (scope.Listing[hr.PayrollRecord], error) {
	records, err := s.upstream.PayrollRecords(ctx, token)
	if err != nil {
		return scope.Listing[hr.PayrollRecord]{}, err
	}

	if viewer.IsAdmin() {
		return scope.List(records, viewer, nil)
	}

	res, err := s.loader.Resolver(ctx, token)
	if err != nil {
		return scope.Listing[hr.PayrollRecord]{}, err
	}
	return scope.List(records, viewer, res)
}

func (s *PayrollServiceImpl) Create(ctx context.Context, token string, rec hr.PayrollRecord) (hr.PayrollRecord, error) {
	var errs validator.ValidationErrors
	if rec.EmployeeID.IsZero() {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "employee id is required"})
	}
	if validator.IsEmpty(rec.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month is required"})
	}
	if rec.NetSalary < 0 {
		errs = append(errs, validator.ValidationError{Field: "netSalary", Message: "net salary must not be negative"})
	}
	if len(errs) > 0 {
		return hr.PayrollRecord{}, errs
	}
	return s.upstream.CreatePayrollRecord(ctx, token, rec)
}
