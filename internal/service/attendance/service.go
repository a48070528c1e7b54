package attendance

import (
	"context"

	"github.com/hrsystem/hr-gateway/internal/domain/hr"
	"github.com/hrsystem/hr-gateway/internal/domain/user"
	"github.com/hrsystem/hr-gateway/internal/service/scope"
)

// AttendanceService lists attendance scoped to the viewer and handles
// check-in and check-out. Plain employees can only clock themselves:
// whatever employee id the request carries, it is replaced with the one
// resolved from the viewer's own account.
type AttendanceService interface {
	List(ctx context.Context, token string, viewer user.Profile) (scope.Listing[hr.Attendance], error)
	CheckIn(ctx context.Context, token string, viewer user.Profile, employeeID hr.ID) (hr.Attendance, error)
	CheckOut(ctx context.Context, token string, viewer user.Profile, employeeID hr.ID) (hr.Attendance, error)
}

type Upstream interface {
	Attendance(ctx context.Context, token string) ([]hr.Attendance, error)
	CheckIn(ctx context.Context, token string, employeeID hr.ID) (hr.Attendance, error)
	CheckOut(ctx context.Context, token string, employeeID hr.ID) (hr.Attendance, error)
}

type AttendanceServiceImpl struct {
	upstream Upstream
	loader   *scope.Loader
}

func NewAttendanceService(upstream Upstream, loader *scope.Loader) AttendanceService {
	return &AttendanceServiceImpl{upstream: upstream, loader: loader}
}

func (s *AttendanceServiceImpl) List(ctx context.Context, token string, viewer user.Profile) (scope.Listing[hr.Attendance], error) {
	records, err := s.upstream.Attendance(ctx, token)
	if err != nil {
		return scope.Listing[hr.Attendance]{}, err
	}

	if viewer.IsAdmin() {
		return scope.List(records, viewer, nil)
	}

	res, err := s.loader.Resolver(ctx, token)
	if err != nil {
		return scope.Listing[hr.Attendance]{}, err
	}
	return scope.List(records, viewer, res)
}

func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, token string, viewer user.Profile, employeeID hr.ID) (hr.Attendance, error) {
	id, err := s.clockTarget(ctx, token, viewer, employeeID)
	if err != nil {
		return hr.Attendance{}, err
	}
	return s.upstream.CheckIn(ctx, token, id)
}

func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, token string, viewer user.Profile, employeeID hr.ID) (hr.Attendance, error) {
	id, err := s.clockTarget(ctx, token, viewer, employeeID)
	if err != nil {
		return hr.Attendance{}, err
	}
	return s.upstream.CheckOut(ctx, token, id)
}

// clockTarget decides whose attendance row a clock action touches.
// Managers and admins may clock any explicit employee id; everyone
// falls back to their own record when none is given, and plain
// employees always get their own record regardless of the payload.
func (s *AttendanceServiceImpl) clockTarget(ctx context.Context, token string, viewer user.Profile, requested hr.ID) (hr.ID, error) {
	if !requested.IsZero() && viewer.IsManager() {
		return requested, nil
	}

	if own := hr.ID(viewer.EmployeeID); !own.IsZero() {
		return own, nil
	}

	res, err := s.loader.Resolver(ctx, token)
	if err != nil {
		return "", err
	}
	emp, ok := res.EmployeeFor(viewer)
	if !ok {
		return "", scope.ErrEmployeeUnresolved
	}
	return emp.ID, nil
}
