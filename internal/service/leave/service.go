package leave

import (
	"context"

	"github.com/hrsystem/hr-gateway/internal/domain/hr"
	"github.com/hrsystem/hr-gateway/internal/domain/user"
	"github.com/hrsystem/hr-gateway/internal/pkg/validator"
	"github.com/hrsystem/hr-gateway/internal/service/scope"
)

var decisionStatuses = []string{"approved", "rejected"}

// LeaveService lists leave requests scoped to the viewer, files new
// requests, and records approval decisions. Plain employees always file
// for themselves; the decision endpoints sit behind a manager-or-above
// route so the service only validates the decision itself.
type LeaveService interface {
	List(ctx context.Context, token string, viewer user.Profile) (scope.Listing[hr.LeaveRequest], error)
	Create(ctx context.Context, token string, viewer user.Profile, req hr.LeaveRequest) (hr.LeaveRequest, error)
	UpdateStatus(ctx context.Context, token string, id hr.ID, status, comments string) (hr.LeaveRequest, error)
}

type Upstream interface {
	LeaveRequests(ctx context.Context, token string) ([]hr.LeaveRequest, error)
	CreateLeaveRequest(ctx context.Context, token string, req hr.LeaveRequest) (hr.LeaveRequest, error)
	UpdateLeaveStatus(ctx context.Context, token string, id hr.ID, status, comments string) (hr.LeaveRequest, error)
}

type LeaveServiceImpl struct {
	upstream Upstream
	loader   *scope.Loader
}

func NewLeaveService(upstream Upstream, loader *scope.Loader) LeaveService {
	return &LeaveServiceImpl{upstream: upstream, loader: loader}
}

func (s *LeaveServiceImpl) List(ctx context.Context, token string, viewer user.Profile) (scope.Listing[hr.LeaveRequest], error) {
	records, err := s.upstream.LeaveRequests(ctx, token)
	if err != nil {
		return scope.Listing[hr.LeaveRequest]{}, err
	}

	if viewer.IsAdmin() {
		return scope.List(records, viewer, nil)
	}

	res, err := s.loader.Resolver(ctx, token)
	if err != nil {
		return scope.Listing[hr.LeaveRequest]{}, err
	}
	return scope.List(records, viewer, res)
}

func (s *LeaveServiceImpl) Create(ctx context.Context, token string, viewer user.Profile, req hr.LeaveRequest) (hr.LeaveRequest, error) {
	if err := validateLeave(req); err != nil {
		return hr.LeaveRequest{}, err
	}

	// Employees file for themselves no matter what the payload says.
	if !viewer.IsManager() || req.EmployeeID.IsZero() {
		own, err := s.ownEmployeeID(ctx, token, viewer)
		if err != nil {
			return hr.LeaveRequest{}, err
		}
		req.EmployeeID = own
	}

	req.Status = hr.LeaveStatusPending
	return s.upstream.CreateLeaveRequest(ctx, token, req)
}

func (s *LeaveServiceImpl) UpdateStatus(ctx context.Context, token string, id hr.ID, status, comments string) (hr.LeaveRequest, error) {
	if id.IsZero() {
		return hr.LeaveRequest{}, validator.ValidationErrors{{Field: "id", Message: "id is required"}}
	}
	if !validator.IsInSlice(status, decisionStatuses) {
		return hr.LeaveRequest{}, validator.ValidationErrors{{Field: "status", Message: "status must be approved or rejected"}}
	}
	return s.upstream.UpdateLeaveStatus(ctx, token, id, status, comments)
}

func (s *LeaveServiceImpl) ownEmployeeID(ctx context.Context, token string, viewer user.Profile) (hr.ID, error) {
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

func validateLeave(req hr.LeaveRequest) error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(req.LeaveType) {
		errs = append(errs, validator.ValidationError{Field: "leaveType", Message: "leave type is required"})
	}
	start, startOK := validator.IsValidDate(req.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "startDate", Message: "start date must be YYYY-MM-DD"})
	}
	end, endOK := validator.IsValidDate(req.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "endDate", Message: "end date must be YYYY-MM-DD"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "endDate", Message: "end date must not be before start date"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
