package leave

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrsystem/hr-gateway/internal/domain/hr"
	"github.com/hrsystem/hr-gateway/internal/domain/user"
	"github.com/hrsystem/hr-gateway/internal/pkg/validator"
	"github.com/hrsystem/hr-gateway/internal/service/scope"
)

type fakeUpstream struct {
	leaves      []hr.LeaveRequest
	employees   []hr.Employee
	departments []hr.Department

	created    *hr.LeaveRequest
	lastStatus string
}

func (f *fakeUpstream) LeaveRequests(ctx context.Context, token string) ([]hr.LeaveRequest, error) {
	return f.leaves, nil
}

func (f *fakeUpstream) Employees(ctx context.Context, token string) ([]hr.Employee, error) {
	return f.employees, nil
}

func (f *fakeUpstream) Departments(ctx context.Context, token string) ([]hr.Department, error) {
	return f.departments, nil
}

func (f *fakeUpstream) CreateLeaveRequest(ctx context.Context, token string, req hr.LeaveRequest) (hr.LeaveRequest, error) {
	f.created = &req
	return req, nil
}

func (f *fakeUpstream) UpdateLeaveStatus(ctx context.Context, token string, id hr.ID, status, comments string) (hr.LeaveRequest, error) {
	f.lastStatus = status
	return hr.LeaveRequest{ID: id, Status: status, Comments: comments}, nil
}

func newService(f *fakeUpstream) LeaveService {
	return NewLeaveService(f, scope.NewLoader(f))
}

func validRequest() hr.LeaveRequest {
	return hr.LeaveRequest{
		LeaveType: "annual",
		StartDate: "2025-07-01",
		EndDate:   "2025-07-03",
	}
}

func TestCreate_EmployeeAlwaysFilesForSelf(t *testing.T) {
	f := &fakeUpstream{}
	svc := newService(f)

	req := validRequest()
	req.EmployeeID = "999"
	req.Status = "approved"

	viewer := user.Profile{ID: "u1", Role: user.RoleEmployee, EmployeeID: "10"}
	out, err := svc.Create(context.Background(), "tok", viewer, req)
	require.NoError(t, err)

	assert.Equal(t, hr.ID("10"), out.EmployeeID)
	assert.Equal(t, hr.LeaveStatusPending, out.Status)
	require.NotNil(t, f.created)
	assert.Equal(t, hr.ID("10"), f.created.EmployeeID)
}

func TestCreate_ManagerMayFileForTeamMember(t *testing.T) {
	f := &fakeUpstream{}
	svc := newService(f)

	req := validRequest()
	req.EmployeeID = "20"

	viewer := user.Profile{ID: "u2", Role: user.RoleManager, EmployeeID: "11"}
	out, err := svc.Create(context.Background(), "tok", viewer, req)
	require.NoError(t, err)
	assert.Equal(t, hr.ID("20"), out.EmployeeID)
}

func TestCreate_RejectsReversedDates(t *testing.T) {
	f := &fakeUpstream{}
	svc := newService(f)

	req := validRequest()
	req.StartDate = "2025-07-10"
	req.EndDate = "2025-07-01"

	viewer := user.Profile{ID: "u1", Role: user.RoleEmployee, EmployeeID: "10"}
	_, err := svc.Create(context.Background(), "tok", viewer, req)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "endDate")
	assert.Nil(t, f.created)
}

func TestCreate_ResolvesEmployeeFromDirectory(t *testing.T) {
	f := &fakeUpstream{employees: []hr.Employee{{ID: "10", UserID: "u1"}}}
	svc := newService(f)

	viewer := user.Profile{ID: "u1", Role: user.RoleEmployee}
	out, err := svc.Create(context.Background(), "tok", viewer, validRequest())
	require.NoError(t, err)
	assert.Equal(t, hr.ID("10"), out.EmployeeID)
}

func TestUpdateStatus_OnlyDecisionStatusesAllowed(t *testing.T) {
	f := &fakeUpstream{}
	svc := newService(f)

	_, err := svc.UpdateStatus(context.Background(), "tok", "5", "pending", "")
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	out, err := svc.UpdateStatus(context.Background(), "tok", "5", "approved", "enjoy")
	require.NoError(t, err)
	assert.Equal(t, "approved", out.Status)
	assert.Equal(t, "approved", f.lastStatus)
}

func TestList_ManagerSeesOwnDepartmentOnly(t *testing.T) {
	f := &fakeUpstream{
		leaves: []hr.LeaveRequest{
			{ID: "1", EmployeeID: "10"},
			{ID: "2", EmployeeID: "20"},
		},
		employees: []hr.Employee{
			{ID: "11", UserID: "u2", DepartmentID: "d1"},
			{ID: "10", DepartmentID: "d1"},
			{ID: "20", DepartmentID: "d2"},
		},
	}
	svc := newService(f)

	listing, err := svc.List(context.Background(), "tok", user.Profile{ID: "u2", Role: user.RoleManager})
	require.NoError(t, err)
	require.Len(t, listing.Records, 1)
	assert.Equal(t, hr.ID("10"), listing.Records[0].EmployeeID)
}
