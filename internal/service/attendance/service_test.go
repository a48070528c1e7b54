package attendance

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrsystem/hr-gateway/internal/domain/hr"
	"github.com/hrsystem/hr-gateway/internal/domain/user"
	"github.com/hrsystem/hr-gateway/internal/service/scope"
)

type fakeUpstream struct {
	attendance  []hr.Attendance
	employees   []hr.Employee
	departments []hr.Department

	directoryCalls int
	lastClocked    hr.ID
}

func (f *fakeUpstream) Attendance(ctx context.Context, token string) ([]hr.Attendance, error) {
	return f.attendance, nil
}

func (f *fakeUpstream) Employees(ctx context.Context, token string) ([]hr.Employee, error) {
	f.directoryCalls++
	return f.employees, nil
}

func (f *fakeUpstream) Departments(ctx context.Context, token string) ([]hr.Department, error) {
	return f.departments, nil
}

func (f *fakeUpstream) CheckIn(ctx context.Context, token string, employeeID hr.ID) (hr.Attendance, error) {
	f.lastClocked = employeeID
	return hr.Attendance{EmployeeID: employeeID}, nil
}

func (f *fakeUpstream) CheckOut(ctx context.Context, token string, employeeID hr.ID) (hr.Attendance, error) {
	f.lastClocked = employeeID
	return hr.Attendance{EmployeeID: employeeID}, nil
}

func newService(f *fakeUpstream) AttendanceService {
	return NewAttendanceService(f, scope.NewLoader(f))
}

func TestList_AdminSkipsDirectoryFetch(t *testing.T) {
	f := &fakeUpstream{
		attendance: []hr.Attendance{
			{ID: "1", EmployeeID: "10"},
			{ID: "2", EmployeeID: "20"},
		},
	}
	svc := newService(f)

	listing, err := svc.List(context.Background(), "tok", user.Profile{ID: "u1", Role: user.RoleAdmin})
	require.NoError(t, err)
	assert.Len(t, listing.Records, 2)
	assert.Empty(t, listing.Warning)
	assert.Zero(t, f.directoryCalls)
}

func TestList_EmployeeSeesOnlyOwnRows(t *testing.T) {
	f := &fakeUpstream{
		attendance: []hr.Attendance{
			{ID: "1", EmployeeID: "10"},
			{ID: "2", EmployeeID: "20"},
		},
		employees: []hr.Employee{{ID: "10", UserID: "u1"}},
	}
	svc := newService(f)

	listing, err := svc.List(context.Background(), "tok", user.Profile{ID: "u1", Role: user.RoleEmployee})
	require.NoError(t, err)
	require.Len(t, listing.Records, 1)
	assert.Equal(t, hr.ID("10"), listing.Records[0].EmployeeID)
}

func TestList_ManagerWithoutDepartmentWarnsEmpty(t *testing.T) {
	f := &fakeUpstream{
		attendance: []hr.Attendance{{ID: "1", EmployeeID: "10"}},
		employees:  []hr.Employee{{ID: "10", DepartmentID: "d1"}},
	}
	svc := newService(f)

	listing, err := svc.List(context.Background(), "tok", user.Profile{ID: "u9", Email: "boss@acme.test", Role: user.RoleManager})
	require.NoError(t, err)
	assert.Empty(t, listing.Records)
	assert.NotNil(t, listing.Records)
	assert.NotEmpty(t, listing.Warning)
}

func TestCheckIn_EmployeeCannotClockSomeoneElse(t *testing.T) {
	f := &fakeUpstream{}
	svc := newService(f)

	viewer := user.Profile{ID: "u1", Role: user.RoleEmployee, EmployeeID: "10"}
	_, err := svc.CheckIn(context.Background(), "tok", viewer, "20")
	require.NoError(t, err)
	assert.Equal(t, hr.ID("10"), f.lastClocked)
}

func TestCheckIn_ManagerMayClockExplicitEmployee(t *testing.T) {
	f := &fakeUpstream{}
	svc := newService(f)

	viewer := user.Profile{ID: "u2", Role: user.RoleManager, EmployeeID: "11"}
	_, err := svc.CheckIn(context.Background(), "tok", viewer, "20")
	require.NoError(t, err)
	assert.Equal(t, hr.ID("20"), f.lastClocked)
}

func TestCheckIn_AdminMayClockExplicitEmployee(t *testing.T) {
	f := &fakeUpstream{}
	svc := newService(f)

	viewer := user.Profile{ID: "u1", Role: user.RoleAdmin, EmployeeID: "1"}
	_, err := svc.CheckIn(context.Background(), "tok", viewer, "20")
	require.NoError(t, err)
	assert.Equal(t, hr.ID("20"), f.lastClocked)
}

func TestCheckOut_ResolvesOwnRecordFromDirectory(t *testing.T) {
	f := &fakeUpstream{
		employees: []hr.Employee{{ID: "10", Email: "me@acme.test"}},
	}
	svc := newService(f)

	viewer := user.Profile{ID: "u1", Email: "me@acme.test", Role: user.RoleEmployee}
	_, err := svc.CheckOut(context.Background(), "tok", viewer, "")
	require.NoError(t, err)
	assert.Equal(t, hr.ID("10"), f.lastClocked)
}

func TestCheckIn_UnlinkedAccountFails(t *testing.T) {
	f := &fakeUpstream{employees: []hr.Employee{{ID: "10", Email: "other@acme.test"}}}
	svc := newService(f)

	viewer := user.Profile{ID: "u1", Email: "me@acme.test", Role: user.RoleEmployee}
	_, err := svc.CheckIn(context.Background(), "tok", viewer, "")
	assert.ErrorIs(t, err, scope.ErrEmployeeUnresolved)
}
