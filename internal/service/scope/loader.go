package scope

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/hrsystem/hr-gateway/internal/domain/hr"
	"github.com/hrsystem/hr-gateway/internal/domain/user"
)

// Directory is the slice of the API client identity resolution needs.
type Directory interface {
	Employees(ctx context.Context, token string) ([]hr.Employee, error)
	Departments(ctx context.Context, token string) ([]hr.Department, error)
}

// Loader builds resolvers from fresh upstream snapshots. Separated from
// the filter itself so Visible stays pure and testable without I/O.
type Loader struct {
	directory Directory
}

func NewLoader(directory Directory) *Loader {
	return &Loader{directory: directory}
}

// Resolver fetches the employee and department collections in parallel
// and wraps them. Admin viewers never need one, so callers skip this
// round trip for them.
func (l *Loader) Resolver(ctx context.Context, token string) (*Resolver, error) {
	var (
		employees   []hr.Employee
		departments []hr.Department
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		employees, err = l.directory.Employees(gCtx, token)
		return err
	})
	g.Go(func() error {
		var err error
		departments, err = l.directory.Departments(gCtx, token)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return NewResolver(employees, departments), nil
}

// Listing is a scoped collection plus an optional warning for the cases
// where scoping failed closed: the records are legitimately empty, and
// the warning tells the user why that is not the same as having no data.
type Listing[T any] struct {
	Records []T    `json:"records"`
	Warning string `json:"warning,omitempty"`
}

// List scopes records for the viewer, folding the fail-closed outcomes
// into an empty listing with a human-readable warning rather than an
// error. Only an unknown role still errors: that is a broken session,
// not a scoping outcome.
func List[T Record](records []T, viewer user.Profile, res *Resolver) (Listing[T], error) {
	visible, err := Visible(records, viewer, res)
	switch {
	case err == nil:
		return Listing[T]{Records: visible}, nil
	case errors.Is(err, ErrDepartmentUnresolved):
		return Listing[T]{
			Records: visible,
			Warning: "Department information not found. Ask an admin to assign you to a department.",
		}, nil
	case errors.Is(err, ErrEmployeeUnresolved):
		return Listing[T]{
			Records: visible,
			Warning: "No employee record is linked to your account. Ask an admin to link one.",
		}, nil
	default:
		return Listing[T]{Records: []T{}}, err
	}
}
