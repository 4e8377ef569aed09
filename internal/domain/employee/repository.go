package employee

import "context"

type EmployeeRepository interface {
	// Create inserts a new employee. Returns ErrEmailExists on a duplicate
	// email.
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID returns one employee. Returns ErrEmployeeNotFound when absent.
	GetByID(ctx context.Context, id string) (Employee, error)

	// List returns a page of the directory plus the total count.
	List(ctx context.Context, page, limit int) ([]Employee, int64, error)

	// ListActive returns every active employee. Used by the absence job.
	ListActive(ctx context.Context) ([]Employee, error)
}
