package employee

import "context"

type EmployeeService interface {
	// List serves the team directory through the cache.
	List(ctx context.Context, page, limit int) (ListEmployeesResponse, error)

	// Get returns one employee profile through the cache.
	Get(ctx context.Context, id string) (EmployeeResponse, error)

	// Create adds an employee (admin) and invalidates the directory cache.
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
}
