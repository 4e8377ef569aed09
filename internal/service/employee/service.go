package employee

import (
	"context"
	"fmt"

	"github.com/workforcehq/workforce-backend-go/internal/domain/employee"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/cache"
)

type EmployeeServiceImpl struct {
	repo  employee.EmployeeRepository
	cache cache.Store
}

func NewEmployeeService(repo employee.EmployeeRepository, cacheStore cache.Store) employee.EmployeeService {
	return &EmployeeServiceImpl{
		repo:  repo,
		cache: cacheStore,
	}
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, page, limit int) (employee.ListEmployeesResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	key := cache.EmployeeDirectoryKey(page, limit)
	resp, err := cache.GetOrLoad(ctx, s.cache, key, cache.TTLEmployeeDirectory, func(ctx context.Context) (employee.ListEmployeesResponse, error) {
		employees, total, err := s.repo.List(ctx, page, limit)
		if err != nil {
			return employee.ListEmployeesResponse{}, err
		}

		responses := make([]employee.EmployeeResponse, 0, len(employees))
		for _, emp := range employees {
			responses = append(responses, mapEmployeeToResponse(emp))
		}
		return employee.ListEmployeesResponse{
			TotalCount: total,
			Page:       page,
			Limit:      limit,
			Employees:  responses,
		}, nil
	})
	if err != nil {
		return employee.ListEmployeesResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	return resp, nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	key := cache.EmployeeKey(id)
	resp, err := cache.GetOrLoad(ctx, s.cache, key, cache.TTLEmployeeDirectory, func(ctx context.Context) (employee.EmployeeResponse, error) {
		emp, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
		return mapEmployeeToResponse(emp), nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return resp, nil
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.repo.Create(ctx, employee.Employee{
		FullName:         req.FullName,
		Email:            req.Email,
		Position:         req.Position,
		Phone:            req.Phone,
		EmploymentStatus: employee.StatusActive,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	// The directory is paged; drop the first page, the rest ages out with
	// its TTL.
	cache.Invalidate(ctx, s.cache, cache.EmployeeDirectoryKey(1, 20))

	return mapEmployeeToResponse(created), nil
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:               emp.ID,
		FullName:         emp.FullName,
		Email:            emp.Email,
		Position:         emp.Position,
		Phone:            emp.Phone,
		EmploymentStatus: emp.EmploymentStatus,
	}
}
