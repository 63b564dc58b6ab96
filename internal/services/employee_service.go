package services

import (
	"context"
	"errors"
	"fmt"

	"employee-admin/internal/models"
	"employee-admin/internal/repositories"
	"go.uber.org/zap"
)

var (
	ErrEmployeeExists   = errors.New("employee id already exists")
	ErrEmployeeNotFound = errors.New("employee not found")
)

// EmployeeService defines the interface for employee management operations
type EmployeeService interface {
	List(ctx context.Context, search string) ([]models.Employee, error)
	ListRefs(ctx context.Context) ([]models.EmployeeRef, error)
	Get(ctx context.Context, empID string) (*models.Employee, error)
	Create(ctx context.Context, emp *models.Employee) error
	Update(ctx context.Context, emp *models.Employee) error
	UpdateSalary(ctx context.Context, empID string, salary int64) error
	Delete(ctx context.Context, empID string) error
}

type employeeServiceImpl struct {
	empRepo repositories.EmployeeRepository
	logger  *zap.Logger
}

// NewEmployeeService creates a new EmployeeService
func NewEmployeeService(empRepo repositories.EmployeeRepository, logger *zap.Logger) EmployeeService {
	return &employeeServiceImpl{
		empRepo: empRepo,
		logger:  logger,
	}
}

// List returns all employees, filtered by the optional search substring.
func (s *employeeServiceImpl) List(ctx context.Context, search string) ([]models.Employee, error) {
	employees, err := s.empRepo.List(ctx, search)
	if err != nil {
		s.logger.Error("Failed to list employees", zap.String("search", search), zap.Error(err))
		return nil, fmt.Errorf("could not list employees: %w", err)
	}
	return employees, nil
}

// ListRefs returns the (id, name) pairs for selection forms.
func (s *employeeServiceImpl) ListRefs(ctx context.Context) ([]models.EmployeeRef, error) {
	refs, err := s.empRepo.ListRefs(ctx)
	if err != nil {
		s.logger.Error("Failed to list employee refs", zap.Error(err))
		return nil, fmt.Errorf("could not list employees: %w", err)
	}
	return refs, nil
}

// Get loads one employee by identifier.
func (s *employeeServiceImpl) Get(ctx context.Context, empID string) (*models.Employee, error) {
	emp, err := s.empRepo.FindByID(ctx, empID)
	if err != nil {
		s.logger.Error("Failed to fetch employee", zap.String("emp_id", empID), zap.Error(err))
		return nil, fmt.Errorf("could not fetch employee %s: %w", empID, err)
	}
	if emp == nil {
		return nil, ErrEmployeeNotFound
	}
	return emp, nil
}

// Create inserts a new employee record.
func (s *employeeServiceImpl) Create(ctx context.Context, emp *models.Employee) error {
	if err := s.empRepo.Create(ctx, emp); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmpID) {
			s.logger.Warn("Create rejected: duplicate employee id", zap.String("emp_id", emp.EmpID))
			return ErrEmployeeExists
		}
		s.logger.Error("Failed to create employee", zap.String("emp_id", emp.EmpID), zap.Error(err))
		return fmt.Errorf("could not create employee %s: %w", emp.EmpID, err)
	}
	return nil
}

// Update performs a full-row replace of the mutable fields.
func (s *employeeServiceImpl) Update(ctx context.Context, emp *models.Employee) error {
	affected, err := s.empRepo.Update(ctx, emp)
	if err != nil {
		s.logger.Error("Failed to update employee", zap.String("emp_id", emp.EmpID), zap.Error(err))
		return fmt.Errorf("could not update employee %s: %w", emp.EmpID, err)
	}
	if affected == 0 {
		s.logger.Warn("Update touched no rows", zap.String("emp_id", emp.EmpID))
		return ErrEmployeeNotFound
	}
	return nil
}

// UpdateSalary replaces only the salary field of the record.
func (s *employeeServiceImpl) UpdateSalary(ctx context.Context, empID string, salary int64) error {
	affected, err := s.empRepo.UpdateSalary(ctx, empID, salary)
	if err != nil {
		s.logger.Error("Failed to update salary", zap.String("emp_id", empID), zap.Error(err))
		return fmt.Errorf("could not update salary for %s: %w", empID, err)
	}
	if affected == 0 {
		s.logger.Warn("Salary update touched no rows", zap.String("emp_id", empID))
		return ErrEmployeeNotFound
	}
	return nil
}

// Delete removes the record unconditionally. The associated photo, if any,
// stays in the file store.
func (s *employeeServiceImpl) Delete(ctx context.Context, empID string) error {
	if err := s.empRepo.Delete(ctx, empID); err != nil {
		s.logger.Error("Failed to delete employee", zap.String("emp_id", empID), zap.Error(err))
		return fmt.Errorf("could not delete employee %s: %w", empID, err)
	}
	return nil
}
