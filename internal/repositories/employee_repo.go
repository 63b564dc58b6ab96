package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"employee-admin/internal/models"
	"github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// ErrDuplicateEmpID is returned when an insert collides with an existing
// employee identifier (the only invariant the store itself enforces).
var ErrDuplicateEmpID = errors.New("employee id already exists")

// EmployeeRepository defines the interface for employee data operations
type EmployeeRepository interface {
	List(ctx context.Context, search string) ([]models.Employee, error)
	ListRefs(ctx context.Context) ([]models.EmployeeRef, error)
	FindByID(ctx context.Context, empID string) (*models.Employee, error)
	Create(ctx context.Context, emp *models.Employee) error
	Update(ctx context.Context, emp *models.Employee) (int64, error) // Returns rows affected
	UpdateSalary(ctx context.Context, empID string, salary int64) (int64, error)
	Delete(ctx context.Context, empID string) error
}

// sqliteEmployeeRepository implements EmployeeRepository for SQLite
type sqliteEmployeeRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewSQLiteEmployeeRepository creates a new EmployeeRepository backed by SQLite
func NewSQLiteEmployeeRepository(db *sql.DB, logger *zap.Logger) EmployeeRepository {
	return &sqliteEmployeeRepository{db: db, logger: logger}
}

const employeeColumns = `emp_id, name, image_path, phone, department, salary, gender, status`

// List returns all employees, or with a non-empty search string only those
// whose emp_id or name contains it as a substring. Store-default order.
func (r *sqliteEmployeeRepository) List(ctx context.Context, search string) ([]models.Employee, error) {
	var rows *sql.Rows
	var err error

	if search != "" {
		query := `SELECT ` + employeeColumns + ` FROM employees WHERE emp_id LIKE ? OR name LIKE ?`
		pattern := "%" + search + "%"
		rows, err = r.db.QueryContext(ctx, query, pattern, pattern)
	} else {
		rows, err = r.db.QueryContext(ctx, `SELECT `+employeeColumns+` FROM employees`)
	}
	if err != nil {
		r.logger.Error("Error listing employees", zap.String("search", search), zap.Error(err))
		return nil, fmt.Errorf("error listing employees: %w", err)
	}
	defer rows.Close()

	employees := make([]models.Employee, 0)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			r.logger.Error("Error scanning employee row", zap.Error(err))
			return nil, fmt.Errorf("error scanning employee row: %w", err)
		}
		employees = append(employees, *emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employee rows: %w", err)
	}

	return employees, nil
}

// ListRefs returns the (emp_id, name) pairs used by selection lists.
func (r *sqliteEmployeeRepository) ListRefs(ctx context.Context) ([]models.EmployeeRef, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT emp_id, name FROM employees`)
	if err != nil {
		r.logger.Error("Error listing employee refs", zap.Error(err))
		return nil, fmt.Errorf("error listing employee refs: %w", err)
	}
	defer rows.Close()

	refs := make([]models.EmployeeRef, 0)
	for rows.Next() {
		var ref models.EmployeeRef
		if err := rows.Scan(&ref.EmpID, &ref.Name); err != nil {
			return nil, fmt.Errorf("error scanning employee ref: %w", err)
		}
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employee refs: %w", err)
	}

	return refs, nil
}

// FindByID retrieves one employee by identifier, or nil when absent.
func (r *sqliteEmployeeRepository) FindByID(ctx context.Context, empID string) (*models.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE emp_id = ?`
	row := r.db.QueryRowContext(ctx, query, empID)

	emp, err := scanEmployee(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		r.logger.Error("Error querying employee by ID", zap.String("emp_id", empID), zap.Error(err))
		return nil, fmt.Errorf("error finding employee %s: %w", empID, err)
	}

	return emp, nil
}

// Create inserts a new employee row. A primary-key collision is reported
// as ErrDuplicateEmpID; any other store failure propagates wrapped.
func (r *sqliteEmployeeRepository) Create(ctx context.Context, emp *models.Employee) error {
	query := `
		INSERT INTO employees (emp_id, name, phone, department, salary, image_path, gender, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		emp.EmpID,
		emp.Name,
		emp.Phone,
		emp.Department,
		emp.Salary,
		emp.ImagePath,
		emp.Gender,
		emp.Status,
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			r.logger.Warn("Duplicate employee ID on insert", zap.String("emp_id", emp.EmpID))
			return ErrDuplicateEmpID
		}
		r.logger.Error("Error creating employee", zap.String("emp_id", emp.EmpID), zap.Error(err))
		return fmt.Errorf("error creating employee %s: %w", emp.EmpID, err)
	}

	r.logger.Info("Employee created successfully", zap.String("emp_id", emp.EmpID))
	return nil
}

// Update replaces all mutable fields of the row identified by emp.EmpID.
// Updating a missing identifier affects zero rows; the count is returned
// so callers can report not-found.
func (r *sqliteEmployeeRepository) Update(ctx context.Context, emp *models.Employee) (int64, error) {
	query := `
		UPDATE employees SET name = ?, phone = ?, department = ?, salary = ?, image_path = ?, gender = ?, status = ?
		WHERE emp_id = ?`

	res, err := r.db.ExecContext(ctx, query,
		emp.Name,
		emp.Phone,
		emp.Department,
		emp.Salary,
		emp.ImagePath,
		emp.Gender,
		emp.Status,
		emp.EmpID,
	)
	if err != nil {
		r.logger.Error("Error updating employee", zap.String("emp_id", emp.EmpID), zap.Error(err))
		return 0, fmt.Errorf("error updating employee %s: %w", emp.EmpID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("error reading rows affected for employee %s: %w", emp.EmpID, err)
	}
	return affected, nil
}

// UpdateSalary replaces only the salary column of the identified row.
func (r *sqliteEmployeeRepository) UpdateSalary(ctx context.Context, empID string, salary int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE employees SET salary = ? WHERE emp_id = ?`, salary, empID)
	if err != nil {
		r.logger.Error("Error updating employee salary", zap.String("emp_id", empID), zap.Error(err))
		return 0, fmt.Errorf("error updating salary for employee %s: %w", empID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("error reading rows affected for employee %s: %w", empID, err)
	}
	return affected, nil
}

// Delete removes the identified row. Deleting a missing identifier is a
// no-op, not a fault.
func (r *sqliteEmployeeRepository) Delete(ctx context.Context, empID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE emp_id = ?`, empID)
	if err != nil {
		r.logger.Error("Error deleting employee", zap.String("emp_id", empID), zap.Error(err))
		return fmt.Errorf("error deleting employee %s: %w", empID, err)
	}

	r.logger.Info("Employee deleted", zap.String("emp_id", empID))
	return nil
}

// scanEmployee reads one employee row from either *sql.Row or *sql.Rows.
func scanEmployee(row interface{ Scan(...interface{}) error }) (*models.Employee, error) {
	emp := &models.Employee{}
	var imagePath sql.NullString
	var phone sql.NullString
	var department sql.NullString
	var salary sql.NullInt64
	var gender sql.NullString
	var status sql.NullString

	err := row.Scan(
		&emp.EmpID,
		&emp.Name,
		&imagePath,
		&phone,
		&department,
		&salary,
		&gender,
		&status,
	)
	if err != nil {
		return nil, err
	}

	if imagePath.Valid {
		emp.ImagePath = imagePath.String
	}
	if phone.Valid {
		emp.Phone = phone.String
	}
	if department.Valid {
		emp.Department = department.String
	}
	if salary.Valid {
		emp.Salary = salary.Int64
	}
	if gender.Valid {
		emp.Gender = gender.String
	}
	if status.Valid {
		emp.Status = status.String
	}

	return emp, nil
}
