package repositories

import (
	"context"
	"errors"
	"testing"

	"employee-admin/internal/models"
	"go.uber.org/zap"
)

func sampleEmployee(empID, name string) *models.Employee {
	return &models.Employee{
		EmpID:      empID,
		Name:       name,
		ImagePath:  "",
		Phone:      "555-0100",
		Department: "engineering",
		Salary:     50000,
		Gender:     "female",
		Status:     "active",
	}
}

func TestEmployeeCreateAndList(t *testing.T) {
	repo := NewSQLiteEmployeeRepository(newTestDB(t), zap.NewNop())
	ctx := context.Background()

	ids := []string{"E1", "E2", "E3"}
	for _, id := range ids {
		if err := repo.Create(ctx, sampleEmployee(id, "emp-"+id)); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}

	employees, err := repo.List(ctx, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(employees) != len(ids) {
		t.Fatalf("expected %d employees, got %d", len(ids), len(employees))
	}
	seen := make(map[string]bool)
	for _, emp := range employees {
		seen[emp.EmpID] = true
	}
	for _, id := range ids {
		if !seen[id] {
			t.Fatalf("employee %s missing from listing", id)
		}
	}
}

func TestEmployeeCreateDuplicateID(t *testing.T) {
	repo := NewSQLiteEmployeeRepository(newTestDB(t), zap.NewNop())
	ctx := context.Background()

	if err := repo.Create(ctx, sampleEmployee("E1", "Ann")); err != nil {
		t.Fatalf("create: %v", err)
	}
	err := repo.Create(ctx, sampleEmployee("E1", "Bob"))
	if !errors.Is(err, ErrDuplicateEmpID) {
		t.Fatalf("expected ErrDuplicateEmpID, got %v", err)
	}
}

func TestEmployeeSearch(t *testing.T) {
	repo := NewSQLiteEmployeeRepository(newTestDB(t), zap.NewNop())
	ctx := context.Background()

	if err := repo.Create(ctx, sampleEmployee("E1", "Ann")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(ctx, sampleEmployee("E2", "Bob")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(ctx, sampleEmployee("X9", "Annabel")); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Substring of a name
	byName, err := repo.List(ctx, "Ann")
	if err != nil {
		t.Fatalf("search by name: %v", err)
	}
	if len(byName) != 2 {
		t.Fatalf("expected 2 matches for 'Ann', got %d", len(byName))
	}

	// Substring of an identifier
	byID, err := repo.List(ctx, "E")
	if err != nil {
		t.Fatalf("search by id: %v", err)
	}
	if len(byID) != 2 {
		t.Fatalf("expected 2 matches for 'E', got %d", len(byID))
	}

	// No match
	none, err := repo.List(ctx, "zzz")
	if err != nil {
		t.Fatalf("search no match: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected empty result, got %d rows", len(none))
	}
}

func TestEmployeeFindByID(t *testing.T) {
	repo := NewSQLiteEmployeeRepository(newTestDB(t), zap.NewNop())
	ctx := context.Background()

	if err := repo.Create(ctx, sampleEmployee("E1", "Ann")); err != nil {
		t.Fatalf("create: %v", err)
	}

	emp, err := repo.FindByID(ctx, "E1")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if emp == nil || emp.Name != "Ann" {
		t.Fatalf("expected Ann, got %+v", emp)
	}

	missing, err := repo.FindByID(ctx, "nope")
	if err != nil {
		t.Fatalf("find missing: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for missing employee, got %+v", missing)
	}
}

func TestEmployeeUpdate(t *testing.T) {
	repo := NewSQLiteEmployeeRepository(newTestDB(t), zap.NewNop())
	ctx := context.Background()

	if err := repo.Create(ctx, sampleEmployee("E1", "Ann")); err != nil {
		t.Fatalf("create: %v", err)
	}

	updated := sampleEmployee("E1", "Ann Smith")
	updated.Department = "finance"
	updated.ImagePath = "ann.png"
	affected, err := repo.Update(ctx, updated)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if affected != 1 {
		t.Fatalf("expected 1 row affected, got %d", affected)
	}

	emp, err := repo.FindByID(ctx, "E1")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if emp.Name != "Ann Smith" || emp.Department != "finance" || emp.ImagePath != "ann.png" {
		t.Fatalf("update not applied: %+v", emp)
	}

	// Updating a missing identifier affects zero rows and is not a fault.
	affected, err = repo.Update(ctx, sampleEmployee("nope", "Ghost"))
	if err != nil {
		t.Fatalf("update missing: %v", err)
	}
	if affected != 0 {
		t.Fatalf("expected 0 rows affected for missing id, got %d", affected)
	}
}

func TestEmployeeUpdateSalaryOnlyTouchesSalary(t *testing.T) {
	repo := NewSQLiteEmployeeRepository(newTestDB(t), zap.NewNop())
	ctx := context.Background()

	orig := sampleEmployee("E1", "Ann")
	orig.ImagePath = "ann.png"
	if err := repo.Create(ctx, orig); err != nil {
		t.Fatalf("create: %v", err)
	}

	affected, err := repo.UpdateSalary(ctx, "E1", 60000)
	if err != nil {
		t.Fatalf("update salary: %v", err)
	}
	if affected != 1 {
		t.Fatalf("expected 1 row affected, got %d", affected)
	}

	emp, err := repo.FindByID(ctx, "E1")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if emp.Salary != 60000 {
		t.Fatalf("expected salary 60000, got %d", emp.Salary)
	}
	if emp.Name != orig.Name || emp.Phone != orig.Phone || emp.Department != orig.Department ||
		emp.Gender != orig.Gender || emp.Status != orig.Status || emp.ImagePath != orig.ImagePath {
		t.Fatalf("non-salary fields changed: %+v", emp)
	}
}

func TestEmployeeDelete(t *testing.T) {
	repo := NewSQLiteEmployeeRepository(newTestDB(t), zap.NewNop())
	ctx := context.Background()

	if err := repo.Create(ctx, sampleEmployee("E1", "Ann")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Delete(ctx, "E1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	emp, err := repo.FindByID(ctx, "E1")
	if err != nil {
		t.Fatalf("find after delete: %v", err)
	}
	if emp != nil {
		t.Fatalf("expected employee gone, got %+v", emp)
	}

	// Deleting a missing identifier is a no-op.
	if err := repo.Delete(ctx, "E1"); err != nil {
		t.Fatalf("delete missing: %v", err)
	}
}
