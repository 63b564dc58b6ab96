package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"employee-admin/internal/config"
	"employee-admin/internal/database"
	"employee-admin/internal/models"
	"employee-admin/internal/repositories"
	"go.uber.org/zap"
)

func newEmployeeService(t *testing.T) EmployeeService {
	t.Helper()

	cfg := &config.Config{
		SQLiteDBPath: filepath.Join(t.TempDir(), "test.db"),
	}
	db, err := database.InitSQLite(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("init sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	empRepo := repositories.NewSQLiteEmployeeRepository(db, zap.NewNop())
	return NewEmployeeService(empRepo, zap.NewNop())
}

func testEmployee(empID string) *models.Employee {
	return &models.Employee{
		EmpID:      empID,
		Name:       "Ann",
		Phone:      "555-0100",
		Department: "engineering",
		Salary:     50000,
		Gender:     "female",
		Status:     "active",
	}
}

func TestCreateDuplicateMapsToEmployeeExists(t *testing.T) {
	svc := newEmployeeService(t)
	ctx := context.Background()

	if err := svc.Create(ctx, testEmployee("E1")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Create(ctx, testEmployee("E1")); !errors.Is(err, ErrEmployeeExists) {
		t.Fatalf("expected ErrEmployeeExists, got %v", err)
	}
}

func TestGetMissingEmployee(t *testing.T) {
	svc := newEmployeeService(t)

	if _, err := svc.Get(context.Background(), "nope"); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestUpdateMissingEmployee(t *testing.T) {
	svc := newEmployeeService(t)

	if err := svc.Update(context.Background(), testEmployee("nope")); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestUpdateSalaryMissingEmployee(t *testing.T) {
	svc := newEmployeeService(t)

	if err := svc.UpdateSalary(context.Background(), "nope", 60000); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestDeleteMissingEmployeeIsNoOp(t *testing.T) {
	svc := newEmployeeService(t)

	if err := svc.Delete(context.Background(), "nope"); err != nil {
		t.Fatalf("expected delete of missing employee to succeed, got %v", err)
	}
}
