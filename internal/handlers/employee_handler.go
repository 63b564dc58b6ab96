package handlers

import (
	"errors"
	"strconv"
	"strings"

	"employee-admin/internal/flash"
	mw "employee-admin/internal/middleware"
	"employee-admin/internal/models"
	"employee-admin/internal/pkg/validation"
	"employee-admin/internal/services"
	"employee-admin/internal/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// EmployeeHandler handles the employee-management routes. Every route it
// registers sits behind the session guard.
type EmployeeHandler struct {
	empService services.EmployeeService
	fileStore  *storage.FileStore
}

// NewEmployeeHandler creates a new EmployeeHandler
func NewEmployeeHandler(empService services.EmployeeService, fileStore *storage.FileStore) *EmployeeHandler {
	return &EmployeeHandler{
		empService: empService,
		fileStore:  fileStore,
	}
}

// EmployeeForm defines the expected form fields for add and edit.
// Salary arrives as a string so that a legitimate value of 0 passes the
// presence check; it is converted after validation.
type EmployeeForm struct {
	EmpID      string `form:"emp_id" validate:"required"`
	Name       string `form:"name" validate:"required"`
	Phone      string `form:"phone" validate:"required"`
	Department string `form:"department" validate:"required"`
	Salary     string `form:"salary" validate:"required"`
	Gender     string `form:"gender" validate:"required"`
	Status     string `form:"status" validate:"required"`
}

// SalaryForm defines the expected form fields for the salary update
type SalaryForm struct {
	EmpID  string `form:"emp_id" validate:"required"`
	Salary string `form:"salary" validate:"required"`
}

// parseSalary converts the submitted salary to the whole number the
// store keeps.
func parseSalary(raw string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
}

// Dashboard handles GET /dashboard requests, listing employees with an
// optional substring filter over emp_id and name.
func (h *EmployeeHandler) Dashboard(c *fiber.Ctx) error {
	logger := mw.GetRequestLogger(c)

	search := c.Query("search")
	employees, err := h.empService.List(c.Context(), search)
	if err != nil {
		logger.Error("Failed to load dashboard", zap.String("search", search), zap.Error(err))
		flash.Set(c, "Could not load employees.", "danger")
		employees = nil
	}

	return render(c, "dashboard", fiber.Map{
		"Employees": employees,
		"Search":    search,
	})
}

// ShowAdd handles GET /add requests
func (h *EmployeeHandler) ShowAdd(c *fiber.Ctx) error {
	return render(c, "add_employee", nil)
}

// Add handles POST /add requests (multipart/form-data)
func (h *EmployeeHandler) Add(c *fiber.Ctx) error {
	logger := mw.GetRequestLogger(c)

	var form EmployeeForm
	if err := c.BodyParser(&form); err != nil {
		logger.Warn("Failed to parse add-employee form", zap.Error(err))
		flash.Set(c, "Invalid form data.", "danger")
		return c.Redirect("/add")
	}
	if errs := validation.ValidateStruct(&form); errs != nil {
		flash.Set(c, validation.FirstMessage(errs), "danger")
		return c.Redirect("/add")
	}

	salary, err := parseSalary(form.Salary)
	if err != nil {
		logger.Warn("Non-numeric salary in add-employee form", zap.String("emp_id", form.EmpID), zap.String("salary", form.Salary))
		flash.Set(c, "Salary must be a whole number.", "danger")
		return c.Redirect("/add")
	}

	imagePath, err := h.saveImageIfPresent(c)
	if err != nil {
		logger.Error("Failed to save uploaded image", zap.String("emp_id", form.EmpID), zap.Error(err))
		flash.Set(c, "Could not save the uploaded image.", "danger")
		return c.Redirect("/add")
	}

	emp := &models.Employee{
		EmpID:      form.EmpID,
		Name:       form.Name,
		ImagePath:  imagePath,
		Phone:      form.Phone,
		Department: form.Department,
		Salary:     salary,
		Gender:     form.Gender,
		Status:     form.Status,
	}

	if err := h.empService.Create(c.Context(), emp); err != nil {
		switch {
		case errors.Is(err, services.ErrEmployeeExists):
			flash.Set(c, "An employee with that ID already exists.", "danger")
		default:
			flash.Set(c, "Could not add employee.", "danger")
		}
		return c.Redirect("/dashboard")
	}

	flash.Set(c, "Employee added successfully.", "success")
	return c.Redirect("/dashboard")
}

// ShowEdit handles GET /edit/:emp_id requests, prefilling the form.
func (h *EmployeeHandler) ShowEdit(c *fiber.Ctx) error {
	empID := c.Params("emp_id")

	emp, err := h.empService.Get(c.Context(), empID)
	if err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			flash.Set(c, "Employee not found.", "danger")
		} else {
			flash.Set(c, "Could not load employee.", "danger")
		}
		return c.Redirect("/dashboard")
	}

	return render(c, "edit", fiber.Map{
		"Employee": emp,
	})
}

// Edit handles POST /edit/:emp_id requests (multipart/form-data).
// When no new image is uploaded the existing image path is preserved.
func (h *EmployeeHandler) Edit(c *fiber.Ctx) error {
	logger := mw.GetRequestLogger(c)
	empID := c.Params("emp_id")

	existing, err := h.empService.Get(c.Context(), empID)
	if err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			flash.Set(c, "Employee not found.", "danger")
		} else {
			flash.Set(c, "Could not load employee.", "danger")
		}
		return c.Redirect("/dashboard")
	}

	var form EmployeeForm
	if err := c.BodyParser(&form); err != nil {
		logger.Warn("Failed to parse edit-employee form", zap.String("emp_id", empID), zap.Error(err))
		flash.Set(c, "Invalid form data.", "danger")
		return c.Redirect("/edit/" + empID)
	}
	form.EmpID = empID // identifier comes from the path, not the form
	if errs := validation.ValidateStruct(&form); errs != nil {
		flash.Set(c, validation.FirstMessage(errs), "danger")
		return c.Redirect("/edit/" + empID)
	}

	salary, err := parseSalary(form.Salary)
	if err != nil {
		logger.Warn("Non-numeric salary in edit-employee form", zap.String("emp_id", empID), zap.String("salary", form.Salary))
		flash.Set(c, "Salary must be a whole number.", "danger")
		return c.Redirect("/edit/" + empID)
	}

	imagePath, err := h.saveImageIfPresent(c)
	if err != nil {
		logger.Error("Failed to save uploaded image", zap.String("emp_id", empID), zap.Error(err))
		flash.Set(c, "Could not save the uploaded image.", "danger")
		return c.Redirect("/edit/" + empID)
	}
	if imagePath == "" {
		imagePath = existing.ImagePath
	}

	emp := &models.Employee{
		EmpID:      empID,
		Name:       form.Name,
		ImagePath:  imagePath,
		Phone:      form.Phone,
		Department: form.Department,
		Salary:     salary,
		Gender:     form.Gender,
		Status:     form.Status,
	}

	if err := h.empService.Update(c.Context(), emp); err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			flash.Set(c, "Employee not found.", "danger")
		} else {
			flash.Set(c, "Could not update employee.", "danger")
		}
		return c.Redirect("/dashboard")
	}

	flash.Set(c, "Employee updated successfully.", "success")
	return c.Redirect("/dashboard")
}

// Delete handles GET /delete/:emp_id requests. Deleting a missing
// identifier is a no-op; the photo file is left in place.
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	empID := c.Params("emp_id")

	if err := h.empService.Delete(c.Context(), empID); err != nil {
		flash.Set(c, "Could not delete employee.", "danger")
		return c.Redirect("/dashboard")
	}

	flash.Set(c, "Employee deleted.", "success")
	return c.Redirect("/dashboard")
}

// ShowSalary handles GET /salary-update requests
func (h *EmployeeHandler) ShowSalary(c *fiber.Ctx) error {
	logger := mw.GetRequestLogger(c)

	refs, err := h.empService.ListRefs(c.Context())
	if err != nil {
		logger.Error("Failed to load employee list for salary form", zap.Error(err))
		flash.Set(c, "Could not load employees.", "danger")
		refs = nil
	}

	return render(c, "salary_update", fiber.Map{
		"Employees": refs,
	})
}

// UpdateSalary handles POST /salary-update requests
func (h *EmployeeHandler) UpdateSalary(c *fiber.Ctx) error {
	logger := mw.GetRequestLogger(c)

	var form SalaryForm
	if err := c.BodyParser(&form); err != nil {
		logger.Warn("Failed to parse salary form", zap.Error(err))
		flash.Set(c, "Invalid form data.", "danger")
		return c.Redirect("/salary-update")
	}
	if errs := validation.ValidateStruct(&form); errs != nil {
		flash.Set(c, validation.FirstMessage(errs), "danger")
		return c.Redirect("/salary-update")
	}

	salary, err := parseSalary(form.Salary)
	if err != nil {
		logger.Warn("Non-numeric salary in salary form", zap.String("emp_id", form.EmpID), zap.String("salary", form.Salary))
		flash.Set(c, "Salary must be a whole number.", "danger")
		return c.Redirect("/salary-update")
	}

	if err := h.empService.UpdateSalary(c.Context(), form.EmpID, salary); err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			flash.Set(c, "Employee not found.", "danger")
		} else {
			flash.Set(c, "Could not update salary.", "danger")
		}
		return c.Redirect("/dashboard")
	}

	flash.Set(c, "Salary updated successfully.", "success")
	return c.Redirect("/dashboard")
}

// saveImageIfPresent persists the uploaded image, if the request carries
// one with a non-empty filename, and returns the stored path. A missing
// file is not an error; the returned path is simply empty.
func (h *EmployeeHandler) saveImageIfPresent(c *fiber.Ctx) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		// Covers both a missing field and a non-multipart body.
		return "", nil
	}
	if file == nil || file.Filename == "" {
		return "", nil
	}

	name, err := h.fileStore.Save(file)
	if err != nil {
		if errors.Is(err, storage.ErrEmptyFilename) {
			return "", nil
		}
		return "", err
	}
	return name, nil
}

// SetupEmployeeRoutes registers the guarded employee-management routes.
func (h *EmployeeHandler) SetupEmployeeRoutes(router fiber.Router) {
	router.Get("/dashboard", h.Dashboard)
	router.Get("/add", h.ShowAdd)
	router.Post("/add", h.Add)
	router.Get("/edit/:emp_id", h.ShowEdit)
	router.Post("/edit/:emp_id", h.Edit)
	router.Get("/delete/:emp_id", h.Delete)
	router.Get("/salary-update", h.ShowSalary)
	router.Post("/salary-update", h.UpdateSalary)
}
