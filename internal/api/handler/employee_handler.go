package handler

import (
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/staffdeck/hr-admin-api/internal/core/domain"
	"github.com/staffdeck/hr-admin-api/internal/core/ports"
)

type EmployeeHandler struct {
	employees ports.EmployeeService
}

func NewEmployeeHandler(employees ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employees: employees}
}

// demographicFields are the multipart form values required by both create
// and update, in the order they are reported when missing.
var demographicFields = []string{"name", "email", "phone", "address", "city", "state", "country", "dob"}

// Create registers a new employee from a multipart form. Every missing
// required field is named in the 400 response, not just the first one.
//
// @Summary      Create employee
// @Tags         employees
// @Accept       multipart/form-data
// @Produce      json
// @Success      201  {object}  employeeResponse
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	values, missing := formValues(c, demographicFields)
	if c.FormValue("password") == "" {
		missing = append(missing, "password")
	}

	aadhar, err := c.FormFile("aadharPhoto")
	if err != nil {
		missing = append(missing, "aadharPhoto")
	}
	if len(missing) > 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "missing required fields: "+strings.Join(missing, ", "))
	}

	dob, err := time.Parse(domain.DateLayout, values["dob"])
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "dob must use the "+domain.DateLayout+" layout")
	}

	input := ports.CreateEmployeeInput{
		Name:        values["name"],
		Email:       values["email"],
		Phone:       values["phone"],
		Address:     values["address"],
		City:        values["city"],
		State:       values["state"],
		Country:     values["country"],
		DateOfBirth: dob,
		Password:    c.FormValue("password"),
	}

	aadharUpload, closeAadhar, err := openUpload(aadhar)
	if err != nil {
		return err
	}
	defer closeAadhar()
	input.AadharPhoto = aadharUpload

	if pan, err := c.FormFile("panPhoto"); err == nil {
		panUpload, closePan, err := openUpload(pan)
		if err != nil {
			return err
		}
		defer closePan()
		input.PanPhoto = panUpload
	}

	created, err := h.employees.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, newEmployeeResponse(created))
}

// Update replaces the demographic fields of an employee; photo uploads are
// optional.
//
// @Summary      Update employee
// @Tags         employees
// @Accept       multipart/form-data
// @Produce      json
// @Param        id  path  int  true  "Employee ID"
// @Success      200  {object}  employeeResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/employees/{id} [put]
func (h *EmployeeHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	values, missing := formValues(c, demographicFields)
	if len(missing) > 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "missing required fields: "+strings.Join(missing, ", "))
	}

	dob, err := time.Parse(domain.DateLayout, values["dob"])
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "dob must use the "+domain.DateLayout+" layout")
	}

	input := ports.UpdateEmployeeInput{
		Name:        values["name"],
		Email:       values["email"],
		Phone:       values["phone"],
		Address:     values["address"],
		City:        values["city"],
		State:       values["state"],
		Country:     values["country"],
		DateOfBirth: dob,
	}

	if aadhar, err := c.FormFile("aadharPhoto"); err == nil {
		upload, closeFn, err := openUpload(aadhar)
		if err != nil {
			return err
		}
		defer closeFn()
		input.AadharPhoto = upload
	}
	if pan, err := c.FormFile("panPhoto"); err == nil {
		upload, closeFn, err := openUpload(pan)
		if err != nil {
			return err
		}
		defer closeFn()
		input.PanPhoto = upload
	}

	updated, err := h.employees.Update(c.Request().Context(), id, input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newEmployeeResponse(updated))
}

// Delete removes an employee row and its photo files.
//
// @Summary      Delete employee
// @Tags         employees
// @Param        id  path  int  true  "Employee ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/employees/{id} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.employees.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "employee deleted"})
}

// List returns the short projection of all employees.
//
// @Summary      List employees
// @Tags         employees
// @Produce      json
// @Success      200  {array}  employeeSummary
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	employees, err := h.employees.List(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]employeeSummary, 0, len(employees))
	for i := range employees {
		out = append(out, newEmployeeSummary(&employees[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// ListFull returns all stored fields for every employee.
//
// @Summary      List employees with all fields
// @Tags         employees
// @Produce      json
// @Success      200  {array}  employeeResponse
// @Router       /api/employees/full [get]
func (h *EmployeeHandler) ListFull(c echo.Context) error {
	employees, err := h.employees.List(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]employeeResponse, 0, len(employees))
	for i := range employees {
		out = append(out, newEmployeeResponse(&employees[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// ListDirectory returns the demographic projection (no photos).
//
// @Summary      List employee directory data
// @Tags         employees
// @Produce      json
// @Success      200  {array}  employeeDirectoryEntry
// @Router       /api/employeesdata [get]
func (h *EmployeeHandler) ListDirectory(c echo.Context) error {
	employees, err := h.employees.List(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]employeeDirectoryEntry, 0, len(employees))
	for i := range employees {
		out = append(out, newEmployeeDirectoryEntry(&employees[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// Profile returns the authenticated employee's own record.
//
// @Summary      Own profile
// @Tags         employees
// @Produce      json
// @Success      200  {object}  employeeResponse
// @Router       /employee/api/profile [get]
func (h *EmployeeHandler) Profile(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	emp, err := h.employees.Get(c.Request().Context(), caller.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newEmployeeResponse(emp))
}

// formValues collects the named form fields, reporting which are absent.
func formValues(c echo.Context, fields []string) (map[string]string, []string) {
	values := make(map[string]string, len(fields))
	var missing []string
	for _, f := range fields {
		v := strings.TrimSpace(c.FormValue(f))
		if v == "" {
			missing = append(missing, f)
			continue
		}
		values[f] = v
	}
	return values, missing
}

// openUpload opens a multipart file header as a service-layer upload.
func openUpload(fh *multipart.FileHeader) (*ports.FileUpload, func(), error) {
	f, err := fh.Open()
	if err != nil {
		return nil, nil, echo.NewHTTPError(http.StatusBadRequest, "could not read uploaded file")
	}
	return &ports.FileUpload{Name: fh.Filename, Content: f}, func() { _ = f.Close() }, nil
}

// parseID reads the :id route parameter.
func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid employee id")
	}
	return id, nil
}
