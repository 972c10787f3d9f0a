package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/staffdeck/hr-admin-api/internal/core/domain"
	"github.com/staffdeck/hr-admin-api/internal/core/ports"
)

type SalaryHandler struct {
	salaries ports.SalaryService
}

func NewSalaryHandler(salaries ports.SalaryService) *SalaryHandler {
	return &SalaryHandler{salaries: salaries}
}

type markSalaryRequest struct {
	EmployeeID int64  `json:"employee_id" validate:"required"`
	Month      string `json:"month" validate:"required,datetime=2006-01"`
	Paid       *bool  `json:"paid" validate:"required"`
}

// Mark upserts the paid flag for one employee and month.
//
// @Summary      Mark salary payment
// @Tags         salary
// @Accept       json
// @Produce      json
// @Param        body  body      markSalaryRequest  true  "Salary record"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Router       /api/salary [post]
func (h *SalaryHandler) Mark(c echo.Context) error {
	var req markSalaryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.salaries.Mark(c.Request().Context(), req.EmployeeID, req.Month, *req.Paid); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "salary status recorded"})
}

// History returns an employee's salary records, newest month first. On the
// employee-scoped route non-admin callers may only request their own id.
//
// @Summary      Salary history
// @Tags         salary
// @Produce      json
// @Param        id  path  int  true  "Employee ID"
// @Success      200  {array}  domain.Salary
// @Failure      403  {object}  map[string]string
// @Router       /api/salary/history/{id} [get]
func (h *SalaryHandler) History(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	records, err := h.salaries.History(c.Request().Context(), caller, id)
	if err != nil {
		return err
	}
	if records == nil {
		records = []domain.Salary{}
	}
	return c.JSON(http.StatusOK, records)
}

// Status reports the paid flag for one month, defaulting to the current one.
//
// @Summary      Salary status for a month
// @Tags         salary
// @Produce      json
// @Param        id     path   int     true   "Employee ID"
// @Param        month  query  string  false  "Month (2006-01), defaults to current"
// @Success      200  {object}  domain.Salary
// @Failure      400  {object}  map[string]string
// @Router       /api/salary/status/{id} [get]
func (h *SalaryHandler) Status(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	month := c.QueryParam("month")
	if month == "" {
		month = time.Now().Format(domain.MonthLayout)
	} else if _, err := time.Parse(domain.MonthLayout, month); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "month must use the "+domain.MonthLayout+" layout")
	}

	status, err := h.salaries.Status(c.Request().Context(), id, month)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, status)
}
