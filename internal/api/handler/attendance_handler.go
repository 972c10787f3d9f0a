package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/staffdeck/hr-admin-api/internal/core/domain"
	"github.com/staffdeck/hr-admin-api/internal/core/ports"
)

type AttendanceHandler struct {
	attendance ports.AttendanceService
}

func NewAttendanceHandler(attendance ports.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendance}
}

type markAttendanceRequest struct {
	EmployeeID int64  `json:"employee_id" validate:"required"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	Present    *bool  `json:"present" validate:"required"`
}

type attendanceEntry struct {
	EmployeeID int64  `json:"employee_id"`
	Date       string `json:"date"`
	Present    bool   `json:"present"`
}

// Mark upserts presence for one employee and day.
//
// @Summary      Mark attendance
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Param        body  body      markAttendanceRequest  true  "Attendance record"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Router       /api/attendance [post]
func (h *AttendanceHandler) Mark(c echo.Context) error {
	var req markAttendanceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	date, err := time.Parse(domain.DateLayout, req.Date)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "date must use the "+domain.DateLayout+" layout")
	}

	if err := h.attendance.Mark(c.Request().Context(), req.EmployeeID, date, *req.Present); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "attendance recorded"})
}

// History returns an employee's attendance records, newest first. On the
// employee-scoped route non-admin callers may only request their own id.
//
// @Summary      Attendance history
// @Tags         attendance
// @Produce      json
// @Param        id  path  int  true  "Employee ID"
// @Success      200  {array}  attendanceEntry
// @Failure      403  {object}  map[string]string
// @Router       /api/attendance/history/{id} [get]
func (h *AttendanceHandler) History(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	records, err := h.attendance.History(c.Request().Context(), caller, id)
	if err != nil {
		return err
	}

	out := make([]attendanceEntry, 0, len(records))
	for _, r := range records {
		out = append(out, attendanceEntry{
			EmployeeID: r.EmployeeID,
			Date:       r.Date.Format(domain.DateLayout),
			Present:    r.Present,
		})
	}
	return c.JSON(http.StatusOK, out)
}
