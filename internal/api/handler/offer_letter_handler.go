package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/staffdeck/hr-admin-api/internal/core/domain"
	"github.com/staffdeck/hr-admin-api/internal/core/ports"
)

type OfferLetterHandler struct {
	offers ports.OfferLetterService
}

func NewOfferLetterHandler(offers ports.OfferLetterService) *OfferLetterHandler {
	return &OfferLetterHandler{offers: offers}
}

type sendOfferLetterRequest struct {
	JoiningDate string `json:"joining_date"`
	Salary      *int64 `json:"salary,omitempty"`
}

// Send runs the offer letter pipeline for one employee: render, rasterize to
// PDF, persist joining details, email, clean up.
//
// @Summary      Send offer letter
// @Tags         offer-letter
// @Accept       json
// @Produce      json
// @Param        id    path  int                     true  "Employee ID"
// @Param        body  body  sendOfferLetterRequest  true  "Joining details"
// @Success      200   {object}  ports.OfferLetterResult
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/employees/{id}/send-offer-letter [post]
func (h *OfferLetterHandler) Send(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req sendOfferLetterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.JoiningDate == "" {
		return domain.ErrMissingJoiningDate
	}

	joining, err := time.Parse(domain.DateLayout, req.JoiningDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "joining_date must use the "+domain.DateLayout+" layout")
	}

	result, err := h.offers.Send(c.Request().Context(), ports.SendOfferLetterInput{
		EmployeeID:  id,
		JoiningDate: joining,
		Salary:      req.Salary,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}
