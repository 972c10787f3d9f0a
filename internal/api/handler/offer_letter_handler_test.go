package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/staffdeck/hr-admin-api/internal/core/domain"
	"github.com/staffdeck/hr-admin-api/internal/core/ports"
)

type stubOfferLetterService struct {
	input *ports.SendOfferLetterInput
	err   error
}

func (s *stubOfferLetterService) Send(_ context.Context, input ports.SendOfferLetterInput) (*ports.OfferLetterResult, error) {
	s.input = &input
	if s.err != nil {
		return nil, s.err
	}
	return &ports.OfferLetterResult{EmployeeID: input.EmployeeID, SentAt: time.Now().UTC()}, nil
}

func offerContext(t *testing.T, id, body string) echo.Context {
	t.Helper()
	c, _ := jsonContext(t, http.MethodPost, "/api/employees/"+id+"/send-offer-letter", body)
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c
}

func TestOfferLetterHandler_Send_MissingJoiningDate(t *testing.T) {
	h := NewOfferLetterHandler(&stubOfferLetterService{})

	for _, body := range []string{`{}`, `{"joining_date":""}`} {
		c := offerContext(t, "1", body)
		if err := h.Send(c); err != domain.ErrMissingJoiningDate {
			t.Fatalf("body %s: expected ErrMissingJoiningDate, got %v", body, err)
		}
	}
}

func TestOfferLetterHandler_Send_BadDateLayout(t *testing.T) {
	h := NewOfferLetterHandler(&stubOfferLetterService{})

	c := offerContext(t, "1", `{"joining_date":"15/09/2026"}`)
	err := h.Send(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestOfferLetterHandler_Send_ForwardsInput(t *testing.T) {
	svc := &stubOfferLetterService{}
	h := NewOfferLetterHandler(svc)

	c := offerContext(t, "4", `{"joining_date":"2026-09-15","salary":55000}`)
	if err := h.Send(c); err != nil {
		t.Fatalf("send failed: %v", err)
	}

	if svc.input == nil || svc.input.EmployeeID != 4 {
		t.Fatalf("unexpected input: %+v", svc.input)
	}
	want := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	if !svc.input.JoiningDate.Equal(want) {
		t.Fatalf("joining date mangled: %v", svc.input.JoiningDate)
	}
	if svc.input.Salary == nil || *svc.input.Salary != 55000 {
		t.Fatalf("salary not forwarded: %v", svc.input.Salary)
	}
}
