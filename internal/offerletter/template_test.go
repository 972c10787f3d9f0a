package offerletter

import (
	"strings"
	"testing"
	"time"

	"github.com/staffdeck/hr-admin-api/internal/core/domain"
)

func TestFormatRupees(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "₹0"},
		{999, "₹999"},
		{1000, "₹1,000"},
		{16000, "₹16,000"},
		{99999, "₹99,999"},
		{100000, "₹1,00,000"},
		{1234567, "₹12,34,567"},
		{12345678, "₹1,23,45,678"},
	}
	for _, tc := range cases {
		if got := FormatRupees(tc.amount); got != tc.want {
			t.Errorf("FormatRupees(%d) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestNewLetterData_SalaryResolution(t *testing.T) {
	stored := int64(42000)
	override := int64(55000)
	joining := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	noSalary := &domain.Employee{Name: "Asha Verma", Address: "14 MG Road"}
	if d := NewLetterData(noSalary, joining, nil); d.SalaryDisplay != DefaultSalaryDisplay {
		t.Fatalf("expected default display, got %q", d.SalaryDisplay)
	}

	withStored := &domain.Employee{Name: "Asha Verma", Salary: &stored}
	if d := NewLetterData(withStored, joining, nil); d.SalaryDisplay != "₹42,000" {
		t.Fatalf("stored salary not used: %q", d.SalaryDisplay)
	}

	// The override wins even when a stored salary exists.
	if d := NewLetterData(withStored, joining, &override); d.SalaryDisplay != "₹55,000" {
		t.Fatalf("override not applied: %q", d.SalaryDisplay)
	}
}

func TestNewLetterData_AddressAndDate(t *testing.T) {
	emp := &domain.Employee{
		Name:    "Asha Verma",
		Address: "14 MG Road",
		City:    "Pune",
		State:   "Maharashtra",
	}
	d := NewLetterData(emp, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), nil)

	if d.Address != "14 MG Road, Pune, Maharashtra" {
		t.Fatalf("unexpected address: %q", d.Address)
	}
	if d.JoiningDate != "15 September 2026" {
		t.Fatalf("unexpected joining date: %q", d.JoiningDate)
	}
}

func TestRender_InterpolatesFields(t *testing.T) {
	html, err := Render(LetterData{
		Name:          "Asha Verma",
		Address:       "14 MG Road, Pune",
		JoiningDate:   "15 September 2026",
		SalaryDisplay: "₹42,000",
		IssueDate:     "30 August 2026",
	})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	for _, want := range []string{
		"Dear Asha Verma,",
		"15 September 2026",
		"₹42,000",
		"14 MG Road, Pune",
		"OFFER OF EMPLOYMENT",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("rendered letter missing %q", want)
		}
	}
	if strings.Contains(html, "{{") {
		t.Fatalf("unexpanded template action in output")
	}
}
