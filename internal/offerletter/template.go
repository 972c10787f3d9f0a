// Package offerletter renders the fixed offer letter document: an HTML legal
// template rasterized to an A4 PDF through headless Chrome.
package offerletter

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"
	"time"

	"github.com/staffdeck/hr-admin-api/internal/core/domain"
)

// DefaultSalaryDisplay is printed when neither an override nor a stored
// salary is available for the employee.
const DefaultSalaryDisplay = "₹16,000 (default)"

// LetterData carries the employee fields interpolated into the template.
type LetterData struct {
	Name          string
	Address       string
	JoiningDate   string
	SalaryDisplay string
	IssueDate     string
}

// NewLetterData assembles template data from an employee record. The salary
// display resolves in order: explicit override, stored salary, default.
func NewLetterData(e *domain.Employee, joining time.Time, override *int64) LetterData {
	display := DefaultSalaryDisplay
	switch {
	case override != nil:
		display = FormatRupees(*override)
	case e.Salary != nil:
		display = FormatRupees(*e.Salary)
	}

	address := e.Address
	if e.City != "" {
		address += ", " + e.City
	}
	if e.State != "" {
		address += ", " + e.State
	}

	return LetterData{
		Name:          e.Name,
		Address:       address,
		JoiningDate:   joining.Format("02 January 2006"),
		SalaryDisplay: display,
		IssueDate:     time.Now().Format("02 January 2006"),
	}
}

// FormatRupees renders an amount with Indian digit grouping: the last three
// digits form one group, every preceding pair another (₹12,34,567).
func FormatRupees(amount int64) string {
	s := strconv.FormatInt(amount, 10)
	if len(s) <= 3 {
		return "₹" + s
	}
	head, tail := s[:len(s)-3], s[len(s)-3:]
	var grouped string
	for len(head) > 2 {
		grouped = "," + head[len(head)-2:] + grouped
		head = head[:len(head)-2]
	}
	return "₹" + head + grouped + "," + tail
}

// Render produces the final HTML document for one letter.
func Render(d LetterData) (string, error) {
	var buf bytes.Buffer
	if err := letterTemplate.Execute(&buf, d); err != nil {
		return "", fmt.Errorf("render offer letter: %w", err)
	}
	return buf.String(), nil
}

var letterTemplate = template.Must(template.New("offer-letter").Parse(letterHTML))

const letterHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Georgia, serif; font-size: 13px; color: #1a1a1a; line-height: 1.6; }
  .letterhead { width: 100%; margin-bottom: 24px; }
  h1 { font-size: 18px; text-align: center; letter-spacing: 1px; }
  .date { text-align: right; margin-bottom: 16px; }
  .clause { margin-bottom: 12px; text-align: justify; }
  .signing { margin-top: 48px; }
  .signature { height: 56px; display: block; margin-bottom: 4px; }
</style>
</head>
<body>
  <img class="letterhead" src="data:image/png;base64,` + letterheadPNG + `" alt="Staffdeck Technologies">
  <p class="date">{{.IssueDate}}</p>
  <h1>OFFER OF EMPLOYMENT</h1>
  <p class="clause">Dear {{.Name}},</p>
  <p class="clause">We are pleased to offer you employment with Staffdeck
  Technologies Private Limited at our registered office. This letter records
  the principal terms of your engagement and supersedes all prior
  discussions, whether oral or written.</p>
  <p class="clause">1. <b>Commencement.</b> Your employment shall commence on
  <b>{{.JoiningDate}}</b>. You are requested to report to the People
  Operations desk at {{.Address}} on that date with originals of your
  identity and educational documents for verification.</p>
  <p class="clause">2. <b>Compensation.</b> Your monthly remuneration shall be
  <b>{{.SalaryDisplay}}</b>, payable in arrears on or before the seventh day
  of the following month, subject to statutory deductions including income
  tax, provident fund and professional tax as applicable.</p>
  <p class="clause">3. <b>Probation.</b> You will be on probation for a period
  of three months from the date of commencement, during which either party
  may terminate this engagement with seven days' written notice.</p>
  <p class="clause">4. <b>Confidentiality.</b> You shall not, during or after
  your employment, disclose to any person any confidential information of the
  company, its clients or its affiliates, except as required in the proper
  performance of your duties or by law.</p>
  <p class="clause">5. <b>Governing law.</b> This letter shall be governed by
  the laws of India and the courts at the company's registered office shall
  have exclusive jurisdiction.</p>
  <p class="clause">Please confirm your acceptance by signing and returning a
  copy of this letter on or before your date of joining.</p>
  <div class="signing">
    <p>Yours sincerely,</p>
    <img class="signature" src="data:image/png;base64,` + signaturePNG + `" alt="Authorised signatory">
    <p><b>Head of People Operations</b><br>Staffdeck Technologies Private Limited</p>
  </div>
</body>
</html>`

// Inline assets so the rendered document has no external fetches.
const (
	letterheadPNG = "iVBORw0KGgoAAAANSUhEUgAAAAQAAAABCAYAAAD5PA/NAAAAEklEQVR4nGJiYGBgYGBgAAQAAP//BwAFIQFQo1hXswAAAABJRU5ErkJggg=="
	signaturePNG  = "iVBORw0KGgoAAAANSUhEUgAAAAQAAAACCAYAAAB/qH1jAAAAFElEQVR4nGJiYGBgYGJgYGAABAAA//8HEAEwU10a3AAAAABJRU5ErkJggg=="
)
