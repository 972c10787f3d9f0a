package service

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/staffdeck/hr-admin-api/internal/api/metrics"
	"github.com/staffdeck/hr-admin-api/internal/core/domain"
	"github.com/staffdeck/hr-admin-api/internal/core/ports"
	"github.com/staffdeck/hr-admin-api/internal/offerletter"
)

const (
	offerMailSubject = "Offer of Employment - Staffdeck Technologies"
	offerMailBody    = "Dear candidate,\n\n" +
		"Please find attached your offer letter from Staffdeck Technologies " +
		"Private Limited. Kindly review the terms and confirm your acceptance " +
		"by signing and returning a copy on or before your date of joining.\n\n" +
		"Regards,\nPeople Operations"
)

// OfferLetterService runs the offer letter pipeline: render the legal
// template, rasterize it to PDF, persist the joining details, email the
// letter, and clean up the scratch file.
//
// The persist step runs before dispatch and is compensated (prior values
// restored) when dispatch fails, so the row never claims a joining date for
// a letter that was not sent.
type OfferLetterService struct {
	employees ports.EmployeeRepository
	renderer  ports.PDFRenderer
	mailer    ports.Mailer
	guard     ports.SendGuard
	logger    zerolog.Logger
	tmpDir    string
}

func NewOfferLetterService(
	employees ports.EmployeeRepository,
	renderer ports.PDFRenderer,
	mailer ports.Mailer,
	guard ports.SendGuard,
	logger zerolog.Logger,
) *OfferLetterService {
	return &OfferLetterService{
		employees: employees,
		renderer:  renderer,
		mailer:    mailer,
		guard:     guard,
		logger:    logger,
		tmpDir:    os.TempDir(),
	}
}

func (s *OfferLetterService) Send(ctx context.Context, input ports.SendOfferLetterInput) (*ports.OfferLetterResult, error) {
	start := time.Now()

	// Validate before any side effect: a rejected request must leave no
	// email, no DB write and no scratch PDF behind.
	if input.JoiningDate.IsZero() {
		return nil, domain.ErrMissingJoiningDate
	}
	if !s.mailer.Configured() {
		return nil, domain.ErrMailNotConfigured
	}

	ok, err := s.guard.Acquire(ctx, input.EmployeeID)
	if err != nil {
		return nil, s.fail("guard", err)
	}
	if !ok {
		return nil, domain.ErrSendInProgress
	}
	defer func() {
		if err := s.guard.Release(ctx, input.EmployeeID); err != nil {
			s.logger.Warn().Err(err).Int64("employee_id", input.EmployeeID).Msg("send guard release failed")
		}
	}()

	emp, err := s.employees.FindByID(ctx, input.EmployeeID)
	if err != nil {
		return nil, err
	}

	html, err := offerletter.Render(offerletter.NewLetterData(emp, input.JoiningDate, input.Salary))
	if err != nil {
		return nil, s.fail("render", err)
	}

	pdfPath := offerletter.PDFPath(s.tmpDir, emp.ID)
	defer os.Remove(pdfPath)

	if err := s.renderer.RenderPDF(ctx, html, pdfPath); err != nil {
		return nil, s.fail("rasterize", err)
	}

	// Persist, remembering prior values for the compensating step.
	prevJoining, prevSalary := emp.DateOfJoining, emp.Salary
	salary := input.Salary
	if salary == nil {
		salary = emp.Salary
	}
	joining := input.JoiningDate
	if err := s.employees.SetJoiningDetails(ctx, emp.ID, &joining, salary); err != nil {
		return nil, s.fail("persist", err)
	}

	if err := s.mailer.Send(ctx, emp.Email, offerMailSubject, offerMailBody, pdfPath); err != nil {
		if rbErr := s.employees.SetJoiningDetails(ctx, emp.ID, prevJoining, prevSalary); rbErr != nil {
			s.logger.Error().Err(rbErr).Int64("employee_id", emp.ID).Msg("compensating update failed; joining details left persisted")
		}
		return nil, s.fail("dispatch", err)
	}

	metrics.OfferLettersSentTotal.Inc()
	metrics.OfferLetterDuration.Observe(time.Since(start).Seconds())
	s.logger.Info().Int64("employee_id", emp.ID).Str("email", emp.Email).Msg("offer letter sent")

	return &ports.OfferLetterResult{
		EmployeeID: emp.ID,
		Email:      emp.Email,
		SentAt:     time.Now().UTC(),
	}, nil
}

// fail counts the failed stage and passes the error through unchanged.
func (s *OfferLetterService) fail(stage string, err error) error {
	metrics.OfferLetterFailuresTotal.WithLabelValues(stage).Inc()
	s.logger.Error().Err(err).Str("stage", stage).Msg("offer letter pipeline failed")
	return err
}
