package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/staffdeck/hr-admin-api/internal/api/metrics"
	"github.com/staffdeck/hr-admin-api/internal/core/domain"
	"github.com/staffdeck/hr-admin-api/internal/core/ports"
)

// EmployeeService implements employee record CRUD, including the identity
// document photos that live on local disk next to the database row.
type EmployeeService struct {
	repo   ports.EmployeeRepository
	photos ports.PhotoStore
	logger zerolog.Logger
}

func NewEmployeeService(repo ports.EmployeeRepository, photos ports.PhotoStore, logger zerolog.Logger) *EmployeeService {
	return &EmployeeService{repo: repo, photos: photos, logger: logger}
}

// Create registers a new employee. The password is hashed before storage and
// never echoed back. Photos saved before a failed insert are removed again so
// a rejected registration leaves no orphan files.
func (s *EmployeeService) Create(ctx context.Context, input ports.CreateEmployeeInput) (*domain.Employee, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	aadharName, err := s.photos.Save(input.AadharPhoto.Name, input.AadharPhoto.Content)
	if err != nil {
		return nil, err
	}

	var panName string
	if input.PanPhoto != nil {
		panName, err = s.photos.Save(input.PanPhoto.Name, input.PanPhoto.Content)
		if err != nil {
			s.removeQuietly(aadharName)
			return nil, err
		}
	}

	created, err := s.repo.Create(ctx, &domain.Employee{
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		Address:      input.Address,
		City:         input.City,
		State:        input.State,
		Country:      input.Country,
		DateOfBirth:  input.DateOfBirth,
		PasswordHash: string(hash),
		AadharPhoto:  aadharName,
		PanPhoto:     panName,
	})
	if err != nil {
		s.removeQuietly(aadharName)
		s.removeQuietly(panName)
		return nil, err
	}

	metrics.EmployeesCreatedTotal.Inc()
	s.logger.Info().Int64("employee_id", created.ID).Msg("employee created")
	return created, nil
}

func (s *EmployeeService) Get(ctx context.Context, id int64) (*domain.Employee, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *EmployeeService) List(ctx context.Context) ([]domain.Employee, error) {
	return s.repo.List(ctx)
}

// Update replaces the demographic fields and, when new photos are uploaded,
// swaps the files on disk. Old files are deleted only after the row update
// succeeds; a failed update keeps the previous photos referenced and intact.
func (s *EmployeeService) Update(ctx context.Context, id int64, input ports.UpdateEmployeeInput) (*domain.Employee, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *existing
	updated.Name = input.Name
	updated.Email = input.Email
	updated.Phone = input.Phone
	updated.Address = input.Address
	updated.City = input.City
	updated.State = input.State
	updated.Country = input.Country
	updated.DateOfBirth = input.DateOfBirth

	var replaced []string
	if input.AadharPhoto != nil {
		name, err := s.photos.Save(input.AadharPhoto.Name, input.AadharPhoto.Content)
		if err != nil {
			return nil, err
		}
		replaced = append(replaced, existing.AadharPhoto)
		updated.AadharPhoto = name
	}
	if input.PanPhoto != nil {
		name, err := s.photos.Save(input.PanPhoto.Name, input.PanPhoto.Content)
		if err != nil {
			return nil, err
		}
		replaced = append(replaced, existing.PanPhoto)
		updated.PanPhoto = name
	}

	if err := s.repo.Update(ctx, &updated); err != nil {
		// roll back only the files written for this request
		if input.AadharPhoto != nil {
			s.removeQuietly(updated.AadharPhoto)
		}
		if input.PanPhoto != nil {
			s.removeQuietly(updated.PanPhoto)
		}
		return nil, err
	}

	for _, old := range replaced {
		s.removeQuietly(old)
	}
	return &updated, nil
}

// Delete removes the row first, then the photo files. A missing id returns
// domain.ErrEmployeeNotFound without touching the filesystem.
func (s *EmployeeService) Delete(ctx context.Context, id int64) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.removeQuietly(existing.AadharPhoto)
	s.removeQuietly(existing.PanPhoto)
	s.logger.Info().Int64("employee_id", id).Msg("employee deleted")
	return nil
}

// removeQuietly deletes a photo file, logging rather than failing the request
// when the filesystem disagrees.
func (s *EmployeeService) removeQuietly(filename string) {
	if filename == "" {
		return
	}
	if err := s.photos.Remove(filename); err != nil {
		s.logger.Warn().Err(err).Str("file", filename).Msg("photo cleanup failed")
	}
}
