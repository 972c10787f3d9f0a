package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/staffdeck/hr-admin-api/internal/core/domain"
	"github.com/staffdeck/hr-admin-api/internal/core/ports"
)

// stubPhotoStore records saves and removals without touching disk.
type stubPhotoStore struct {
	saved   []string
	removed []string
	nextID  int
}

func (s *stubPhotoStore) Save(originalName string, content io.Reader) (string, error) {
	_, _ = io.Copy(io.Discard, content)
	s.nextID++
	name := fmt.Sprintf("stored-%d%s", s.nextID, filepath.Ext(originalName))
	s.saved = append(s.saved, name)
	return name, nil
}

func (s *stubPhotoStore) Remove(filename string) error {
	s.removed = append(s.removed, filename)
	return nil
}

func createInput() ports.CreateEmployeeInput {
	return ports.CreateEmployeeInput{
		Name:        "Asha Verma",
		Email:       "asha@example.com",
		Phone:       "9876543210",
		Address:     "14 MG Road",
		City:        "Pune",
		State:       "Maharashtra",
		Country:     "India",
		DateOfBirth: time.Date(1995, 4, 12, 0, 0, 0, 0, time.UTC),
		Password:    "s3cret",
		AadharPhoto: &ports.FileUpload{Name: "aadhar.jpg", Content: strings.NewReader("jpg-bytes")},
	}
}

func TestEmployeeService_Create_HashesPassword(t *testing.T) {
	repo := newStubEmployeeRepo()
	photos := &stubPhotoStore{}
	svc := NewEmployeeService(repo, photos, zerolog.Nop())

	created, err := svc.Create(context.Background(), createInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.PasswordHash == "s3cret" {
		t.Fatalf("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("s3cret")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if created.AadharPhoto == "" {
		t.Fatalf("expected aadhar photo filename on record")
	}
	if len(photos.saved) != 1 {
		t.Fatalf("expected 1 saved photo, got %d", len(photos.saved))
	}
}

func TestEmployeeService_Create_DuplicateEmail(t *testing.T) {
	repo := newStubEmployeeRepo()
	photos := &stubPhotoStore{}
	svc := NewEmployeeService(repo, photos, zerolog.Nop())

	if _, err := svc.Create(context.Background(), createInput()); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	input := createInput()
	input.Name = "Someone Else"
	if _, err := svc.Create(context.Background(), input); err != domain.ErrEmailExists {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}

	// The rejected registration's photo must not be left orphaned.
	if len(photos.removed) != 1 {
		t.Fatalf("expected 1 removed photo after rejection, got %d", len(photos.removed))
	}
	// The existing row is untouched.
	existing, err := repo.FindByEmail(context.Background(), "asha@example.com")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if existing.Name != "Asha Verma" {
		t.Fatalf("existing row altered: %+v", existing)
	}
}

func TestEmployeeService_Update_ReplacesPhotoAfterWrite(t *testing.T) {
	repo := newStubEmployeeRepo()
	photos := &stubPhotoStore{}
	svc := NewEmployeeService(repo, photos, zerolog.Nop())

	created, err := svc.Create(context.Background(), createInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	oldPhoto := created.AadharPhoto

	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateEmployeeInput{
		Name:        created.Name,
		Email:       created.Email,
		Phone:       created.Phone,
		Address:     "22 FC Road",
		City:        created.City,
		State:       created.State,
		Country:     created.Country,
		DateOfBirth: created.DateOfBirth,
		AadharPhoto: &ports.FileUpload{Name: "new.jpg", Content: strings.NewReader("new-bytes")},
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.AadharPhoto == oldPhoto {
		t.Fatalf("photo not replaced")
	}
	if len(photos.removed) != 1 || photos.removed[0] != oldPhoto {
		t.Fatalf("expected old photo %q removed, got %v", oldPhoto, photos.removed)
	}
	if updated.Address != "22 FC Road" {
		t.Fatalf("address not updated: %+v", updated)
	}
}

func TestEmployeeService_Delete_RemovesRowAndPhotos(t *testing.T) {
	repo := newStubEmployeeRepo()
	photos := &stubPhotoStore{}
	svc := NewEmployeeService(repo, photos, zerolog.Nop())

	input := createInput()
	input.PanPhoto = &ports.FileUpload{Name: "pan.png", Content: strings.NewReader("png-bytes")}
	created, err := svc.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), created.ID); err != domain.ErrEmployeeNotFound {
		t.Fatalf("row still present: %v", err)
	}
	if len(photos.removed) != 2 {
		t.Fatalf("expected both photos removed, got %v", photos.removed)
	}
}

func TestEmployeeService_Delete_MissingIDTouchesNothing(t *testing.T) {
	repo := newStubEmployeeRepo()
	photos := &stubPhotoStore{}
	svc := NewEmployeeService(repo, photos, zerolog.Nop())

	if err := svc.Delete(context.Background(), 42); err != domain.ErrEmployeeNotFound {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
	if len(photos.removed) != 0 {
		t.Fatalf("filesystem touched for missing id: %v", photos.removed)
	}
}
