package ports

import (
	"context"
	"io"
)

// PhotoStore persists uploaded identity document photos.
type PhotoStore interface {
	// Save writes the content under a generated filename (the original name
	// only contributes its extension) and returns the stored filename.
	Save(originalName string, content io.Reader) (string, error)
	// Remove deletes a stored file. Removing a missing file is not an error.
	Remove(filename string) error
}

// PDFRenderer rasterizes an HTML document to a PDF file at outPath.
type PDFRenderer interface {
	RenderPDF(ctx context.Context, html string, outPath string) error
}

// Mailer dispatches email with an optional file attachment.
type Mailer interface {
	// Configured reports whether dispatch credentials are present. The offer
	// letter pipeline refuses to run when they are not.
	Configured() bool
	Send(ctx context.Context, to, subject, body, attachmentPath string) error
}

// SendGuard serialises offer letter dispatch per employee so that two
// concurrent requests cannot both email the same person.
type SendGuard interface {
	// Acquire returns false when a send for this employee is already running.
	Acquire(ctx context.Context, employeeID int64) (bool, error)
	Release(ctx context.Context, employeeID int64) error
}
