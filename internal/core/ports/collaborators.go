package ports

import (
	"context"
	"io"
)

// UploadFile is a single validated file taken from a multipart request.
type UploadFile struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// StoredObject locates an uploaded file: URL is public, Key is the
// bucket-relative object name.
type StoredObject struct {
	URL string
	Key string
}

// ObjectStorage persists uploaded media under a folder prefix.
type ObjectStorage interface {
	Upload(ctx context.Context, folder string, file *UploadFile) (StoredObject, error)
}

// VerificationEmail is the content of a one-time-code message.
type VerificationEmail struct {
	To       string
	FullName string
	Code     string
}

type Mailer interface {
	SendVerificationCode(ctx context.Context, msg VerificationEmail) error
}

// VerificationCodeStore keeps the pending e-mail verification code per
// user name. Get returns "" when no code is pending or it has expired.
type VerificationCodeStore interface {
	Save(ctx context.Context, userName, code string) error
	Get(ctx context.Context, userName string) (string, error)
}

// PasswordHasher hashes and compares passwords. Both calls may block on a
// bounded worker pool and honour ctx cancellation.
type PasswordHasher interface {
	Hash(ctx context.Context, password string) (string, error)
	Compare(ctx context.Context, hash, password string) (bool, error)
}
