package models

import "io"

// UploadedFile is a file received in a multipart request.
type UploadedFile struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}
