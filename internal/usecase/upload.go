package usecase

import "io"

// FileUpload is one file received through a multipart form, streamed to object
// storage without buffering the whole payload.
type FileUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}
