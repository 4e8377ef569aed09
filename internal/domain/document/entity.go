package document

import "time"

// Document is metadata only; file storage itself lives outside this service.
type Document struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	FileName   string    `json:"file_name"`
	URL        string    `json:"url"`
	Category   *string   `json:"category,omitempty"`
	UploadedBy *string   `json:"uploaded_by,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
