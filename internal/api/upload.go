// ABOUTME: POST /api/upload: multipart file upload returning an attachment
// ABOUTME: The returned attachment rides on the next sent message

package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/google/uuid"

	"github.com/mokom/mokom-client/internal/chat"
)

// uploadResponse is the JSON response from POST /api/upload
type uploadResponse struct {
	FileID   string `json:"file_id"`
	FileURL  string `json:"file_url"`
	FileType string `json:"file_type"`
}

// UploadFile sends the file as a multipart request and returns the
// resulting attachment. Size is taken from the caller since the reader may
// not be seekable.
func (c *Client) UploadFile(ctx context.Context, name string, size int64, r io.Reader) (*chat.Attachment, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", name)
	if err != nil {
		return nil, fmt.Errorf("creating multipart form: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("copying file contents: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finalizing multipart form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload", &body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("uploading file: %w", err)
	}
	defer resp.Body.Close()

	var upload uploadResponse
	if err := c.decode(resp, &upload); err != nil {
		return nil, fmt.Errorf("uploading file: %w", err)
	}

	id := upload.FileID
	if id == "" {
		id = uuid.New().String()
	}
	return &chat.Attachment{
		ID:   id,
		Name: name,
		Type: upload.FileType,
		URL:  upload.FileURL,
		Size: size,
	}, nil
}
