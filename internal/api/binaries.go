package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"github.com/hoangNguyenDev3/WanderSphere/internal/models"
)

// UploadFile uploads a file through the multipart binaries endpoint and
// returns the public URL of the stored object. Used for post and profile
// images before submission.
func (c *Client) UploadFile(ctx context.Context, fileName, contentType string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, fileName))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)

	fw, err := mw.CreatePart(header)
	if err != nil {
		return "", models.NewInternalError(err)
	}
	if _, err := io.Copy(fw, r); err != nil {
		return "", models.NewInternalError(err)
	}
	if err := mw.Close(); err != nil {
		return "", models.NewInternalError(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/binaries/upload", &buf)
	if err != nil {
		return "", models.NewInternalError(err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", models.NewNetworkError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", models.NewNetworkError(err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return "", models.NewUnauthorizedError("session expired or not logged in")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errBody models.ErrorResponse
		_ = json.Unmarshal(respBody, &errBody)
		return "", models.NewAPIError(resp.StatusCode, errBody)
	}

	var upload models.UploadBinaryResponse
	if err := json.Unmarshal(respBody, &upload); err != nil {
		return "", models.NewInternalError(err)
	}
	return upload.Data.URL, nil
}

// UploadToPresignedURL PUTs raw file bytes to a presigned storage URL
// obtained from GetPresignedURL.
func (c *Client) UploadToPresignedURL(ctx context.Context, presignedURL, contentType string, r io.Reader) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, presignedURL, r)
	if err != nil {
		return models.NewInternalError(err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.NewNetworkError(err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return models.NewAPIError(resp.StatusCode, models.ErrorResponse{Error: "upload failed"})
	}
	return nil
}
