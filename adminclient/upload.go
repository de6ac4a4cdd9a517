package adminclient

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

const (
	// MaxImageSize is the per-file limit enforced before any network call (5 MiB)
	MaxImageSize = 5 * 1024 * 1024
	// MaxGalleryBatch is the most files a single gallery upload may carry
	MaxGalleryBatch = 3

	uploadsRoot = "/uploads"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
}

// ImageFile is a pending image selection: its name, declared MIME type,
// size and content.
type ImageFile struct {
	Name string
	Type string
	Size int64
	Data io.Reader
}

// OpenImageFile prepares a local file for upload, deriving the MIME type
// from the file extension. The caller owns the returned reader's lifetime;
// Close releases it.
func OpenImageFile(path string) (*ImageFile, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, err
	}

	mimeType := ""
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		mimeType = "image/jpeg"
	case ".png":
		mimeType = "image/png"
	case ".gif":
		mimeType = "image/gif"
	}

	img := &ImageFile{
		Name: filepath.Base(path),
		Type: mimeType,
		Size: info.Size(),
		Data: f,
	}
	return img, f.Close, nil
}

// ValidateImage applies the client-side constraints: at most 5 MiB and one
// of the accepted image types. It never touches the network.
func ValidateImage(f *ImageFile) error {
	if f.Size > MaxImageSize {
		return fmt.Errorf("file size must be less than 5MB")
	}
	if !allowedImageTypes[f.Type] {
		return fmt.Errorf("only JPG, PNG and GIF files are allowed")
	}
	return nil
}

// UploadImage validates and transmits a single image and returns its
// normalized URL. Validation failures abort before any network call.
func (c *Client) UploadImage(f *ImageFile) (string, error) {
	if err := ValidateImage(f); err != nil {
		return "", err
	}

	var out struct {
		ImageURL string `json:"imageUrl"`
	}
	if err := c.uploadMultipart("/upload", "image", []*ImageFile{f}, &out); err != nil {
		return "", err
	}
	return c.NormalizeImageURL(out.ImageURL), nil
}

// UploadGallery validates and transmits up to MaxGalleryBatch images and
// returns their normalized URLs. Any violating file rejects the whole batch
// before any network call.
func (c *Client) UploadGallery(files []*ImageFile) ([]string, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("no files selected")
	}
	if len(files) > MaxGalleryBatch {
		return nil, fmt.Errorf("you can only upload up to %d images at once", MaxGalleryBatch)
	}
	for _, f := range files {
		if err := ValidateImage(f); err != nil {
			return nil, err
		}
	}

	var out struct {
		ImageURLs []string `json:"imageUrls"`
	}
	if err := c.uploadMultipart("/upload-multiple", "images", files, &out); err != nil {
		return nil, err
	}

	urls := make([]string, 0, len(out.ImageURLs))
	for _, u := range out.ImageURLs {
		urls = append(urls, c.NormalizeImageURL(u))
	}
	return urls, nil
}

// NormalizeImageURL converts a possibly-relative image reference into an
// absolute, directly renderable URL. Already-absolute references pass
// through unchanged; references under the uploads root are prefixed with
// the asset base; anything else is treated as a bare filename. The result
// is a fixed point: normalizing twice equals normalizing once.
func (c *Client) NormalizeImageURL(raw string) string {
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "http") {
		return raw
	}
	if strings.HasPrefix(raw, uploadsRoot) {
		return c.assetBase + raw
	}
	return c.assetBase + uploadsRoot + "/" + raw
}

func (c *Client) uploadMultipart(path, field string, files []*ImageFile, out interface{}) error {
	body := &strings.Builder{}
	writer := multipart.NewWriter(body)
	for _, f := range files {
		part, err := writer.CreateFormFile(field, f.Name)
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, f.Data); err != nil {
			return fmt.Errorf("failed to read %s: %w", f.Name, err)
		}
	}
	if err := writer.Close(); err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, strings.NewReader(body.String()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
