package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
)

// GalleryImage is a gallery record as the API serializes it.
type GalleryImage struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url"`
	IsActive    bool   `json:"is_active"`
	Order       int    `json:"order"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at,omitempty"`
	CreatedByID *int64 `json:"created_by_id,omitempty"`
}

// ListGalleryImages returns the first page of gallery images, optionally
// filtered by the is_active flag. It lives on the public variant so the
// gallery pages work without a session.
func (c *Public) ListGalleryImages(ctx context.Context, isActive *bool) ([]GalleryImage, error) {
	var out list[GalleryImage]
	if err := c.do(ctx, http.MethodGet, "/gallery/", boolQuery("is_active", isActive), nil, "", &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// GetGalleryImage fetches a single gallery image.
func (c *Public) GetGalleryImage(ctx context.Context, id int64) (*GalleryImage, error) {
	var out GalleryImage
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/gallery/%d/", id), nil, nil, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// NewGalleryImage is the multipart upload payload. File and Title are
// required; the scalar fields travel as form strings next to the binary.
type NewGalleryImage struct {
	Title       string
	Description string
	FileName    string
	File        io.Reader
	IsActive    *bool
	Order       *int
}

// CreateGalleryImage uploads a new image as multipart form data and returns
// the created record.
func (c *Admin) CreateGalleryImage(ctx context.Context, in NewGalleryImage) (*GalleryImage, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("image", in.FileName)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, in.File); err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if err := w.WriteField("title", in.Title); err != nil {
		return nil, err
	}
	if in.Description != "" {
		if err := w.WriteField("description", in.Description); err != nil {
			return nil, err
		}
	}
	if in.IsActive != nil {
		if err := w.WriteField("is_active", strconv.FormatBool(*in.IsActive)); err != nil {
			return nil, err
		}
	}
	if in.Order != nil {
		if err := w.WriteField("order", strconv.Itoa(*in.Order)); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	var out GalleryImage
	if err := c.do(ctx, http.MethodPost, "/gallery/", nil, &buf, w.FormDataContentType(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GalleryImageUpdate is the partial PATCH payload. The image binary cannot
// be replaced here; re-uploading means delete and create.
type GalleryImageUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
	Order       *int    `json:"order,omitempty"`
}

// UpdateGalleryImage patches the metadata of an existing image.
func (c *Admin) UpdateGalleryImage(ctx context.Context, id int64, in GalleryImageUpdate) (*GalleryImage, error) {
	var out GalleryImage
	if err := c.sendJSON(ctx, http.MethodPatch, fmt.Sprintf("/gallery/%d/", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteGalleryImage removes an image.
func (c *Admin) DeleteGalleryImage(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/gallery/%d/", id), nil, nil, "", nil)
}
