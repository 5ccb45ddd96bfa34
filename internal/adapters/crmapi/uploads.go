package crmapi

import (
	"context"
	"io"
	"mime/multipart"
	"net/url"

	"github.com/auroracrm/console/internal/apiclient"
	"github.com/auroracrm/console/internal/domain/model"
	"github.com/auroracrm/console/internal/errors"
	"github.com/auroracrm/console/internal/ports"
)

const uploadPath = "Uploadedfiles/CreateFile"

// Uploader implements ports.Uploader over the file upload service. The
// upload service lives on its own host and echoes the appId and uploader
// identity both as query parameters and form fields.
type Uploader struct {
	client *apiclient.Client
	// mediaHost is the fixed prefix combined with the returned
	// server-relative path to build a displayable URL.
	mediaHost string
	// defaultAppID identifies this application to the upload service.
	defaultAppID string
}

var _ ports.Uploader = (*Uploader)(nil)

// NewUploader constructs an Uploader.
func NewUploader(client *apiclient.Client, mediaHost, defaultAppID string) *Uploader {
	return &Uploader{client: client, mediaHost: mediaHost, defaultAppID: defaultAppID}
}

type uploadResponse struct {
	FilePath *string `json:"filePath"`
	FileName *string `json:"fileName"`
	Message  string  `json:"message"`
}

// Upload sends one file as multipart form data and returns the
// server-relative path plus the joined media URL.
func (u *Uploader) Upload(ctx context.Context, in ports.UploadInput) (*model.UploadResult, error) {
	if in.File == nil {
		return nil, errors.Validation("no file provided")
	}
	appID := in.AppID
	if appID == "" {
		appID = u.defaultAppID
	}

	params := url.Values{}
	params.Set("appId", appID)
	params.Set("uploadedBy", in.UploadedBy)
	path := uploadPath + "?" + params.Encode()

	var resp uploadResponse
	err := u.client.PostMultipart(ctx, path, func(mw *multipart.Writer) error {
		if err := mw.WriteField("appId", appID); err != nil {
			return err
		}
		if err := mw.WriteField("uploadedBy", in.UploadedBy); err != nil {
			return err
		}
		fw, err := mw.CreateFormFile("file", in.FileName)
		if err != nil {
			return err
		}
		_, err = io.Copy(fw, in.File)
		return err
	}, &resp)
	if err != nil {
		return nil, err
	}

	// A 200 without a file path is still a failure; surface the server
	// message when present.
	if resp.FilePath == nil && resp.FileName == nil {
		msg := resp.Message
		if msg == "" {
			msg = "file upload failed"
		}
		return nil, errors.Upstream(0, msg)
	}

	filePath := ""
	if resp.FilePath != nil {
		filePath = *resp.FilePath
	}
	return &model.UploadResult{
		FilePath: filePath,
		FileURL:  model.JoinMediaURL(u.mediaHost, filePath),
	}, nil
}
