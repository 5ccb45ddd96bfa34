package config

import "strings"

// APIConfig contains the upstream CRM service endpoints. The complaint
// API, the comment service, and the file upload service live on separate
// hosts; the media host is the public prefix for uploaded files.
type APIConfig struct {
	// CRMBaseURL is the complaint/customer/configuration API.
	CRMBaseURL string `env:"CRM_API_BASE_URL" envDefault:"https://api.auroracrm.example.com/api"`

	// CommentBaseURL is the internal ticket comment service.
	CommentBaseURL string `env:"COMMENT_API_BASE_URL" envDefault:"https://comments.auroracrm.example.com/api"`

	// UploadBaseURL is the file upload service.
	UploadBaseURL string `env:"UPLOAD_API_BASE_URL" envDefault:"https://uploads.auroracrm.example.com"`

	// MediaHost prefixes server-relative upload paths to build
	// displayable URLs.
	MediaHost string `env:"MEDIA_HOST" envDefault:"https://media.auroracrm.example.com"`

	// UploadAppID identifies this application to the upload service.
	UploadAppID string `env:"UPLOAD_APP_ID" envDefault:"57d3cab9-013c-4bfe-5c36-08ddaf854fd3"`
}

// Sanitize trims trailing slashes so URL joining stays uniform.
func (a *APIConfig) Sanitize() {
	a.CRMBaseURL = strings.TrimSuffix(a.CRMBaseURL, "/")
	a.CommentBaseURL = strings.TrimSuffix(a.CommentBaseURL, "/")
	a.UploadBaseURL = strings.TrimSuffix(a.UploadBaseURL, "/")
	a.MediaHost = strings.TrimSuffix(a.MediaHost, "/")
}
