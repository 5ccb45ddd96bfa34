//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import "strings"

// UploadResult is the normalized file upload outcome: the server-relative
// path returned by the upload service plus the displayable URL built from
// the media host prefix.
type UploadResult struct {
	FilePath string `json:"filePath"`
	FileURL  string `json:"fileUrl"`
}

// JoinMediaURL combines the fixed media host with a server-relative file
// path. The upstream path always starts with a slash but stored values
// are not trusted to.
func JoinMediaURL(mediaHost, filePath string) string {
	host := strings.TrimSuffix(mediaHost, "/")
	if filePath == "" {
		return ""
	}
	if !strings.HasPrefix(filePath, "/") {
		filePath = "/" + filePath
	}
	return host + filePath
}
