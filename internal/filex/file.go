// Package filex reads local files into the shapes the form works with.
package filex

import (
	"encoding/base64"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/userform/internal/common"
)

// ReadDataURI reads an image file and returns it as a base64 data URI
// ("data:image/png;base64,...").
//
// The media type is sniffed from the content first and taken from the file
// extension when sniffing is inconclusive. Anything that is not image/* is
// rejected with common.ErrNotAnImage; an empty path or file yields
// common.ErrNoImage.
func ReadDataURI(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", common.ErrNoImage
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	if len(data) == 0 {
		return "", common.ErrNoImage
	}

	mediaType := imageType(path, data)
	if mediaType == "" {
		return "", fmt.Errorf("%s: %w", filepath.Base(path), common.ErrNotAnImage)
	}

	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

func imageType(path string, data []byte) string {
	if t := baseType(http.DetectContentType(data)); strings.HasPrefix(t, "image/") {
		return t
	}
	if t := baseType(mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))); strings.HasPrefix(t, "image/") {
		return t
	}
	return ""
}

func baseType(contentType string) string {
	t, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return t
}

// DataURIMediaType returns the media type of a data URI, or "" when s is not
// one.
func DataURIMediaType(s string) string {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return ""
	}
	header, _, ok := strings.Cut(rest, ",")
	if !ok {
		return ""
	}
	mediaType, _, _ := strings.Cut(header, ";")
	return mediaType
}
