package tile

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"
)

var (
	// MaxDownloadSize caps remote tile downloads. Default is 10M.
	MaxDownloadSize = 1024 * 1024 * 10

	// DownloadTimeout bounds a single tile request.
	DownloadTimeout = time.Second * 10
)

// References: https://developer.mozilla.org/en-US/docs/Web/HTTP/Basics_of_HTTP/MIME_types/Common_types
var allowedMIMETypes = []string{
	"image/jpeg",
	"image/png",
	"image/gif",
	"binary/octet-stream",
}

// fetch downloads one remote tile, serving repeats from the download
// cache.
func fetch(location string) ([]byte, error) {
	location = strings.TrimSpace(location)
	if _, err := url.ParseRequestURI(location); err != nil {
		return nil, err
	}

	if buf, err := downloads.get(location); err == nil {
		return buf, nil
	}

	client := &http.Client{Timeout: DownloadTimeout}
	resp, err := client.Get(location)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	contentType := resp.Header.Get("Content-Type")
	if !slices.Contains(allowedMIMETypes, contentType) {
		return nil, fmt.Errorf("tile: MIME type %s not allowed", contentType)
	}
	if size, _ := strconv.Atoi(resp.Header.Get("Content-Length")); size > MaxDownloadSize {
		return nil, errors.New("tile: file too large, will not download")
	}

	buf, err := io.ReadAll(io.LimitReader(resp.Body, int64(MaxDownloadSize)))
	if err != nil {
		return nil, err
	}

	if err := downloads.put(location, buf); err != nil {
		log.Printf("tile: caching %s failed: %v", location, err)
	}
	return buf, nil
}
