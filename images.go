package dcv

import (
	"encoding/base64"
	"html"
	"mime"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// imgSrcPattern captures the src attribute of img tags in rendered HTML.
var imgSrcPattern = regexp.MustCompile(`(<img\b[^>]*?\ssrc=")([^"]*)(")`)

// mimeFallback covers common image types when the platform MIME database
// has no entry for the extension.
var mimeFallback = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".svg":  "image/svg+xml",
	".webp": "image/webp",
}

// embedImages inlines local img sources as base64 data URLs. The rendered
// page loads from a temp file, so a path relative to the source Markdown
// would otherwise resolve against the temp directory and break. Remote
// URLs, data URLs, and unreadable files are left untouched.
func embedImages(body, baseDir string) string {
	return imgSrcPattern.ReplaceAllStringFunc(body, func(tag string) string {
		m := imgSrcPattern.FindStringSubmatch(tag)
		dataURL, ok := imageDataURL(html.UnescapeString(m[2]), baseDir)
		if !ok {
			return tag
		}
		return m[1] + dataURL + m[3]
	})
}

// imageDataURL reads a local image and encodes it as a data URL. Relative
// paths resolve against baseDir; absolute paths are used as given.
func imageDataURL(src, baseDir string) (string, bool) {
	if src == "" || strings.HasPrefix(src, "data:") ||
		strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") ||
		strings.HasPrefix(src, "//") {
		return "", false
	}

	path := src
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, src)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- image referenced by the user's document
	if err != nil {
		return "", false
	}

	ext := strings.ToLower(filepath.Ext(path))
	mimeType := mime.TypeByExtension(ext)
	if mimeType == "" {
		mimeType = mimeFallback[ext]
	}
	if mimeType == "" {
		mimeType = "image/png"
	}

	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data), true
}
