package middleware

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"coaching-roster-backend/internal/cdn"
	apperrors "coaching-roster-backend/internal/errors"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// UploadedFileKey is the gin context key of the validated *cdn.File
const UploadedFileKey = "uploaded_file"

// Upload limits
const (
	DefaultMaxUploadBytes   int64 = 5 * 1024 * 1024
	MaxImageDimension             = 5000
	DefaultUploadsPerMinute       = 5
	multipartOverhead       int64 = 1 << 20
)

var allowedImageTypes = map[string][]string{
	"image/jpeg": {".jpg", ".jpeg"},
	"image/png":  {".png"},
	"image/webp": {".webp"},
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// UploadLimiter throttles image uploads per client address
type UploadLimiter struct {
	perMinute int
	buckets   *cache.Cache
	now       func() time.Time
}

// NewUploadLimiter creates an upload limiter; now may be nil
func NewUploadLimiter(perMinute int, now func() time.Time) *UploadLimiter {
	if perMinute <= 0 {
		perMinute = DefaultUploadsPerMinute
	}
	if now == nil {
		now = time.Now
	}
	return &UploadLimiter{
		perMinute: perMinute,
		buckets:   cache.New(5*time.Minute, time.Minute),
		now:       now,
	}
}

// Allow records one upload for address
func (l *UploadLimiter) Allow(address string) bool {
	var limiter *rate.Limiter
	if v, ok := l.buckets.Get(address); ok {
		limiter = v.(*rate.Limiter)
	} else {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(l.perMinute)), l.perMinute)
		if err := l.buckets.Add(address, limiter, cache.DefaultExpiration); err != nil {
			if v, ok := l.buckets.Get(address); ok {
				limiter = v.(*rate.Limiter)
			}
		}
	}
	return limiter.AllowN(l.now(), 1)
}

// UploadOptions configures ImageUpload
type UploadOptions struct {
	Field    string
	Required bool
	MaxBytes int64
	Limiter  *UploadLimiter
}

// ImageUpload validates a single image in a multipart form field and stores it
// in the context under UploadedFileKey. Requests without a multipart body pass
// through unless the file is required.
func ImageUpload(opts UploadOptions) gin.HandlerFunc {
	if opts.MaxBytes <= 0 {
		opts.MaxBytes = DefaultMaxUploadBytes
	}

	return func(c *gin.Context) {
		if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
			if opts.Required {
				abortUpload(c, http.StatusBadRequest, "multipart/form-data with field '"+opts.Field+"' is required")
				return
			}
			c.Next()
			return
		}

		if opts.Limiter != nil && !opts.Limiter.Allow(c.ClientIP()) {
			abortUpload(c, http.StatusTooManyRequests, "too many uploads, try again in a minute")
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, opts.MaxBytes+multipartOverhead)
		if err := c.Request.ParseMultipartForm(opts.MaxBytes + multipartOverhead); err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				abortUpload(c, http.StatusRequestEntityTooLarge, (&apperrors.PayloadTooLargeError{LimitBytes: opts.MaxBytes, ActualBytes: c.Request.ContentLength}).Error())
				return
			}
			abortUpload(c, http.StatusBadRequest, "invalid multipart form: "+err.Error())
			return
		}

		headers := c.Request.MultipartForm.File[opts.Field]
		if len(headers) == 0 {
			if opts.Required {
				abortUpload(c, http.StatusBadRequest, "no file uploaded in field '"+opts.Field+"'")
				return
			}
			c.Next()
			return
		}
		if len(headers) > 1 {
			abortUpload(c, http.StatusBadRequest, "only one file is allowed")
			return
		}
		for field := range c.Request.MultipartForm.File {
			if field != opts.Field {
				abortUpload(c, http.StatusBadRequest, "unexpected file field '"+field+"'")
				return
			}
		}

		header := headers[0]
		if header.Size > opts.MaxBytes {
			abortUpload(c, http.StatusRequestEntityTooLarge, (&apperrors.PayloadTooLargeError{LimitBytes: opts.MaxBytes, ActualBytes: header.Size}).Error())
			return
		}

		f, err := header.Open()
		if err != nil {
			abortUpload(c, http.StatusBadRequest, "failed to read uploaded file")
			return
		}
		data, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			abortUpload(c, http.StatusBadRequest, "failed to read uploaded file")
			return
		}

		file, err := inspectImage(header.Filename, header.Header.Get("Content-Type"), data)
		if err != nil {
			abortUpload(c, http.StatusBadRequest, err.Error())
			return
		}

		c.Set(UploadedFileKey, file)
		c.Next()
	}
}

// GetUploadedFile returns the validated upload, or nil when none was sent
func GetUploadedFile(c *gin.Context) *cdn.File {
	v, ok := c.Get(UploadedFileKey)
	if !ok {
		return nil
	}
	file, _ := v.(*cdn.File)
	return file
}

// inspectImage checks declared type, sniffed type, extension and dimensions
func inspectImage(filename, declared string, data []byte) (*cdn.File, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("uploaded file is empty")
	}

	declared = strings.ToLower(strings.TrimSpace(strings.Split(declared, ";")[0]))
	if _, ok := allowedImageTypes[declared]; !ok {
		return nil, fmt.Errorf("unsupported file type %q, allowed: jpeg, png, webp", declared)
	}

	detected := mimetype.Detect(data)
	if !detected.Is(declared) {
		return nil, fmt.Errorf("file content does not match declared type %s", declared)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !extensionAllowed(declared, ext) {
		return nil, fmt.Errorf("file extension %q does not match type %s", ext, declared)
	}

	if declared != "image/webp" {
		cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("invalid image: %v", err)
		}
		if cfg.Width > MaxImageDimension || cfg.Height > MaxImageDimension {
			return nil, fmt.Errorf("image is too large: %dx%d, maximum is %dx%d", cfg.Width, cfg.Height, MaxImageDimension, MaxImageDimension)
		}
	}

	return &cdn.File{
		Filename:    sanitizeFilename(filename),
		ContentType: declared,
		Data:        data,
	}, nil
}

func extensionAllowed(contentType, ext string) bool {
	for _, allowed := range allowedImageTypes[contentType] {
		if ext == allowed {
			return true
		}
	}
	return false
}

func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	name = strings.TrimLeft(name, ".")
	if len(name) > 100 {
		ext := filepath.Ext(name)
		name = name[:100-len(ext)] + ext
	}
	if name == "" {
		name = "upload"
	}
	return name
}

func abortUpload(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}
