package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"coaching-roster-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// Login throttling defaults
const (
	DefaultLoginWindow     = 15 * time.Minute
	DefaultEmailAttempts   = 5
	DefaultAddressAttempts = 10

	// MaxLoginBodyBytes bounds the sign-in body read before authentication
	MaxLoginBodyBytes int64 = 1 << 16
)

// LimiterConfig configures login throttling
type LimiterConfig struct {
	Window          time.Duration
	EmailAttempts   int
	AddressAttempts int
	// Now is the clock used for token buckets and alert windows
	Now func() time.Time
}

// LoginLimiter throttles sign-in attempts per email and per client address.
// When an email goes over its limit the account owner gets one alert per window.
type LoginLimiter struct {
	window          time.Duration
	emailAttempts   int
	addressAttempts int
	now             func() time.Time

	emails    *cache.Cache
	addresses *cache.Cache
	alerts    *cache.Cache
	mailer    Mailer
}

// NewLoginLimiter creates a login limiter
func NewLoginLimiter(cfg LimiterConfig, mailer Mailer) *LoginLimiter {
	if cfg.Window <= 0 {
		cfg.Window = DefaultLoginWindow
	}
	if cfg.EmailAttempts <= 0 {
		cfg.EmailAttempts = DefaultEmailAttempts
	}
	if cfg.AddressAttempts <= 0 {
		cfg.AddressAttempts = DefaultAddressAttempts
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if mailer == nil {
		mailer = NoopMailer{}
	}

	// go-cache expiry only reclaims memory; the logical windows use cfg.Now
	gc := 2 * cfg.Window
	return &LoginLimiter{
		window:          cfg.Window,
		emailAttempts:   cfg.EmailAttempts,
		addressAttempts: cfg.AddressAttempts,
		now:             cfg.Now,
		emails:          cache.New(gc, cfg.Window),
		addresses:       cache.New(gc, cfg.Window),
		alerts:          cache.New(gc, cfg.Window),
		mailer:          mailer,
	}
}

// Verdict explains a throttling decision
type Verdict struct {
	Allowed bool
	Message string
}

// Allow records one attempt for the address and email and reports whether it may proceed
func (l *LoginLimiter) Allow(ctx context.Context, address, email string) Verdict {
	now := l.now()

	if address != "" && !l.bucket(l.addresses, address, l.addressAttempts).AllowN(now, 1) {
		return Verdict{Message: "too many login attempts from your IP, try again later"}
	}

	email = normalizeEmail(email)
	if email == "" {
		return Verdict{Allowed: true}
	}
	if !l.bucket(l.emails, email, l.emailAttempts).AllowN(now, 1) {
		l.alertOnce(ctx, email, now)
		return Verdict{Message: "too many login attempts for this account, try again later"}
	}
	return Verdict{Allowed: true}
}

// Reset forgets the attempts and alert state of an email and address after a successful login
func (l *LoginLimiter) Reset(address, email string) {
	email = normalizeEmail(email)
	if email != "" {
		l.emails.Delete(email)
		l.alerts.Delete(email)
	}
	if address != "" {
		l.addresses.Delete(address)
	}
}

// Middleware rejects throttled sign-in requests with 429
func (l *LoginLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		email, err := peekEmail(c)
		if err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large"})
				c.Abort()
				return
			}
		}
		verdict := l.Allow(c.Request.Context(), c.ClientIP(), email)
		if !verdict.Allowed {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": verdict.Message})
			c.Abort()
			return
		}
		c.Next()
	}
}

func (l *LoginLimiter) bucket(store *cache.Cache, key string, attempts int) *rate.Limiter {
	if v, ok := store.Get(key); ok {
		return v.(*rate.Limiter)
	}
	limiter := rate.NewLimiter(rate.Every(l.window/time.Duration(attempts)), attempts)
	if err := store.Add(key, limiter, cache.DefaultExpiration); err != nil {
		// lost the race to another request
		if v, ok := store.Get(key); ok {
			return v.(*rate.Limiter)
		}
	}
	return limiter
}

func (l *LoginLimiter) alertOnce(ctx context.Context, email string, now time.Time) {
	if v, ok := l.alerts.Get(email); ok {
		if until, ok := v.(time.Time); ok && now.Before(until) {
			return
		}
	}
	l.alerts.Set(email, now.Add(l.window), cache.DefaultExpiration)

	if err := l.mailer.SendSecurityAlert(ctx, email); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("email", email).Error("Failed to send security alert")
	}
}

// peekEmail reads the email from a JSON body of at most MaxLoginBodyBytes and
// restores the body for the handler. A body that is not JSON yields "".
func peekEmail(c *gin.Context) (string, error) {
	if c.Request.Body == nil {
		return "", nil
	}
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, MaxLoginBodyBytes))
	if err != nil {
		return "", err
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	var payload struct {
		Email string `json:"email"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", nil
	}
	return strings.TrimSpace(payload.Email), nil
}
