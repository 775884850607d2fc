package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/MonoCollector_Go/internal/logger"
	"github.com/osse101/MonoCollector_Go/internal/metrics"
)

// AuthMiddleware validates the API key shared with the frontend server
func AuthMiddleware(apiKey string, trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			providedKey := r.Header.Get(HeaderAPIKey)

			// Use constant time comparison to prevent timing attacks
			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				ip := extractIP(r, trustedProxies)
				detector.RecordFailedAuth(ip)

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"remote_addr", r.RemoteAddr,
					"path", r.URL.Path,
					"has_key", providedKey != "",
					"ip", ip)

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isPublicPath(path string) bool {
	for _, prefix := range PublicPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// ipActivity is what the detector knows about one client in its current window
type ipActivity struct {
	requests   int
	failedAuth int
}

// SuspiciousActivityDetector counts failed logins and requests per IP. Each
// IP gets a fixed window starting at its first request; the set of tracked
// IPs is bounded, least recently seen first out.
type SuspiciousActivityDetector struct {
	mu          sync.Mutex
	byIP        *expirable.LRU[string, *ipActivity]
	maxRequests int
}

// NewSuspiciousActivityDetector creates a detector with the default window and limit
func NewSuspiciousActivityDetector() *SuspiciousActivityDetector {
	return newSuspiciousActivityDetector(DetectorTrackedIPs, DetectorWindow, MaxRequestsPerWindow)
}

func newSuspiciousActivityDetector(trackedIPs int, window time.Duration, maxRequests int) *SuspiciousActivityDetector {
	return &SuspiciousActivityDetector{
		byIP:        expirable.NewLRU[string, *ipActivity](trackedIPs, nil, window),
		maxRequests: maxRequests,
	}
}

// activity returns the counters of ip, starting a new window when needed.
// Caller must hold the mutex.
func (s *SuspiciousActivityDetector) activity(ip string) *ipActivity {
	if a, ok := s.byIP.Get(ip); ok {
		return a
	}
	a := &ipActivity{}
	s.byIP.Add(ip, a)
	return a
}

// RecordFailedAuth records a failed authentication attempt
func (s *SuspiciousActivityDetector) RecordFailedAuth(ip string) {
	metrics.AuthFailures.Inc()

	s.mu.Lock()
	defer s.mu.Unlock()

	a := s.activity(ip)
	a.failedAuth++
	if a.failedAuth >= FailedAuthAlertCount {
		slog.Warn(SecurityAlertFailedAuth,
			"ip", ip,
			"count", a.failedAuth)
	}
}

// RecordRequest records a request and returns false once the IP is over the limit
func (s *SuspiciousActivityDetector) RecordRequest(ip string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := s.activity(ip)
	a.requests++
	if a.requests <= s.maxRequests {
		return true
	}

	metrics.RateLimitedRequests.Inc()
	if a.requests%HighRateLogEveryN == 0 {
		slog.Warn(SecurityAlertHighRate,
			"ip", ip,
			"count_in_window", a.requests)
	}
	return false
}

// counts reports the current window's counters of ip
func (s *SuspiciousActivityDetector) counts(ip string) (requests, failedAuth int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a, ok := s.byIP.Peek(ip); ok {
		return a.requests, a.failedAuth
	}
	return 0, 0
}

// SecurityLoggingMiddleware enforces the per-IP request limit
func SecurityLoggingMiddleware(trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !detector.RecordRequest(extractIP(r, trustedProxies)) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractIP gets the client IP address from request.
// It only trusts X-Forwarded-For if the request comes from a trusted proxy.
func extractIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	if slices.Contains(trustedProxies, remoteIP) {
		if forwarded := r.Header.Get(HeaderForwardedFor); forwarded != "" {
			// The rightmost entry is the hop that reached our trusted proxy
			ips := strings.Split(forwarded, ",")
			return strings.TrimSpace(ips[len(ips)-1])
		}
	}

	return remoteIP
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(HeaderContentType, HeaderValueNoSniff)
			w.Header().Set(HeaderFrameOptions, HeaderValueSameOrigin)
			w.Header().Set(HeaderXSSProtection, HeaderValueXSSBlock)
			w.Header().Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)

			next.ServeHTTP(w, r)
		})
	}
}
