package httpx

import (
	"bytes"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
)

// KeyExtractor picks the bucket a request is counted against. An empty key
// means the request cannot be attributed.
type KeyExtractor func(*http.Request) string

// IPKeyExtractor returns the client address, preferring the first
// X-Forwarded-For hop, then X-Real-IP, then the connection's address.
func IPKeyExtractor(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// AdminIDKeyExtractor returns the signed-in admin's id, or "" when anonymous.
func AdminIDKeyExtractor(r *http.Request) string {
	id, ok := AdminIDFromContext(r.Context())
	if !ok {
		return ""
	}
	return strconv.FormatInt(id, 10)
}

// CompositeKeyExtractor joins the non-empty keys of extractors with sep.
func CompositeKeyExtractor(sep string, extractors ...KeyExtractor) KeyExtractor {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(extractors))
		for _, extract := range extractors {
			if k := extract(r); k != "" {
				parts = append(parts, k)
			}
		}
		return strings.Join(parts, sep)
	}
}

// FormFieldKeyExtractor reads a query string or form body field.
func FormFieldKeyExtractor(fieldName string) KeyExtractor {
	return func(r *http.Request) string {
		if err := r.ParseForm(); err != nil {
			return ""
		}
		return strings.TrimSpace(r.FormValue(fieldName))
	}
}

// maxKeyBodyBytes bounds how much of a body JSONFieldKeyExtractor buffers.
const maxKeyBodyBytes = 1 << 20

// JSONFieldKeyExtractor reads a top-level string or number field of a JSON
// body and puts the body back for the handler. {"employee_id": 7} and
// {"employee_id": "7"} yield the same key.
func JSONFieldKeyExtractor(fieldName string) KeyExtractor {
	return func(r *http.Request) string {
		if r.Body == nil {
			return ""
		}
		raw, err := io.ReadAll(io.LimitReader(r.Body, maxKeyBodyBytes))
		_ = r.Body.Close()
		r.Body = io.NopCloser(bytes.NewReader(raw))
		if err != nil {
			return ""
		}

		var fields map[string]json.RawMessage
		if json.Unmarshal(raw, &fields) != nil {
			return ""
		}
		value, ok := fields[fieldName]
		if !ok {
			return ""
		}

		var s string
		if json.Unmarshal(value, &s) == nil {
			return strings.TrimSpace(s)
		}
		var n json.Number
		if json.Unmarshal(value, &n) == nil {
			return n.String()
		}
		return ""
	}
}
