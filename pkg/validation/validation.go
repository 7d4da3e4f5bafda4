package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var (
	emailRegex       = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	nameRegex        = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)
	phoneRegex       = regexp.MustCompile(`^\d+$`)
	countryCodeRegex = regexp.MustCompile(`^\+\d{1,4}$`)
	videoHostRegex   = regexp.MustCompile(`^(https?://)?(www\.)?(youtube\.com|youtu\.be)/.+$`)
)

// FieldError is a single validation failure: the offending field path plus a
// human-readable message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) String() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Errors is the ordered list of all failures found in one request.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.String()
	}
	return strings.Join(parts, ", ")
}

// Collector accumulates field errors while a request payload is checked.
// The request is rejected as a whole if any rule fails.
type Collector struct {
	errs Errors
}

func (c *Collector) Add(field, message string) {
	c.errs = append(c.errs, FieldError{Field: field, Message: message})
}

func (c *Collector) HasErrors() bool { return len(c.errs) > 0 }

func (c *Collector) Errors() Errors { return c.errs }

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail reports whether the (normalized) email has a plausible shape.
func ValidEmail(email string) bool {
	return emailRegex.MatchString(NormalizeEmail(email))
}

// ValidName allows letters, spaces, hyphens, and apostrophes.
func ValidName(name string) bool {
	return nameRegex.MatchString(name)
}

// ValidPhoneNumber allows digits only.
func ValidPhoneNumber(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// ValidCountryCode matches "+" followed by 1-4 digits.
func ValidCountryCode(code string) bool {
	return countryCodeRegex.MatchString(code)
}

// ValidVideoURL reports whether the URL points at a known video host.
func ValidVideoURL(raw string) bool {
	return videoHostRegex.MatchString(raw)
}

// ValidURL reports whether raw parses as an absolute http(s) URL.
func ValidURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
