package handlers

import (
	"strings"
	"unicode/utf8"

	"github.com/itc-media/cms-backend/pkg/validation"
)

// Request payloads validate themselves through the shared field-rule helpers,
// collecting every violation before the request is rejected as a whole.

type SignupRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Country     string `json:"country"`
	CountryCode string `json:"countryCode"`
	PhoneNumber string `json:"phoneNumber"`
}

func (r *SignupRequest) Validate() validation.Errors {
	var errs validation.Collector

	r.FirstName = strings.TrimSpace(r.FirstName)
	switch {
	case r.FirstName == "":
		errs.Add("firstName", "First name cannot be empty")
	case utf8.RuneCountInString(r.FirstName) > 50:
		errs.Add("firstName", "First name is too long")
	case !validation.ValidName(r.FirstName):
		errs.Add("firstName", "First name can only contain letters, spaces, hyphens, and apostrophes")
	}

	r.LastName = strings.TrimSpace(r.LastName)
	switch {
	case r.LastName == "":
		errs.Add("lastName", "Last name cannot be empty")
	case utf8.RuneCountInString(r.LastName) > 50:
		errs.Add("lastName", "Last name is too long")
	case !validation.ValidName(r.LastName):
		errs.Add("lastName", "Last name can only contain letters, spaces, hyphens, and apostrophes")
	}

	r.Email = validation.NormalizeEmail(r.Email)
	switch {
	case r.Email == "":
		errs.Add("email", "Email cannot be empty")
	case utf8.RuneCountInString(r.Email) > 255:
		errs.Add("email", "Email is too long")
	case !validation.ValidEmail(r.Email):
		errs.Add("email", "Invalid email format")
	}

	switch {
	case r.Password == "":
		errs.Add("password", "Password is required")
	case utf8.RuneCountInString(r.Password) > 128:
		errs.Add("password", "Password is too long")
	}

	r.Country = strings.TrimSpace(r.Country)
	switch {
	case r.Country == "":
		errs.Add("country", "Country cannot be empty")
	case utf8.RuneCountInString(r.Country) > 100:
		errs.Add("country", "Country name is too long")
	}

	if !validation.ValidCountryCode(r.CountryCode) {
		errs.Add("countryCode", "Country code must start with + followed by 1-4 digits")
	}

	switch {
	case utf8.RuneCountInString(r.PhoneNumber) < 6:
		errs.Add("phoneNumber", "Phone number is too short")
	case utf8.RuneCountInString(r.PhoneNumber) > 15:
		errs.Add("phoneNumber", "Phone number is too long")
	case !validation.ValidPhoneNumber(r.PhoneNumber):
		errs.Add("phoneNumber", "Phone number can only contain digits")
	}

	return errs.Errors()
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() validation.Errors {
	var errs validation.Collector

	r.Email = validation.NormalizeEmail(r.Email)
	if r.Email == "" {
		errs.Add("email", "Email cannot be empty")
	} else if !validation.ValidEmail(r.Email) {
		errs.Add("email", "Invalid email format")
	}

	if r.Password == "" {
		errs.Add("password", "Password cannot be empty")
	}

	return errs.Errors()
}

func validateTitle(errs *validation.Collector, title string) {
	if title == "" {
		errs.Add("title", "Title is required")
	} else if utf8.RuneCountInString(title) > 255 {
		errs.Add("title", "Title is too long")
	}
}

type CreateVideoRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	YoutubeURL   string `json:"youtubeUrl"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

func (r *CreateVideoRequest) Validate() validation.Errors {
	var errs validation.Collector

	validateTitle(&errs, r.Title)

	if !validation.ValidVideoURL(r.YoutubeURL) {
		errs.Add("youtubeUrl", "Must be a valid YouTube URL")
	}

	if r.ThumbnailURL != "" && !validation.ValidURL(r.ThumbnailURL) {
		errs.Add("thumbnailUrl", "Invalid URL")
	}

	return errs.Errors()
}

type UpdateVideoRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	YoutubeURL   *string `json:"youtubeUrl"`
	ThumbnailURL *string `json:"thumbnailUrl"`
}

func (r *UpdateVideoRequest) Validate() validation.Errors {
	var errs validation.Collector

	if r.Title != nil {
		validateTitle(&errs, *r.Title)
	}

	if r.YoutubeURL != nil && !validation.ValidVideoURL(*r.YoutubeURL) {
		errs.Add("youtubeUrl", "Must be a valid YouTube URL")
	}

	if r.ThumbnailURL != nil && *r.ThumbnailURL != "" && !validation.ValidURL(*r.ThumbnailURL) {
		errs.Add("thumbnailUrl", "Invalid URL")
	}

	return errs.Errors()
}

type UpdatePhotoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

func (r *UpdatePhotoRequest) Validate() validation.Errors {
	var errs validation.Collector
	if r.Title != nil {
		validateTitle(&errs, *r.Title)
	}
	return errs.Errors()
}

type UpdateRoleRequest struct {
	Role string `json:"role"`
}

func (r *UpdateRoleRequest) Validate() validation.Errors {
	var errs validation.Collector
	if r.Role != "USER" && r.Role != "ADMIN" {
		errs.Add("role", "Role must be either USER or ADMIN")
	}
	return errs.Errors()
}

type DeleteMultipleRequest struct {
	IDs []string `json:"ids"`
}

func (r *DeleteMultipleRequest) Validate() validation.Errors {
	var errs validation.Collector
	if len(r.IDs) == 0 {
		errs.Add("ids", "At least one photo id is required")
	}
	return errs.Errors()
}
