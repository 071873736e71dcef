package directory

import (
	"net/mail"
	"strings"
)

// FieldErrors maps form field names to validation messages.
type FieldErrors map[string]string

func (fe FieldErrors) Any() bool { return len(fe) > 0 }

type CategoryInput struct {
	Name string `json:"name"`
}

func (in CategoryInput) Validate() FieldErrors {
	errs := FieldErrors{}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		errs["name"] = "Category name is required"
	} else if len(name) > 100 {
		errs["name"] = "Category name must be at most 100 characters"
	}
	return errs
}

type AreaInput struct {
	Name string `json:"name"`
}

func (in AreaInput) Validate() FieldErrors {
	errs := FieldErrors{}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		errs["name"] = "State name is required"
	} else if len(name) > 100 {
		errs["name"] = "State name must be at most 100 characters"
	}
	return errs
}

// PersonInput is the person intake form. For service and location exactly
// one of the existing reference or the new name must be supplied; when both
// arrive the existing reference wins.
type PersonInput struct {
	Service     uint   `json:"service"`
	NewService  string `json:"new_service"`
	Location    uint   `json:"location"`
	NewLocation string `json:"new_location"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
}

func (in PersonInput) Validate() FieldErrors {
	errs := FieldErrors{}

	if in.Service == 0 && strings.TrimSpace(in.NewService) == "" {
		errs["service"] = "Must choose what service they provide or specify a new one"
	}
	if in.Location == 0 && strings.TrimSpace(in.NewLocation) == "" {
		errs["location"] = "Must choose an existing location or specify a new one"
	}

	if strings.TrimSpace(in.FirstName) == "" {
		errs["first_name"] = "First name is required"
	} else if len(in.FirstName) > 60 {
		errs["first_name"] = "First name must be at most 60 characters"
	}
	if strings.TrimSpace(in.LastName) == "" {
		errs["last_name"] = "Last name is required"
	} else if len(in.LastName) > 60 {
		errs["last_name"] = "Last name must be at most 60 characters"
	}

	if n := len(in.PhoneNumber); n < 11 || n > 14 {
		errs["phone_number"] = "phone number must be 11 - 14 characters long"
	}

	if in.Email != "" {
		if len(in.Email) > 150 {
			errs["email"] = "Email must be at most 150 characters"
		} else if _, err := mail.ParseAddress(in.Email); err != nil {
			errs["email"] = "Enter a valid email address"
		}
	}

	return errs
}

type ReviewInput struct {
	Rating  int    `json:"rating"`
	Summary string `json:"summary"`
	Text    string `json:"text"`
}

func (in ReviewInput) Validate() FieldErrors {
	errs := FieldErrors{}

	if in.Rating < 1 || in.Rating > 5 {
		errs["rating"] = "Rating must be between 1 and 5 stars"
	}
	if strings.TrimSpace(in.Summary) == "" {
		errs["summary"] = "Summary is required"
	} else if len(in.Summary) > 40 {
		errs["summary"] = "Summary must be at most 40 characters"
	}
	if len(in.Text) > 360 {
		errs["text"] = "Review text must be at most 360 characters"
	}

	return errs
}
