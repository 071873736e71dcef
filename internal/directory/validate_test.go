package directory_test

import (
	"strings"
	"testing"

	"github.com/honestng/honest-backend/internal/directory"
)

func validPersonInput() directory.PersonInput {
	return directory.PersonInput{
		NewService:  "Clown",
		NewLocation: "Disneyland",
		FirstName:   "Psycho",
		LastName:    "Bob",
		PhoneNumber: "012345678912",
		Email:       "psychobob@yahoo.com",
	}
}

// TestPersonInput_Valid verifies a fully populated intake passes.
func TestPersonInput_Valid(t *testing.T) {
	if errs := validPersonInput().Validate(); errs.Any() {
		t.Errorf("expected no errors, got %v", errs)
	}
}

// TestPersonInput_MissingService verifies that supplying neither an existing
// service nor a new one fails with a service-specific error.
func TestPersonInput_MissingService(t *testing.T) {
	in := validPersonInput()
	in.Service = 0
	in.NewService = ""

	errs := in.Validate()
	if _, ok := errs["service"]; !ok {
		t.Errorf("expected a service error, got %v", errs)
	}
	if _, ok := errs["location"]; ok {
		t.Errorf("location was supplied, should not error: %v", errs)
	}
}

// TestPersonInput_MissingLocation is the location counterpart.
func TestPersonInput_MissingLocation(t *testing.T) {
	in := validPersonInput()
	in.Location = 0
	in.NewLocation = "   "

	errs := in.Validate()
	if _, ok := errs["location"]; !ok {
		t.Errorf("expected a location error, got %v", errs)
	}
}

// TestPersonInput_ExistingReferenceSuffices verifies an existing id satisfies
// the exactly-one-of rule without a new name.
func TestPersonInput_ExistingReferenceSuffices(t *testing.T) {
	in := validPersonInput()
	in.Service = 7
	in.NewService = ""
	in.Location = 3
	in.NewLocation = ""

	if errs := in.Validate(); errs.Any() {
		t.Errorf("expected no errors, got %v", errs)
	}
}

// TestPersonInput_PhoneLength checks both ends of the 11-14 character rule.
func TestPersonInput_PhoneLength(t *testing.T) {
	in := validPersonInput()

	in.PhoneNumber = "0123456789" // 10 chars
	if errs := in.Validate(); errs["phone_number"] == "" {
		t.Error("expected an error for a 10 character phone number")
	}

	in.PhoneNumber = "012345678901234" // 15 chars
	if errs := in.Validate(); errs["phone_number"] == "" {
		t.Error("expected an error for a 15 character phone number")
	}

	in.PhoneNumber = "01234567890" // 11 chars
	if errs := in.Validate(); errs["phone_number"] != "" {
		t.Errorf("11 characters should pass, got %v", errs)
	}

	in.PhoneNumber = "01234567890123" // 14 chars
	if errs := in.Validate(); errs["phone_number"] != "" {
		t.Errorf("14 characters should pass, got %v", errs)
	}
}

// TestPersonInput_Email verifies the email is optional but validated when
// present.
func TestPersonInput_Email(t *testing.T) {
	in := validPersonInput()

	in.Email = ""
	if errs := in.Validate(); errs["email"] != "" {
		t.Errorf("empty email should pass, got %v", errs)
	}

	in.Email = "not-an-email"
	if errs := in.Validate(); errs["email"] == "" {
		t.Error("expected an error for a malformed email")
	}
}

// TestPersonInput_Blank verifies a completely blank intake reports every
// required field.
func TestPersonInput_Blank(t *testing.T) {
	errs := directory.PersonInput{}.Validate()
	for _, field := range []string{"service", "location", "first_name", "last_name", "phone_number"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected an error for %s, got %v", field, errs)
		}
	}
}

// TestReviewInput covers the rating range and the summary/text caps.
func TestReviewInput(t *testing.T) {
	valid := directory.ReviewInput{Rating: 5, Summary: "Impressive performance", Text: "Psycho Bob really put on a show"}
	if errs := valid.Validate(); errs.Any() {
		t.Errorf("expected no errors, got %v", errs)
	}

	for _, rating := range []int{0, 6, -1} {
		in := valid
		in.Rating = rating
		if errs := in.Validate(); errs["rating"] == "" {
			t.Errorf("expected a rating error for %d", rating)
		}
	}

	long := valid
	long.Summary = strings.Repeat("x", 41)
	if errs := long.Validate(); errs["summary"] == "" {
		t.Error("expected an error for a 41 character summary")
	}

	long = valid
	long.Text = strings.Repeat("x", 361)
	if errs := long.Validate(); errs["text"] == "" {
		t.Error("expected an error for a 361 character text")
	}

	empty := valid
	empty.Summary = "  "
	if errs := empty.Validate(); errs["summary"] == "" {
		t.Error("expected an error for a blank summary")
	}
}

// TestCategoryAndAreaInput verifies the name requirement on the admin forms.
func TestCategoryAndAreaInput(t *testing.T) {
	if errs := (directory.CategoryInput{Name: "Clown"}).Validate(); errs.Any() {
		t.Errorf("expected no errors, got %v", errs)
	}
	if errs := (directory.CategoryInput{}).Validate(); errs["name"] == "" {
		t.Error("expected a name error for a blank category")
	}
	if errs := (directory.AreaInput{Name: "Disneyland"}).Validate(); errs.Any() {
		t.Errorf("expected no errors, got %v", errs)
	}
	if errs := (directory.AreaInput{}).Validate(); errs["name"] == "" {
		t.Error("expected a name error for a blank area")
	}
}
