package validator

import (
	"regexp"
	"strings"

	"github.com/fadilmartias/talentflow/internal/dto"
	"github.com/fadilmartias/talentflow/internal/model"
)

// Errors maps a form field name to its message. Empty means the draft may be submitted.
type Errors map[string]string

// Fields lists the validated form fields in form order.
var Fields = []string{
	"firstName",
	"lastName",
	"email",
	"phone",
	"position",
	"department",
	"experience",
	"education",
	"skills",
	"coverLetter",
}

var requiredMessages = map[string]string{
	"firstName":   "First name is required",
	"lastName":    "Last name is required",
	"email":       "Email is required",
	"phone":       "Phone number is required",
	"position":    "Position is required",
	"department":  "Department is required",
	"experience":  "Experience is required",
	"education":   "Education is required",
	"skills":      "Skills are required",
	"coverLetter": "Cover letter is required",
}

// Coarse on purpose: something@something.something, unanchored.
var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// Validate checks every field of the draft.
func Validate(d dto.DraftApplication) Errors {
	errs := Errors{}
	for _, field := range Fields {
		if msg := checkField(d, field); msg != "" {
			errs[field] = msg
		}
	}
	return errs
}

// RevalidateField re-checks one edited field against the previous result. An error is
// cleared once the field passes; a field that had no error is never newly flagged.
func RevalidateField(prev Errors, d dto.DraftApplication, field string) Errors {
	next := make(Errors, len(prev))
	for k, v := range prev {
		next[k] = v
	}
	if _, flagged := next[field]; !flagged {
		return next
	}
	if msg := checkField(d, field); msg != "" {
		next[field] = msg
	} else {
		delete(next, field)
	}
	return next
}

// IsField reports whether name is one of the validated form fields.
func IsField(name string) bool {
	_, ok := requiredMessages[name]
	return ok
}

func checkField(d dto.DraftApplication, field string) string {
	value, ok := d.Field(field)
	if !ok {
		return ""
	}
	if strings.TrimSpace(value) == "" {
		return requiredMessages[field]
	}
	switch field {
	case "email":
		if !emailPattern.MatchString(value) {
			return "Email is invalid"
		}
	case "position":
		if !model.IsKnownPosition(value) {
			return "Position is invalid"
		}
	case "department":
		if !model.IsKnownDepartment(value) {
			return "Department is invalid"
		}
	}
	return ""
}
