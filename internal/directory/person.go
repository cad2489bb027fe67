package directory

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Person represents a directory record.
type Person struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Age   int    `yaml:"age"`
	Email string `yaml:"email"`
	Phone string `yaml:"phone"`
}

// Fields carries the values for a new record. The store assigns the ID.
type Fields struct {
	Name  string
	Age   int
	Email string
	Phone string
}

// Patch holds optional field updates. Nil fields are left untouched.
type Patch struct {
	Name  *string
	Age   *int
	Email *string
	Phone *string
}

// PatchFromFields builds a patch that overwrites every field.
func PatchFromFields(f Fields) Patch {
	return Patch{Name: &f.Name, Age: &f.Age, Email: &f.Email, Phone: &f.Phone}
}

func (p Patch) apply(dst *Person) {
	if p.Name != nil {
		dst.Name = *p.Name
	}
	if p.Age != nil {
		dst.Age = *p.Age
	}
	if p.Email != nil {
		dst.Email = *p.Email
	}
	if p.Phone != nil {
		dst.Phone = *p.Phone
	}
}

// Field names used in validation errors and forms.
const (
	FieldName  = "name"
	FieldAge   = "age"
	FieldEmail = "email"
	FieldPhone = "phone"
)

var (
	ErrNotFound          = errors.New("person not found")
	ErrDuplicateID       = errors.New("duplicate person id")
	ErrInvalidSortOption = errors.New("invalid sort option")
)

// ValidationError reports field-level problems. Fields maps field name to message.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		names = append(names, k)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, n := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", n, e.Fields[n]))
	}
	return "invalid person: " + strings.Join(parts, "; ")
}

// Has reports whether field failed validation.
func (e *ValidationError) Has(field string) bool {
	_, ok := e.Fields[field]
	return ok
}

// IsValidation unwraps err into a *ValidationError when possible.
func IsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailShape.MatchString(strings.TrimSpace(s))
}

// Validate checks presence and shape of every field.
func (f Fields) Validate() error {
	problems := map[string]string{}
	if strings.TrimSpace(f.Name) == "" {
		problems[FieldName] = "required"
	}
	if f.Age < 0 {
		problems[FieldAge] = "must not be negative"
	}
	if strings.TrimSpace(f.Email) == "" {
		problems[FieldEmail] = "required"
	} else if !ValidEmail(f.Email) {
		problems[FieldEmail] = "not a valid email"
	}
	if strings.TrimSpace(f.Phone) == "" {
		problems[FieldPhone] = "required"
	}
	if len(problems) > 0 {
		return &ValidationError{Fields: problems}
	}
	return nil
}

func (p Person) fields() Fields {
	return Fields{Name: p.Name, Age: p.Age, Email: p.Email, Phone: p.Phone}
}
