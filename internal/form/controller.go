// Package form drives the add/edit person modal.
package form

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/jask/agebook/internal/directory"
)

// Mode says what a submit will do.
type Mode string

const (
	ModeClosed Mode = ""
	ModeAdd    Mode = "add"
	ModeEdit   Mode = "edit"
)

// Values are the raw text of the form fields.
type Values struct {
	Name  string
	Age   string
	Email string
	Phone string
}

// Get returns the value of a field by name.
func (v Values) Get(field string) string {
	switch field {
	case directory.FieldName:
		return v.Name
	case directory.FieldAge:
		return v.Age
	case directory.FieldEmail:
		return v.Email
	case directory.FieldPhone:
		return v.Phone
	}
	return ""
}

// Set returns a copy of v with field replaced.
func (v Values) Set(field, value string) Values {
	switch field {
	case directory.FieldName:
		v.Name = value
	case directory.FieldAge:
		v.Age = value
	case directory.FieldEmail:
		v.Email = value
	case directory.FieldPhone:
		v.Phone = value
	}
	return v
}

// FieldOrder is the tab order of the modal.
var FieldOrder = []string{directory.FieldName, directory.FieldAge, directory.FieldEmail, directory.FieldPhone}

// Controller is the Closed / Open(Add) / Open(Edit(id)) state machine.
type Controller struct {
	store     *directory.Store
	log       *zap.Logger
	mode      Mode
	editingID string
	values    Values
	errs      map[string]string
}

func NewController(store *directory.Store, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{store: store, log: log}
}

// OpenForAdd opens an empty form.
func (c *Controller) OpenForAdd() {
	c.reset()
	c.mode = ModeAdd
}

// OpenForEdit opens the form pre-filled from the record with id.
// A missing record leaves the form closed.
func (c *Controller) OpenForEdit(id string) error {
	p, err := c.store.Get(id)
	if err != nil {
		c.reset()
		return err
	}
	c.reset()
	c.mode = ModeEdit
	c.editingID = id
	c.values = Values{Name: p.Name, Age: strconv.Itoa(p.Age), Email: p.Email, Phone: p.Phone}
	return nil
}

// Submit validates v and applies it to the store. On validation failure the
// form stays open with field errors and the store is not touched.
func (c *Controller) Submit(v Values) (directory.Person, error) {
	if c.mode == ModeClosed {
		return directory.Person{}, errors.New("form is not open")
	}
	c.values = v
	fields, err := Parse(v)
	if err != nil {
		if ve, ok := directory.IsValidation(err); ok {
			c.errs = ve.Fields
		}
		return directory.Person{}, err
	}

	var p directory.Person
	switch c.mode {
	case ModeAdd:
		p, err = c.store.Create(fields)
	case ModeEdit:
		p, err = c.store.Update(c.editingID, directory.PatchFromFields(fields))
		if errors.Is(err, directory.ErrNotFound) {
			c.log.Warn("edit target vanished", zap.String("id", c.editingID))
			c.reset()
			return directory.Person{}, err
		}
	}
	if err != nil {
		if ve, ok := directory.IsValidation(err); ok {
			c.errs = ve.Fields
		}
		return directory.Person{}, fmt.Errorf("submit: %w", err)
	}
	c.log.Info("form submitted", zap.String("mode", string(c.mode)), zap.String("id", p.ID))
	c.reset()
	return p, nil
}

// Cancel closes the form and drops any edits.
func (c *Controller) Cancel() {
	c.reset()
}

func (c *Controller) reset() {
	c.mode = ModeClosed
	c.editingID = ""
	c.values = Values{}
	c.errs = nil
}

func (c *Controller) IsOpen() bool      { return c.mode != ModeClosed }
func (c *Controller) Mode() Mode        { return c.mode }
func (c *Controller) EditingID() string { return c.editingID }
func (c *Controller) Values() Values    { return c.values }

// SetValue records an edit to one field without validating it.
func (c *Controller) SetValue(field, value string) {
	c.values = c.values.Set(field, value)
}

// Errors returns field errors from the last failed submit.
func (c *Controller) Errors() map[string]string {
	return c.errs
}

func (c *Controller) Title() string {
	if c.mode == ModeEdit {
		return "Edit Person"
	}
	return "Add Person"
}

func (c *Controller) SubmitLabel() string {
	if c.mode == ModeEdit {
		return "Save"
	}
	return "Add"
}

// Parse converts raw form text into store fields. Age is parsed here and
// nowhere else.
func Parse(v Values) (directory.Fields, error) {
	problems := map[string]string{}
	f := directory.Fields{
		Name:  strings.TrimSpace(v.Name),
		Email: strings.TrimSpace(v.Email),
		Phone: strings.TrimSpace(v.Phone),
	}
	if f.Name == "" {
		problems[directory.FieldName] = "required"
	}
	ageText := strings.TrimSpace(v.Age)
	switch age, err := strconv.Atoi(ageText); {
	case ageText == "":
		problems[directory.FieldAge] = "required"
	case err != nil:
		problems[directory.FieldAge] = "must be a whole number"
	case age < 0:
		problems[directory.FieldAge] = "must not be negative"
	default:
		f.Age = age
	}
	if f.Email == "" {
		problems[directory.FieldEmail] = "required"
	} else if !directory.ValidEmail(f.Email) {
		problems[directory.FieldEmail] = "not a valid email"
	}
	if f.Phone == "" {
		problems[directory.FieldPhone] = "required"
	}
	if len(problems) > 0 {
		return directory.Fields{}, &directory.ValidationError{Fields: problems}
	}
	return f, nil
}
