// Package validation turns raw submissions into normalized records or a set
// of per-field errors. Validation is all-or-nothing: a record is returned
// only when every field passes.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jevelon/backend/internal/model"
)

// emailPattern requires local@domain where the domain has at least one dot.
var emailPattern = regexp.MustCompile(
	`^[A-Za-z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[A-Za-z0-9](?:[A-Za-z0-9-]{0,61}[A-Za-z0-9])?(?:\.[A-Za-z0-9](?:[A-Za-z0-9-]{0,61}[A-Za-z0-9])?)+$`,
)

// Validator checks submissions against their struct tags.
type Validator struct {
	v *validator.Validate
}

// New returns a Validator with the custom email, date and choice tags registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report errors under the wire (json) field name.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	v.RegisterValidation("email_address", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		_, err := model.ParseDate(fl.Field().String())
		return err == nil
	})
	v.RegisterValidation("priority", func(fl validator.FieldLevel) bool {
		return model.Priority(fl.Field().String()).Valid()
	})
	v.RegisterValidation("ticket_category", func(fl validator.FieldLevel) bool {
		return model.TicketCategory(fl.Field().String()).Valid()
	})

	return &Validator{v: v}
}

// Contact validates a contact form submission.
func (v *Validator) Contact(in model.ContactInput) (*model.ContactMessage, error) {
	trimStrings(&in)
	if err := v.check(in); err != nil {
		return nil, err
	}
	return &model.ContactMessage{
		Name:    in.Name,
		Email:   in.Email,
		Service: in.Service,
		Message: in.Message,
	}, nil
}

// SupportTicket validates a support ticket submission, applying the default
// priority and category when they are omitted. A blank value that is present
// is rejected like any other unknown choice. Status always starts open.
func (v *Validator) SupportTicket(in model.SupportTicketInput) (*model.SupportTicket, error) {
	trimStrings(&in)
	if err := v.check(in); err != nil {
		return nil, err
	}
	t := &model.SupportTicket{
		Name:     in.Name,
		Email:    in.Email,
		Priority: model.DefaultPriority,
		Category: model.DefaultCategory,
		Subject:  in.Subject,
		Message:  in.Message,
		Status:   model.TicketOpen,
	}
	if in.Priority != nil {
		t.Priority = model.Priority(*in.Priority)
	}
	if in.Category != nil {
		t.Category = model.TicketCategory(*in.Category)
	}
	return t, nil
}

// Consultation validates a consultation booking. Past dates are accepted.
func (v *Validator) Consultation(in model.ConsultationInput) (*model.ConsultationRequest, error) {
	trimStrings(&in)
	if err := v.check(in); err != nil {
		return nil, err
	}
	date, err := model.ParseDate(in.PreferredDate)
	if err != nil {
		// unreachable after the date tag passed
		return nil, invalid("preferred_date", messageFor("date", ""))
	}
	return &model.ConsultationRequest{
		Name:            in.Name,
		Email:           in.Email,
		Phone:           in.Phone,
		Company:         in.Company,
		ProjectType:     in.ProjectType,
		PreferredDate:   date,
		PreferredTime:   in.PreferredTime,
		AdditionalNotes: in.AdditionalNotes,
		Status:          model.ConsultationPending,
	}, nil
}

func (v *Validator) check(in any) error {
	err := v.v.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := model.FieldErrors{}
	for _, fe := range verrs {
		fields.Add(fe.Field(), messageFor(fe.Tag(), fe.Param(), fe.Value()))
	}
	return &model.ValidationError{Fields: fields}
}

func invalid(field, msg string) error {
	fields := model.FieldErrors{}
	fields.Add(field, msg)
	return &model.ValidationError{Fields: fields}
}

func messageFor(tag, param string, value ...any) string {
	switch tag {
	case "required":
		return "This field is required."
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", param)
	case "email_address":
		return "Enter a valid email address."
	case "date":
		return "Date has wrong format. Use one of these formats instead: YYYY-MM-DD."
	case "priority", "ticket_category":
		var v any = ""
		if len(value) > 0 {
			v = value[0]
		}
		return fmt.Sprintf("%q is not a valid choice.", fmt.Sprint(v))
	default:
		return "Invalid value."
	}
}

// trimStrings trims every string and non-nil *string field of the struct
// pointed to by p.
func trimStrings(p any) {
	rv := reflect.ValueOf(p).Elem()
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if f.Kind() == reflect.Pointer && !f.IsNil() {
			f = f.Elem()
		}
		if f.Kind() == reflect.String && f.CanSet() {
			f.SetString(strings.TrimSpace(f.String()))
		}
	}
}
