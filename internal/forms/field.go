package forms

import "context"

// Kind is the HTML input kind of a field.
type Kind string

const (
	KindText     Kind = "text"
	KindTextarea Kind = "textarea"
	KindPassword Kind = "password"
	KindEmail    Kind = "email"
	KindNumber   Kind = "number"
	KindDate     Kind = "date"
	KindTime     Kind = "time"
	KindSelect   Kind = "select"
)

// Mode distinguishes the create form from the edit form.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// Visibility restricts a field to one mode. Identifying foreign keys are
// create-only so they stay immutable after the row exists.
type Visibility string

const (
	ShowBoth       Visibility = "both"
	ShowCreateOnly Visibility = "create"
	ShowEditOnly   Visibility = "edit"
)

// Choice is one (submitted value, display label) option pair.
type Choice struct {
	Value string
	Label string
}

// ChoiceKind names where a select field's options come from. Dynamic kinds
// are resolved through a ChoiceSource at render time, never cached, so the
// options always reflect current rows.
type ChoiceKind string

const (
	ChoicesNone       ChoiceKind = ""
	ChoicesStatic     ChoiceKind = "static"
	ChoicesUsers      ChoiceKind = "users"
	ChoicesMembers    ChoiceKind = "members"
	ChoicesCaregivers ChoiceKind = "caregivers"
	ChoicesJobs       ChoiceKind = "jobs"
)

// ChoiceSource resolves the dynamic option lists. The sqlite store
// implements it; tests use a fake.
type ChoiceSource interface {
	UserChoices(ctx context.Context) ([]Choice, error)
	MemberChoices(ctx context.Context) ([]Choice, error)
	CaregiverChoices(ctx context.Context) ([]Choice, error)
	JobChoices(ctx context.Context) ([]Choice, error)
}

// Field is the declarative descriptor for one form input.
type Field struct {
	Name     string
	Label    string
	Kind     Kind
	Required bool
	// NotEmpty rejects empty non-required input instead of storing null.
	// No field in the current registry sets it; the zero value (nullable)
	// matches the original configuration.
	NotEmpty bool
	// Step is the HTML number-input step hint, e.g. "0.01".
	Step string
	// Coerce converts raw input to the field's typed value. Nil means the
	// raw text passes through unchanged.
	Coerce Coercer
	// Choices and Static describe select options. Static is only read when
	// Choices == ChoicesStatic.
	Choices ChoiceKind
	Static  []Choice
	// Default provides the initial value when neither an instance nor
	// submitted data is present.
	Default func() string
	ShowIn  Visibility
}

// visibleIn reports whether the field appears in the given mode.
func (f Field) visibleIn(mode Mode) bool {
	switch f.ShowIn {
	case "", ShowBoth:
		return true
	case ShowCreateOnly:
		return mode == ModeCreate
	case ShowEditOnly:
		return mode == ModeEdit
	}
	return false
}

// options resolves the field's choice list.
func (f Field) options(ctx context.Context, src ChoiceSource) ([]Choice, error) {
	switch f.Choices {
	case ChoicesStatic:
		return f.Static, nil
	case ChoicesUsers:
		return src.UserChoices(ctx)
	case ChoicesMembers:
		return src.MemberChoices(ctx)
	case ChoicesCaregivers:
		return src.CaregiverChoices(ctx)
	case ChoicesJobs:
		return src.JobChoices(ctx)
	}
	return nil, nil
}
