package forms

import (
	"context"
	"net/url"

	"github.com/aknur/careadmin/pkg/models"
)

// FieldView is a Field annotated with its current display value and, for
// selects, the resolved option list. It is what the form template consumes.
type FieldView struct {
	Field
	Value   string
	Options []Choice
}

// Prepare builds the render-time view of a form. Value precedence per
// field: submitted raw value (re-render after failed validation), then the
// instance's serialized value (edit), then the default provider, then
// empty. instance maps field names to canonical display strings; select
// options are resolved fresh on every call so they reflect current rows.
func Prepare(ctx context.Context, entity models.Entity, instance map[string]string, raw url.Values, mode Mode, src ChoiceSource) ([]FieldView, error) {
	var views []FieldView
	for _, f := range FieldsFor(entity) {
		if !f.visibleIn(mode) {
			continue
		}

		v := FieldView{Field: f}
		switch {
		case raw != nil:
			v.Value = raw.Get(f.Name)
		case instance != nil:
			v.Value = instance[f.Name]
		case f.Default != nil:
			v.Value = f.Default()
		}

		if f.Kind == KindSelect {
			opts, err := f.options(ctx, src)
			if err != nil {
				return nil, err
			}
			v.Options = opts
		}

		views = append(views, v)
	}
	return views, nil
}
