package mock

import (
	"context"

	"github.com/aknur/careadmin/internal/forms"
)

// ChoiceSource is an in-memory forms.ChoiceSource for tests. Each slice
// is returned as-is; Err, when set, is returned by every method.
type ChoiceSource struct {
	Users      []forms.Choice
	Members    []forms.Choice
	Caregivers []forms.Choice
	Jobs       []forms.Choice
	Err        error

	// Calls counts choice lookups across all methods.
	Calls int
}

var _ forms.ChoiceSource = (*ChoiceSource)(nil)

func (s *ChoiceSource) UserChoices(ctx context.Context) ([]forms.Choice, error) {
	s.Calls++
	return s.Users, s.Err
}

func (s *ChoiceSource) MemberChoices(ctx context.Context) ([]forms.Choice, error) {
	s.Calls++
	return s.Members, s.Err
}

func (s *ChoiceSource) CaregiverChoices(ctx context.Context) ([]forms.Choice, error) {
	s.Calls++
	return s.Caregivers, s.Err
}

func (s *ChoiceSource) JobChoices(ctx context.Context) ([]forms.Choice, error) {
	s.Calls++
	return s.Jobs, s.Err
}
