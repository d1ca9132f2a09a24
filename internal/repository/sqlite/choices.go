package sqlite

import (
	"context"
	"fmt"

	"github.com/aknur/careadmin/internal/forms"
)

// ChoiceSource implementation. Option lists are queried fresh on every
// call so dropdowns always reflect current rows.

func (s *Store) choiceQuery(ctx context.Context, query string) ([]forms.Choice, error) {
	rows, err := s.conn.QueryRows(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []forms.Choice
	for rows.Next() {
		var id int64
		var label string
		if err := rows.Scan(&id, &label); err != nil {
			return nil, err
		}
		out = append(out, forms.Choice{Value: fmt.Sprintf("%d", id), Label: label})
	}
	return out, rows.Err()
}

func (s *Store) UserChoices(ctx context.Context) ([]forms.Choice, error) {
	return s.choiceQuery(ctx,
		`SELECT user_id, given_name || ' ' || surname || ' (ID: ' || user_id || ')' FROM user_account ORDER BY user_id`)
}

func (s *Store) MemberChoices(ctx context.Context) ([]forms.Choice, error) {
	return s.choiceQuery(ctx,
		`SELECT m.member_user_id, u.given_name || ' ' || u.surname || ' (ID: ' || m.member_user_id || ')'
		 FROM member m JOIN user_account u ON m.member_user_id = u.user_id
		 ORDER BY m.member_user_id`)
}

func (s *Store) CaregiverChoices(ctx context.Context) ([]forms.Choice, error) {
	return s.choiceQuery(ctx,
		`SELECT c.caregiver_user_id, u.given_name || ' ' || u.surname || ' (ID: ' || c.caregiver_user_id || ')'
		 FROM caregiver c JOIN user_account u ON c.caregiver_user_id = u.user_id
		 ORDER BY c.caregiver_user_id`)
}

func (s *Store) JobChoices(ctx context.Context) ([]forms.Choice, error) {
	return s.choiceQuery(ctx,
		`SELECT j.job_id, 'Job #' || j.job_id || ' (' || j.required_caregiving_type || ') - ' || u.given_name
		 FROM job j
		 JOIN member m ON j.member_user_id = m.member_user_id
		 JOIN user_account u ON m.member_user_id = u.user_id
		 ORDER BY j.job_id`)
}
