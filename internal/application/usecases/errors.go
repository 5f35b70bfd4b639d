package usecases

import "errors"

var (
	// ErrNotFound covers lookups for users, campaigns and KPIs that do
	// not exist.
	ErrNotFound = errors.New("record not found")

	// ErrForbidden means the actor's role allows the action in general
	// but not against this particular resource (not their agent, not
	// their own history).
	ErrForbidden = errors.New("you are not allowed to access this resource")

	// ErrEmptyCatalog means no KPI is enabled for the agent's campaign;
	// the scoring form cannot be rendered until an admin enables some.
	ErrEmptyCatalog = errors.New("no KPIs are enabled for this campaign")
)
