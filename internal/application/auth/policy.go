// Package auth holds the single authorization policy consulted before any
// scoring or administrative mutation. Role gates live here; checks that
// need data (is this manager assigned to this agent, is this the agent's
// own history) stay in the usecases next to the data.
package auth

import "github.com/elevateplus/coaching-api/internal/domain/entities"

// Action is a capability a request wants to exercise.
type Action string

const (
	ActionManageUsers     Action = "users:manage"
	ActionManageCampaigns Action = "campaigns:manage"
	ActionManageKPIs      Action = "kpis:manage"
	ActionViewKPICatalog  Action = "kpis:view"
	ActionViewTeam        Action = "team:view"
	ActionSubmitScores    Action = "scores:submit"
	ActionViewAgentData   Action = "agents:view"
)

// rolePolicies maps each role to the actions it may perform. Admin tiers
// inherit everything below them so an admin can drop into the manager
// screens, mirroring the simulated views of the dashboard.
var rolePolicies = map[string]map[Action]bool{
	entities.RoleSuperAdmin: {
		ActionManageUsers:     true,
		ActionManageCampaigns: true,
		ActionManageKPIs:      true,
		ActionViewKPICatalog:  true,
		ActionViewTeam:        true,
		ActionSubmitScores:    true,
		ActionViewAgentData:   true,
	},
	entities.RoleAdmin: {
		ActionManageUsers:     true,
		ActionManageCampaigns: true,
		ActionManageKPIs:      true,
		ActionViewKPICatalog:  true,
		ActionViewTeam:        true,
		ActionSubmitScores:    true,
		ActionViewAgentData:   true,
	},
	entities.RoleManager: {
		ActionViewKPICatalog: true,
		ActionViewTeam:       true,
		ActionSubmitScores:   true,
		ActionViewAgentData:  true,
	},
	entities.RoleAgent: {
		ActionViewKPICatalog: true,
		ActionViewAgentData:  true,
	},
}

// Allow reports whether the actor's role may perform the action. Unknown
// or unassigned roles are denied everything.
func Allow(actor *entities.User, action Action) bool {
	if actor == nil {
		return false
	}
	policy, ok := rolePolicies[actor.Role]
	if !ok {
		return false
	}
	return policy[action]
}
