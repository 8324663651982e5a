package agent

import (
	"fmt"

	"multi-agent-code-assistant/pkg/llmprovider"
)

// Role identifies a specialized agent. The set is closed: construction goes
// through a profile lookup, not a type hierarchy.
type Role string

const (
	RolePlanner   Role = "planner"
	RoleCoder     Role = "coder"
	RoleReviewer  Role = "reviewer"
	RoleDebugger  Role = "debugger"
	RoleOptimizer Role = "optimizer"
)

// Roles lists all roles in a stable order.
func Roles() []Role {
	return []Role{RolePlanner, RoleCoder, RoleReviewer, RoleDebugger, RoleOptimizer}
}

// ParseRole validates a role name.
func ParseRole(s string) (Role, error) {
	role := Role(s)
	if _, ok := profiles[role]; !ok {
		return "", fmt.Errorf("unknown agent role: %q", s)
	}
	return role, nil
}

// Profile is the configuration record for one role.
type Profile struct {
	SystemPrompt string
	Temperature  float64
	Tools        []llmprovider.Tool // empty for all roles by default
}

// The coder runs colder than the rest for more deterministic code output.
var profiles = map[Role]Profile{
	RolePlanner:   {SystemPrompt: plannerPrompt, Temperature: DefaultTemperature},
	RoleCoder:     {SystemPrompt: coderPrompt, Temperature: CoderTemperature},
	RoleReviewer:  {SystemPrompt: reviewerPrompt, Temperature: DefaultTemperature},
	RoleDebugger:  {SystemPrompt: debuggerPrompt, Temperature: DefaultTemperature},
	RoleOptimizer: {SystemPrompt: optimizerPrompt, Temperature: DefaultTemperature},
}

// ProfileFor returns the configuration record for a role.
func ProfileFor(role Role) (Profile, error) {
	p, ok := profiles[role]
	if !ok {
		return Profile{}, fmt.Errorf("unknown agent role: %q", role)
	}
	return p, nil
}

// Description returns a short human-readable description of a role.
func (r Role) Description() string {
	switch r {
	case RolePlanner:
		return "Plans and breaks down complex tasks into actionable steps"
	case RoleCoder:
		return "Writes clean, efficient code following best practices"
	case RoleReviewer:
		return "Reviews code for bugs, security issues, and improvements"
	case RoleDebugger:
		return "Debugs code and identifies root causes of issues"
	case RoleOptimizer:
		return "Optimizes code for better performance"
	default:
		return "Unknown agent"
	}
}

// Capabilities returns the capability list exposed through the agents API.
func (r Role) Capabilities() []string {
	switch r {
	case RolePlanner:
		return []string{"Task breakdown", "Dependency analysis", "Execution planning", "Agent delegation"}
	case RoleCoder:
		return []string{"Code generation", "Best practices application", "Error handling", "Documentation"}
	case RoleReviewer:
		return []string{"Bug detection", "Security analysis", "Code quality assessment", "Performance evaluation"}
	case RoleDebugger:
		return []string{"Error analysis", "Root cause identification", "Fix suggestions", "Prevention recommendations"}
	case RoleOptimizer:
		return []string{"Performance analysis", "Algorithm optimization", "Memory efficiency", "Complexity reduction"}
	default:
		return nil
	}
}
