package orchestrator

const (
	// TopK is the number of chunks requested from retrieval per turn.
	TopK = 5

	// Sanitized trace limits. Inputs and outputs longer than these are
	// truncated with an ellipsis marker before leaving the core.
	TraceInputLimit  = 200
	TraceOutputLimit = 500

	// SourceContentLimit bounds the chunk content echoed in the source list.
	SourceContentLimit = 200

	ellipsis = "..."
)

const (
	plannerTaskTemplate     = "Create a plan to accomplish this task:\n%s"
	coderImplementTemplate  = "Implement the following:\n%s\n\nPlan:\n%s"
	reviewerTaskTemplate    = "Review this code:\n%s"
	coderFollowPlanTemplate = "%s\n\nFollow this plan:\n%s"

	codingResponseTemplate       = "## Implementation\n\n%s\n\n## Code Review\n\n%s\n\n## Execution Plan\n\n%s\n"
	debuggingResponseTemplate    = "## Debugging Analysis\n\n%s\n\n## Initial Assessment\n\n%s\n"
	optimizationResponseTemplate = "## Optimization Suggestions\n\n%s\n\n## Analysis Plan\n\n%s\n"
	generalResponseTemplate      = "## Solution\n\n%s\n\n## Approach\n\n%s\n"
)
