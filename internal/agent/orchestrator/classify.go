package orchestrator

import "strings"

// Category is a task classification bucket. It selects which specialist
// agents run after planning.
type Category string

const (
	CategoryCoding       Category = "coding"
	CategoryDebugging    Category = "debugging"
	CategoryOptimization Category = "optimization"
	CategoryGeneral      Category = "general"
)

// classificationRules is evaluated in order; the first category with a
// matching keyword wins, so coding keywords shadow debugging and
// optimization ones. Substring matching on the lowercased message is a
// known limitation: it is brittle and English-only.
var classificationRules = []struct {
	category Category
	keywords []string
}{
	{CategoryCoding, []string{
		"write", "code", "implement", "create", "build", "develop",
		"function", "class", "api", "endpoint",
	}},
	{CategoryDebugging, []string{"debug", "fix", "error", "issue"}},
	{CategoryOptimization, []string{"optimize", "improve", "performance"}},
}

// Classify assigns a task message to a category. Messages matching no
// keyword fall back to CategoryGeneral, so every task is handled.
func Classify(message string) Category {
	lower := strings.ToLower(message)
	for _, rule := range classificationRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.category
			}
		}
	}
	return CategoryGeneral
}
