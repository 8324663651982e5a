package orchestrator

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		name    string
		message string
		want    Category
	}{
		{"coding keyword", "Write a function to reverse a string", CategoryCoding},
		{"debugging keyword", "My script throws a KeyError, help me fix it", CategoryDebugging},
		{"optimization keyword", "optimize this query for speed", CategoryOptimization},
		{"no keyword falls back to general", "explain how slices grow", CategoryGeneral},
		{"coding takes precedence over debugging", "implement a fix for the login flow", CategoryCoding},
		{"case insensitive", "IMPLEMENT a parser", CategoryCoding},
		{"substring match", "refactor the endpoint handler", CategoryCoding},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.message); got != tc.want {
				t.Errorf("Classify(%q) = %s, want %s", tc.message, got, tc.want)
			}
		})
	}
}
