package prompt

import (
	"fmt"
	"strings"
	"testing"
)

func TestBuildAssistant_ContainsContext(t *testing.T) {
	p := BuildAssistant(
		"Why does this print twice?",
		"for i in range(2):\n    print('hi')",
		"python",
		"hi\nhi\n",
	)

	for _, want := range []string{
		"CodeCraftX AI",
		"```python",
		"for i in range(2):",
		"hi\nhi\n",
		"Why does this print twice?",
		"**User's Language:** python",
	} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt should contain %q", want)
		}
	}
}

func TestBuildAssistant_BehaviorRules(t *testing.T) {
	p := BuildAssistant("help", "x = 1", "python", "")

	// The hints-only default and the explicit solution escape hatch must both
	// be stated in the instruction.
	for _, want := range []string{
		"ONLY give hints",
		"Correct Solution",
		"Full Solution",
		"BE DIRECT",
	} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt should contain behavior rule %q", want)
		}
	}
}

func TestBuildAssistant_FullSolutionRequestSurvives(t *testing.T) {
	msg := "Please provide the Full Correct Solution for this code."
	p := BuildAssistant(msg, "print(1", "python", "SyntaxError")

	// The user's explicit solution request must reach the model verbatim so
	// solution mode can trigger.
	if !strings.Contains(p, msg) {
		t.Error("prompt should contain the user's full-solution request verbatim")
	}
}

func TestBuildAssistant_OutputPlaceholder(t *testing.T) {
	p := BuildAssistant("help", "code", "cpp", "")
	if !strings.Contains(p, "No output provided.") {
		t.Error("empty output should be replaced with the placeholder")
	}

	p = BuildAssistant("help", "code", "cpp", "segfault")
	if strings.Contains(p, "No output provided.") {
		t.Error("placeholder should not appear when output is present")
	}
	if !strings.Contains(p, "segfault") {
		t.Error("captured output should appear in the prompt")
	}
}

func TestBuildGenerator_Template(t *testing.T) {
	p := BuildGenerator("something with linked lists")

	if !strings.Contains(p, `User's Idea: "something with linked lists"`) {
		t.Error("prompt should contain the quoted idea")
	}

	// Downstream consumers split on the delimiter, so the instruction must
	// pin the exact count and layout.
	for i := 1; i <= problemTestCaseCount; i++ {
		marker := fmt.Sprintf("**Test Case %d**", i)
		if !strings.Contains(p, marker) {
			t.Errorf("prompt should contain %q", marker)
		}
	}
	if strings.Contains(p, "**Test Case 4**") {
		t.Error("template should stop at exactly 3 test cases")
	}
	if !strings.Contains(p, "---------------------") {
		t.Error("prompt should contain the test-case delimiter")
	}
	if !strings.Contains(p, "Exactly **3** test cases") {
		t.Error("prompt should state the exact test-case count")
	}
}
