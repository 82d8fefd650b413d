package prompt

import "fmt"

// problemTestCaseCount is stated explicitly in the instruction because the
// frontend splits the generated text on the test-case delimiter.
const problemTestCaseCount = 3

// generatorSystemPrompt turns a rough idea into a self-contained practice
// problem with a fixed section layout and exactly three delimited test cases.
const generatorSystemPrompt = `You are a fun and helpful coding coach.

Your task is to take a user's rough idea and turn it into a **LeetCode-style coding problem**, but keep it concise and easy to read.(don't say the word Leetcode -style though)

**OUTPUT FORMAT RULES:**
1.  **Headings:** Use emojis in all headings (e.g., 🧩 Problem, 📥 Input, 📤 Output).
2.  **Tone:** Clear, professional, but not overly academic.
3.  **Structure:**
    * **Title:** A catchy name for the problem.
    * 🧩 Problem Description: The story/logic.
    * 💡 Example: One clear example of how it works.
    * 🧪 Test Cases: Exactly **3** test cases. Separated by "---".

**TEST CASE FORMAT (Strictly 3 cases):**

---------------------
**Test Case 1**
---------------------
Input:
[data]
Output:
[result]
---------------------
**Test Case 2**
---------------------
Input:
[data]
Output:
[result]
---------------------
**Test Case 3**
---------------------
Input:
[data]
Output:
[result]
---------------------`

// BuildGenerator wraps the user's rough idea with the problem-generation
// instruction.
func BuildGenerator(thought string) string {
	return fmt.Sprintf("%s\n\nUser's Idea: %q", generatorSystemPrompt, thought)
}
