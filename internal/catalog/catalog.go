// Package catalog holds the static learning-content catalog backing the
// data-structures and algorithms section of the frontend. The data is
// read-only and lives in memory; it never interacts with the proxies.
package catalog

// CodeExample is a runnable snippet with its expected output.
type CodeExample struct {
	Name   string `json:"name"`
	Code   string `json:"code"`
	Output string `json:"output"`
}

// Lesson is the teaching content for one subtopic.
type Lesson struct {
	Title string        `json:"title"`
	Intro string        `json:"intro"`
	Codes []CodeExample `json:"codes"`
}

// Topic groups related subtopics under one heading.
type Topic struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Icon      string   `json:"icon"`
	Subtopics []string `json:"subtopics"`
}

var topics = []Topic{
	{
		ID:        "basics",
		Title:     "Basics of Programming",
		Icon:      "⚡",
		Subtopics: []string{"Loops", "Operators", "Conditional Statements", "Functions", "Time Complexity"},
	},
	{
		ID:        "arrays",
		Title:     "Arrays & Vectors",
		Icon:      "📦",
		Subtopics: []string{"Linear Search", "Largest Element", "Reverse an Array", "Second Largest", "2D Arrays (Matrices)"},
	},
	{
		ID:        "strings",
		Title:     "Strings",
		Icon:      "📝",
		Subtopics: []string{"ASCII & Characters", "Reverse a String", "Palindrome Check", "String Functions", "Anagram Check"},
	},
	{
		ID:        "recursion",
		Title:     "Recursion",
		Icon:      "🔄",
		Subtopics: []string{"Print 1 to N", "Factorial of N", "Fibonacci Series", "Reverse Array", "Check Palindrome"},
	},
	{
		ID:        "hashing",
		Title:     "Hashing",
		Icon:      "🔑",
		Subtopics: []string{"Frequency Counting", "HashMap & Sets", "Highest/Lowest Frequency", "Collision Handling"},
	},
	{
		ID:        "sorting",
		Title:     "Sorting Algorithms",
		Icon:      "📊",
		Subtopics: []string{"Bubble Sort", "Selection Sort", "Insertion Sort", "Merge Sort", "Quick Sort"},
	},
	{
		ID:        "trees",
		Title:     "Trees",
		Icon:      "🌳",
		Subtopics: []string{"Binary Tree Representation", "Traversals", "Level Order", "Height of Tree", "BST"},
	},
	{
		ID:        "graphs",
		Title:     "Graphs",
		Icon:      "🕸️",
		Subtopics: []string{"Adjacency Matrix", "BFS", "DFS", "Cycle Detection", "Shortest Path"},
	},
	{
		ID:        "dp",
		Title:     "Dynamic Programming",
		Icon:      "🧠",
		Subtopics: []string{"Intro to DP", "Memoization", "Climbing Stairs", "Frog Jump", "Knapsack"},
	},
}

// lessons is keyed by topic ID, then by 1-based subtopic number matching the
// order in the topic's Subtopics slice.
var lessons = map[string]map[int]Lesson{
	"basics": {
		1: {
			Title: "Loops",
			Intro: "🔄 Loops are control structures that define a block of code to be repeated until a specific condition is met. They are essential for automating repetitive tasks. Use a for loop when you know exactly how many times to iterate, and a while loop when you want to repeat until a condition changes.",
			Codes: []CodeExample{
				{
					Name:   "For Loop",
					Code:   "for (int i = 0; i < 5; i++) {\n    cout << \"Count: \" << i << endl;\n}",
					Output: "Count: 0\nCount: 1\nCount: 2\nCount: 3\nCount: 4",
				},
				{
					Name:   "Nested Loop",
					Code:   "for (int i = 1; i <= 3; i++) {\n    for (int j = 1; j <= 2; j++) {\n        cout << i << \" \" << j << endl; \n    }\n}",
					Output: "1 1\n1 2\n2 1\n2 2\n3 1\n3 2",
				},
				{
					Name:   "While Loop",
					Code:   "int i = 0;\nwhile (i < 3) {\n    cout << \"Value: \" << i << endl;\n    i++;\n}",
					Output: "Value: 0\nValue: 1\nValue: 2",
				},
			},
		},
	},
	"arrays": {
		1: {
			Title: "Linear Search",
			Intro: "🔍 Linear search walks the array from the first element to the last, comparing each element with the target. It runs in O(n) time and needs no preprocessing, which makes it the right tool for small or unsorted data.",
			Codes: []CodeExample{
				{
					Name:   "Linear Search",
					Code:   "int arr[] = {4, 2, 7, 1, 9};\nint target = 7;\nfor (int i = 0; i < 5; i++) {\n    if (arr[i] == target) {\n        cout << \"Found at index \" << i << endl;\n        break;\n    }\n}",
					Output: "Found at index 2",
				},
			},
		},
	},
	"strings": {
		2: {
			Title: "Reverse a String",
			Intro: "📝 Reversing a string swaps characters from both ends moving toward the middle. The two-pointer technique does this in place in O(n) time with O(1) extra space.",
			Codes: []CodeExample{
				{
					Name:   "Two Pointers",
					Code:   "string s = \"craft\";\nint l = 0, r = s.size() - 1;\nwhile (l < r) {\n    swap(s[l], s[r]);\n    l++;\n    r--;\n}\ncout << s << endl;",
					Output: "tfarc",
				},
			},
		},
	},
}

// Topics returns every catalog topic in display order.
func Topics() []Topic {
	return topics
}

// Get returns the topic with the given ID.
func Get(topicID string) (Topic, bool) {
	for _, t := range topics {
		if t.ID == topicID {
			return t, true
		}
	}
	return Topic{}, false
}

// GetLesson returns the lesson for the given topic and 1-based subtopic
// number. Subtopics without authored lessons yet return false.
func GetLesson(topicID string, subtopic int) (Lesson, bool) {
	byNum, ok := lessons[topicID]
	if !ok {
		return Lesson{}, false
	}
	lesson, ok := byNum[subtopic]
	return lesson, ok
}
