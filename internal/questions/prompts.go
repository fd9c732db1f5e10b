package questions

import (
	"fmt"
	"strings"
)

func generationPrompt(jobTitle, jobDescription string, techSkills []string, contextQuestions []StoredQuestion) string {
	var contextBlock strings.Builder
	if len(contextQuestions) > 0 {
		contextBlock.WriteString("For context, here are some existing questions and answers that might be relevant. Use them to understand the style, format, and difficulty, but generate NEW and UNIQUE questions:\n")
		for _, q := range contextQuestions {
			fmt.Fprintf(&contextBlock, "- Question: %s\n- Answer: %s\n\n", q.Question, q.Answer)
		}
	}

	return fmt.Sprintf(`Based on the following job profile, please generate exactly 5 high-quality technical interview questions.
The questions should be suitable for a candidate applying for the role of "%s".

**Job Details:**
- **Title:** %s
- **Description:** %s
- **Key Skills:** %s

%s

**Instructions:**
1.  Generate **exactly 5** technical questions.
2.  The questions must be directly relevant to the job's key skills and description.
3.  Return **ONLY** a valid JSON array of strings, where each string is a question.
4.  **DO NOT** include answers, numbering, or any other text outside of the JSON array.

Example format:
[
    "Can you explain the difference between a deep copy and a shallow copy in Python?",
    "Describe a time you had to optimize a slow database query."
]`,
		jobTitle, jobTitle, jobDescription, strings.Join(techSkills, ", "), contextBlock.String())
}
