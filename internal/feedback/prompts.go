package feedback

import (
	"fmt"
	"strings"
)

func feedbackPrompt(job JobProfile, pairs []QAPair) string {
	jobTitle := job.Title
	if strings.TrimSpace(jobTitle) == "" {
		jobTitle = "N/A"
	}

	var qa strings.Builder
	for i, pair := range pairs {
		fmt.Fprintf(&qa, "Question %d: %s\n", i+1, pair.Question)
		fmt.Fprintf(&qa, "Answer %d: %s\n\n", i+1, pair.Answer)
	}

	if len(pairs) == 1 {
		return fmt.Sprintf(`As a highly 10x expert experienced interviewer evaluating a candidate for the role of "%s", review the following interview answer in depth.

Job Overview:

    Title: %s

    Summary: %s

    Key Skills Required: %s

Interview Response:
%s
Provide a detailed, structured critique of the candidate's response, reflecting the expectations for this role. Begin with a brief overall impression, then naturally elaborate on what the candidate did well, what was lacking, and how the answer could be improved, all embedded smoothly in a single narrative.

Focus your evaluation on relevance, clarity, technical depth, alignment with the role, and best practices in the field. Do not label sections (e.g., no "Strengths" or "Weaknesses"). Just write a flowing, constructive analysis with clear reasoning and specific, actionable insights.`,
			jobTitle, jobTitle, job.Description, job.skillList(), qa.String())
	}

	return fmt.Sprintf(`You are a 10x expert experienced interviewer assessing a candidate for the role of "%s".

Role Overview:

    Title: %s

    Description: %s

    Key Skills: %s

Candidate's Responses to %d Interview Questions:
%s
Based on the full interview, write a detailed, thoughtful evaluation of the candidate's overall performance. Assess their strengths, weaknesses, and fit for the role, weaving all insights into a single, flowing narrative. Avoid listing or labeling sections. Deliver clear, specific, and actionable feedback as a unified analysis.

Consider depth of experience, clarity of communication, alignment with job expectations, and industry standards. Finish with a brief, reasoned hiring recommendation embedded naturally in the summary.`,
		jobTitle, jobTitle, job.Description, job.skillList(), len(pairs), qa.String())
}
