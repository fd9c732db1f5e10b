package jobs

import (
	"fmt"
	"strings"
)

func descriptionPrompt(title, company string, skills []string, jobLevel, jobType, location string) string {
	skillsStr := "Not specified"
	if len(skills) > 0 {
		skillsStr = strings.Join(skills, ", ")
	}

	return fmt.Sprintf(`Generate a job description for %s at %s (%s, %s, %s).

Required skills: %s

Use ONLY these sections in markdown format:
## About Us
## Job Summary
## Responsibilities
## Qualifications
## Preferred Qualifications
## What We Offer

Return only the formatted description. DO NOT INCLUDE markdown backticks.`,
		title, company, jobLevel, jobType, location, skillsStr)
}

func listingsPrompt(query string, techSkills []string, jobLevel string, limit int) string {
	skillsInstruction := "Generate an array of 5-8 relevant technical skills."
	skillsCriteria := "'Not specified (please generate)'"
	if len(techSkills) > 0 {
		joined := strings.Join(techSkills, ", ")
		skillsInstruction = fmt.Sprintf("Array of 5-8 relevant technical skills. Must include: %s.", joined)
		skillsCriteria = "'" + joined + "'"
	}

	level := jobLevel
	if level == "" {
		level = "Not specified"
	}

	return fmt.Sprintf(`Generate %d realistic technical job listings for "%s" query.
Skills: %s
Level: "%s"

JSON array with %d jobs. Each job:
- title: Job title for "%s"
- company: Tech company name
- location: City, state format
- description: Use ONLY these markdown sections: ## About Us, ## Job Summary, ## Responsibilities, ## Qualifications, ## Preferred Qualifications, ## What We Offer
- skills: %s
- job_level: "Entry", "Associate", "Mid-Senior", "Senior", or "Executive"
- job_type: "Remote", "Onsite", or "Hybrid"
- job_link: "%s"
- first_seen: Today's date YYYY-MM-DD

Return only the JSON array.`,
		limit, query, skillsCriteria, level, limit, query, skillsInstruction, generatedJobLink)
}
