package jobs

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BuildSearchFilter composes the MongoDB filter for a job search: a phrase
// text match on the collection's text index, plus optional case-insensitive
// regex conditions on job level and skills. Conditions are ANDed only when
// more than one is present.
func BuildSearchFilter(query string, techSkills []string, jobLevel string) bson.M {
	conditions := []bson.M{
		{"$text": bson.M{"$search": `"` + query + `"`}},
	}

	if jobLevel != "" {
		conditions = append(conditions, bson.M{
			"job level": primitive.Regex{Pattern: jobLevel, Options: "i"},
		})
	}

	if len(techSkills) > 0 {
		escaped := make([]string, 0, len(techSkills))
		for _, skill := range techSkills {
			escaped = append(escaped, regexp.QuoteMeta(skill))
		}
		conditions = append(conditions, bson.M{
			"job_skills": primitive.Regex{Pattern: strings.Join(escaped, "|"), Options: "i"},
		})
	}

	if len(conditions) == 1 {
		return conditions[0]
	}
	return bson.M{"$and": conditions}
}
