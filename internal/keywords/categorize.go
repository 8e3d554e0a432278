package keywords

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Categories groups extracted keywords by what they describe.
type Categories struct {
	TechnicalSkills []string `json:"technical_skills"`
	SoftSkills      []string `json:"soft_skills"`
	Tools           []string `json:"tools"`
	Other           []string `json:"other"`
}

var technicalTerms = []string{
	"python", "java", "javascript", "typescript", "react", "angular", "vue",
	"node", "django", "flask", "spring", "docker", "kubernetes", "aws",
	"azure", "gcp", "git", "sql", "nosql", "mongodb", "postgresql", "mysql",
	"redis", "machine learning", "deep learning", "artificial intelligence",
	"data science", "analytics", "statistics", "html", "css", "php", "ruby",
	"go", "golang", "rust", "swift", "kotlin", "scala", "matlab", "sas",
	"spss", "terraform", "graphql", "kafka", "elasticsearch", "linux",
	"microservices", "rest api", "ci cd",
}

var softSkillTerms = []string{
	"leadership", "communication", "teamwork", "problem solving",
	"critical thinking", "creativity", "adaptability", "time management",
	"organization", "collaboration", "mentoring", "negotiation",
}

var toolTerms = []string{
	"jira", "confluence", "slack", "teams", "zoom", "figma", "sketch",
	"photoshop", "illustrator", "excel", "powerpoint", "word", "outlook",
	"tableau", "grafana", "jenkins", "github", "gitlab",
}

var termSets = buildTermSets()

type termSet map[string]struct{}

func buildTermSets() map[string]termSet {
	sets := map[string]termSet{}
	for name, terms := range map[string][]string{
		"technical": technicalTerms,
		"soft":      softSkillTerms,
		"tools":     toolTerms,
	} {
		set := make(termSet, len(terms))
		for _, t := range terms {
			set[t] = struct{}{}
		}
		sets[name] = set
	}
	return sets
}

// knownTerms returns the full vocabulary used for known-term candidate
// extraction, multi-word terms first so phrases are seen before their parts.
func knownTerms() []string {
	terms := make([]string, 0, len(technicalTerms)+len(softSkillTerms)+len(toolTerms))
	for _, group := range [][]string{technicalTerms, softSkillTerms, toolTerms} {
		for _, t := range group {
			if strings.Contains(t, " ") {
				terms = append(terms, t)
			}
		}
	}
	for _, group := range [][]string{technicalTerms, softSkillTerms, toolTerms} {
		for _, t := range group {
			if !strings.Contains(t, " ") {
				terms = append(terms, t)
			}
		}
	}
	return terms
}

// Categorize sorts keywords into skill buckets by vocabulary membership. A
// keyword matches a bucket when its lowercased text contains any term of
// that bucket's vocabulary; the first matching bucket wins, everything else
// lands in Other.
func Categorize(records []types.KeywordRecord) Categories {
	c := Categories{
		TechnicalSkills: []string{},
		SoftSkills:      []string{},
		Tools:           []string{},
		Other:           []string{},
	}

	for _, record := range records {
		text := strings.ToLower(record.Text)
		switch {
		case containsTerm(text, termSets["technical"]):
			c.TechnicalSkills = append(c.TechnicalSkills, record.Text)
		case containsTerm(text, termSets["soft"]):
			c.SoftSkills = append(c.SoftSkills, record.Text)
		case containsTerm(text, termSets["tools"]):
			c.Tools = append(c.Tools, record.Text)
		default:
			c.Other = append(c.Other, record.Text)
		}
	}

	return c
}

// containsTerm reports whether text contains any vocabulary term as a whole
// word or phrase.
func containsTerm(text string, set termSet) bool {
	if _, ok := set[text]; ok {
		return true
	}
	padded := " " + text + " "
	for term := range set {
		if strings.Contains(padded, " "+term+" ") {
			return true
		}
	}
	return false
}
