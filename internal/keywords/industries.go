package keywords

import (
	"sort"
	"strings"
)

// Predefined vocabularies by industry, used to seed extraction when the
// caller knows what field a document belongs to.
var industryKeywords = map[string][]string{
	"software_development": {
		"Python", "Java", "JavaScript", "React", "Angular", "Vue.js",
		"Node.js", "Django", "Flask", "Spring", "Docker", "Kubernetes",
		"AWS", "Azure", "GCP", "Git", "GitHub", "CI/CD", "Agile",
		"Scrum", "REST API", "GraphQL", "SQL", "NoSQL", "MongoDB",
		"PostgreSQL", "MySQL", "Redis", "Microservices", "DevOps",
	},
	"data_science": {
		"Python", "R", "SQL", "Pandas", "NumPy", "Matplotlib",
		"Seaborn", "Scikit-learn", "TensorFlow", "PyTorch", "Keras",
		"Jupyter", "Tableau", "Power BI", "Apache Spark", "Hadoop",
		"Machine Learning", "Deep Learning", "Neural Networks",
		"Statistical Analysis", "Data Visualization", "ETL", "Big Data",
	},
	"marketing": {
		"Digital Marketing", "SEO", "SEM", "Google Ads", "Facebook Ads",
		"Social Media Marketing", "Content Marketing", "Email Marketing",
		"Marketing Automation", "Analytics", "Google Analytics",
		"Conversion Optimization", "Brand Management", "Market Research",
		"Customer Acquisition", "Lead Generation", "CRM", "Salesforce",
	},
}

// IndustryKeywords returns the predefined vocabulary for an industry, or nil
// for an unknown one. Lookup is case-insensitive.
func IndustryKeywords(industry string) []string {
	return industryKeywords[strings.ToLower(industry)]
}

// Industries lists the industries with a predefined vocabulary.
func Industries() []string {
	names := make([]string, 0, len(industryKeywords))
	for name := range industryKeywords {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// UseIndustryTerms adds an industry's vocabulary to this extractor's known
// terms. Unknown industries add nothing.
func (e *Extractor) UseIndustryTerms(industry string) {
	e.AddCustomTerms(IndustryKeywords(industry)...)
}

// AddCustomTerms adds caller-supplied terms to this extractor's known terms.
// Terms are preprocessed the same way as document text so punctuated forms
// like "CI/CD" still match.
func (e *Extractor) AddCustomTerms(terms ...string) {
	for _, term := range terms {
		if cleaned := preprocess(term); cleaned != "" {
			e.extraTerms = append(e.extraTerms, cleaned)
		}
	}
}
