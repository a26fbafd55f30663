package extractor

// Process-wide vocabulary tables. Loaded once, never mutated; extraction is
// plain substring containment against these entries.
var skillKeywords = []string{
	"python", "javascript", "java", "react", "node.js", "angular", "vue",
	"postgresql", "mysql", "mongodb", "redis", "docker", "kubernetes",
	"aws", "azure", "gcp", "git", "github", "jenkins", "ci/cd",
	"html", "css", "sass", "typescript", "php", "ruby", "go", "rust",
	"machine learning", "ai", "tensorflow", "pytorch", "pandas", "numpy",
}

var jobTitleKeywords = []string{
	"software engineer", "developer", "programmer", "full stack",
	"frontend", "backend", "devops", "data scientist", "ml engineer",
	"product manager", "project manager", "team lead", "architect",
}
