package parsing

// Static vocabularies for the feature extractor. Keeping these as data
// tables means new skills, sections, or verbs can be added without touching
// the extraction logic.

// skillVocabulary is the controlled list of technology and tooling terms the
// extractor scans for. Matching is case-insensitive with word boundaries;
// entries are kept lowercase.
var skillVocabulary = []string{
	// Programming languages
	"python", "java", "javascript", "typescript", "c++", "c#",
	"ruby", "php", "swift", "kotlin", "go", "golang", "rust", "scala",
	"matlab", "perl", "dart", "objective-c", "bash", "powershell",

	// Web technologies
	"react", "angular", "vue", "vue.js", "svelte", "next.js",
	"node.js", "express", "django", "flask", "fastapi", "spring",
	"asp.net", "laravel", "rails", "ruby on rails",
	"html", "css", "sass", "tailwind", "bootstrap", "jquery", "webpack",

	// Mobile
	"android", "ios", "react native", "flutter", "xamarin", "swiftui",

	// Databases
	"sql", "mysql", "postgresql", "postgres", "mongodb", "redis",
	"elasticsearch", "cassandra", "oracle", "sqlite", "dynamodb",
	"firebase", "mariadb", "neo4j",

	// Cloud and DevOps
	"aws", "azure", "gcp", "google cloud", "docker", "kubernetes", "k8s",
	"jenkins", "terraform", "ansible", "ci/cd", "github actions",
	"gitlab ci", "serverless", "lambda", "ec2", "s3", "nginx", "linux",

	// Version control
	"git", "github", "gitlab", "bitbucket",

	// Data science and ML
	"machine learning", "deep learning", "data science", "nlp",
	"computer vision", "tensorflow", "pytorch", "keras", "scikit-learn",
	"pandas", "numpy", "matplotlib", "opencv", "spacy", "transformers",

	// Testing
	"unit testing", "jest", "pytest", "junit", "selenium", "cypress",

	// Methodologies and practices
	"agile", "scrum", "kanban", "devops", "tdd", "microservices",
	"rest api", "graphql", "oauth", "jwt",

	// Tools
	"jira", "confluence", "postman", "swagger", "apache",
}

// upperSkills lists vocabulary entries displayed in all caps.
var upperSkills = map[string]bool{
	"html": true, "css": true, "sql": true, "aws": true, "gcp": true,
	"nlp": true, "jwt": true, "tdd": true, "ios": true, "s3": true,
	"ec2": true, "ci/cd": true,
}

// sectionSynonyms maps detected header phrases to canonical section names.
// Longer phrases must come before their prefixes are checked, so the table
// is scanned in declaration order.
var sectionSynonyms = []struct {
	Phrase    string
	Canonical string
}{
	{"work experience", "experience"},
	{"professional experience", "experience"},
	{"employment history", "experience"},
	{"experience", "experience"},
	{"education", "education"},
	{"technical skills", "skills"},
	{"skills", "skills"},
	{"summary", "summary"},
	{"professional summary", "summary"},
	{"profile", "summary"},
	{"objective", "summary"},
	{"projects", "projects"},
	{"certifications", "certifications"},
	{"certificates", "certifications"},
}

// actionVerbs are strong leading verbs counted when they open a line.
var actionVerbs = map[string]bool{
	"developed": true, "managed": true, "created": true, "implemented": true,
	"designed": true, "led": true, "improved": true, "increased": true,
	"reduced": true, "achieved": true, "built": true, "launched": true,
	"optimized": true, "analyzed": true, "coordinated": true,
	"collaborated": true, "delivered": true, "executed": true,
	"facilitated": true, "architected": true, "automated": true,
	"migrated": true, "mentored": true,
}

// quantityWords mark a number as a quantified achievement when adjacent.
var quantityWords = []string{
	"percent", "users", "customers", "clients", "requests", "hours",
	"million", "thousand", "records", "deployments", "teams",
}
