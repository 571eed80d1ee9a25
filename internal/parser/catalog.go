package parser

// technologyCatalog is the closed vocabulary the heuristic path scans for.
// Token order inside a group is the output order. Matching is whole-word and
// case-insensitive, so tokens ending in symbols (C#, C++) will not match; the
// catalogue keeps them anyway for the day word boundaries get smarter.
var technologyCatalog = []struct {
	Group  string
	Tokens []string
}{
	{"languages", []string{"Node.js", "Node", "Python", "Java", "JavaScript", "PHP", "C#", "C++", "Go", "Ruby", "Swift", "Kotlin"}},
	{"frameworks", []string{"NestJS", "Spring Boot", "Laravel", "Express", "Django", "Flask", "React", "Vue", "Angular"}},
	{"apis", []string{"REST", "GraphQL", "SOAP"}},
	{"architecture", []string{"Microservices", "Monolith", "Event Driven", "Serverless"}},
	{"databases", []string{"PostgreSQL", "MySQL", "MongoDB", "Oracle", "SQL Server", "Redis", "Cassandra", "Elasticsearch"}},
	{"cloud", []string{"AWS", "Azure", "GCP", "Google Cloud", "Amazon Web Services", "Microsoft Azure", "DigitalOcean", "Heroku"}},
	{"tools", []string{"Docker", "CI/CD", "Git", "Kubernetes", "Jenkins", "GitLab", "GitHub Actions", "Terraform"}},
	{"methodologies", []string{"Agile", "Scrum", "DevOps", "TDD", "Test Driven Development"}},
}
