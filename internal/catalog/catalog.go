// Package catalog holds the static technical-skill taxonomy. The directory
// never validates swap skills against it; it only serves as a browse and
// search corpus for callers picking skill names.
package catalog

import (
	"sort"
	"strings"
)

type Category struct {
	Name   string
	Skills []string
}

var categories = []Category{
	{Name: "Programming Languages", Skills: []string{
		"Python", "JavaScript", "TypeScript", "Java", "C++", "C#", "C", "Go", "Rust",
		"Swift", "Kotlin", "Scala", "Ruby", "PHP", "R", "Julia", "Dart", "Elixir",
		"Haskell", "Lua", "Bash",
	}},
	{Name: "Web Development", Skills: []string{
		"HTML5", "CSS3", "SASS", "Bootstrap", "Tailwind CSS", "React", "Vue.js",
		"Angular", "Svelte", "Next.js", "Node.js", "Express.js", "NestJS", "Django",
		"Flask", "FastAPI", "Ruby on Rails", "Laravel", "Spring Boot", "Gin", "Echo",
		"Fiber",
	}},
	{Name: "Mobile Development", Skills: []string{
		"React Native", "Flutter", "iOS Development", "Android Development",
		"SwiftUI", "Jetpack Compose", "Kotlin Multiplatform", "Progressive Web Apps",
	}},
	{Name: "Databases", Skills: []string{
		"MySQL", "PostgreSQL", "SQLite", "MongoDB", "Cassandra", "Redis",
		"Elasticsearch", "Neo4j", "InfluxDB", "Firebase Firestore", "Supabase",
		"Prisma", "SQLAlchemy", "Hibernate",
	}},
	{Name: "Cloud Platforms", Skills: []string{
		"Amazon Web Services (AWS)", "Microsoft Azure", "Google Cloud Platform",
		"DigitalOcean", "Heroku", "Vercel", "Netlify", "Fly.io", "AWS Lambda",
		"Cloudflare Workers",
	}},
	{Name: "DevOps & Infrastructure", Skills: []string{
		"Docker", "Kubernetes", "Jenkins", "GitLab CI/CD", "GitHub Actions",
		"Ansible", "Terraform", "Pulumi", "Vagrant", "Consul", "Vault",
		"Prometheus", "Grafana", "ELK Stack", "Datadog",
	}},
	{Name: "Data Science & Analytics", Skills: []string{
		"Machine Learning", "Deep Learning", "Natural Language Processing",
		"Computer Vision", "Data Analysis", "Statistical Analysis",
		"Data Visualization", "ETL Processes", "TensorFlow", "PyTorch",
		"Scikit-learn", "Pandas", "NumPy", "Tableau", "Power BI", "Apache Spark",
		"Apache Kafka", "Apache Airflow", "Jupyter Notebooks",
	}},
	{Name: "Cybersecurity", Skills: []string{
		"Penetration Testing", "Vulnerability Assessment", "Network Security",
		"Web Security", "Cloud Security", "Incident Response", "Digital Forensics",
		"Cryptography", "SIEM", "Ethical Hacking", "Security Auditing", "Wireshark",
		"Burp Suite", "Nmap", "OWASP",
	}},
	{Name: "Game Development", Skills: []string{
		"Unity", "Unreal Engine", "Godot", "Three.js", "OpenGL", "WebGL",
		"Game Design", "Level Design", "3D Modeling", "Animation",
		"Shader Programming", "Physics Simulation", "AI for Games",
		"Multiplayer Networking",
	}},
	{Name: "AI & Machine Learning", Skills: []string{
		"Artificial Intelligence", "Machine Learning", "Deep Learning",
		"Neural Networks", "Transformers", "Generative AI", "Large Language Models",
		"Reinforcement Learning", "MLOps", "Model Deployment", "Hugging Face",
		"LangChain", "Vector Databases", "Prompt Engineering",
	}},
	{Name: "Blockchain & Web3", Skills: []string{
		"Blockchain Development", "Smart Contracts", "Solidity", "Ethereum",
		"Web3.js", "Hardhat", "DeFi", "NFTs", "Cryptocurrency", "IPFS",
	}},
	{Name: "Testing & QA", Skills: []string{
		"Unit Testing", "Integration Testing", "End-to-End Testing",
		"Performance Testing", "Load Testing", "Security Testing",
		"Test Automation", "Selenium", "Cypress", "Playwright", "Jest", "JUnit",
		"PyTest", "Postman", "JMeter",
	}},
	{Name: "System Administration", Skills: []string{
		"Linux Administration", "Windows Server", "Network Administration",
		"DNS Management", "Active Directory", "Virtualization", "VMware",
		"Backup Solutions", "Disaster Recovery", "Monitoring", "Shell Scripting",
		"PowerShell", "VPN Setup",
	}},
	{Name: "Design & UX", Skills: []string{
		"UI/UX Design", "User Research", "Wireframing", "Prototyping",
		"User Testing", "Interaction Design", "Visual Design", "Design Systems",
		"Accessibility Design", "Responsive Design", "Adobe Creative Suite",
		"Figma", "Sketch", "Canva", "Inkscape",
	}},
	{Name: "Project Management", Skills: []string{
		"Agile Methodology", "Scrum", "Kanban", "Project Management",
		"Product Management", "Requirements Analysis", "Risk Management",
		"Team Leadership", "Technical Writing", "Jira", "Confluence", "Notion",
	}},
	{Name: "Emerging Technologies", Skills: []string{
		"Internet of Things (IoT)", "Edge Computing", "Quantum Computing",
		"Augmented Reality", "Virtual Reality", "Robotics", "Microservices",
		"Serverless Architecture", "Event-Driven Architecture", "API Design",
		"GraphQL", "gRPC", "WebAssembly", "Headless CMS",
	}},
}

// ByCategory returns the taxonomy grouped by category, in catalog order.
func ByCategory() []Category {
	out := make([]Category, len(categories))
	for i, c := range categories {
		out[i] = Category{Name: c.Name, Skills: append([]string(nil), c.Skills...)}
	}
	return out
}

// All returns every skill name once, sorted. Skills appearing under several
// categories (Machine Learning, Deep Learning, ...) collapse to one entry.
func All() []string {
	seen := map[string]bool{}
	out := []string{}
	for _, c := range categories {
		for _, skill := range c.Skills {
			if seen[skill] {
				continue
			}
			seen[skill] = true
			out = append(out, skill)
		}
	}
	sort.Strings(out)
	return out
}

// Search returns all skills containing query, case-insensitively.
func Search(query string) []string {
	q := strings.ToLower(query)
	out := []string{}
	for _, skill := range All() {
		if strings.Contains(strings.ToLower(skill), q) {
			out = append(out, skill)
		}
	}
	return out
}
