package api

import (
	"net/http"

	"github.com/skillwisehq/skillswap/internal/services"
)

type seedAccount struct {
	name         string
	email        string
	password     string
	location     string
	avatarURL    string
	offered      []string
	wanted       []string
	availability string
	isPublic     bool
}

var seedAccounts = []seedAccount{
	{
		name: "Sakshi", email: "sakshi@skillwise.in", password: "password123",
		location:  "Mumbai, Maharashtra",
		avatarURL: "https://images.pexels.com/photos/415829/pexels-photo-415829.jpeg",
		offered:   []string{"Python", "Machine Learning", "Django", "PostgreSQL", "AWS", "Docker"},
		wanted:    []string{"Kubernetes", "Go", "Rust", "Blockchain Development", "GraphQL"},
		availability: "Weekends, Evenings", isPublic: true,
	},
	{
		name: "Yashpal", email: "yashpal@skillwise.in", password: "password123",
		location:  "Bangalore, Karnataka",
		avatarURL: "https://images.pexels.com/photos/1040880/pexels-photo-1040880.jpeg",
		offered:   []string{"JavaScript", "TypeScript", "React", "Node.js", "GraphQL", "MongoDB", "Docker"},
		wanted:    []string{"Python", "Machine Learning", "TensorFlow", "Rust"},
		availability: "Weekdays, Mornings", isPublic: true,
	},
	{
		name: "Ayan", email: "ayan@skillwise.in", password: "password123",
		location:  "Delhi, NCR",
		avatarURL: "https://images.pexels.com/photos/1130626/pexels-photo-1130626.jpeg",
		offered:   []string{"UI/UX Design", "Figma", "Prototyping", "User Research", "Design Systems", "CSS3"},
		wanted:    []string{"React", "Vue.js", "JavaScript", "Tailwind CSS", "Next.js"},
		availability: "Weekends, Afternoons", isPublic: true,
	},
	{
		name: "Akshay", email: "akshay@skillwise.in", password: "password123",
		location:  "Hyderabad, Telangana",
		avatarURL: "https://images.pexels.com/photos/1222271/pexels-photo-1222271.jpeg",
		offered:   []string{"Java", "Spring Boot", "Microservices", "Apache Kafka", "Redis", "MySQL", "Terraform"},
		wanted:    []string{"Go", "Rust", "Kubernetes", "Prometheus"},
		availability: "Weekdays, Evenings", isPublic: false,
	},
	{
		name: "Tina", email: "tina@skillwise.in", password: "password123",
		location:  "Pune, Maharashtra",
		avatarURL: "https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg",
		offered:   []string{"Penetration Testing", "Network Security", "Incident Response", "SIEM", "Ethical Hacking"},
		wanted:    []string{"Cloud Security", "Mobile Security", "DevSecOps"},
		availability: "Weekends, Mornings", isPublic: true,
	},
	{
		name: "Lakshya", email: "lakshya@skillwise.in", password: "password123",
		location:  "Gurgaon, Haryana",
		avatarURL: "https://images.pexels.com/photos/1181686/pexels-photo-1181686.jpeg",
		offered:   []string{"Data Analysis", "Python", "R", "Statistical Analysis", "Pandas", "Tableau", "Apache Spark"},
		wanted:    []string{"MLOps", "Apache Airflow", "Kubernetes", "Docker", "Deep Learning"},
		availability: "Weekdays, Afternoons", isPublic: true,
	},
}

// Seed loads the demonstration data set: six profiles, a handful of
// feedback entries, and three swap requests with one already accepted.
// Calling it twice reports duplicate_email on the first account.
func (rt *Router) Seed() error {
	for _, sa := range seedAccounts {
		a, err := rt.auth.Register(sa.name, sa.email, sa.password)
		if err != nil {
			return err
		}
		sess := &services.Session{AccountID: a.ID, Email: a.Email}
		if _, err := rt.profiles.Update(sess, map[string]any{
			"location":       sa.location,
			"avatar_url":     sa.avatarURL,
			"skills_offered": sa.offered,
			"skills_wanted":  sa.wanted,
			"availability":   sa.availability,
			"is_public":      sa.isPublic,
		}); err != nil {
			return err
		}
	}

	session := func(email string) *services.Session {
		a := rt.store.FindAccountByEmail(email)
		return &services.Session{AccountID: a.ID, Email: a.Email, IsAdmin: a.IsAdmin}
	}

	type seedFeedback struct {
		from, to string
		rating   int
		comment  string
	}
	for _, f := range []seedFeedback{
		{"yashpal@skillwise.in", "sakshi@skillwise.in", 5, "Excellent Python and ML mentor!"},
		{"ayan@skillwise.in", "sakshi@skillwise.in", 4, "Great Django walkthrough, learned clean architecture patterns."},
		{"sakshi@skillwise.in", "yashpal@skillwise.in", 5, "Amazing React and TypeScript guidance, very thorough."},
		{"sakshi@skillwise.in", "ayan@skillwise.in", 4, "Helpful with design systems, improved our app a lot."},
		{"sakshi@skillwise.in", "tina@skillwise.in", 5, "Solid security knowledge sharing."},
	} {
		if _, err := rt.feedback.Submit(session(f.from), f.to, f.rating, f.comment); err != nil {
			return err
		}
	}

	accepted, err := rt.swaps.Create(session("sakshi@skillwise.in"), "yashpal@skillwise.in",
		"Python", "JavaScript", "I'd love to learn modern JavaScript from you, Python and ML in return!")
	if err != nil {
		return err
	}
	if _, err := rt.swaps.Respond(session("yashpal@skillwise.in"), accepted.ID, true); err != nil {
		return err
	}
	if _, err := rt.swaps.Create(session("ayan@skillwise.in"), "sakshi@skillwise.in",
		"UI/UX Design", "Machine Learning", "Would you trade design lessons for ML concepts?"); err != nil {
		return err
	}
	if _, err := rt.swaps.Create(session("tina@skillwise.in"), "yashpal@skillwise.in",
		"Ethical Hacking", "Node.js", "I can teach security best practices, help me with Node.js?"); err != nil {
		return err
	}
	return nil
}

// POST /api/seed
func (rt *Router) handleSeed(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := rt.Seed(); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "accounts": len(seedAccounts)})
}
