// Package seed holds the starter interview question bank.
package seed

import (
	"github.com/careermind/interviewprep/internal/model"
)

// Questions returns a fresh copy of the starter bank on every call.
func Questions() []model.Question {
	return []model.Question{
		// Behavioral
		{
			Question:         "Tell me about a time you had to deal with a difficult team member. How did you handle it?",
			Category:         model.CategoryBehavioral,
			Type:             "STAR",
			Difficulty:       "Medium",
			Tags:             []string{"Communication", "Teamwork", "Conflict Resolution"},
			ExpectedKeywords: []string{"situation", "action", "result", "communication", "resolution"},
		},
		{
			Question:         "Describe a project where you had to learn a new technology quickly. What was your approach?",
			Category:         model.CategoryBehavioral,
			Type:             "STAR",
			Difficulty:       "Medium",
			Tags:             []string{"Learning", "Problem Solving", "Adaptability"},
			ExpectedKeywords: []string{"learning", "research", "practice", "result", "applied"},
		},
		{
			Question:         "Tell me about a time you failed. What did you learn from it?",
			Category:         model.CategoryBehavioral,
			Type:             "STAR",
			Difficulty:       "Medium",
			Tags:             []string{"Resilience", "Growth Mindset", "Learning"},
			ExpectedKeywords: []string{"failure", "learning", "improvement", "reflection", "lesson"},
		},
		{
			Question:         "Describe a situation where you had to work under pressure to meet a deadline.",
			Category:         model.CategoryBehavioral,
			Type:             "STAR",
			Difficulty:       "Medium",
			Tags:             []string{"Time Management", "Pressure Handling", "Prioritization"},
			ExpectedKeywords: []string{"deadline", "prioritize", "communication", "solution", "delivered"},
		},

		// Technical
		{
			Question:         "Explain the difference between SQL and NoSQL databases. When would you use each?",
			Category:         model.CategoryTechnical,
			Type:             "Explanation",
			Difficulty:       "Medium",
			Tags:             []string{"Databases", "Data Structures", "Architecture"},
			ExpectedKeywords: []string{"ACID", "scalability", "flexibility", "relational", "document", "use case"},
		},
		{
			Question:         "What is REST API? Explain its principles and HTTP methods.",
			Category:         model.CategoryTechnical,
			Type:             "Explanation",
			Difficulty:       "Medium",
			Tags:             []string{"APIs", "Web Development", "Backend"},
			ExpectedKeywords: []string{"stateless", "HTTP", "GET", "POST", "PUT", "DELETE", "resource", "URL"},
		},
		{
			Question:         "How does caching work? What are different caching strategies?",
			Category:         model.CategoryTechnical,
			Type:             "Explanation",
			Difficulty:       "Medium",
			Tags:             []string{"Performance", "System Design", "Optimization"},
			ExpectedKeywords: []string{"cache", "LRU", "TTL", "memory", "speed", "hit rate"},
		},
		{
			Question:         "What is the difference between authentication and authorization?",
			Category:         model.CategoryTechnical,
			Type:             "Explanation",
			Difficulty:       "Easy",
			Tags:             []string{"Security", "Authentication", "Web Security"},
			ExpectedKeywords: []string{"authentication", "authorization", "identity", "permissions", "JWT", "OAuth"},
		},

		// System design
		{
			Question:         "Design a URL shortener (like bit.ly). Walk me through your approach.",
			Category:         model.CategorySystemDesign,
			Type:             "Design",
			Difficulty:       "Hard",
			Tags:             []string{"System Design", "Scalability", "Database Design"},
			ExpectedKeywords: []string{"hash", "database", "sharding", "caching", "load balancing", "scalability"},
		},
		{
			Question:         "How would you design a social media feed system that needs to handle millions of users?",
			Category:         model.CategorySystemDesign,
			Type:             "Design",
			Difficulty:       "Hard",
			Tags:             []string{"System Design", "Scalability", "Real-time"},
			ExpectedKeywords: []string{"database", "cache", "queue", "load balancing", "replication", "sharding"},
		},
		{
			Question:         "Design a rate limiter for an API. How would you implement it?",
			Category:         model.CategorySystemDesign,
			Type:             "Design",
			Difficulty:       "Hard",
			Tags:             []string{"System Design", "Security", "Performance"},
			ExpectedKeywords: []string{"token bucket", "sliding window", "Redis", "requests per second", "throttle"},
		},
	}
}
