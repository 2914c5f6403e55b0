package classification

import "github.com/Veraticus/sift/internal/model"

// registry is the fixed category table. Others must stay last: it is the lookup fallback
// and carries no keywords, so scoring never selects it.
var registry = []model.CategoryConfig{
	{
		Name: model.CategoryEducation,
		Keywords: []string{
			"school", "university", "student", "teacher", "course", "lecture",
			"exam", "homework", "study", "research", "thesis", "academic",
			"learning", "education", "curriculum", "syllabus", "grade", "degree",
			"professor", "college", "tutorial", "lesson", "training", "classroom",
			"scholarship", "diploma", "assignment", "textbook", "library",
		},
		Icon:  "📚",
		Color: "category-education",
	},
	{
		Name: model.CategoryFinance,
		Keywords: []string{
			"bank", "money", "investment", "stock", "budget", "tax", "revenue",
			"profit", "loss", "expense", "income", "salary", "payment", "loan",
			"credit", "debit", "financial", "accounting", "audit", "fund",
			"portfolio", "dividend", "interest", "mortgage", "insurance",
			"transaction", "balance", "asset", "liability", "equity",
		},
		Icon:  "💰",
		Color: "category-finance",
	},
	{
		Name: model.CategoryHealth,
		Keywords: []string{
			"health", "medical", "doctor", "patient", "hospital", "medicine",
			"treatment", "diagnosis", "symptom", "disease", "therapy", "surgery",
			"nurse", "clinic", "prescription", "vaccine", "fitness", "nutrition",
			"mental", "wellness", "healthcare", "pharmacy", "dental", "cardiac",
			"blood", "vitamin", "exercise", "diet", "allergy", "infection",
		},
		Icon:  "🏥",
		Color: "category-health",
	},
	{
		Name: model.CategoryTechnology,
		Keywords: []string{
			"software", "hardware", "computer", "programming", "code", "algorithm",
			"data", "database", "network", "server", "cloud", "api", "web",
			"mobile", "app", "developer", "engineering", "ai", "machine",
			"learning", "automation", "cybersecurity", "blockchain", "iot",
			"digital", "tech", "system", "framework", "deployment", "debug",
		},
		Icon:  "💻",
		Color: "category-technology",
	},
	{
		Name:     model.CategoryOthers,
		Keywords: []string{},
		Icon:     "📁",
		Color:    "category-others",
	},
}

// Categories returns a copy of the category registry in registry order.
func Categories() []model.CategoryConfig {
	out := make([]model.CategoryConfig, len(registry))
	for i, c := range registry {
		out[i] = copyConfig(c)
	}
	return out
}

// GetCategoryConfig returns the configuration for name. Names outside the registry resolve
// to the last entry (Others); valid category names never take that path.
func GetCategoryConfig(name model.CategoryName) model.CategoryConfig {
	for _, c := range registry {
		if c.Name == name {
			return copyConfig(c)
		}
	}
	return copyConfig(registry[len(registry)-1])
}

func copyConfig(c model.CategoryConfig) model.CategoryConfig {
	c.Keywords = append([]string{}, c.Keywords...)
	return c
}
