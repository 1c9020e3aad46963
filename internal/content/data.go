package content

import "github.com/shindakun/ethicstraining/internal/models"

var modules = []models.Module{
	{
		ID:          "1",
		Title:       "Introduction to Federal Ethics",
		Description: "Core principles of ethical conduct for executive branch employees.",
		Duration:    "30 min",
		Lessons:     4,
		Topics:      []string{"14 Principles of Ethical Conduct", "Public trust", "Who to ask"},
		Required:    true,
	},
	{
		ID:          "2",
		Title:       "Gifts from Outside Sources",
		Description: "When you may and may not accept gifts, and the common exceptions.",
		Duration:    "25 min",
		Lessons:     3,
		Topics:      []string{"$20 rule", "Widely attended gatherings", "Gifts between employees"},
		Required:    true,
	},
	{
		ID:          "3",
		Title:       "Conflicts of Interest",
		Description: "Financial interests, impartiality, and recusal obligations.",
		Duration:    "35 min",
		Lessons:     5,
		Topics:      []string{"18 U.S.C. 208", "Covered relationships", "Recusal"},
		Required:    true,
	},
	{
		ID:          "4",
		Title:       "Hatch Act and Political Activity",
		Description: "Permitted and prohibited political activities on and off duty.",
		Duration:    "20 min",
		Lessons:     3,
		Topics:      []string{"Less restricted employees", "Social media", "Fundraising"},
		Required:    false,
	},
	{
		ID:          "5",
		Title:       "Misuse of Position and Government Resources",
		Description: "Using official time, property, and nonpublic information properly.",
		Duration:    "20 min",
		Lessons:     3,
		Topics:      []string{"Official time", "Government property", "Nonpublic information"},
		Required:    false,
	},
}

var quiz = []models.QuizQuestion{
	{
		ID:       "q1",
		ModuleID: "2",
		Question: "A contractor offers you a $15 coffee gift card. May you accept it?",
		Options: []string{
			"Yes, gifts of $20 or less per occasion are generally permitted",
			"No, employees may never accept gifts",
			"Only if your supervisor approves in writing",
			"Only if you pay the contractor back later",
		},
		CorrectAnswer: 0,
		Explanation:   "The de minimis exception allows gifts of $20 or less per source per occasion, up to $50 per year.",
	},
	{
		ID:       "q2",
		ModuleID: "3",
		Question: "You own stock in a company whose permit application you are reviewing. What should you do?",
		Options: []string{
			"Continue the review but disclose the holding afterwards",
			"Recuse yourself and consult an ethics official",
			"Sell the stock after the review is complete",
			"Nothing, as long as the holding is small",
		},
		CorrectAnswer: 1,
		Explanation:   "A financial interest in a party to a matter requires recusal unless an exemption or waiver applies.",
	},
	{
		ID:       "q3",
		ModuleID: "4",
		Question: "May you post a campaign endorsement on social media while on duty?",
		Options: []string{
			"Yes, if using a personal account",
			"Yes, if the post is deleted the same day",
			"No, political activity on duty is prohibited",
			"Only during lunch breaks",
		},
		CorrectAnswer: 2,
		Explanation:   "The Hatch Act prohibits political activity while on duty or in a federal building, regardless of the account used.",
	},
	{
		ID:       "q4",
		ModuleID: "5",
		Question: "Which use of your government laptop is generally permitted?",
		Options: []string{
			"Running a personal consulting business",
			"Brief personal email during a break under limited-use policy",
			"Storing files for a relative's company",
			"Mining cryptocurrency overnight",
		},
		CorrectAnswer: 1,
		Explanation:   "Limited personal use policies permit negligible personal use that does not interfere with official duties.",
	},
}

var videos = []models.Video{
	{
		ID:          "v1",
		Title:       "Ethics at EPA: An Overview",
		Description: "A short introduction from the Designated Agency Ethics Official.",
		Duration:    "4:32",
		URL:         "https://example.epa.gov/ethics/videos/overview.mp4",
		Thumbnail:   "https://example.epa.gov/ethics/videos/overview.jpg",
		ModuleID:    "1",
	},
	{
		ID:          "v2",
		Title:       "Accepting Gifts: Real Scenarios",
		Description: "Walkthrough of common gift situations employees encounter.",
		Duration:    "6:10",
		URL:         "https://example.epa.gov/ethics/videos/gifts.mp4",
		Thumbnail:   "https://example.epa.gov/ethics/videos/gifts.jpg",
		ModuleID:    "2",
	},
	{
		ID:          "v3",
		Title:       "When to Recuse",
		Description: "Identifying conflicts of interest before they become violations.",
		Duration:    "5:45",
		URL:         "https://example.epa.gov/ethics/videos/recusal.mp4",
		Thumbnail:   "https://example.epa.gov/ethics/videos/recusal.jpg",
		ModuleID:    "3",
	},
}

var faq = []models.FAQ{
	{
		ID:       "f1",
		Category: "Training",
		Question: "How often must I complete ethics training?",
		Answer:   "Covered employees complete ethics training annually. New employees complete initial training within three months of starting.",
	},
	{
		ID:       "f2",
		Category: "Gifts",
		Question: "Can I accept a free lunch at a conference?",
		Answer:   "Food provided to all attendees as part of a widely attended gathering may be accepted if an ethics official has made the required determination.",
	},
	{
		ID:       "f3",
		Category: "Conflicts",
		Question: "Who do I contact with an ethics question?",
		Answer:   "Contact your office's Deputy Ethics Official or the Office of General Counsel Ethics team.",
	},
	{
		ID:       "f4",
		Category: "Political Activity",
		Question: "Can I display a campaign sticker on my car in a federal lot?",
		Answer:   "Generally yes, a single sticker on a privately owned vehicle is permitted. Contact an ethics official for parking in government-owned vehicles.",
	},
}

var glossary = []models.GlossaryTerm{
	{
		ID:         "g1",
		Term:       "Covered Relationship",
		Definition: "A relationship with a person or organization that may cause a reasonable person to question your impartiality.",
		Reference:  "5 CFR 2635.502",
	},
	{
		ID:         "g2",
		Term:       "De Minimis Gift",
		Definition: "A gift with a market value of $20 or less per source per occasion, not exceeding $50 per year.",
		Reference:  "5 CFR 2635.204(a)",
	},
	{
		ID:         "g3",
		Term:       "Designated Agency Ethics Official (DAEO)",
		Definition: "The official responsible for coordinating and managing the agency's ethics program.",
	},
	{
		ID:         "g4",
		Term:       "Recusal",
		Definition: "Not participating in a particular matter because of a conflict of interest.",
		Reference:  "5 CFR 2635.502(e)",
	},
	{
		ID:         "g5",
		Term:       "Hatch Act",
		Definition: "The law that restricts the political activity of federal employees.",
		Reference:  "5 U.S.C. 7321-7326",
	},
}

var adminUsers = []models.AdminUser{
	{
		User:      models.User{ID: "1", Username: "admin", Name: "EPA Administrator", Email: "admin@epa.gov", Role: "admin"},
		Status:    "active",
		LastLogin: "2024-01-15T09:30:00Z",
		Completed: 5,
	},
	{
		User:      models.User{ID: "2", Username: "jsmith", Name: "Jordan Smith", Email: "jsmith@epa.gov", Role: "employee"},
		Status:    "active",
		LastLogin: "2024-01-14T14:12:00Z",
		Completed: 3,
	},
	{
		User:      models.User{ID: "3", Username: "alee", Name: "Alex Lee", Email: "alee@epa.gov", Role: "ethics_official"},
		Status:    "active",
		LastLogin: "2024-01-12T11:05:00Z",
		Completed: 5,
	},
	{
		User:      models.User{ID: "4", Username: "rpatel", Name: "Riley Patel", Email: "rpatel@epa.gov", Role: "employee"},
		Status:    "inactive",
		Completed: 0,
	},
}
