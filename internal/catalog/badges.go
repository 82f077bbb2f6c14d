package catalog

import "cyberguard-academy/internal/domain"

// Badges returns the achievement catalog. Conditions are display text; no
// runtime logic evaluates them.
func Badges() []domain.Badge {
	return []domain.Badge{
		{
			ID:          "phishing-fighter",
			Name:        "Phishing Fighter",
			Description: "Complete 5 phishing-related quizzes",
			Icon:        "shield-check",
			Condition:   "Complete 5 phishing quizzes",
		},
		{
			ID:          "password-guardian",
			Name:        "Password Guardian",
			Description: "Master password security fundamentals",
			Icon:        "lock",
			Condition:   "Score 90%+ on password quiz",
		},
		{
			ID:          "streak-master",
			Name:        "Streak Master",
			Description: "Maintain a 7-day learning streak",
			Icon:        "flame",
			Condition:   "Complete quizzes for 7 consecutive days",
		},
		{
			ID:          "cyber-guru",
			Name:        "Cyber Guru",
			Description: "Reach level 10 in your cyber journey",
			Icon:        "crown",
			Condition:   "Reach level 10",
		},
		{
			ID:          "social-engineer-detector",
			Name:        "Social Engineer Detector",
			Description: "Excel at identifying social engineering tactics",
			Icon:        "eye",
			Condition:   "Score 95%+ on social engineering quiz",
		},
		{
			ID:          "network-defender",
			Name:        "Network Defender",
			Description: "Master network security concepts",
			Icon:        "wifi",
			Condition:   "Complete all network security quizzes",
		},
		{
			ID:          "code-warrior",
			Name:        "Code Warrior",
			Description: "Understand secure coding practices",
			Icon:        "code",
			Condition:   "Score 90%+ on secure coding quiz",
		},
		{
			ID:          "threat-hunter",
			Name:        "Threat Hunter",
			Description: "Identify various malware types",
			Icon:        "search",
			Condition:   "Complete malware identification challenges",
		},
	}
}
