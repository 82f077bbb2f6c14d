package catalog

import "cyberguard-academy/internal/domain"

// Scenarios returns the scenario walkthrough catalog. Each item shows an
// artifact to inspect before its question; answers reveal the explanation
// and red-flag list immediately.
func Scenarios() []domain.Scenario {
	return []domain.Scenario{
		{
			ID:          "threat-spotting",
			Title:       "Scenario-Based Training",
			Description: "Practice identifying threats in realistic scenarios",
			Items: []domain.ScenarioItem{
				{
					Kind:        "email",
					Title:       "Suspicious Email Analysis",
					Description: "Analyze this email and determine if it's legitimate or a phishing attempt.",
					Evidence: domain.Evidence{
						"from":    "security@paypaI.com",
						"subject": "URGENT: Your Account Will Be Suspended",
						"body": "Dear Valued Customer,\n\n" +
							"We have detected unusual activity on your account. Your account will be suspended within 24 hours unless you verify your information immediately.\n\n" +
							"Click here to verify: http://paypal-security-verify.com/login\n\n" +
							"Failure to act will result in permanent account closure.\n\n" +
							"Best regards,\nPayPal Security Team",
					},
					Question: domain.Question{
						ID:     "scn-email-1",
						Prompt: "Is this email legitimate?",
						Options: []string{
							"Yes, it's from PayPal security",
							"No, it's a phishing attempt",
							"Unsure, need more information",
							"Yes, but I should call PayPal first",
						},
						CorrectIndex: 1,
						Explanation:  "This is a phishing email. Red flags: misspelled domain (paypaI.com with capital i), urgent language, suspicious URL, and generic greeting.",
						Difficulty:   domain.DifficultyEasy,
					},
					RedFlags: []string{
						"Domain spoofing: \"paypaI.com\" instead of \"paypal.com\"",
						"Urgent threatening language",
						"Suspicious URL not from PayPal",
						"Generic greeting instead of your name",
						"Pressure to act immediately",
					},
				},
				{
					Kind:        "website",
					Title:       "Website Legitimacy Check",
					Description: "You received a link claiming to be from your bank. Examine the URL and page.",
					Evidence: domain.Evidence{
						"url":       "https://secure-bankofamerica-login.net/signin",
						"pageTitle": "Bank of America - Sign In",
						"sslStatus": "Valid SSL Certificate",
						"content":   "Login page looks identical to the real Bank of America site",
					},
					Question: domain.Question{
						ID:     "scn-web-1",
						Prompt: "Should you enter your banking credentials on this site?",
						Options: []string{
							"Yes, it has SSL and looks legitimate",
							"No, the URL is suspicious",
							"Yes, but only after checking the certificate",
							"No, I should go directly to the bank's official site",
						},
						CorrectIndex: 3,
						Explanation:  "Never enter credentials from links. The URL \"secure-bankofamerica-login.net\" is not the official Bank of America domain. Always navigate directly to official sites.",
						Difficulty:   domain.DifficultyMedium,
					},
					RedFlags: []string{
						"Suspicious domain name",
						"Not the official bank URL",
						"Received via link instead of direct navigation",
						"Could be a perfect visual copy (phishing kit)",
					},
				},
			},
		},
	}
}
