// Package catalog holds the compile-time training content: quizzes, scenario
// walkthroughs, badges, and the demo accounts. Everything here is read-only;
// loaders in internal/infra serve it behind the same contract a database
// would satisfy.
package catalog

import "cyberguard-academy/internal/domain"

// Quizzes returns the full quiz catalog in display order.
func Quizzes() []domain.Quiz {
	return []domain.Quiz{
		{
			ID:          "phishing-fundamentals",
			Title:       "Phishing Attack Fundamentals",
			Description: "Learn to identify and prevent phishing attacks",
			Category:    "Email Security",
			Difficulty:  domain.DifficultyEasy,
			TimeLimit:   300,
			Questions: []domain.Question{
				{
					ID:           "phish-1",
					Prompt:       "What is the most common type of cyber attack?",
					Options:      []string{"Phishing", "Malware", "DDoS", "SQL Injection"},
					CorrectIndex: 0,
					Explanation:  "Phishing attacks are the most common form of cyber attack, accounting for over 90% of data breaches.",
					Difficulty:   domain.DifficultyEasy,
				},
				{
					ID:           "phish-2",
					Prompt:       "Which of these is a red flag in an email?",
					Options:      []string{"Urgent language", "Suspicious links", "Unexpected attachments", "All of the above"},
					CorrectIndex: 3,
					Explanation:  "All of these are common indicators of phishing emails that should raise suspicion.",
					Difficulty:   domain.DifficultyMedium,
				},
				{
					ID:     "phish-3",
					Prompt: "What is domain spoofing in phishing attacks?",
					Options: []string{
						"Creating fake websites that look legitimate",
						"Stealing domain names",
						"Blocking legitimate domains",
						"Redirecting traffic to malicious sites",
					},
					CorrectIndex: 0,
					Explanation:  "Domain spoofing involves creating fake websites that mimic legitimate ones to steal credentials.",
					Difficulty:   domain.DifficultyMedium,
				},
				{
					ID:     "phish-4",
					Prompt: "How should you verify a suspicious link before clicking?",
					Options: []string{
						"Click it to see where it goes",
						"Hover over it to see the actual URL",
						"Trust it if it looks official",
						"Ask friends on social media",
					},
					CorrectIndex: 1,
					Explanation:  "Always hover over links to see the actual destination URL before clicking.",
					Difficulty:   domain.DifficultyEasy,
				},
				{
					ID:     "phish-5",
					Prompt: "Why do phishing attacks often create urgency?",
					Options: []string{
						"To help users faster",
						"To bypass critical thinking",
						"To show importance",
						"To save time",
					},
					CorrectIndex: 1,
					Explanation:  "Urgency is used to pressure victims into acting quickly without thinking critically.",
					Difficulty:   domain.DifficultyMedium,
				},
			},
		},
		{
			ID:          "password-security",
			Title:       "Password Security Mastery",
			Description: "Master the art of creating and managing secure passwords",
			Category:    "Authentication",
			Difficulty:  domain.DifficultyMedium,
			TimeLimit:   240,
			Questions: []domain.Question{
				{
					ID:           "pass-1",
					Prompt:       "What makes a password strong?",
					Options:      []string{"Length only", "Complexity only", "Both length and complexity", "Using personal information"},
					CorrectIndex: 2,
					Explanation:  "Strong passwords combine both length (12+ characters) and complexity (mixed case, numbers, symbols).",
					Difficulty:   domain.DifficultyEasy,
				},
				{
					ID:     "pass-2",
					Prompt: "Why shouldn't you reuse passwords across multiple accounts?",
					Options: []string{
						"It's too confusing",
						"If one account is breached, all accounts are at risk",
						"It's against the law",
						"Passwords expire faster",
					},
					CorrectIndex: 1,
					Explanation:  "Password reuse means that if one account is compromised, attackers can access all your other accounts.",
					Difficulty:   domain.DifficultyEasy,
				},
				{
					ID:     "pass-3",
					Prompt: "What is 2FA and why is it important?",
					Options: []string{
						"Two-Factor Authentication - adds an extra security layer",
						"Two-File Authentication - protects files",
						"Two-Firewall Authentication - network security",
						"Two-Factor Analysis - password checking",
					},
					CorrectIndex: 0,
					Explanation:  "2FA requires a second form of verification, making accounts much more secure even if passwords are compromised.",
					Difficulty:   domain.DifficultyMedium,
				},
				{
					ID:     "pass-4",
					Prompt: "What's the difference between a passphrase and a password?",
					Options: []string{
						"No difference",
						"Passphrases are longer and use multiple words",
						"Passphrases are shorter",
						"Passphrases only use numbers",
					},
					CorrectIndex: 1,
					Explanation:  "Passphrases are longer combinations of words that are easier to remember but harder to crack.",
					Difficulty:   domain.DifficultyMedium,
				},
			},
		},
		{
			ID:          "social-engineering",
			Title:       "Social Engineering Tactics",
			Description: "Understand and defend against social engineering attacks",
			Category:    "Social Engineering",
			Difficulty:  domain.DifficultyMedium,
			TimeLimit:   360,
			Questions: []domain.Question{
				{
					ID:     "soc-1",
					Prompt: "What is \"pretexting\" in social engineering?",
					Options: []string{
						"Sending text messages",
						"Creating a fabricated scenario to engage victims",
						"Writing fake reviews",
						"Posting on social media",
					},
					CorrectIndex: 1,
					Explanation:  "Pretexting involves creating a false scenario to build trust and extract information from victims.",
					Difficulty:   domain.DifficultyMedium,
				},
				{
					ID:     "soc-2",
					Prompt: "How does shoulder surfing work as an attack method?",
					Options: []string{
						"Hacking into shoulder implants",
						"Watching someone enter passwords or PINs",
						"Attacking from behind",
						"Using shoulder-mounted cameras",
					},
					CorrectIndex: 1,
					Explanation:  "Shoulder surfing involves observing someone enter sensitive information like passwords or PINs.",
					Difficulty:   domain.DifficultyEasy,
				},
				{
					ID:     "soc-3",
					Prompt: "What makes tailgating a security threat?",
					Options: []string{
						"Following too closely while driving",
						"Unauthorized access by following authorized personnel",
						"Copying someone's style",
						"Walking behind someone",
					},
					CorrectIndex: 1,
					Explanation:  "Tailgating allows unauthorized individuals to gain physical access by following authorized personnel.",
					Difficulty:   domain.DifficultyMedium,
				},
				{
					ID:     "soc-4",
					Prompt: "Who is Kevin Mitnick and why is he famous in cybersecurity?",
					Options: []string{
						"A famous hacker turned security consultant",
						"Creator of the internet",
						"First computer programmer",
						"Inventor of passwords",
					},
					CorrectIndex: 0,
					Explanation:  "Kevin Mitnick was one of the most famous hackers who later became a respected security consultant and author.",
					Difficulty:   domain.DifficultyHard,
				},
				{
					ID:     "soc-5",
					Prompt: "What's the best defense against social engineering?",
					Options: []string{
						"Strong passwords",
						"Antivirus software",
						"Education and awareness training",
						"Firewalls",
					},
					CorrectIndex: 2,
					Explanation:  "Education and awareness are the most effective defenses against social engineering attacks.",
					Difficulty:   domain.DifficultyMedium,
				},
			},
		},
		{
			ID:          "wifi-device-security",
			Title:       "Wi-Fi & Device Security",
			Description: "Secure your devices and wireless connections",
			Category:    "Network Security",
			Difficulty:  domain.DifficultyMedium,
			TimeLimit:   300,
			Questions: []domain.Question{
				{
					ID:     "wifi-1",
					Prompt: "What is WPA3 and why is it important?",
					Options: []string{
						"A new Wi-Fi standard with enhanced security",
						"A password manager",
						"A type of malware",
						"A web browser",
					},
					CorrectIndex: 0,
					Explanation:  "WPA3 is the latest Wi-Fi security protocol offering stronger encryption and protection.",
					Difficulty:   domain.DifficultyMedium,
				},
				{
					ID:     "wifi-2",
					Prompt: "Why is using public Wi-Fi risky?",
					Options: []string{
						"It's slower",
						"Data can be intercepted by attackers",
						"It costs money",
						"It drains battery faster",
					},
					CorrectIndex: 1,
					Explanation:  "Public Wi-Fi networks are often unsecured, allowing attackers to intercept data transmissions.",
					Difficulty:   domain.DifficultyEasy,
				},
				{
					ID:     "wifi-3",
					Prompt: "What does a VPN do for your security?",
					Options: []string{
						"Speeds up internet",
						"Encrypts your internet traffic",
						"Blocks all websites",
						"Increases bandwidth",
					},
					CorrectIndex: 1,
					Explanation:  "A VPN encrypts your internet traffic, protecting your data from interception.",
					Difficulty:   domain.DifficultyEasy,
				},
				{
					ID:     "wifi-4",
					Prompt: "Why should Bluetooth be turned off when not in use?",
					Options: []string{
						"To save battery only",
						"To prevent unauthorized connections and attacks",
						"It's required by law",
						"To improve Wi-Fi speed",
					},
					CorrectIndex: 1,
					Explanation:  "Leaving Bluetooth on creates potential attack vectors for unauthorized access and data theft.",
					Difficulty:   domain.DifficultyMedium,
				},
			},
		},
		{
			ID:          "cyber-law-ethics",
			Title:       "Cyber Laws & Ethics",
			Description: "Understanding legal and ethical aspects of cybersecurity",
			Category:    "Legal & Ethics",
			Difficulty:  domain.DifficultyHard,
			TimeLimit:   420,
			Questions: []domain.Question{
				{
					ID:     "law-1",
					Prompt: "What is the IT Act 2000 in India?",
					Options: []string{
						"A technology company",
						"Legislation governing cyber crimes and electronic commerce",
						"A software program",
						"An internet service provider",
					},
					CorrectIndex: 1,
					Explanation:  "The IT Act 2000 is India's primary legislation dealing with cybercrime and electronic commerce.",
					Difficulty:   domain.DifficultyHard,
				},
				{
					ID:     "law-2",
					Prompt: "What is GDPR and why is it significant?",
					Options: []string{
						"A programming language",
						"General Data Protection Regulation - EU privacy law",
						"A type of malware",
						"A security tool",
					},
					CorrectIndex: 1,
					Explanation:  "GDPR is a comprehensive privacy regulation that protects EU citizens' personal data.",
					Difficulty:   domain.DifficultyHard,
				},
				{
					ID:     "law-3",
					Prompt: "Is ethical hacking legal?",
					Options: []string{
						"Never legal",
						"Always legal",
						"Legal with proper authorization and scope",
						"Only on weekends",
					},
					CorrectIndex: 2,
					Explanation:  "Ethical hacking is legal when performed with proper authorization and within defined scope.",
					Difficulty:   domain.DifficultyMedium,
				},
				{
					ID:     "law-4",
					Prompt: "What is a zero-day vulnerability?",
					Options: []string{
						"A vulnerability that takes zero days to fix",
						"A security flaw unknown to vendors and without patches",
						"A vulnerability that costs zero dollars",
						"A bug that appears on day zero",
					},
					CorrectIndex: 1,
					Explanation:  "Zero-day vulnerabilities are security flaws that are unknown to software vendors and have no available patches.",
					Difficulty:   domain.DifficultyHard,
				},
			},
		},
		{
			ID:          "secure-coding",
			Title:       "Secure Coding Practices",
			Description: "Essential security practices for developers",
			Category:    "Development Security",
			Difficulty:  domain.DifficultyHard,
			TimeLimit:   360,
			Questions: []domain.Question{
				{
					ID:     "code-1",
					Prompt: "What is input validation and why is it crucial?",
					Options: []string{
						"Checking if inputs are spelled correctly",
						"Verifying and sanitizing user inputs to prevent attacks",
						"Making sure inputs are in uppercase",
						"Counting the number of inputs",
					},
					CorrectIndex: 1,
					Explanation:  "Input validation prevents malicious data from being processed, stopping many types of attacks.",
					Difficulty:   domain.DifficultyMedium,
				},
				{
					ID:     "code-2",
					Prompt: "Why is SQL injection dangerous?",
					Options: []string{
						"It slows down databases",
						"It can allow unauthorized database access and manipulation",
						"It uses too much memory",
						"It creates duplicate records",
					},
					CorrectIndex: 1,
					Explanation:  "SQL injection can allow attackers to access, modify, or delete database information.",
					Difficulty:   domain.DifficultyMedium,
				},
				{
					ID:     "code-3",
					Prompt: "What does XSS stand for and what does it do?",
					Options: []string{
						"Extra Security System - adds protection",
						"Cross-Site Scripting - injects malicious scripts",
						"eXtended SQL Server - database enhancement",
						"eXtreme Security Standard - security protocol",
					},
					CorrectIndex: 1,
					Explanation:  "Cross-Site Scripting (XSS) allows attackers to inject malicious scripts into web pages.",
					Difficulty:   domain.DifficultyHard,
				},
			},
		},
		{
			ID:          "network-security",
			Title:       "Network Security Fundamentals",
			Description: "Understanding network security concepts and tools",
			Category:    "Network Security",
			Difficulty:  domain.DifficultyMedium,
			TimeLimit:   300,
			Questions: []domain.Question{
				{
					ID:     "net-1",
					Prompt: "What does a firewall do?",
					Options: []string{
						"Prevents fires in computers",
						"Controls network traffic based on security rules",
						"Speeds up internet connection",
						"Stores passwords",
					},
					CorrectIndex: 1,
					Explanation:  "Firewalls monitor and control incoming and outgoing network traffic based on security rules.",
					Difficulty:   domain.DifficultyEasy,
				},
				{
					ID:           "net-2",
					Prompt:       "What is the default port for HTTPS?",
					Options:      []string{"80", "443", "22", "21"},
					CorrectIndex: 1,
					Explanation:  "HTTPS uses port 443 by default for secure web communications.",
					Difficulty:   domain.DifficultyMedium,
				},
				{
					ID:     "net-3",
					Prompt: "What is ARP spoofing?",
					Options: []string{
						"A music streaming attack",
						"Sending fake ARP messages to link attacker's MAC to victim's IP",
						"A type of email spam",
						"A password cracking method",
					},
					CorrectIndex: 1,
					Explanation:  "ARP spoofing involves sending fake ARP messages to associate the attacker's MAC address with the victim's IP.",
					Difficulty:   domain.DifficultyHard,
				},
			},
		},
		{
			ID:          "malware-threats",
			Title:       "Malware & Cyber Threats",
			Description: "Identify and understand various types of malware",
			Category:    "Threat Intelligence",
			Difficulty:  domain.DifficultyMedium,
			TimeLimit:   300,
			Questions: []domain.Question{
				{
					ID:     "mal-1",
					Prompt: "What is a Trojan horse in cybersecurity?",
					Options: []string{
						"A large wooden horse",
						"Malware disguised as legitimate software",
						"A type of firewall",
						"A secure communication method",
					},
					CorrectIndex: 1,
					Explanation:  "A Trojan horse is malicious software that appears to be legitimate but contains hidden harmful functionality.",
					Difficulty:   domain.DifficultyEasy,
				},
				{
					ID:     "mal-2",
					Prompt: "What's the difference between a worm and a virus?",
					Options: []string{
						"No difference",
						"Worms self-replicate without host files, viruses need host files",
						"Worms are slower",
						"Viruses are more dangerous",
					},
					CorrectIndex: 1,
					Explanation:  "Worms can replicate independently, while viruses need to attach to host files to spread.",
					Difficulty:   domain.DifficultyMedium,
				},
				{
					ID:     "mal-3",
					Prompt: "What is ransomware?",
					Options: []string{
						"Software that demands payment to unlock encrypted files",
						"Free security software",
						"A type of antivirus",
						"A backup solution",
					},
					CorrectIndex: 0,
					Explanation:  "Ransomware encrypts victim's files and demands payment for the decryption key.",
					Difficulty:   domain.DifficultyEasy,
				},
			},
		},
	}
}
