package content

// Default returns the built-in resume content, used when no content file is
// configured.
func Default() Resume {
	return Resume{
		Name: "HARSH DHAWLE",
		Contact: Contact{
			Email: "dhawle.harsh15@gmail.com",
			Phone: "+91 8107033476",
			Links: []Link{
				{Name: "LinkedIn", URL: "https://www.linkedin.com/in/harsh-dhawle/"},
				{Name: "GitHub", URL: "https://github.com/harshdhawle"},
				{Name: "LeetCode", URL: "https://leetcode.com/u/harsh_dhawle/"},
				{Name: "Instagram", URL: "https://www.instagram.com/funn__factoryy/"},
			},
		},
		Summary: "Skilled and innovative SDET with hands-on experience in automating 1250+ UI and API test cases across Agile product lifecycles. Proficient in creating robust test automation frameworks, integrating CI/CD pipelines, developing stubs, deploying API, and conducting mobile QA with a specialization in banking and financial applications. Demonstrates strong ability in defect prevention, regression test planning, and quality assurance metrics tracking with development skills to solve problems independently. Holds a Bachelor of Technology in Information Technology from Government Engineering College, Jabalpur (2019-2023).",
		Skills: []SkillGroup{
			{Category: "Languages", Skills: "Java, SQL, Python, JavaScript, OpenAI API, Agent SDK"},
			{Category: "Frameworks", Skills: "Selenium, TestNG, WebDriverIO, Playwright, Appium"},
			{Category: "Testing", Skills: "REST API Testing, BDD, TDD, Regression Testing, Test Strategy, Defect Tracking"},
			{Category: "Tools", Skills: "JIRA, Postman, JMeter, Docker, Kubernetes, Zephyr, Android Studio, MS Excel"},
			{Category: "Platforms", Skills: "AWS, Linux, Android (AVD), Spring Boot"},
			{Category: "Soft Skills", Skills: "Strong communication, Team collaboration, Problem-solving, Agile & Scrum experience"},
		},
		Experience: []Experience{
			{
				Company: "Persistent Systems Ltd, Pune",
				Period:  "Sep 2023 - Sep 2025",
				Details: []string{
					"Automated over 1053 test cases in UI and 223 test cases for API by developing frameworks and integrating the automation pipeline with DEV pipeline through GOCD, worked on mobile automation and dealt with flakiness problems through top quality coding and using frameworks for specific react native apps.",
					"Performed QA and QC in agile environments and maintaining proper evidences and testcase management of over 2000 testcaes on jira while ensuring more than 50 percent automation coverage for UI test-cases.",
					"Created CI/CD pipelines using GoPipelines, Created and modified stub controller for spring boot project, Ensured execution of automation test-suite for regression testing ensuring less than 5 percent defect leakage.",
					"Worked on Dockerized test executions, Kubernetes deployments, and BrowserStack integrations for NRI Savings and Regional Savings account holders, ensuring video review of over 52 flows in corporate salary and 33 flows in Savings account.",
				},
			},
		},
		Project: Project{
			Title:   "Customer Acquisition App QA",
			Company: "Persistent Systems",
			Details: []string{
				"Developed mobile testing flows, including biometric authentication, and automated major banking domain flows covering critical business cases, while detecting and replicating a complex production issue impacting 7000+ users each day.",
			},
		},
		Certificates: []string{
			"Persistent Digital Engineering Junior SDET Certification",
			"Persistent Digital Engineering SDET Certification",
			"Machine Learning Specialization — Coursera (Andrew Ng, 2023).",
		},
		Achievements: []string{
			"Winner of Individual Bravo Award in Persistent Systems for Automation Framework Development.",
			"Deployed RAG based Chat Agent to personal instagram account with over 56K followers funn factoryy for customer handling and business operations with OPEN AI API and Agent sdk.",
		},
		AdditionalSkills: []string{
			"Agentic AI, LangGraph, LangFlow, Wrangler Agents, Automation",
			"Linux shell scripting, Express",
			"AWS, Spring Boot, Hibernate, SQL, Bash",
			"MS Excel, Data Analytics",
		},
	}
}
