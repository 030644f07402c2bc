package career

// Seed returns the built-in career catalog. Order is significant: it is the
// catalog iteration order and the tiebreak for equally scored
// recommendations.
func Seed() []Record {
	return []Record{
		{
			ID:              "frontend-developer",
			Title:           "Frontend Developer",
			Category:        CategorySoftwareDevelopment,
			Description:     "Build user-facing web applications using modern frameworks like React, Vue, or Angular",
			RequiredSkills:  []string{"HTML", "CSS", "JavaScript", "React", "TypeScript", "Responsive Design"},
			PreferredSkills: []string{"Vue.js", "Angular", "Next.js", "GraphQL", "Webpack"},
			SalaryRange:     SalaryRange{Min: 60000, Max: 120000, Currency: "USD"},
			GrowthPotential: 90,
			LearningPath: []string{
				"Master HTML5 and CSS3 fundamentals",
				"Learn JavaScript ES6+ and modern frameworks",
				"Build projects with React or Vue.js",
				"Learn state management (Redux, Vuex)",
				"Master responsive design and accessibility",
				"Build portfolio with 5+ projects",
			},
		},
		{
			ID:              "backend-developer",
			Title:           "Backend Developer",
			Category:        CategorySoftwareDevelopment,
			Description:     "Develop server-side logic, APIs, and database systems",
			RequiredSkills:  []string{"Python", "Node.js", "SQL", "REST APIs", "Database Design"},
			PreferredSkills: []string{"Django", "Flask", "Express", "PostgreSQL", "MongoDB", "GraphQL"},
			SalaryRange:     SalaryRange{Min: 70000, Max: 130000, Currency: "USD"},
			GrowthPotential: 88,
			LearningPath: []string{
				"Learn Python or Node.js fundamentals",
				"Master database design and SQL",
				"Build RESTful APIs",
				"Learn authentication and security",
				"Understand microservices architecture",
				"Deploy applications to cloud platforms",
			},
		},
		{
			ID:              "fullstack-developer",
			Title:           "Full-Stack Developer",
			Category:        CategorySoftwareDevelopment,
			Description:     "Work on both frontend and backend development",
			RequiredSkills:  []string{"JavaScript", "React", "Node.js", "SQL", "REST APIs"},
			PreferredSkills: []string{"TypeScript", "Next.js", "MongoDB", "Docker", "AWS"},
			SalaryRange:     SalaryRange{Min: 75000, Max: 140000, Currency: "USD"},
			GrowthPotential: 92,
			LearningPath: []string{
				"Master frontend frameworks (React, Vue)",
				"Learn backend development (Node.js, Python)",
				"Understand database systems",
				"Learn DevOps and deployment",
				"Build full-stack applications",
				"Master version control and collaboration",
			},
		},
		{
			ID:              "mobile-developer",
			Title:           "Mobile Developer",
			Category:        CategorySoftwareDevelopment,
			Description:     "Develop native or cross-platform mobile applications",
			RequiredSkills:  []string{"React Native", "Swift", "Kotlin", "Mobile UI/UX"},
			PreferredSkills: []string{"Flutter", "iOS Development", "Android Development", "Firebase"},
			SalaryRange:     SalaryRange{Min: 70000, Max: 130000, Currency: "USD"},
			GrowthPotential: 85,
			LearningPath: []string{
				"Learn React Native or Flutter",
				"Understand mobile app architecture",
				"Master mobile UI/UX design principles",
				"Learn app store deployment",
				"Build and publish mobile apps",
				"Understand push notifications and analytics",
			},
		},
		{
			ID:              "data-scientist",
			Title:           "Data Scientist",
			Category:        CategoryAIML,
			Description:     "Analyze data and build ML models to solve business problems",
			RequiredSkills:  []string{"Python", "SQL", "Machine Learning", "Statistics", "Data Analysis"},
			PreferredSkills: []string{"TensorFlow", "PyTorch", "Pandas", "NumPy", "Tableau", "AWS"},
			SalaryRange:     SalaryRange{Min: 80000, Max: 150000, Currency: "USD"},
			GrowthPotential: 95,
			LearningPath: []string{
				"Master Python for data science",
				"Learn statistics and probability",
				"Study machine learning algorithms",
				"Practice with real datasets",
				"Learn data visualization tools",
				"Build ML models and deploy them",
			},
		},
		{
			ID:              "ml-engineer",
			Title:           "ML Engineer",
			Category:        CategoryAIML,
			Description:     "Design and deploy machine learning systems at scale",
			RequiredSkills:  []string{"Python", "TensorFlow", "PyTorch", "MLOps", "Cloud Computing"},
			PreferredSkills: []string{"Kubernetes", "Docker", "AWS", "MLflow", "Airflow"},
			SalaryRange:     SalaryRange{Min: 100000, Max: 180000, Currency: "USD"},
			GrowthPotential: 98,
			LearningPath: []string{
				"Master deep learning frameworks",
				"Learn MLOps and model deployment",
				"Understand cloud platforms (AWS, GCP)",
				"Learn containerization (Docker, Kubernetes)",
				"Build end-to-end ML pipelines",
				"Master model monitoring and optimization",
			},
		},
		{
			ID:              "nlp-engineer",
			Title:           "NLP Engineer",
			Category:        CategoryAIML,
			Description:     "Develop natural language processing systems and applications",
			RequiredSkills:  []string{"Python", "NLP", "Transformers", "Deep Learning", "Text Processing"},
			PreferredSkills: []string{"BERT", "GPT", "Hugging Face", "spaCy", "NLTK"},
			SalaryRange:     SalaryRange{Min: 95000, Max: 170000, Currency: "USD"},
			GrowthPotential: 96,
			LearningPath: []string{
				"Learn NLP fundamentals",
				"Master transformer architectures",
				"Work with pre-trained models",
				"Build NLP applications",
				"Learn model fine-tuning",
				"Deploy NLP systems to production",
			},
		},
		{
			ID:              "computer-vision-engineer",
			Title:           "Computer Vision Engineer",
			Category:        CategoryAIML,
			Description:     "Develop computer vision and image processing systems",
			RequiredSkills:  []string{"Python", "OpenCV", "Deep Learning", "Image Processing", "CNN"},
			PreferredSkills: []string{"TensorFlow", "PyTorch", "YOLO", "Image Classification"},
			SalaryRange:     SalaryRange{Min: 95000, Max: 170000, Currency: "USD"},
			GrowthPotential: 94,
			LearningPath: []string{
				"Learn computer vision fundamentals",
				"Master OpenCV and image processing",
				"Study CNN architectures",
				"Build image classification models",
				"Learn object detection",
				"Deploy CV systems to production",
			},
		},
		{
			ID:              "ai-researcher",
			Title:           "AI Researcher",
			Category:        CategoryAIML,
			Description:     "Conduct research in artificial intelligence and machine learning",
			RequiredSkills:  []string{"Python", "Research", "Mathematics", "Deep Learning", "Publications"},
			PreferredSkills: []string{"PyTorch", "TensorFlow", "Research Papers", "PhD"},
			SalaryRange:     SalaryRange{Min: 120000, Max: 200000, Currency: "USD"},
			GrowthPotential: 99,
			LearningPath: []string{
				"Pursue advanced degree (Master's/PhD)",
				"Read and understand research papers",
				"Contribute to open-source projects",
				"Publish research papers",
				"Attend conferences and workshops",
				"Build cutting-edge AI systems",
			},
		},
		{
			ID:              "deep-learning-engineer",
			Title:           "Deep Learning Engineer",
			Category:        CategoryAIML,
			Description:     "Specialize in deep learning architectures and neural networks",
			RequiredSkills:  []string{"Python", "Deep Learning", "Neural Networks", "TensorFlow", "PyTorch"},
			PreferredSkills: []string{"CNN", "RNN", "GAN", "Transfer Learning", "GPU Computing"},
			SalaryRange:     SalaryRange{Min: 105000, Max: 185000, Currency: "USD"},
			GrowthPotential: 97,
			LearningPath: []string{
				"Master neural network fundamentals",
				"Learn deep learning frameworks",
				"Study advanced architectures",
				"Work with GPUs and distributed training",
				"Build complex DL models",
				"Optimize and deploy models",
			},
		},
		{
			ID:              "mlops-engineer",
			Title:           "MLOps Engineer",
			Category:        CategoryAIML,
			Description:     "Operationalize machine learning models and pipelines",
			RequiredSkills:  []string{"Python", "MLOps", "Docker", "Kubernetes", "CI/CD"},
			PreferredSkills: []string{"MLflow", "Kubeflow", "Airflow", "AWS SageMaker", "Monitoring"},
			SalaryRange:     SalaryRange{Min: 110000, Max: 180000, Currency: "USD"},
			GrowthPotential: 95,
			LearningPath: []string{
				"Learn DevOps fundamentals",
				"Master containerization (Docker)",
				"Learn orchestration (Kubernetes)",
				"Understand ML pipeline tools",
				"Build automated ML workflows",
				"Master model monitoring and versioning",
			},
		},
		{
			ID:              "data-analyst",
			Title:           "Data Analyst",
			Category:        CategoryData,
			Description:     "Analyze data to provide insights and support business decisions",
			RequiredSkills:  []string{"SQL", "Excel", "Python", "Data Visualization", "Statistics"},
			PreferredSkills: []string{"Tableau", "Power BI", "Pandas", "R", "Business Intelligence"},
			SalaryRange:     SalaryRange{Min: 60000, Max: 100000, Currency: "USD"},
			GrowthPotential: 85,
			LearningPath: []string{
				"Master SQL and database queries",
				"Learn data visualization tools",
				"Study statistics and analytics",
				"Practice with real business data",
				"Build dashboards and reports",
				"Understand business metrics",
			},
		},
		{
			ID:              "data-engineer",
			Title:           "Data Engineer",
			Category:        CategoryData,
			Description:     "Design and build data pipelines and infrastructure",
			RequiredSkills:  []string{"Python", "SQL", "ETL", "Big Data", "Data Pipelines"},
			PreferredSkills: []string{"Apache Spark", "Airflow", "Kafka", "AWS", "Hadoop"},
			SalaryRange:     SalaryRange{Min: 85000, Max: 140000, Currency: "USD"},
			GrowthPotential: 90,
			LearningPath: []string{
				"Master SQL and databases",
				"Learn ETL processes",
				"Understand big data technologies",
				"Build data pipelines",
				"Learn cloud data services",
				"Master data warehousing",
			},
		},
		{
			ID:              "business-intelligence-developer",
			Title:           "Business Intelligence Developer",
			Category:        CategoryData,
			Description:     "Create BI solutions and dashboards for business insights",
			RequiredSkills:  []string{"SQL", "BI Tools", "Data Warehousing", "ETL", "Analytics"},
			PreferredSkills: []string{"Tableau", "Power BI", "Qlik", "SSAS", "Data Modeling"},
			SalaryRange:     SalaryRange{Min: 70000, Max: 120000, Currency: "USD"},
			GrowthPotential: 87,
			LearningPath: []string{
				"Master SQL and data modeling",
				"Learn BI tools (Tableau, Power BI)",
				"Understand data warehousing",
				"Build interactive dashboards",
				"Learn ETL processes",
				"Understand business requirements",
			},
		},
		{
			ID:              "devops-engineer",
			Title:           "DevOps Engineer",
			Category:        CategoryCloudDevOps,
			Description:     "Automate infrastructure and deployment processes",
			RequiredSkills:  []string{"Linux", "Docker", "Kubernetes", "CI/CD", "AWS"},
			PreferredSkills: []string{"Terraform", "Ansible", "Jenkins", "GitLab CI", "Monitoring"},
			SalaryRange:     SalaryRange{Min: 85000, Max: 140000, Currency: "USD"},
			GrowthPotential: 92,
			LearningPath: []string{
				"Master Linux and shell scripting",
				"Learn containerization (Docker)",
				"Understand orchestration (Kubernetes)",
				"Build CI/CD pipelines",
				"Learn infrastructure as code",
				"Master cloud platforms",
			},
		},
		{
			ID:              "cloud-architect",
			Title:           "Cloud Architect",
			Category:        CategoryCloudDevOps,
			Description:     "Design and implement cloud infrastructure solutions",
			RequiredSkills:  []string{"AWS", "Azure", "GCP", "Architecture", "Cloud Security"},
			PreferredSkills: []string{"Terraform", "CloudFormation", "Kubernetes", "Serverless"},
			SalaryRange:     SalaryRange{Min: 100000, Max: 160000, Currency: "USD"},
			GrowthPotential: 93,
			LearningPath: []string{
				"Get cloud certifications (AWS, Azure, GCP)",
				"Learn infrastructure as code",
				"Understand cloud architecture patterns",
				"Master security and compliance",
				"Design scalable systems",
				"Lead cloud migration projects",
			},
		},
		{
			ID:              "site-reliability-engineer",
			Title:           "Site Reliability Engineer",
			Category:        CategoryCloudDevOps,
			Description:     "Ensure system reliability and performance",
			RequiredSkills:  []string{"Linux", "Monitoring", "Incident Response", "Automation", "SRE"},
			PreferredSkills: []string{"Prometheus", "Grafana", "Kubernetes", "Python", "Go"},
			SalaryRange:     SalaryRange{Min: 95000, Max: 150000, Currency: "USD"},
			GrowthPotential: 91,
			LearningPath: []string{
				"Master system administration",
				"Learn monitoring and observability",
				"Understand incident management",
				"Build automation tools",
				"Learn SRE principles",
				"Master reliability engineering",
			},
		},
		{
			ID:              "security-engineer",
			Title:           "Security Engineer",
			Category:        CategoryCybersecurity,
			Description:     "Protect systems and networks from security threats",
			RequiredSkills:  []string{"Cybersecurity", "Network Security", "Security Tools", "Risk Assessment"},
			PreferredSkills: []string{"Penetration Testing", "SIEM", "Firewalls", "Encryption", "Compliance"},
			SalaryRange:     SalaryRange{Min: 80000, Max: 140000, Currency: "USD"},
			GrowthPotential: 94,
			LearningPath: []string{
				"Learn cybersecurity fundamentals",
				"Study network security",
				"Master security tools",
				"Get security certifications",
				"Practice ethical hacking",
				"Build security systems",
			},
		},
		{
			ID:              "penetration-tester",
			Title:           "Penetration Tester",
			Category:        CategoryCybersecurity,
			Description:     "Test systems for security vulnerabilities",
			RequiredSkills:  []string{"Penetration Testing", "Ethical Hacking", "Security Tools", "Vulnerability Assessment"},
			PreferredSkills: []string{"Kali Linux", "Metasploit", "OWASP", "Certifications", "Reporting"},
			SalaryRange:     SalaryRange{Min: 75000, Max: 130000, Currency: "USD"},
			GrowthPotential: 89,
			LearningPath: []string{
				"Learn ethical hacking fundamentals",
				"Master penetration testing tools",
				"Get certifications (CEH, OSCP)",
				"Practice on vulnerable systems",
				"Learn reporting and documentation",
				"Build security testing skills",
			},
		},
		{
			ID:              "ui-ux-designer",
			Title:           "UI/UX Designer",
			Category:        CategoryOther,
			Description:     "Design user interfaces and user experiences",
			RequiredSkills:  []string{"UI Design", "UX Design", "Design Tools", "User Research", "Prototyping"},
			PreferredSkills: []string{"Figma", "Sketch", "Adobe XD", "User Testing", "Design Systems"},
			SalaryRange:     SalaryRange{Min: 65000, Max: 120000, Currency: "USD"},
			GrowthPotential: 88,
			LearningPath: []string{
				"Learn design principles",
				"Master design tools (Figma, Sketch)",
				"Study user research methods",
				"Build design portfolio",
				"Learn prototyping",
				"Understand design systems",
			},
		},
		{
			ID:              "product-manager",
			Title:           "Product Manager",
			Category:        CategoryOther,
			Description:     "Manage product development and strategy",
			RequiredSkills:  []string{"Product Management", "Strategy", "Analytics", "Communication", "Roadmapping"},
			PreferredSkills: []string{"Agile", "Scrum", "User Stories", "A/B Testing", "Stakeholder Management"},
			SalaryRange:     SalaryRange{Min: 90000, Max: 160000, Currency: "USD"},
			GrowthPotential: 90,
			LearningPath: []string{
				"Learn product management fundamentals",
				"Master agile methodologies",
				"Understand analytics and metrics",
				"Build product strategy skills",
				"Learn stakeholder management",
				"Get product management certification",
			},
		},
		{
			ID:              "qa-engineer",
			Title:           "QA Engineer",
			Category:        CategoryOther,
			Description:     "Test software for quality and bugs",
			RequiredSkills:  []string{"Testing", "Test Automation", "QA", "Bug Tracking", "Test Planning"},
			PreferredSkills: []string{"Selenium", "Cypress", "Jest", "API Testing", "Performance Testing"},
			SalaryRange:     SalaryRange{Min: 60000, Max: 110000, Currency: "USD"},
			GrowthPotential: 86,
			LearningPath: []string{
				"Learn testing fundamentals",
				"Master test automation tools",
				"Understand testing methodologies",
				"Build test frameworks",
				"Learn API and performance testing",
				"Get QA certifications",
			},
		},
		{
			ID:              "blockchain-developer",
			Title:           "Blockchain Developer",
			Category:        CategoryOther,
			Description:     "Develop blockchain and cryptocurrency applications",
			RequiredSkills:  []string{"Blockchain", "Solidity", "Smart Contracts", "Web3", "Cryptography"},
			PreferredSkills: []string{"Ethereum", "DeFi", "NFT", "Truffle", "Hardhat"},
			SalaryRange:     SalaryRange{Min: 90000, Max: 160000, Currency: "USD"},
			GrowthPotential: 93,
			LearningPath: []string{
				"Learn blockchain fundamentals",
				"Master Solidity programming",
				"Build smart contracts",
				"Understand DeFi protocols",
				"Learn Web3 development",
				"Deploy blockchain applications",
			},
		},
		{
			ID:              "game-developer",
			Title:           "Game Developer",
			Category:        CategoryOther,
			Description:     "Develop video games and interactive experiences",
			RequiredSkills:  []string{"Game Development", "Unity", "C#", "Game Design", "3D Graphics"},
			PreferredSkills: []string{"Unreal Engine", "Game Physics", "Animation", "Multiplayer", "VR/AR"},
			SalaryRange:     SalaryRange{Min: 65000, Max: 120000, Currency: "USD"},
			GrowthPotential: 87,
			LearningPath: []string{
				"Learn game development fundamentals",
				"Master Unity or Unreal Engine",
				"Study game design principles",
				"Build game projects",
				"Learn 3D graphics and animation",
				"Publish games to app stores",
			},
		},
	}
}
