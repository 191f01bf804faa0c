package career

import "github.com/resumelens/backend/models"

// Static catalog data. In a real deployment this would live in Firestore;
// the built-in tables keep the career endpoints usable without any backing
// services.

var skillsCatalog = []models.CareerSkill{
	{
		ID: "python", Name: "Python", Description: "General-purpose programming language",
		LearningResources: []models.LearningResource{
			{Name: "Python for Everybody", URL: "https://www.coursera.org/specializations/python", Platform: "Coursera", Type: "Specialization"},
			{Name: "Official Python Tutorial", URL: "https://docs.python.org/3/tutorial/", Platform: "Python.org", Type: "Documentation"},
		},
	},
	{
		ID: "fastapi", Name: "FastAPI", Description: "Modern, fast web framework for building APIs",
		LearningResources: []models.LearningResource{
			{Name: "FastAPI Official Documentation", URL: "https://fastapi.tiangolo.com/", Platform: "Tiangolo", Type: "Documentation"},
			{Name: "Full Stack FastAPI and React", URL: "https://www.udemy.com/course/full-stack-fastapi-react/", Platform: "Udemy", Type: "Course"},
		},
	},
	{
		ID: "sql", Name: "SQL", Description: "Standard language for managing relational databases",
		LearningResources: []models.LearningResource{
			{Name: "SQL for Data Science", URL: "https://www.coursera.org/learn/sql-for-data-science", Platform: "Coursera", Type: "Course"},
			{Name: "SQLZoo", URL: "https://sqlzoo.net/", Platform: "SQLZoo", Type: "Interactive Tutorial"},
		},
	},
	{ID: "communication", Name: "Communication", Description: "Effective communication and interpersonal skills"},
	{ID: "problem_solving", Name: "Problem Solving", Description: "Analytical and problem-solving abilities"},
	{ID: "project_management", Name: "Project Management", Description: "Planning, executing, and overseeing projects"},
	{
		ID: "data_analysis", Name: "Data Analysis", Description: "Interpreting data to inform business decisions",
		LearningResources: []models.LearningResource{
			{Name: "Google Data Analytics Professional Certificate", URL: "https://www.coursera.org/professional-certificates/google-data-analytics", Platform: "Coursera", Type: "Professional Certificate"},
		},
	},
	{
		ID: "machine_learning", Name: "Machine Learning", Description: "Developing algorithms that allow systems to learn from data",
		LearningResources: []models.LearningResource{
			{Name: "Machine Learning by Andrew Ng", URL: "https://www.coursera.org/learn/machine-learning", Platform: "Coursera", Type: "Course"},
			{Name: "Hands-On Machine Learning with Scikit-Learn, Keras & TensorFlow", URL: "https://www.oreilly.com/library/view/hands-on-machine-learning/9781098125967/", Platform: "O'Reilly", Type: "Book"},
		},
	},
	{ID: "cloud_computing", Name: "Cloud Computing", Description: "Delivering computing services over the internet (e.g., AWS, Azure, GCP)"},
	{ID: "devops", Name: "DevOps", Description: "Practices that combine software development and IT operations"},
	{
		ID: "javascript", Name: "JavaScript", Description: "Programming language for web development",
		LearningResources: []models.LearningResource{
			{Name: "JavaScript: The Complete Guide", URL: "https://www.udemy.com/course/javascript-the-complete-guide-2020-beginner-advanced/", Platform: "Udemy", Type: "Course"},
			{Name: "MDN JavaScript Guide", URL: "https://developer.mozilla.org/en-US/docs/Web/JavaScript/Guide", Platform: "MDN", Type: "Documentation"},
		},
	},
	{
		ID: "react", Name: "React", Description: "JavaScript library for building user interfaces",
		LearningResources: []models.LearningResource{
			{Name: "React - The Complete Guide", URL: "https://www.udemy.com/course/react-the-complete-guide-incl-redux/", Platform: "Udemy", Type: "Course"},
			{Name: "Official React Tutorial", URL: "https://reactjs.org/tutorial/tutorial.html", Platform: "React.org", Type: "Documentation"},
		},
	},
	{
		ID: "html_css", Name: "HTML/CSS", Description: "Markup and styling languages for web development",
		LearningResources: []models.LearningResource{
			{Name: "HTML & CSS Crash Course", URL: "https://www.youtube.com/watch?v=UB1O30fR-EE", Platform: "YouTube", Type: "Video Course"},
			{Name: "CSS Grid and Flexbox", URL: "https://www.udemy.com/course/css-grid-flexbox/", Platform: "Udemy", Type: "Course"},
		},
	},
	{
		ID: "docker", Name: "Docker", Description: "Containerization platform for application deployment",
		LearningResources: []models.LearningResource{
			{Name: "Docker Mastery", URL: "https://www.udemy.com/course/docker-mastery/", Platform: "Udemy", Type: "Course"},
			{Name: "Official Docker Documentation", URL: "https://docs.docker.com/", Platform: "Docker", Type: "Documentation"},
		},
	},
	{
		ID: "kubernetes", Name: "Kubernetes", Description: "Container orchestration platform",
		LearningResources: []models.LearningResource{
			{Name: "Kubernetes for Developers", URL: "https://www.udemy.com/course/kubernetes-for-developers/", Platform: "Udemy", Type: "Course"},
			{Name: "Kubernetes Official Tutorials", URL: "https://kubernetes.io/docs/tutorials/", Platform: "Kubernetes.io", Type: "Documentation"},
		},
	},
	{
		ID: "aws", Name: "AWS", Description: "Amazon Web Services cloud platform",
		LearningResources: []models.LearningResource{
			{Name: "AWS Certified Solutions Architect", URL: "https://www.udemy.com/course/aws-certified-solutions-architect-associate/", Platform: "Udemy", Type: "Course"},
			{Name: "AWS Free Tier", URL: "https://aws.amazon.com/free/", Platform: "AWS", Type: "Hands-on"},
		},
	},
	{
		ID: "product_strategy", Name: "Product Strategy", Description: "Planning and executing product roadmaps",
		LearningResources: []models.LearningResource{
			{Name: "Product Management Fundamentals", URL: "https://www.coursera.org/learn/product-management-fundamentals", Platform: "Coursera", Type: "Course"},
		},
	},
	{
		ID: "user_research", Name: "User Research", Description: "Understanding user needs and behaviors",
		LearningResources: []models.LearningResource{
			{Name: "User Experience Research and Design", URL: "https://www.coursera.org/specializations/michiganux", Platform: "Coursera", Type: "Specialization"},
		},
	},
	{
		ID: "ui_ux_design", Name: "UI/UX Design", Description: "User interface and user experience design",
		LearningResources: []models.LearningResource{
			{Name: "Google UX Design Certificate", URL: "https://www.coursera.org/professional-certificates/google-ux-design", Platform: "Coursera", Type: "Professional Certificate"},
			{Name: "Figma for Beginners", URL: "https://www.figma.com/academy/", Platform: "Figma", Type: "Tutorial"},
		},
	},
	{
		ID: "agile_scrum", Name: "Agile/Scrum", Description: "Agile project management methodologies",
		LearningResources: []models.LearningResource{
			{Name: "Certified ScrumMaster", URL: "https://www.scrumalliance.org/get-certified/scrum-master-track/certified-scrummaster", Platform: "Scrum Alliance", Type: "Certification"},
		},
	},
	{
		ID: "git", Name: "Git", Description: "Version control system for tracking code changes",
		LearningResources: []models.LearningResource{
			{Name: "Git Complete Guide", URL: "https://www.udemy.com/course/git-complete/", Platform: "Udemy", Type: "Course"},
			{Name: "Pro Git Book", URL: "https://git-scm.com/book", Platform: "Git-SCM", Type: "Book"},
		},
	},
	{
		ID: "ci_cd", Name: "CI/CD", Description: "Continuous Integration and Continuous Deployment",
		LearningResources: []models.LearningResource{
			{Name: "Jenkins Complete Guide", URL: "https://www.udemy.com/course/jenkins-from-zero-to-hero/", Platform: "Udemy", Type: "Course"},
		},
	},
	{
		ID: "monitoring", Name: "Monitoring & Observability", Description: "System monitoring and performance tracking",
		LearningResources: []models.LearningResource{
			{Name: "Prometheus and Grafana", URL: "https://www.udemy.com/course/prometheus-course/", Platform: "Udemy", Type: "Course"},
		},
	},
	{
		ID: "stakeholder_management", Name: "Stakeholder Management", Description: "Managing relationships with project stakeholders",
		LearningResources: []models.LearningResource{
			{Name: "Stakeholder Management Course", URL: "https://www.coursera.org/learn/stakeholder-management", Platform: "Coursera", Type: "Course"},
		},
	},
	{
		ID: "data_visualization", Name: "Data Visualization", Description: "Creating visual representations of data",
		LearningResources: []models.LearningResource{
			{Name: "Tableau Fundamentals", URL: "https://www.tableau.com/learn/training", Platform: "Tableau", Type: "Training"},
		},
	},
}

var careerPathsCatalog = []models.CareerPath{
	{
		ID: "swe_backend", Name: "Backend Software Engineer Path",
		Description: "Focuses on server-side logic, databases, and APIs.",
		Stages: []models.CareerStage{
			{Name: "Junior Backend Developer", SkillsRequired: []string{"python", "sql", "problem_solving", "git"}},
			{Name: "Backend Developer", SkillsRequired: []string{"python", "fastapi", "sql", "communication", "devops", "git"}},
			{Name: "Senior Backend Developer / Tech Lead", SkillsRequired: []string{"python", "fastapi", "sql", "project_management", "cloud_computing", "machine_learning", "git", "ci_cd"}},
		},
	},
	{
		ID: "swe_frontend", Name: "Frontend Software Engineer Path",
		Description: "Focuses on user interfaces, web technologies, and user experience.",
		Stages: []models.CareerStage{
			{Name: "Junior Frontend Developer", SkillsRequired: []string{"html_css", "javascript", "problem_solving", "git"}},
			{Name: "Frontend Developer", SkillsRequired: []string{"html_css", "javascript", "react", "communication", "git", "ui_ux_design"}},
			{Name: "Senior Frontend Developer / Tech Lead", SkillsRequired: []string{"html_css", "javascript", "react", "project_management", "ui_ux_design", "git", "ci_cd", "communication"}},
		},
	},
	{
		ID: "swe_fullstack", Name: "Full Stack Software Engineer Path",
		Description: "Combines both frontend and backend development skills.",
		Stages: []models.CareerStage{
			{Name: "Junior Full Stack Developer", SkillsRequired: []string{"html_css", "javascript", "python", "sql", "problem_solving", "git"}},
			{Name: "Full Stack Developer", SkillsRequired: []string{"html_css", "javascript", "react", "python", "fastapi", "sql", "communication", "git"}},
			{Name: "Senior Full Stack Developer / Tech Lead", SkillsRequired: []string{"html_css", "javascript", "react", "python", "fastapi", "sql", "project_management", "cloud_computing", "devops", "git", "ci_cd"}},
		},
	},
	{
		ID: "devops_engineer", Name: "DevOps Engineer Path",
		Description: "Focuses on infrastructure, automation, and deployment pipelines.",
		Stages: []models.CareerStage{
			{Name: "Junior DevOps Engineer", SkillsRequired: []string{"git", "docker", "problem_solving", "communication"}},
			{Name: "DevOps Engineer", SkillsRequired: []string{"git", "docker", "kubernetes", "aws", "ci_cd", "monitoring", "communication"}},
			{Name: "Senior DevOps Engineer / Platform Lead", SkillsRequired: []string{"git", "docker", "kubernetes", "aws", "ci_cd", "monitoring", "project_management", "cloud_computing", "devops"}},
		},
	},
	{
		ID: "product_manager", Name: "Product Manager Path",
		Description: "Focuses on product strategy, user research, and cross-functional collaboration.",
		Stages: []models.CareerStage{
			{Name: "Associate Product Manager", SkillsRequired: []string{"communication", "problem_solving", "user_research", "data_analysis"}},
			{Name: "Product Manager", SkillsRequired: []string{"communication", "problem_solving", "user_research", "data_analysis", "product_strategy", "agile_scrum", "stakeholder_management"}},
			{Name: "Senior Product Manager / Product Lead", SkillsRequired: []string{"communication", "problem_solving", "user_research", "data_analysis", "product_strategy", "agile_scrum", "stakeholder_management", "project_management"}},
		},
	},
	{
		ID: "ux_designer", Name: "UX Designer Path",
		Description: "Focuses on user experience design, research, and interface design.",
		Stages: []models.CareerStage{
			{Name: "Junior UX Designer", SkillsRequired: []string{"ui_ux_design", "user_research", "communication", "problem_solving"}},
			{Name: "UX Designer", SkillsRequired: []string{"ui_ux_design", "user_research", "communication", "problem_solving", "data_analysis", "stakeholder_management"}},
			{Name: "Senior UX Designer / Design Lead", SkillsRequired: []string{"ui_ux_design", "user_research", "communication", "problem_solving", "data_analysis", "stakeholder_management", "project_management"}},
		},
	},
	{
		ID: "data_analyst", Name: "Data Analyst Path",
		Description: "Focuses on collecting, processing, and performing statistical analyses of data.",
		Stages: []models.CareerStage{
			{Name: "Junior Data Analyst", SkillsRequired: []string{"sql", "python", "data_analysis", "communication"}},
			{Name: "Data Analyst", SkillsRequired: []string{"sql", "python", "data_analysis", "problem_solving", "project_management", "data_visualization"}},
			{Name: "Senior Data Analyst / Data Scientist", SkillsRequired: []string{"sql", "python", "machine_learning", "data_analysis", "cloud_computing", "data_visualization", "communication"}},
		},
	},
}

var industryTransitionsCatalog = []models.IndustryTransition{
	{
		FromIndustry: "finance", ToIndustry: "tech",
		RequiredSkills:        []string{"python", "sql", "data_analysis", "cloud_computing"},
		TransitionDifficulty:  "Medium",
		EstimatedMonths:       8,
		CommonTransitionRoles: []string{"FinTech Developer", "Data Analyst", "Backend Engineer"},
		SuccessRate:           0.78,
	},
	{
		FromIndustry: "marketing", ToIndustry: "tech",
		RequiredSkills:        []string{"data_analysis", "product_strategy", "user_research", "sql"},
		TransitionDifficulty:  "Easy",
		EstimatedMonths:       6,
		CommonTransitionRoles: []string{"Product Manager", "UX Researcher", "Growth Analyst"},
		SuccessRate:           0.85,
	},
	{
		FromIndustry: "consulting", ToIndustry: "tech",
		RequiredSkills:        []string{"project_management", "data_analysis", "product_strategy", "stakeholder_management"},
		TransitionDifficulty:  "Easy",
		EstimatedMonths:       4,
		CommonTransitionRoles: []string{"Product Manager", "Program Manager", "Business Analyst"},
		SuccessRate:           0.92,
	},
	{
		FromIndustry: "healthcare", ToIndustry: "tech",
		RequiredSkills:        []string{"data_analysis", "python", "machine_learning", "sql"},
		TransitionDifficulty:  "Hard",
		EstimatedMonths:       12,
		CommonTransitionRoles: []string{"Health Tech Developer", "Medical Data Scientist", "Healthcare Product Manager"},
		SuccessRate:           0.65,
	},
}

var growthPatternsCatalog = []models.CareerGrowthPattern{
	{
		PatternID:          "tech_individual_contributor",
		PatternName:        "Technical Individual Contributor Path",
		Description:        "Focus on deep technical skills and expertise",
		TypicalProgression: []string{"Junior Developer", "Developer", "Senior Developer", "Staff Engineer", "Principal Engineer"},
		AverageTimeframes:  []int{12, 18, 24, 36, 48},
		RequiredSkillCombos: [][]string{
			{"git", "problem_solving"},
			{"python", "sql", "git", "communication"},
			{"python", "fastapi", "sql", "cloud_computing", "git", "ci_cd"},
			{"python", "fastapi", "sql", "cloud_computing", "machine_learning", "project_management"},
			{"python", "fastapi", "sql", "cloud_computing", "machine_learning", "project_management", "stakeholder_management"},
		},
		IndustryApplicability: []string{"tech", "finance", "healthcare", "ecommerce"},
		SuccessIndicators:     []string{"Technical depth", "Code quality", "System design skills", "Mentoring junior developers"},
	},
	{
		PatternID:          "tech_management",
		PatternName:        "Engineering Management Path",
		Description:        "Transition from individual contributor to people management",
		TypicalProgression: []string{"Senior Developer", "Tech Lead", "Engineering Manager", "Senior Engineering Manager", "Director of Engineering"},
		AverageTimeframes:  []int{18, 12, 24, 36, 48},
		RequiredSkillCombos: [][]string{
			{"python", "fastapi", "sql", "cloud_computing", "project_management"},
			{"python", "project_management", "communication", "stakeholder_management"},
			{"project_management", "communication", "stakeholder_management", "agile_scrum"},
			{"project_management", "communication", "stakeholder_management", "agile_scrum", "product_strategy"},
			{"project_management", "communication", "stakeholder_management", "product_strategy"},
		},
		IndustryApplicability: []string{"tech", "finance", "healthcare"},
		SuccessIndicators:     []string{"Team performance", "People development", "Strategic thinking", "Cross-functional collaboration"},
	},
	{
		PatternID:          "product_management",
		PatternName:        "Product Management Career Path",
		Description:        "Focus on product strategy and user-centric development",
		TypicalProgression: []string{"Associate PM", "Product Manager", "Senior PM", "Principal PM", "VP of Product"},
		AverageTimeframes:  []int{12, 18, 24, 36, 60},
		RequiredSkillCombos: [][]string{
			{"communication", "user_research", "data_analysis"},
			{"communication", "user_research", "data_analysis", "product_strategy", "agile_scrum"},
			{"product_strategy", "stakeholder_management", "data_analysis", "user_research", "project_management"},
			{"product_strategy", "stakeholder_management", "data_analysis", "project_management"},
			{"product_strategy", "stakeholder_management", "project_management"},
		},
		IndustryApplicability: []string{"tech", "ecommerce", "finance", "healthcare"},
		SuccessIndicators:     []string{"Product success metrics", "User satisfaction", "Strategic vision", "Market understanding"},
	},
}
