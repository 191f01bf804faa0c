package knowledge

// skillCategory groups a named skill family with its member skills. Members
// of the same category are considered related to each other and to the
// category name itself.
type skillCategory struct {
	Name   string
	Skills []string
}

// skillCategories is the built-in relationship table. Order matters: it fixes
// the tie-breaking order for substring lookups in Graph.Lookup.
var skillCategories = []skillCategory{
	{
		Name: "Machine Learning",
		Skills: []string{
			"Deep Learning", "Neural Networks", "Supervised Learning", "Unsupervised Learning",
			"Reinforcement Learning", "Classification", "Regression", "Clustering",
			"Dimensionality Reduction", "Feature Engineering", "Model Selection",
			"Hyperparameter Tuning", "Cross-Validation", "Transfer Learning",
		},
	},
	{
		Name: "LLM Knowledge",
		Skills: []string{
			"Prompt Engineering", "Fine-tuning LLMs", "RAG", "Retrieval Augmented Generation",
			"Token Management", "Embeddings", "In-context Learning", "Chain-of-Thought",
			"Few-shot Learning", "Zero-shot Learning", "Prompt Templates", "Semantic Search",
			"Vector Databases", "LangChain", "LlamaIndex", "Transformer Architecture",
		},
	},
	{
		Name: "Data Science",
		Skills: []string{
			"Data Analysis", "Data Visualization", "Statistical Analysis", "Hypothesis Testing",
			"Experimental Design", "A/B Testing", "Data Cleaning", "Data Wrangling",
			"ETL", "Data Pipeline", "Business Intelligence", "Dashboarding",
		},
	},
	{
		Name: "Programming Languages",
		Skills: []string{
			"Python", "R", "Java", "C++", "JavaScript", "TypeScript", "Go", "Rust",
			"SQL", "Scala", "Julia", "MATLAB", "C#", "PHP", "Ruby", "Swift",
		},
	},
	{
		Name: "ML Frameworks",
		Skills: []string{
			"TensorFlow", "PyTorch", "Keras", "Scikit-learn", "XGBoost", "LightGBM",
			"CatBoost", "Hugging Face", "Transformers", "MXNet", "ONNX", "OpenCV",
		},
	},
	{
		Name: "Big Data",
		Skills: []string{
			"Apache Spark", "Hadoop", "Kafka", "Storm", "Flink", "Hive", "Pig",
			"MapReduce", "Distributed Systems", "Data Lake", "Data Warehouse",
		},
	},
	{
		Name: "Cloud Platforms",
		Skills: []string{
			"AWS", "Azure", "GCP", "S3", "EC2", "SageMaker", "Azure ML",
			"Google AI Platform", "Lambda", "Serverless", "Cloud Functions",
		},
	},
	{
		Name: "DevOps",
		Skills: []string{
			"Docker", "Kubernetes", "CI/CD", "Jenkins", "GitHub Actions", "Travis CI",
			"CircleCI", "Ansible", "Terraform", "Infrastructure as Code",
		},
	},
	{
		Name: "Database",
		Skills: []string{
			"SQL", "NoSQL", "PostgreSQL", "MySQL", "MongoDB", "Cassandra", "Redis",
			"Elasticsearch", "Neo4j", "Graph Database", "Database Design", "Query Optimization",
		},
	},
	{
		Name: "Software Engineering",
		Skills: []string{
			"Software Development", "Object-Oriented Programming", "Functional Programming",
			"Microservices", "API Design", "RESTful Services", "GraphQL", "gRPC",
			"Design Patterns", "System Design", "Scalability", "Testing", "TDD", "BDD",
		},
	},
}
