package engine

// DefaultIdeas returns the built-in recommendation templates.
func DefaultIdeas() []Idea {
	return []Idea{
		{
			Title: "AI-Powered {{.Domain}} Diagnostic Assistant",
			ProblemStatement: "Professionals in the {{.Domain}} sector spend significant time on repetitive " +
				"analysis tasks. This project builds an intelligent assistant that uses your " +
				"experience with {{.Skills}} to automate early-stage diagnosis and triage, " +
				"cutting that workload by an estimated 40%.",
			TechStack: []string{
				"Python 3.11",
				"FastAPI",
				"scikit-learn / PyTorch",
				"PostgreSQL",
				"Docker",
				"React (dashboard)",
			},
			Architecture: "Three services behind a gateway: a data ingestion service that normalises " +
				"incoming records, an inference service exposing a REST API over a trained " +
				"classifier, and a reporting service that stores results and sends notifications. " +
				"A React single-page app consumes the public gateway.",
			Roadmap: []string{
				"Week 1–2 : Requirements gathering, dataset sourcing, and repo setup",
				"Week 3–4 : Data preprocessing pipeline and exploratory data analysis",
				"Week 5–{{.Half}} : Model training, evaluation, and API integration",
				"Week {{.HalfNext}}–{{.LastButOne}} : Frontend dashboard and Docker packaging",
				"Week {{.Weeks}} : Testing, documentation, and demo preparation",
			},
			Challenges: []string{
				"Sourcing a sufficiently large, labelled dataset",
				"Keeping model decisions explainable to non-technical stakeholders",
				"Handling class imbalance in operational data",
				"Data-privacy compliance if real personal data is used",
			},
			ResumeBase:     88,
			InnovationBase: 82,
		},
		{
			Title: "Real-Time {{.Domain}} Analytics & Forecasting Platform",
			ProblemStatement: "Organisations in {{.Domain}} lack affordable real-time dashboards that " +
				"combine historical trend analysis with short-term forecasting. This platform " +
				"ingests streaming data and delivers actionable insights through an interactive " +
				"web interface built with {{.Skills}}.",
			TechStack: []string{
				"Python 3.11",
				"Apache Kafka",
				"Apache Spark / Flink",
				"InfluxDB",
				"Grafana",
				"FastAPI",
				"Kubernetes (optional)",
			},
			Architecture: "Event-driven pipeline: producers publish domain events to Kafka topics, " +
				"a streaming job performs windowed aggregations and forecasting, results land in " +
				"InfluxDB and are visualised in Grafana. A thin API layer serves custom queries.",
			Roadmap: []string{
				"Week 1–2 : Architecture design and local Kafka + InfluxDB setup",
				"Week 3–4 : Data producer simulation and streaming job",
				"Week 5–{{.Half}} : Forecasting model integration",
				"Week {{.HalfNext}}–{{.LastButOne}} : Grafana dashboards and query API",
				"Week {{.Weeks}} : Load testing and final documentation",
			},
			Challenges: []string{
				"Managing consumer lag under high throughput",
				"Choosing a windowing strategy that keeps forecasts accurate",
				"Operational overhead of running Kafka locally during development",
				"Presenting confidence intervals intuitively",
			},
			ResumeBase:     84,
			InnovationBase: 79,
		},
		{
			Title: "Smart {{.Domain}} Recommendation & Personalisation Engine",
			ProblemStatement: "Users of {{.Domain}} platforms receive generic, one-size-fits-all content. " +
				"Applying collaborative filtering and NLP with {{.Skills}}, this engine delivers " +
				"personalised recommendations that can lift engagement by up to 35%.",
			TechStack: []string{
				"Python 3.11",
				"FastAPI",
				"Redis (caching)",
				"MongoDB",
				"Sentence-Transformers",
				"Celery + RabbitMQ",
				"React / Next.js",
			},
			Architecture: "Hybrid recommender: content-based filtering over sentence embeddings in a " +
				"vector index combined with matrix-factorisation collaborative filtering. Background " +
				"workers retrain models, Redis caches hot lists, and the API serves results with " +
				"low tail latency.",
			Roadmap: []string{
				"Week 1–2 : User and item data modelling, schema design",
				"Week 3–4 : Content-based module with embedding pipeline",
				"Week 5–{{.Half}} : Collaborative filtering and hybrid merge logic",
				"Week {{.HalfNext}}–{{.LastButOne}} : API, caching layer, and frontend integration",
				"Week {{.Weeks}} : A/B testing framework and performance benchmarking",
			},
			Challenges: []string{
				"Cold-start problem for new users and items",
				"Keeping embeddings in sync after catalogue updates",
				"Balancing exploration against exploitation",
				"Designing meaningful offline evaluation metrics (precision@k, NDCG)",
			},
			ResumeBase:     80,
			InnovationBase: 85,
		},
	}
}
