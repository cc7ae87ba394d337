package catalog

// Default builds the catalog for the LLM application-development course:
// seven nodes from first API call to a full backend service. The per-channel
// hours, difficulty ratings and checkpoint thresholds are the course's
// calibrated values; treat them as data, not tunables.
func Default() (*Catalog, error) {
	return New(defaultNodes())
}

// MustDefault is Default for wiring code that treats a broken seed as a
// programming error.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

func defaultNodes() []PathNode {
	return []PathNode{
		{
			ID:            "api_calling",
			Name:          "API Calling",
			Description:   "Call LLM and third-party APIs from code",
			Order:         1,
			Prerequisites: nil,
			BaseWeeks:     1,
			ChannelTasks: map[Channel]ChannelTask{
				ChannelA: {
					Description:  "Complete three API calls using an official SDK",
					Requirements: []string{"Successful LLM API call", "Basic error handling", "Printed results"},
					Deliverables: []string{"Call code", "Run screenshots", "Short report"},
				},
				ChannelB: {
					Description:  "Hand-write the HTTP layer with auth and rate limiting",
					Requirements: []string{"Raw HTTP requests", "API authentication", "Retry on failure", "Rate-limit control"},
					Deliverables: []string{"Complete code", "Error-handling notes", "Test cases"},
				},
				ChannelC: {
					Description:  "Package a reusable SDK and publish it",
					Requirements: []string{"SDK architecture design", "Full unit tests", "Documentation", "Published package"},
					Deliverables: []string{"SDK package", "Docs", "Usage examples", "Registry link"},
				},
			},
			EstimatedHours:  map[Channel]int{ChannelA: 4, ChannelB: 8, ChannelC: 16},
			DifficultyLevel: map[Channel]int{ChannelA: 3, ChannelB: 6, ChannelC: 9},
			Checkpoint: CheckpointRule{
				ID:       "api_calling_checkpoint",
				MustPass: []string{"Can call an API successfully", "Can handle basic errors", "Understands rate limiting"},
				Evidence: []string{"Repository link", "Run screenshots", "Test report"},
				AutoGrade: map[string]float64{
					"success_rate":     0.9,
					"response_time_ms": 2000,
				},
			},
			RemedyResources: map[string][]string{
				"micro-lessons":      {"API calling basics", "Error-handling best practices", "Rate limiting and retries"},
				"guided-exercises":   {"Practice API calls", "Handle different error types", "Implement exponential backoff"},
				"reference-examples": {"Canonical API call code", "Error-handling example", "SDK wrapper example"},
			},
		},
		{
			ID:            "model_deployment",
			Name:          "Model Deployment",
			Description:   "Deploy and serve AI models",
			Order:         2,
			Prerequisites: []string{"api_calling"},
			BaseWeeks:     1.5,
			ChannelTasks: map[Channel]ChannelTask{
				ChannelA: {
					Description:  "Run a model locally with Ollama",
					Requirements: []string{"Install Ollama", "Run a model", "Basic call test"},
					Deliverables: []string{"Deployment screenshots", "Call code", "Test results"},
				},
				ChannelB: {
					Description:  "Containerize the model and expose a REST interface",
					Requirements: []string{"Dockerfile", "Image build", "REST API", "Interface docs"},
					Deliverables: []string{"Docker image", "API docs", "Deploy script"},
				},
				ChannelC: {
					Description:  "GPU/concurrency tuning with load testing",
					Requirements: []string{"GPU acceleration", "Concurrent serving", "Performance tests", "Load balancing"},
					Deliverables: []string{"Tuning report", "Load-test results", "Deployment plan"},
				},
			},
			EstimatedHours:  map[Channel]int{ChannelA: 6, ChannelB: 12, ChannelC: 20},
			DifficultyLevel: map[Channel]int{ChannelA: 4, ChannelB: 7, ChannelC: 9},
			Checkpoint: CheckpointRule{
				ID:       "model_deployment_checkpoint",
				MustPass: []string{"Can deploy a model locally", "Can configure basic parameters", "Understands the inference path"},
				Evidence: []string{"Deployment doc", "Live demo", "Performance test"},
				AutoGrade: map[string]float64{
					"response_time_ms": 5000,
					"memory_usage_mb":  2048,
				},
			},
			RemedyResources: map[string][]string{
				"micro-lessons":      {"Model deployment basics", "Docker containerization", "Performance tuning"},
				"guided-exercises":   {"Local deployment drill", "Containerization practice", "Performance testing"},
				"reference-examples": {"Deploy script template", "Dockerfile example", "Monitoring config"},
			},
		},
		{
			ID:            "no_code_ai",
			Name:          "No-Code AI Apps",
			Description:   "Build AI applications on a no-code platform",
			Order:         3,
			Prerequisites: []string{"model_deployment"},
			BaseWeeks:     1,
			ChannelTasks: map[Channel]ChannelTask{
				ChannelA: {
					Description:  "Build a basic flow in Dify",
					Requirements: []string{"Basic conversation flow", "Connect an LLM", "Test the app"},
					Deliverables: []string{"Flow screenshots", "Test transcript", "Feature demo"},
				},
				ChannelB: {
					Description:  "Add tool calls and variables to the flow",
					Requirements: []string{"Tool integration", "Variable management", "Conditional branches", "Composite flow"},
					Deliverables: []string{"Composite flow", "Tool integration", "Variable config"},
				},
				ChannelC: {
					Description:  "Extend the platform with a custom plugin",
					Requirements: []string{"Custom plugin", "API integration", "Plugin docs", "Published plugin"},
					Deliverables: []string{"Plugin code", "Integration demo", "Usage doc"},
				},
			},
			EstimatedHours:  map[Channel]int{ChannelA: 3, ChannelB: 6, ChannelC: 12},
			DifficultyLevel: map[Channel]int{ChannelA: 2, ChannelB: 4, ChannelC: 7},
			Checkpoint: CheckpointRule{
				ID:       "no_code_ai_checkpoint",
				MustPass: []string{"Can build an AI app flow", "Can configure basic features", "Can debug app logic"},
				Evidence: []string{"App link", "Demo video", "Config notes"},
				AutoGrade: map[string]float64{
					"basic_completion": 1,
				},
			},
			RemedyResources: map[string][]string{
				"micro-lessons":      {"Flow-builder fundamentals"},
				"guided-exercises":   {"Hands-on flow practice"},
				"reference-examples": {"Reference flow"},
			},
		},
		{
			ID:            "rag_system",
			Name:          "RAG System",
			Description:   "Build a retrieval-augmented generation system",
			Order:         4,
			Prerequisites: []string{"no_code_ai"},
			BaseWeeks:     2,
			ChannelTasks: map[Channel]ChannelTask{
				ChannelA: {
					Description:  "Assemble a RAG pipeline from framework modules",
					Requirements: []string{"Document loading", "Vector store", "Basic retrieval", "Simple Q&A"},
					Deliverables: []string{"RAG system", "Query demo", "Simple UI"},
				},
				ChannelB: {
					Description:  "Implement embeddings and a FAISS index by hand",
					Requirements: []string{"Own embedding pipeline", "FAISS index", "Retrieval algorithm", "Relevance ranking"},
					Deliverables: []string{"Retrieval system", "Performance tests", "Comparison analysis"},
				},
				ChannelC: {
					Description:  "Add reranking and multi-vector retrieval",
					Requirements: []string{"Reranking algorithm", "Multi-vector fusion", "Retrieval tuning", "Evaluation harness"},
					Deliverables: []string{"Advanced retrieval system", "Performance report", "Tuning plan"},
				},
			},
			EstimatedHours:  map[Channel]int{ChannelA: 8, ChannelB: 16, ChannelC: 24},
			DifficultyLevel: map[Channel]int{ChannelA: 5, ChannelB: 8, ChannelC: 10},
			Checkpoint: CheckpointRule{
				ID:       "rag_system_checkpoint",
				MustPass: []string{"Can build an index independently", "Can explain recall vs. precision ranking", "Can evaluate retrieval quality"},
				Evidence: []string{"System demo", "Evaluation report", "Technical writeup"},
				AutoGrade: map[string]float64{
					"unit_test_coverage": 0.8,
					"latency_ms_at_k5":   800,
					"relevance_score":    0.7,
				},
			},
			RemedyResources: map[string][]string{
				"micro-lessons":      {"Vector database principles", "Retrieval algorithm tuning", "Evaluation methods"},
				"guided-exercises":   {"Build a simple index", "Implement retrieval ranking", "Evaluate retrieval quality"},
				"reference-examples": {"RAG system architecture", "Retrieval tuning code", "Evaluation script"},
			},
		},
		{
			ID:            "ui_design",
			Name:          "UI Design",
			Description:   "Design the application's user interface",
			Order:         5,
			Prerequisites: []string{"rag_system"},
			BaseWeeks:     1.5,
			ChannelTasks: map[Channel]ChannelTask{
				ChannelA: {
					Description:  "Build quickly from a template",
					Requirements: []string{"Template selection", "Basic edits", "Color adjustments", "Content replacement"},
					Deliverables: []string{"Design mockups", "Color scheme", "Component set"},
				},
				ChannelB: {
					Description:  "Customize against a design system",
					Requirements: []string{"Follow Material Design", "Accessibility", "Interaction conventions", "User testing"},
					Deliverables: []string{"Design system", "Prototype", "User-test report"},
				},
				ChannelC: {
					Description:  "Responsive layout and interaction polish",
					Requirements: []string{"Responsive design", "Advanced interactions", "Motion design", "Performance tuning"},
					Deliverables: []string{"Full design system", "Interaction demo", "Design doc"},
				},
			},
			EstimatedHours:  map[Channel]int{ChannelA: 6, ChannelB: 12, ChannelC: 18},
			DifficultyLevel: map[Channel]int{ChannelA: 3, ChannelB: 6, ChannelC: 8},
			Checkpoint: CheckpointRule{
				ID:       "ui_design_checkpoint",
				MustPass: []string{"Follows design conventions", "Meets accessibility requirements", "Passes user testing"},
				Evidence: []string{"Design mockups", "Prototype link", "User-test report"},
				AutoGrade: map[string]float64{
					"accessibility_score": 0.8,
					"performance_score":   0.7,
				},
			},
			RemedyResources: map[string][]string{
				"micro-lessons":      {"Design system fundamentals"},
				"guided-exercises":   {"Accessibility audit drill"},
				"reference-examples": {"Reference mockups"},
			},
		},
		{
			ID:            "frontend_dev",
			Name:          "Frontend Development",
			Description:   "Develop the frontend application",
			Order:         6,
			Prerequisites: []string{"ui_design"},
			BaseWeeks:     2.5,
			ChannelTasks: map[Channel]ChannelTask{
				ChannelA: {
					Description:  "Extend a framework starter template",
					Requirements: []string{"Template usage", "Basic components", "Simple interactions", "Basic deployment"},
					Deliverables: []string{"Frontend app", "Feature demo", "Deploy link"},
				},
				ChannelB: {
					Description:  "Build a React/Vue application from scratch",
					Requirements: []string{"Project scaffolding", "Component development", "State management", "Routing"},
					Deliverables: []string{"Full application", "Code repository", "Technical doc"},
				},
				ChannelC: {
					Description:  "State management integration and performance work",
					Requirements: []string{"Redux/Vuex", "Performance tuning", "Code splitting", "PWA features"},
					Deliverables: []string{"Advanced application", "Performance report", "Tuning plan"},
				},
			},
			EstimatedHours:  map[Channel]int{ChannelA: 10, ChannelB: 20, ChannelC: 30},
			DifficultyLevel: map[Channel]int{ChannelA: 4, ChannelB: 7, ChannelC: 9},
			Checkpoint: CheckpointRule{
				ID:       "frontend_dev_checkpoint",
				MustPass: []string{"Feature-complete and usable", "Clean code", "Meets performance bar"},
				Evidence: []string{"Live demo", "Code repository", "Technical doc"},
				AutoGrade: map[string]float64{
					"lighthouse_score": 80,
					"test_coverage":    0.7,
				},
			},
			RemedyResources: map[string][]string{
				"micro-lessons":      {"Component model fundamentals"},
				"guided-exercises":   {"State management drill"},
				"reference-examples": {"Reference frontend app"},
			},
		},
		{
			ID:            "backend_dev",
			Name:          "Backend Development",
			Description:   "Develop the backend services",
			Order:         7,
			Prerequisites: []string{"frontend_dev"},
			BaseWeeks:     3,
			ChannelTasks: map[Channel]ChannelTask{
				ChannelA: {
					Description:  "Start from a FastAPI/Flask template",
					Requirements: []string{"API template usage", "Basic routes", "Simple database", "Basic deployment"},
					Deliverables: []string{"Backend service", "API docs", "Deploy demo"},
				},
				ChannelB: {
					Description:  "Build a RESTful API from scratch",
					Requirements: []string{"API design", "Database design", "Auth", "Error handling"},
					Deliverables: []string{"Full API service", "Database design", "Interface docs"},
				},
				ChannelC: {
					Description:  "Integrate an agent framework with permissions and audit logging",
					Requirements: []string{"Agent framework integration", "Permission system", "Full logging", "Monitoring"},
					Deliverables: []string{"Production-grade backend", "Monitoring report", "Operations plan"},
				},
			},
			EstimatedHours:  map[Channel]int{ChannelA: 12, ChannelB: 24, ChannelC: 36},
			DifficultyLevel: map[Channel]int{ChannelA: 5, ChannelB: 8, ChannelC: 10},
			Checkpoint: CheckpointRule{
				ID:       "backend_dev_checkpoint",
				MustPass: []string{"Complete API surface", "Safe data handling", "Thorough error handling"},
				Evidence: []string{"API docs", "Deployment notes", "Test cases"},
				AutoGrade: map[string]float64{
					"api_test_pass_rate": 0.9,
				},
			},
			RemedyResources: map[string][]string{
				"micro-lessons":      {"REST API fundamentals"},
				"guided-exercises":   {"Auth implementation drill"},
				"reference-examples": {"Reference backend service"},
			},
		},
	}
}
