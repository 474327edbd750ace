package rerank

type RerankInput struct {
	Query     string
	Documents []string
}

type RerankOutput struct {
	Scores []float32
}
