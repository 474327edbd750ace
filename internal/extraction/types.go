package extraction

const (
	// MaxChunkLength bounds memory and compute per chunk; longer chunks are
	// truncated before inference and the truncated text is echoed back.
	MaxChunkLength = 2048

	// MinEntityLength filters single-character noise left over from
	// sub-word token cleanup.
	MinEntityLength = 2
)

type ExtractInput struct {
	Chunks []string
}

type ExtractOutput struct {
	Results       []ChunkResult
	TotalEntities int
}

// ChunkResult is one input chunk's extraction result: the (possibly
// truncated) text the model actually saw, plus its cleaned entities.
type ChunkResult struct {
	Text     string
	Entities []Entity
}

type Entity struct {
	Text  string
	Label string
	Score float64
}
