package embedding

type EmbedInput struct {
	Texts []string
}

type EmbedOutput struct {
	Vectors   [][]float32
	Dimension int
}
