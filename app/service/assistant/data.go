package assistant

// ChatReply carries the model response together with the session that the
// exchange was recorded under.
type ChatReply struct {
	Response  string `json:"response"`
	SessionID string `json:"sessionId"`
}

type SentimentResult struct {
	Text            string  `json:"text"`
	Sentiment       string  `json:"sentiment"`
	ConfidenceScore float64 `json:"confidenceScore"`
	Explanation     string  `json:"explanation"`
}

type DocumentSummary struct {
	OriginalText   string   `json:"originalText"`
	Summary        string   `json:"summary"`
	OriginalLength int      `json:"originalLength"`
	SummaryLength  int      `json:"summaryLength"`
	KeyPoints      []string `json:"keyPoints"`
}

type ImageAnalysisResult struct {
	Description string           `json:"description"`
	Tags        []string         `json:"tags"`
	Objects     []DetectedObject `json:"objects"`
}

type DetectedObject struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}
