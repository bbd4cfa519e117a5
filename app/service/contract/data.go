package contract

// SentimentPayload is the JSON contract expected from a sentiment prompt.
type SentimentPayload struct {
	Sentiment   string
	Confidence  float64
	Explanation string
}

// SummaryPayload is the JSON contract expected from a summarize prompt.
type SummaryPayload struct {
	Summary   string
	KeyPoints []string
}

// ImagePayload is the JSON contract expected from a vision prompt. Scene,
// Colors, Mood and Details are optional enrichment fields some models return.
type ImagePayload struct {
	Description string
	Tags        []string
	Objects     []DetectedObject
	Scene       string
	Colors      []string
	Mood        string
	Details     string
}

type DetectedObject struct {
	Name       string
	Confidence float64
}
