// internal/agents/generate-reply/models.go
package generatereply

type Input struct {
	Message string `json:"message"`
}

type Output struct {
	Reply string `json:"reply"`
}

// Request/response shapes for the generateContent endpoint. Only the
// fields the pipeline reads are mapped.
type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}
