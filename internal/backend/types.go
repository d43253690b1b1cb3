package backend

// Wire types of the translation backend. Field names follow the backend's
// camelCase JSON.

type TranslateRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

type TranslateResponse struct {
	TranslatedText string `json:"translatedText"`
}

type RefineRequest struct {
	Text string `json:"text"`
}

type RefineResponse struct {
	RefinedText string `json:"refinedText"`
}

type SpeechToTextResponse struct {
	Transcription string `json:"transcription"`
}

type TextToSpeechRequest struct {
	Text  string `json:"text"`
	Voice string `json:"voice"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type GreetResponse struct {
	Greeting string `json:"greeting"`
}

type errorResponse struct {
	Error string `json:"error"`
}
