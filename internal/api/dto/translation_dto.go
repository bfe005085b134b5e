package dto

// TranslationRequest payload for the translation endpoints.
type TranslationRequest struct {
	Text string `json:"text"`
}

// TranslationResponse echoes the input alongside the result.
type TranslationResponse struct {
	Original       string `json:"original"`
	TranslatedText string `json:"translated_text"`
}
