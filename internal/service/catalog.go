package service

import "finextract/internal/dto"

// ModelCatalog lists the vision models offered to callers. The extraction
// client itself is model-agnostic: any model id it is handed goes straight
// into the request, including ids not in this list.
func ModelCatalog() []dto.ModelInfo {
	return []dto.ModelInfo{
		{
			ID:          "mistralai/mistral-small-3.1-24b-instruct",
			Name:        "Mistral Small (24B)",
			Description: "Mistral AI's 24B parameter model with strong reasoning capabilities.",
			Badge:       "RECOMMENDED",
		},
		{
			ID:          "google/gemma-3-27b-it",
			Name:        "Google Gemma 3 (27B)",
			Description: "Google's Gemma 3 model optimized for instruction following with 27B parameters.",
			Badge:       "FAST",
		},
		{
			ID:          "qwen/qwen2.5-vl-32b-instruct:free",
			Name:        "Qwen 2.5 VL (32B)",
			Description: "Qwen's 32B vision-language model with excellent text and image comprehension abilities.",
			Badge:       "OPTIMAL",
		},
	}
}
