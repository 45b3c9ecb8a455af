package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mohamedabdelbaset2026-cyber/POS/utils"
)

const (
	// geminiBaseURL is the native Gemini GenerateContent endpoint.
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	geminiModel   = "gemini-2.5-flash"

	chefSystemPrompt = "You are a professional chef assistant specializing in seafood. " +
		"Suggest a short, delicious recipe or a cooking tip for the ingredients the customer bought. " +
		"Keep the answer under 150 words with clear steps. " +
		"If the input is not seafood, apologize politely and explain that fish is your specialty."

	fallbackNoKey = "Please open the settings page and enter a Google Gemini API key to enable the smart chef."
	fallbackError = "Something went wrong while reaching the smart chef. Check that your API key is valid."
	fallbackEmpty = "Sorry, I cannot suggest a recipe right now."
)

// Gemini GenerateContent wire format.
type geminiRequest struct {
	Contents          []geminiContent    `json:"contents"`
	SystemInstruction *geminiInstruction `json:"systemInstruction,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiInstruction struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// ChefService asks the AI text service for recipe suggestions. It never
// returns an error to callers: missing credentials and transport failures
// all become a displayable fallback string.
type ChefService struct {
	Settings   *SettingsService
	BaseURL    string
	HTTPClient *http.Client
}

func NewChefService(settings *SettingsService) *ChefService {
	return &ChefService{
		Settings:   settings,
		BaseURL:    geminiBaseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Suggest sends the free-form prompt to the text service and returns the
// generated prose, or a fallback message.
func (cs *ChefService) Suggest(ctx context.Context, prompt string) string {
	apiKey, err := cs.Settings.Get(SettingAPIKey)
	if err != nil || apiKey == "" {
		return fallbackNoKey
	}

	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: prompt}}},
		},
		SystemInstruction: &geminiInstruction{
			Parts: []geminiPart{{Text: chefSystemPrompt}},
		},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		utils.ErrorLogger.Printf("chef: marshal request: %v", err)
		return fallbackError
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", cs.BaseURL, geminiModel, apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payload))
	if err != nil {
		utils.ErrorLogger.Printf("chef: build request: %v", err)
		return fallbackError
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := cs.HTTPClient.Do(req)
	if err != nil {
		utils.ErrorLogger.Printf("chef: request failed: %v", err)
		return fallbackError
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		utils.ErrorLogger.Printf("chef: read response: %v", err)
		return fallbackError
	}
	if resp.StatusCode != http.StatusOK {
		utils.ErrorLogger.Printf("chef: API returned %d: %s", resp.StatusCode, string(body))
		return fallbackError
	}

	var parsed geminiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		utils.ErrorLogger.Printf("chef: decode response: %v", err)
		return fallbackError
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return fallbackEmpty
	}

	text := parsed.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return fallbackEmpty
	}
	return text
}
