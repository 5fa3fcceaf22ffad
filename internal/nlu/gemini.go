package nlu

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/900mahdi/mohasib3/internal/models"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// promptTemplate enumerates the exact target field names so the model only
// ever answers within that schema. Kept verbatim from the original product.
const promptTemplate = `قم بتحليل النص التالي واستخرج القيم المالية المتعلقة بـ (المخزون، الدخل، المصاريف، الأجور، الديون لنا، الديون علينا، السيولة).
النص: "%s"
أرجع النتيجة بصيغة JSON فقط بالأسماء التالية:
inventory, income, expenses, wages, debtsToUs, debtsByUs, liquidity.
إذا لم يذكر الحقل، اتركه فارغاً.`

// GeminiExtractor calls the Gemini generateContent endpoint with a typed
// JSON response schema restricted to the seven financial field names.
type GeminiExtractor struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

func NewGeminiExtractor(apiKey, model string) *GeminiExtractor {
	return &GeminiExtractor{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// WithBaseURL points the extractor at a different endpoint (tests).
func (g *GeminiExtractor) WithBaseURL(url string) *GeminiExtractor {
	g.baseURL = url
	return g
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string          `json:"responseMimeType,omitempty"`
	ResponseSchema   *responseSchema `json:"responseSchema,omitempty"`
}

type responseSchema struct {
	Type       string                    `json:"type"`
	Properties map[string]schemaProperty `json:"properties"`
}

type schemaProperty struct {
	Type string `json:"type"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func fieldSchema() *responseSchema {
	props := map[string]schemaProperty{}
	for _, name := range []string{
		"inventory", "income", "expenses", "wages",
		"debtsToUs", "debtsByUs", "liquidity",
	} {
		props[name] = schemaProperty{Type: "NUMBER"}
	}
	return &responseSchema{Type: "OBJECT", Properties: props}
}

// Extract sends the utterance to the service and decodes the structured
// answer. Any failure along the way degrades to an empty partial; the user
// never sees a difference between "nothing understood" and "service failed".
func (g *GeminiExtractor) Extract(ctx context.Context, utterance string) models.PartialRecord {
	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: fmt.Sprintf(promptTemplate, utterance)}}}},
		GenerationConfig: &generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   fieldSchema(),
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		log.Println("gemini request encode:", err)
		return models.PartialRecord{}
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", g.baseURL, g.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		log.Println("gemini request build:", err)
		return models.PartialRecord{}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		log.Println("gemini request failed:", err)
		return models.PartialRecord{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Println("gemini unexpected status:", resp.StatusCode)
		return models.PartialRecord{}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Println("gemini response read:", err)
		return models.PartialRecord{}
	}

	var decoded generateResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		log.Println("gemini response decode:", err)
		return models.PartialRecord{}
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return models.PartialRecord{}
	}

	var partial models.PartialRecord
	if err := json.Unmarshal([]byte(decoded.Candidates[0].Content.Parts[0].Text), &partial); err != nil {
		log.Println("gemini field decode:", err)
		return models.PartialRecord{}
	}

	return partial
}
