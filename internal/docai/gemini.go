package docai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GeminiExtractor implements EntityExtractor against the Gemini API,
// prompting for a strict JSON entity list over the inline PDF.
type GeminiExtractor struct {
	Model string
}

// NewGeminiExtractor returns an extractor using the given model name.
func NewGeminiExtractor(model string) *GeminiExtractor {
	return &GeminiExtractor{Model: model}
}

const entityPrompt = "You are a document-understanding processor for PDF bank and credit-card statements.\n\n" +
	"Task:\n" +
	"- Identify the bank name and EVERY transaction line item in the attached statement.\n" +
	"- Output STRICT JSON only (no comments, no trailing commas, no extra text).\n" +
	"- Output a JSON array of entity objects.\n\n" +
	"Each entity object has these fields:\n" +
	"- \"type\": string, one of \"bank_name\" or \"table_item\"\n" +
	"- \"mention_text\": string, the full text span of the entity\n" +
	"- \"properties\": array of nested entity objects (line items only)\n\n" +
	"Each table_item's properties use these types, filling only the side that applies:\n" +
	"- \"transaction_withdrawal\": amount text for money out (e.g. \"$4.50\")\n" +
	"- \"transaction_withdrawal_description\": string\n" +
	"- \"transaction_withdrawal_date\": string, as printed\n" +
	"- \"transaction_deposit\": amount text for money in\n" +
	"- \"transaction_deposit_description\": string\n" +
	"- \"transaction_deposit_date\": string, as printed\n\n" +
	"Return ONLY valid raw JSON.\n" +
	"Do NOT wrap the response in code fences.\n" +
	"Output must begin with \"[\" and end with \"]\".\n"

// ExtractEntities sends the PDF to the model and decodes its entity list.
func (g *GeminiExtractor) ExtractEntities(ctx context.Context, pdfBytes []byte) ([]Entity, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: entityPrompt},
				{
					InlineData: &genai.Blob{
						MIMEType: "application/pdf",
						Data:     pdfBytes,
					},
				},
			},
		},
	}

	resp, err := client.Models.GenerateContent(ctx, g.Model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}
	rawText := resp.Text()
	if rawText == "" {
		return nil, fmt.Errorf("empty response from model")
	}

	var entities []Entity
	clean := cleanModelJSON(rawText)
	if err := json.Unmarshal([]byte(clean), &entities); err != nil {
		return nil, fmt.Errorf("unmarshal entity JSON: %w\nraw response: %s", err, rawText)
	}
	return entities, nil
}

// cleanModelJSON strips Markdown fences and surrounding junk when the model
// ignores the raw-JSON instruction.
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
	}
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}
	s = strings.TrimSpace(s)

	if start := strings.Index(s, "["); start != -1 {
		if end := strings.LastIndex(s, "]"); end != -1 && end > start {
			s = strings.TrimSpace(s[start : end+1])
		}
	}
	return s
}
