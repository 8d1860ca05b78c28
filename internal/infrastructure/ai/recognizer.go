// Package ai adaptador de reconocimiento visual de cartas sobre la API de
// OpenAI. La foto se manda como data URL y el modelo devuelve un JSON con
// nombre, número y sufijo.
package ai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/kartoteka/kartoteka-api/internal/application/dto"
	"github.com/kartoteka/kartoteka-api/internal/application/ports"
)

// Verificar en tiempo de compilación que OpenAIRecognizer implementa CardRecognizer.
var _ ports.CardRecognizer = (*OpenAIRecognizer)(nil)

// recognitionPrompt pide JSON puro; aun así la respuesta se limpia de cercas
// de markdown porque los modelos las añaden a veces.
const recognitionPrompt = `Identyfikuj kartę Pokémon na zdjęciu.
Zwróć WYŁĄCZNIE obiekt JSON (bez dodatkowego tekstu) o dokładnej strukturze:
{
  "name": "<nazwa karty bez sufiksu wariantu>",
  "number": "<numer karty, np. 25/102 albo 025>",
  "set": "<nazwa zestawu, jeśli widoczna, inaczej pusty string>",
  "suffix": "<EX, GX, V, VMAX, VSTAR, Shiny, Promo albo pusty string>"
}
Zasady:
- name: bez sufiksu (dla "Pikachu VMAX" name to "Pikachu", suffix "VMAX").
- number: dokładnie tak jak wydrukowany na karcie.
- set: tylko jeśli symbol albo nazwa zestawu jest czytelna.
- suffix: pusty string jeśli karta nie ma wariantu.`

// OpenAIRecognizer implementa el puerto con el modelo de visión de OpenAI.
type OpenAIRecognizer struct {
	client *openai.Client
	model  string
}

// NewOpenAIRecognizer construye el adaptador. model suele ser "gpt-4o".
func NewOpenAIRecognizer(apiKey, model string) *OpenAIRecognizer {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIRecognizer{client: &client, model: model}
}

// recognitionPayload es el JSON que esperamos recibir del modelo.
type recognitionPayload struct {
	Name   string `json:"name"`
	Number string `json:"number"`
	Set    string `json:"set"`
	Suffix string `json:"suffix"`
}

// RecognizeCard manda la foto al modelo y normaliza su respuesta.
func (s *OpenAIRecognizer) RecognizeCard(ctx context.Context, image []byte) (*dto.CardRecognitionDTO, error) {
	dataURL := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(image)

	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(s.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage([]openai.ChatCompletionContentPartUnionParam{
				openai.TextContentPart(recognitionPrompt),
				openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{URL: dataURL}),
			}),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("AI: llamada a OpenAI fallida: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("AI: OpenAI devolvió respuesta vacía")
	}

	raw := stripMarkdownFences(resp.Choices[0].Message.Content)
	var payload recognitionPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("AI: respuesta del modelo no es JSON válido: %w (respuesta: %s)", err, raw)
	}

	out := &dto.CardRecognitionDTO{
		Name:   strings.TrimSpace(payload.Name),
		Number: extractNumber(payload.Number),
		Set:    strings.TrimSpace(payload.Set),
		Suffix: strings.TrimSpace(payload.Suffix),
	}
	if out.Suffix == "" {
		out.Name, out.Suffix = splitTrailingSuffix(out.Name)
	}
	return out, nil
}

// stripMarkdownFences quita las cercas ```json ... ``` si el modelo las añadió.
func stripMarkdownFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

var numberRe = regexp.MustCompile(`\d+`)

// extractNumber se queda con el primer grupo de dígitos: "025/102" -> "025".
func extractNumber(s string) string {
	return numberRe.FindString(s)
}

// knownSuffixes variantes que pueden venir pegadas al final del nombre.
var knownSuffixes = []string{"EX", "GX", "V", "VMAX", "VSTAR", "Shiny", "Promo"}

// splitTrailingSuffix separa un sufijo de variante al final del nombre.
func splitTrailingSuffix(name string) (string, string) {
	fields := strings.Fields(name)
	if len(fields) < 2 {
		return name, ""
	}
	last := fields[len(fields)-1]
	for _, suf := range knownSuffixes {
		if strings.EqualFold(last, suf) {
			return strings.Join(fields[:len(fields)-1], " "), suf
		}
	}
	return name, ""
}
