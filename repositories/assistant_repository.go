package repositories

import (
	"context"

	"github.com/cockroachdb/errors"
	"google.golang.org/genai"

	"github.com/themis-legal/themis-backend/models"
)

const assistantSystemPrompt = `You are a legal assistant for an Indian case management platform.
You help judges, lawyers and clients with procedural questions about their cases.
You never give binding legal advice and you always recommend consulting the lawyer
of record for decisions. Answer concisely.`

type AssistantRepository interface {
	Ask(ctx context.Context, question string, caseContext string) (string, error)
}

type assistantRepository struct {
	client *genai.Client
	model  string
}

func NewAssistantRepository(ctx context.Context, apiKey, model string) (AssistantRepository, error) {
	if apiKey == "" {
		return &disabledAssistantRepository{}, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create genai client")
	}

	return &assistantRepository{
		client: client,
		model:  model,
	}, nil
}

func (repo *assistantRepository) Ask(ctx context.Context, question string, caseContext string) (string, error) {
	prompt := question
	if caseContext != "" {
		prompt = "Case context:\n" + caseContext + "\n\nQuestion:\n" + question
	}

	response, err := repo.client.Models.GenerateContent(
		ctx,
		repo.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(assistantSystemPrompt, genai.RoleUser),
		},
	)
	if err != nil {
		return "", errors.Join(models.ErrAssistantUnavailable, err)
	}

	answer := response.Text()
	if answer == "" {
		return "", errors.Wrap(models.ErrAssistantUnavailable, "empty model response")
	}
	return answer, nil
}

// disabledAssistantRepository is used when no API key is configured, so that
// the rest of the API works without an LLM provider.
type disabledAssistantRepository struct{}

func (repo *disabledAssistantRepository) Ask(ctx context.Context, question string, caseContext string) (string, error) {
	return "", errors.Wrap(models.ErrAssistantUnavailable, "no assistant provider configured")
}
