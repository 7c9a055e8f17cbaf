package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/themis-legal/themis-backend/models"
	"github.com/themis-legal/themis-backend/repositories"
	"github.com/themis-legal/themis-backend/usecases/executor_factory"
	"github.com/themis-legal/themis-backend/usecases/security"
)

type AssistantUseCase struct {
	enforceSecurity     security.EnforceSecurityAssistant
	enforceCaseSecurity security.EnforceSecurityCase
	executorFactory     executor_factory.ExecutorFactory
	assistantRepository repositories.AssistantRepository
	caseRepository      repositories.CaseRepository
	documentRepository  repositories.DocumentRepository
}

// Ask forwards the question to the LLM provider. When a case id is given, a
// short summary of the case is included as context, after the usual access
// check so the assistant cannot be used to read someone else's case.
func (usecase *AssistantUseCase) Ask(ctx context.Context, question string, caseId *string) (string, error) {
	if err := usecase.enforceSecurity.AskAssistant(); err != nil {
		return "", err
	}

	var caseContext string
	if caseId != nil {
		exec := usecase.executorFactory.NewExecutor()
		c, err := usecase.caseRepository.GetCaseById(ctx, exec, *caseId)
		if err != nil {
			return "", err
		}
		if err := usecase.enforceCaseSecurity.ReadCase(c); err != nil {
			return "", err
		}
		documents, err := usecase.documentRepository.ListDocumentsForCase(ctx, exec, c.Id, false)
		if err != nil {
			return "", err
		}
		caseContext = summarizeCase(c, documents)
	}

	return usecase.assistantRepository.Ask(ctx, question, caseContext)
}

func summarizeCase(c models.Case, documents []models.Document) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Case number: %s\n", c.CaseNumber)
	fmt.Fprintf(&b, "Title: %s\n", c.Title)
	fmt.Fprintf(&b, "Status: %s\n", c.Status)
	if c.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", c.Description)
	}
	if len(documents) > 0 {
		b.WriteString("Documents on file:\n")
		for _, document := range documents {
			fmt.Fprintf(&b, "- %s (%s, %s)\n", document.FileName, document.DocumentType, document.Status)
		}
	}
	return b.String()
}
