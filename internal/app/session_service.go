package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/kumamoto2401-netizen/document-qa/internal/ai"
	"github.com/kumamoto2401-netizen/document-qa/internal/model"
	"github.com/kumamoto2401-netizen/document-qa/internal/prompt"
	"github.com/kumamoto2401-netizen/document-qa/internal/repository"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNoDocument    = errors.New("no document uploaded yet")
	ErrEmptyQuestion = errors.New("question is empty")
	ErrGateway       = errors.New("completion gateway failed")
)

// TranscriptCache is the optional redis-backed transcript cache. The
// service works with a nil cache.
type TranscriptCache interface {
	GetTranscript(ctx context.Context, documentID uint) ([]model.Turn, bool, error)
	SetTranscript(ctx context.Context, documentID uint, turns []model.Turn) error
	DeleteTranscript(ctx context.Context, documentID uint) error
	MarkDirty(ctx context.Context, documentID uint) error
	IsDirty(ctx context.Context, documentID uint) (bool, error)
}

// TurnEventPublisher mirrors appended turns onto a queue after they have
// been durably persisted. Publishing is best-effort; a broker outage never
// fails a turn.
type TurnEventPublisher interface {
	Publish(ctx context.Context, turn model.Turn) error
}

// SessionService orchestrates the single chat session: upload a document,
// ask questions about the current one, read back the transcript.
type SessionService struct {
	docRepo     *repository.DocumentRepository
	turnRepo    *repository.TurnRepository
	gateway     ai.CompletionGateway
	cache       TranscriptCache
	publisher   TurnEventPublisher
	recentTurns int
}

func NewSessionService(
	docRepo *repository.DocumentRepository,
	turnRepo *repository.TurnRepository,
	gateway ai.CompletionGateway,
	cache TranscriptCache,
	publisher TurnEventPublisher,
	recentTurns int,
) *SessionService {
	if recentTurns <= 0 {
		recentTurns = prompt.DefaultRecentTurns
	}
	return &SessionService{
		docRepo:     docRepo,
		turnRepo:    turnRepo,
		gateway:     gateway,
		cache:       cache,
		publisher:   publisher,
		recentTurns: recentTurns,
	}
}

type UploadInput struct {
	Name    string
	Content string
}

// Upload persists a new document, which becomes the current one. Its
// transcript starts empty.
func (s *SessionService) Upload(ctx context.Context, input UploadInput) (*model.Document, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, ErrInvalidInput
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = "untitled.txt"
	}

	doc := &model.Document{
		Name:    name,
		Content: input.Content,
	}
	if err := s.docRepo.Create(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// CurrentDocument returns the most recently uploaded document.
func (s *SessionService) CurrentDocument(ctx context.Context) (*model.Document, error) {
	doc, err := s.docRepo.GetCurrent()
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrNoDocument
	}
	return doc, nil
}

type AskResult struct {
	DocumentID uint         `json:"document_id"`
	Turns      []model.Turn `json:"turns"`
	Answer     string       `json:"answer"`
}

// Ask runs one question/answer exchange against the current document.
// The user turn is persisted before the gateway call, so a gateway failure
// leaves the question in the transcript with no assistant turn.
func (s *SessionService) Ask(ctx context.Context, question string) (*AskResult, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, ErrEmptyQuestion
	}

	doc, err := s.docRepo.GetCurrent()
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrNoDocument
	}

	// Read the prior-turn window before appending the question so the
	// question is not duplicated in the prompt.
	recent, err := s.turnRepo.ListRecentByDocumentID(doc.ID, s.recentTurns)
	if err != nil {
		return nil, err
	}

	userTurn, err := s.turnRepo.Append(doc.ID, model.RoleUser, question)
	if err != nil {
		return nil, err
	}
	s.afterAppend(ctx, *userTurn)

	promptText := prompt.Compose(doc.Content, recent, question)

	answer, err := s.gateway.Complete(ctx, promptText)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		answer = "The model returned an empty response."
	}

	assistantTurn, err := s.turnRepo.Append(doc.ID, model.RoleAssistant, answer)
	if err != nil {
		return nil, err
	}
	s.afterAppend(ctx, *assistantTurn)

	return &AskResult{
		DocumentID: doc.ID,
		Turns:      []model.Turn{*userTurn, *assistantTurn},
		Answer:     answer,
	}, nil
}

type TranscriptView struct {
	DocumentID   uint         `json:"document_id"`
	DocumentName string       `json:"document_name"`
	Turns        []model.Turn `json:"turns"`
}

// Transcript returns the current document's full transcript in order.
// Reads never mutate stored state, so repeated calls render identically.
func (s *SessionService) Transcript(ctx context.Context) (*TranscriptView, error) {
	doc, err := s.docRepo.GetCurrent()
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrNoDocument
	}

	if s.cache != nil {
		dirty, dirtyErr := s.cache.IsDirty(ctx, doc.ID)
		if dirtyErr == nil && !dirty {
			if cached, hit, cacheErr := s.cache.GetTranscript(ctx, doc.ID); cacheErr == nil && hit {
				return &TranscriptView{DocumentID: doc.ID, DocumentName: doc.Name, Turns: cached}, nil
			}
		}
	}

	turns, err := s.turnRepo.ListByDocumentID(doc.ID)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if dirty, dirtyErr := s.cache.IsDirty(ctx, doc.ID); dirtyErr == nil && !dirty {
			_ = s.cache.SetTranscript(ctx, doc.ID, turns)
		}
	}
	return &TranscriptView{DocumentID: doc.ID, DocumentName: doc.Name, Turns: turns}, nil
}

// afterAppend invalidates the cached transcript and mirrors the turn onto
// the event queue. Both are best-effort: the durable write already
// happened.
func (s *SessionService) afterAppend(ctx context.Context, turn model.Turn) {
	if s.cache != nil {
		_ = s.cache.MarkDirty(ctx, turn.DocumentID)
		_ = s.cache.DeleteTranscript(ctx, turn.DocumentID)
	}
	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, turn); err != nil {
			log.Printf("publish turn event failed: %v", err)
		}
	}
}
