package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	crm "voice-crm/internal/crm/processor"
	"voice-crm/internal/observability"
)

// Classifier reads the transcript, and the commands already run for it, and
// answers with the next commands or a final reply
type Classifier interface {
	Classify(ctx context.Context, transcript string, history []Turn) (Classification, error)
}

// Synthesizer summarizes a transcript without calling any tools
type Synthesizer interface {
	Summarize(ctx context.Context, transcript string) (string, error)
}

// CRMOperations defines the CRM operations commands are executed against
type CRMOperations interface {
	FindOrCreateContact(ctx context.Context, in crm.ContactInput) (crm.ContactResult, error)
	AddNoteToContact(ctx context.Context, in crm.NoteInput) (crm.NoteResult, error)
	CreateDealForContact(ctx context.Context, in crm.DealInput) (crm.DealResult, error)
	CreateTaskForContact(ctx context.Context, in crm.TaskInput) (crm.TaskResult, error)
}

var (
	ErrEmptyTranscript   = errors.New("transcript is empty")
	ErrUnknownTool       = errors.New("unknown tool")
	ErrInvalidCommand    = errors.New("invalid command")
	ErrClassification    = errors.New("failed to classify transcript")
	ErrSynthesisFailed   = errors.New("failed to summarize transcript")
	ErrSynthesisDisabled = errors.New("summarization is not configured")
	ErrTurnLimit         = errors.New("model kept calling tools past the turn limit")
)

const (
	noActionMessage = "No CRM action was identified."

	// DefaultMaxTurns bounds how many rounds of tool calls one transcript may run
	DefaultMaxTurns = 10
)

type IntentProcessor struct {
	classifier  Classifier
	synthesizer Synthesizer
	crm         CRMOperations
	maxTurns    int
	logger      *observability.Logger
}

// New creates an IntentProcessor. synthesizer may be nil.
func New(classifier Classifier, synthesizer Synthesizer, operations CRMOperations, logger *observability.Logger) IntentProcessor {
	return IntentProcessor{
		classifier:  classifier,
		synthesizer: synthesizer,
		crm:         operations,
		maxTurns:    DefaultMaxTurns,
		logger:      logger,
	}
}

// DispatchResult is the outcome of Dispatch
type DispatchResult struct {
	Message    string
	Executions []Execution
}

// Dispatch runs the transcript as a tool-calling conversation. Each turn the
// classifier sees the results of every earlier command, so a later call can use
// an id an earlier one returned. The loop ends when the model answers without
// commands, and stops at the first failing command. Executions always lists
// what ran.
func (p *IntentProcessor) Dispatch(ctx context.Context, transcript string) (DispatchResult, error) {
	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		return DispatchResult{}, ErrEmptyTranscript
	}

	var (
		history    []Turn
		executions []Execution
	)
	for turn := 0; ; turn++ {
		turnCtx := observability.WithFields(ctx, observability.Field{Key: "turn", Value: turn + 1})

		classification, err := p.classifier.Classify(turnCtx, transcript, history)
		if err != nil {
			p.logger.Error(turnCtx, "failed to classify transcript", err)
			return partial(executions), fmt.Errorf("%w: %w", ErrClassification, err)
		}

		if len(classification.Commands) == 0 {
			p.logger.Info(observability.WithFields(turnCtx,
				observability.Field{Key: "command_count", Value: len(executions)},
			), "dispatch finished")
			return DispatchResult{Message: finalMessage(classification.Reply, executions), Executions: executions}, nil
		}

		if turn >= p.maxTurns {
			p.logger.Warn(turnCtx, "model kept calling tools past the turn limit")
			return partial(executions), fmt.Errorf("%w (%d)", ErrTurnLimit, p.maxTurns)
		}

		current := make([]Execution, 0, len(classification.Commands))
		for _, cmd := range classification.Commands {
			execution := p.execute(turnCtx, cmd)
			executions = append(executions, execution)
			current = append(current, execution)

			if execution.Err != nil {
				p.logger.Error(observability.WithFields(turnCtx,
					observability.Field{Key: "command_index", Value: len(executions) - 1},
					observability.Field{Key: "command", Value: string(cmd.Kind)},
				), "command failed", execution.Err)
				err := fmt.Errorf("command %d (%s) failed: %w", len(executions), cmd.Kind, execution.Err)
				return partial(executions), err
			}
		}
		history = append(history, Turn{Executions: current})
	}
}

func partial(executions []Execution) DispatchResult {
	if len(executions) == 0 {
		return DispatchResult{}
	}
	return DispatchResult{Message: Summarize(executions), Executions: executions}
}

// finalMessage prefers the model's closing text and falls back to a local summary
func finalMessage(reply string, executions []Execution) string {
	if reply = strings.TrimSpace(reply); reply != "" {
		return reply
	}
	return Summarize(executions)
}

// Synthesize summarizes a transcript
func (p *IntentProcessor) Synthesize(ctx context.Context, transcript string) (string, error) {
	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		return "", ErrEmptyTranscript
	}
	if p.synthesizer == nil {
		return "", ErrSynthesisDisabled
	}

	summary, err := p.synthesizer.Summarize(ctx, transcript)
	if err != nil {
		p.logger.Error(ctx, "failed to summarize transcript", err)
		return "", fmt.Errorf("%w: %w", ErrSynthesisFailed, err)
	}
	return summary, nil
}

func (p *IntentProcessor) execute(ctx context.Context, cmd Command) Execution {
	if err := cmd.Validate(); err != nil {
		return Execution{Command: cmd, Err: err}
	}

	var (
		result any
		err    error
	)
	switch cmd.Kind {
	case KindFindOrCreateContact:
		result, err = p.crm.FindOrCreateContact(ctx, *cmd.Contact)
	case KindAddNoteToContact:
		result, err = p.crm.AddNoteToContact(ctx, *cmd.Note)
	case KindCreateDealForContact:
		result, err = p.crm.CreateDealForContact(ctx, *cmd.Deal)
	case KindCreateTaskForContact:
		result, err = p.crm.CreateTaskForContact(ctx, *cmd.Task)
	}
	if err != nil {
		return Execution{Command: cmd, Err: err}
	}
	return Execution{Command: cmd, Result: result}
}

// Summarize renders executions as a short deterministic confirmation
func Summarize(executions []Execution) string {
	if len(executions) == 0 {
		return noActionMessage
	}

	lines := make([]string, 0, len(executions))
	for _, e := range executions {
		if e.Err != nil {
			lines = append(lines, fmt.Sprintf("Failed to run %s: %s.", e.Command.Kind, e.Err))
			continue
		}
		lines = append(lines, describe(e))
	}
	return strings.Join(lines, " ")
}

func describe(e Execution) string {
	switch r := e.Result.(type) {
	case crm.ContactResult:
		if r.WasCreated {
			return fmt.Sprintf("Created contact %s (id %s).", r.Email, r.ContactID)
		}
		return fmt.Sprintf("Found contact %s (id %s).", r.Email, r.ContactID)
	case crm.NoteResult:
		return fmt.Sprintf("Added note %s to contact %s.", r.NoteID, r.ContactID)
	case crm.DealResult:
		name := ""
		if e.Command.Deal != nil {
			name = e.Command.Deal.Name
		}
		return fmt.Sprintf("Created deal %q (id %s)%s.", name, r.DealID, forContact(r.ContactID))
	case crm.TaskResult:
		subject, due := "", ""
		if e.Command.Task != nil {
			subject, due = e.Command.Task.Subject, e.Command.Task.DueAt
		}
		return fmt.Sprintf("Created task %q (id %s) due %s%s.", subject, r.TaskID, due, forContact(r.ContactID))
	default:
		return fmt.Sprintf("Ran %s.", e.Command.Kind)
	}
}

func forContact(contactID string) string {
	if contactID == "" {
		return ""
	}
	return " for contact " + contactID
}
