package processor

import (
	"fmt"

	crm "voice-crm/internal/crm/processor"
)

// CommandKind names one of the tools the classifier may call
type CommandKind string

const (
	KindFindOrCreateContact  CommandKind = "find_or_create_contact"
	KindAddNoteToContact     CommandKind = "add_note_to_contact"
	KindCreateDealForContact CommandKind = "create_deal_for_contact"
	KindCreateTaskForContact CommandKind = "create_task_for_contact"
)

// Kinds lists every supported command kind in registry order
var Kinds = []CommandKind{
	KindFindOrCreateContact,
	KindAddNoteToContact,
	KindCreateDealForContact,
	KindCreateTaskForContact,
}

// Command is a single typed CRM instruction. Exactly one payload is set and
// it matches Kind.
type Command struct {
	Kind    CommandKind
	Contact *crm.ContactInput
	Note    *crm.NoteInput
	Deal    *crm.DealInput
	Task    *crm.TaskInput

	// CallID, Args and Signature echo the model's function call, when there
	// was one, so the call can be replayed on the next turn.
	CallID    string
	Args      map[string]any
	Signature []byte
}

// Validate checks the payload matches the kind
func (c Command) Validate() error {
	set := 0
	for _, present := range []bool{c.Contact != nil, c.Note != nil, c.Deal != nil, c.Task != nil} {
		if present {
			set++
		}
	}
	if set != 1 {
		return fmt.Errorf("%w: %s carries %d payloads", ErrInvalidCommand, c.Kind, set)
	}

	var ok bool
	switch c.Kind {
	case KindFindOrCreateContact:
		ok = c.Contact != nil
	case KindAddNoteToContact:
		ok = c.Note != nil
	case KindCreateDealForContact:
		ok = c.Deal != nil
	case KindCreateTaskForContact:
		ok = c.Task != nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTool, c.Kind)
	}
	if !ok {
		return fmt.Errorf("%w: payload does not match %s", ErrInvalidCommand, c.Kind)
	}
	return nil
}

// Classification is the classifier's reading of a transcript. Reply holds the
// model's own text, used when no command applies.
type Classification struct {
	Commands []Command
	Reply    string
}

// Turn is one model answer's commands and how each of them ran
type Turn struct {
	Executions []Execution
}

// Execution records one executed command
type Execution struct {
	Command Command
	Result  any
	Err     error
}

// Succeeded reports whether the command ran without error
func (e Execution) Succeeded() bool {
	return e.Err == nil
}

// Response is the function response handed back to the model
func (e Execution) Response() map[string]any {
	if e.Err != nil {
		return map[string]any{"error": e.Err.Error()}
	}
	return map[string]any{"result": e.Result}
}

// Action is the JSON view of an Execution
type Action struct {
	Tool      CommandKind    `json:"tool"`
	Arguments map[string]any `json:"arguments,omitempty"`
	Result    any            `json:"result,omitempty"`
	Error     string         `json:"error,omitempty"`
}

// Actions converts executions for API responses
func Actions(executions []Execution) []Action {
	actions := make([]Action, 0, len(executions))
	for _, e := range executions {
		a := Action{Tool: e.Command.Kind, Arguments: e.Command.Args, Result: e.Result}
		if e.Err != nil {
			a.Error = e.Err.Error()
		}
		actions = append(actions, a)
	}
	return actions
}
