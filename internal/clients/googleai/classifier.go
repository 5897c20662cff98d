package googleai

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	crm "voice-crm/internal/crm/processor"
	intent "voice-crm/internal/intent/processor"

	"google.golang.org/genai"
)

const crmInstruction = "You are a CRM assistant for HubSpot. Decide the user's intent and ONLY call the minimal set of tools needed. " +
	"Common intents: create/update contact, add note, create deal, create task. Prefer email to find contacts. " +
	"Produce concise confirmations."

func (c *Client) systemInstruction() *genai.Content {
	now := c.now()
	text := fmt.Sprintf("%s\nCurrent date and time: %s (%s). Express every date or time argument as ISO-8601, "+
		"timestamps with an explicit UTC offset.", crmInstruction, now.Format(time.RFC3339), now.Weekday())
	return &genai.Content{Parts: []*genai.Part{{Text: text}}}
}

func stringProp(description string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeString, Description: description}
}

// functionDeclarations is the fixed tool registry exposed to the model
func functionDeclarations() []*genai.FunctionDeclaration {
	return []*genai.FunctionDeclaration{
		{
			Name:        string(intent.KindFindOrCreateContact),
			Description: "Find a contact by email, creating it when missing. Supplied names and phone are added to an existing contact.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"email":      stringProp("Contact email address."),
					"first_name": stringProp("First name."),
					"last_name":  stringProp("Last name."),
					"phone":      stringProp("Phone number."),
				},
				Required: []string{"email"},
			},
		},
		{
			Name:        string(intent.KindAddNoteToContact),
			Description: "Add a free-text note to an existing contact identified by contact_id or email.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"note_body":  stringProp("The note text."),
					"contact_id": stringProp("HubSpot contact id, if known."),
					"email":      stringProp("Contact email, used when contact_id is unknown."),
				},
				Required: []string{"note_body"},
			},
		},
		{
			Name:        string(intent.KindCreateDealForContact),
			Description: "Create a deal, optionally associated to a contact identified by contact_id or email.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"dealname":       stringProp("Deal name."),
					"contact_id":     stringProp("HubSpot contact id, if known."),
					"email":          stringProp("Contact email, used when contact_id is unknown."),
					"amount":         {Type: genai.TypeNumber, Description: "Deal amount."},
					"pipeline":       stringProp("Pipeline id."),
					"dealstage":      stringProp("Deal stage id."),
					"close_date_iso": stringProp("Expected close date, YYYY-MM-DD."),
				},
				Required: []string{"dealname"},
			},
		},
		{
			Name:        string(intent.KindCreateTaskForContact),
			Description: "Create a task due at a given time, optionally associated to a contact identified by contact_id or email.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"subject":          stringProp("Task subject."),
					"due_datetime_iso": stringProp("Due timestamp, ISO-8601 with UTC offset."),
					"body":             stringProp("Task details."),
					"contact_id":       stringProp("HubSpot contact id, if known."),
					"email":            stringProp("Contact email, used when contact_id is unknown."),
					"priority": {
						Type:        genai.TypeString,
						Description: "Task priority.",
						Enum:        []string{crm.PriorityLow, crm.PriorityMedium, crm.PriorityHigh},
					},
				},
				Required: []string{"subject", "due_datetime_iso"},
			},
		},
	}
}

func (c *Client) toolConfig(mode genai.FunctionCallingConfigMode) ([]*genai.Tool, *genai.ToolConfig) {
	return []*genai.Tool{{FunctionDeclarations: functionDeclarations()}},
		&genai.ToolConfig{FunctionCallingConfig: &genai.FunctionCallingConfig{Mode: mode}}
}

// Classify asks the model which tools to call next. The transcript opens the
// conversation and every earlier turn is replayed as the model's function
// calls followed by their responses, so the model can chain on returned ids.
func (c *Client) Classify(ctx context.Context, transcript string, history []intent.Turn) (intent.Classification, error) {
	tools, toolConfig := c.toolConfig(genai.FunctionCallingConfigModeAuto)
	config := &genai.GenerateContentConfig{
		SystemInstruction: c.systemInstruction(),
		Tools:             tools,
		ToolConfig:        toolConfig,
		Temperature:       genai.Ptr[float32](0),
	}

	contents := append([]*genai.Content{userText(transcript)}, replay(history)...)
	resp, err := c.generate(ctx, "classify", contents, config)
	if err != nil {
		return intent.Classification{}, err
	}

	var classification intent.Classification
	var reply strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part == nil {
			continue
		}
		if part.FunctionCall != nil {
			cmd, err := commandFromCall(part.FunctionCall)
			if err != nil {
				return intent.Classification{}, err
			}
			cmd.Signature = part.ThoughtSignature
			classification.Commands = append(classification.Commands, cmd)
			continue
		}
		if !part.Thought {
			reply.WriteString(part.Text)
		}
	}
	classification.Reply = strings.TrimSpace(reply.String())
	return classification, nil
}

// replay renders each turn as a model message with its function calls and a
// user message with the matching function responses
func replay(history []intent.Turn) []*genai.Content {
	contents := make([]*genai.Content, 0, 2*len(history))
	for _, turn := range history {
		calls := make([]*genai.Part, 0, len(turn.Executions))
		responses := make([]*genai.Part, 0, len(turn.Executions))
		for _, e := range turn.Executions {
			name := string(e.Command.Kind)
			calls = append(calls, &genai.Part{
				FunctionCall: &genai.FunctionCall{
					ID:   e.Command.CallID,
					Name: name,
					Args: e.Command.Args,
				},
				ThoughtSignature: e.Command.Signature,
			})
			responses = append(responses, &genai.Part{FunctionResponse: &genai.FunctionResponse{
				ID:       e.Command.CallID,
				Name:     name,
				Response: e.Response(),
			}})
		}
		contents = append(contents,
			&genai.Content{Role: roleModel, Parts: calls},
			&genai.Content{Role: roleUser, Parts: responses},
		)
	}
	return contents
}

// commandFromCall maps a model function call onto a typed command
func commandFromCall(call *genai.FunctionCall) (intent.Command, error) {
	args := call.Args
	if args == nil {
		args = map[string]any{}
	}
	cmd := intent.Command{Kind: intent.CommandKind(call.Name), CallID: call.ID, Args: args}

	switch cmd.Kind {
	case intent.KindFindOrCreateContact:
		cmd.Contact = &crm.ContactInput{
			Email:     argString(args, "email"),
			FirstName: argString(args, "first_name"),
			LastName:  argString(args, "last_name"),
			Phone:     argString(args, "phone"),
		}
	case intent.KindAddNoteToContact:
		cmd.Note = &crm.NoteInput{
			Body:      argString(args, "note_body"),
			ContactID: argString(args, "contact_id"),
			Email:     argString(args, "email"),
		}
	case intent.KindCreateDealForContact:
		amount, err := argFloat(args, "amount")
		if err != nil {
			return intent.Command{}, fmt.Errorf("%w: %s: %w", intent.ErrInvalidCommand, call.Name, err)
		}
		cmd.Deal = &crm.DealInput{
			Name:      argString(args, "dealname"),
			ContactID: argString(args, "contact_id"),
			Email:     argString(args, "email"),
			Amount:    amount,
			Pipeline:  argString(args, "pipeline"),
			Stage:     argString(args, "dealstage"),
			CloseDate: argString(args, "close_date_iso"),
		}
	case intent.KindCreateTaskForContact:
		cmd.Task = &crm.TaskInput{
			Subject:   argString(args, "subject"),
			DueAt:     argString(args, "due_datetime_iso"),
			Body:      argString(args, "body"),
			ContactID: argString(args, "contact_id"),
			Email:     argString(args, "email"),
			Priority:  argString(args, "priority"),
		}
	default:
		return intent.Command{}, fmt.Errorf("%w: %q", intent.ErrUnknownTool, call.Name)
	}
	return cmd, nil
}

// argString tolerates numeric ids the model sometimes emits unquoted
func argString(args map[string]any, key string) string {
	switch v := args[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return ""
	}
}

func argFloat(args map[string]any, key string) (*float64, error) {
	switch v := args[key].(type) {
	case nil:
		return nil, nil
	case float64:
		return &v, nil
	case int:
		f := float64(v)
		return &f, nil
	case string:
		if strings.TrimSpace(v) == "" {
			return nil, nil
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, fmt.Errorf("%s is not a number: %q", key, v)
		}
		return &f, nil
	default:
		return nil, fmt.Errorf("%s has unsupported type %T", key, v)
	}
}
