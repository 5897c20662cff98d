package googleai

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const synthesisPrompt = "Summarize the following sales conversation transcript for a CRM record. " +
	"List the people and companies mentioned, the needs or objections raised, agreed next steps with dates, " +
	"and any amounts discussed. Answer in the language of the transcript. Be concise."

// Summarize produces a CRM-oriented summary of a transcript. No tools are bound.
func (c *Client) Summarize(ctx context.Context, transcript string) (string, error) {
	prompt := fmt.Sprintf("%s\n\n---\n\nUser transcript:\n%s", synthesisPrompt, transcript)

	resp, err := c.generate(ctx, "summarize", []*genai.Content{userText(prompt)}, nil)
	if err != nil {
		return "", err
	}
	return responseText(resp), nil
}
