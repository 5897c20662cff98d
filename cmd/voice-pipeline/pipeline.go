package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	intent "voice-crm/internal/intent/processor"
	transcription "voice-crm/internal/transcription/processor"
)

var errNotUnderstood = errors.New("audio was not understood")

type options struct {
	Audio      string
	Transcript string
	Summarize  bool
}

type transcriber interface {
	TranscribeURL(ctx context.Context, audioURL string) (transcription.Result, error)
	TranscribeAudio(ctx context.Context, audio []byte) (transcription.Result, error)
}

type intentService interface {
	Dispatch(ctx context.Context, transcript string) (intent.DispatchResult, error)
	Synthesize(ctx context.Context, transcript string) (string, error)
}

type pipeline struct {
	transcriber transcriber
	intent      intentService
	readFile    func(name string) ([]byte, error)
	out         io.Writer
}

// run transcribes the audio, if any, and hands the text to the agent
func (p pipeline) run(ctx context.Context, opts options) error {
	transcript := opts.Transcript
	if transcript == "" {
		result, err := p.transcribe(ctx, opts.Audio)
		if err != nil {
			return err
		}
		if !result.Success {
			fmt.Fprintf(p.out, "Could not understand the audio (confidence %.2f). %s\n", result.Confidence, result.Text)
			return errNotUnderstood
		}
		transcript = result.Text
	}
	fmt.Fprintf(p.out, "User said: %s\n", transcript)

	if opts.Summarize {
		summary, err := p.intent.Synthesize(ctx, transcript)
		if err != nil {
			return err
		}
		fmt.Fprintf(p.out, "Summary: %s\n", summary)
		return nil
	}

	result, err := p.intent.Dispatch(ctx, transcript)
	for _, a := range intent.Actions(result.Executions) {
		status := "ok"
		if a.Error != "" {
			status = "failed: " + a.Error
		}
		fmt.Fprintf(p.out, "  - %s %s\n", a.Tool, status)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(p.out, "Agent: %s\n", result.Message)
	return nil
}

func (p pipeline) transcribe(ctx context.Context, audio string) (transcription.Result, error) {
	if strings.Contains(audio, "://") {
		return p.transcriber.TranscribeURL(ctx, audio)
	}
	data, err := p.readFile(audio)
	if err != nil {
		return transcription.Result{}, fmt.Errorf("failed to read %s: %w", audio, err)
	}
	return p.transcriber.TranscribeAudio(ctx, data)
}
