// Package agent implements an AI assistant answering questions about the
// loaded financial statements.
package agent

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"google.golang.org/genai"
)

// Agent is the AI assistant that handles the chat session.
type Agent struct {
	w           io.Writer
	r           *bufio.Reader
	Facilitator *Expert
	Experts     []*Expert
	// Print displays answers and notices, written raw to w when nil.
	Print func(markdown string)
}

// New creates an Agent writing to w and reading the user's questions from r.
func New(w io.Writer, r io.Reader, experts ...*Expert) *Agent {
	return &Agent{
		w:           w,
		r:           bufio.NewReader(r),
		Experts:     experts,
		Facilitator: newFacilitator(experts...),
	}
}

// Start opens the chats of the experts and of the facilitator.
func (a *Agent) Start(ctx context.Context, client *genai.Client) error {
	for _, e := range a.Experts {
		if err := e.Start(ctx, client); err != nil {
			return err
		}
	}
	return a.Facilitator.Start(ctx, client)
}

const (
	prompt  = "assist> "
	welcome = "Welcome to frs financial assist. Type 'bye' to exit."
)

// farewells end the session.
var farewells = []string{"bye", "exit", "quit", "выход"}

// answerFunc answers one question of the user.
type answerFunc func(ctx context.Context, question string) (string, error)

// Run starts the interactive session. prompts are asked first, as if typed by
// the user.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.Facilitator.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}
	return a.loop(ctx, prompts, a.ask)
}

// ask forwards a question to the facilitator.
func (a *Agent) ask(ctx context.Context, question string) (string, error) {
	content, err := a.Facilitator.Ask(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	return Text(content), nil
}

// print displays markdown through Print.
func (a *Agent) print(markdown string) {
	if a.Print != nil {
		a.Print(markdown)
		return
	}
	fmt.Fprintln(a.w, markdown)
}

func (a *Agent) loop(ctx context.Context, prompts []string, answer answerFunc) error {
	a.print(welcome)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		question, err := a.next(&prompts)
		if errors.Is(err, io.EOF) {
			return nil // Ctrl+D
		}
		if err != nil {
			return err
		}
		if question == "" {
			continue
		}
		if slices.Contains(farewells, strings.ToLower(question)) {
			return nil
		}
		reply, err := answer(ctx, question)
		if err != nil {
			return err
		}
		a.print(reply)
	}
}

// next returns the next question: the pending prompts first, then the user's
// input. The prompt marker is always written raw.
func (a *Agent) next(prompts *[]string) (string, error) {
	fmt.Fprint(a.w, prompt)
	if len(*prompts) > 0 {
		q := strings.TrimSpace((*prompts)[0])
		*prompts = (*prompts)[1:]
		fmt.Fprintln(a.w, q)
		return q, nil
	}
	line, err := a.r.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
