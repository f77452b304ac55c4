package service

import (
	"context"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"style-match-be/internal/pkg/logger"
	"style-match-be/pkg/events"
)

type recordingForwarder struct {
	mu     sync.Mutex
	events []events.Event
}

func (f *recordingForwarder) Publish(_ context.Context, e events.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, e)
	return nil
}

func (f *recordingForwarder) types() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e.EventType())
	}
	return out
}

func newTestPublisher() (IPublisherService, *recordingForwarder, *gochannel.GoChannel) {
	bus := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	fwd := &recordingForwarder{}
	return NewPublisherService(bus, fwd, logger.NewNopLogger()), fwd, bus
}

type countingProvider struct {
	mu    sync.Mutex
	calls int
}

func (p *countingProvider) Model() string { return "test-embed" }

func (p *countingProvider) Embed(_ context.Context, texts []string) ([][]float32, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()
	out := make([][]float32, len(texts))
	for i, t := range texts {
		out[i] = textVector(t)
	}
	return out, nil
}

func (p *countingProvider) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

// textVector puts weight on a few style words so similarity is predictable.
func textVector(text string) []float32 {
	vec := make([]float32, 4)
	for i, word := range []string{"linen", "leather", "boho", "neon"} {
		if containsWord(text, word) {
			vec[i] = 1
		}
	}
	if vec[0]+vec[1]+vec[2]+vec[3] == 0 {
		vec[3] = 0.1
	}
	return vec
}

func containsWord(text, word string) bool {
	for i := 0; i+len(word) <= len(text); i++ {
		if text[i:i+len(word)] == word {
			return true
		}
	}
	return false
}
