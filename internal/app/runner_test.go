package app

import (
	"context"
	"errors"
	"testing"

	"github.com/querylab/exa-ask/internal/config"
	"github.com/querylab/exa-ask/pkg/exa"
)

// fakeAnswerService records queries and returns a canned result or error.
type fakeAnswerService struct {
	queries []string
	answer  *exa.Answer
	err     error
}

func (f *fakeAnswerService) Answer(_ context.Context, query string) (*exa.Answer, error) {
	f.queries = append(f.queries, query)
	if f.err != nil {
		return nil, f.err
	}
	return f.answer, nil
}

// recordingLogger counts log writes and remembers every object logged.
type recordingLogger struct {
	objects []interface{}
}

func (l *recordingLogger) record(obj interface{}) { l.objects = append(l.objects, obj) }

func (l *recordingLogger) InfoObj(_, _ string, obj interface{})  { l.record(obj) }
func (l *recordingLogger) DebugObj(_, _ string, obj interface{}) { l.record(obj) }
func (l *recordingLogger) WarnObj(_, _ string, obj interface{})  { l.record(obj) }
func (l *recordingLogger) ErrorObj(_, _ string, obj interface{}) { l.record(obj) }

func testConfig() *config.Config {
	return &config.Config{
		Query: "What's the TCP structure?",
	}
}

func TestRunReturnsAnswer(t *testing.T) {
	svc := &fakeAnswerService{answer: &exa.Answer{Answer: "a header and a payload"}}
	r, err := NewRunnerWithService(testConfig(), svc, nil)
	if err != nil {
		t.Fatalf("NewRunnerWithService: %v", err)
	}

	ans, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if ans == nil || ans.Answer != "a header and a payload" {
		t.Fatalf("unexpected answer: %+v", ans)
	}
}

func TestRunPassesQueryLiteral(t *testing.T) {
	svc := &fakeAnswerService{answer: &exa.Answer{Answer: "ok"}}
	r, err := NewRunnerWithService(testConfig(), svc, nil)
	if err != nil {
		t.Fatalf("NewRunnerWithService: %v", err)
	}

	if _, err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(svc.queries) != 1 || svc.queries[0] != "What's the TCP structure?" {
		t.Fatalf("service saw queries %v", svc.queries)
	}
}

func TestNewRunnerFailsWithoutCredential(t *testing.T) {
	cfg := testConfig()
	cfg.ExaAPIKey = ""

	if _, err := NewRunner(cfg, nil); !errors.Is(err, exa.ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestRunPropagatesServiceError(t *testing.T) {
	boom := errors.New("connection refused")
	svc := &fakeAnswerService{err: boom}
	r, err := NewRunnerWithService(testConfig(), svc, nil)
	if err != nil {
		t.Fatalf("NewRunnerWithService: %v", err)
	}

	if _, err := r.Run(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected the service error to escape unmodified, got %v", err)
	}
}

func TestRunDoesNotLogAnswerContent(t *testing.T) {
	const secret = "content that must never be written anywhere"
	svc := &fakeAnswerService{answer: &exa.Answer{Answer: secret}}
	log := &recordingLogger{}
	r, err := NewRunnerWithService(testConfig(), svc, log)
	if err != nil {
		t.Fatalf("NewRunnerWithService: %v", err)
	}

	if _, err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	for _, obj := range log.objects {
		if s, ok := obj.(string); ok && s == secret {
			t.Fatalf("runner wrote the answer content to the logger")
		}
		if _, ok := obj.(*exa.Answer); ok {
			t.Fatalf("runner wrote the answer object to the logger")
		}
	}
}
