package exa

import "context"

// AnswerService is the contract the rest of the application depends on.
// The concrete Client implements it; tests substitute fakes.
type AnswerService interface {
	Answer(ctx context.Context, query string) (*Answer, error)
}
