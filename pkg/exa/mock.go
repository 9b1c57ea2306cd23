package exa

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
)

// AnswerHandler is an http.Handler that mimics the answer endpoint for
// tests. It rejects requests without an API key header and records every
// query it receives.
type AnswerHandler struct {
	// CannedAnswer is returned as the answer text; a zero value still
	// produces a valid response body.
	CannedAnswer string
	// FailStatus, when non-zero, makes every request fail with that status.
	FailStatus int

	mu      sync.Mutex
	queries []string
}

// Queries returns a copy of the query strings received so far.
func (h *AnswerHandler) Queries() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.queries))
	copy(out, h.queries)
	return out
}

func (h *AnswerHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		fmt.Fprintf(w, "Only POST requests are allowed")
		return
	}

	if r.Header.Get("x-api-key") == "" {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprintf(w, "Invalid API key")
		return
	}

	defer r.Body.Close()

	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprintf(w, "Invalid JSON request: %v", err)
		return
	}

	h.mu.Lock()
	h.queries = append(h.queries, req.Query)
	h.mu.Unlock()

	if h.FailStatus != 0 {
		w.WriteHeader(h.FailStatus)
		fmt.Fprintf(w, "simulated failure")
		return
	}

	answer := h.CannedAnswer
	if answer == "" {
		answer = "A valid answer"
	}
	resp := Answer{
		Answer: answer,
		Citations: []Citation{
			{
				ID:    "https://example.com/tcp",
				URL:   "https://example.com/tcp",
				Title: "A nice title",
			},
		},
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		fmt.Printf("Error encoding response: %v", err)
	}
}
