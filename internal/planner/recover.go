package planner

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"yatra/internal/models/response_models"
)

// ErrUnrecoverableResponse means no strategy produced a valid plan and the
// caller should use FallbackPlan.
var ErrUnrecoverableResponse = errors.New("generator response could not be recovered")

type Strategy string

const (
	StrategyDirect   Strategy = "direct"
	StrategyFenced   Strategy = "fenced"
	StrategyRepaired Strategy = "repaired"
)

type Recovery struct {
	Plan     response_models.TripPlan
	Strategy Strategy
}

var (
	taggedFencePattern = regexp.MustCompile("(?s)```[A-Za-z0-9_+-]*[ \t]*\r?\n(.*?)\r?\n?```")
	bareFencePattern   = regexp.MustCompile("(?s)```(.*?)```")
)

type strategy struct {
	name       Strategy
	candidates func(text string) []string
}

// strategies run in this order; a later one only runs when every earlier one failed.
var strategies = []strategy{
	{StrategyDirect, func(text string) []string { return []string{text} }},
	{StrategyFenced, fencedCandidates},
	{StrategyRepaired, repairedCandidates},
}

// Recover extracts a trip plan document from free-form generator output.
func Recover(raw string) (*Recovery, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, fmt.Errorf("%w: empty response", ErrUnrecoverableResponse)
	}

	var lastErr error
	for _, s := range strategies {
		for _, candidate := range s.candidates(text) {
			plan, err := decodeTripPlan(candidate)
			if err != nil {
				lastErr = fmt.Errorf("%s: %w", s.name, err)
				continue
			}
			return &Recovery{Plan: *plan, Strategy: s.name}, nil
		}
	}
	if lastErr == nil {
		lastErr = errors.New("no document found")
	}
	return nil, fmt.Errorf("%w: %v", ErrUnrecoverableResponse, lastErr)
}

func fencedCandidates(text string) []string {
	var out []string
	for _, pattern := range []*regexp.Regexp{taggedFencePattern, bareFencePattern} {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			if body := strings.TrimSpace(m[1]); body != "" {
				out = append(out, body)
			}
		}
	}
	return out
}

func repairedCandidates(text string) []string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil
	}
	return []string{RepairJSON(text[start : end+1])}
}
