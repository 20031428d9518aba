/*********************************************************************
 * Copyright (c) Snowman Contributors 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package selector

import (
	"strings"

	"github.com/sahilm/fuzzy"
	log "github.com/sirupsen/logrus"
	"github.com/snowman-cli/snowman/pkg/utils"
)

// Selector asks the user to pick one of items and returns its index in items.
type Selector interface {
	Choose(prompt string, items []string) (int, error)
}

// Pick guards a Selector: an empty list fails before any prompt is shown and a
// single item is chosen without prompting.
func Pick(s Selector, prompt string, items []string) (int, error) {
	switch len(items) {
	case 0:
		return -1, utils.NoItemsAvailable.WithDetails("nothing to choose for %q", prompt)
	case 1:
		log.Debugf("Only one choice for %q, selecting %q", prompt, items[0])

		return 0, nil
	}

	idx, err := s.Choose(prompt, items)
	if err != nil {
		return -1, err
	}

	if idx < 0 || idx >= len(items) {
		return -1, utils.SelectionAborted.WithDetails("selection %d out of range", idx)
	}

	return idx, nil
}

// MatchByName finds the one item named query. A unique case-sensitive match wins,
// then a unique case-insensitive one. Anything else, fuzzy or ambiguous, is no match.
func MatchByName(query string, items []string) (int, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return -1, false
	}

	if idx, ok := unique(items, func(item string) bool { return item == query }); ok {
		return idx, true
	}

	return unique(items, func(item string) bool { return strings.EqualFold(item, query) })
}

func unique(items []string, match func(string) bool) (int, bool) {
	found := -1

	for i, item := range items {
		if !match(item) {
			continue
		}

		if found >= 0 {
			return -1, false
		}

		found = i
	}

	return found, found >= 0
}

// Suggest returns up to limit items resembling query, best first.
func Suggest(query string, items []string, limit int) []string {
	query = strings.TrimSpace(query)
	if query == "" || limit <= 0 {
		return nil
	}

	matches := fuzzy.Find(query, items)
	if len(matches) > limit {
		matches = matches[:limit]
	}

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m.Str)
	}

	return names
}

// Scripted replays canned choices. It is the non-interactive Selector.
type Scripted struct {
	Choices []int
	Prompts []string
}

// Choose records the prompt and returns the next canned choice.
func (s *Scripted) Choose(prompt string, items []string) (int, error) {
	s.Prompts = append(s.Prompts, prompt)

	if len(s.Choices) == 0 {
		return -1, utils.SelectionAborted.WithDetails("no scripted choice left for %q", prompt)
	}

	choice := s.Choices[0]
	s.Choices = s.Choices[1:]

	return choice, nil
}
