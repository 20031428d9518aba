/*********************************************************************
 * Copyright (c) Snowman Contributors 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package selector

import (
	"testing"

	"github.com/snowman-cli/snowman/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockSelector struct {
	mock.Mock
}

func (m *MockSelector) Choose(prompt string, items []string) (int, error) {
	args := m.Called(prompt, items)

	return args.Int(0), args.Error(1)
}

func TestPick(t *testing.T) {
	tests := []struct {
		name          string
		items         []string
		setupMock     func(*MockSelector)
		expected      int
		expectedErr   error
		expectPrompts int
	}{
		{
			name:          "empty list fails before prompting",
			items:         nil,
			setupMock:     func(m *MockSelector) {},
			expected:      -1,
			expectedErr:   utils.NoItemsAvailable,
			expectPrompts: 0,
		},
		{
			name:          "single item is auto selected",
			items:         []string{"Team A"},
			setupMock:     func(m *MockSelector) {},
			expected:      0,
			expectPrompts: 0,
		},
		{
			name:  "delegates when several items",
			items: []string{"Team A", "Team B"},
			setupMock: func(m *MockSelector) {
				m.On("Choose", "Pick your workspace", []string{"Team A", "Team B"}).Return(1, nil)
			},
			expected:      1,
			expectPrompts: 1,
		},
		{
			name:  "cancel propagates",
			items: []string{"Team A", "Team B"},
			setupMock: func(m *MockSelector) {
				m.On("Choose", "Pick your workspace", []string{"Team A", "Team B"}).Return(-1, utils.SelectionAborted)
			},
			expected:      -1,
			expectedErr:   utils.SelectionAborted,
			expectPrompts: 1,
		},
		{
			name:  "out of range choice is rejected",
			items: []string{"Team A", "Team B"},
			setupMock: func(m *MockSelector) {
				m.On("Choose", "Pick your workspace", []string{"Team A", "Team B"}).Return(5, nil)
			},
			expected:      -1,
			expectedErr:   utils.SelectionAborted,
			expectPrompts: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &MockSelector{}
			tt.setupMock(m)

			idx, err := Pick(m, "Pick your workspace", tt.items)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, tt.expected, idx)
			m.AssertNumberOfCalls(t, "Choose", tt.expectPrompts)
		})
	}
}

func TestMatchByName(t *testing.T) {
	items := []string{"Production", "Prod", "Staging", "dev-local"}

	tests := []struct {
		name     string
		items    []string
		query    string
		expected int
		found    bool
	}{
		{"exact match", items, "Prod", 1, true},
		{"case insensitive match", items, "STAGING", 2, true},
		{"surrounding space is ignored", items, "  dev-local ", 3, true},
		{"fuzzy subsequence is not a match", items, "dvlcl", -1, false},
		{"prefix is not a match", items, "Produc", -1, false},
		{"no match", items, "qa", -1, false},
		{"blank query", items, "  ", -1, false},
		{"case sensitive match settles case variants", []string{"prod", "Prod"}, "Prod", 1, true},
		{"case variants are ambiguous", []string{"prod", "Prod"}, "PROD", -1, false},
		{"duplicate names are ambiguous", []string{"Prod", "Staging", "Prod"}, "Prod", -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, ok := MatchByName(tt.query, tt.items)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, idx)
		})
	}
}

func TestSuggest(t *testing.T) {
	items := []string{"Production", "Pre-production old", "Staging"}

	tests := []struct {
		name     string
		query    string
		limit    int
		expected []string
	}{
		{"similar names", "prod", 3, []string{"Production", "Pre-production old"}},
		{"limit applies", "prod", 1, []string{"Production"}},
		{"nothing similar", "qa", 3, []string{}},
		{"blank query", " ", 3, nil},
		{"zero limit", "prod", 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Suggest(tt.query, items, tt.limit))
		})
	}
}

func TestScripted(t *testing.T) {
	s := &Scripted{Choices: []int{1, 0}}

	idx, err := s.Choose("first", []string{"a", "b"})
	assert.NoError(t, err)
	assert.Equal(t, 1, idx)

	idx, err = s.Choose("second", []string{"a", "b"})
	assert.NoError(t, err)
	assert.Equal(t, 0, idx)

	_, err = s.Choose("third", []string{"a", "b"})
	assert.ErrorIs(t, err, utils.SelectionAborted)

	assert.Equal(t, []string{"first", "second", "third"}, s.Prompts)
}
