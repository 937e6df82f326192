package bpmn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanName(t *testing.T) {
	tests := []struct {
		description string
		input       string
		expect      string
	}{
		{"plain name unchanged", "Review Order", "Review Order"},
		{"literal CRLF escape collapses to space", "Review&#13;&#10;Order", "Review Order"},
		{"numeric newline entity collapses to space", "Review&#10;Order", "Review Order"},
		{"hex newline entity collapses to space", "Review&#xA;Order", "Review Order"},
		{"repeated whitespace collapses", "Review   Order", "Review Order"},
		{"empty stays empty", "", ""},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expect, CleanName(tc.input))
		})
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		description string
		input       string
		expect      string
	}{
		{"id with dashes", "Flow-1", "Flow_1"},
		{"id with dots and colons", "sid-0A1.B2:C3", "sid_0A1_B2_C3"},
		{"already clean id unchanged", "Task_1", "Task_1"},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expect, Sanitize(tc.input))
		})
	}
}
