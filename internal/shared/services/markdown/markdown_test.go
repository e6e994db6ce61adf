package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_ToSafeHTML(t *testing.T) {
	svc := NewService()

	tests := []struct {
		name     string
		source   string
		contains []string
		excludes []string
	}{
		{
			name:     "emphasis and paragraphs",
			source:   "Olá **Maria**,\n\nSua matrícula foi confirmada.",
			contains: []string{"<strong>Maria</strong>", "<p>Sua matrícula foi confirmada.</p>"},
		},
		{
			name:     "table",
			source:   "| Plano | Total |\n|---|---|\n| Gold | R$ 327,00 |",
			contains: []string{"<table>", "<td>Gold</td>"},
		},
		{
			name:     "script is stripped",
			source:   "Hi <script>alert(1)</script> there",
			excludes: []string{"<script>"},
		},
		{
			name:     "event handlers are stripped",
			source:   `<a href="https://example.com" onclick="steal()">link</a>`,
			excludes: []string{"onclick"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := svc.ToSafeHTML(tt.source)
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, out, s)
			}
		})
	}
}
