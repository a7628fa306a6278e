package notifications

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestRenderInline(t *testing.T) {
	tests := []struct {
		severity Severity
		message  string
		icon     string
	}{
		{Info, "Task saved", "✓"},
		{Error, "Task not found", "✕"},
	}

	for _, tt := range tests {
		got := ansi.Strip(RenderInline(tt.severity, tt.message))
		if !strings.Contains(got, tt.icon+" "+tt.message) {
			t.Errorf("RenderInline(%d, %q) = %q", tt.severity, tt.message, got)
		}
	}
}
