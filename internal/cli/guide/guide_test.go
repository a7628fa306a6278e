package guide

import (
	"bytes"
	"strings"
	"testing"
)

func TestGuideRaw(t *testing.T) {
	cmd := GuideCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--raw"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.HasPrefix(out.String(), "# tick quick reference") {
		t.Errorf("expected raw markdown, got %q", out.String()[:40])
	}
}

func TestRenderStyled(t *testing.T) {
	got := Render(false)
	if got == "" {
		t.Fatal("Render(false) returned nothing")
	}
	if !strings.Contains(got, "quick reference") {
		t.Errorf("rendered guide lost its heading")
	}
}
