package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tick/internal/models"
)

// ParseTaskID parses a positional task ID
func ParseTaskID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid task ID '%s' (must be a positive integer)", arg)
	}
	return id, nil
}

// ParsePriority maps a priority string to its level
func ParsePriority(priority string) (models.Priority, error) {
	return models.ParsePriority(priority)
}

// ParseDueDate parses YYYY-MM-DD in local time. Empty input and "none"
// mean no due date.
func ParseDueDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "none") {
		return nil, nil
	}
	due, err := time.ParseInLocation(models.DueDateInputLayout, s, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid due date '%s' (use YYYY-MM-DD)", s)
	}
	return &due, nil
}

// NewFormatter builds the formatter for a command from its --json and
// --quiet flags. Styled output is downsampled to what the destination
// supports, so pipes and files get plain text.
func NewFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{
		JSON:  jsonOutput,
		Quiet: quietMode,
		Out:   colorprofile.NewWriter(cmd.OutOrStdout(), os.Environ()),
		Err:   colorprofile.NewWriter(cmd.ErrOrStderr(), os.Environ()),
	}
}

// AddOutputFlags registers the agent-friendly output flags
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}
