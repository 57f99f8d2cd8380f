// Package executor provides command execution functionality.
package executor

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/scalar-labs/relnote/internal/domain"
)

// Client implements domain.CommandExecutor interface.
type Client struct {
	logger *slog.Logger
}

// NewClient creates a new command executor client.
func NewClient(logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{logger: logger}
}

// Ensure Client implements domain.CommandExecutor interface.
var _ domain.CommandExecutor = (*Client)(nil)

// Execute runs the command and returns its standard output.
// Standard error is attached to the returned error on failure.
func (c *Client) Execute(ctx context.Context, cmd *domain.ExecCommand) ([]byte, error) {
	c.logger.Debug("executing command", "command", cmd.String())

	// #nosec G204 - cmd.Program and cmd.Args come from trusted adapter code
	execCmd := exec.CommandContext(ctx, cmd.Program, cmd.Args...)
	if cmd.Dir != "" {
		execCmd.Dir = cmd.Dir
	}
	var stderr bytes.Buffer
	execCmd.Stderr = &stderr

	out, err := execCmd.Output()
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return nil, fmt.Errorf("%s: %w", cmd.Program, err)
		}
		return nil, fmt.Errorf("%s: %w: %s", cmd.Program, err, msg)
	}
	return out, nil
}
