package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// Client runs read-only git queries in a directory.
type Client struct {
	dir string
}

// NewClient creates a git client. An empty dir means the process working directory.
func NewClient(dir string) *Client {
	return &Client{dir: dir}
}

// RepoRoot returns the repository root directory.
// Returns an error if dir is not in a git repository or git is unavailable.
func (c *Client) RepoRoot() (string, error) {
	out, err := c.run("rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("not in a git repository")
	}
	return out, nil
}

// IsRepo returns true if dir is inside a git repository.
func (c *Client) IsRepo() bool {
	_, err := c.run("rev-parse", "--git-dir")
	return err == nil
}

func (c *Client) run(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = c.dir
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
