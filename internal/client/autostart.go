package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"quill/internal/config"
)

const (
	daemonStartupTimeout = 5 * time.Second
	daemonPollInterval   = 100 * time.Millisecond
)

// EnsureDaemon probes the daemon and spawns one in the background when it is
// not reachable, waiting until it answers health checks.
func (c *Client) EnsureDaemon(ctx context.Context) error {
	if _, err := c.Health(ctx); err == nil {
		return nil
	}
	if err := StartBackgroundDaemon(); err != nil {
		return fmt.Errorf("start daemon: %w", err)
	}

	deadline := time.Now().Add(daemonStartupTimeout)
	for time.Now().Before(deadline) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(daemonPollInterval):
		}
		if _, err := c.Health(ctx); err == nil {
			return nil
		}
	}
	return fmt.Errorf("daemon did not become ready within %s", daemonStartupTimeout)
}

func StartBackgroundDaemon() error {
	exe, err := os.Executable()
	if err != nil {
		return err
	}

	cmd := exec.Command(exe, "daemon")
	applyDaemonSysProcAttr(cmd)

	logWriter := io.Discard
	var logFile *os.File
	if logPath, err := config.DaemonLogPath(); err == nil {
		if dataDir, err := config.DataDir(); err == nil && os.MkdirAll(dataDir, 0o700) == nil {
			if file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600); err == nil {
				logWriter = file
				logFile = file
			}
		}
	}
	cmd.Stdout = logWriter
	cmd.Stderr = logWriter

	err = cmd.Start()
	if logFile != nil {
		_ = logFile.Close()
	}
	return err
}
