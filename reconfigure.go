package dper

import (
	"bufio"
	"bytes"
	"context"
	"os/exec"

	"github.com/pkg/errors"
)

// Reconfigure runs a shell command, typically used to make the DNS server
// reload its configuration after it changed. Output of the command is logged
// line by line.
func Reconfigure(ctx context.Context, command string) error {
	log := Log.WithField("command", command)
	log.Info("reconfiguring")

	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, "/bin/sh", "-c", command)
	cmd.Stdout = &out
	cmd.Stderr = &out
	runErr := cmd.Run()

	logLine := log.Info
	if runErr != nil {
		log.WithError(runErr).Error("reconfigure command failed")
		logLine = log.Warn
	}
	scanner := bufio.NewScanner(&out)
	for scanner.Scan() {
		logLine("reconfigure: ", scanner.Text())
	}
	return errors.Wrap(runErr, "reconfigure command failed")
}
