// Copyright 2015 Aleksandr Demakin. All rights reserved.

// Package testutil launches programs under test via 'go run'.
package testutil

import (
	"bytes"
	"fmt"
	"os/exec"
	"time"

	"github.com/pkg/errors"
)

// TestAppResult is a result of a 'go run' program launch.
type TestAppResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
	// Err is set if the program could not be started or did not exit in time.
	Err error
}

func startTestApp(args []string) (*exec.Cmd, *bytes.Buffer, *bytes.Buffer, error) {
	args = append([]string{"run"}, args...)
	cmd := exec.Command("go", args...)
	stdout, stderr := bytes.NewBuffer(nil), bytes.NewBuffer(nil)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if err := cmd.Start(); err != nil {
		return nil, nil, nil, errors.Wrap(err, "failed to start go run")
	}
	return cmd, stdout, stderr, nil
}

func waitForCommand(cmd *exec.Cmd, stdout, stderr *bytes.Buffer) (result TestAppResult) {
	if err := cmd.Wait(); err != nil {
		if exiterr, ok := err.(*exec.ExitError); ok {
			result.ExitCode = exiterr.ExitCode()
		} else {
			result.Err = err
		}
	}
	result.Stdout = stdout.String()
	result.Stderr = stderr.String()
	return
}

// RunTestApp starts a go program via 'go run' and waits for it to finish.
// 'go run' reports a non-zero exit status of the program as 1,
// so ExitCode only tells success from failure.
func RunTestApp(args []string, timeout time.Duration) TestAppResult {
	cmd, stdout, stderr, err := startTestApp(args)
	if err != nil {
		return TestAppResult{Err: err}
	}
	ch := make(chan TestAppResult, 1)
	go func() {
		ch <- waitForCommand(cmd, stdout, stderr)
	}()
	select {
	case result := <-ch:
		return result
	case <-time.After(timeout):
		cmd.Process.Kill()
		<-ch
		return TestAppResult{Err: fmt.Errorf("program did not finish in %v", timeout)}
	}
}
