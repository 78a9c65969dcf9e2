package blueprint

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"

	"github.com/RedTeamPentesting/drizzle/producer"
	shellquote "github.com/kballard/go-shellquote"
	"golang.org/x/sync/errgroup"
)

// RunCommand runs cmd and returns the lines it prints. When shell is not
// empty, cmd is passed as the last argument to the shell command instead of
// being split into arguments.
func RunCommand(ctx context.Context, cmd, shell string) ([]string, error) {
	var c *exec.Cmd
	if shell == "" {
		args, err := shellquote.Split(cmd)
		if err != nil {
			return nil, fmt.Errorf("error splitting command %q: %w", cmd, err)
		}
		if len(args) == 0 {
			return nil, errors.New("empty command")
		}
		c = exec.CommandContext(ctx, args[0], args[1:]...)
	} else {
		args, err := shellquote.Split(shell)
		if err != nil {
			return nil, fmt.Errorf("error splitting shell command %q: %w", shell, err)
		}
		if len(args) == 0 {
			return nil, errors.New("empty shell command")
		}
		c = exec.CommandContext(ctx, args[0], append(args[1:], cmd)...)
	}

	commandOutput, commandOutputWriter := io.Pipe()
	c.Stdout = commandOutputWriter
	c.Stderr = os.Stderr

	var eg errgroup.Group

	eg.Go(func() error {
		err := c.Run()

		// close the writer, ignoring any errors
		_ = commandOutputWriter.Close()

		return err
	})

	var lines []string
	eg.Go(func() error {
		sc := bufio.NewScanner(commandOutput)
		for sc.Scan() {
			lines = append(lines, sc.Text())
		}

		err := sc.Err()

		// drain the pipe so the command does not block on a failed scan
		_, _ = io.Copy(io.Discard, commandOutput)

		return err
	})

	err := eg.Wait()
	if err != nil {
		return nil, fmt.Errorf("command %q: %w", cmd, err)
	}

	return lines, nil
}

// CheckCommand tests early whether the program of cmd can be found.
func CheckCommand(cmd string) error {
	args, err := shellquote.Split(cmd)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return errors.New("empty command")
	}

	_, err = exec.LookPath(args[0])
	return err
}

// commandFunc returns a custom generator function which runs cmd on first
// use and then returns its output lines in turn.
func commandFunc(ctx context.Context, cmd, shell string) producer.Func {
	var (
		once  sync.Once
		lines []string
		err   error
	)

	return func(index int) (any, error) {
		once.Do(func() {
			lines, err = RunCommand(ctx, cmd, shell)
			if err == nil && len(lines) == 0 {
				err = fmt.Errorf("command %q printed no lines", cmd)
			}
		})

		if err != nil {
			return nil, err
		}

		return lines[index%len(lines)], nil
	}
}
