package brokerage

import (
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

// Command holds a command and its expected output.
type Command struct {
	Cmd      string
	Expected string
}

// buildBkr builds the bkr command and returns the path to the executable.
func buildBkr(t *testing.T, tmp string) string {
	t.Helper()

	output := filepath.Join(tmp, "bkr")

	// Build the bkr command
	buildCmd := exec.Command("go", "build", "-o", output, "./bkr/")
	err := buildCmd.Run()
	if err != nil {
		t.Fatalf("failed to build bkr command: %v", err)
	}

	return output
}

// parseTestableCommands parses a markdown file to extract commands and their expected outputs.
func parseTestableCommands(t *testing.T, file string) []Command {
	t.Helper()

	content, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("failed to read %s: %v", file, err)
	}

	repo := string(content)
	re := regexp.MustCompile("(?m)```bash\\n(bkr.*?)\\n```\\n\\n```console\n((.|\\n)*?)```")
	matches := re.FindAllStringSubmatch(repo, -1)

	var commands []Command
	for _, match := range matches {
		commands = append(commands, Command{Cmd: match[1], Expected: match[2]})
	}

	return commands
}

// runTestableCommands runs the testable commands from a given markdown file.
// Commands of one file share a working directory, so an example can build on
// the fills of the previous one. Only stdout is compared: warnings go to
// stderr and are not part of the documented output.
func runTestableCommands(t *testing.T, file string) {
	t.Helper()

	tmp := t.TempDir()
	bkrPath := buildBkr(t, tmp)

	commands := parseTestableCommands(t, file)

	for _, cmd := range commands {
		args := strings.Fields(cmd.Cmd)
		t.Log("Running command:", bkrPath, args)
		command := exec.Command(bkrPath, args[1:]...)
		command.Dir = tmp
		output, err := command.Output()
		if err != nil {
			t.Fatalf("failed to run command: %v", err)
		}
		result := string(output)
		// replace tabs with spaces for consistent comparison
		result = strings.ReplaceAll(result, "\t", "        ")

		if cmd.Expected != result {
			t.Errorf("expected output:\n%q\nbut got:\n%q", cmd.Expected, result)
		}
	}
}
