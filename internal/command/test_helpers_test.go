package command

import (
	"os"
	"testing"
)

func setWorkingDir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore cwd %s: %v", prev, err)
		}
	})
}

// isolateEnv clears variables that change CLI behavior.
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"TILEBLANK_CONFIG", "LOG_LEVEL", "NO_EMOJI", "CLI_CMD"} {
		t.Setenv(key, "")
	}
	t.Setenv("TERM", "dumb")
}

type fakePrompter struct {
	answers []string
	titles  []string
	err     error
}

func (f *fakePrompter) Input(title, _ string, validate func(string) error) (string, error) {
	f.titles = append(f.titles, title)
	if f.err != nil {
		return "", f.err
	}
	if len(f.answers) == 0 {
		return "", nil
	}
	answer := f.answers[0]
	f.answers = f.answers[1:]
	if validate != nil {
		if err := validate(answer); err != nil {
			return "", err
		}
	}
	return answer, nil
}
