package machine

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"encmachine/internal/caesar"
)

func run(t *testing.T, input string) (string, error) {
	t.Helper()

	out := &bytes.Buffer{}
	err := New(strings.NewReader(input), out).Run()
	return out.String(), err
}

func TestSession(t *testing.T) {
	out, err := run(t, "cipher 2 play xyz")
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"Welcome to the Encryption Machine",
		`"cipher" has been encrypted to: flskhu`,
		"How many words is your message?: ",
		`"play" has been encrypted to: sodb`,
		`"xyz" has been encrypted to: abc`,
		"Message fully encrypted. Happy secret messaging!",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\noutput:\n%s", want, out)
		}
	}

	if have, want := strings.Count(out, "Next word: "), 2; have != want {
		t.Errorf("prompted for %d words, want %d", have, want)
	}
}

func TestZeroWords(t *testing.T) {
	out, err := run(t, "key 0")
	if err != nil {
		t.Fatal(err)
	}

	if strings.Contains(out, "Next word: ") {
		t.Errorf("prompted for words after a zero count\noutput:\n%s", out)
	}
	if !strings.Contains(out, "Message fully encrypted.") {
		t.Errorf("output missing closing line\noutput:\n%s", out)
	}
}

func TestBadCount(t *testing.T) {
	for _, input := range []string{"key two", "key -1"} {
		t.Run(input, func(t *testing.T) {
			_, err := run(t, input)
			if err == nil {
				t.Fatal("expected an error for a bad word count")
			}
		})
	}
}

func TestEOF(t *testing.T) {
	for _, input := range []string{"", "key", "key 2", "key 2 play"} {
		t.Run("input "+input, func(t *testing.T) {
			_, err := run(t, input)
			if !errors.Is(err, io.ErrUnexpectedEOF) {
				t.Fatalf("err = %v, want io.ErrUnexpectedEOF", err)
			}
		})
	}
}

func TestInvalidCharacterPropagates(t *testing.T) {
	_, err := run(t, "Key")
	if !errors.Is(err, caesar.ErrInvalidCharacter) {
		t.Fatalf("err = %v, want caesar.ErrInvalidCharacter", err)
	}
}
