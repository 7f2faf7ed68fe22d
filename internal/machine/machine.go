// Package machine runs the interactive encryption session: it prompts for
// a key and a message, word by word, and echoes each encrypted form.
package machine

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"encmachine/internal/caesar"
	"encmachine/internal/rec"
)

type Machine struct {
	in  *bufio.Scanner
	out io.Writer
}

// New wraps an input stream and an output stream into a session. Input is
// consumed one whitespace-delimited word at a time.
func New(in io.Reader, out io.Writer) *Machine {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)

	return &Machine{
		in:  sc,
		out: out,
	}
}

func (m *Machine) next() (string, error) {
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", fmt.Errorf("read input: %w", io.ErrUnexpectedEOF)
	}
	return m.in.Text(), nil
}

func (m *Machine) encryptNext() error {
	word, err := m.next()
	if err != nil {
		return err
	}

	enc, err := caesar.EncryptWord(word)
	if err != nil {
		return fmt.Errorf("encrypt %q: %w", word, err)
	}

	fmt.Fprintf(m.out, "%q has been encrypted to: %s\n\n", word, enc)
	return nil
}

// Run drives one full session: key first, then the message word count,
// then that many words. It returns on the first read or encryption error.
func (m *Machine) Run() (err error) {
	defer rec.Wrap(&err, "session: %w")

	fmt.Fprintln(m.out, "Welcome to the Encryption Machine")
	fmt.Fprintln(m.out, "The program lets you encrypt a message")
	fmt.Fprintln(m.out, "with a key for your recipient to decrypt!")
	fmt.Fprintln(m.out)

	fmt.Fprint(m.out, "Enter key: ")
	if err := m.encryptNext(); err != nil {
		return err
	}

	fmt.Fprint(m.out, "How many words is your message?: ")
	count, err := m.next()
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(count)
	if err != nil || n < 0 {
		return fmt.Errorf("word count %q: must be a non-negative whole number", count)
	}
	fmt.Fprintln(m.out)

	for range n {
		fmt.Fprint(m.out, "Next word: ")
		if err := m.encryptNext(); err != nil {
			return err
		}
	}

	fmt.Fprintln(m.out, "Message fully encrypted. Happy secret messaging!")
	return nil
}
