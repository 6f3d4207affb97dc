package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// LineReader shows a prompt and returns the next line typed by the user.
// It returns io.EOF once the input is exhausted or the user interrupts.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// Scanner reads plain lines and echoes each prompt on its own line. Lines
// have no length limit; an overlong answer is handed back like any other.
type Scanner struct {
	in  *bufio.Reader
	out io.Writer
}

func NewScanner(in io.Reader, out io.Writer) *Scanner {
	return &Scanner{in: bufio.NewReader(in), out: out}
}

func (s *Scanner) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		if _, err := fmt.Fprintln(s.out, prompt); err != nil {
			return "", err
		}
	}
	line, err := s.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// Prompter reads lines through promptui, validating that the input is a
// whole number before it is accepted.
type Prompter struct {
	stdin  io.ReadCloser
	stdout io.WriteCloser
}

// NewPrompter uses the terminal when stdin or stdout is nil.
func NewPrompter(stdin io.ReadCloser, stdout io.WriteCloser) *Prompter {
	return &Prompter{stdin: stdin, stdout: stdout}
}

func (p *Prompter) ReadLine(prompt string) (string, error) {
	label := strings.TrimSpace(prompt)
	if label == "" {
		label = "Choice"
	}
	label = strings.TrimSuffix(label, ":")

	numberPrompt := promptui.Prompt{
		Label:    label,
		Validate: validateNumber,
		Stdin:    p.stdin,
		Stdout:   p.stdout,
	}
	value, err := numberPrompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", err
	}
	return value, nil
}

func validateNumber(input string) error {
	if _, err := strconv.Atoi(strings.TrimSpace(input)); err != nil {
		return errors.New("invalid number")
	}
	return nil
}
