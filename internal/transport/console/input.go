package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/rocketscienceinc/othello/internal/entity"
)

const tokenLength = 2

// InputFormatError is returned for tokens that do not name a board cell.
type InputFormatError struct {
	Token  string
	Reason string
}

func (that *InputFormatError) Error() string {
	return fmt.Sprintf("invalid position %q: %s", that.Token, that.Reason)
}

type token struct {
	text string
	err  error
}

// Input reads whitespace separated tokens. The underlying reader is consumed by a
// single goroutine so a blocked read can be abandoned when the context is done.
type Input struct {
	scanner *bufio.Scanner
	tokens  chan token
	once    sync.Once
}

func NewInput(r io.Reader) *Input {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	return &Input{
		scanner: scanner,
		tokens:  make(chan token),
	}
}

// ReadToken - returns the next token, io.EOF once the input is exhausted.
func (that *Input) ReadToken(ctx context.Context) (string, error) {
	that.once.Do(func() {
		go that.scan()
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case t, ok := <-that.tokens:
		if !ok {
			return "", io.EOF
		}
		return t.text, t.err
	}
}

func (that *Input) scan() {
	defer close(that.tokens)

	for that.scanner.Scan() {
		that.tokens <- token{text: that.scanner.Text()}
	}

	if err := that.scanner.Err(); err != nil {
		that.tokens <- token{err: fmt.Errorf("failed to read input: %w", err)}
	}
}

// ParsePosition - converts a "<row><col>" token such as "23" into a position.
func ParsePosition(input string) (entity.Position, error) {
	if len(input) != tokenLength {
		return entity.Position{}, &InputFormatError{Token: input, Reason: "expected two digits"}
	}

	row, err := parseDigit(input, input[0])
	if err != nil {
		return entity.Position{}, err
	}

	col, err := parseDigit(input, input[1])
	if err != nil {
		return entity.Position{}, err
	}

	return entity.Position{Row: row, Col: col}, nil
}

func parseDigit(input string, c byte) (int, error) {
	if c < '0' || c > '9' {
		return 0, &InputFormatError{Token: input, Reason: fmt.Sprintf("%q is not a digit", c)}
	}

	digit := int(c - '0')
	if digit >= entity.BoardSize {
		return 0, &InputFormatError{Token: input, Reason: fmt.Sprintf("%d is outside 0-%d", digit, entity.BoardSize-1)}
	}

	return digit, nil
}
