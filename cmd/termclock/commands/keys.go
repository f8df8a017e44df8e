package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// readKeys puts the terminal in raw mode and forwards each keypress. When
// in is not a terminal it returns a nil channel, which the plain loops
// treat as no keys. restore must be called before writing anything else.
func readKeys(in io.Reader) (keys <-chan rune, restore func(), err error) {
	f, ok := in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return nil, func() {}, nil
	}

	fd := int(f.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to enter raw mode: %w", err)
	}

	ch := make(chan rune)
	go func() {
		defer close(ch)
		r := bufio.NewReader(f)
		for {
			k, _, err := r.ReadRune()
			if err != nil {
				return
			}
			ch <- k
		}
	}()

	// The reader goroutine stays blocked on stdin until the process exits.
	return ch, func() { _ = term.Restore(fd, state) }, nil
}
