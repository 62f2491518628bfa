// Package prompt подтверждает действия через терминал.
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/tianxinyueming/idealyard/internal/cli/auth"
)

// Terminal задаёт вопрос в Out и читает ответ из In.
// In читается одной горутиной на всё время жизни Terminal, поэтому ответы на
// несколько вопросов подряд не теряются в буфере. Если ctx отменён раньше ответа,
// следующая набранная строка достанется следующему Confirm.
type Terminal struct {
	In  io.Reader
	Out io.Writer
	// AssumeYes подтверждает всё без вопроса (флаг -y).
	AssumeYes bool

	once  sync.Once
	lines chan answer
}

var _ auth.Confirmer = (*Terminal)(nil)

type answer struct {
	line string
	err  error
}

// readLines отдаёт строки из In по одной; после ошибки чтения отдаёт её на каждый запрос.
func (t *Terminal) readLines() {
	rd := bufio.NewReader(t.In)
	for {
		line, err := rd.ReadString('\n')
		if err == io.EOF && line != "" {
			err = nil
		}
		if err != nil {
			for {
				t.lines <- answer{err: err}
			}
		}
		t.lines <- answer{line: line}
	}
}

// Confirm prints the prompt and waits for one line. "y" and "yes" confirm, anything else cancels.
// A read failure is returned as an error; so is ctx cancellation.
func (t *Terminal) Confirm(ctx context.Context, p auth.Prompt) (auth.Outcome, error) {
	if t.AssumeYes {
		return auth.Confirmed, nil
	}
	t.once.Do(func() {
		t.lines = make(chan answer)
		go t.readLines()
	})
	fmt.Fprintf(t.Out, "[%s] %s: %s [y/N]: ", p.Kind, p.Title, p.Message)

	select {
	case <-ctx.Done():
		return auth.Cancelled, ctx.Err()
	case a := <-t.lines:
		if a.err != nil {
			return auth.Cancelled, fmt.Errorf("read answer: %w", a.err)
		}
		switch strings.ToLower(strings.TrimSpace(a.line)) {
		case "y", "yes":
			return auth.Confirmed, nil
		default:
			return auth.Cancelled, nil
		}
	}
}
