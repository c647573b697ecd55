package command

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/henderiw/intervals/pkg/settable"
	"github.com/pkg/errors"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/klog/v2"
)

const DefaultPrompt = "Enter an operation ('Q' to quit): "

type Config struct {
	// Prompt is written before every line is read. Empty disables it.
	Prompt  string
	// Set names the set the session starts on. It is created when
	// missing.
	Set     string
	Printer Printer
}

// Session reads commands line by line and applies them to the active
// set of a table, printing the result after every change.
type Session struct {
	table   settable.Table
	active  settable.Entry
	out     io.Writer
	prompt  string
	printer Printer
}

func NewSession(t settable.Table, out io.Writer, cfg Config) (*Session, error) {
	if cfg.Set == "" {
		cfg.Set = "default"
	}
	if cfg.Printer == nil {
		cfg.Printer = TextPrinter{}
	}
	e, err := t.GetOrCreate(cfg.Set, nil)
	if err != nil {
		return nil, err
	}
	return &Session{
		table:   t,
		active:  e,
		out:     out,
		prompt:  cfg.Prompt,
		printer: cfg.Printer,
	}, nil
}

// Active returns the set commands currently apply to.
func (r *Session) Active() settable.Entry { return r.active }

// Run processes in until a Q command, end of input or ctx is done.
// Malformed lines are reported on the output and skipped.
//
// in is read on its own goroutine so a canceled ctx ends Run even while
// a read is blocked. That goroutine exits once the pending read returns.
func (r *Session) Run(ctx context.Context, in io.Reader) error {
	done := make(chan struct{})
	defer close(done)
	lines, errc := scan(in, done)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if r.prompt != "" {
			if _, err := io.WriteString(r.out, r.prompt); err != nil {
				return errors.Wrap(err, "writing prompt")
			}
		}
		var line string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				return errors.Wrap(<-errc, "reading input")
			}
			line = l
		}

		cmd, err := Parse(line)
		if err != nil {
			klog.V(1).InfoS("rejected input", "line", line, "err", err)
			if _, err := fmt.Fprintf(r.out, "error: %v\n", err); err != nil {
				return errors.Wrap(err, "writing error")
			}
			continue
		}
		if cmd.Op == OpQuit {
			return nil
		}
		if err := r.Apply(cmd); err != nil {
			klog.V(1).InfoS("command failed", "line", line, "err", err)
			if _, err := fmt.Fprintf(r.out, "error: %v\n", err); err != nil {
				return errors.Wrap(err, "writing error")
			}
		}
	}
}

// scan feeds the lines of in to the returned channel until end of input
// or done is closed. The channel is closed after the scan error, possibly
// nil, has been sent on errc.
func scan(in io.Reader, done <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				errc <- nil
				return
			}
		}
		errc <- scanner.Err()
	}()
	return lines, errc
}

// Apply executes a single command against the session state.
func (r *Session) Apply(cmd Command) error {
	s := r.active.Set()
	klog.V(4).InfoS("applying command", "op", cmd.Op, "interval", cmd.Interval.String(), "set", r.active.Name())

	switch cmd.Op {
	case OpNone, OpQuit:
		return nil
	case OpAdd:
		s.Add(cmd.Interval.Left, cmd.Interval.Right)
	case OpRemove:
		s.Remove(cmd.Interval.Left, cmd.Interval.Right)
	case OpClear:
		s.Clear()
	case OpPrint:
	case OpSwitch:
		e, err := r.table.GetOrCreate(cmd.Name, cmd.Labels)
		if err != nil {
			return err
		}
		if cmd.Labels != nil {
			if err := r.table.Update(cmd.Name, cmd.Labels); err != nil {
				return err
			}
		}
		r.active = e
		s = e.Set()
	case OpList:
		selector := cmd.Selector
		if selector == nil {
			selector = labels.Everything()
		}
		for _, e := range r.table.GetByLabel(selector) {
			if _, err := fmt.Fprintf(r.out, "%s %s\n", e.Name(), e.Set().String()); err != nil {
				return err
			}
		}
		return nil
	case OpDelete:
		if cmd.Name == r.active.Name() {
			return errors.Errorf("cannot delete the active set %q", cmd.Name)
		}
		return r.table.Delete(cmd.Name)
	default:
		return errors.Wrapf(ErrUnknownCommand, "%q", cmd.Op)
	}
	return r.printer.Print(r.out, s)
}
