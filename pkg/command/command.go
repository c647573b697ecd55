package command

import (
	"strconv"
	"strings"

	"github.com/henderiw/intervals/pkg/interval"
	"github.com/pkg/errors"
	"k8s.io/apimachinery/pkg/labels"
)

type Op string

const (
	OpNone   Op = ""
	OpAdd    Op = "A"
	OpRemove Op = "R"
	OpPrint  Op = "P"
	OpClear  Op = "C"
	OpSwitch Op = "S"
	OpList   Op = "L"
	OpDelete Op = "D"
	OpQuit   Op = "Q"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrArguments      = errors.New("wrong number of arguments")
)

// Command is one parsed input line.
type Command struct {
	Op       Op
	Interval interval.Interval
	Name     string
	Labels   labels.Set
	Selector labels.Selector
}

// Parse turns a line such as "A 1 5", "R [2, 3)", "S blue color=blue"
// or "Q" into a Command. Blank lines parse to OpNone.
func Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{Op: OpNone}, nil
	}
	op, args := Op(strings.ToUpper(fields[0])), fields[1:]

	switch op {
	case OpAdd, OpRemove:
		r, err := parseBounds(args)
		if err != nil {
			return Command{}, errors.Wrapf(err, "command %s", op)
		}
		return Command{Op: op, Interval: r}, nil
	case OpPrint, OpClear, OpQuit:
		if len(args) != 0 {
			return Command{}, errors.Wrapf(ErrArguments, "command %s takes none, got %d", op, len(args))
		}
		return Command{Op: op}, nil
	case OpSwitch:
		if len(args) < 1 || len(args) > 2 {
			return Command{}, errors.Wrapf(ErrArguments, "command %s takes a name and optional labels, got %d", op, len(args))
		}
		cmd := Command{Op: op, Name: args[0]}
		if len(args) == 2 {
			l, err := labels.ConvertSelectorToLabelsMap(args[1])
			if err != nil {
				return Command{}, errors.Wrapf(err, "parsing labels %q", args[1])
			}
			cmd.Labels = l
		}
		return cmd, nil
	case OpList:
		selector, err := labels.Parse(strings.Join(args, " "))
		if err != nil {
			return Command{}, errors.Wrapf(err, "parsing selector %q", strings.Join(args, " "))
		}
		return Command{Op: op, Selector: selector}, nil
	case OpDelete:
		if len(args) != 1 {
			return Command{}, errors.Wrapf(ErrArguments, "command %s takes a name, got %d", op, len(args))
		}
		return Command{Op: op, Name: args[0]}, nil
	default:
		return Command{}, errors.Wrapf(ErrUnknownCommand, "%q", fields[0])
	}
}

// parseBounds accepts either two integers or the rendered "[l, r)"
// form. Empty or reversed ranges parse fine, the set ignores them.
func parseBounds(args []string) (interval.Interval, error) {
	if len(args) == 2 && !strings.HasPrefix(args[0], "[") {
		l, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return interval.Interval{}, errors.Wrapf(err, "parsing left bound %q", args[0])
		}
		r, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return interval.Interval{}, errors.Wrapf(err, "parsing right bound %q", args[1])
		}
		return interval.New(l, r), nil
	}
	if len(args) > 0 && strings.HasPrefix(args[0], "[") {
		r, err := interval.ParseInterval(strings.Join(args, " "))
		if err != nil {
			return interval.Interval{}, errors.WithStack(err)
		}
		return r, nil
	}
	return interval.Interval{}, errors.Wrapf(ErrArguments, "expected two bounds, got %d", len(args))
}
