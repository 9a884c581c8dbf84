package cmd

import (
	"io"
	"strconv"

	"github.com/spf13/cobra"

	mdwerrors "github.com/msto63/imstr/foundation/core/errors"
	"github.com/msto63/imstr/foundation/utils/imstr"
)

var opCmd = &cobra.Command{
	Use:   "op",
	Short: "Runs a single string operation",
	Long: `Runs one library operation on the given arguments and prints the result.

String results are printed with their length, searches print an index,
a count or a boolean.`,
}

// operation describes one op subcommand
type operation struct {
	use   string
	short string
	args  cobra.PositionalArgs
	run   func(s *session, out io.Writer, args []imstr.String, raw []string) error
}

var operations = []operation{
	{
		use:   "concat A B [C...]",
		short: "Concatenates all arguments",
		args:  cobra.MinimumNArgs(2),
		run: func(s *session, out io.Writer, args []imstr.String, raw []string) error {
			return s.show(out, "op.concat", func() (imstr.String, error) {
				if len(args) == 2 {
					return s.factory.Concat(args[0], args[1])
				}
				return s.factory.ConcatMany(args)
			})
		},
	},
	{
		use:   "join SEP [ITEM...]",
		short: "Joins items with a separator",
		args:  cobra.MinimumNArgs(1),
		run: func(s *session, out io.Writer, args []imstr.String, raw []string) error {
			return s.show(out, "op.join", func() (imstr.String, error) {
				return s.factory.JoinMany(args[0], args[1:])
			})
		},
	},
	{
		use:   "slice TEXT START [LEN]",
		short: "Extracts a substring; negative START counts from the end",
		args:  cobra.RangeArgs(2, 3),
		run: func(s *session, out io.Writer, args []imstr.String, raw []string) error {
			start, err := parseIndex("START", raw[1])
			if err != nil {
				return err
			}
			n := -1
			if len(raw) == 3 {
				if n, err = parseIndex("LEN", raw[2]); err != nil {
					return err
				}
			}
			return s.show(out, "op.slice", func() (imstr.String, error) {
				return s.factory.Slice(args[0], start, n)
			})
		},
	},
	{
		use:   "trim TEXT",
		short: "Removes surrounding whitespace",
		args:  cobra.ExactArgs(1),
		run: func(s *session, out io.Writer, args []imstr.String, raw []string) error {
			return s.show(out, "op.trim", func() (imstr.String, error) {
				return s.factory.Trim(args[0])
			})
		},
	},
	{
		use:   "equals A B",
		short: "Compares length and content",
		args:  cobra.ExactArgs(2),
		run: func(s *session, out io.Writer, args []imstr.String, raw []string) error {
			s.result(out, "equal", imstr.Equals(args[0], args[1]))
			return nil
		},
	},
	{
		use:   "prefix TEXT PREFIX",
		short: "Reports whether TEXT starts with PREFIX",
		args:  cobra.ExactArgs(2),
		run: func(s *session, out io.Writer, args []imstr.String, raw []string) error {
			s.result(out, "has prefix", imstr.HasPrefix(args[0], args[1]))
			return nil
		},
	},
	{
		use:   "index TEXT SUB",
		short: "Index of the first occurrence, -1 if absent",
		args:  cobra.ExactArgs(2),
		run: func(s *session, out io.Writer, args []imstr.String, raw []string) error {
			s.result(out, "index", imstr.IndexOf(args[0], args[1]))
			return nil
		},
	},
	{
		use:   "last-index TEXT SUB",
		short: "Index of the last occurrence, -1 if absent",
		args:  cobra.ExactArgs(2),
		run: func(s *session, out io.Writer, args []imstr.String, raw []string) error {
			s.result(out, "last index", imstr.LastIndexOf(args[0], args[1]))
			return nil
		},
	},
	{
		use:   "contains TEXT SUB",
		short: "Reports whether SUB occurs in TEXT",
		args:  cobra.ExactArgs(2),
		run: func(s *session, out io.Writer, args []imstr.String, raw []string) error {
			s.result(out, "contains", imstr.Contains(args[0], args[1]))
			return nil
		},
	},
	{
		use:   "count TEXT SUB",
		short: "Counts non-overlapping occurrences",
		args:  cobra.ExactArgs(2),
		run: func(s *session, out io.Writer, args []imstr.String, raw []string) error {
			s.result(out, "count", imstr.Count(args[0], args[1]))
			return nil
		},
	},
	{
		use:   "replace TEXT WHAT TO",
		short: "Replaces the first occurrence",
		args:  cobra.ExactArgs(3),
		run: func(s *session, out io.Writer, args []imstr.String, raw []string) error {
			return s.show(out, "op.replace", func() (imstr.String, error) {
				return s.factory.ReplaceFirst(args[0], args[1], args[2])
			})
		},
	},
	{
		use:   "replace-all TEXT WHAT TO",
		short: "Replaces every non-overlapping occurrence",
		args:  cobra.ExactArgs(3),
		run: func(s *session, out io.Writer, args []imstr.String, raw []string) error {
			return s.show(out, "op.replace_all", func() (imstr.String, error) {
				return s.factory.ReplaceAll(args[0], args[1], args[2])
			})
		},
	},
	{
		use:   "format FORMAT [ARG...]",
		short: "Renders FORMAT into a buffer of format.buffer_size bytes",
		args:  cobra.MinimumNArgs(1),
		run: func(s *session, out io.Writer, args []imstr.String, raw []string) error {
			values := make([]interface{}, len(args)-1)
			for i, a := range args[1:] {
				values[i] = a
			}
			return s.show(out, "op.format", func() (imstr.String, error) {
				return s.factory.FromFormat(s.cfg.Format.BufferSize, raw[0], values...)
			})
		},
	},
}

func init() {
	rootCmd.AddCommand(opCmd)

	for _, op := range operations {
		op := op
		c := &cobra.Command{
			Use:   op.use,
			Short: op.short,
			Args:  op.args,
			RunE: func(cmd *cobra.Command, raw []string) error {
				s := current
				defer s.finish()

				args, err := s.wrapArgs(raw)
				if err != nil {
					return err
				}
				return op.run(s, cmd.OutOrStdout(), args, raw)
			},
		}
		// Arguments after the first one are never flags, so "-5" stays an index
		c.Flags().SetInterspersed(false)
		opCmd.AddCommand(c)
	}
}

// wrapArgs copies command line arguments into Strings
func (s *session) wrapArgs(raw []string) ([]imstr.String, error) {
	args := make([]imstr.String, len(raw))
	for i, r := range raw {
		v, err := s.factory.FromString(r)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

// show runs a string-producing operation and prints the result
func (s *session) show(out io.Writer, name string, fn func() (imstr.String, error)) error {
	v, err := s.timed(name, fn)
	if err != nil {
		return err
	}
	s.print(out, v)
	return nil
}

func parseIndex(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, mdwerrors.InvalidInput(mdwerrors.ModuleImstr, "op", value, "an integer "+name)
	}
	return n, nil
}
