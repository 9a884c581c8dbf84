package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/msto63/imstr/foundation/utils/imstr"
)

var demoInput string

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Replays the reference demo sequence",
	Long: `Runs every library operation once on fixed inputs and prints each
result with its length. The last step reads a line (or --input), clones it
and trims it.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().StringVarP(&demoInput, "input", "i", "",
		"Use this text instead of prompting")
}

// demoRun carries the first error; later steps become no-ops
type demoRun struct {
	s   *session
	out io.Writer
	err error
}

func (d *demoRun) step(name string, fn func() (imstr.String, error)) imstr.String {
	if d.err != nil {
		return imstr.String{}
	}
	v, err := d.s.timed("demo."+name, fn)
	if err != nil {
		d.err = fmt.Errorf("demo step %s: %w", name, err)
		return imstr.String{}
	}
	d.s.print(d.out, v)
	return v
}

// literal builds an input value from the session factory without printing it
func (d *demoRun) literal(text string) imstr.String {
	if d.err != nil {
		return imstr.String{}
	}
	v, err := d.s.factory.FromString(text)
	if err != nil {
		d.err = fmt.Errorf("demo input %q: %w", text, err)
		return imstr.String{}
	}
	return v
}

func (d *demoRun) result(label string, value interface{}) {
	if d.err == nil {
		d.s.result(d.out, label, value)
	}
}

func runDemo(cmd *cobra.Command, args []string) error {
	s := current
	f := s.factory
	d := &demoRun{s: s, out: cmd.OutOrStdout()}
	defer s.finish()

	strGlobal := d.step("global", func() (imstr.String, error) {
		return f.FromString("My global statically allocated string")
	})
	comma := d.literal(", ")
	dot := d.literal(".")

	strLocal := d.step("local", func() (imstr.String, error) {
		return f.FromString("My local statically allocated string")
	})

	concatenated := d.step("concat", func() (imstr.String, error) {
		return f.Concat(strGlobal, strLocal)
	})
	d.step("slice", func() (imstr.String, error) {
		return f.Slice(concatenated, -28, 12)
	})

	dynamic := d.step("new", func() (imstr.String, error) {
		return f.FromString("My dynamic string")
	})

	what1, with1 := d.literal("My"), d.literal("123")
	what2, with2 := d.literal("string"), d.literal("789")
	what3, with3 := d.literal(" dynamic "), d.literal("456")
	replaced1 := d.step("replace", func() (imstr.String, error) {
		return f.ReplaceFirst(dynamic, what1, with1)
	})
	replaced2 := d.step("replace", func() (imstr.String, error) {
		return f.ReplaceFirst(replaced1, what2, with2)
	})
	d.step("replace", func() (imstr.String, error) {
		return f.ReplaceFirst(replaced2, what3, with3)
	})

	sentence := d.literal("test... this is a test. (testtest) This test is simple. tes")
	test, example := d.literal("test"), d.literal("example")
	d.step("replace_all", func() (imstr.String, error) {
		return f.ReplaceAll(sentence, test, example)
	})

	d.result("index of 'string' in 'My dynamic string'", imstr.IndexOf(dynamic, what2))
	d.result("'My dynamic string' contains 'string'", imstr.Contains(dynamic, what2))

	fileName := d.literal("test.file.name.txt")
	d.step("extension", func() (imstr.String, error) {
		return f.Slice(fileName, imstr.LastIndexOf(fileName, dot), -1)
	})

	d.step("format", func() (imstr.String, error) {
		return f.FromFormat(s.cfg.Format.BufferSize, "%s, %s, %s", strGlobal, strLocal, dynamic)
	})

	concatenatedN := d.step("concat_many", func() (imstr.String, error) {
		return f.ConcatMany([]imstr.String{strGlobal, comma, strLocal, comma, dynamic})
	})
	joinedN := d.step("join_many", func() (imstr.String, error) {
		return f.JoinMany(comma, []imstr.String{strGlobal, strLocal, dynamic})
	})
	d.result("strings are equal", imstr.Equals(concatenatedN, joinedN))

	if d.err != nil {
		return d.err
	}

	text, err := readInput(cmd, "input", demoInput)
	if err != nil {
		return err
	}

	input := d.step("input", func() (imstr.String, error) {
		return f.FromString(text)
	})
	cloned := d.step("clone", func() (imstr.String, error) {
		return f.Clone(input)
	})
	d.step("trim", func() (imstr.String, error) {
		return f.Trim(cloned)
	})

	return d.err
}
