package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"dex-checksum-tools/dex"
	"dex-checksum-tools/dex/dheader"
	"dex-checksum-tools/dex/dsum"
	"dex-checksum-tools/ds"
	"dex-checksum-tools/ui"
	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

type (
	Args struct {
		CurrentChecksum *CurrentChecksumCmd `arg:"subcommand:current-checksum" help:"print the checksum stored in the header"`
		ExpectChecksum  *ExpectChecksumCmd  `arg:"subcommand:expect-checksum" help:"print the checksum computed over the file"`
		CorrectChecksum *CorrectChecksumCmd `arg:"subcommand:correct-checksum" help:"rewrite the stored checksum when it is wrong"`
		Header          *HeaderCmd          `arg:"subcommand:header" help:"print every fixed header field as JSON"`
		Interactive     *InteractiveCmd     `arg:"subcommand:interactive" help:"inspect and repair a file interactively"`
		Debug           bool                `help:"print the parsed arguments"`
	}
	CurrentChecksumCmd struct {
		Input string `arg:"positional" help:"path to DEX file, or - to read the path from stdin" placeholder:"classes.dex"`
	}
	ExpectChecksumCmd struct {
		Input string `arg:"positional" help:"path to DEX file, or - to read the path from stdin" placeholder:"classes.dex"`
	}
	CorrectChecksumCmd struct {
		Input  string `arg:"positional" help:"path to DEX file, or - to read the path from stdin" placeholder:"classes.dex"`
		Output string `arg:"positional" help:"destination path; rewrites the input in place when omitted" placeholder:"fixed.dex"`
		Force  bool   `help:"overwrite an existing destination file"`
	}
	HeaderCmd struct {
		Input string `arg:"positional" help:"path to DEX file, or - to read the path from stdin" placeholder:"classes.dex"`
	}
	InteractiveCmd struct {
		Input string `arg:"positional,required" help:"path to DEX file" placeholder:"classes.dex"`
	}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"Report, validate, and repair the Adler-32 checksum",
			"stored in the header of a DEX (Dalvik Executable) file.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func CheckExistence(path string) bool {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil
}

// resolveInputPath handles the convention inherited from the original
// tool: an omitted input or "-" means the path itself arrives on
// standard input.
func resolveInputPath(input string) (string, error) {
	if input != "" && input != "-" {
		return input, nil
	}
	bs, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", errors.Wrap(err, "resolveInputPath error reading stdin")
	}
	return strings.TrimSpace(string(bs)), nil
}

func loadDexFile(input string) (string, []byte, error) {
	path, err := resolveInputPath(input)
	if err != nil {
		return "", nil, err
	}
	bs, err := os.ReadFile(path)
	if err != nil {
		return "", nil, errors.Wrapf(err, `loadDexFile error reading "%s"`, path)
	}
	return path, bs, nil
}

// writeFile writes through a temporary file and renames it over path,
// so a failed write never leaves a truncated destination behind.
func writeFile(path string, bs []byte) error {
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, bs, 0644); err != nil {
		return errors.Wrapf(err, `writeFile error writing "%s"`, tmpPath)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Wrapf(err, `writeFile error replacing "%s"`, path)
	}
	return nil
}

func RunCurrentChecksum(input string, w io.Writer) error {
	_, bs, err := loadDexFile(input)
	if err != nil {
		return err
	}
	header, err := dheader.Parse(bs)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "0x%08x\n", dsum.Current(header))
	return err
}

func RunExpectChecksum(input string, w io.Writer) error {
	_, bs, err := loadDexFile(input)
	if err != nil {
		return err
	}
	header, err := dheader.Parse(bs)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "0x%08x\n", dsum.Expected(header).Sum)
	return err
}

func RunCorrectChecksum(input string, output string, force bool, w io.Writer) error {
	path, bs, err := loadDexFile(input)
	if err != nil {
		return err
	}
	header, err := dheader.Parse(bs)
	if err != nil {
		return err
	}

	destination := lo.Ternary(output == "", path, output)
	if destination != path && CheckExistence(destination) && !force {
		return errors.Errorf(
			`destination file "%s" exists already; type the command again with --force to allow overwriting`,
			destination,
		)
	}

	applied := dsum.Correct(header)
	// an explicit destination always receives the full buffer, even
	// when nothing changed; in-place mode only rewrites on a fix
	if applied || destination != path {
		if err := writeFile(destination, bs); err != nil {
			return err
		}
	}

	if applied {
		_, err = fmt.Fprintf(w, "corrected checksum to 0x%08x\n", dsum.Current(header))
	} else {
		_, err = fmt.Fprintln(w, "nothing to do.")
	}
	return err
}

func RunHeader(input string, w io.Writer) error {
	_, bs, err := loadDexFile(input)
	if err != nil {
		return err
	}
	report, err := dex.HeaderReport(bs)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(report))
	return err
}

func Start() {
	args := Args{}
	parser := arg.MustParse(&args)
	if args.Debug {
		println(ds.DumpJSON(args))
	}

	var err error
	switch {
	case args.CurrentChecksum != nil:
		err = RunCurrentChecksum(args.CurrentChecksum.Input, os.Stdout)
	case args.ExpectChecksum != nil:
		err = RunExpectChecksum(args.ExpectChecksum.Input, os.Stdout)
	case args.CorrectChecksum != nil:
		err = RunCorrectChecksum(
			args.CorrectChecksum.Input,
			args.CorrectChecksum.Output,
			args.CorrectChecksum.Force,
			os.Stdout,
		)
	case args.Header != nil:
		err = RunHeader(args.Header.Input, os.Stdout)
	case args.Interactive != nil:
		err = ui.Start(args.Interactive.Input)
	default:
		parser.Fail("a subcommand is required")
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
