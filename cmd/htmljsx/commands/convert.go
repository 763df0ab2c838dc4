package commands

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/livefir/htmljsx"
	"github.com/livefir/htmljsx/cmd/htmljsx/internal/config"
	"github.com/livefir/htmljsx/internal/mergetag"
)

// Convert prints the JSX for an HTML file, or for stdin when the file is
// "-" or omitted.
func Convert(args []string) error {
	return convert(args, os.Stdin, os.Stdout, os.Stderr)
}

func convert(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	opts, rest, err := converterFlags(cfg, args)
	if err != nil {
		return err
	}
	if len(rest) > 1 {
		return fmt.Errorf("too many arguments: htmljsx convert [--minify] [--max-depth <n>] [file|-]")
	}

	input := "-"
	if len(rest) == 1 {
		input = rest[0]
	}

	var src []byte
	if input == "-" {
		src, err = io.ReadAll(stdin)
		input = "stdin"
	} else {
		src, err = os.ReadFile(input)
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", input, err)
	}

	res, err := htmljsx.New(opts...).Render(string(src))
	if err != nil {
		return fmt.Errorf("failed to convert %s: %w", input, err)
	}

	warn(stderr, input, string(src), res)
	fmt.Fprintln(stdout, res.JSX)
	return nil
}

// converterFlags consumes the converter flags shared by convert and watch
// and returns the remaining positional arguments.
func converterFlags(cfg *config.Config, args []string) ([]htmljsx.Option, []string, error) {
	opts := cfg.Options()
	var rest []string

	for i := 0; i < len(args); i++ {
		switch arg := args[i]; {
		case arg == "--minify":
			opts = append(opts, htmljsx.WithMinify(true))
		case arg == "--max-depth":
			if i+1 >= len(args) {
				return nil, nil, fmt.Errorf("--max-depth requires a value")
			}
			depth, err := strconv.Atoi(args[i+1])
			if err != nil || depth < 0 {
				return nil, nil, fmt.Errorf("invalid --max-depth: %s", args[i+1])
			}
			opts = append(opts, htmljsx.WithMaxDepth(depth))
			i++
		case strings.HasPrefix(arg, "--"):
			return nil, nil, fmt.Errorf("unknown flag: %s", arg)
		default:
			rest = append(rest, arg)
		}
	}

	return opts, rest, nil
}

// warn reports lossy spots of a successful conversion.
func warn(w io.Writer, name, src string, res *htmljsx.Result) {
	if !mergetag.Balanced(src) {
		fmt.Fprintf(w, "Warning: %s has unbalanced braces; unmatched merge tags are kept as text\n", name)
	}
	if res.HandlerFallbacks > 0 {
		fmt.Fprintf(w, "Warning: %s has %d event handler(s) that did not parse; look for \"// TODO\" in the output\n", name, res.HandlerFallbacks)
	}
}
