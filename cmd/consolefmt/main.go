package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
	"pkt.systems/consolefmt"
	"pkt.systems/version"
)

const maxLineBytes = 1 << 20

var errNoMessages = errors.New("no messages")

func init() {
	version.SetDefaultModule("pkt.systems/consolefmt")
}

// message is one captured console call.
type message struct {
	Format string `yaml:"format"`
	Args   []any  `yaml:"args"`
}

func main() {
	var (
		messagesPath string
		colorFlag    string
		widthFlag    int
		rescan       bool
		hardWrap     bool
		dumpTokens   bool
		outPath      string
	)

	flags := pflag.NewFlagSet("consolefmt", pflag.ExitOnError)
	flags.StringVarP(&messagesPath, "messages", "m", "", "YAML or JSON file with a list of {format, args} messages")
	flags.StringVarP(&colorFlag, "color", "c", "auto", "SGR output: auto|on|off")
	flags.IntVarP(&widthFlag, "width", "w", 0, "Wrap width (0 uses terminal width, no wrap when not a terminal)")
	flags.BoolVar(&rescan, "rescan", false, "Expand specifiers inside substituted strings, like the browser console")
	flags.BoolVar(&hardWrap, "hard-wrap", false, "Break words longer than the wrap width")
	flags.BoolVar(&dumpTokens, "tokens", false, "Print the token stream instead of rendering")
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")

	flags.SetInterspersed(false)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: consolefmt [flags] [format [args...]]\n")
		fmt.Fprintln(os.Stderr, "\nWithout a format or --messages, every stdin line is formatted on its own.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	writer, closeOut, err := resolveOutput(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open output: %v\n", err)
		os.Exit(1)
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	color, err := resolveColor(colorFlag, writer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --color %q: %v\n", colorFlag, err)
		os.Exit(2)
	}

	p := printer{
		w:          writer,
		width:      resolveWidth(widthFlag, writer),
		dumpTokens: dumpTokens,
		formatOpts: []consolefmt.FormatOption{consolefmt.WithRescan(rescan)},
		renderOpts: []consolefmt.RenderOption{
			consolefmt.WithColor(color),
			consolefmt.WithHardWrap(hardWrap),
		},
	}

	args := flags.Args()
	switch {
	case messagesPath != "":
		if len(args) > 0 {
			fmt.Fprintln(os.Stderr, "--messages cannot be combined with a format argument")
			os.Exit(2)
		}
		msgs, err := loadMessagesFile(messagesPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load messages: %v\n", err)
			os.Exit(1)
		}
		for _, msg := range msgs {
			if err := p.print(msg.Format, argValues(msg.Args)); err != nil {
				fmt.Fprintf(os.Stderr, "render: %v\n", err)
				os.Exit(1)
			}
		}
	case len(args) > 0:
		values := make([]consolefmt.Value, 0, len(args)-1)
		for _, raw := range args[1:] {
			values = append(values, parseArg(raw))
		}
		if err := p.print(args[0], values); err != nil {
			fmt.Fprintf(os.Stderr, "render: %v\n", err)
			os.Exit(1)
		}
	default:
		if err := p.printLines(os.Stdin); err != nil {
			fmt.Fprintf(os.Stderr, "render: %v\n", err)
			os.Exit(1)
		}
	}
}

type printer struct {
	w          io.Writer
	width      int
	dumpTokens bool
	formatOpts []consolefmt.FormatOption
	renderOpts []consolefmt.RenderOption
}

func (p printer) print(format string, args []consolefmt.Value) error {
	res := consolefmt.Format(format, args, p.formatOpts...)
	if p.dumpTokens {
		return writeTokens(p.w, res)
	}
	return consolefmt.Render(consolefmt.RenderRequest{
		Writer:  p.w,
		Result:  res,
		Width:   p.width,
		Options: p.renderOpts,
	})
}

func (p printer) printLines(r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		if err := p.print(sc.Text(), nil); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	return nil
}

func writeTokens(w io.Writer, res consolefmt.Result) error {
	var b strings.Builder
	for _, tok := range res.Tokens {
		b.WriteString(tok.String())
		b.WriteByte('\n')
	}
	for _, arg := range res.Args {
		fmt.Fprintf(&b, "arg(%s %q)\n", arg.Kind(), arg.String())
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}

func loadMessagesFile(path string) ([]message, error) {
	f, err := os.Open(normalizePath(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return loadMessages(f)
}

// loadMessages decodes a YAML sequence of messages. JSON arrays decode too.
func loadMessages(r io.Reader) ([]message, error) {
	var msgs []message
	if err := yaml.NewDecoder(r).Decode(&msgs); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errNoMessages
		}
		return nil, fmt.Errorf("decode: %w", err)
	}
	if len(msgs) == 0 {
		return nil, errNoMessages
	}
	return msgs, nil
}

func argValues(raw []any) []consolefmt.Value {
	values := make([]consolefmt.Value, 0, len(raw))
	for _, v := range raw {
		values = append(values, decodedValue(v))
	}
	return values
}

// decodedValue maps a decoded YAML/JSON scalar or collection to a Value.
func decodedValue(v any) consolefmt.Value {
	switch x := v.(type) {
	case nil:
		return consolefmt.NewObjectValue("null", "", nil)
	case bool:
		return consolefmt.BoolValue(x)
	case int:
		return consolefmt.NumberValue(float64(x))
	case int64:
		return consolefmt.NumberValue(float64(x))
	case uint64:
		return consolefmt.NumberValue(float64(x))
	case float64:
		return consolefmt.NumberValue(x)
	case string:
		return consolefmt.StringValue(x)
	case []any:
		return consolefmt.NewObjectValue("Array("+strconv.Itoa(len(x))+")", compactJSON(x), x)
	case map[string]any:
		return consolefmt.NewObjectValue("Object", compactJSON(x), x)
	}
	return consolefmt.NewObjectValue("Object", fmt.Sprint(v), v)
}

func compactJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(data)
}

// parseArg infers the type of a command line argument.
func parseArg(raw string) consolefmt.Value {
	switch raw {
	case "true":
		return consolefmt.BoolValue(true)
	case "false":
		return consolefmt.BoolValue(false)
	case "null":
		return consolefmt.NewObjectValue("null", "", nil)
	case "undefined":
		return consolefmt.UndefinedValue()
	}
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return consolefmt.NumberValue(n)
	}
	return consolefmt.StringValue(raw)
}

func resolveColor(mode string, w io.Writer) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return isTerminal(w) && consolefmt.DetectColorSupport(), nil
	case "on", "true", "1", "yes", "always":
		return true, nil
	case "off", "false", "0", "no", "never":
		return false, nil
	default:
		return false, fmt.Errorf("expected auto|on|off")
	}
}

func resolveWidth(width int, w io.Writer) int {
	if width > 0 {
		return width
	}
	if !isTerminal(w) {
		return 0
	}
	return terminalWidth(w.(*os.File), 0)
}

func terminalWidth(f *os.File, fallback int) int {
	if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
		return w
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

func resolveOutput(path string) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return os.Stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
