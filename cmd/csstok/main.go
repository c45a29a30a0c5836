// Command csstok prints the tokens of one or more CSS files.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/segmentio/encoding/json"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	css "github.com/ndesmic/css-parse"
	"github.com/ndesmic/css-parse/internal/config"
	"github.com/ndesmic/css-parse/scanner"
	"github.com/ndesmic/css-parse/token"
)

const usage = `usage: csstok [flags] FILE...

Prints the tokens of each CSS file. A FILE of "-" reads from stdin.
With no FILE arguments stdin is read.

Flags:
`

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// Main holds the state of a single invocation.
type Main struct {
	Config *config.Config
	Logger *zap.Logger

	Stdin  io.Reader
	Stdout io.Writer
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("csstok", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}

	configPath := fs.String("config", "", "path to a TOML config file (default ./"+config.FileName+" if present)")
	initPath := fs.String("init", "", "write the default config to `path` and exit")
	asJSON := fs.Bool("json", false, "print tokens as a JSON array")
	asCSS := fs.Bool("css", false, "print tokens back out as CSS")
	skipComments := fs.Bool("skip-comments", false, "omit comment tokens")
	skipWhitespace := fs.Bool("skip-whitespace", false, "omit whitespace tokens")
	decode := fs.Bool("decode", false, "print escape-decoded token values")
	verbose := fs.Bool("v", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *initPath != "" {
		return config.Default().Save(*initPath)
	}

	c, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	// Flags given on the command line override the config file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "json":
			if *asJSON {
				c.Format = config.FormatJSON
			}
		case "css":
			if *asCSS {
				c.Format = config.FormatCSS
			}
		case "skip-comments":
			c.SkipComments = *skipComments
		case "skip-whitespace":
			c.SkipWhitespace = *skipWhitespace
		case "decode":
			c.Decode = *decode
		case "v":
			if *verbose {
				c.LogLevel = zapcore.DebugLevel.String()
			}
		}
	})

	logger := newLogger(stderr, c.Level())
	defer logger.Sync()

	m := &Main{Config: c, Logger: logger, Stdin: stdin, Stdout: stdout}
	paths := fs.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	return m.Run(paths)
}

// loadConfig reads the config at path. An empty path falls back to the
// default file in the working directory, or to the defaults if it is missing.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	if _, err := os.Stat(config.FileName); err == nil {
		return config.Load(config.FileName)
	}
	return config.Default(), nil
}

func newLogger(w io.Writer, level zapcore.Level) *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), level)
	return zap.New(core)
}

// Run tokenizes each path and writes the result to stdout. A failing file
// does not stop the others; all errors are returned together.
func (m *Main) Run(paths []string) error {
	var records []record
	var errs error
	for _, path := range paths {
		src, err := m.read(path)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}

		m.Logger.Debug("tokenizing", zap.String("file", path), zap.Int("bytes", len(src)))
		tokens, err := scanner.Tokenize(src, scanner.WithLogger(m.Logger.With(zap.String("file", path))))
		if err != nil {
			fields := []zap.Field{zap.String("file", path), zap.Error(err)}
			var serr *scanner.Error
			if errors.As(err, &serr) {
				fields = append(fields, zap.Int("offset", serr.Pos))
			}
			m.Logger.Error("tokenize failed", fields...)
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}

		switch m.Config.Format {
		case config.FormatJSON:
			for _, tok := range m.filter(tokens) {
				records = append(records, m.record(path, tok))
			}
		case config.FormatCSS:
			p := css.Printer{SkipComments: m.Config.SkipComments, CollapseWhitespace: m.Config.SkipWhitespace}
			if err := p.PrintTokens(m.Stdout, tokens); err != nil {
				return multierr.Append(errs, err)
			}
		default:
			if err := m.printText(path, len(paths) > 1, m.filter(tokens)); err != nil {
				return multierr.Append(errs, err)
			}
		}
	}

	if m.Config.Format == config.FormatJSON {
		if records == nil {
			records = []record{}
		}
		enc := json.NewEncoder(m.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(records); err != nil {
			return multierr.Append(errs, fmt.Errorf("failed to encode tokens: %w", err))
		}
	}
	return errs
}

func (m *Main) read(path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(m.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return string(b), nil
}

func (m *Main) filter(tokens []token.Token) []token.Token {
	var other []token.Token
	for _, tok := range tokens {
		if m.Config.SkipComments && tok.Kind == token.Comment {
			continue
		} else if m.Config.SkipWhitespace && tok.Kind == token.Whitespace {
			continue
		}
		other = append(other, tok)
	}
	return other
}

func (m *Main) text(tok token.Token) string {
	if m.Config.Decode {
		return tok.Value()
	}
	return tok.Text
}

// printText writes one line per token: offsets, kind, quoted text and
// any numeric or hash payload.
func (m *Main) printText(path string, prefix bool, tokens []token.Token) error {
	var sb strings.Builder
	for _, tok := range tokens {
		sb.Reset()
		if prefix {
			sb.WriteString(path)
			sb.WriteByte(':')
		}
		fmt.Fprintf(&sb, "%d-%d\t%s\t%s", tok.Pos, tok.End, tok.Kind, strconv.Quote(m.text(tok)))
		switch tok.Kind {
		case token.Number, token.Percentage:
			fmt.Fprintf(&sb, "\t%v %s", tok.Number, tok.NumericFlag)
		case token.Dimension:
			fmt.Fprintf(&sb, "\t%v %s %s", tok.Number, tok.NumericFlag, strconv.Quote(tok.Unit))
		case token.Hash:
			fmt.Fprintf(&sb, "\t%s", tok.HashFlag)
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(m.Stdout, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

// record is the JSON form of a token.
type record struct {
	File   string   `json:"file"`
	Kind   string   `json:"kind"`
	Pos    int      `json:"pos"`
	End    int      `json:"end"`
	Text   string   `json:"text"`
	Number *float64 `json:"number,omitempty"`
	Flag   string   `json:"flag,omitempty"`
	Unit   string   `json:"unit,omitempty"`
}

func (m *Main) record(path string, tok token.Token) record {
	r := record{File: path, Kind: tok.Kind.String(), Pos: tok.Pos, End: tok.End, Text: m.text(tok)}
	switch tok.Kind {
	case token.Number, token.Percentage, token.Dimension:
		n := tok.Number
		r.Number, r.Flag, r.Unit = &n, tok.NumericFlag.String(), tok.Unit
	case token.Hash:
		r.Flag = tok.HashFlag.String()
	}
	return r
}
