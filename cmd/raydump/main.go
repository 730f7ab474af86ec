package main

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/raydium-io/raydium-amm/amm"
	"github.com/raydium-io/raydium-amm/codec"
)

type options struct {
	record   string
	data     string
	file     string
	encoding string
	format   string
	logLine  string
	encode   bool
	list     bool
}

func main() {
	var (
		opts        options
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Debug logging to stderr")
	)
	flag.StringVar(&opts.record, "record", "", "Record name (see -list)")
	flag.StringVar(&opts.data, "data", "", "Input bytes, or a JSON value with -encode")
	flag.StringVar(&opts.file, "file", "", "Read input from file ('-' for stdin)")
	flag.StringVar(&opts.encoding, "encoding", "base64", "Byte encoding: base64 or hex")
	flag.StringVar(&opts.format, "format", "text", "Output format: text or json")
	flag.StringVar(&opts.logLine, "log", "", "Decode a 'ray_log:' program log line")
	flag.BoolVar(&opts.encode, "encode", false, "Encode a JSON value instead of decoding bytes")
	flag.BoolVar(&opts.list, "list", false, "List catalog records and exit")
	flag.Parse()

	if *verbose {
		if l, err := zap.NewDevelopment(); err == nil {
			codec.SetLogger(l)
			amm.SetLogger(l)
			defer func() { _ = l.Sync() }()
		}
	}

	if *interactive {
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if !opts.list && opts.logLine == "" && opts.record == "" {
		fmt.Fprintln(os.Stderr, "Usage: raydump -record <name> -data <base64|hex> [-encoding hex] [-format json]")
		fmt.Fprintln(os.Stderr, "       raydump -record <name> -encode -data '<json>'")
		fmt.Fprintln(os.Stderr, "       raydump -log 'Program log: ray_log: ...'")
		fmt.Fprintln(os.Stderr, "       raydump -list")
		fmt.Fprintln(os.Stderr, "       raydump -i  (interactive mode)")
		os.Exit(1)
	}

	if err := run(os.Stdout, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, opts options) error {
	switch {
	case opts.list:
		return listRecords(w)
	case opts.logLine != "":
		return decodeLog(w, opts)
	}

	input, err := readInput(opts)
	if err != nil {
		return err
	}
	if opts.encode {
		data, err := encodeJSON(opts.record, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, formatBytes(data, opts.encoding))
		return nil
	}

	data, err := parseBytes(strings.TrimSpace(string(input)), opts.encoding)
	if err != nil {
		return err
	}
	v, err := amm.DecodeValue(opts.record, data)
	if err != nil {
		return fmt.Errorf("decode %s: %w", opts.record, err)
	}
	return printValue(w, opts.record, v, opts.format)
}

func listRecords(w io.Writer) error {
	for _, r := range amm.Records() {
		size := "variable"
		if r.Fixed() {
			size = fmt.Sprintf("%d bytes", r.Size())
		}
		fmt.Fprintf(w, "%-22s %-12s %s\n", r.Name, r.Kind, size)
	}
	return nil
}

func decodeLog(w io.Writer, opts options) error {
	log, ok, err := amm.ParseLogMessage(opts.logLine)
	if err != nil {
		return fmt.Errorf("ray_log: %w", err)
	}
	if !ok {
		return fmt.Errorf("no %q payload in log line", strings.TrimSpace(amm.RayLogPrefix))
	}
	raw, err := amm.PackRayLog(log)
	if err != nil {
		return err
	}
	v, err := amm.DecodeValue("rayLog", raw)
	if err != nil {
		return err
	}
	return printValue(w, "rayLog", v, opts.format)
}

func readInput(opts options) ([]byte, error) {
	switch {
	case opts.file == "-":
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return b, nil
	case opts.file != "":
		b, err := os.ReadFile(opts.file)
		if err != nil {
			return nil, fmt.Errorf("read file: %w", err)
		}
		return b, nil
	case opts.data != "":
		return []byte(opts.data), nil
	}
	return nil, fmt.Errorf("no input: use -data or -file")
}

func parseBytes(s, encoding string) ([]byte, error) {
	switch encoding {
	case "base64":
		b, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("base64: %w", err)
		}
		return b, nil
	case "hex":
		b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
		if err != nil {
			return nil, fmt.Errorf("hex: %w", err)
		}
		return b, nil
	}
	return nil, fmt.Errorf("unknown encoding %q", encoding)
}

func formatBytes(b []byte, encoding string) string {
	if encoding == "hex" {
		return hex.EncodeToString(b)
	}
	return base64.StdEncoding.EncodeToString(b)
}

// encodeJSON encodes a JSON document as the named record. Union records
// take {"name": ..., "fields": {...}}; all others take a plain object.
func encodeJSON(record string, input []byte) ([]byte, error) {
	r, err := amm.Lookup(record)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(input))
	dec.UseNumber()

	var value any
	switch r.Kind {
	case amm.RecordInstruction, amm.RecordLog:
		var v codec.Variant
		if err := dec.Decode(&v); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
		value = v
	default:
		var obj codec.Object
		if err := dec.Decode(&obj); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
		value = obj
	}

	data, err := amm.Encode(record, value)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", record, err)
	}
	return data, nil
}

func printValue(w io.Writer, record string, v any, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "text":
		return printText(w, record, v)
	}
	return fmt.Errorf("unknown format %q", format)
}

var keyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB"))

func printText(w io.Writer, record string, v any) error {
	r, err := amm.Lookup(record)
	if err != nil {
		return err
	}
	l := r.Layout
	if r.Kind == amm.RecordVariant {
		l = amm.InstructionLayout
	}

	styled := false
	if f, ok := w.(*os.File); ok {
		styled = term.IsTerminal(int(f.Fd()))
	}

	return codec.Walk(l, v, func(path []string, _ *codec.Layout, leaf any) error {
		key := joinPath(path)
		if styled {
			key = keyStyle.Render(key)
		}
		_, err := fmt.Fprintf(w, "%s = %s\n", key, codec.FormatValue(leaf))
		return err
	})
}

// joinPath renders a leaf path as "buyOrders[3].price".
func joinPath(path []string) string {
	var b strings.Builder
	for i, p := range path {
		if i > 0 && !strings.HasPrefix(p, "[") {
			b.WriteByte('.')
		}
		b.WriteString(p)
	}
	return b.String()
}
