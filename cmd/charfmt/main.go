// charfmt inspects and converts character formats.
//
// Usage:
//
//	charfmt encode <format.yaml> [--out record.bin]
//	charfmt decode <record.bin>
//	charfmt apply <format.yaml>...
//	charfmt css <format.yaml>
//	charfmt preview <format.yaml> [--text s]
//	charfmt docx <format.yaml> --out file.docx [--text s]
//	charfmt inspect <file.docx> [--html]
//	charfmt cells <file.xlsx> [--html]
package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
	"github.com/unidoc/unioffice/document"

	"github.com/aerissecure/charformat"
	"github.com/aerissecure/charformat/docx"
	"github.com/aerissecure/charformat/term"
	"github.com/aerissecure/charformat/xlsx"
)

type command struct {
	name    string
	summary string
	run     func(args []string, logger *slog.Logger, stdout io.Writer) error
}

var commands = []command{
	{"encode", "Encode a format document into a native record", encodeCmd},
	{"decode", "Decode a native record into a format document", decodeCmd},
	{"apply", "Apply format documents in order and print the result", applyCmd},
	{"css", "Print the CSS for a format document", cssCmd},
	{"preview", "Render sample text with a format in the terminal", previewCmd},
	{"docx", "Write a DOCX containing one formatted run", docxCmd},
	{"inspect", "List the runs of a DOCX with their formats", inspectCmd},
	{"cells", "List the cell formats of an XLSX", cellsCmd},
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	if os.Getenv("CHARFMT_DEBUG") != "" {
		logLevel.Set(slog.LevelDebug)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: &logLevel,
	}))

	name, args := os.Args[1], os.Args[2:]
	switch name {
	case "help", "--help", "-h":
		printUsage()
		return
	}
	for _, cmd := range commands {
		if cmd.name == name {
			if err := cmd.run(args, logger, os.Stdout); err != nil {
				if errors.Is(err, pflag.ErrHelp) {
					return
				}
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}
	fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", name)
	printUsage()
	os.Exit(1)
}

func printUsage() {
	fmt.Fprint(os.Stderr, `charfmt - inspect and convert character formats

USAGE
    charfmt <command> [flags] [args...]

COMMANDS
`)
	for _, cmd := range commands {
		fmt.Fprintf(os.Stderr, "    %-10s %s\n", cmd.name, cmd.summary)
	}
	fmt.Fprint(os.Stderr, `
FORMAT DOCUMENTS
    effects: [bold, italic]
    height: 240            # twips (1/20 pt)
    y_offset: -40
    text_color: "#ff0000"
    font_face_name: Arial
    underline_type: wave   # none|solid|dash|dashdot|dashdotdot|dotted|double|wave

ENVIRONMENT
    CHARFMT_DEBUG    Enable debug logging
`)
}

// newFlagSet returns a flag set for a subcommand with the verbose flag
// every subcommand accepts.
func newFlagSet(name string) (*pflag.FlagSet, *bool) {
	fs := pflag.NewFlagSet("charfmt "+name, pflag.ContinueOnError)
	verbose := fs.BoolP("verbose", "v", false, "enable debug logging")
	return fs, verbose
}

// parseArgs parses args and checks the number of positional arguments.
func parseArgs(fs *pflag.FlagSet, args []string, minArgs, maxArgs int) ([]string, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	rest := fs.Args()
	if len(rest) < minArgs || (maxArgs >= 0 && len(rest) > maxArgs) {
		return nil, fmt.Errorf("%s: wrong number of arguments\n%s", fs.Name(), fs.FlagUsages())
	}
	return rest, nil
}

// logLevel is shared by every handler main creates; --verbose lowers it.
var logLevel slog.LevelVar

func withVerbose(logger *slog.Logger, verbose bool) *slog.Logger {
	if verbose {
		logLevel.Set(slog.LevelDebug)
	}
	return logger
}

func encodeCmd(args []string, logger *slog.Logger, stdout io.Writer) error {
	fs, verbose := newFlagSet("encode")
	out := fs.StringP("out", "o", "", "write the raw record to this file instead of a hex dump on stdout")
	rest, err := parseArgs(fs, args, 1, 1)
	if err != nil {
		return err
	}
	logger = withVerbose(logger, *verbose)

	f, err := charformat.LoadDocument(rest[0])
	if err != nil {
		return err
	}
	rec, err := charformat.EncodeRecord(f)
	if err != nil {
		return err
	}
	data, err := rec.MarshalBinary()
	if err != nil {
		return err
	}
	logger.Debug("encoded record", "mask", fmt.Sprintf("%#08x", rec.Mask), "bytes", len(data))

	if *out == "" {
		_, err = io.WriteString(stdout, hex.Dump(data))
		return err
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		return err
	}
	logger.Info("wrote record", "path", *out)
	return nil
}

func decodeCmd(args []string, logger *slog.Logger, stdout io.Writer) error {
	fs, verbose := newFlagSet("decode")
	rest, err := parseArgs(fs, args, 1, 1)
	if err != nil {
		return err
	}
	logger = withVerbose(logger, *verbose)

	data, err := os.ReadFile(rest[0])
	if err != nil {
		return err
	}
	var rec charformat.Record
	if err := rec.UnmarshalBinary(data); err != nil {
		return fmt.Errorf("%s: %w", rest[0], err)
	}
	logger.Debug("decoded record", "mask", fmt.Sprintf("%#08x", rec.Mask))
	return writeDocument(stdout, charformat.DecodeRecord(&rec))
}

func applyCmd(args []string, logger *slog.Logger, stdout io.Writer) error {
	fs, verbose := newFlagSet("apply")
	rest, err := parseArgs(fs, args, 1, -1)
	if err != nil {
		return err
	}
	logger = withVerbose(logger, *verbose)

	ctl, err := charformat.NewMemoryControl(charformat.Format{})
	if err != nil {
		return err
	}
	for _, path := range rest {
		f, err := charformat.LoadDocument(path)
		if err != nil {
			return err
		}
		if err := charformat.Apply(ctl, f); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		logger.Debug("applied format", "path", path, "format", f.String())
	}
	result, err := charformat.Query(ctl)
	if err != nil {
		return err
	}
	return writeDocument(stdout, result)
}

func cssCmd(args []string, logger *slog.Logger, stdout io.Writer) error {
	fs, verbose := newFlagSet("css")
	rest, err := parseArgs(fs, args, 1, 1)
	if err != nil {
		return err
	}
	logger = withVerbose(logger, *verbose)

	f, err := charformat.LoadDocument(rest[0])
	if err != nil {
		return err
	}
	logger.Debug("loaded format", "path", rest[0], "format", f.String())
	_, err = fmt.Fprintln(stdout, f.CSS())
	return err
}

func previewCmd(args []string, logger *slog.Logger, stdout io.Writer) error {
	fs, verbose := newFlagSet("preview")
	text := fs.StringP("text", "t", "The quick brown fox", "sample text")
	rest, err := parseArgs(fs, args, 1, 1)
	if err != nil {
		return err
	}
	logger = withVerbose(logger, *verbose)

	f, err := charformat.LoadDocument(rest[0])
	if err != nil {
		return err
	}
	logger.Debug("loaded format", "path", rest[0], "format", f.String())
	_, err = fmt.Fprintln(stdout, term.Render(f, *text))
	return err
}

func docxCmd(args []string, logger *slog.Logger, stdout io.Writer) error {
	fs, verbose := newFlagSet("docx")
	out := fs.StringP("out", "o", "", "output DOCX path (required)")
	text := fs.StringP("text", "t", "The quick brown fox", "run text")
	rest, err := parseArgs(fs, args, 1, 1)
	if err != nil {
		return err
	}
	if *out == "" {
		return errors.New("docx: --out is required")
	}
	logger = withVerbose(logger, *verbose)

	f, err := charformat.LoadDocument(rest[0])
	if err != nil {
		return err
	}
	doc := document.New()
	run := doc.AddParagraph().AddRun()
	run.AddText(*text)
	docx.ApplyRun(run.Properties(), f)
	if err := doc.SaveToFile(*out); err != nil {
		return err
	}
	logger.Info("wrote document", "path", *out)
	return nil
}

func inspectCmd(args []string, logger *slog.Logger, stdout io.Writer) error {
	fs, verbose := newFlagSet("inspect")
	asHTML := fs.Bool("html", false, "render the document as HTML")
	rest, err := parseArgs(fs, args, 1, 1)
	if err != nil {
		return err
	}
	file, size, err := openSized(rest[0])
	if err != nil {
		return err
	}
	defer file.Close()

	logger = withVerbose(logger, *verbose)

	mdl, err := docx.ParseDocumentModel(file, size)
	if err != nil {
		return fmt.Errorf("%s: %w", rest[0], err)
	}
	logger.Debug("parsed document", "path", rest[0], "blocks", len(mdl.Blocks))
	if *asHTML {
		_, err = io.WriteString(stdout, docx.RenderDocumentHTML(mdl))
		return err
	}
	for i, run := range mdl.Runs() {
		fmt.Fprintf(stdout, "%4d %q\n     %s\n", i, run.Text, run.Format.String())
	}
	return nil
}

func cellsCmd(args []string, logger *slog.Logger, stdout io.Writer) error {
	fs, verbose := newFlagSet("cells")
	asHTML := fs.Bool("html", false, "render the cells as an HTML table")
	rest, err := parseArgs(fs, args, 1, 1)
	if err != nil {
		return err
	}
	file, size, err := openSized(rest[0])
	if err != nil {
		return err
	}
	defer file.Close()

	logger = withVerbose(logger, *verbose)

	sheets, err := xlsx.ParseWorkbookFormats(file, size)
	if err != nil {
		return fmt.Errorf("%s: %w", rest[0], err)
	}
	logger.Debug("parsed workbook", "path", rest[0], "sheets", len(sheets))
	if *asHTML {
		_, err = io.WriteString(stdout, xlsx.RenderSheetsHTML(sheets))
		return err
	}
	for _, sheet := range sheets {
		fmt.Fprintf(stdout, "[%s]\n", sheet.Name)
		for _, cell := range sheet.Cells {
			fmt.Fprintf(stdout, "%-6s %q\n       %s\n", cell.Ref, cell.Value, cell.Format.String())
		}
	}
	return nil
}

func openSized(path string) (*os.File, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, err
	}
	return f, info.Size(), nil
}

func writeDocument(w io.Writer, f charformat.Format) error {
	data, err := charformat.MarshalDocument(f)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
