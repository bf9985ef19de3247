// Command barcodegen draws a barcode as PNG, SVG or text.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"

	"github.com/ericlevine/barcodego"
	"github.com/ericlevine/barcodego/internal/config"
	"github.com/ericlevine/barcodego/internal/logging"

	// Register all symbology encoders.
	_ "github.com/ericlevine/barcodego/oned"
	_ "github.com/ericlevine/barcodego/pdf417"
)

// options is the parsed command line.
type options struct {
	profile *config.Profile
	out     string
	list    bool
	help    bool
	verbose int
	args    []string
}

var errUsage = errors.New("usage")

// parseArgs parses args, args[0] being the program name. A profile named
// with -P is loaded first; other flags override it.
func parseArgs(args []string, usage io.Writer) (*options, error) {
	set := getopt.New()
	set.SetParameters("[data ...]")
	o := &options{}

	sym := set.String('s', "", "symbology, see -l", "name")
	format := set.Enum('f', config.Formats, "", "output format: "+strings.Join(config.Formats, ", ")+
		"; png unless standard output is a terminal", "format")
	set.Flag(&o.out, 'o', `output file, or "-" for standard output`, "file")
	barWidth := set.Int('w', 0, "bar width in pixels [2]", "pixels")
	barHeight := set.Int('H', 0, "bar height in pixels [half an inch]", "pixels")
	resolution := set.Int('r', 0, "resolution in dots per inch [72]", "dpi")
	noText := set.Bool('n', "do not draw the label")
	noQuiet := set.Bool('q', "do not draw quiet zones")
	checksum := set.Bool('c', "add the optional check character")
	extended := set.Bool('x', "full ASCII Code 39")
	ai := set.String('a', "", "UCC/EAN-128 application identifier", "ai")
	codeSet := set.Enum('C', []string{"A", "B", "C"}, "", "force a Code 128 character set", "A|B|C")
	columns := set.Int('k', 0, "PDF417 data columns [12]", "columns")
	level := set.Int('e', 0, "PDF417 error correction level 0-8", "level")
	compaction := set.Enum('m', []string{"byte", "auto", "text", "numeric"}, "",
		"PDF417 compaction", "mode")
	cs := set.String('E', "", "PDF417 character set, designated with an ECI unless ISO-8859-1", "charset")
	fg := set.String('F', "", "foreground colour as hex digits or black, white", "colour")
	bg := set.String('B', "", "background colour; transparent allowed", "colour")
	width := set.Int('W', 0, "scale PNG output to this width", "pixels")
	height := set.Int('S', 0, "scale PNG output to this height", "pixels")
	profile := set.String('P', "", "YAML render profile", "file")
	set.Flag(&o.list, 'l', "list symbologies and exit")
	set.Flag(&o.help, 'h', "show this help")
	verbose := set.Counter('v', "debug logging; -vv: trace")

	if err := set.Getopt(args, nil); err != nil {
		set.PrintUsage(usage)
		return nil, fmt.Errorf("%w: %v", errUsage, err)
	}
	if o.help {
		set.PrintUsage(usage)
		return o, nil
	}
	o.args = set.Args()
	o.verbose = *verbose

	p := config.Default()
	if *profile != "" {
		var err error
		if p, err = config.Load(*profile); err != nil {
			return nil, err
		}
	}
	if set.IsSet('s') {
		p.Symbology = *sym
	}
	if set.IsSet('f') {
		p.Format = *format
	}
	if set.IsSet('w') {
		p.BarWidth = *barWidth
	}
	if set.IsSet('H') {
		p.BarHeight = *barHeight
	}
	if set.IsSet('r') {
		p.Resolution = *resolution
	}
	if *noText {
		p.DrawText = new(bool)
	}
	if *noQuiet {
		p.QuietZone = new(bool)
	}
	p.Checksum = p.Checksum || *checksum
	p.Extended = p.Extended || *extended
	if set.IsSet('a') {
		p.ApplicationIdentifier = *ai
	}
	if set.IsSet('C') {
		p.CodeSet = *codeSet
	}
	if set.IsSet('k') {
		p.PDF417.Columns = *columns
	}
	if set.IsSet('e') {
		p.PDF417.ErrorCorrection = *level
	}
	if set.IsSet('m') {
		p.PDF417.Compaction = *compaction
	}
	if set.IsSet('E') {
		p.PDF417.Charset = *cs
	}
	if set.IsSet('F') {
		p.Foreground = *fg
	}
	if set.IsSet('B') {
		p.Background = *bg
	}
	if set.IsSet('W') {
		p.Width = *width
	}
	if set.IsSet('S') {
		p.Height = *height
	}
	if !set.IsSet('f') && *profile == "" && o.out == "" && isatty.IsTerminal(uintptr(syscall.Stdout)) {
		p.Format = "txt"
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	o.profile = p
	return o, nil
}

// newLogger returns a text logger on stderr for -v and -vv, or nil.
func newLogger(verbose int) *slog.Logger {
	level := slog.LevelDebug
	switch {
	case verbose == 0:
		return nil
	case verbose > 1:
		level = logging.LevelTrace
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// listSymbologies prints the name of every registered symbology.
func listSymbologies(w io.Writer) error {
	for _, s := range barcodego.Symbologies() {
		if !barcodego.Registered(s) {
			continue
		}
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}

// readData joins args, or reads standard input without its final newline.
func readData(args []string, stdin io.Reader) (string, error) {
	if len(args) != 0 {
		return strings.Join(args, " "), nil
	}
	var b strings.Builder
	if _, err := io.Copy(&b, stdin); err != nil {
		return "", err
	}
	s, _ := strings.CutSuffix(strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	return s, nil
}

// generate encodes data per the profile and writes it to w.
func generate(w io.Writer, data string, p *config.Profile, logger *slog.Logger) error {
	s, err := p.SymbologyID()
	if err != nil {
		return err
	}
	bc, err := barcodego.New(s, data, p.EncodeOptions(logger))
	if err != nil {
		return err
	}
	p.Apply(bc)
	return render(w, bc, p)
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	o, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}
	if o.help {
		return nil
	}
	if o.list {
		return listSymbologies(stdout)
	}
	data, err := readData(o.args, stdin)
	if err != nil {
		return err
	}

	// Nothing reaches the output until rendering succeeds.
	var buf bytes.Buffer
	if err := generate(&buf, data, o.profile, newLogger(o.verbose)); err != nil {
		return err
	}
	if o.out != "" && o.out != "-" {
		return os.WriteFile(o.out, buf.Bytes(), 0o666)
	}
	_, err = buf.WriteTo(stdout)
	return err
}

func main() {
	if err := run(os.Args, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "barcodegen: %v\n", err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
