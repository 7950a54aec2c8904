package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/otsubset"
	"github.com/npillmayer/otsubset/subset"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'otsubset.cli'
func tracer() tracing.Trace {
	return tracing.Select("otsubset.cli")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":       "go",
		"trace.otsubset.cli":    "Info",
		"trace.otsubset":        "Error",
		"trace.otsubset.subset": "Error",
		"trace.font.opentype":   "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	args := cliArgs{settings: make(settingsFlag)}
	flag.StringVar(&args.tlevel, "trace", "Info", "Trace level [Debug|Info|Error]")
	flag.StringVar(&args.fontname, "font", "", "Font to load")
	flag.StringVar(&args.text, "text", "", "Text to retain")
	flag.Var(args.settings, "set", "Subset setting key=value, e.g. retain-gids=true or drop-tables=+GSUB (repeatable)")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError)           // will set the correct level later
	pterm.Info.Println("Welcome to OpenType Subset CLI") // colored welcome message
	os.Exit(run(args))
}

type cliArgs struct {
	tlevel   string
	fontname string
	text     string
	settings settingsFlag
	opts     []subset.Option
}

var traceLevels = map[string]tracing.TraceLevel{
	"Debug": tracing.LevelDebug,
	"Info":  tracing.LevelInfo,
	"Error": tracing.LevelError,
}

// run returns the exit code of the CLI. Every path out of run releases the
// subset input.
func run(args cliArgs) int {
	intp, code := startSession(args)
	if code != 0 {
		return code
	}
	defer intp.input.Destroy()
	//
	// set up REPL
	repl, err := readline.New("subset > ")
	if err != nil {
		tracer().Errorf("%v", err)
		return 3
	}
	defer repl.Close()
	intp.repl = repl
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	tracer().SetTraceLevel(traceLevels[args.tlevel])
	tracer().Infof("Trace level is %s", args.tlevel)
	intp.REPL() // go into interactive mode
	return 0
}

// startSession creates the interpreter and loads the font. On failure the
// interpreter's input is destroyed and a non-zero exit code is returned.
func startSession(args cliArgs) (*Intp, int) {
	if _, ok := traceLevels[args.tlevel]; !ok {
		tracer().Errorf("Invalid trace level: %s", args.tlevel)
		return nil, 5
	}
	intp, err := newIntp(args.settings, args.opts...)
	if err != nil {
		tracer().Errorf("%v", err)
		return nil, 2
	}
	intp.input.AddText(args.text)
	//
	// load font to use
	if args.fontname != "" {
		if err := intp.loadFont(args.fontname); err != nil { // font name provided by flag
			tracer().Errorf("%v", err)
			intp.input.Destroy()
			return nil, 4
		}
	}
	return intp, 0
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// settingsFlag collects -set key=value pairs. It doubles as the
// configuration handed to subset.Configure.
type settingsFlag map[string]string

func (s settingsFlag) String() string {
	return fmt.Sprintf("%v", map[string]string(s))
}

func (s settingsFlag) Set(value string) error {
	key, v, ok := strings.Cut(value, "=")
	if !ok || strings.TrimSpace(key) == "" {
		return fmt.Errorf("setting must be of form key=value: %q", value)
	}
	s[subset.ConfigPrefix+strings.TrimSpace(key)] = v
	return nil
}

func (s settingsFlag) GetString(key string) string {
	return s[key]
}

// Intp is our interpreter object
type Intp struct {
	input *subset.Input
	font  *otsubset.Font
	repl  *readline.Instance
}

func newIntp(settings settingsFlag, opts ...subset.Option) (*Intp, error) {
	in, err := subset.CreateOrFail(opts...)
	if err != nil {
		return nil, err
	}
	if err = subset.Configure(in, settings); err != nil {
		in.Destroy()
		return nil, err
	}
	return &Intp{input: in}, nil
}

func (intp *Intp) String() string {
	if intp == nil || intp.input == nil {
		return "()"
	}
	if intp.font == nil {
		return fmt.Sprintf("( %d code-points, %d glyphs )",
			intp.input.UnicodeSet().Len(), intp.input.GlyphSet().Len())
	}
	return fmt.Sprintf("( font=%s, %d code-points, %d glyphs )", intp.font.Fontname,
		intp.input.UnicodeSet().Len(), intp.input.GlyphSet().Len())
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := parseCommand(line)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		err, quit := intp.execute(cmd)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Op is a parsed command line, e.g. "add unicodes U+41-U+5A" with code ADD,
// arg "unicodes" and values "U+41-U+5A".
type Op struct {
	code   int
	arg    string
	values string
}

const (
	QUIT int = iota
	HELP
	ADD
	REMOVE
	CLEAR
	FLAG
	FEATURES
	SHOW
	PREVIEW
	GLYPHS
	TAG
)

var opMap = map[string]int{
	"quit":     QUIT,
	"help":     HELP,
	"add":      ADD,
	"remove":   REMOVE,
	"clear":    CLEAR,
	"flag":     FLAG,
	"features": FEATURES,
	"show":     SHOW,
	"preview":  PREVIEW,
	"glyphs":   GLYPHS,
	"tag":      TAG,
}

var errEmptyCommand = errors.New("empty command")

func parseCommand(line string) (*Op, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, errEmptyCommand
	}
	code, ok := opMap[strings.ToLower(fields[0])]
	if !ok {
		return &Op{code: HELP}, nil
	}
	op := &Op{code: code}
	if len(fields) > 1 {
		op.arg = fields[1]
	}
	if len(fields) > 2 {
		op.values = strings.Join(fields[2:], " ")
	}
	tracer().Debugf("parsed command: %v", fields)
	return op, nil
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:     quitOp,
	HELP:     helpOp,
	ADD:      addOp,
	REMOVE:   removeOp,
	CLEAR:    clearOp,
	FLAG:     flagOp,
	FEATURES: featuresOp,
	SHOW:     showOp,
	PREVIEW:  previewOp,
	GLYPHS:   glyphsOp,
	TAG:      tagOp,
}

func (intp *Intp) execute(op *Op) (err error, stop bool) {
	f, ok := commandFn[op.code]
	if !ok {
		return fmt.Errorf("unknown command code: %d", op.code), false
	}
	return f(intp, op)
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	pterm.Println("Goodbye!")
	return nil, true
}

// --- Font Loading -----------------------------------------------------

func (intp *Intp) loadFont(fontname string) (err error) {
	intp.font, err = otsubset.LoadFont(fontname)
	if err == nil {
		pterm.Printf("font tables: %v\n", intp.font.Directory.Tags())
		tracer().Infof("loaded font = %s", intp.font.Fontname)
	}
	return
}

var errNoFont = errors.New("no font loaded, use flag -font")

func (intp *Intp) checkFont() error {
	if intp.font == nil {
		return errNoFont
	}
	return nil
}
