package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
	"github.com/zmkutil/layersheet"
	"github.com/zmkutil/layersheet/layout"
)

// tracer traces with key 'layersheet'
func tracer() tracing.Trace {
	return tracing.Select("layersheet")
}

const defaultOutput = "layout.pdf"

// argRequired marks an argument the action must see filled in. commando
// reports a missing argument with an empty default on stdout and exits with
// status 0, so required-ness is enforced in generateOptions instead.
const argRequired = "<required>"

func main() {
	initDisplay()
	initTracing()

	commando.
		SetExecutableName("sheet-tools").
		SetVersion("v0.1.0").
		SetDescription("Generate a paginated PDF diagram of miryoku keyboard layers from a ZMK config.")

	commando.
		Register("generate").
		SetDescription("Parse a miryoku custom_config.h and render all of its layers into a PDF document.").
		SetShortDescription("render layer diagram").
		AddArgument("input", "path to the custom_config.h file", argRequired).
		AddArgument("output", "output PDF path", defaultOutput).
		AddFlag("trace,t", "trace level [Debug|Info|Error]", commando.String, "Error").
		AddFlag("legacy-thumbs,L", "use the earlier generation's thumb role mapping", commando.Bool, nil).
		AddFlag("per-page,p", "layer blocks per page", commando.Int, 4).
		SetAction(runGenerateCommand)

	commando.Parse(nil)
}

func runGenerateCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setTraceLevel(flags["trace"])

	input, output, opts, err := generateOptions(args, flags)
	if err != nil {
		fatalf("%v", err)
	}

	pterm.Info.Printf("Reading config from %s\n", input)
	result, err := layersheet.GenerateWith(input, output, opts)
	if err != nil {
		fatalf("%v", err)
	}
	pterm.Info.Printf("Layers: %s\n", strings.Join(result.Layers, ", "))
	pterm.Info.Printf("PDF created: %s (%d pages)\n", output, result.Pages)
}

// generateOptions validates the generate command line and maps its flags
// onto pipeline options.
func generateOptions(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) (input, output string, opts layersheet.Options, err error) {
	opts = layersheet.DefaultOptions()

	input = strings.TrimSpace(args["input"].Value)
	if input == "" || input == argRequired {
		return "", "", opts, errors.New("missing input argument (usage: sheet-tools generate <input> [output])")
	}
	output = strings.TrimSpace(args["output"].Value)
	if output == "" {
		output = defaultOutput
	}

	legacyFlag := flags["legacy-thumbs"]
	if legacy, e := legacyFlag.GetBool(); e == nil && legacy {
		opts.Mapping = layout.LegacyThumbMapping
	}
	perPageFlag := flags["per-page"]
	if perPage, e := perPageFlag.GetInt(); e == nil && perPage > 0 {
		opts.Capacity = layout.UniformCapacity(perPage)
	}
	return input, output, opts, nil
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "sheet-tools: "+format+"\n", args...)
	os.Exit(1)
}

// We use pterm for moderately fancy status output; diagnostics go to stderr
// via fatalf.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
}

func initTracing() {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":  "go",
		"trace.layersheet": "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Println("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
}

func setTraceLevel(flag commando.FlagValue) {
	level, err := flag.GetString()
	if err != nil {
		return
	}
	switch level {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		fatalf("invalid trace level: %s", level)
	}
}
