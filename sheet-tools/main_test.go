package main

import (
	"strings"
	"testing"

	"github.com/thatisuday/commando"
	"github.com/zmkutil/layersheet/layout"
)

func generateArgs(input, output string) map[string]commando.ArgValue {
	return map[string]commando.ArgValue{
		"input":  {Value: input},
		"output": {Value: output},
	}
}

func generateFlags(legacy bool, perPage int) map[string]commando.FlagValue {
	return map[string]commando.FlagValue{
		"trace":         {Flag: commando.Flag{DataType: commando.String}, Value: "Error"},
		"legacy-thumbs": {Flag: commando.Flag{DataType: commando.Bool}, Value: legacy},
		"per-page":      {Flag: commando.Flag{DataType: commando.Int}, Value: perPage},
	}
}

// An unfilled required argument still carries its sentinel default and must
// be rejected with a usage diagnostic, never fall through to generation.
func TestGenerateOptionsMissingInput(t *testing.T) {
	_, _, _, err := generateOptions(generateArgs(argRequired, defaultOutput), generateFlags(false, 4))
	if err == nil {
		t.Fatal("missing input must be an error")
	}
	if !strings.Contains(err.Error(), "usage:") {
		t.Errorf("diagnostic %q should include a usage message", err)
	}
	if _, _, _, err := generateOptions(generateArgs("", defaultOutput), generateFlags(false, 4)); err == nil {
		t.Error("blank input must be an error")
	}
}

func TestGenerateOptionsDefaults(t *testing.T) {
	input, output, opts, err := generateOptions(generateArgs("config.h", ""), generateFlags(false, 4))
	if err != nil {
		t.Fatal(err)
	}
	if input != "config.h" {
		t.Errorf("input = %q", input)
	}
	if output != defaultOutput {
		t.Errorf("output = %q; want %q", output, defaultOutput)
	}
	if opts.Mapping[33].Role != layout.RoleOuter {
		t.Error("default mapping should assign the outer role to position 33")
	}
	if got := opts.Capacity(1); got != 4 {
		t.Errorf("default capacity = %d; want 4", got)
	}
}

func TestGenerateOptionsFlagMapping(t *testing.T) {
	_, _, opts, err := generateOptions(generateArgs("config.h", "out.pdf"), generateFlags(true, 2))
	if err != nil {
		t.Fatal(err)
	}
	if opts.Mapping[33].Role != layout.RoleInner {
		t.Error("legacy mapping should assign the inner role to position 33")
	}
	if got := opts.Capacity(3); got != 2 {
		t.Errorf("per-page capacity = %d; want 2", got)
	}
}
