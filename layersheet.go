/*
Package layersheet turns a miryoku-style ZMK keyboard config into a
paginated PDF diagram of its key layers.

The pipeline is one linear batch transformation: the config text is read
fully into memory, layer definitions are extracted and translated
(package keymap, package keycode), the two-hand layout and the layer
reachability model are reconstructed (package layout), and the finished
records are grouped into pages and drawn (package sheet). The document is
composed entirely in memory and written to disk atomically, so no failure
path ever produces a partial file.

All errors are fatal and propagate to the caller unrecovered; the tool
refuses to generate an incomplete or incorrect diagram. The one deliberate
exception is unrecognized key tokens, which degrade to their raw text as a
visible debugging aid instead of failing the run.
*/
package layersheet

import (
	"os"
	"path/filepath"

	"github.com/npillmayer/schuko/tracing"
	"github.com/zmkutil/layersheet/keycode"
	"github.com/zmkutil/layersheet/keymap"
	"github.com/zmkutil/layersheet/layout"
	"github.com/zmkutil/layersheet/sheet"
)

// tracer writes to trace with key 'layersheet'
func tracer() tracing.Trace {
	return tracing.Select("layersheet")
}

// Options configure one generation run.
type Options struct {
	BaseLayer      string                // layer whose hold behaviors define access, default "BASE"
	ReferenceLayer string                // layer showing plain tap meanings, default "TAP"
	Filter         keymap.LayerFilter    // which discovered layers are displayed
	Mapping        layout.ThumbMapping   // thumb-row position to role assignment
	Capacity       layout.CapacityPolicy // layer blocks per page
	Sheet          sheet.Config          // geometry, typography, palette
}

// DefaultOptions renders every discovered layer except the base layer, four
// per page, with the stock geometry and palette.
func DefaultOptions() Options {
	return Options{
		BaseLayer:      "BASE",
		ReferenceLayer: "TAP",
		Filter:         keymap.LayerFilter{Deny: []string{"BASE"}},
		Mapping:        layout.DefaultThumbMapping,
		Capacity:       layout.DefaultCapacity,
		Sheet:          sheet.DefaultConfig(),
	}
}

// Result reports what a successful run produced.
type Result struct {
	Layers  []string // displayed layer names, in page order
	Records []layout.LayerRecord
	Pages   int
	PDF     []byte // the complete document
}

// Generate reads a config file and writes the layer diagram PDF with default
// options.
func Generate(inputPath, outputPath string) (*Result, error) {
	return GenerateWith(inputPath, outputPath, DefaultOptions())
}

// GenerateWith reads a config file, composes the document in memory and only
// then writes it to outputPath in one atomic step.
func GenerateWith(inputPath, outputPath string, opts Options) (*Result, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, InputNotFoundError{Path: inputPath, Err: err}
	}
	result, err := Compose(string(data), opts)
	if err != nil {
		return nil, err
	}
	if err := writeAtomic(outputPath, result.PDF); err != nil {
		return nil, OutputWriteError{Path: outputPath, Err: err}
	}
	tracer().Infof("wrote %s (%d pages)", outputPath, result.Pages)
	return result, nil
}

// Compose runs the whole pipeline over config text and returns the finished
// document bytes without touching the filesystem.
func Compose(content string, opts Options) (*Result, error) {
	codes, err := keycode.NewMap()
	if err != nil {
		return nil, err
	}

	display := opts.Filter.Select(keymap.Discover(content))
	if len(display) == 0 {
		return nil, ErrNoLayers
	}
	tracer().Infof("displaying layers: %v", display)

	// The base layer drives reachability; without it there is no access
	// model at all.
	base, err := keymap.Extract(content, opts.BaseLayer)
	if err != nil {
		return nil, err
	}
	if len(base.Keys) != layout.LayerSize {
		return nil, layout.WrongKeyCountError{Layer: opts.BaseLayer, Got: len(base.Keys), Want: layout.LayerSize}
	}
	resolver := layout.Resolver{Codes: codes, Mapping: opts.Mapping}
	accessMap := resolver.Resolve(base.Keys, display)

	records := make([]layout.LayerRecord, 0, len(display))
	for _, name := range display {
		def, err := keymap.Extract(content, name)
		if err != nil {
			return nil, err
		}
		labels := make([]keycode.Label, len(def.Keys))
		for i, key := range def.Keys {
			labels[i] = codes.Translate(key)
		}
		rec, err := layout.Build(name, labels, opts.Mapping)
		if err != nil {
			return nil, err
		}
		if name == opts.ReferenceLayer {
			// The reference layer is the home state: every thumb role is
			// simultaneously live, it is not entered through a held key.
			rec.Activation = layout.ActivationAllSix
			rec.AccessText = keycode.LayerMarker + name + " from other layers"
		} else {
			acc := accessMap[name]
			rec.Activation = layout.ActivationOf(acc)
			rec.AccessSlots = layout.ThumbAccessSlots(acc)
			rec.AccessText = layout.AccessText(acc)
		}
		records = append(records, rec)
	}

	pages := layout.Paginate(records, opts.Capacity)

	var ref *layout.LayerRecord
	for i := range records {
		if records[i].Name == opts.ReferenceLayer {
			ref = &records[i]
			break
		}
	}
	pdf, err := sheet.New(opts.Sheet).Render(pages, sheet.Legend(ref))
	if err != nil {
		return nil, err
	}
	return &Result{Layers: display, Records: records, Pages: len(pages), PDF: pdf}, nil
}

// writeAtomic writes data into a sibling temp file and renames it over path,
// so a failed run never leaves a truncated document.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".layersheet-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}
