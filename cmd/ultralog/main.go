package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/ClassicMiniDIY/UltraLog-sub000/formula"
	"github.com/ClassicMiniDIY/UltraLog-sub000/helpers"
	"github.com/ClassicMiniDIY/UltraLog-sub000/library"
	"github.com/ClassicMiniDIY/UltraLog-sub000/logdata"
)

// ============================================================================
// ULTRALOG CLI — Computed channels over engine-log CSV exports
// ============================================================================

const version = "0.3.0"

func main() {
	// ── Flags ─────────────────────────────────────────────────────────────
	logPath := flag.String("log", "", "Path to CSV log file")
	formulaStr := flag.String("formula", "", "Formula to evaluate against the log")
	validateOnly := flag.Bool("validate", false, "Validate the formula against the log and exit")
	previewN := flag.Int("preview", 0, "Show only the first N records of the evaluation")
	applyRef := flag.String("apply", "", "Evaluate a saved template (by ID or name)")
	listTpl := flag.Bool("list", false, "List saved templates and exit")
	addName := flag.String("add", "", "Save --formula as a template with this name")
	unitStr := flag.String("unit", "", "Unit label for --add")
	descStr := flag.String("desc", "", "Description for --add")
	removeID := flag.String("remove", "", "Remove the template with this ID")
	importPath := flag.String("import", "", "Merge a YAML formula pack into the library")
	exportPath := flag.String("export", "", "Write the library as a YAML formula pack")
	packName := flag.String("pack-name", "", "Pack name for --export")
	libPath := flag.String("library", "", "Template library path (default: user config dir)")
	format := flag.String("format", "text", "Output format: text, json, pretty, csv")
	outFile := flag.String("out", "", "Write output to file instead of stdout")
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `UltraLog — computed channels for engine logs

Usage:
  ultralog --log run.csv --formula "Boost * 0.0689476" --format csv
  ultralog --log run.csv --formula 'RPM - RPM[-1]' --preview 10
  ultralog --log run.csv --formula '"Manifold Pressure" / 14.7' --validate
  ultralog --add "Boost (bar)" --formula "Boost * 0.0689476" --unit bar
  ultralog --log run.csv --apply "Boost (bar)" --format csv --out boost.csv
  ultralog --list
  ultralog --export pack.yaml --pack-name "MPI turbo pack"
  ultralog --import pack.yaml

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Environment:
  ULTRALOG_CONFIG_DIR    Overrides where the template library lives

Formulas:
  Reference channels bare (RPM) or quoted ("Manifold Pressure").
  Shift by records with [±n], by seconds with @±x.xs:
    RPM - RPM[-1]          change per record
    Boost@-0.1s            boost 100 ms ago
  Builtins: sin cos tan asin acos atan atan2 sinh cosh tanh asinh acosh
  atanh sqrt abs exp ln log log2 log10 floor ceil round trunc fract
  signum min max and constants pi e tau phi.

Formats:
  text      Summary with sample statistics (default)
  json      Full JSON output
  pretty    Pretty-printed JSON
  csv       Time/value pairs (ready for Sheets/Excel)
`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("ultralog %s\n", version)
		os.Exit(0)
	}

	// ── Output writer ─────────────────────────────────────────────────────
	writer := os.Stdout
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			fatalf("Failed to create output file: %v", err)
		}
		defer f.Close()
		writer = f
	}

	// ── Template library ──────────────────────────────────────────────────
	path := *libPath
	if path == "" {
		var err error
		path, err = library.DefaultPath()
		if err != nil {
			fatalf("Failed to locate template library: %v", err)
		}
	}
	lib, err := library.Load(path)
	if err != nil {
		fatalf("Failed to load template library: %v", err)
	}

	// ── Library-only modes ────────────────────────────────────────────────
	if *listTpl {
		writeTemplateList(writer, lib, *format)
		return
	}

	if *removeID != "" {
		removed, ok := lib.Remove(*removeID)
		if !ok {
			fatalf("No template with ID %q", *removeID)
		}
		if err := lib.Save(path); err != nil {
			fatalf("Failed to save template library: %v", err)
		}
		log.Printf("🗑️ Removed template %q (%s)", removed.Name, removed.ID)
		return
	}

	if *importPath != "" {
		f, err := os.Open(*importPath)
		if err != nil {
			fatalf("Failed to open pack: %v", err)
		}
		defer f.Close()
		n, err := lib.ImportPack(f)
		if err != nil {
			fatalf("Failed to import pack: %v", err)
		}
		if err := lib.Save(path); err != nil {
			fatalf("Failed to save template library: %v", err)
		}
		log.Printf("📦 Imported %d formulas from %s", n, *importPath)
		return
	}

	if *exportPath != "" {
		f, err := os.Create(*exportPath)
		if err != nil {
			fatalf("Failed to create pack file: %v", err)
		}
		defer f.Close()
		if err := lib.ExportPack(f, *packName); err != nil {
			fatalf("Failed to export pack: %v", err)
		}
		log.Printf("📦 Exported %d formulas to %s", lib.Len(), *exportPath)
		return
	}

	// ── Load log when given ───────────────────────────────────────────────
	var lg *logdata.Log
	if *logPath != "" {
		data, err := os.ReadFile(*logPath)
		if err != nil {
			fatalf("Failed to read log file: %v", err)
		}
		lg, err = helpers.ParseCSVLog(data)
		if err != nil {
			fatalf("Failed to parse log: %v", err)
		}
		log.Printf("📊 Parsed %d records, %d channels", lg.Rows(), lg.Cols())
	}

	// ── Add mode ──────────────────────────────────────────────────────────
	if *addName != "" {
		if *formulaStr == "" {
			fatalf("--add requires --formula")
		}
		// Checking reference names needs a log; the structural dry run
		// does not, so a broken formula never reaches the library.
		if lg != nil {
			if err := formula.Validate(*formulaStr, lg.Channels); err != nil {
				fatalf("Formula invalid: %v", err)
			}
		} else if err := formula.ValidateSyntax(*formulaStr); err != nil {
			fatalf("Formula invalid: %v", err)
		}
		t := library.NewTemplate(*addName, *formulaStr, *unitStr, *descStr)
		lib.Add(t)
		if err := lib.Save(path); err != nil {
			fatalf("Failed to save template library: %v", err)
		}
		log.Printf("💾 Saved template %q (%s)", t.Name, t.ID)
		return
	}

	// ── Evaluation modes ──────────────────────────────────────────────────
	if lg == nil {
		fmt.Fprintln(os.Stderr, "Error: --log is required")
		flag.Usage()
		os.Exit(1)
	}

	tpl := library.Template{Name: "Computed", Formula: *formulaStr, Unit: *unitStr}
	if *applyRef != "" {
		t, ok := lib.Get(*applyRef)
		if !ok {
			t, ok = lib.FindByName(*applyRef)
		}
		if !ok {
			fatalf("No template matching %q", *applyRef)
		}
		tpl = t
	}
	if tpl.Formula == "" {
		fmt.Fprintln(os.Stderr, "Error: either --formula or --apply is required")
		flag.Usage()
		os.Exit(1)
	}

	if err := formula.Validate(tpl.Formula, lg.Channels); err != nil {
		fatalf("Formula invalid: %v", err)
	}
	log.Printf("✅ Formula valid: %s", tpl.Formula)
	if *validateOnly {
		fmt.Fprintln(writer, "OK")
		return
	}

	refs := formula.Extract(tpl.Formula)
	bindings, err := formula.BuildBindings(refs, lg.Channels)
	if err != nil {
		fatalf("Binding failed: %v", err)
	}

	var values []float64
	var degraded []bool
	if *previewN > 0 {
		values, err = formula.Preview(tpl.Formula, bindings, lg.Data, lg.Times, *previewN)
	} else {
		values, degraded, err = formula.EvaluateWithDiagnostics(tpl.Formula, bindings, lg.Data, lg.Times)
	}
	if err != nil {
		fatalf("Evaluation failed: %v", err)
	}
	bad := 0
	for _, d := range degraded {
		if d {
			bad++
		}
	}
	log.Printf("🧮 Evaluated %d samples (%d degraded to 0)", len(values), bad)

	// ── Render output ─────────────────────────────────────────────────────
	switch *format {
	case "csv":
		writeSamplesCSV(writer, lg.Times, values, tpl)
		if *outFile != "" {
			log.Printf("📄 CSV written to %s", *outFile)
		}
	case "json", "pretty":
		out := evalOutput{
			Formula:  tpl.Formula,
			Name:     tpl.Name,
			Unit:     tpl.Unit,
			Bindings: bindings,
			Samples:  values,
			Degraded: bad,
		}
		writeJSON(writer, out, *format)
	default:
		writeTextSummary(writer, values, tpl)
	}
}

// ============================================================================
// OUTPUT TYPES
// ============================================================================

type evalOutput struct {
	Formula  string         `json:"formula"`
	Name     string         `json:"name"`
	Unit     string         `json:"unit,omitempty"`
	Bindings map[string]int `json:"bindings"`
	Samples  []float64      `json:"samples"`
	Degraded int            `json:"degraded"`
}

// ============================================================================
// CSV OUTPUT — Time/value pairs ready for Sheets/Excel
// ============================================================================

func writeSamplesCSV(w *os.File, times []float64, values []float64, tpl library.Template) {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := tpl.Name
	if tpl.Unit != "" {
		header = fmt.Sprintf("%s (%s)", tpl.Name, tpl.Unit)
	}
	cw.Write([]string{"Time (s)", header})
	for i, v := range values {
		t := ""
		if i < len(times) {
			t = formatSample(times[i])
		}
		cw.Write([]string{t, formatSample(v)})
	}
}

// ============================================================================
// TEXT OUTPUT
// ============================================================================

func writeTextSummary(w *os.File, values []float64, tpl library.Template) {
	if len(values) == 0 {
		fmt.Fprintln(w, "No samples.")
		return
	}
	min, max, sum := values[0], values[0], 0.0
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		sum += v
	}
	unit := tpl.Unit
	if unit != "" {
		unit = " " + unit
	}
	fmt.Fprintf(w, "%s = %s\n", tpl.Name, tpl.Formula)
	fmt.Fprintf(w, "  samples: %d\n", len(values))
	fmt.Fprintf(w, "  min: %s%s\n", fmtNum(min), unit)
	fmt.Fprintf(w, "  max: %s%s\n", fmtNum(max), unit)
	fmt.Fprintf(w, "  avg: %s%s\n", fmtNum(sum/float64(len(values))), unit)
}

func writeTemplateList(w *os.File, lib *library.Library, format string) {
	if format == "json" || format == "pretty" {
		writeJSON(w, lib, format)
		return
	}
	if lib.Len() == 0 {
		fmt.Fprintln(w, "No templates saved.")
		return
	}
	for _, t := range lib.Templates {
		unit := ""
		if t.Unit != "" {
			unit = fmt.Sprintf(" [%s]", t.Unit)
		}
		fmt.Fprintf(w, "%s  %s%s = %s\n", t.ID, t.Name, unit, t.Formula)
	}
}

// ============================================================================
// JSON OUTPUT
// ============================================================================

func writeJSON(w *os.File, v interface{}, format string) {
	var out []byte
	var err error

	if format == "pretty" {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}

	if err != nil {
		fatalf("Failed to marshal output: %v", err)
	}
	fmt.Fprintln(w, string(out))
}

// ============================================================================
// HELPERS
// ============================================================================

// formatSample keeps full float precision for machine consumption.
func formatSample(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func fmtNum(v float64) string {
	// Whole numbers → no decimals, fractional → 3 decimals
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.3f", v)
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
