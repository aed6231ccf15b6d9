// Command skdesign sizes the resistors or capacitors of a cascaded
// Sallen-Key filter and prints the stages and the cascaded transfer function.
//
// Usage:
//
//	skdesign [flags]
//
// Exactly one of -r and -c must be given, with one value per component slot
// in stage order (first-order stage first for odd orders).
//
// Examples:
//
//	skdesign -family butterworth -order 2 -fc 1000 -r 1000,5000
//	skdesign -family bessel -pass highpass -order 3 -fc 2500 -c 10e-9,4.7e-9,47e-9
//	skdesign -preset request.json -sweep 10:100000:40
//	skdesign -tables
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-analog/filter/poles"
	"github.com/cwbudde/algo-analog/filter/preset"
	"github.com/cwbudde/algo-analog/filter/sallenkey"
	"github.com/cwbudde/algo-analog/filter/synth"
	"github.com/cwbudde/algo-analog/filter/transfer"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("skdesign", flag.ContinueOnError)
	fs.SetOutput(stderr)
	family := fs.String("family", "butterworth", "filter family: butterworth, bessel, chebyshev")
	pass := fs.String("pass", "lowpass", "pass type: lowpass, highpass")
	order := fs.Int("order", 2, "filter order (1..10)")
	fc := fs.Float64("fc", 1000, "cutoff frequency in Hz")
	rList := fs.String("r", "", "comma-separated resistances in ohms")
	cList := fs.String("c", "", "comma-separated capacitances in farads")
	presetPath := fs.String("preset", "", "JSON request file (overrides the flags above)")
	sweep := fs.String("sweep", "", "print a response table: from:to:points (Hz)")
	tables := fs.Bool("tables", false, "print the normalized pole tables and exit")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: skdesign [flags]\n\n")
		fmt.Fprintf(stderr, "Sizes the components of a cascaded Sallen-Key filter.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *tables {
		if err := printTables(stdout); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		return 0
	}

	req, err := buildRequest(*presetPath, *family, *pass, *order, *fc, *rList, *cList, *sweep)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	res, err := synth.Synthesize(req.Spec, req.Components)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s: %v\n", req.Spec, err)
		return 1
	}

	if err := printResult(stdout, req.Spec, res); err != nil {
		fmt.Fprintf(stderr, "error: failed to write output: %v\n", err)
		return 1
	}
	if req.Sweep != nil {
		if err := printSweep(stdout, res.Transfer, req.Sweep); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
	}
	return 0
}

func buildRequest(presetPath, family, pass string, order int, fc float64, rList, cList, sweep string) (*preset.Request, error) {
	var req *preset.Request
	if presetPath != "" {
		var err error
		if req, err = preset.LoadJSON(presetPath); err != nil {
			return nil, err
		}
	} else {
		rs, err := parseList(rList)
		if err != nil {
			return nil, fmt.Errorf("-r: %w", err)
		}
		cs, err := parseList(cList)
		if err != nil {
			return nil, fmt.Errorf("-c: %w", err)
		}
		f := preset.File{
			Family:       family,
			Pass:         pass,
			Order:        order,
			CutoffHz:     fc,
			Resistances:  rs,
			Capacitances: cs,
		}
		if req, err = f.Request(); err != nil {
			return nil, err
		}
	}

	if sweep != "" {
		s, err := parseSweep(sweep)
		if err != nil {
			return nil, fmt.Errorf("-sweep: %w", err)
		}
		req.Sweep = s
	}
	return req, nil
}

func parseList(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func parseSweep(s string) (*preset.Sweep, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return nil, fmt.Errorf("want from:to:points, got %q", s)
	}
	from, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return nil, err
	}
	to, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(parts[2])
	if err != nil {
		return nil, err
	}
	return &preset.Sweep{FromHz: from, ToHz: to, Points: n}, nil
}

func printTables(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Table\tOrder\tStage\tOmega0\tQ\n")
	fmt.Fprintf(tw, "-----\t-----\t-----\t------\t-\n")
	for _, family := range []poles.Family{poles.Butterworth, poles.Bessel, poles.Chebyshev} {
		tbl, err := poles.TableFor(family)
		if err != nil {
			return err
		}
		for _, n := range tbl.Orders() {
			ds, err := tbl.Poles(n)
			if err != nil {
				return err
			}
			for i, d := range ds {
				fmt.Fprintf(tw, "%s\t%d\t%d\t%.4f\t%.4f\n", tbl.ID, n, i+1, d.Omega0, d.Q)
			}
		}
	}
	return tw.Flush()
}

func printResult(w io.Writer, spec synth.Spec, res *transfer.Cascade) error {
	tbl, err := poles.TableFor(spec.Family)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s (table %s)\n\n", spec, tbl.ID); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Stage\tOrder\tOmega0\tQ\tGiven\tComponents\n")
	fmt.Fprintf(tw, "-----\t-----\t------\t-\t-----\t----------\n")
	for i, st := range res.Stages {
		var comps []string
		for _, role := range st.Roles() {
			v, _ := st.Value(role)
			comps = append(comps, fmt.Sprintf("%s=%s", role, formatValue(role, v)))
		}
		fmt.Fprintf(tw, "%d\t%d\t%.4f\t%.4f\t%s\t%s\n",
			i+1, st.Order, st.Pole.Omega0, st.Pole.Q, st.Given, strings.Join(comps, " "))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "\nnum = %s\nden = %s\n", formatPoly(res.Numerator()), formatPoly(res.Denominator()))
	return err
}

func printSweep(w io.Writer, r transfer.Rational, s *preset.Sweep) error {
	freqs, err := transfer.LogSpace(s.FromHz, s.ToHz, s.Points)
	if err != nil {
		return err
	}
	resp, err := transfer.Sweep(r, freqs)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "\nFreq [Hz]\tMagnitude [dB]\tPhase [deg]\n")
	for i, f := range resp.FreqHz {
		fmt.Fprintf(tw, "%.3f\t%.3f\t%.2f\n", f, resp.MagnitudeDB[i], resp.Phase[i]*180/math.Pi)
	}
	return tw.Flush()
}

func formatValue(role sallenkey.Role, v float64) string {
	unit := "F"
	if role == sallenkey.R || role == sallenkey.R1 || role == sallenkey.R2 {
		unit = "Ω"
	}
	return strconv.FormatFloat(v, 'g', 6, 64) + unit
}

func formatPoly(p []float64) string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = strconv.FormatFloat(c, 'g', 8, 64)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
