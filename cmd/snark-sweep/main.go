package main

// Benchmark sweep: runs the full pipeline (lowering, setup, prove, verify)
// over product-chain circuits of growing size and reports per-phase wall
// times as JSONL plus an HTML chart. The sweep uses the raw-exponent suite
// over a large scalar field so circuit sizes are not capped by the toy
// curve's five-element field; pass -curve to sweep the didactic curve
// instead (sizes are then limited by its subgroup order).

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/lambdaclass/pinocchio-lambda-vm/curve"
	"github.com/lambdaclass/pinocchio-lambda-vm/ff"
	"github.com/lambdaclass/pinocchio-lambda-vm/group"
	"github.com/lambdaclass/pinocchio-lambda-vm/internal/logger"
	"github.com/lambdaclass/pinocchio-lambda-vm/pinocchio"
	"github.com/lambdaclass/pinocchio-lambda-vm/qap"
	"github.com/lambdaclass/pinocchio-lambda-vm/r1cs"
	"github.com/lambdaclass/pinocchio-lambda-vm/sample"
)

const defaultSizes = "4,8,16,32,64,128,256"

// sweepModulus is a 31-bit prime, large enough for every sweep size.
const sweepModulus = 2147483647

type sweepRow struct {
	Inputs      int   `json:"inputs"`
	Constraints int   `json:"constraints"`
	Wires       int   `json:"wires"`
	Accepted    bool  `json:"accepted"`
	LowerUS     int64 `json:"lower_us"`
	SetupUS     int64 `json:"setup_us"`
	ProveUS     int64 `json:"prove_us"`
	VerifyUS    int64 `json:"verify_us"`
}

func main() {
	var (
		sizesSpec = flag.String("sizes", defaultSizes, "comma-separated chain input counts")
		useCurve  = flag.Bool("curve", false, "sweep the didactic pairing curve instead of the exponent group")
		jsonlPath = flag.String("jsonl", "snark_sweep.jsonl", "JSONL output path")
		htmlPath  = flag.String("html", "snark_sweep.html", "HTML chart output path")
		verbose   = flag.Bool("v", false, "log protocol phases")
	)
	flag.Parse()
	if !*verbose {
		logger.Disable()
	}

	sizes, err := parseSizes(*sizesSpec)
	if err != nil {
		fmt.Fprintln(os.Stderr, "snark-sweep:", err)
		os.Exit(1)
	}

	rows := make([]sweepRow, 0, len(sizes))
	for _, k := range sizes {
		row, err := runOne(k, *useCurve)
		if err != nil {
			fmt.Fprintf(os.Stderr, "snark-sweep: size %d: %v\n", k, err)
			os.Exit(1)
		}
		rows = append(rows, row)
		fmt.Printf("k=%-5d m=%-5d n=%-5d lower=%-8s setup=%-8s prove=%-8s verify=%-8s accept=%v\n",
			row.Inputs, row.Constraints, row.Wires,
			time.Duration(row.LowerUS)*time.Microsecond,
			time.Duration(row.SetupUS)*time.Microsecond,
			time.Duration(row.ProveUS)*time.Microsecond,
			time.Duration(row.VerifyUS)*time.Microsecond,
			row.Accepted)
	}

	if err := writeJSONL(*jsonlPath, rows); err != nil {
		fmt.Fprintln(os.Stderr, "snark-sweep:", err)
		os.Exit(1)
	}
	if err := renderHTML(*htmlPath, rows); err != nil {
		fmt.Fprintln(os.Stderr, "snark-sweep:", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s and %s\n", *jsonlPath, *htmlPath)
}

func parseSizes(list string) ([]int, error) {
	parts := strings.Split(list, ",")
	sizes := make([]int, 0, len(parts))
	for _, p := range parts {
		k, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || k < 2 {
			return nil, fmt.Errorf("bad size %q", p)
		}
		sizes = append(sizes, k)
	}
	return sizes, nil
}

func runOne(k int, useCurve bool) (sweepRow, error) {
	if useCurve {
		toy := curve.Toy()
		if uint64(k) >= toy.R {
			return sweepRow{}, fmt.Errorf("chain of %d inputs is not below the curve's subgroup order %d", k, toy.R)
		}
		f := ff.MustField(toy.R)
		return timePipeline(group.NewCurveSuite(toy), f, k)
	}
	f := ff.MustField(sweepModulus)
	return timePipeline(group.NewExponentSuite(f), f, k)
}

func timePipeline[G, T any](suite group.Bilinear[G, T], f ff.Field, k int) (sweepRow, error) {
	src, err := sample.NewSource()
	if err != nil {
		return sweepRow{}, err
	}

	cs := r1cs.ChainCircuit(f, k)
	row := sweepRow{
		Inputs:      k,
		Constraints: cs.NumConstraints(),
		Wires:       cs.NumWires(),
	}

	start := time.Now()
	circuit, err := qap.FromR1CS(cs)
	if err != nil {
		return sweepRow{}, err
	}
	row.LowerUS = time.Since(start).Microseconds()

	inputs := make([]ff.Elem, k)
	for i := range inputs {
		inputs[i] = f.Random(src)
	}
	assignment := r1cs.SolveChainCircuit(f, inputs)

	var (
		ek *pinocchio.EvaluationKey[G]
		vk *pinocchio.VerificationKey[G]
	)
	start = time.Now()
	err = pinocchio.WithToxicWaste(f, src, func(tw *pinocchio.ToxicWaste) error {
		ek, vk = pinocchio.Setup(suite, circuit, tw)
		return nil
	})
	if err != nil {
		return sweepRow{}, err
	}
	row.SetupUS = time.Since(start).Microseconds()

	start = time.Now()
	proof, err := pinocchio.Prove(suite, ek, circuit, assignment)
	if err != nil {
		return sweepRow{}, err
	}
	row.ProveUS = time.Since(start).Microseconds()

	inputOutput := append(append([]ff.Elem{}, inputs...), assignment[len(assignment)-1])
	start = time.Now()
	row.Accepted = pinocchio.Verify(suite, vk, proof, inputOutput)
	row.VerifyUS = time.Since(start).Microseconds()

	return row, nil
}

func writeJSONL(path string, rows []sweepRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	for _, row := range rows {
		if err := enc.Encode(row); err != nil {
			return err
		}
	}
	return w.Flush()
}

func renderHTML(path string, rows []sweepRow) error {
	xs := make([]string, len(rows))
	setup := make([]opts.LineData, len(rows))
	prove := make([]opts.LineData, len(rows))
	verify := make([]opts.LineData, len(rows))
	lower := make([]opts.LineData, len(rows))
	for i, row := range rows {
		xs[i] = strconv.Itoa(row.Constraints)
		setup[i] = opts.LineData{Value: row.SetupUS}
		prove[i] = opts.LineData{Value: row.ProveUS}
		verify[i] = opts.LineData{Value: row.VerifyUS}
		lower[i] = opts.LineData{Value: row.LowerUS}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Pinocchio phase timings",
			Subtitle: "microseconds per phase vs constraint count",
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "constraints"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "us", Type: "log"}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Bottom: "0"}),
	)
	line.SetXAxis(xs).
		AddSeries("lower", lower).
		AddSeries("setup", setup).
		AddSeries("prove", prove).
		AddSeries("verify", verify)

	page := components.NewPage()
	page.AddCharts(line)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return page.Render(f)
}
