package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
	vegeta "github.com/tsenart/vegeta/v12/lib"
)

const (
	defaultBaseURL = "http://localhost:8080"
	defaultRPS     = 5
	defaultLength  = 2 * time.Minute

	targetP95     = 300 * time.Millisecond
	targetSuccess = 0.999
)

var errSLIBreached = errors.New("SLI not met")

// scenarios наборы GET запросов к дашборду. Сервис только читает, поэтому
// сценарии не готовят данные заранее
var scenarios = map[string][]string{
	"health":    {"/health"},
	"dashboard": {"/stats", "/teams", "/charts", "/objectives", "/objectives?status=on-track&sort_by=progress"},
	"timeline":  {"/timeline", "/timeline?weeks=6"},
	"reports":   {"/reports", "/reports/quarterly", "/reports/gantt"},
}

type attackOptions struct {
	baseURL  string
	rps      int
	duration time.Duration
}

func main() {
	opts := &attackOptions{}

	cmd := &cobra.Command{
		Use:          "loadtest <scenario>",
		Short:        "Run a constant-rate load test against the OKR dashboard API",
		Long:         "Scenarios: " + strings.Join(scenarioNames(), ", ") + ", all",
		Args:         cobra.ExactArgs(1),
		ValidArgs:    append(scenarioNames(), "all"),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			targets, err := buildTargets(opts.baseURL, args[0])
			if err != nil {
				return err
			}
			metrics := runAttack(vegeta.NewStaticTargeter(targets...), opts, args[0])
			printMetrics(cmd.OutOrStdout(), &metrics)
			// нарушение SLI даёт ненулевой код выхода
			return checkSLI(&metrics)
		},
	}
	cmd.Flags().StringVar(&opts.baseURL, "url", defaultBaseURL, "base URL of the service")
	cmd.Flags().IntVar(&opts.rps, "rps", defaultRPS, "requests per second")
	cmd.Flags().DurationVar(&opts.duration, "duration", defaultLength, "attack duration")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func scenarioNames() []string {
	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func buildTargets(baseURL, scenario string) ([]vegeta.Target, error) {
	var paths []string
	if scenario == "all" {
		for _, name := range scenarioNames() {
			paths = append(paths, scenarios[name]...)
		}
	} else {
		var ok bool
		if paths, ok = scenarios[scenario]; !ok {
			return nil, fmt.Errorf("unknown scenario: %s", scenario)
		}
	}

	baseURL = strings.TrimRight(baseURL, "/")
	targets := make([]vegeta.Target, 0, len(paths))
	for _, p := range paths {
		targets = append(targets, vegeta.Target{
			Method: http.MethodGet,
			URL:    baseURL + p,
		})
	}
	return targets, nil
}

func runAttack(targeter vegeta.Targeter, opts *attackOptions, name string) vegeta.Metrics {
	rate := vegeta.Rate{Freq: opts.rps, Per: time.Second}
	attacker := vegeta.NewAttacker()

	var metrics vegeta.Metrics
	for res := range attacker.Attack(targeter, rate, opts.duration, name) {
		metrics.Add(res)
	}
	metrics.Close()
	return metrics
}

func printMetrics(w io.Writer, metrics *vegeta.Metrics) {
	fmt.Fprintf(w, "\n=== Load Test Results ===\n\n")
	fmt.Fprintf(w, "Requests Total:     %d\n", metrics.Requests)
	fmt.Fprintf(w, "Success Rate:       %.2f%%\n", metrics.Success*100)
	fmt.Fprintf(w, "Duration:           %v\n", metrics.Duration)

	if metrics.Requests == 0 {
		return
	}

	fmt.Fprintf(w, "\nLatency:\n")
	fmt.Fprintf(w, "  Mean:             %v\n", metrics.Latencies.Mean)
	fmt.Fprintf(w, "  P50:              %v\n", metrics.Latencies.P50)
	fmt.Fprintf(w, "  P95:              %v\n", metrics.Latencies.P95)
	fmt.Fprintf(w, "  P99:              %v\n", metrics.Latencies.P99)
	fmt.Fprintf(w, "  Max:              %v\n", metrics.Latencies.Max)
	fmt.Fprintf(w, "\nThroughput:         %.2f req/s\n", metrics.Rate)

	fmt.Fprintf(w, "\nStatus Codes:\n")
	codes := make([]string, 0, len(metrics.StatusCodes))
	for code := range metrics.StatusCodes {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		fmt.Fprintf(w, "  %s: %d\n", code, metrics.StatusCodes[code])
	}

	fmt.Fprintf(w, "\nErrors:\n")
	if len(metrics.Errors) == 0 {
		fmt.Fprintf(w, "  None\n")
	}
	for _, err := range metrics.Errors {
		fmt.Fprintf(w, "  %s\n", err)
	}

	p95, success := sliCompliance(metrics)
	fmt.Fprintf(w, "\nSLI Compliance:\n")
	fmt.Fprintf(w, "  P95 Latency:      %v (target: <= %v) - %s\n", metrics.Latencies.P95, targetP95, passFail(p95))
	fmt.Fprintf(w, "  Success Rate:     %.2f%% (target: >= %.1f%%) - %s\n", metrics.Success*100, targetSuccess*100, passFail(success))
	fmt.Fprintln(w)
}

func sliCompliance(metrics *vegeta.Metrics) (latencyOK, successOK bool) {
	return metrics.Latencies.P95 <= targetP95, metrics.Success >= targetSuccess
}

func checkSLI(metrics *vegeta.Metrics) error {
	latencyOK, successOK := sliCompliance(metrics)
	switch {
	case !latencyOK && !successOK:
		return fmt.Errorf("%w: p95 %v > %v, success %.2f%% < %.1f%%", errSLIBreached,
			metrics.Latencies.P95, targetP95, metrics.Success*100, targetSuccess*100)
	case !latencyOK:
		return fmt.Errorf("%w: p95 %v > %v", errSLIBreached, metrics.Latencies.P95, targetP95)
	case !successOK:
		return fmt.Errorf("%w: success %.2f%% < %.1f%%", errSLIBreached, metrics.Success*100, targetSuccess*100)
	}
	return nil
}

func passFail(ok bool) string {
	if ok {
		return "PASS"
	}
	return "FAIL"
}
