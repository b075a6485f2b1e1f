// Package bench drives the SAT encoder over a batch of problems and
// records how each one went, so the CLI's "stats" report has something
// to aggregate besides a single ad-hoc run. It calls pkg/cwsat directly
// rather than shelling out to the solve-rect/solve-hex commands, since
// the encoder is purely sequential (§5) and there is nothing to gain
// from spawning a subprocess per case.
package bench

import (
	"time"

	"github.com/cwsat/crossword/pkg/cwsat"
)

// Case names one encode-and-solve run for the suite.
type Case struct {
	Name    string
	Problem cwsat.Problem
	Timeout time.Duration
}

// Result is one completed run, shaped for storage and aggregation.
type Result struct {
	Case       string
	Geometry   string
	Outcome    string
	DurationMS int64
	Vars       int
	Clauses    int
	Quality    int
	Err        string
}

// RunSuite runs every case in order and collects its outcome. A case
// whose Problem fails validation or whose model can't be interpreted is
// recorded with a non-empty Err rather than aborting the rest of the
// suite — one bad case shouldn't hide the rest of the batch's results.
func RunSuite(cases []Case) []Result {
	results := make([]Result, 0, len(cases))
	for _, c := range cases {
		results = append(results, runOne(c))
	}
	return results
}

func runOne(c Case) Result {
	start := time.Now()
	res, err := cwsat.Solve(c.Problem, cwsat.SolveOptions{Timeout: c.Timeout})
	elapsed := time.Since(start)

	geometryName := ""
	if c.Problem.Geometry != nil {
		geometryName = c.Problem.Geometry.Name()
	}

	if err != nil {
		return Result{
			Case:       c.Name,
			Geometry:   geometryName,
			Outcome:    "error",
			DurationMS: elapsed.Milliseconds(),
			Err:        err.Error(),
		}
	}

	quality := 0
	for _, p := range res.Placements {
		quality += len(p.Word)
	}

	return Result{
		Case:       c.Name,
		Geometry:   geometryName,
		Outcome:    res.Outcome.String(),
		DurationMS: elapsed.Milliseconds(),
		Vars:       res.Stats.Vars,
		Clauses:    res.Stats.Clauses,
		Quality:    quality,
	}
}
