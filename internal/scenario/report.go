package scenario

import "github.com/vovakirdan/collide/internal/geom"

// Result is the outcome of a single query.
type Result struct {
	Query    string
	Collides bool
	Expected bool
	Pass     bool
	Err      error // set for shape pairs without a collision test
}

// Report collects the results of a scenario run.
type Report struct {
	Scenario string
	Results  []Result
	Passed   int
	Failed   int
}

// OK reports whether every query passed.
func (r Report) OK() bool {
	return r.Failed == 0
}

// Evaluate runs every query of s. Queries with an unsupported shape pair
// fail with Err set; evaluation continues with the next query.
func Evaluate(s Scenario) Report {
	report := Report{Scenario: s.Name, Results: make([]Result, 0, len(s.Queries))}
	for _, q := range s.Queries {
		res := Result{Query: q.Name, Expected: q.Expect}
		res.Collides, res.Err = geom.Collide(q.A, q.B)
		res.Pass = res.Err == nil && res.Collides == res.Expected

		if res.Pass {
			report.Passed++
		} else {
			report.Failed++
		}
		report.Results = append(report.Results, res)
	}
	return report
}
