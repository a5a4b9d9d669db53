package rootfind

import "fmt"

// Verbose status lines, written to Settings.Output when Settings.Verbose is
// set. Purely observational: they never affect control flow or the returned
// outcome.

func (s *session) reportExactRoot(root float64, iterations int) {
	if !s.cfg.Verbose {
		return
	}
	fmt.Fprintf(s.cfg.Output, "Exact root found.\nRoot: %.6e\nIterations: %d\n",
		root, iterations)
}

func (s *session) reportConverged(root float64, iterations int, relErr float64) {
	if !s.cfg.Verbose {
		return
	}
	fmt.Fprintf(s.cfg.Output, "Approximate root found.\nRoot: %.6e\nIterations: %d\nApproximate error: %.3e\n",
		root, iterations, relErr)
}

func (s *session) reportExhausted() {
	if !s.cfg.Verbose {
		return
	}
	fmt.Fprintf(s.cfg.Output, "No root found in %d iterations within an approximate error tolerance of %.3e.\n",
		s.cfg.MaxIterations, s.cfg.MaxError)
}
