// Package batch runs a pitch-tracking job over a list of input/output
// file pairs, in parallel, collecting per-job failures without
// aborting the rest of the list.
package batch

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Job names one input file and the output file its pitch track
// should be written to.
type Job struct {
	Input  string
	Output string
}

// LoadList reads a batch file: one "input output" pair per line,
// whitespace-separated, with blank lines and "#"-prefixed comments
// skipped.
func LoadList(path string) ([]Job, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("batch: open list %q: %w", path, err)
	}
	defer f.Close()

	var jobs []Job
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("batch: %q line %d: expected \"input output\", got %q", path, lineNo, line)
		}
		jobs = append(jobs, Job{Input: fields[0], Output: fields[1]})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("batch: read list %q: %w", path, err)
	}

	return jobs, nil
}
