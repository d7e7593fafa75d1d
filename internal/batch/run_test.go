package batch

import (
	"context"
	"errors"
	"testing"
)

func TestRunReportsPerJobFailuresWithoutAborting(t *testing.T) {
	jobs := []Job{
		{Input: "a.wav", Output: "a.f0"},
		{Input: "bad.wav", Output: "bad.f0"},
		{Input: "c.wav", Output: "c.f0"},
	}

	result := Run(context.Background(), jobs, func(_ context.Context, j Job) error {
		if j.Input == "bad.wav" {
			return errors.New("boom")
		}
		return nil
	})

	if result.Total != 3 {
		t.Errorf("Total = %d, want 3", result.Total)
	}
	if result.Succeeded != 2 {
		t.Errorf("Succeeded = %d, want 2", result.Succeeded)
	}
	if len(result.Failures) != 1 || result.Failures[0].Job.Input != "bad.wav" {
		t.Errorf("Failures = %+v, want one failure for bad.wav", result.Failures)
	}
}

func TestRunHandlesEmptyJobList(t *testing.T) {
	result := Run(context.Background(), nil, func(_ context.Context, j Job) error {
		t.Fatal("process should not be called")
		return nil
	})
	if result.Total != 0 || result.Succeeded != 0 || len(result.Failures) != 0 {
		t.Errorf("Result = %+v, want all-zero", result)
	}
}

func TestRunRespectsCancellation(t *testing.T) {
	jobs := []Job{{Input: "a.wav", Output: "a.f0"}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := Run(ctx, jobs, func(_ context.Context, j Job) error {
		return nil
	})
	if len(result.Failures) != 1 {
		t.Fatalf("Failures = %+v, want one failure from cancellation", result.Failures)
	}
}
