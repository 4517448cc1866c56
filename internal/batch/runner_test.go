package batch

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go.uber.org/goleak"

	"enercheck/app"
	"enercheck/domain/energy"
	"enercheck/domain/simulation"
	"enercheck/domain/workflow"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func batchContexts(n int) []workflow.Context {
	contexts := make([]workflow.Context, n)
	for i := range contexts {
		contexts[i] = workflow.Context{
			Domain: energy.DomainSolar,
			Simulations: []simulation.Result{{
				Name: fmt.Sprintf("run-%d", i),
				Outputs: []simulation.Output{
					// Alternate between a plausible and an impossible value
					// so batches carry both verdicts.
					{Name: "efficiency", Value: 0.18 + float64(i%2)*0.40},
				},
			}},
		}
	}
	return contexts
}

func TestValidateAllPreservesOrder(t *testing.T) {
	service := app.NewValidationService(nil)
	runner := NewRunner(service, 3, nil)

	contexts := batchContexts(20)
	reports, err := runner.ValidateAll(context.Background(), contexts)
	if err != nil {
		t.Fatalf("ValidateAll: %v", err)
	}
	if len(reports) != 20 {
		t.Fatalf("got %d reports, want 20", len(reports))
	}

	for i, report := range reports {
		if report == nil {
			t.Fatalf("report %d missing", i)
		}
		// Even indices used 0.18 (valid), odd used 0.58 (above the solar
		// ceiling, fatal). Order must match input regardless of scheduling.
		wantValid := i%2 == 0
		if report.Result.IsValid != wantValid {
			t.Errorf("report %d: IsValid = %v, want %v", i, report.Result.IsValid, wantValid)
		}
	}
}

func TestValidateAllRespectsCancellation(t *testing.T) {
	service := app.NewValidationService(nil)
	runner := NewRunner(service, 2, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.ValidateAll(ctx, batchContexts(8))
	if err == nil {
		t.Fatal("a cancelled context must stop the batch with an error")
	}
	if err != context.Canceled {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestValidateAllEmptyBatch(t *testing.T) {
	service := app.NewValidationService(nil)
	runner := NewRunner(service, 2, nil)

	reports, err := runner.ValidateAll(context.Background(), nil)
	if err != nil {
		t.Fatalf("empty batch should succeed: %v", err)
	}
	if len(reports) != 0 {
		t.Errorf("expected no reports, got %d", len(reports))
	}
}

func TestRunnerDoesNotLeakUnderLoad(t *testing.T) {
	service := app.NewValidationService(nil)
	runner := NewRunner(service, 4, nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = runner.ValidateAll(context.Background(), batchContexts(50))
	}()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("batch did not finish in time")
	}
	// goleak.VerifyTestMain confirms no goroutines survive the package run.
}
