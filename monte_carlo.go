package main

import (
	"log/slog"
	"runtime"
	"sync"
	"time"
)

// Estimate is the outcome of one estimator call.
type Estimate struct {
	Pi       float64
	Trials   int // requested trial count, used as the denominator
	Executed int // trials actually drawn
	Hits     int
	Workers  int
}

func newEstimate(trials, executed, hits, workers int) Estimate {
	return Estimate{
		Pi:       4 * float64(hits) / float64(trials),
		Trials:   trials,
		Executed: executed,
		Hits:     hits,
		Workers:  workers,
	}
}

// clockSeed folds the nanosecond wall clock into a seed so that calls made in
// the same second still start from different states.
func clockSeed() uint32 {
	ns := time.Now().UnixNano()
	return uint32(ns) ^ uint32(ns>>32)
}

// workerSeed offsets the shared base by the worker index so no two workers of
// one call draw the same stream.
func workerSeed(base uint32, workerID int) uint32 {
	return base + uint32(workerID)
}

func monteCarloWorker(samples int, seed uint32) int {
	inside := 0

	for range samples {
		x := uniform(&seed)
		y := uniform(&seed)
		if x*x+y*y <= 1.0 {
			inside++
		}
	}

	return inside
}

func estimateSequential(trials int) (Estimate, error) {
	return sequentialWithSeed(trials, clockSeed())
}

func sequentialWithSeed(trials int, seed uint32) (Estimate, error) {
	if err := checkTrials(trials); err != nil {
		return Estimate{}, err
	}

	hits := monteCarloWorker(trials, seed)
	return newEstimate(trials, trials, hits, 1), nil
}

// hitCounter is the only state shared between workers.
type hitCounter struct {
	mu   sync.Mutex
	hits int
}

func (c *hitCounter) merge(hits int) {
	c.mu.Lock()
	c.hits += hits
	c.mu.Unlock()
}

// workUnit is one worker's private partition of the trials.
type workUnit struct {
	id     int
	trials int
	seed   uint32
}

// estimateParallel splits trials across workers goroutines. A non-positive
// workers uses every CPU.
func estimateParallel(trials, workers int) (Estimate, error) {
	return parallelWithSeed(trials, workers, clockSeed())
}

// parallelWithSeed gives every worker trials/workers samples. The remainder
// trials%workers is never drawn, but the estimate is still divided by trials,
// so an uneven split biases the result slightly low.
func parallelWithSeed(trials, workers int, base uint32) (Estimate, error) {
	if err := checkTrials(trials); err != nil {
		return Estimate{}, err
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	samplesPerWorker := trials / workers

	var (
		wg      sync.WaitGroup
		counter hitCounter
	)

	for i := range workers {
		unit := workUnit{
			id:     i,
			trials: samplesPerWorker,
			seed:   workerSeed(base, i),
		}

		wg.Add(1)
		go func(unit workUnit) {
			defer wg.Done()
			inside := monteCarloWorker(unit.trials, unit.seed)
			counter.merge(inside)
			slog.Debug("worker merged", "worker", unit.id, "trials", unit.trials, "hits", inside)
		}(unit)
	}

	wg.Wait()

	return newEstimate(trials, samplesPerWorker*workers, counter.hits, workers), nil
}
