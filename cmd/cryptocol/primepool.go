package main

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/oisee/cryptocol/pkg/biguint"
	"github.com/oisee/cryptocol/pkg/prng"
)

// PrimePool races NumWorkers independent prime searches and takes the
// first hit, adapted from pkg/search.WorkerPool's worker-pool shape:
// sync.WaitGroup, atomic counters, and a progress ticker goroutine.
// Each worker owns its own prng.RandomGeneric instance — PRNG state is
// never shared across goroutines.
type PrimePool struct {
	NumWorkers int
	checked    atomic.Int64
}

// NewPrimePool creates a pool with the given worker count. numWorkers
// <= 0 defaults to runtime.NumCPU(), the same correction
// pkg/search.NewWorkerPool applies rather than rejecting the argument.
func NewPrimePool(numWorkers int) *PrimePool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &PrimePool{NumWorkers: numWorkers}
}

// FindPrime searches for a limbs-limb prime, optionally with the MSB
// forced set (guaranteeing full bit width), cancelling the losing
// workers once one candidate passes rounds Miller-Rabin witnesses.
func (pp *PrimePool) FindPrime(limbs, rounds int, msbSet, verbose bool) biguint.BigUInt[uint64] {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	resultCh := make(chan biguint.BigUInt[uint64], 1)
	var wg sync.WaitGroup
	startTime := time.Now()

	done := make(chan struct{})
	if verbose {
		go pp.reportProgress(startTime, done)
	}

	for i := 0; i < pp.NumWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r := prng.NewAnyNum()
			for {
				select {
				case <-ctx.Done():
					return
				default:
				}

				var candidate biguint.BigUInt[uint64]
				if msbSet {
					candidate = prng.RandomOddBigUintWithMSBSet[uint64](r, limbs)
				} else {
					candidate = prng.RandomOddBigUint[uint64](r, limbs)
				}
				pp.checked.Add(1)

				if candidate.IsPrimeUsingMillerRabin(rounds) {
					select {
					case resultCh <- candidate:
						cancel()
					default:
					}
					return
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	prime := <-resultCh
	if verbose {
		close(done)
		elapsed := time.Since(startTime)
		fmt.Printf("  [%s] %d candidates checked across %d workers | DONE\n",
			elapsed.Round(time.Millisecond), pp.checked.Load(), pp.NumWorkers)
	}
	return prime
}

func (pp *PrimePool) reportProgress(startTime time.Time, done chan struct{}) {
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			elapsed := time.Since(startTime)
			checked := pp.checked.Load()
			rate := float64(checked) / elapsed.Seconds()
			fmt.Printf("  [%s] %d candidates checked | %.0f checks/s\n",
				elapsed.Round(time.Second), checked, rate)
		}
	}
}
