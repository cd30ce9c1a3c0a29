package main

import (
	"fmt"
	"time"

	"github.com/oisee/cryptocol/pkg/prng"
	"github.com/spf13/cobra"
)

func newBenchCmd() *cobra.Command {
	var limbs int
	var rounds int
	var iterations int

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark Miller-Rabin primality testing throughput",
		RunE: func(cmd *cobra.Command, args []string) error {
			if iterations <= 0 {
				return fmt.Errorf("--iterations must be positive")
			}

			r := prng.NewAnyNum()
			start := time.Now()
			primeCount := 0
			for i := 0; i < iterations; i++ {
				candidate := prng.RandomOddBigUint[uint64](r, limbs)
				if candidate.IsPrimeUsingMillerRabin(rounds) {
					primeCount++
				}
			}
			elapsed := time.Since(start)

			fmt.Printf("%d candidates, %d limbs, %d rounds\n", iterations, limbs, rounds)
			fmt.Printf("%d passed Miller-Rabin (%.4f%%)\n", primeCount, 100*float64(primeCount)/float64(iterations))
			fmt.Printf("%s elapsed, %.0f tests/s\n", elapsed.Round(time.Millisecond), float64(iterations)/elapsed.Seconds())
			return nil
		},
	}
	cmd.Flags().IntVar(&limbs, "limbs", 2, "Number of 64-bit limbs")
	cmd.Flags().IntVar(&rounds, "rounds", 20, "Miller-Rabin rounds")
	cmd.Flags().IntVar(&iterations, "iterations", 10000, "Number of candidates to test")
	return cmd
}
