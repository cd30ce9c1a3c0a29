package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPrimeCmd() *cobra.Command {
	var limbs int
	var rounds int
	var workers int
	var msbSet bool
	var verbose bool

	cmd := &cobra.Command{
		Use:   "prime",
		Short: "Generate a random prime via Miller-Rabin, searched in parallel",
		RunE: func(cmd *cobra.Command, args []string) error {
			if limbs <= 0 {
				return fmt.Errorf("--limbs must be positive")
			}
			if rounds <= 0 {
				return fmt.Errorf("--rounds must be positive")
			}

			fmt.Printf("Searching for a %d-bit prime (%d Miller-Rabin rounds, %d workers)\n",
				limbs*64, rounds, effectiveWorkers(workers))

			pool := NewPrimePool(workers)
			p := pool.FindPrime(limbs, rounds, msbSet, verbose)
			fmt.Println(p.String())
			return nil
		},
	}
	cmd.Flags().IntVar(&limbs, "limbs", 2, "Number of 64-bit limbs (2 = 128-bit)")
	cmd.Flags().IntVar(&rounds, "rounds", 20, "Miller-Rabin rounds")
	cmd.Flags().IntVar(&workers, "workers", 0, "Number of parallel search workers (0 = NumCPU)")
	cmd.Flags().BoolVar(&msbSet, "msb-set", false, "Force the most significant bit set (guarantees full bit width)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print search progress")
	return cmd
}

func effectiveWorkers(n int) int {
	pool := NewPrimePool(n)
	return pool.NumWorkers
}
