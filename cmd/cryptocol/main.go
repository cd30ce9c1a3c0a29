package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cryptocol",
		Short: "BigUInt arithmetic, hash-driven PRNGs, and prime generation",
	}

	rootCmd.AddCommand(newRandCmd())
	rootCmd.AddCommand(newPrimeCmd())
	rootCmd.AddCommand(newHashEngineCmd())
	rootCmd.AddCommand(newBenchCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// engineByName returns the predefined prng instantiation named by the
// --engine flag.
func engineByName(name string) (*prngEngine, error) {
	ctor, ok := engineConstructors[name]
	if !ok {
		return nil, fmt.Errorf("unknown engine %q (want one of: any, random, md4, md5, sha0, sha1, sha256, sha512, num)", name)
	}
	return ctor(), nil
}
