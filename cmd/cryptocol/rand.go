package main

import (
	"fmt"

	"github.com/oisee/cryptocol/pkg/prng"
	"github.com/spf13/cobra"
)

func newRandCmd() *cobra.Command {
	var engine string
	var width int
	var count int

	cmd := &cobra.Command{
		Use:   "rand",
		Short: "Draw pseudo-random values from a predefined PRNG instantiation",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := engineByName(engine)
			if err != nil {
				return err
			}

			for i := 0; i < count; i++ {
				switch width {
				case 8:
					fmt.Println(prng.RandomUint[uint8](r))
				case 16:
					fmt.Println(prng.RandomUint[uint16](r))
				case 32:
					fmt.Println(prng.RandomUint[uint32](r))
				case 64:
					fmt.Println(prng.RandomUint[uint64](r))
				case 128:
					v := prng.RandomBigUint128(r)
					fmt.Println(v.String())
				default:
					return fmt.Errorf("unsupported --width %d (want 8, 16, 32, 64, or 128)", width)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&engine, "engine", "any", "PRNG instantiation: any, random, md4, md5, sha0, sha1, sha256, sha512, num")
	cmd.Flags().IntVar(&width, "width", 64, "Output width in bits: 8, 16, 32, 64, or 128")
	cmd.Flags().IntVar(&count, "count", 1, "Number of values to draw")
	return cmd
}
