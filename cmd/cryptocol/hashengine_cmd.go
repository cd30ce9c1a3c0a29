package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/oisee/cryptocol/pkg/hashengine"
	"github.com/oisee/cryptocol/pkg/randengine"
	"github.com/spf13/cobra"
)

var hashEngineConstructors = map[string]func() hashengine.Hasher{
	"md4":    func() hashengine.Hasher { return hashengine.NewMD4() },
	"md5":    func() hashengine.Hasher { return hashengine.NewMD5() },
	"sha0":   func() hashengine.Hasher { return hashengine.NewSHA0() },
	"sha1":   func() hashengine.Hasher { return hashengine.NewSHA1() },
	"sha256": func() hashengine.Hasher { return hashengine.NewSHA256() },
	"sha512": func() hashengine.Hasher { return hashengine.NewSHA512() },
}

func newHashEngineCmd() *cobra.Command {
	var algo string
	var seedStr string
	var sugar uint64

	cmd := &cobra.Command{
		Use:   "hash-engine",
		Short: "Sow seed material into a hash engine and harvest 8 lanes",
		RunE: func(cmd *cobra.Command, args []string) error {
			newHasher, ok := hashEngineConstructors[algo]
			if !ok {
				return fmt.Errorf("unknown --algo %q (want md4, md5, sha0, sha1, sha256, or sha512)", algo)
			}

			material, err := parseSeedMaterial(seedStr)
			if err != nil {
				return err
			}

			engine := randengine.NewHashEngine(newHasher())
			engine.SowArray(material)
			lanes := engine.Harvest(sugar)

			for i, lane := range lanes {
				fmt.Printf("lane[%d] = %016x\n", i, lane)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&algo, "algo", "sha256", "Hash algorithm: md4, md5, sha0, sha1, sha256, sha512")
	cmd.Flags().StringVar(&seedStr, "seed", "1,2,3,4", "Comma-separated uint64 seed material")
	cmd.Flags().Uint64Var(&sugar, "sugar", 1, "Sugar value mixed in before harvesting")
	return cmd
}

func parseSeedMaterial(s string) ([]uint64, error) {
	parts := strings.Split(s, ",")
	material := make([]uint64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid seed value %q: %w", p, err)
		}
		material = append(material, v)
	}
	return material, nil
}
