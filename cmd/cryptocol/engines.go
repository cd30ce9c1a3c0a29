package main

import (
	"github.com/oisee/cryptocol/pkg/prng"
	"github.com/oisee/cryptocol/pkg/randengine"
)

// prngEngine is the concrete type every predefined instantiation in
// pkg/prng returns.
type prngEngine = prng.RandomGeneric[randengine.Engine]

var engineConstructors = map[string]func() *prngEngine{
	"any":    prng.NewAny,
	"random": prng.NewRandom,
	"md4":    prng.NewAnyMD4,
	"md5":    prng.NewAnyMD5,
	"sha0":   prng.NewAnySHA0,
	"sha1":   prng.NewAnySHA1,
	"sha256": prng.NewAnySHA256,
	"sha512": prng.NewAnySHA512,
	"num":    prng.NewAnyNum,
}
