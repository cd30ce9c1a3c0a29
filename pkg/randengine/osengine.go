package randengine

import "github.com/oisee/cryptocol/internal/entropy"

// OSEngine draws directly from the OS entropy source on every
// harvest. It ignores seed material and sugar entirely; unlike the
// other engines it is not required to be deterministic.
type OSEngine struct{}

// NewOSEngine returns an OSEngine. There is no seed state to
// initialize.
func NewOSEngine() *OSEngine { return &OSEngine{} }

func (e *OSEngine) SowArray(material []uint64) {}

func (e *OSEngine) Harvest(sugar uint64) [8]uint64 {
	var out [8]uint64
	for i := range out {
		out[i] = entropy.Read64()
	}
	return out
}
