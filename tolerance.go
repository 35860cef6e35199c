package geom

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
)

// Tolerance holds the numerical thresholds of the intersection and boolean engine. Zero fields, except for Polish, take the value of DefaultTolerance.
type Tolerance struct {
	// Flatness is the maximum distance of a curve piece from its chord for it to be treated as a line segment.
	Flatness float64 `toml:"flatness"`

	// CrossingEpsilon is the parameter distance below which two hits are considered the same crossing.
	CrossingEpsilon float64 `toml:"crossing_epsilon"`

	// MaxDepth caps the recursion of the pairwise intersector. Each level bisects one of the two curves.
	MaxDepth int `toml:"max_depth"`

	// Polish is the number of Newton iterations used to refine each hit, zero disables refinement.
	Polish int `toml:"polish"`
}

// DefaultTolerance is used by DefaultEngine and fills in zero fields of other tolerances.
var DefaultTolerance = Tolerance{
	Flatness:        1e-6,
	CrossingEpsilon: 1e-7,
	MaxDepth:        24,
	Polish:          4,
}

func (tol Tolerance) withDefaults() Tolerance {
	if tol == (Tolerance{}) {
		return DefaultTolerance
	}
	if tol.Flatness <= 0.0 {
		tol.Flatness = DefaultTolerance.Flatness
	}
	if tol.CrossingEpsilon <= 0.0 {
		tol.CrossingEpsilon = DefaultTolerance.CrossingEpsilon
	}
	if tol.MaxDepth <= 0 {
		tol.MaxDepth = DefaultTolerance.MaxDepth
	}
	if tol.Polish < 0 {
		tol.Polish = 0
	}
	return tol
}

// LoadTolerance decodes a TOML document with the keys flatness, crossing_epsilon, max_depth and polish on top of DefaultTolerance. Unknown keys are an error.
func LoadTolerance(r io.Reader) (Tolerance, error) {
	tol := DefaultTolerance
	md, err := toml.NewDecoder(r).Decode(&tol)
	if err != nil {
		return Tolerance{}, fmt.Errorf("tolerance: %w", err)
	}
	return checkUndecoded(md, tol.withDefaults())
}

// LoadToleranceFile is like LoadTolerance but reads from the file at filename.
func LoadToleranceFile(filename string) (Tolerance, error) {
	tol := DefaultTolerance
	md, err := toml.DecodeFile(filename, &tol)
	if err != nil {
		return Tolerance{}, fmt.Errorf("tolerance %s: %w", filename, err)
	}
	return checkUndecoded(md, tol.withDefaults())
}

func checkUndecoded(md toml.MetaData, tol Tolerance) (Tolerance, error) {
	if undecoded := md.Undecoded(); 0 < len(undecoded) {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return Tolerance{}, fmt.Errorf("tolerance: unknown keys %s", strings.Join(keys, ", "))
	}
	return tol, nil
}

// WriteTolerance encodes tol as a TOML document.
func WriteTolerance(w io.Writer, tol Tolerance) error {
	if err := toml.NewEncoder(w).Encode(tol); err != nil {
		return fmt.Errorf("tolerance: %w", err)
	}
	return nil
}
