package merge

import (
	"fmt"

	"dario.cat/mergo"
	"github.com/mohae/deepcopy"
)

// Deep merges src into a copy of dst and returns the result; neither argument
// is mutated. The law: for a key present on both sides whose values are maps
// (or structs behind pointers), the values merge key-by-key recursively;
// scalar and slice values from src replace dst's; a key present on only one
// side is preserved. The generator builds paths, responses by status, and
// content by content type through repeated application of this function.
func Deep[M ~map[string]V, V any](dst, src M) M {
	out, _ := deepcopy.Copy(dst).(M)
	if out == nil {
		out = make(M, len(src))
	}
	if err := mergo.Merge(&out, src, mergo.WithOverride); err != nil {
		// mergo only fails on mismatched or unaddressable arguments, which
		// the identical map types here rule out.
		panic(fmt.Sprintf("merge: %v", err))
	}
	return out
}
