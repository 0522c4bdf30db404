package neighbor

import "github.com/shaowei-cai-group/Local-MIP/model"

// Indices caches the static variable index lists the generators sample
// from. Built once after preprocess.Process freezes the store, since its
// shape never changes afterward.
type Indices struct {
	// Binary holds every non-fixed Binary variable, for flip.
	Binary []model.VarID
	// NonFixed holds every variable whose Kind is not Fixed, for easy.
	NonFixed []model.VarID
}

// BuildIndices scans store once and returns the cached lists.
func BuildIndices(store *model.Store) *Indices {
	idx := &Indices{}
	for i := range store.Vars {
		v := model.VarID(i)
		k := store.Vars[i].Kind
		if k == model.Fixed {
			continue
		}
		idx.NonFixed = append(idx.NonFixed, v)
		if k == model.Binary {
			idx.Binary = append(idx.Binary, v)
		}
	}
	return idx
}
