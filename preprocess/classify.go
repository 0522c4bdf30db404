package preprocess

import (
	"math"

	"github.com/shaowei-cai-group/Local-MIP/model"
)

// classifyStructure tags every non-objective row with zero or more
// MIPLIB-style structural types. Purely informational: the search engine
// never branches on StructuralTags, only on InferredSat.
func classifyStructure(store *model.Store) {
	for c := 1; c < store.NumCons(); c++ {
		con := &store.Cons[c]
		con.StructuralTags = classifyRow(store, con)
	}
}

func classifyRow(store *model.Store, con *model.Constraint) []model.StructuralType {
	n := len(con.Coeffs)
	if n == 0 {
		return []model.StructuralType{model.Empty}
	}
	if n == 1 {
		return []model.StructuralType{model.Singleton, model.VarBound}
	}

	allBinary := true
	allOne := true
	allInteger := true
	for i, v := range con.VarIdx {
		k := store.Vars[v].Kind
		if k != model.Binary {
			allBinary = false
		}
		if k == model.Real {
			allInteger = false
		}
		if math.Abs(con.Coeffs[i]-1) > 1e-9 {
			allOne = false
		}
	}

	var tags []model.StructuralType

	if allBinary && allOne {
		switch {
		case con.Sense == model.EQ && con.RHS == 1:
			tags = append(tags, model.SetPartitioning)
		case con.Sense == model.LE && con.RHS == 1:
			tags = append(tags, model.SetPacking)
		case con.Sense == model.LE && con.RHS >= 1:
			tags = append(tags, model.Cardinality)
		}
		if con.Sense == model.EQ {
			tags = append(tags, model.EquationKnapsack)
		} else {
			tags = append(tags, model.InvariantKnapsack)
		}
	} else if allBinary {
		if con.Sense == model.EQ {
			tags = append(tags, model.EquationKnapsack)
		} else {
			tags = append(tags, model.BinPackingKnapsack)
		}
	} else if allInteger {
		tags = append(tags, model.IntegerKnapsack)
	} else {
		tags = append(tags, model.MixedBinary)
	}

	if n == 2 {
		tags = append(tags, model.Precedence)
	}

	if con.Sense == model.EQ {
		tags = append(tags, model.GeneralEquation)
	} else {
		tags = append(tags, model.GeneralInequality)
	}

	return tags
}
