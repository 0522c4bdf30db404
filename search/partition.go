package search

import "github.com/shaowei-cai-group/Local-MIP/model"

// rebuildPartition clears and recomputes the sat/unsat lists for every
// non-objective constraint from the current Activity values. Called by
// Refresh (full recompute), including the first Refresh that New's caller
// makes.
func (st *State) rebuildPartition() {
	st.unsatList = st.unsatList[:0]
	st.satList = st.satList[:0]

	for c := 1; c < len(st.Activity); c++ {
		con := model.ConID(c)
		if st.Sat(con) {
			st.addToSat(con)
		} else {
			st.addToUnsat(con)
		}
	}
	if len(st.unsatList) < st.MinUnsatCon {
		st.MinUnsatCon = len(st.unsatList)
	}
}

func (st *State) addToUnsat(c model.ConID) {
	st.membership[c] = true
	st.posInList[c] = len(st.unsatList)
	st.unsatList = append(st.unsatList, c)
}

func (st *State) addToSat(c model.ConID) {
	st.membership[c] = false
	st.posInList[c] = len(st.satList)
	st.satList = append(st.satList, c)
}

// removeFromUnsat does an O(1) swap-and-pop removal of c from unsatList.
func (st *State) removeFromUnsat(c model.ConID) {
	pos := st.posInList[c]
	last := len(st.unsatList) - 1
	moved := st.unsatList[last]
	st.unsatList[pos] = moved
	st.posInList[moved] = pos
	st.unsatList = st.unsatList[:last]
}

// removeFromSat does an O(1) swap-and-pop removal of c from satList.
func (st *State) removeFromSat(c model.ConID) {
	pos := st.posInList[c]
	last := len(st.satList) - 1
	moved := st.satList[last]
	st.satList[pos] = moved
	st.posInList[moved] = pos
	st.satList = st.satList[:last]
}

// moveToUnsat transitions c from the sat list to the unsat list.
func (st *State) moveToUnsat(c model.ConID) {
	st.removeFromSat(c)
	st.addToUnsat(c)
}

// moveToSat transitions c from the unsat list to the sat list.
func (st *State) moveToSat(c model.ConID) {
	st.removeFromUnsat(c)
	st.addToSat(c)
	if len(st.unsatList) < st.MinUnsatCon {
		st.MinUnsatCon = len(st.unsatList)
	}
}
