package team

import "pokebattle-core/pkg/dex"

// PickMoves implements spec.md section 4.3 step 4: from the learn table,
// take entries with required level <= target level in reverse order
// (latest-learned first), up to four. The learn table is assumed sorted by
// level ascending, as dex guarantees for the embedded fixture data.
func PickMoves(learnTable []dex.LearnEntry, level int) [4]string {
	var moves [4]string
	count := 0
	for i := len(learnTable) - 1; i >= 0 && count < 4; i-- {
		entry := learnTable[i]
		if entry.Level <= level {
			moves[count] = entry.Move
			count++
		}
	}
	return moves
}
