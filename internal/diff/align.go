package diff

// alignKind classifies one step of a sequence alignment.
type alignKind int

const (
	alignMatch  alignKind = iota // token present in both sequences
	alignDelete                  // token present only in the old sequence
	alignInsert                  // token present only in the new sequence
)

// alignOp is a single step of an LCS alignment, carrying the token it
// covers.
type alignOp struct {
	kind  alignKind
	token string
}

// align computes an LCS-consistent alignment of a (old) against b (new)
// with the classic O(n·m) dynamic program. dp[i][j] holds the LCS length of
// a[i:] and b[j:]; the forward walk then replays the table to emit ops in
// original order.
//
// Ties between equally long alignments are broken toward dp[i+1][j], which
// emits deletions before insertions at every divergence point. That keeps
// the output deterministic and reads old-before-new the way conventional
// diff tools print changed regions.
func align(a, b []string) []alignOp {
	n, m := len(a), len(b)
	if n == 0 && m == 0 {
		return nil
	}

	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			switch {
			case a[i] == b[j]:
				dp[i][j] = dp[i+1][j+1] + 1
			case dp[i+1][j] >= dp[i][j+1]:
				dp[i][j] = dp[i+1][j]
			default:
				dp[i][j] = dp[i][j+1]
			}
		}
	}

	ops := make([]alignOp, 0, n+m)
	i, j := 0, 0
	for i < n && j < m {
		switch {
		case a[i] == b[j]:
			ops = append(ops, alignOp{kind: alignMatch, token: a[i]})
			i++
			j++
		case dp[i+1][j] >= dp[i][j+1]:
			ops = append(ops, alignOp{kind: alignDelete, token: a[i]})
			i++
		default:
			ops = append(ops, alignOp{kind: alignInsert, token: b[j]})
			j++
		}
	}
	for ; i < n; i++ {
		ops = append(ops, alignOp{kind: alignDelete, token: a[i]})
	}
	for ; j < m; j++ {
		ops = append(ops, alignOp{kind: alignInsert, token: b[j]})
	}
	return ops
}
