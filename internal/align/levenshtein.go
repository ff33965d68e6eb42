package align

// Distance computes the Levenshtein edit distance between a and b: the
// minimum number of single-rune insertions, deletions, and substitutions
// needed to turn one into the other. Distance("", x) == len([]rune(x)),
// and Distance is symmetric.
func Distance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	// b is the row dimension, a the column dimension.
	rows := len(rb) + 1
	cols := len(ra) + 1

	prev := make([]int, cols)
	cur := make([]int, cols)
	for j := 0; j < cols; j++ {
		prev[j] = j
	}

	for i := 1; i < rows; i++ {
		cur[0] = i
		for j := 1; j < cols; j++ {
			if rb[i-1] == ra[j-1] {
				cur[j] = prev[j-1]
			} else {
				cur[j] = 1 + min(prev[j-1], min(cur[j-1], prev[j]))
			}
		}
		prev, cur = cur, prev
	}

	return prev[cols-1]
}
