package align

// lcs returns a longest common subsequence of a and b. Ties prefer
// skipping elements of a, which keeps earlier rows' anchors stable.
func lcs(a, b []string) []string {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return nil
	}
	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if a[i] == b[j] {
				dp[i][j] = dp[i+1][j+1] + 1
			} else {
				dp[i][j] = max(dp[i+1][j], dp[i][j+1])
			}
		}
	}
	out := make([]string, 0, dp[0][0])
	for i, j := 0, 0; i < n && j < m; {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case dp[i+1][j] >= dp[i][j+1]:
			i++
		default:
			j++
		}
	}
	return out
}

// embed returns the leftmost positions of common inside sigs.
// common must be a subsequence of sigs.
func embed(common, sigs []string) []int {
	pos := make([]int, 0, len(common))
	j := 0
	for i, s := range sigs {
		if j < len(common) && s == common[j] {
			pos = append(pos, i)
			j++
		}
	}
	return pos
}
