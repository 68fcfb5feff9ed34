package align

import (
	"slices"
)

func (a *aligner) alignAnchored(seqs [][]item, rows []int, depth int) []column {
	anchors := make([][]int, a.n)
	sigs := make([][]string, a.n)
	var common []string
	for k, r := range rows {
		for i, it := range seqs[r] {
			if a.isAnchor(it) {
				anchors[r] = append(anchors[r], i)
				sigs[r] = append(sigs[r], a.signature(it))
			}
		}
		if k == 0 {
			common = sigs[r]
		} else {
			common = lcs(common, sigs[r])
		}
	}

	pos := make([][]int, a.n)
	for _, r := range rows {
		for _, p := range embed(common, sigs[r]) {
			pos[r] = append(pos[r], anchors[r][p])
		}
	}
	// a line that starts with the first anchor while another one does not
	// would be shifted right of its indentation; the anchor joins the gap.
	if depth == 0 && len(common) > 0 && mixedLead(pos, rows) {
		common = common[1:]
		for _, r := range rows {
			pos[r] = pos[r][1:]
		}
	}

	var cols []column
	from := make([]int, a.n)
	gaps := make([][]item, a.n)
	slot := make([]item, a.n)
	for j := 0; ; j++ {
		for _, r := range rows {
			end := len(seqs[r])
			if j < len(common) {
				end = pos[r][j]
			}
			gaps[r] = seqs[r][from[r]:end]
		}
		cols = append(cols, a.alignGap(gaps, rows, depth)...)
		if j == len(common) {
			return cols
		}
		for _, r := range rows {
			slot[r] = seqs[r][pos[r][j]]
			from[r] = pos[r][j] + 1
		}
		cols = append(cols, a.alignSlot(slot, rows, depth)...)
	}
}

func mixedLead(pos [][]int, rows []int) bool {
	first := pos[rows[0]][0] == 0
	for _, r := range rows[1:] {
		if (pos[r][0] == 0) != first {
			return true
		}
	}
	return false
}

// alignGap aligns the runs between two anchors. Runs of the same shape align
// item by item; otherwise each line keeps its run as one unpadded cell.
func (a *aligner) alignGap(gaps [][]item, rows []int, depth int) []column {
	var (
		present []int
		shape   []string
		uniform = true
	)
	for _, r := range rows {
		if len(gaps[r]) == 0 {
			continue
		}
		s := a.signatures(gaps[r])
		if len(present) == 0 {
			shape = s
		} else if !slices.Equal(shape, s) {
			uniform = false
		}
		present = append(present, r)
	}
	if len(present) == 0 {
		return nil
	}
	if !uniform {
		a.degraded++
		merged := a.newColumn()
		for _, r := range present {
			merged[r] = &cell{text: renderItems(gaps[r]), gap: gaps[r][0].tok.Spaced}
		}
		return []column{merged}
	}

	var cols []column
	slot := make([]item, a.n)
	for p := range shape {
		for _, r := range present {
			slot[r] = gaps[r][p]
		}
		cols = append(cols, a.alignSlot(slot, present, depth)...)
	}
	return cols
}

// alignSlot aligns one item per line; the items share a signature, so either
// all of them are groups or none is.
func (a *aligner) alignSlot(slot []item, rows []int, depth int) []column {
	head := a.newColumn()
	for _, r := range rows {
		head[r] = tokenCell(slot[r].tok)
	}
	if !slot[rows[0]].isGroup() {
		return []column{head}
	}
	inner := make([][]item, a.n)
	tail := a.newColumn()
	for _, r := range rows {
		inner[r] = slot[r].children
		tail[r] = tokenCell(*slot[r].close)
	}
	cols := []column{head}
	cols = append(cols, a.align(inner, rows, depth+1)...)
	return append(cols, tail)
}

func (a *aligner) signatures(items []item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = a.signature(it)
	}
	return out
}
