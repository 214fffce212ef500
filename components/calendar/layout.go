package calendar

// BlockFor positions an item inside the timed lane. All-day items pin to the
// full lane height; the caller renders those in a separate all-day lane.
func BlockFor(item Item, grid GridConfig) Block {
	block := Block{
		Item:    item,
		DayKey:  DayKey(item.Start),
		Columns: 1,
	}
	if item.AllDay {
		block.Top = 0
		block.Height = grid.TotalPixels()
		return block
	}

	startMin := float64((item.Start.Hour()-grid.StartHour)*60 + item.Start.Minute())
	endMin := float64((item.End.Hour()-grid.StartHour)*60 + item.End.Minute())

	block.Top = startMin / 60 * grid.HourPixels
	block.Height = (endMin - startMin) / 60 * grid.HourPixels
	if block.Height < grid.MinBlockPixels {
		block.Height = grid.MinBlockPixels
	}
	if block.Top+block.Height > grid.TotalPixels() {
		block.Height = grid.TotalPixels() - block.Top
	}
	return block
}

// AssignColumns packs overlapping timed blocks of a single day into columns.
// A block's column is the count of overlapping blocks appearing earlier in the
// slice; its width divisor is one plus the count of all blocks overlapping it.
// The packing is deterministic and stable but not optimal: ties follow fetch
// order, not start time.
func AssignColumns(blocks []Block) []Block {
	out := make([]Block, len(blocks))
	copy(out, blocks)
	for i := range out {
		if out[i].AllDay {
			out[i].Column = 0
			out[i].Columns = 1
			continue
		}
		column := 0
		overlapping := 0
		for j := range out {
			if j == i || out[j].AllDay {
				continue
			}
			if !blocksOverlap(out[i], out[j]) {
				continue
			}
			overlapping++
			if j < i {
				column++
			}
		}
		out[i].Column = column
		out[i].Columns = 1 + overlapping
	}
	return out
}

// blocksOverlap tests [top, top+height) interval intersection, applying the
// inclusive-start/exclusive-end check in both directions so containment is
// covered.
func blocksOverlap(a, b Block) bool {
	aEnd := a.Top + a.Height
	bEnd := b.Top + b.Height
	if a.Top <= b.Top && b.Top < aEnd {
		return true
	}
	if b.Top <= a.Top && a.Top < bEnd {
		return true
	}
	return false
}

// LayoutDay positions and packs one day's items.
func LayoutDay(items []Item, grid GridConfig) (timed, allDay []Block) {
	for _, item := range items {
		block := BlockFor(item, grid)
		if item.AllDay {
			allDay = append(allDay, block)
			continue
		}
		timed = append(timed, block)
	}
	return AssignColumns(timed), allDay
}
