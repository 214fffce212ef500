package calendar

import (
	"math"
	"testing"
	"time"
)

func timedItem(id string, start, end time.Time) Item {
	return Item{ID: id, Kind: KindAppointment, Start: start, End: end}
}

func TestBlockForGeometry(t *testing.T) {
	grid := DefaultGrid()
	item := timedItem("a",
		date(2026, time.March, 10, 9, 30),
		date(2026, time.March, 10, 10, 15))

	block := BlockFor(item, grid)

	if block.Top != 380 {
		t.Errorf("top = %v, want 380", block.Top)
	}
	if block.Height != 30 {
		t.Errorf("height = %v, want 30", block.Height)
	}
	if block.DayKey != "2026-03-10" {
		t.Errorf("day key = %q, want 2026-03-10", block.DayKey)
	}
}

func TestBlockForMinHeight(t *testing.T) {
	grid := DefaultGrid()
	start := date(2026, time.March, 10, 9, 0)
	block := BlockFor(timedItem("a", start, start.Add(5*time.Minute)), grid)

	if block.Height != grid.MinBlockPixels {
		t.Errorf("height = %v, want floor %v", block.Height, grid.MinBlockPixels)
	}
}

func TestBlockForClampsToGrid(t *testing.T) {
	grid := GridConfig{StartHour: 8, Hours: 10, HourPixels: 40, MinBlockPixels: 12}
	block := BlockFor(timedItem("a",
		date(2026, time.March, 10, 17, 0),
		date(2026, time.March, 10, 21, 0)), grid)

	if got := block.Top + block.Height; got > grid.TotalPixels() {
		t.Errorf("block extends to %v past grid total %v", got, grid.TotalPixels())
	}
}

func TestBlockForAllDay(t *testing.T) {
	grid := DefaultGrid()
	block := BlockFor(Item{ID: "a", AllDay: true, Start: date(2026, time.March, 10, 0, 0)}, grid)

	if block.Top != 0 || block.Height != grid.TotalPixels() {
		t.Errorf("all-day block = (%v, %v), want (0, %v)", block.Top, block.Height, grid.TotalPixels())
	}
}

func TestAssignColumnsThreeMutualOverlaps(t *testing.T) {
	grid := DefaultGrid()
	day := date(2026, time.March, 10, 0, 0)
	items := []Item{
		timedItem("a", day.Add(9*time.Hour), day.Add(10*time.Hour)),
		timedItem("b", day.Add(9*time.Hour+15*time.Minute), day.Add(10*time.Hour+15*time.Minute)),
		timedItem("c", day.Add(9*time.Hour+30*time.Minute), day.Add(10*time.Hour+30*time.Minute)),
	}

	timed, _ := LayoutDay(items, grid)
	if len(timed) != 3 {
		t.Fatalf("timed blocks = %d, want 3", len(timed))
	}
	for i, block := range timed {
		if block.Column != i {
			t.Errorf("block %s column = %d, want %d", block.ID, block.Column, i)
		}
		if block.Columns != 3 {
			t.Errorf("block %s columns = %d, want 3", block.ID, block.Columns)
		}
		if math.Abs(block.WidthPercent()-100.0/3) > 0.01 {
			t.Errorf("block %s width = %v, want ~33.33", block.ID, block.WidthPercent())
		}
	}
}

func TestAssignColumnsDisjointStayFullWidth(t *testing.T) {
	grid := DefaultGrid()
	day := date(2026, time.March, 10, 0, 0)
	items := []Item{
		timedItem("a", day.Add(9*time.Hour), day.Add(10*time.Hour)),
		timedItem("b", day.Add(11*time.Hour), day.Add(12*time.Hour)),
	}

	timed, _ := LayoutDay(items, grid)
	for _, block := range timed {
		if block.Column != 0 || block.Columns != 1 {
			t.Errorf("block %s = col %d/%d, want 0/1", block.ID, block.Column, block.Columns)
		}
	}
}

func TestAssignColumnsBackToBackDoNotOverlap(t *testing.T) {
	grid := DefaultGrid()
	day := date(2026, time.March, 10, 0, 0)
	items := []Item{
		timedItem("a", day.Add(9*time.Hour), day.Add(10*time.Hour)),
		timedItem("b", day.Add(10*time.Hour), day.Add(11*time.Hour)),
	}

	timed, _ := LayoutDay(items, grid)
	for _, block := range timed {
		if block.Columns != 1 {
			t.Errorf("block %s columns = %d, want 1 (shared boundary is not an overlap)", block.ID, block.Columns)
		}
	}
}

func TestLayoutDaySeparatesAllDayLane(t *testing.T) {
	grid := DefaultGrid()
	day := date(2026, time.March, 10, 0, 0)
	items := []Item{
		{ID: "holiday", Kind: KindEvent, AllDay: true, Start: day},
		timedItem("a", day.Add(9*time.Hour), day.Add(10*time.Hour)),
	}

	timed, allDay := LayoutDay(items, grid)
	if len(timed) != 1 || len(allDay) != 1 {
		t.Fatalf("timed/allDay = %d/%d, want 1/1", len(timed), len(allDay))
	}
	if timed[0].Columns != 1 {
		t.Errorf("timed block columns = %d, want 1 (all-day must not pack)", timed[0].Columns)
	}
}
