package vlist

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"testing"
	"time"

	"github.com/BrandonKowalski/vlist/pkg/vlist/constants"
)

const testItemHeight = 20

const frame = constants.DefaultFrameInterval

func newTestList(t *testing.T, canvas *fakeCanvas, h int, items ...string) *List {
	t.Helper()

	l, err := New(canvas, Options{
		StrictInvariants: true,
		Logger:           slog.New(slog.DiscardHandler),
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if h > 0 {
		l.Resize(100, h)
	}
	for _, item := range items {
		l.Append(item, nil, AppendNone)
	}
	return l
}

func numbered(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("item %d", i)
	}
	return out
}

func indices(l *List) []int {
	var out []int
	for _, b := range l.Bindings() {
		out = append(out, b.Index)
	}
	return out
}

// step moves the selection one item in dir with a short press.
func step(t *testing.T, l *List, canvas *fakeCanvas, dir Direction) {
	t.Helper()

	l.ScrollStart(dir)
	l.ScrollStop(dir)
	if _, err := canvas.run(frame, 100); err != nil {
		t.Fatalf("step %s: %v", dir, err)
	}
}

func assertInvariants(t *testing.T, l *List) {
	t.Helper()
	if err := l.checkInvariants(); err != nil {
		t.Fatalf("invariants: %v", err)
	}
}

func TestNewErrors(t *testing.T) {
	themeErr := errors.New("font not found")

	tests := []struct {
		name   string
		canvas Canvas
		code   Code
	}{
		{"theme fails to load", &fakeCanvas{itemHeight: 20, rowErr: themeErr}, CodeNoTheme},
		{"zero item height", &fakeCanvas{itemHeight: 0}, CodeNoItemSize},
		{"negative item height", &fakeCanvas{itemHeight: -4}, CodeNoItemSize},
		{"no canvas", nil, CodeNoTheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.canvas, Options{Logger: slog.New(slog.DiscardHandler)})
			if l != nil {
				t.Errorf("New() returned a list alongside error %v", err)
			}
			if !IsConstructionError(err) {
				t.Fatalf("New() error = %v, want a *ConstructionError", err)
			}
			if got := ErrorCode(err); got != tt.code {
				t.Errorf("ErrorCode() = %s, want %s", got, tt.code)
			}
		})
	}

	t.Run("theme error is wrapped", func(t *testing.T) {
		_, err := New(&fakeCanvas{itemHeight: 20, rowErr: themeErr}, Options{Logger: slog.New(slog.DiscardHandler)})
		if !errors.Is(err, themeErr) {
			t.Errorf("New() error = %v, want it to wrap %v", err, themeErr)
		}
	})
}

func TestErrorCodeNone(t *testing.T) {
	if got := ErrorCode(nil); got != CodeNone {
		t.Errorf("ErrorCode(nil) = %s, want NONE", got)
	}
	if got := ErrorCode(errors.New("other")); got != CodeNone {
		t.Errorf("ErrorCode(other) = %s, want NONE", got)
	}
}

func TestNewMeasuresItemHeight(t *testing.T) {
	canvas := newFakeCanvas(27)
	l := newTestList(t, canvas, 0)

	if got := l.ItemHeight(); got != 27 {
		t.Errorf("ItemHeight() = %d, want 27", got)
	}
	if got := len(canvas.liveRows()); got != 0 {
		t.Errorf("measuring row left alive, %d live rows", got)
	}
}

func TestAppend(t *testing.T) {
	canvas := newFakeCanvas(testItemHeight)
	l := newTestList(t, canvas, 60, "a", "b", "c")

	if got := l.Count(); got != 3 {
		t.Errorf("Count() = %d, want 3", got)
	}

	sel := l.Selected()
	if sel.Text != "a" || sel.Index != 0 {
		t.Errorf("Selected() = %+v, want a at 0", sel)
	}

	for i := range 20 {
		l.Append(fmt.Sprint(i), i, AppendShare)
		if got := l.Count(); got != 4+i {
			t.Fatalf("Count() = %d after %d appends, want %d", got, 4+i, 4+i)
		}
		if got := l.SelectedIndex(); got != 0 {
			t.Fatalf("SelectedIndex() = %d after append, want 0", got)
		}
		assertInvariants(t, l)
	}
}

func TestAppendWithoutPool(t *testing.T) {
	canvas := newFakeCanvas(testItemHeight)
	l := newTestList(t, canvas, 0, "a", "b")

	if got := l.SelectedIndex(); got != 0 {
		t.Errorf("SelectedIndex() = %d, want 0", got)
	}
	if got := len(l.Bindings()); got != 0 {
		t.Errorf("Bindings() has %d slots before the first resize", got)
	}

	l.Resize(100, 60)

	if got, want := indices(l), []int{-1, 0, 1, -1, -1}; !slices.Equal(got, want) {
		t.Errorf("bindings = %v, want %v", got, want)
	}
}

func TestSelectionData(t *testing.T) {
	canvas := newFakeCanvas(testItemHeight)
	l := newTestList(t, canvas, 60)

	type payload struct{ id int }
	l.Append("first", &payload{id: 7}, AppendNone)

	sel := l.Selected()
	p, ok := sel.Data.(*payload)
	if !ok || p.id != 7 {
		t.Errorf("Selected().Data = %#v, want payload 7", sel.Data)
	}
}

func TestScrollDownOneItem(t *testing.T) {
	canvas := newFakeCanvas(testItemHeight)
	l := newTestList(t, canvas, 60, "a", "b", "c")

	var got []Selection
	l.OnSelectionChanged(func(s Selection) { got = append(got, s) })

	l.ScrollStart(Down)
	canvas.step(frame)
	l.ScrollStop(Down)

	if _, err := canvas.run(frame, 100); err != nil {
		t.Fatal(err)
	}

	if len(got) != 1 {
		t.Fatalf("selection handler fired %d times, want 1: %+v", len(got), got)
	}
	if got[0].Text != "b" || got[0].Index != 1 {
		t.Errorf("notified %+v, want b at 1", got[0])
	}
	if l.Scrolling() {
		t.Error("Scrolling() = true after the list came to rest")
	}
	if l.Offset() != 0 {
		t.Errorf("Offset() = %v, want 0", l.Offset())
	}
	assertInvariants(t, l)
}

func TestScrollUpAtTopIsNoop(t *testing.T) {
	canvas := newFakeCanvas(testItemHeight)
	l := newTestList(t, canvas, 60, "a", "b", "c")

	fired := 0
	l.OnSelectionChanged(func(Selection) { fired++ })

	l.ScrollStart(Up)

	if l.Scrolling() {
		t.Error("Scrolling() = true, want idle")
	}
	if got := canvas.liveAnimations(); got != 0 {
		t.Errorf("%d animations scheduled, want 0", got)
	}
	canvas.step(frame)
	if got := l.SelectedIndex(); got != 0 {
		t.Errorf("SelectedIndex() = %d, want 0", got)
	}
	if fired != 0 {
		t.Errorf("selection handler fired %d times, want 0", fired)
	}
}

func TestResizeShrinksPool(t *testing.T) {
	canvas := newFakeCanvas(testItemHeight)
	l := newTestList(t, canvas, 60, numbered(10)...)

	step(t, l, canvas, Down)
	step(t, l, canvas, Down)

	before := len(canvas.liveRows())
	if before != 5 {
		t.Fatalf("%d rows for three visible items, want 5", before)
	}

	l.Resize(100, 20)

	after := len(canvas.liveRows())
	if before-after != 2 {
		t.Errorf("pool shrank by %d, want 2", before-after)
	}
	if got := l.SelectedIndex(); got != 2 {
		t.Errorf("SelectedIndex() = %d after resize, want 2", got)
	}
	if got, want := indices(l), []int{1, 2, 3}; !slices.Equal(got, want) {
		t.Errorf("bindings = %v, want %v", got, want)
	}
	assertInvariants(t, l)

	l.Append("late", nil, AppendNone)
	if got := l.Count(); got != 11 {
		t.Errorf("Count() = %d, want 11", got)
	}
	if got := l.SelectedIndex(); got != 2 {
		t.Errorf("SelectedIndex() = %d after append, want 2", got)
	}

	l.Resize(100, 100)
	if got, want := indices(l), []int{1, 2, 3, 4, 5, 6, 7}; !slices.Equal(got, want) {
		t.Errorf("bindings after growing = %v, want %v", got, want)
	}
	assertInvariants(t, l)
}

func TestResizeClampsToOneRow(t *testing.T) {
	canvas := newFakeCanvas(testItemHeight)
	l := newTestList(t, canvas, 5, "a", "b")

	if got := len(l.Bindings()); got != 3 {
		t.Errorf("pool has %d slots, want 3", got)
	}
	if got := canvas.clips[0].h; got != testItemHeight {
		t.Errorf("clip height = %d, want %d", got, testItemHeight)
	}
}

func TestScrollStopImmediately(t *testing.T) {
	canvas := newFakeCanvas(testItemHeight)
	l := newTestList(t, canvas, 60, "a", "b", "c")

	l.ScrollStart(Down)
	l.ScrollStop(Down)

	frames, err := canvas.run(frame, 50)
	if err != nil {
		t.Fatal(err)
	}
	if frames > 20 {
		t.Errorf("stopping took %d frames", frames)
	}
	if l.Offset() != 0 {
		t.Errorf("Offset() = %v, want 0", l.Offset())
	}
	if got := l.SelectedIndex(); got != 1 {
		t.Errorf("SelectedIndex() = %d, want 1", got)
	}

	canvas.step(frame)
	canvas.step(frame)
	if got := l.SelectedIndex(); got != 1 {
		t.Errorf("SelectedIndex() = %d after idle frames, want 1", got)
	}
	assertInvariants(t, l)
}

func TestBindings(t *testing.T) {
	canvas := newFakeCanvas(testItemHeight)
	l := newTestList(t, canvas, 60, numbered(10)...)

	if got, want := indices(l), []int{-1, 0, 1, 2, 3}; !slices.Equal(got, want) {
		t.Errorf("bindings = %v, want %v", got, want)
	}

	step(t, l, canvas, Down)
	if got, want := indices(l), []int{0, 1, 2, 3, 4}; !slices.Equal(got, want) {
		t.Errorf("bindings = %v, want %v", got, want)
	}

	for range 8 {
		step(t, l, canvas, Down)
		assertInvariants(t, l)
	}
	if got, want := indices(l), []int{8, 9, -1, -1, -1}; !slices.Equal(got, want) {
		t.Errorf("bindings at the end = %v, want %v", got, want)
	}

	step(t, l, canvas, Up)
	if got, want := indices(l), []int{7, 8, 9, -1, -1}; !slices.Equal(got, want) {
		t.Errorf("bindings = %v, want %v", got, want)
	}

	for _, b := range l.Bindings() {
		if b.Index == blank && b.Text != "" {
			t.Errorf("blank slot shows %q", b.Text)
		}
	}
}

func TestBlankRowsShowNoText(t *testing.T) {
	canvas := newFakeCanvas(testItemHeight)
	l := newTestList(t, canvas, 60, "a", "b")

	for pos := 0; pos < l.pool.len(); pos++ {
		s := l.pool.at(pos)
		text := s.row.(*fakeRow).text
		if s.content == blank && text != "" {
			t.Errorf("blank slot at %d shows %q", pos, text)
		}
		if s.content != blank && text != l.contents.at(s.content).text {
			t.Errorf("slot at %d shows %q, want %q", pos, text, l.contents.at(s.content).text)
		}
	}
}

func TestScrollUpAndDown(t *testing.T) {
	canvas := newFakeCanvas(testItemHeight)
	l := newTestList(t, canvas, 80, numbered(30)...)

	moves := []struct {
		dir  Direction
		want int
	}{
		{Down, 1}, {Down, 2}, {Down, 3}, {Up, 2}, {Up, 1}, {Up, 0}, {Up, 0}, {Down, 1},
	}

	for i, m := range moves {
		step(t, l, canvas, m.dir)
		if got := l.SelectedIndex(); got != m.want {
			t.Fatalf("move %d (%s): SelectedIndex() = %d, want %d", i, m.dir, got, m.want)
		}
		assertInvariants(t, l)
	}
}

func TestHeldScrollExhaustsAtEnd(t *testing.T) {
	canvas := newFakeCanvas(testItemHeight)
	l := newTestList(t, canvas, 60, "a", "b", "c")

	var notified []int
	l.OnSelectionChanged(func(s Selection) { notified = append(notified, s.Index) })

	l.ScrollStart(Down)
	if _, err := canvas.run(frame, 500); err != nil {
		t.Fatal(err)
	}

	if got := l.SelectedIndex(); got != 2 {
		t.Errorf("SelectedIndex() = %d, want 2", got)
	}
	if l.Offset() != 0 || l.Scrolling() {
		t.Errorf("list not at rest: offset %v, scrolling %v", l.Offset(), l.Scrolling())
	}
	if want := []int{1, 2}; !slices.Equal(notified, want) {
		t.Errorf("notified %v, want %v", notified, want)
	}

	l.ScrollStart(Down)
	if l.Scrolling() {
		t.Error("ScrollStart(Down) at the last item started a scroll")
	}
}

func TestLongFrameJumps(t *testing.T) {
	canvas := newFakeCanvas(testItemHeight)
	l := newTestList(t, canvas, 60, numbered(100)...)

	l.ScrollStart(Down)
	canvas.step(2 * time.Second)

	// 0.2*2000 + 0.0001*2000²/2 = 600px, thirty items.
	if got := l.SelectedIndex(); got != 30 {
		t.Errorf("SelectedIndex() = %d, want 30", got)
	}
	if math.Abs(l.Offset()) > 1e-6 {
		t.Errorf("Offset() = %v, want 0", l.Offset())
	}
	if got, want := indices(l), []int{29, 30, 31, 32, 33}; !slices.Equal(got, want) {
		t.Errorf("bindings = %v, want %v", got, want)
	}
	assertInvariants(t, l)

	l.ScrollStop(Down)
	if _, err := canvas.run(frame, 100); err != nil {
		t.Fatal(err)
	}
	assertInvariants(t, l)
}

func TestFixPosition(t *testing.T) {
	tests := []struct {
		name     string
		start    int
		y        float64
		selected int
		rest     float64
		ok       bool
	}{
		{"within one item", 5, 12, 5, 12, true},
		{"rotate down", 5, 45, 7, 5, true},
		{"rotate up", 5, -45, 3, -5, true},
		{"exact boundary", 5, 20, 6, 0, true},
		{"jump down", 5, 20*12 + 5, 17, 5, true},
		{"jump up", 40, -(20*12 + 5), 28, -5, true},
		{"exhausted", 48, 60, 49, 0, false},
		{"jump exhausted", 2, -200, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			canvas := newFakeCanvas(testItemHeight)
			l := newTestList(t, canvas, 60, numbered(50)...)

			thaw := l.Freeze()
			l.jump(Down, tt.start)
			rest, ok := l.fixPosition(tt.y)
			thaw()

			if ok != tt.ok {
				t.Errorf("fixPosition(%v) ok = %v, want %v", tt.y, ok, tt.ok)
			}
			if math.Abs(rest-tt.rest) > 1e-9 {
				t.Errorf("fixPosition(%v) rest = %v, want %v", tt.y, rest, tt.rest)
			}
			if got := l.SelectedIndex(); got != tt.selected {
				t.Errorf("SelectedIndex() = %d, want %d", got, tt.selected)
			}
			assertInvariants(t, l)
		})
	}
}

func TestRecomputeIsIdempotent(t *testing.T) {
	canvas := newFakeCanvas(testItemHeight)
	l := newTestList(t, canvas, 60, numbered(12)...)
	step(t, l, canvas, Down)
	step(t, l, canvas, Down)

	before := l.Bindings()
	l.recompute()
	once := l.Bindings()
	l.recompute()
	twice := l.Bindings()

	if !slices.Equal(before, once) || !slices.Equal(once, twice) {
		t.Errorf("recompute changed bindings: %v, %v, %v", before, once, twice)
	}
}

func TestFreezeDefersRecompute(t *testing.T) {
	canvas := newFakeCanvas(testItemHeight)
	l := newTestList(t, canvas, 60)

	fired := 0
	l.OnSelectionChanged(func(Selection) { fired++ })

	thaw := l.Freeze()
	inner := l.Freeze()
	for _, s := range []string{"a", "b", "c"} {
		l.Append(s, nil, AppendNone)
	}

	if got, want := indices(l), []int{-1, -1, -1, -1, -1}; !slices.Equal(got, want) {
		t.Errorf("bindings while frozen = %v, want %v", got, want)
	}

	inner()
	inner()
	if got, want := indices(l), []int{-1, -1, -1, -1, -1}; !slices.Equal(got, want) {
		t.Errorf("bindings after inner thaw = %v, want %v", got, want)
	}
	if fired != 0 {
		t.Errorf("selection handler fired %d times while frozen", fired)
	}

	thaw()
	if got, want := indices(l), []int{-1, 0, 1, 2, -1}; !slices.Equal(got, want) {
		t.Errorf("bindings after thaw = %v, want %v", got, want)
	}
	if fired != 1 {
		t.Errorf("selection handler fired %d times, want 1", fired)
	}

	thaw()
	if fired != 1 {
		t.Errorf("second thaw fired the handler again")
	}
}

func TestLayout(t *testing.T) {
	canvas := newFakeCanvas(testItemHeight)
	l := newTestList(t, canvas, 60, numbered(10)...)
	l.Move(10, 30)

	for pos := 0; pos < l.pool.len(); pos++ {
		row := l.pool.at(pos).row.(*fakeRow)
		if want := 30 + (pos-1)*testItemHeight; row.y != want || row.x != 10 {
			t.Errorf("row %d at (%d, %d), want (10, %d)", pos, row.x, row.y, want)
		}
		if row.w != 100 || row.h != testItemHeight {
			t.Errorf("row %d sized %dx%d, want 100x%d", pos, row.w, row.h, testItemHeight)
		}
		if row.clip != canvas.clips[0] {
			t.Errorf("row %d not clipped to the list clip", pos)
		}
	}

	clip := canvas.clips[0]
	if clip.x != 10 || clip.y != 30 || clip.w != 100 || clip.h != 60 {
		t.Errorf("clip at (%d, %d) %dx%d, want (10, 30) 100x60", clip.x, clip.y, clip.w, clip.h)
	}

	l.ScrollStart(Down)
	canvas.step(frame)

	shift := int(math.Round(l.Offset()))
	if shift <= 0 {
		t.Fatalf("Offset() = %v after one frame, want positive", l.Offset())
	}
	if row := l.pool.at(1).row.(*fakeRow); row.y != 30-shift {
		t.Errorf("selected row at y %d, want %d", row.y, 30-shift)
	}
}

func TestScrollStartWhileStopping(t *testing.T) {
	canvas := newFakeCanvas(testItemHeight)
	l := newTestList(t, canvas, 60, numbered(10)...)

	l.ScrollStart(Down)
	canvas.step(frame)
	l.ScrollStop(Down)
	canvas.step(frame)

	if l.scroll.stop != stopChecking {
		t.Fatal("list is not decelerating")
	}

	l.ScrollStart(Down)
	if l.scroll.stop != stopNone || l.scroll.dir != Down {
		t.Errorf("ScrollStart(Down) while stopping did not accelerate again")
	}
	if got := canvas.liveAnimations(); got != 1 {
		t.Errorf("%d animations live, want 1", got)
	}

	l.ScrollStop(Up)
	if l.scroll.stop != stopNone {
		t.Error("ScrollStop(Up) stopped a downward scroll")
	}

	l.ScrollStop(Down)
	if _, err := canvas.run(frame, 100); err != nil {
		t.Fatal(err)
	}
	if l.Offset() != 0 {
		t.Errorf("Offset() = %v, want 0", l.Offset())
	}
	assertInvariants(t, l)
}

func TestScrollReverse(t *testing.T) {
	canvas := newFakeCanvas(testItemHeight)
	l := newTestList(t, canvas, 60, numbered(10)...)
	step(t, l, canvas, Down)
	step(t, l, canvas, Down)

	l.ScrollStart(Down)
	canvas.step(frame)
	l.ScrollStart(Up)
	l.ScrollStop(Up)

	if _, err := canvas.run(frame, 100); err != nil {
		t.Fatal(err)
	}
	if got := l.SelectedIndex(); got != 1 {
		t.Errorf("SelectedIndex() = %d, want 1", got)
	}
	if l.Offset() != 0 {
		t.Errorf("Offset() = %v, want 0", l.Offset())
	}
	assertInvariants(t, l)
}

func TestDestroyDuringScroll(t *testing.T) {
	canvas := newFakeCanvas(testItemHeight)
	l := newTestList(t, canvas, 60, numbered(10)...)

	l.ScrollStart(Down)
	canvas.step(frame)
	l.Destroy()

	if !canvas.anims[0].cancelled {
		t.Error("animation not cancelled")
	}
	if got := len(canvas.liveRows()); got != 0 {
		t.Errorf("%d rows alive after Destroy", got)
	}
	if !canvas.clips[0].destroyed {
		t.Error("clip not destroyed")
	}
	if got := canvas.step(frame); got != 0 {
		t.Errorf("%d animations ran after Destroy", got)
	}

	l.Append("x", nil, AppendNone)
	l.ScrollStart(Down)
	l.Resize(100, 100)
	l.Destroy()
	if got := l.Count(); got != 0 {
		t.Errorf("Count() = %d after Destroy", got)
	}
}

func TestNilList(t *testing.T) {
	var l *List

	l.Append("a", nil, AppendNone)
	l.ScrollStart(Down)
	l.ScrollStop(Down)
	l.Move(1, 2)
	l.Resize(3, 4)
	l.Show()
	l.Hide()
	l.Freeze()()
	l.Destroy()

	if l.Count() != 0 || l.SelectedIndex() != -1 || l.Visible() || l.Scrolling() {
		t.Error("nil list reported state")
	}
}

func TestShowHide(t *testing.T) {
	canvas := newFakeCanvas(testItemHeight)
	l := newTestList(t, canvas, 60, "a")
	clip := canvas.clips[0]

	l.Show()
	if !l.Visible() || !clip.shown {
		t.Error("Show() did not show the clip")
	}
	l.Hide()
	if l.Visible() || clip.shown {
		t.Error("Hide() did not hide the clip")
	}
}

func TestInvariantRepair(t *testing.T) {
	canvas := newFakeCanvas(testItemHeight)
	l, err := New(canvas, Options{Logger: slog.New(slog.DiscardHandler)})
	if err != nil {
		t.Fatal(err)
	}
	l.strict = false
	l.Resize(100, 60)
	for _, s := range numbered(10) {
		l.Append(s, nil, AppendNone)
	}

	l.selected = 3
	if l.checkInvariants() == nil {
		t.Fatal("moving the selection behind the window's back went unnoticed")
	}

	l.verify()

	assertInvariants(t, l)
	if got, want := indices(l), []int{2, 3, 4, 5, 6}; !slices.Equal(got, want) {
		t.Errorf("bindings = %v, want %v", got, want)
	}
}

func TestStrictInvariantsPanic(t *testing.T) {
	canvas := newFakeCanvas(testItemHeight)
	l := newTestList(t, canvas, 60, numbered(10)...)

	l.pool.at(2).content = 7

	defer func() {
		if recover() == nil {
			t.Error("verify() did not panic in strict mode")
		}
	}()
	l.verify()
}

func TestStalledMotionComesToRest(t *testing.T) {
	canvas := newFakeCanvas(testItemHeight)
	l := newTestList(t, canvas, 60, "a", "b", "c")

	// Velocity decays to zero by the first frame while the stored initial
	// velocity is still above the precision threshold.
	l.scroll = scrollState{
		dir:   Down,
		t0:    canvas.now,
		y0:    3,
		v0:    0.000016,
		accel: -0.000001,
	}
	l.offset = 3
	l.ensureAnimation()

	if got := canvas.step(frame); got != 0 {
		t.Fatalf("%d animations live after the stalled frame, want 0", got)
	}
	if l.Scrolling() {
		t.Error("Scrolling() = true, want the list at rest")
	}
	if l.Offset() != 0 {
		t.Errorf("Offset() = %v, want 0", l.Offset())
	}
	if got := l.SelectedIndex(); got != 0 {
		t.Errorf("SelectedIndex() = %d, want 0", got)
	}
	assertInvariants(t, l)
}
