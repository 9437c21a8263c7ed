package pages

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/salescope/reportkit/model"
)

func TestCommandConstructors(t *testing.T) {
	font := model.FontSpec{Family: "Helvetica", Size: 11}

	text := Text(10, 20, "hello", font)
	if text.Kind != CommandText || text.X != 10 || text.Y != 20 || text.Text != "hello" || text.Font != font {
		t.Errorf("Text command = %+v", text)
	}

	line := Line(1, 2, 3, 4, 0.5)
	if line.Kind != CommandLine || line.X2 != 3 || line.Y2 != 4 || line.LineWidth != 0.5 {
		t.Errorf("Line command = %+v", line)
	}

	rect := Rect(5, 6, 7, 8, true)
	if rect.Kind != CommandRect || rect.W != 7 || rect.H != 8 || !rect.Fill {
		t.Errorf("Rect command = %+v", rect)
	}
}

func TestCommandKindString(t *testing.T) {
	tests := []struct {
		kind CommandKind
		want string
	}{
		{CommandText, "text"},
		{CommandLine, "line"},
		{CommandRect, "rect"},
		{CommandKind(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestBandPresent(t *testing.T) {
	if (Band{}).Present() {
		t.Error("empty band reported present")
	}
	if !(Band{Text: "Acme"}).Present() {
		t.Error("text-only band reported absent")
	}
	if !(Band{Commands: []Command{Line(0, 0, 1, 0, 1)}}).Present() {
		t.Error("command-only band reported absent")
	}
}

func TestPageAllCommandsOrder(t *testing.T) {
	font := model.FontSpec{Size: 9}
	page := &Page{
		Number: 1,
		Header: Band{Text: "h", Commands: []Command{Text(0, 10, "header", font)}},
		Footer: Band{Text: "f", Commands: []Command{Text(0, 700, "footer", font)}},
	}
	page.Append(Text(0, 100, "body-1", font))
	page.Append(Text(0, 120, "body-2", font), Rect(0, 130, 50, 20, false))

	all := page.AllCommands()
	want := []string{"header", "body-1", "body-2", "", "footer"}
	if len(all) != len(want) {
		t.Fatalf("AllCommands length = %d, want %d", len(all), len(want))
	}
	for i, w := range want {
		if all[i].Text != w {
			t.Errorf("command %d text = %q, want %q", i, all[i].Text, w)
		}
	}
}

func TestWarningString(t *testing.T) {
	w := Warning{Page: 3, Message: "row clipped"}
	if got := w.String(); got != "page 3: row clipped" {
		t.Errorf("String() = %q", got)
	}
	w = Warning{Message: "general"}
	if got := w.String(); got != "general" {
		t.Errorf("String() = %q", got)
	}
}

func TestResultPageAccess(t *testing.T) {
	r := NewResult()
	r.Pages = append(r.Pages, &Page{Number: 1}, &Page{Number: 2})

	if r.PageCount() != 2 {
		t.Errorf("PageCount = %d, want 2", r.PageCount())
	}
	if got := r.GetPage(2); got == nil || got.Number != 2 {
		t.Errorf("GetPage(2) = %+v", got)
	}
	if r.GetPage(0) != nil || r.GetPage(3) != nil {
		t.Error("out-of-range GetPage returned a page")
	}

	sec := &model.Section{Title: "s"}
	if r.FirstPageOf(sec) != 0 {
		t.Error("unplaced section has a first page")
	}
	r.SectionPages[sec] = 2
	if r.FirstPageOf(sec) != 2 {
		t.Errorf("FirstPageOf = %d, want 2", r.FirstPageOf(sec))
	}
}

func TestReplayRoundTrip(t *testing.T) {
	font := model.FontSpec{Family: "Helvetica", Size: 11}
	r := NewResult()

	page1 := &Page{
		Number: 1,
		Header: Band{Text: "Acme", Commands: []Command{
			Text(72, 60, "Acme", model.FontSpec{Size: 9}),
			Line(72, 66, 540, 66, 0.5),
		}},
		Footer: Band{Text: "Page 1", Commands: []Command{Text(280, 734, "Page 1", model.FontSpec{Size: 8})}},
	}
	page1.Append(
		Text(72, 100, "hello", font),
		Rect(72, 110, 200, 40, false),
		Line(72, 160, 540, 160, 1),
	)
	page2 := &Page{Number: 2}
	page2.Append(Text(72, 100, "second", font))
	r.Pages = append(r.Pages, page1, page2)

	rec := NewRecorder()
	Replay(r, rec)

	var want []Command
	want = append(want, page1.AllCommands()...)
	want = append(want, page2.AllCommands()...)
	if diff := cmp.Diff(want, rec.Commands); diff != "" {
		t.Errorf("replayed commands mismatch (-want +got):\n%s", diff)
	}
}

func TestReplayPage(t *testing.T) {
	page := &Page{Number: 1}
	page.Append(Text(0, 10, "only", model.FontSpec{Size: 11}))

	rec := NewRecorder()
	ReplayPage(page, rec)
	if len(rec.Commands) != 1 || rec.Commands[0].Text != "only" {
		t.Errorf("replayed = %+v", rec.Commands)
	}
}
