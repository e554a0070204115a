package gallery

import "testing"

func TestPresenter_DismissRestoresFirstFocus(t *testing.T) {
	p := NewPresenter()
	if p.Open() {
		t.Fatal("presenter should start closed")
	}

	p.Present(2, Artwork{Title: "First"}, Focus{Page: 2, Cursor: 5})
	p.Present(7, Artwork{Title: "Second"}, Focus{Page: 1, Cursor: 0})

	if got := p.Detail().Title; got != "Second" {
		t.Errorf("expected content replaced, got %q", got)
	}
	if got := p.Detail().Index; got != 7 {
		t.Errorf("detail index = %d, want 7", got)
	}

	focus, ok := p.Dismiss()
	if !ok {
		t.Fatal("expected dismiss to report an open surface")
	}
	if focus.Page != 2 || focus.Cursor != 5 {
		t.Errorf("restored focus = %+v, want page 2 cursor 5", focus)
	}
	if p.Open() {
		t.Error("presenter should be closed after dismiss")
	}
	if _, ok := p.Dismiss(); ok {
		t.Error("second dismiss should report nothing open")
	}
}

func TestPresenter_ReplaceOverridesFocus(t *testing.T) {
	p := NewPresenter()
	p.Present(3, Artwork{Title: "Old"}, Focus{Page: 2, Filter: FilterAvailable, Cursor: 1})
	p.Replace(3, Artwork{Title: "New"}, Focus{Page: 1})

	if got := p.Detail().Title; got != "New" {
		t.Errorf("title = %q, want %q", got, "New")
	}
	focus, _ := p.Dismiss()
	if focus != (Focus{Page: 1}) {
		t.Errorf("restored focus = %+v, want page 1 without filter", focus)
	}
}

func TestDetailOf_AbsentFieldsAreEmpty(t *testing.T) {
	d := DetailOf(0, Artwork{Title: "Only a title"})
	for name, v := range map[string]string{
		"image":       d.Image,
		"artist":      d.Artist,
		"size":        d.Size,
		"medium":      d.Medium,
		"year":        d.Year,
		"style":       d.Style,
		"description": d.Description,
	} {
		if v != "" {
			t.Errorf("%s = %q, want empty", name, v)
		}
	}
}
