package domain

import (
	"reflect"
	"testing"
)

func TestTaskList_Add(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		wantOK bool
		want   []string
	}{
		{"plain text", "buy milk", true, []string{"buy milk"}},
		{"kept as entered", "  buy milk  ", true, []string{"  buy milk  "}},
		{"empty", "", false, []string{}},
		{"whitespace only", "  \t ", false, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l TaskList
			if ok := l.Add(tt.text); ok != tt.wantOK {
				t.Errorf("Add(%q) = %v, want %v", tt.text, ok, tt.wantOK)
			}
			if got := l.Items(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Items() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTaskList_AddKeepsInsertionOrder(t *testing.T) {
	var l TaskList
	for _, s := range []string{"c", "a", "b", "a"} {
		l.Add(s)
	}
	want := []string{"c", "a", "b", "a"}
	if got := l.Items(); !reflect.DeepEqual(got, want) {
		t.Errorf("Items() = %q, want %q", got, want)
	}
}

func TestTaskList_Remove(t *testing.T) {
	tests := []struct {
		name   string
		index  int
		wantOK bool
		want   []string
	}{
		{"middle", 1, true, []string{"a", "c"}},
		{"first", 0, true, []string{"b", "c"}},
		{"last", 2, true, []string{"a", "b"}},
		{"negative", -1, false, []string{"a", "b", "c"}},
		{"past end", 3, false, []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l TaskList
			l.Add("a")
			l.Add("b")
			l.Add("c")

			if ok := l.Remove(tt.index); ok != tt.wantOK {
				t.Errorf("Remove(%d) = %v, want %v", tt.index, ok, tt.wantOK)
			}
			if got := l.Items(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Items() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTaskList_ItemsIsACopy(t *testing.T) {
	var l TaskList
	l.Add("a")
	items := l.Items()
	items[0] = "changed"
	if got, _ := l.At(0); got != "a" {
		t.Errorf("At(0) = %q, want %q", got, "a")
	}
}

func TestTaskList_Match(t *testing.T) {
	var l TaskList
	l.Add("write report")
	l.Add("buy milk")
	l.Add("review pull request")

	if got := l.Match(""); !reflect.DeepEqual(got, []int{0, 1, 2}) {
		t.Errorf("Match(\"\") = %v, want all indices", got)
	}

	got := l.Match("milk")
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("Match(\"milk\") = %v, want [1]", got)
	}

	if got := l.Match("zzz"); len(got) != 0 {
		t.Errorf("Match(\"zzz\") = %v, want none", got)
	}
}
