package pagination

import (
	"reflect"
	"testing"
)

func pages(buttons []Button) []int {
	out := make([]int, 0, len(buttons))
	for _, b := range buttons {
		if b.Ellipsis {
			out = append(out, -1)
		} else {
			out = append(out, b.Page)
		}
	}
	return out
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name    string
		current int
		total   int
		want    []int // -1 marks an ellipsis
	}{
		{"middle of long range", 7, 20, []int{1, -1, 5, 6, 7, 8, 9, -1, 20}},
		{"short range no ellipses", 1, 3, []int{1, 2, 3}},
		{"first page of long range", 1, 20, []int{1, 2, 3, 4, 5, -1, 20}},
		{"last page of long range", 20, 20, []int{1, -1, 16, 17, 18, 19, 20}},
		{"window touches left edge", 3, 20, []int{1, 2, 3, 4, 5, -1, 20}},
		{"window one off left edge", 4, 20, []int{1, 2, 3, 4, 5, 6, -1, 20}},
		{"window touches right edge", 18, 20, []int{1, -1, 16, 17, 18, 19, 20}},
		{"single page", 1, 1, []int{1}},
		{"exactly five pages", 3, 5, []int{1, 2, 3, 4, 5}},
		{"six pages from start", 2, 6, []int{1, 2, 3, 4, 5, 6}},
		{"current above total clamps", 99, 4, []int{1, 2, 3, 4}},
		{"current below one clamps", 0, 4, []int{1, 2, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pages(Window(tt.current, tt.total))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Window(%d, %d) = %v, want %v", tt.current, tt.total, got, tt.want)
			}
		})
	}
}

func TestWindowEmpty(t *testing.T) {
	if got := Window(1, 0); got != nil {
		t.Errorf("Window(1, 0) = %v, want nil", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		page, total, want int
	}{
		{5, 10, 5},
		{0, 10, 1},
		{-3, 10, 1},
		{11, 10, 10},
		{1, 0, 1},
	}
	for _, tt := range tests {
		if got := Clamp(tt.page, tt.total); got != tt.want {
			t.Errorf("Clamp(%d, %d) = %d, want %d", tt.page, tt.total, got, tt.want)
		}
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		items, size, want int
	}{
		{50, 12, 5},
		{48, 12, 4},
		{1, 12, 1},
		{0, 12, 1},
		{12, 12, 1},
		{13, 12, 2},
	}
	for _, tt := range tests {
		if got := TotalPages(tt.items, tt.size); got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.items, tt.size, got, tt.want)
		}
	}
}
