package input

import (
	"reflect"
	"testing"
)

type call struct {
	name string
	a, b float64
}

type recorder struct {
	calls []call
}

func (r *recorder) SetPointer(x, y float64)     { r.calls = append(r.calls, call{"SetPointer", x, y}) }
func (r *recorder) PanCamera(mx, my float64)    { r.calls = append(r.calls, call{"PanCamera", mx, my}) }
func (r *recorder) ZoomCamera(d float64)        { r.calls = append(r.calls, call{"ZoomCamera", d, 0}) }
func (r *recorder) ScrollCamera(mx, my float64) { r.calls = append(r.calls, call{"ScrollCamera", mx, my}) }

func TestWheel(t *testing.T) {
	tr := NewTranslator()
	in := tr.Wheel(WheelEvent{DeltaX: 40, DeltaY: -30})
	if in != (Zoom{Delta: -30}) {
		t.Errorf("Wheel = %#v, want Zoom{-30}", in)
	}
}

func TestPointer(t *testing.T) {
	tests := []struct {
		name   string
		ev     PointerEvent
		want   Intent
		wantOK bool
	}{
		{
			name:   "hover",
			ev:     PointerEvent{X: 10, Y: 20, MovementX: 3, MovementY: 4},
			want:   Hover{X: 10, Y: 20},
			wantOK: true,
		},
		{
			name:   "primary drag",
			ev:     PointerEvent{X: 10, Y: 20, MovementX: 3, MovementY: -4, Buttons: ButtonPrimary},
			want:   Pan{DX: 3, DY: -4},
			wantOK: true,
		},
		{
			name: "primary without movement",
			ev:   PointerEvent{X: 10, Y: 20, Buttons: ButtonPrimary},
		},
		{
			name: "secondary",
			ev:   PointerEvent{MovementX: 1, Buttons: ButtonSecondary},
		},
		{
			name: "primary and middle",
			ev:   PointerEvent{MovementX: 1, Buttons: ButtonPrimary | ButtonMiddle},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, ok := NewTranslator().Pointer(tt.ev)
			if ok != tt.wantOK || !reflect.DeepEqual(in, tt.want) {
				t.Errorf("Pointer(%+v) = %#v, %v; want %#v, %v", tt.ev, in, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestDragged(t *testing.T) {
	tr := NewTranslator()
	tr.Pointer(PointerEvent{Buttons: ButtonPrimary})
	if tr.Dragged() {
		t.Fatal("press without movement counted as a drag")
	}
	tr.Pointer(PointerEvent{MovementX: 5, Buttons: ButtonPrimary})
	if !tr.Dragged() {
		t.Fatal("pan did not count as a drag")
	}
	tr.Pointer(PointerEvent{X: 1, Y: 1})
	if tr.Dragged() {
		t.Error("hover did not end the drag")
	}
}

func TestApply(t *testing.T) {
	r := &recorder{}
	for _, in := range []Intent{
		Hover{X: 1, Y: 2},
		Pan{DX: 3, DY: 4},
		Zoom{Delta: 5},
		Scroll{DX: 6, DY: 7},
	} {
		Apply(r, in)
	}

	want := []call{
		{"SetPointer", 1, 2},
		{"PanCamera", 3, 4},
		{"ZoomCamera", 5, 0},
		{"ScrollCamera", 6, 7},
	}
	if !reflect.DeepEqual(r.calls, want) {
		t.Errorf("calls = %v, want %v", r.calls, want)
	}
}
