package engine

import (
	"fmt"
	"log/slog"
	"os"

	"go.starlark.net/starlark"

	"tree-canvas/canvas"
	"tree-canvas/input"
)

// MaxSteps bounds a macro's execution so a runaway loop cannot stall a tick.
const MaxSteps = 1_000_000

// Target is the camera a macro drives.
type Target interface {
	input.Camera
	Screen() canvas.Rect
	Scale() canvas.Vec
	Camera() canvas.CameraPosition
}

// RunFile loads a macro from disk and runs it against target.
func RunFile(path string, target Target) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read macro: %w", err)
	}
	return Run(path, string(src), target)
}

// Run executes a Starlark macro. Camera builtins go through the same
// intents as live input, so a macro obeys the same rejection rules.
func Run(name, src string, target Target) error {
	thread := &starlark.Thread{
		Name: name,
		Print: func(_ *starlark.Thread, msg string) {
			slog.Info("macro", "name", name, "msg", msg)
		},
	}
	thread.SetMaxExecutionSteps(MaxSteps)

	if _, err := starlark.ExecFile(thread, name, src, builtins(target)); err != nil {
		return fmt.Errorf("macro %s: %w", name, err)
	}
	return nil
}

func builtins(target Target) starlark.StringDict {
	apply := func(in input.Intent) (starlark.Value, error) {
		input.Apply(target, in)
		return starlark.None, nil
	}
	return starlark.StringDict{
		"pan": pair("pan", func(a, b float64) (starlark.Value, error) {
			return apply(input.Pan{DX: a, DY: b})
		}),
		"scroll": pair("scroll", func(a, b float64) (starlark.Value, error) {
			return apply(input.Scroll{DX: a, DY: b})
		}),
		"hover": pair("hover", func(a, b float64) (starlark.Value, error) {
			return apply(input.Hover{X: a, Y: b})
		}),
		"zoom": starlark.NewBuiltin("zoom", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var delta starlark.Value
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "delta", &delta); err != nil {
				return nil, err
			}
			d, err := toFloat(b.Name(), delta)
			if err != nil {
				return nil, err
			}
			return apply(input.Zoom{Delta: d})
		}),
		"screen": getter("screen", func() *starlark.Dict {
			r := target.Screen()
			return dict(map[string]float64{"left": r.Left, "top": r.Top, "width": r.Width, "height": r.Height})
		}),
		"scale": getter("scale", func() *starlark.Dict {
			s := target.Scale()
			return dict(map[string]float64{"x": s.X, "y": s.Y})
		}),
		"camera": getter("camera", func() *starlark.Dict {
			c := target.Camera()
			return dict(map[string]float64{"x": c.X, "y": c.Y, "z": c.Z})
		}),
	}
}

// pair builds a builtin taking two numbers.
func pair(name string, fn func(a, b float64) (starlark.Value, error)) *starlark.Builtin {
	return starlark.NewBuiltin(name, func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var x, y starlark.Value
		if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 2, &x, &y); err != nil {
			return nil, err
		}
		a, err := toFloat(b.Name(), x)
		if err != nil {
			return nil, err
		}
		c, err := toFloat(b.Name(), y)
		if err != nil {
			return nil, err
		}
		return fn(a, c)
	})
}

func getter(name string, fn func() *starlark.Dict) *starlark.Builtin {
	return starlark.NewBuiltin(name, func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
			return nil, err
		}
		return fn(), nil
	})
}

func toFloat(fn string, v starlark.Value) (float64, error) {
	f, ok := starlark.AsFloat(v)
	if !ok {
		return 0, fmt.Errorf("%s: got %s, want float or int", fn, v.Type())
	}
	return f, nil
}

func dict(fields map[string]float64) *starlark.Dict {
	d := starlark.NewDict(len(fields))
	for k, v := range fields {
		_ = d.SetKey(starlark.String(k), starlark.Float(v))
	}
	return d
}
