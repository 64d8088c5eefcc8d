//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/guilmont/web-fourier/internal/webdemo"
	"github.com/guilmont/web-fourier/logging"
)

var (
	app   *webdemo.App
	funcs []js.Func
)

func main() {
	api := js.Global().Get("Object").New()

	api.Set("init", export(func(args []js.Value) any {
		canvasID := "canvas"
		if len(args) > 0 {
			canvasID = args[0].String()
		}
		surface, err := newCanvasSurface(canvasID)
		if err != nil {
			return err.Error()
		}
		app = webdemo.NewApp(surface, logging.NewDefaultLogger())
		return js.Null()
	}))

	api.Set("loadCurve", export(func(args []js.Value) any {
		if app == nil || len(args) < 2 {
			return js.Null()
		}
		if err := app.LoadCurve(floatSlice(args[0]), floatSlice(args[1])); err != nil {
			return err.Error()
		}
		return js.Null()
	}))

	api.Set("loadSignal", export(func(args []js.Value) any {
		if app == nil || len(args) < 1 {
			return js.Null()
		}
		if err := app.LoadReal(floatSlice(args[0])); err != nil {
			return err.Error()
		}
		return js.Null()
	}))

	api.Set("loadExample", export(func(args []js.Value) any {
		if app == nil || len(args) < 1 {
			return js.Null()
		}
		if err := app.LoadExample(args[0].String()); err != nil {
			return err.Error()
		}
		return js.Null()
	}))

	api.Set("start", export(func(args []js.Value) any {
		if app != nil {
			app.Start()
		}
		return js.Null()
	}))

	api.Set("stop", export(func(args []js.Value) any {
		if app != nil {
			app.Stop()
		}
		return js.Null()
	}))

	api.Set("play", export(func(args []js.Value) any {
		if app != nil {
			app.Play()
		}
		return js.Null()
	}))

	api.Set("pause", export(func(args []js.Value) any {
		if app != nil {
			app.Pause()
		}
		return js.Null()
	}))

	// step(elapsedSeconds) is wired to requestAnimationFrame on the JS side.
	api.Set("step", export(func(args []js.Value) any {
		if app == nil || len(args) < 1 {
			return js.Null()
		}
		app.OnTick(args[0].Float())
		return js.Null()
	}))

	api.Set("setSpeed", export(func(args []js.Value) any {
		if app == nil || len(args) < 1 {
			return js.Null()
		}
		app.SetSpeed(args[0].Float())
		return js.Null()
	}))

	api.Set("speedUp", export(func(args []js.Value) any {
		if app != nil {
			app.SpeedUp()
		}
		return js.Null()
	}))

	api.Set("slowDown", export(func(args []js.Value) any {
		if app != nil {
			app.SlowDown()
		}
		return js.Null()
	}))

	api.Set("speed", export(func(args []js.Value) any {
		if app == nil {
			return 0
		}
		return app.Speed()
	}))

	api.Set("setBand", export(func(args []js.Value) any {
		if app == nil || len(args) < 2 {
			return js.Null()
		}
		if err := app.SetBand(args[0].Int(), args[1].Int()); err != nil {
			return err.Error()
		}
		return js.Null()
	}))

	api.Set("maxFrequency", export(func(args []js.Value) any {
		if app == nil {
			return -1
		}
		return app.MaxFrequency()
	}))

	api.Set("isPaused", export(func(args []js.Value) any {
		return app != nil && app.IsPaused()
	}))

	api.Set("isStopped", export(func(args []js.Value) any {
		return app == nil || app.IsStopped()
	}))

	api.Set("powerSpectrum", export(func(args []js.Value) any {
		if app == nil {
			return js.Null()
		}
		freqs, power, err := app.PowerSpectrum()
		if err != nil {
			return err.Error()
		}
		out := js.Global().Get("Object").New()
		out.Set("frequencies", floatArray(freqs))
		out.Set("power", floatArray(power))
		return out
	}))

	js.Global().Set("WebFourier", api)
	select {}
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}

func floatSlice(arr js.Value) []float64 {
	out := make([]float64, arr.Length())
	for i := range out {
		out[i] = arr.Index(i).Float()
	}
	return out
}

func floatArray(data []float64) js.Value {
	arr := js.Global().Get("Float64Array").New(len(data))
	for i, v := range data {
		arr.SetIndex(i, v)
	}
	return arr
}
