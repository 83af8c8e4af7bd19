package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"solidview/internal/config"
	"solidview/internal/geometry"
	"solidview/internal/glrender"
	"solidview/internal/logx"
	"solidview/internal/viewer"
	"solidview/internal/watch"
)

func init() {
	// GLFW and GL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	configFile := flag.String("config", "", "Config file with shape parameters, reloaded on change")
	width := flag.Int("width", 1024, "Window width")
	height := flag.Int("height", 768, "Window height")
	primitive := flag.String("primitive", "cube", "Initial primitive")
	verbose := flag.Bool("v", false, "Debug logging")
	flag.Parse()

	log := logx.Init(os.Stderr, *verbose)

	params := geometry.DefaultParams()
	if *configFile != "" {
		cfg, err := config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		params = cfg.Shapes
	}

	if err := run(log, *width, *height, *primitive, *configFile, params); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger, width, height int, primitive, configFile string, params geometry.Params) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Samples, 4)

	window, err := glfw.CreateWindow(width, height, "solidview", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	log.Debug("gl context", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	renderer, err := glrender.New()
	if err != nil {
		return err
	}
	defer renderer.Delete()

	fbw, fbh := window.GetFramebufferSize()
	session, err := viewer.New(renderer, fbw, fbh, params, viewer.WithLogger(log))
	if err != nil {
		return err
	}
	if ok, err := session.SetPrimitive(primitive); err != nil {
		return err
	} else if !ok {
		log.Warn("unknown primitive, keeping triangle", "name", primitive)
	}

	ctl := newController(session, log)
	ctl.bind(window)

	// Shape reloads arrive from the watcher goroutine and are applied on
	// the main thread.
	reloads := make(chan geometry.Params, 1)
	if configFile != "" {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			err := watch.File(ctx, configFile, func(path string) {
				cfg, err := config.Load(path)
				if err != nil {
					log.Warn("config reload failed", "err", err)
					return
				}
				select {
				case reloads <- cfg.Shapes:
				default:
					log.Debug("config reload dropped, one already pending")
				}
				glfw.PostEmptyEvent()
			})
			if err != nil {
				log.Warn("config watch stopped", "err", err)
			}
		}()
	}

	for !window.ShouldClose() {
		select {
		case p := <-reloads:
			if err := session.SetParams(p); err != nil {
				return err
			}
			log.Info("shapes reloaded", "primitive", session.Kind().String())
		default:
		}

		if err := session.Draw(); err != nil {
			return err
		}
		window.SwapBuffers()
		glfw.WaitEvents()
	}
	return nil
}
