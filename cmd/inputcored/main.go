// Command inputcored demonstrates the input-translation core wired end to
// end: an SDL window and game controllers feed sdlhost, which feeds
// input.Manager, which pushes control messages to a logging stand-in for
// the real outbound transport (out of scope for this module, per
// spec.md §1). Metrics are exposed over loopback HTTP via expvar, adapted
// from the teacher's main.go debug-pprof/expvar server.
package main

import (
	"expvar"
	"flag"
	"net/http"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/yourname/scrcpy-go/config"
	"github.com/yourname/scrcpy-go/control"
	"github.com/yourname/scrcpy-go/geom"
	"github.com/yourname/scrcpy-go/input"
	"github.com/yourname/scrcpy-go/logx"
	"github.com/yourname/scrcpy-go/screen"
	"github.com/yourname/scrcpy-go/sdlhost"
)

func main() {
	var (
		touchmapFile = flag.String("touchmap", "", "path to a touchmap JSON file to load at startup")
		metricsAddr  = flag.String("metrics-addr", "127.0.0.1:9696", "address to serve /debug/vars on")
		frameW       = flag.Int("frame-w", 1080, "initial device-frame width in pixels")
		frameH       = flag.Int("frame-h", 1920, "initial device-frame height in pixels")
	)
	flag.Parse()

	go func() {
		logx.Info("inputcored: metrics listening on http://%s/debug/vars", *metricsAddr)
		if err := http.ListenAndServe(*metricsAddr, nil); err != nil {
			logx.Error("inputcored: metrics server: %v", err)
		}
	}()

	scr, err := screen.NewSDLScreen("scrcpy-go input core", geom.Size{W: int32(*frameW), H: int32(*frameH)})
	if err != nil {
		logx.Fatal("inputcored: create window: %v", err)
	}
	defer scr.Close()

	if err := sdl.InitSubSystem(sdl.INIT_GAMECONTROLLER); err != nil {
		logx.Error("inputcored: init game controller subsystem: %v", err)
	}

	cfg, err := config.New(
		config.WithTouchmapFile(*touchmapFile),
		config.WithMouseBinding(config.ButtonRight, config.BindingClick),
		config.WithClipboardAutosync(true),
	)
	if err != nil {
		logx.Fatal("inputcored: build config: %v", err)
	}

	queue := &loggingQueue{}
	mgr := input.NewManager(scr, cfg,
		input.WithController(queue),
		input.WithTouchmapDialogHook(func() {
			logx.Info("inputcored: touchmap file dialog requested (no file-dialog collaborator wired in this demo)")
		}),
	)
	defer mgr.Close()

	source := sdlhost.New(mgr.HandleEvent)
	running := true
	source.OnQuit(func() { running = false })

	logx.Info("inputcored: entering event loop")
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()
	for running {
		<-ticker.C
		source.Pump()
	}
}

// loggingQueue stands in for the real outbound control-message transport
// (spec.md §1's "non-blocking bounded queue... serialization and socket
// I/O are elsewhere"): it always accepts and logs the message kind.
type loggingQueue struct {
	pushedVar expvar.Int
}

func (q *loggingQueue) Push(msg control.Message) bool {
	q.pushedVar.Add(1)
	logx.Debug("inputcored: control message kind=%d len=%d", msg.Kind(), len(msg.Encode()))
	return true
}
