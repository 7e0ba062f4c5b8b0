package commands

import (
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/chronoview/go-timeline-engine/internal/config"
	"github.com/chronoview/go-timeline-engine/internal/core/engine"
	"github.com/chronoview/go-timeline-engine/internal/presentation/display"
	"github.com/chronoview/go-timeline-engine/internal/presentation/interaction"
	playout "github.com/chronoview/go-timeline-engine/internal/presentation/layout"
	"github.com/chronoview/go-timeline-engine/internal/util"
)

// pixelsPerColumn maps engine pixels onto terminal columns. Ten pixels
// per column keeps the 60px minimum grid spacing at a readable six
// columns.
const pixelsPerColumn = 10.0

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Interactively browse a timeline in the terminal",
	Long: `Renders the timeline on the alternate screen and responds to the
keyboard:

  ←/→   scroll        +/-  zoom (also ↑/↓)
  n/p   step one grid unit forward/back (animated)
  f     fit the initial range (animated)
  q     quit (also Esc, Ctrl+C)

Locale and availability files given via --locale/--availability are
watched and reloaded on change.`,
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

// loopScheduler posts animation frames into the view's action channel
// so every engine mutation happens on the event loop goroutine.
type loopScheduler struct {
	actions  chan<- func()
	interval time.Duration
}

func (s *loopScheduler) ScheduleFrame(fn func()) func() {
	var mu sync.Mutex
	cancelled := false

	timer := time.AfterFunc(s.interval, func() {
		mu.Lock()
		dead := cancelled
		mu.Unlock()
		if dead {
			return
		}
		s.actions <- func() {
			mu.Lock()
			dead := cancelled
			mu.Unlock()
			if !dead {
				fn()
			}
		}
	})

	return func() {
		mu.Lock()
		cancelled = true
		mu.Unlock()
		timer.Stop()
	}
}

func runView(cmd *cobra.Command, args []string) error {
	env, err := setupEnvironment()
	if err != nil {
		return err
	}

	start, end, err := resolveRange(env.location, env.now)
	if err != nil {
		return err
	}

	var sizer playout.Sizer
	cols, _ := sizer.TerminalSize()
	containerWidth := float64(cols) * pixelsPerColumn

	actions := make(chan func(), 64)
	eng := engine.New(start, end, containerWidth, engine.Config{
		MinZoom:    env.cfg.Engine.MinZoom,
		MaxZoom:    env.cfg.Engine.MaxZoom,
		MinSpacing: env.cfg.Grid.MinSpacingPx,
		Locale:     env.locale,
		Location:   env.location,
		Scheduler:  &loopScheduler{actions: actions, interval: engine.DefaultFrameInterval},
	})

	td := display.NewTerminalDisplay()
	td.EnterAlternateScreen()
	defer td.ExitAlternateScreen()

	keyboard, err := interaction.NewKeyboardReader()
	if err != nil {
		return err
	}
	defer keyboard.Close()

	render := func() {
		td.Render(buildSnapshot(eng, env))
	}

	watcher := watchDataFiles(env, eng, actions)
	if watcher != nil {
		defer watcher.Close()
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	render()

	for {
		select {
		case action := <-actions:
			action()
			render()

		case <-interrupt:
			return nil

		case event := <-keyboard.Events():
			switch {
			case event.Type == interaction.KeyArrowLeft:
				eng.Scroll(-containerWidth / 10)
			case event.Type == interaction.KeyArrowRight:
				eng.Scroll(containerWidth / 10)
			case event.Type == interaction.KeyArrowUp:
				eng.ZoomIn()
			case event.Type == interaction.KeyArrowDown:
				eng.ZoomOut()
			case event.Type == interaction.KeyEscape:
				return nil
			case event.Key == '+' || event.Key == '=':
				eng.ZoomIn()
			case event.Key == '-':
				eng.ZoomOut()
			case event.Key == 'n':
				eng.NavigateForward(nil)
			case event.Key == 'p':
				eng.NavigateBackward(nil)
			case event.Key == 'f':
				eng.AnimateToRange(start, end, 300*time.Millisecond, nil)
			case event.Key == 'q' || event.Key == 3:
				return nil
			}
			render()
		}
	}
}

// watchDataFiles reloads the locale and availability documents when
// they change on disk. Reloads run on the event loop via the action
// channel, so they never race the engine.
func watchDataFiles(env *environment, eng *engine.Engine, actions chan<- func()) *config.ReloadWatcher {
	localePath := env.cfg.LocaleFile
	if localeFile != "" {
		localePath = localeFile
	}
	availabilityPath := env.cfg.AvailabilityFile
	if availabilityFile != "" {
		availabilityPath = availabilityFile
	}
	if localePath == "" && availabilityPath == "" {
		return nil
	}
	localeAbs, _ := filepath.Abs(localePath)
	availabilityAbs, _ := filepath.Abs(availabilityPath)

	watcher, err := config.NewReloadWatcher(func(path string) {
		actions <- func() {
			switch path {
			case localeAbs:
				if locale, err := config.LoadLocale(path); err == nil {
					env.locale = locale
					eng.GridCalculator().SetLocale(locale)
					util.LogInfof("reloaded locale from %s", path)
				} else {
					util.LogWarnf("locale reload failed: %v", err)
				}
			case availabilityAbs:
				if availability, err := config.LoadAvailability(path); err == nil {
					env.availability = availability
					util.LogInfof("reloaded availability rules from %s", path)
				} else {
					util.LogWarnf("availability reload failed: %v", err)
				}
			}
		}
	}, localePath, availabilityPath)
	if err != nil {
		util.LogWarnf("file watching disabled: %v", err)
		return nil
	}
	return watcher
}
