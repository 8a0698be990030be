package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"

	"github.com/coreman2200/funtimes-diceroll/internal/board"
	"github.com/coreman2200/funtimes-diceroll/internal/config"
	"github.com/coreman2200/funtimes-diceroll/internal/dice"
	"github.com/coreman2200/funtimes-diceroll/internal/input"
	"github.com/coreman2200/funtimes-diceroll/internal/led"
	"github.com/coreman2200/funtimes-diceroll/internal/model"
	"github.com/coreman2200/funtimes-diceroll/internal/selftest"
	"github.com/coreman2200/funtimes-diceroll/internal/sound"
)

func main() {
	// ---- Flags (config.yaml can override most) ----
	var (
		driver     = flag.String("driver", led.Sim, "driver: spi | console | sim")
		pixels     = flag.Int("pixels", 10, "LEDs on the strip (at least 10)")
		brightness = flag.Float64("brightness", 0.8, "global brightness 0..1")
		fps        = flag.Int("fps", 30, "animation frames per second")
		spiDev     = flag.String("spi", "", "SPI port name, empty for the first one")
		buttonA    = flag.String("button-a", "", "GPIO for button A; empty reads stdin")
		buttonB    = flag.String("button-b", "", "GPIO for button B; empty reads stdin")
		buzzerPin  = flag.String("buzzer", "", "PWM GPIO for the piezo; empty logs cues")
		seed       = flag.Int64("seed", 0, "random seed, 0 seeds from the clock")
		configPath = flag.String("config", "config.yaml", "path to config.yaml")
		selfTest   = flag.Bool("selftest", false, "sweep the strip before starting")
		debug      = flag.Bool("debug", false, "log every frame")
	)
	flag.Parse()

	// ---- Logging ----
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	// ---- Effective config: flags, then config.yaml where set ----
	cfg := &config.Config{
		Driver:     *driver,
		Pixels:     *pixels,
		Brightness: *brightness,
		FPS:        *fps,
		Seed:       *seed,
		SPI:        config.SPI{Dev: *spiDev},
		Buttons:    config.Buttons{A: *buttonA, B: *buttonB, DebounceMs: int(input.DFLT_DEBOUNCE / time.Millisecond)},
		Buzzer:     config.Buzzer{Pin: *buzzerPin},
	}
	if c, err := config.Load(*configPath); err != nil {
		log.Warn().Err(err).Str("path", *configPath).Msg("config load failed; proceeding with flags")
	} else {
		cfg.Merge(c)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	if _, err := host.Init(); err != nil {
		log.Fatal().Err(err).Msg("periph host init failed")
	}

	// ---- Strip ----
	out, err := led.Open(led.Options{
		Driver: cfg.Driver,
		Pixels: cfg.Pixels,
		SPIDev: cfg.SPI.Dev,
		Freq:   physic.Frequency(cfg.SPI.SpeedHz) * physic.Hertz,
	})
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Driver).Msg("led output failed")
	}
	defer out.Close()

	strip, err := model.NewStrip(cfg.Pixels, out)
	if err != nil {
		log.Fatal().Err(err).Msg("strip")
	}
	strip.Brightness = cfg.Brightness
	defer func() {
		if err := strip.Clear(); err != nil {
			log.Warn().Err(err).Msg("strip clear failed")
		}
	}()

	// ---- Sound ----
	var speaker sound.Player = &sound.Logger{}
	if cfg.Buzzer.Pin != "" {
		if p := gpioreg.ByName(cfg.Buzzer.Pin); p != nil {
			speaker = sound.NewBuzzer(p)
		} else {
			log.Warn().Str("pin", cfg.Buzzer.Pin).Msg("buzzer pin not found; logging cues")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// ---- Game ----
	game, err := dice.New(board.New(strip, cfg.FPS), speaker, dice.NewRandom(cfg.Seed))
	if err != nil {
		log.Fatal().Err(err).Msg("game")
	}

	if *selfTest {
		log.Info().Msg("self test")
		if err := selftest.Run(ctx, strip, 80*time.Millisecond,
			selftest.Plan{Kind: selftest.RGBChannels},
			selftest.Plan{Kind: selftest.IndexSweep}); err != nil && ctx.Err() == nil {
			log.Fatal().Err(err).Msg("self test failed")
		}
	}

	if err := game.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("start-up color failed")
	}

	// ---- Input ----
	events := clicks(ctx, cfg.Buttons)

	d := input.NewDispatcher()
	d.Handle(input.A, game.PressA)
	d.Handle(input.B, game.PressB)

	log.Info().
		Str("driver", out.Kind).
		Int("pixels", cfg.Pixels).
		Msg("ready")
	if err := d.Run(ctx, events); err != nil {
		log.Fatal().Err(err).Msg("handler failed")
	}
	log.Info().Msg("shutting down")
}

// clicks wires GPIO buttons when both pins are configured and found,
// otherwise reads "a"/"b" lines from stdin.
func clicks(ctx context.Context, b config.Buttons) <-chan input.Event {
	debounce := time.Duration(b.DebounceMs) * time.Millisecond
	if b.A != "" && b.B != "" {
		pa, pb := gpioreg.ByName(b.A), gpioreg.ByName(b.B)
		if pa != nil && pb != nil {
			ea, errA := input.WatchPin(ctx, input.A, pa, debounce)
			eb, errB := input.WatchPin(ctx, input.B, pb, debounce)
			if errA == nil && errB == nil {
				return input.Merge(ctx, ea, eb)
			}
			log.Warn().AnErr("a", errA).AnErr("b", errB).Msg("button setup failed; reading stdin")
		} else {
			log.Warn().Str("a", b.A).Str("b", b.B).Msg("button pins not found; reading stdin")
		}
	}
	log.Info().Msg("type a or b and press enter to click")
	return input.Keys(ctx, os.Stdin)
}
