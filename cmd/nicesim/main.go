// Command nicesim runs the nice!view screens on a host.
//
// The screens draw through the real Sharp memory LCD driver. With the default
// sim panel driver the SPI traffic goes to an emulated panel whose memory is
// saved as PNG files, shown in the terminal (-tui) or in a window (-window).
// With driver spi the same screens drive a real panel wired to the host:
//
//	Display    Raspberry Pi
//	GND        GND
//	VIN        3.3V
//	SCLK       GPIO11 (SPI0 CLK)
//	MOSI       GPIO10 (SPI0 MOSI)
//	CS         GPIO8 (active high, driven as a GPIO)
//	DISP       GPIO25 (optional)
//
// Events come from the config's script and, in the interactive modes, from
// the keyboard. See nicesim.yaml for an example config.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/nicekb/niceview/controller"
	"github.com/nicekb/niceview/event"
	"github.com/nicekb/niceview/internal/config"
	"github.com/nicekb/niceview/internal/lcdsim"
	"github.com/nicekb/niceview/internal/preview"
	"github.com/nicekb/niceview/internal/script"
	"github.com/nicekb/niceview/screen"
	"github.com/nicekb/niceview/sharpmem"
)

var (
	configPath = flag.String("config", "", "YAML config file (empty for defaults)")
	tuiMode    = flag.Bool("tui", false, "Show the panel in the terminal and publish key presses")
	windowMode = flag.Bool("window", false, "Show the panel in a window and publish key presses (cgo builds)")
	outDir     = flag.String("out", "", "Directory for PNG frames (overrides output.dir)")
)

func main() {
	flag.Parse()

	// --------------------
	// Load + validate config
	// --------------------

	cfg := &config.Config{}
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("config load failed: %v", err)
		}
	}
	if *outDir != "" {
		cfg.Output.Dir = *outDir
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}
	config.Normalize(cfg)

	interactive := *tuiMode || *windowMode
	if interactive && cfg.Panel.Driver != config.DriverSim {
		log.Fatalf("-tui and -window need panel driver %q", config.DriverSim)
	}

	// --------------------
	// Panel
	// --------------------

	dev, lcd, closePanel, err := openPanel(cfg.Panel)
	if err != nil {
		log.Fatalf("Failed to open panel: %v", err)
	}
	defer closePanel()
	log.Printf("Display initialized: %v", dev)

	if lcd != nil && cfg.Output.Dir != "" && !interactive {
		rec, err := preview.NewRecorder(cfg.Output.Dir, cfg.Output.Scale)
		if err != nil {
			log.Fatalf("Failed to create frame recorder: %v", err)
		}
		lcd.OnUpdate(func() {
			path, err := rec.Save(preview.Upright(lcd.Snapshot()))
			if err != nil {
				log.Printf("frame not saved: %v", err)
				return
			}
			log.Printf("frame %s", path)
		})
	}

	// --------------------
	// Bus + controller
	// --------------------

	bus := event.NewBus(cfg.Bus.Depth, cfg.Bus.Subscribers)
	sub, err := bus.Subscribe()
	if err != nil {
		log.Fatalf("Failed to subscribe: %v", err)
	}

	c, err := newController(cfg, dev, sub)
	if err != nil {
		log.Fatalf("Failed to start %s screen: %v", cfg.Role, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	done := make(chan error, 1)
	go func() {
		done <- controller.Run(ctx, c)
	}()

	// --------------------
	// Event sources
	// --------------------

	switch {
	case *tuiMode:
		go playScript(ctx, bus, cfg.Script)
		err = preview.RunTUI(lcd, bus)
	case *windowMode:
		go playScript(ctx, bus, cfg.Script)
		err = preview.RunWindow(lcd, bus, cfg.Output.Scale)
	default:
		err = script.Play(ctx, bus, cfg.Script)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("event source stopped: %v", err)
	}

	bus.Close()
	if err := <-done; err != nil && !errors.Is(err, event.ErrClosed) && !errors.Is(err, context.Canceled) {
		log.Fatalf("Screen failed: %v", err)
	}
	if n := sub.Lagged(); n > 0 {
		log.Printf("screen fell behind, %d events dropped", n)
	}
	if lcd != nil {
		st := lcd.Stats()
		log.Printf("%d transfers, %d lines written, %d clears", st.Transfers, st.LinesWritten, st.Clears)
	}
}

// openPanel returns the driver for the configured panel. lcd is the emulated
// panel behind it, or nil for a real one.
func openPanel(pc config.PanelConfig) (dev *sharpmem.Dev, lcd *lcdsim.LCD, closeFn func(), err error) {
	opts := &sharpmem.Opts{
		W:         pc.Width,
		H:         pc.Height,
		Frequency: physic.Frequency(pc.Hz) * physic.Hertz,
	}

	if pc.Driver != config.DriverSPI {
		lcd = lcdsim.New(pc.Width, pc.Height)
		dev, err = sharpmem.NewSPI(lcd, lcd.CS, opts)
		if err != nil {
			return nil, nil, nil, err
		}
		return dev, lcd, func() {}, nil
	}

	// Initialize periph.io
	if _, err := host.Init(); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize periph.io: %w", err)
	}

	// Open SPI bus
	p, err := spireg.Open(pc.SPI)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to open SPI bus: %w", err)
	}

	cs := gpioreg.ByName(pc.CS)
	if cs == nil {
		p.Close()
		return nil, nil, nil, fmt.Errorf("GPIO pin %s not found", pc.CS)
	}
	if pc.DISP != "" {
		disp := gpioreg.ByName(pc.DISP)
		if disp == nil {
			p.Close()
			return nil, nil, nil, fmt.Errorf("GPIO pin %s not found", pc.DISP)
		}
		opts.DISP = disp
	}

	dev, err = sharpmem.NewSPI(p, cs, opts)
	if err != nil {
		p.Close()
		return nil, nil, nil, err
	}
	return dev, nil, func() {
		if err := dev.Halt(); err != nil {
			log.Printf("halt: %v", err)
		}
		p.Close()
	}, nil
}

// newController builds the screen for the configured role and variant.
func newController(cfg *config.Config, dev *sharpmem.Dev, sub *event.Subscriber) (controller.Controller, error) {
	if cfg.Role == config.RolePeripheral {
		return screen.NewBlank(dev, sub)
	}

	switch cfg.Variant {
	case config.VariantLog:
		return screen.NewLog(dev, sub), nil
	default:
		st := screen.NewStatus(dev, sub)
		if err := st.Render(); err != nil {
			return nil, err
		}
		return st, nil
	}
}

func playScript(ctx context.Context, bus *event.Bus, steps []script.Step) {
	if err := script.Play(ctx, bus, steps); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("script stopped: %v", err)
	}
}
