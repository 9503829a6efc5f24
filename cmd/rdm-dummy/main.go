// Command rdm-dummy runs a simulated RDM device.
//
// The device exposes one or more ports, each populated with dummy
// responders at consecutive UIDs. On start it prints the ports and the
// result of a full discovery on each, then either waits for a signal or
// opens an interactive shell for sending RDM requests and DMX frames.
//
// Usage:
//
//	rdm-dummy [flags]
//
// Flags:
//
//	-config string        YAML device file (overrides the port flags)
//	-name string          Device name (default "dummy")
//	-ports int            Number of ports (default 1)
//	-responders int       Responders per port (default 1)
//	-first-uid string     UID of the first responder (default "7a70:ffffff00")
//	-personality int      Initial personality of every responder
//	-delay duration       Delay before each response completes
//	-log-level string     Log level: debug, info, warn, error (default "info")
//	-protocol-log string  Append a CBOR protocol trace to this file
//	-interactive          Open the interactive shell (default true)
//
// Examples:
//
//	# Eight fixtures on one port
//	rdm-dummy -responders 8
//
//	# Two ports from a file, tracing to disk
//	rdm-dummy -config bench.yaml -protocol-log /tmp/bench.rlog
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rdm-protocol/rdm-go/cmd/rdm-dummy/interactive"
	"github.com/rdm-protocol/rdm-go/pkg/config"
	rdmlog "github.com/rdm-protocol/rdm-go/pkg/log"
	"github.com/rdm-protocol/rdm-go/pkg/port"
	"github.com/rdm-protocol/rdm-go/pkg/rdm"
)

// Flags holds the command line settings.
type Flags struct {
	ConfigFile  string
	Name        string
	Ports       int
	Responders  int
	FirstUID    string
	Personality uint
	Delay       time.Duration
	LogLevel    string
	ProtocolLog string
	Interactive bool
}

var flags Flags

func init() {
	flag.StringVar(&flags.ConfigFile, "config", "", "YAML device file (overrides the port flags)")
	flag.StringVar(&flags.Name, "name", config.DefaultDeviceName, "Device name")
	flag.IntVar(&flags.Ports, "ports", 1, "Number of ports")
	flag.IntVar(&flags.Responders, "responders", port.DefaultResponderCount, "Responders per port")
	flag.StringVar(&flags.FirstUID, "first-uid", "7a70:ffffff00", "UID of the first responder on each port")
	flag.UintVar(&flags.Personality, "personality", 0, "Initial personality of every responder (0 = default)")
	flag.DurationVar(&flags.Delay, "delay", 0, "Delay before each response completes")
	flag.StringVar(&flags.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.StringVar(&flags.ProtocolLog, "protocol-log", "", "Append a CBOR protocol trace to this file")
	flag.BoolVar(&flags.Interactive, "interactive", true, "Open the interactive shell")
}

func main() {
	flag.Parse()
	log.SetFlags(log.Ltime | log.Lmicroseconds)

	cfg, err := buildConfig(flags)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	var shell *interactive.Shell
	var logOut io.Writer = os.Stderr
	if flags.Interactive {
		shell, err = interactive.New()
		if err != nil {
			log.Fatalf("Failed to start shell: %v", err)
		}
		logOut = shell.Stderr()
		log.SetOutput(shell.Stdout())
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: cfg.LogLevel}))

	protocolLogger, closeTrace, err := openProtocolLogger(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to open protocol log: %v", err)
	}
	defer closeTrace()

	dev, err := buildDevice(cfg, logger, protocolLogger)
	if err != nil {
		log.Fatalf("Failed to create device: %v", err)
	}
	defer func() {
		if err := dev.Close(); err != nil {
			log.Printf("Error closing device: %v", err)
		}
	}()

	log.Printf("RDM dummy device %q", dev.Name())
	for _, p := range dev.Ports() {
		p.RunFullDiscovery(func(uids *rdm.UIDSet) {
			log.Printf("Port %d (%s): %d responders: %s", p.ID(), p.Description(), uids.Len(), uids)
		})
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigCh:
			log.Printf("Received signal: %v", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	if shell != nil {
		shell.Run(ctx, cancel, dev)
	} else {
		<-ctx.Done()
	}
	log.Println("Shutting down...")
}

// buildConfig merges the command line with an optional device file.
func buildConfig(f Flags) (config.Config, error) {
	if f.ConfigFile != "" {
		return config.Load(f.ConfigFile)
	}

	cfg := config.Default()
	cfg.Name = f.Name
	if err := cfg.LogLevel.UnmarshalText([]byte(f.LogLevel)); err != nil {
		return config.Config{}, err
	}
	cfg.ProtocolLog = f.ProtocolLog

	if f.Ports < 1 {
		return config.Config{}, fmt.Errorf("ports must be at least 1, got %d", f.Ports)
	}
	if f.Personality > 255 {
		return config.Config{}, fmt.Errorf("personality must be 0-255, got %d", f.Personality)
	}
	first, err := rdm.ParseUID(f.FirstUID)
	if err != nil {
		return config.Config{}, err
	}

	cfg.Ports = cfg.Ports[:0]
	for i := 0; i < f.Ports; i++ {
		pc := port.DefaultConfig()
		pc.ManufacturerID = first.ManufacturerID()
		pc.StartDeviceID = first.DeviceID()
		pc.ResponderCount = f.Responders
		pc.Personality = uint8(f.Personality)
		pc.ResponseDelay = f.Delay
		cfg.Ports = append(cfg.Ports, config.PortConfig{ID: uint(i), Config: pc})
	}
	return cfg, cfg.Validate()
}

// openProtocolLogger returns the trace sink for cfg. At debug level trace
// events are also echoed through logger.
func openProtocolLogger(cfg config.Config, logger *slog.Logger) (rdmlog.Logger, func(), error) {
	var sinks []rdmlog.Logger
	closeFn := func() {}

	if cfg.ProtocolLog != "" {
		fl, err := rdmlog.NewFileLogger(cfg.ProtocolLog)
		if err != nil {
			return nil, nil, err
		}
		sinks = append(sinks, fl)
		closeFn = func() { _ = fl.Close() }
	}
	if cfg.LogLevel <= slog.LevelDebug {
		sinks = append(sinks, rdmlog.NewSlogAdapter(logger))
	}

	switch len(sinks) {
	case 0:
		return nil, closeFn, nil
	case 1:
		return sinks[0], closeFn, nil
	default:
		return rdmlog.NewMultiLogger(sinks...), closeFn, nil
	}
}

func buildDevice(cfg config.Config, logger *slog.Logger, trace rdmlog.Logger) (*port.Device, error) {
	dev := port.NewDevice(cfg.Name)
	for _, pc := range cfg.Ports {
		pcfg := pc.Config
		pcfg.Logger = logger
		pcfg.ProtocolLogger = trace

		p, err := port.NewDummyPort(dev, pc.ID, pcfg)
		if err != nil {
			_ = dev.Close()
			return nil, fmt.Errorf("port %d: %w", pc.ID, err)
		}
		if err := dev.AddPort(p); err != nil {
			_ = p.Close()
			_ = dev.Close()
			return nil, err
		}
	}
	return dev, nil
}
