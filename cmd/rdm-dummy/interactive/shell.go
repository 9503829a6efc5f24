// Package interactive provides the interactive shell of rdm-dummy.
package interactive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"github.com/rdm-protocol/rdm-go/pkg/port"
	"github.com/rdm-protocol/rdm-go/pkg/rdm"
)

// ControllerUID is the source UID of requests sent from the shell.
var ControllerUID = rdm.NewUID(rdm.OpenLightingESTACode, 0x00000001)

// DefaultTimeout bounds how long the shell waits for completions.
const DefaultTimeout = 2 * time.Second

// Shell is a readline driven console for a dummy device.
type Shell struct {
	rl      *readline.Instance
	out     io.Writer
	dev     *port.Device
	timeout time.Duration
	tn      uint8
}

// New creates a shell bound to the terminal.
func New() (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "rdm> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &Shell{rl: rl, out: rl.Stdout(), timeout: DefaultTimeout}, nil
}

// Stdout returns a writer that does not corrupt the prompt.
func (s *Shell) Stdout() io.Writer {
	return s.rl.Stdout()
}

// Stderr returns a writer that does not corrupt the prompt.
func (s *Shell) Stderr() io.Writer {
	return s.rl.Stderr()
}

// Run reads commands until quit, EOF or ctx is cancelled. cancel is
// called when the user leaves the shell.
func (s *Shell) Run(ctx context.Context, cancel context.CancelFunc, dev *port.Device) {
	defer s.rl.Close()
	s.dev = dev

	s.printHelp()
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			fmt.Fprintln(s.out, "Exiting...")
			cancel()
			return
		}
		if s.Exec(line) {
			fmt.Fprintln(s.out, "Exiting...")
			cancel()
			return
		}
	}
}

// Exec runs a single command line and reports whether the shell should
// exit.
func (s *Shell) Exec(line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp()
	case "ports", "p":
		s.cmdPorts()
	case "uids", "u":
		s.cmdUIDs(args)
	case "discover", "d":
		s.cmdDiscover(args)
	case "get", "g":
		s.cmdRequest(rdm.CommandClassGet, args)
	case "set", "s":
		s.cmdRequest(rdm.CommandClassSet, args)
	case "dmx":
		s.cmdDMX(args)
	case "quit", "exit", "q":
		return true
	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return false
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `
RDM Dummy Commands:
  Ports:
    ports                          - List ports
    uids [port]                    - List responder UIDs
    discover [port] [full|inc]     - Run discovery

  RDM:
    get <port> <uid> <pid> [hex]   - Send a GET request
    set <port> <uid> <pid> <hex>   - Send a SET request

  DMX:
    dmx <port> <v,v,...|hex>       - Write a DMX frame

  General:
    help                           - Show this help
    quit                           - Exit

  UIDs are written mmmm:dddddddd (ffff:ffffffff broadcasts).
  PIDs are names (device_label) or numbers (0x0082).`)
}

func (s *Shell) cmdPorts() {
	for _, p := range s.dev.Ports() {
		fmt.Fprintf(s.out, "  %d  %-12s %d responders\n", p.ID(), p.Description(), p.UIDs().Len())
	}
}

func (s *Shell) cmdUIDs(args []string) {
	ports, err := s.selectPorts(args)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	for _, p := range ports {
		fmt.Fprintf(s.out, "Port %d:\n", p.ID())
		for _, uid := range p.UIDs().UIDs() {
			fmt.Fprintf(s.out, "  %s\n", uid)
		}
	}
}

func (s *Shell) cmdDiscover(args []string) {
	incremental := false
	if n := len(args); n > 0 {
		switch strings.ToLower(args[n-1]) {
		case "inc", "incremental":
			incremental = true
			args = args[:n-1]
		case "full":
			args = args[:n-1]
		}
	}
	ports, err := s.selectPorts(args)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	for _, p := range ports {
		report := func(uids *rdm.UIDSet) {
			fmt.Fprintf(s.out, "Port %d: %d UIDs: %s\n", p.ID(), uids.Len(), uids)
		}
		if incremental {
			p.RunIncrementalDiscovery(report)
		} else {
			p.RunFullDiscovery(report)
		}
	}
}

func (s *Shell) cmdRequest(cc rdm.CommandClass, args []string) {
	ra, err := ParseRequestArgs(args)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	p, ok := s.dev.Port(ra.Port)
	if !ok {
		fmt.Fprintf(s.out, "Error: no port %d\n", ra.Port)
		return
	}

	s.tn++
	req, err := rdm.NewRequest(rdm.RequestHeader{
		Source:            ControllerUID,
		Destination:       ra.UID,
		TransactionNumber: s.tn,
		PortID:            uint8(ra.Port + 1),
		SubDevice:         rdm.RootDevice,
	}, cc, ra.PID, ra.Data)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}

	// A broadcast completes once per responder.
	want := 1
	if ra.UID.IsBroadcast() {
		want = p.UIDs().Len()
	}
	cb, results := rdm.NewResultChannel(max(want, 1))
	p.SendRDMRequest(req, cb)

	for _, r := range collect(results, want, s.timeout) {
		fmt.Fprintln(s.out, FormatResult(r))
	}
}

func (s *Shell) cmdDMX(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(s.out, "Usage: dmx <port> <v,v,...|hex>")
		return
	}
	id, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		fmt.Fprintf(s.out, "Error: invalid port %q\n", args[0])
		return
	}
	p, ok := s.dev.Port(uint(id))
	if !ok {
		fmt.Fprintf(s.out, "Error: no port %d\n", id)
		return
	}
	frame, err := ParseDMX(args[1])
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	if p.WriteDMX(frame, 0) {
		fmt.Fprintf(s.out, "Wrote %d slots to port %d\n", len(frame), id)
	}
}

func (s *Shell) selectPorts(args []string) ([]port.Port, error) {
	if len(args) == 0 {
		return s.dev.Ports(), nil
	}
	id, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid port %q", args[0])
	}
	p, ok := s.dev.Port(uint(id))
	if !ok {
		return nil, fmt.Errorf("no port %d", id)
	}
	return []port.Port{p}, nil
}

// collect waits for up to want results or until timeout passes without
// one arriving.
func collect(results <-chan rdm.Result, want int, timeout time.Duration) []rdm.Result {
	var out []rdm.Result
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	for len(out) < want {
		select {
		case r := <-results:
			out = append(out, r)
			timer.Reset(timeout)
		case <-timer.C:
			return out
		}
	}
	return out
}
