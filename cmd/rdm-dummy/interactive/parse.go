package interactive

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/rdm-protocol/rdm-go/pkg/rdm"
)

// RequestArgs are the operands of the get and set commands.
type RequestArgs struct {
	Port uint
	UID  rdm.UID
	PID  rdm.PID
	Data []byte
}

// ParseRequestArgs parses "<port> <uid> <pid> [hex]".
func ParseRequestArgs(args []string) (RequestArgs, error) {
	if len(args) < 3 || len(args) > 4 {
		return RequestArgs{}, errors.New("usage: <port> <uid> <pid> [hex]")
	}
	var ra RequestArgs

	id, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return RequestArgs{}, fmt.Errorf("invalid port %q", args[0])
	}
	ra.Port = uint(id)

	if ra.UID, err = rdm.ParseUID(args[1]); err != nil {
		return RequestArgs{}, err
	}
	if ra.PID, err = rdm.ParsePID(args[2]); err != nil {
		return RequestArgs{}, err
	}
	if len(args) == 4 {
		if ra.Data, err = parseHex(args[3]); err != nil {
			return RequestArgs{}, err
		}
	}
	return ra, nil
}

// ParseDMX parses a frame written either as comma separated decimal slot
// values ("255,0,128") or as a hex string ("ff0080").
func ParseDMX(s string) ([]byte, error) {
	var frame []byte
	if strings.Contains(s, ",") {
		for _, f := range strings.Split(s, ",") {
			v, err := strconv.ParseUint(strings.TrimSpace(f), 10, 8)
			if err != nil {
				return nil, fmt.Errorf("invalid slot value %q", f)
			}
			frame = append(frame, byte(v))
		}
	} else {
		var err error
		if frame, err = parseHex(s); err != nil {
			return nil, err
		}
	}
	if len(frame) > 512 {
		return nil, fmt.Errorf("frame has %d slots, at most 512 allowed", len(frame))
	}
	return frame, nil
}

func parseHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex data %q", s)
	}
	return data, nil
}

// FormatResult renders a completion for the console.
func FormatResult(r rdm.Result) string {
	if r.Response == nil {
		return r.Code.String()
	}
	resp := r.Response
	var b strings.Builder
	fmt.Fprintf(&b, "%s from %s: %s", r.Code, resp.Source, resp.ResponseType)
	if reason, ok := resp.NackReason(); ok {
		fmt.Fprintf(&b, " (%s)", reason)
		return b.String()
	}
	if len(resp.ParamData) > 0 {
		fmt.Fprintf(&b, " %d bytes: %s", len(resp.ParamData), hex.EncodeToString(resp.ParamData))
		if isText(resp.ParamData) {
			fmt.Fprintf(&b, " %q", resp.ParamData)
		}
	}
	return b.String()
}

func isText(data []byte) bool {
	for _, c := range data {
		if c > unicode.MaxASCII || !unicode.IsPrint(rune(c)) {
			return false
		}
	}
	return true
}
