package parser

import (
	"strings"

	"github.com/kf7mix/aprsgo"
	"github.com/kf7mix/aprsgo/utils"
)

// Parse decodes a single APRS frame into a Packet. On failure the returned
// error is a *ParseError pointing at the byte where decoding stopped; no
// partial record is ever returned.
func Parse(packet string) (Packet, error) {
	p := &Packet{Raw: packet}

	if err := p.parse(packet); err != nil {
		pe := &ParseError{Raw: packet, Message: err.Error()}
		if de, ok := err.(*decodeError); ok && de.remainder != "" {
			pos := len(packet) - len(de.remainder) - 1
			if pos < 0 {
				pos = 0
			}
			pe.NearCharacterPosition = pos
		}
		return Packet{Raw: packet}, pe
	}

	return *p, nil
}

func (p *Packet) parse(packet string) error {
	if packet == "" {
		return errAt("", "Could not parse the FROM callsign")
	}

	body, err := p.parseHeader(packet)
	if err != nil {
		return err
	}

	if err := p.parseBody(body); err != nil {
		return err
	}

	return p.validateStrings()
}

// parseHeader splits sender, destination and the digipeater path off the
// frame and returns the information field
func (p *Packet) parseHeader(head string) (string, error) {
	fromCall, rest, ok := utils.SplitOnce(head, ">")
	if !ok {
		return "", errAt(head, "Could not parse the FROM callsign")
	}

	if !aprsgo.CompiledRegexps.Get(`(?i)^[a-z0-9]{1,9}(-[a-z0-9]{1,8})?$`).MatchString(fromCall) {
		return "", errAt(head, "Could not parse the FROM callsign")
	}

	// The destination runs to the first ',' (path follows) or ':' (no path)
	sep := strings.IndexAny(rest, ",:")
	if sep < 0 {
		return "", errAt(rest, "Could not parse the PATH")
	}

	toCall := rest[:sep]
	if !aprsgo.CompiledRegexps.Get(`(?i)^[a-z0-9\-]{1,12}\*?$`).MatchString(toCall) {
		return "", errAt(rest, "Could not parse the PATH")
	}

	p.From = fromCall
	p.To = toCall

	if rest[sep] == ':' {
		p.Path = []string{}
		return rest[sep+1:], nil
	}

	tail := rest[sep+1:]
	end := strings.Index(tail, ":")
	if end < 0 {
		return "", errAt(tail, "Could not parse the PATH")
	}

	pathStr := stripQConstruct(tail[:end])

	paths := strings.Split(pathStr, ",")
	i := 0
	for _, pa := range paths {
		if strings.TrimSpace(pa) != "" {
			paths[i] = pa
			i++
		}
	}
	paths = paths[:i]

	for _, pa := range paths {
		if !aprsgo.CompiledRegexps.Get(`(?i)^[a-z0-9\-]+\*?$`).MatchString(pa) {
			return "", errAt(tail, "Could not parse the PATH")
		}
	}

	p.Path = paths

	return tail[end+1:], nil
}

// stripQConstruct removes a server-appended ,qA?,SERVER tail from the path.
// Those tokens never travelled over radio.
func stripQConstruct(path string) string {
	re := aprsgo.CompiledRegexps.Get(`,qA[CXUoSrR],[0-9A-Z\-]{1,8}$`)
	return re.ReplaceAllString(path, "")
}

// parseBody dispatches on the data type identifier, the first byte of the
// information field
func (p *Packet) parseBody(body string) error {
	if body == "" {
		return errAt(body, "Missing data type identifier")
	}

	dtype := body[0]
	rest := body[1:]

	switch dtype {
	// Position, no timestamp
	case '!', '=':
		return p.parsePosition(rest)
	// Position with timestamp
	case '@', '/':
		return p.parseTimestampedPosition(rest)
	// Mic-E
	case '\'', '`', 0x1c, 0x1d:
		return p.parseMicE(p.To, rest)
	// Status report
	case '>':
		return p.parseStatus(rest)
	// Message, possibly a telemetry definition
	case ':':
		return p.parseMessage(rest)
	// Telemetry report
	case 'T':
		return p.parseTelemetryReport(rest)
	// Object report
	case ';':
		return p.parseObject(rest)
	// Item report
	case ')':
		return p.parseItem(rest)
	// Raw GPS sentence
	case '$':
		p.RawGPS = rest
		return nil
	// Positionless weather report
	case '_':
		return p.parsePositionlessWeather(rest)
	case '#', '%', '(', '*', ',', '-', '<', '?', '[':
		return errAt(body, "Unimplemented data type identifier %q", dtype)
	default:
		return errAt(body, "Data type identifier %q is not in spec / reserved", dtype)
	}
}

// parseTimestampedPosition handles the '@' and '/' forms: a 7-byte
// timestamp, then a regular position body
func (p *Packet) parseTimestampedPosition(body string) error {
	rest, err := p.parseTimestamp(body)
	if err != nil {
		return err
	}
	return p.parsePosition(rest)
}
