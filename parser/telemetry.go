package parser

import (
	"strconv"
	"strings"

	"github.com/kf7mix/aprsgo"
)

// parseTelemetryReport decodes the 'T' form: "#" then a sequence counter
// (or MIC), up to five numeric channels, and a digital bit string
func (p *Packet) parseTelemetryReport(body string) error {
	if len(body) == 0 || body[0] != '#' {
		return errAt(body, "Invalid telemetry report format")
	}

	rest := body[1:]

	t := p.telemetry()

	if strings.HasPrefix(rest, "MIC") {
		rest = strings.TrimPrefix(rest[3:], ",")
	} else if m := aprsgo.CompiledRegexps.Get(`^(\d{1,5}),`).FindStringSubmatch(rest); m != nil {
		seq, _ := strconv.Atoi(m[1])
		t.SequenceCounter = intPtr(seq)
		rest = rest[len(m[0]):]
	} else {
		return errAt(rest, "Invalid telemetry sequence counter")
	}

	if rest == "" {
		return errAt(rest, "Telemetry report carries no values")
	}

	fields := strings.Split(rest, ",")
	digital := fields[len(fields)-1]
	fields = fields[:len(fields)-1]

	values := make([]float64, 0, 5)
	for _, f := range fields {
		if f == "" {
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return errAt(rest, "Telemetry value %q is not numeric", f)
		}
		if len(values) < 5 {
			values = append(values, v)
		}
	}
	t.Values = values

	// The digital field is a run of up to eight 0/1 bytes; anything after
	// the run is comment text
	n := 0
	for n < len(digital) && n < 8 && (digital[n] == '0' || digital[n] == '1') {
		n++
	}
	if n == 0 {
		return errAt(digital, "Telemetry digital value is not a bit string")
	}

	bits := make([]int, n)
	for i := 0; i < n; i++ {
		bits[i] = int(digital[i] - '0')
	}
	t.Bits = bits

	p.Comment = strings.Trim(digital[n:], " ")

	return nil
}

// parseCommentTelemetry extracts a |..| base-91 telemetry block out of a
// comment. The block is two bytes of sequence counter followed by up to
// five two-byte channels.
func (p *Packet) parseCommentTelemetry(text string) string {
	m := aprsgo.CompiledRegexps.Get(`^(.*?)\|([!-{]{4,12})\|(.*)$`).FindStringSubmatch(text)
	if m == nil || len(m[2])%2 != 0 {
		return text
	}

	pre, block, post := m[1], m[2], m[3]

	t := p.telemetry()

	seq, err := aprsgo.ToDecimal(block[0:2])
	if err != nil {
		return text
	}
	t.SequenceCounter = intPtr(seq)

	values := make([]float64, 0, (len(block)-2)/2)
	for i := 2; i+2 <= len(block); i += 2 {
		v, err := aprsgo.ToDecimal(block[i : i+2])
		if err != nil {
			return text
		}
		values = append(values, float64(v))
	}
	t.Values = values

	return pre + post
}
