package parser

import (
	"strconv"
	"strings"

	"github.com/kf7mix/aprsgo"
)

// parseMessage decodes the ':' form: a 9-byte addressee, ':', then the
// message body. Messages a station addresses to itself may carry telemetry
// definitions instead of text.
func (p *Packet) parseMessage(body string) error {
	if len(body) < 10 || body[9] != ':' {
		return errAt(body, "Invalid message format")
	}

	addressee := strings.TrimRight(body[:9], " ")
	text := body[10:]

	if addressee == strings.TrimSpace(p.From) {
		done, err := p.parseTelemetryDefinition(addressee, text)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}

	msg := &Message{Addressee: addressee}
	p.Message = msg

	// ack/rej with a message number
	if m := aprsgo.CompiledRegexps.Get(`^(ack|rej)([A-Za-z0-9]{1,5})$`).FindStringSubmatch(text); m != nil {
		msg.Message = m[1]
		msg.MessageNo = m[2]
		return nil
	}

	// text{id — message numbers are opaque, real feeds use alphanumerics
	if m := aprsgo.CompiledRegexps.Get(`^(.*?)\{([A-Za-z0-9]+)`).FindStringSubmatch(text); m != nil {
		msg.Message = m[1]
		msg.MessageNo = m[2]
		return nil
	}

	msg.Message = text
	return nil
}

// parseTelemetryDefinition handles the PARM/UNIT/EQNS/BITS definition
// messages. Returns true when the body was one of them.
func (p *Packet) parseTelemetryDefinition(addressee string, body string) (bool, error) {
	m := aprsgo.CompiledRegexps.Get(`^(PARM|UNIT|EQNS|BITS)\.(.*)$`).FindStringSubmatch(body)
	if m == nil {
		return false, nil
	}

	form, rest := m[1], m[2]

	t := p.telemetry()
	t.To = addressee

	switch form {
	case "PARM":
		t.Parm = splitDefinitionNames(rest)
	case "UNIT":
		t.Unit = splitDefinitionNames(rest)
	case "EQNS":
		eqns, err := parseEqns(rest)
		if err != nil {
			return false, err
		}
		t.Eqns = eqns
	case "BITS":
		bm := aprsgo.CompiledRegexps.Get(`^([01]+),?(.*)$`).FindStringSubmatch(strings.TrimRight(rest, " "))
		if bm == nil {
			return false, errAt(rest, "Invalid BITS telemetry definition")
		}
		bits := make([]int, 0, len(bm[1]))
		for i := 0; i < len(bm[1]); i++ {
			bits = append(bits, int(bm[1][i]-'0'))
		}
		t.Bits = bits
		t.ProjectTitle = strings.Trim(bm[2], " ")
	}

	return true, nil
}

func splitDefinitionNames(body string) []string {
	return strings.Split(strings.TrimRight(body, " "), ",")
}

// parseEqns reads the first 15 comma-separated coefficients and groups them
// into a,b,c triples, truncating to a whole number of triples
func parseEqns(body string) ([][]float64, error) {
	fields := strings.Split(strings.TrimRight(body, " "), ",")
	if len(fields) > 15 {
		fields = fields[:15]
	}

	values := make([]float64, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			values = append(values, 0)
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, errAt(body, "EQNS coefficient %q is not numeric", f)
		}
		values = append(values, v)
	}

	values = values[:len(values)/3*3]

	eqns := make([][]float64, 0, len(values)/3)
	for i := 0; i+3 <= len(values); i += 3 {
		eqns = append(eqns, values[i:i+3])
	}

	return eqns, nil
}
