package parser

import (
	"strconv"

	"github.com/kf7mix/aprsgo"
)

// parseStatus decodes a '>' status report: an optional DHM Zulu timestamp
// or a Maidenhead locator with symbol, then free text
func (p *Packet) parseStatus(body string) error {
	// ddhhmmz + text
	if m := aprsgo.CompiledRegexps.Get(`^(\d{6})z(.*)$`).FindStringSubmatch(body); m != nil {
		day, _ := strconv.Atoi(m[1][0:2])
		hour, _ := strconv.Atoi(m[1][2:4])
		minute, _ := strconv.Atoi(m[1][4:6])
		p.Timestamp = &Timestamp{Day: day, Hour: hour, Minute: minute, Zone: ZoneUTC}
		p.Status = m[2]
		return nil
	}

	// 6-char locator, symbol, a space, then status text
	if m := aprsgo.CompiledRegexps.Get(`^([A-Ra-r]{2}[0-9]{2}[A-Xa-x]{2})([\x21-\x7e])([\x21-\x7e]) (.*)$`).FindStringSubmatch(body); m != nil {
		p.position().Maidenhead = m[1]
		p.Symbol = m[2] + m[3]
		p.Status = m[4]
		return nil
	}

	// 4-char locator and symbol, nothing else
	if m := aprsgo.CompiledRegexps.Get(`^([A-Ra-r]{2}[0-9]{2})([\x21-\x7e])([\x21-\x7e])$`).FindStringSubmatch(body); m != nil {
		p.position().Maidenhead = m[1]
		p.Symbol = m[2] + m[3]
		return nil
	}

	p.Status = body
	return nil
}
