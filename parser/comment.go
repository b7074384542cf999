package parser

import (
	"strconv"
	"strings"

	"github.com/kf7mix/aprsgo"
)

// finishComment applies the comment post-processing stages to whatever is
// left after a sub-parser: altitude extraction, base-91 telemetry, DAO
// stripping, and trimming. An empty comment is normalized to absent.
func (p *Packet) finishComment(body string) error {
	body = p.parseCommentAltitude(body)
	body = p.parseCommentTelemetry(body)
	body = p.parseDAO(body)

	p.Comment = strings.Trim(body, " ")

	return nil
}

// parseCommentAltitude reads an A=dddddd altitude out of the comment. The
// text stays in the comment.
func (p *Packet) parseCommentAltitude(body string) string {
	m := aprsgo.CompiledRegexps.Get(`A=(\-\d{5}|\d{6})`).FindStringSubmatch(body)
	if m == nil {
		return body
	}

	feet, _ := strconv.Atoi(m[1])
	p.position().Altitude = floatPtr(float64(feet) * metersPerFoot)

	return body
}

// parseDAO strips a !DAO! datum block from the comment. Its contents are
// recognized but not interpreted.
func (p *Packet) parseDAO(body string) string {
	m := aprsgo.CompiledRegexps.Get(`^(.*?)\!([\x21-\x7b])([\x20-\x7b]{2})\!(.*)$`).FindStringSubmatch(body)
	if m == nil {
		return body
	}

	return m[1] + m[4]
}
