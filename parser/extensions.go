package parser

import (
	"math"
	"strconv"

	"github.com/kf7mix/aprsgo"
)

// parseDataExtensions tries the fixed-width extension groups that may
// directly follow a position: the 15-byte course/speed/bearing/NRQ group,
// the 7-byte course/speed group, and PHG, DFS and RNG
func (p *Packet) parseDataExtensions(body string) (string, error) {
	if m := aprsgo.CompiledRegexps.Get(`^(\d{3})/(\d{3})/(\d{3})/(\d{3})`).FindStringSubmatch(body); m != nil {
		return p.parseBearingNRQ(body, m)
	}

	if m := aprsgo.CompiledRegexps.Get(`^(\d{3})/(\d{3})`).FindStringSubmatch(body); m != nil {
		c := p.course()
		dir, _ := strconv.Atoi(m[1])
		spd, _ := strconv.Atoi(m[2])
		c.Direction = float64(dir)
		c.Speed = float64(spd) * knotsToMetersPerSec
		return body[7:], nil
	}

	if m := aprsgo.CompiledRegexps.Get(`^PHG(\d)(.)(\d)(\d)`).FindStringSubmatch(body); m != nil {
		a := p.antenna()
		power := float64(m[1][0] - '0')
		a.Power = floatPtr(power * power)

		height, err := extensionHeight(m[2][0])
		if err != nil {
			return body, errAt(body, "%s", err.Error())
		}
		a.Height = floatPtr(height)

		a.Gain = floatPtr(float64(m[3][0] - '0'))

		if err := setDirectivity(a, m[4][0]); err != nil {
			return body, errAt(body, "%s", err.Error())
		}

		return body[7:], nil
	}

	if m := aprsgo.CompiledRegexps.Get(`^DFS(\d)(.)(\d)(\d)`).FindStringSubmatch(body); m != nil {
		a := p.antenna()
		a.Strength = intPtr(int(m[1][0] - '0'))

		height, err := extensionHeight(m[2][0])
		if err != nil {
			return body, errAt(body, "%s", err.Error())
		}
		a.Height = floatPtr(height)

		a.Gain = floatPtr(float64(m[3][0] - '0'))

		if err := setDirectivity(a, m[4][0]); err != nil {
			return body, errAt(body, "%s", err.Error())
		}

		return body[7:], nil
	}

	if m := aprsgo.CompiledRegexps.Get(`^RNG(\d{4})`).FindStringSubmatch(body); m != nil {
		rng, _ := strconv.Atoi(m[1])
		p.antenna().Range = floatPtr(float64(rng) * metersPerMile)
		return body[7:], nil
	}

	return body, nil
}

// parseBearingNRQ decodes the 15-byte DF report: course, speed, bearing and
// the number/range/quality triple
func (p *Packet) parseBearingNRQ(body string, m []string) (string, error) {
	c := p.course()

	dir, _ := strconv.Atoi(m[1])
	spd, _ := strconv.Atoi(m[2])
	brg, _ := strconv.Atoi(m[3])

	c.Direction = float64(dir)
	c.Speed = float64(spd) * knotsToMetersPerSec
	c.Bearing = floatPtr(float64(brg))

	nrq := m[4]
	n := nrq[0] - '0'
	r := nrq[1] - '0'
	q := nrq[2] - '0'

	switch {
	case n == 0:
		c.ReportQuality = "useless"
	case n == 9:
		c.ReportQuality = "manual"
	default:
		c.ReportQuality = strconv.Itoa(int(n))
	}

	if q == 0 {
		c.BearingAccuracy = "useless"
	} else {
		degrees := int(math.Pow(2, float64(9-q))) * 2
		c.BearingAccuracy = "less_than_" + strconv.Itoa(degrees) + "_degrees"
	}

	c.Range = floatPtr(math.Pow(2, float64(r)) * metersPerMile)

	return body[15:], nil
}

// extensionHeight decodes the PHG/DFS height byte: 2^code times ten feet,
// where the code runs from '*' (far below a digit) up to 'B' for the very
// tall installations
func extensionHeight(code byte) (float64, error) {
	if code < '*' || code > 'B' {
		return 0, &decodeError{msg: "Unknown antenna height code"}
	}
	exp := float64(int(code) - '0')
	return math.Pow(2, exp) * 10 * metersPerFoot, nil
}

func setDirectivity(a *Antenna, code byte) error {
	d := int(code - '0')
	switch {
	case d == 0:
		a.Omnidirectional = true
	case d <= 8:
		a.Directivity = floatPtr(float64(45 * d))
	default:
		return &decodeError{msg: "Unknown antenna directivity code"}
	}
	return nil
}
