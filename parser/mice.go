package parser

import (
	"strings"

	"github.com/kf7mix/aprsgo"
)

// micEStatusStd maps the three message bits onto the standard status names
var micEStatusStd = map[string]string{
	"111": "Off Duty",
	"110": "En Route",
	"101": "In Service",
	"100": "Returning",
	"011": "Committed",
	"010": "Special",
	"001": "Priority",
	"000": "Emergency",
}

// micEStatusCustom maps the three message bits onto the custom status names
var micEStatusCustom = map[string]string{
	"111": "Custom-0",
	"110": "Custom-1",
	"101": "Custom-2",
	"100": "Custom-3",
	"011": "Custom-4",
	"010": "Custom-5",
	"001": "Custom-6",
	"000": "Custom Emergency",
}

// micEDigit is one decoded destination byte per the Mic-E destination
// address encoding table. The lat/long direction and offset capabilities
// only exist for the subset of bytes legal in positions 4..6.
type micEDigit struct {
	digit  byte // '0'..'9', or ' ' for an ambiguity position
	bit    int
	custom bool
	north  bool
	south  bool
	west   bool
	east   bool
	offset int // -1 when the byte carries no longitude offset
}

// decodeMicEDest translates one destination byte. The second return is
// false for bytes outside the encoding table.
func decodeMicEDest(c byte) (micEDigit, bool) {
	switch {
	case c >= '0' && c <= '9':
		return micEDigit{digit: c, bit: 0, south: true, east: true, offset: 0}, true
	case c >= 'A' && c <= 'J':
		return micEDigit{digit: c - 'A' + '0', bit: 1, custom: true, offset: -1}, true
	case c == 'K':
		return micEDigit{digit: ' ', bit: 1, custom: true, offset: -1}, true
	case c == 'L':
		return micEDigit{digit: ' ', bit: 0, south: true, east: true, offset: 0}, true
	case c >= 'P' && c <= 'Y':
		return micEDigit{digit: c - 'P' + '0', bit: 1, north: true, west: true, offset: 100}, true
	case c == 'Z':
		return micEDigit{digit: ' ', bit: 1, north: true, west: true, offset: 100}, true
	}
	return micEDigit{}, false
}

// parseMicE decodes a Mic-E packet: six latitude/status bytes hidden in the
// destination address, then longitude, speed and course packed into the
// first bytes of the information field.
func (p *Packet) parseMicE(dstCall string, body string) error {
	// The SSID does not take part in the encoding
	dst := strings.SplitN(dstCall, "-", 2)[0]

	if len(dst) != 6 {
		return errAt(body, "Mic-E destination address must be 6 bytes long")
	}
	if len(body) < 8 {
		return errAt(body, "Mic-E information field is too short")
	}

	digits := make([]micEDigit, 6)
	for i := 0; i < 6; i++ {
		d, ok := decodeMicEDest(dst[i])
		if !ok {
			return errAt(body, "Invalid Mic-E destination byte %q", dst[i])
		}
		digits[i] = d
	}

	if !digits[3].north && !digits[3].south {
		return errAt(body, "Invalid Mic-E destination: byte 4 has no N/S indicator")
	}
	if digits[4].offset < 0 {
		return errAt(body, "Invalid Mic-E destination: byte 5 has no longitude offset")
	}
	if !digits[5].west && !digits[5].east {
		return errAt(body, "Invalid Mic-E destination: byte 6 has no W/E indicator")
	}

	lat, prec, err := micELatitude(digits, body)
	if err != nil {
		return err
	}

	p.Status = micEStatus(digits)

	lon, err := micELongitude(digits, body)
	if err != nil {
		return err
	}

	// Speed and course from information bytes 4..6
	speed := float64(int(body[3]) - 28)
	if speed >= 80 {
		speed -= 80
	}
	dc := int(body[4]) - 28
	speed = speed*10 + float64(dc/10)
	if speed >= 800 {
		speed -= 800
	}

	course := float64((dc%10)*100 + int(body[5]) - 28)
	if course >= 400 {
		course -= 400
	}

	c := p.course()
	c.Direction = course
	c.Speed = speed * knotsToMetersPerSec

	// Symbol code precedes the table identifier on the wire
	p.Symbol = string(body[7]) + string(body[6])

	pos := p.position()
	pos.Latitude = lat
	pos.Longitude = lon
	pos.LatPrecision = prec
	pos.LonPrecision = prec

	rest := body[8:]

	rest = p.parseDeviceID(rest)

	// Optional base-91 altitude, "xxx}"
	if len(rest) >= 4 && rest[3] == '}' {
		if alt, err := aprsgo.ToDecimal(rest[:3]); err == nil {
			pos.Altitude = floatPtr(float64(alt - 10000))
			rest = rest[4:]
		}
	}

	return p.finishComment(rest)
}

// micELatitude assembles the latitude out of the six destination digits.
// Trailing space digits widen the ambiguity box.
func micELatitude(digits []micEDigit, remainder string) (float64, Precision, error) {
	raw := make([]byte, 6)
	for i, d := range digits {
		raw[i] = d.digit
	}

	// Spaces are only legal as a trailing run over the minute digits
	blanks := 0
	for i := 5; i >= 0 && raw[i] == ' '; i-- {
		blanks++
	}
	if strings.Count(string(raw), " ") != blanks || blanks > 4 {
		return 0, "", errAt(remainder, "Invalid Mic-E latitude ambiguity")
	}

	var prec Precision
	switch blanks {
	case 0:
		prec = PrecisionHundredthMinute
	case 1:
		prec = PrecisionTenthMinute
	case 2:
		prec = PrecisionMinute
	case 3:
		prec = PrecisionTenthDegree
	case 4:
		prec = PrecisionDegree
	}

	for i := range raw {
		if raw[i] == ' ' {
			raw[i] = '0'
		}
	}

	d := func(i int) float64 { return float64(raw[i] - '0') }
	lat := d(0)*10 + d(1) + (d(2)*10+d(3)+d(4)/10+d(5)/100)/60

	if digits[3].south {
		lat = -lat
	}

	if lat < -90 || lat > 90 {
		return 0, "", errAt(remainder, "Latitude is out of range")
	}

	return lat, prec, nil
}

// micEStatus resolves the three message bits against the standard or custom
// table. A destination mixing custom-capable and standard bytes has no
// defined status.
func micEStatus(digits []micEDigit) string {
	var bits strings.Builder
	customs := 0
	for i := 0; i < 3; i++ {
		if digits[i].bit == 1 {
			bits.WriteByte('1')
		} else {
			bits.WriteByte('0')
		}
		if digits[i].custom {
			customs++
		}
	}

	switch customs {
	case 3:
		return micEStatusCustom[bits.String()]
	case 0:
		return micEStatusStd[bits.String()]
	default:
		return "Unknown"
	}
}

// micELongitude decodes the longitude from information bytes 1..3
func micELongitude(digits []micEDigit, body string) (float64, error) {
	deg := float64(int(body[0]) - 28)
	deg += float64(digits[4].offset)
	if deg >= 180 && deg <= 199 {
		deg -= 100
	}

	minutes := float64(int(body[1]) - 28)
	if minutes >= 60 {
		minutes -= 60
	}

	hundredths := float64(int(body[2]) - 28)

	lon := deg + (minutes+hundredths/100)/60

	if digits[5].west {
		lon = -lon
	}

	if lon < -180 || lon > 180 {
		return 0, errAt(body, "Longitude is out of range")
	}

	return lon, nil
}
