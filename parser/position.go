package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/kf7mix/aprsgo"
)

// parsePosition decodes the position body shared by the '!', '=', '@', '/'
// forms and by objects and items. Uncompressed bodies start with a latitude
// digit (or an ambiguity space), compressed ones with a symbol table byte.
func (p *Packet) parsePosition(body string) error {
	var rest string
	var err error

	if len(body) > 0 && (body[0] >= '0' && body[0] <= '9' || body[0] == ' ') {
		rest, err = p.parseUncompressed(body)
	} else {
		rest, err = p.parseCompressed(body)
	}
	if err != nil {
		return err
	}

	if p.isWeatherSymbol() {
		rest, err = p.parseWeatherBody(rest)
		if err != nil {
			return err
		}
		return p.finishComment(rest)
	}

	rest, err = p.parseDataExtensions(rest)
	if err != nil {
		return err
	}
	return p.finishComment(rest)
}

func (p *Packet) isWeatherSymbol() bool {
	return p.Symbol == "/_"
}

// parseUncompressed decodes the 19-byte DDMM.hhN/DDDMM.hhW form. Trailing
// spaces in the minute fields mark position ambiguity.
func (p *Packet) parseUncompressed(body string) (string, error) {
	if len(body) < 19 {
		return body, errAt(body, "Position is too short")
	}

	lat, latPrec, err := parseLatitude(body[:8])
	if err != nil {
		return body, errAt(body, "%s", err.Error())
	}

	symbolTable := body[8]

	lon, lonPrec, err := parseLongitude(body[9:18])
	if err != nil {
		return body, errAt(body[9:], "%s", err.Error())
	}

	symbolCode := body[18]

	p.Symbol = string(symbolTable) + string(symbolCode)

	pos := p.position()
	pos.Latitude = lat
	pos.Longitude = lon
	pos.LatPrecision = latPrec
	pos.LonPrecision = lonPrec

	return body[19:], nil
}

// ambiguityPrecision maps the index of the first space inside a DDMM.hh (or
// DDDMM.hh) minute group onto a precision tag. base is the index of the
// first minute digit.
func ambiguityPrecision(field string, base int) (Precision, bool) {
	idx := strings.IndexByte(field, ' ')
	if idx < 0 {
		return PrecisionHundredthMinute, true
	}

	switch idx - base {
	case 0:
		return PrecisionDegree, true
	case 1:
		return PrecisionTenthDegree, true
	case 3:
		return PrecisionMinute, true
	case 4:
		return PrecisionTenthMinute, true
	}
	return "", false
}

func parseLatitude(field string) (float64, Precision, error) {
	digits := field[:7]
	direction := field[7]

	prec, ok := ambiguityPrecision(digits, 2)
	if !ok {
		return 0, "", &decodeError{msg: "Invalid latitude ambiguity"}
	}
	digits = strings.ReplaceAll(digits, " ", "0")

	deg, err := strconv.Atoi(digits[0:2])
	if err != nil {
		return 0, "", &decodeError{msg: "Latitude degrees are not numeric"}
	}
	minutes, err := strconv.ParseFloat(digits[2:7], 64)
	if err != nil {
		return 0, "", &decodeError{msg: "Latitude minutes are not numeric"}
	}

	lat := float64(deg) + minutes/60.0

	switch direction {
	case 'N', 'n':
	case 'S', 's':
		lat = -lat
	default:
		return 0, "", &decodeError{msg: "Invalid latitude direction byte"}
	}

	if lat < -90 || lat > 90 {
		return 0, "", &decodeError{msg: "Latitude is out of range"}
	}

	return lat, prec, nil
}

func parseLongitude(field string) (float64, Precision, error) {
	digits := field[:8]
	direction := field[8]

	prec, ok := ambiguityPrecision(digits, 3)
	if !ok {
		return 0, "", &decodeError{msg: "Invalid longitude ambiguity"}
	}
	digits = strings.ReplaceAll(digits, " ", "0")

	deg, err := strconv.Atoi(digits[0:3])
	if err != nil {
		return 0, "", &decodeError{msg: "Longitude degrees are not numeric"}
	}
	minutes, err := strconv.ParseFloat(digits[3:8], 64)
	if err != nil {
		return 0, "", &decodeError{msg: "Longitude minutes are not numeric"}
	}

	lon := float64(deg) + minutes/60.0

	switch direction {
	case 'E', 'e':
	case 'W', 'w':
		lon = -lon
	default:
		return 0, "", &decodeError{msg: "Invalid longitude direction byte"}
	}

	if lon < -180 || lon > 180 {
		return 0, "", &decodeError{msg: "Longitude is out of range"}
	}

	return lon, prec, nil
}

// parseCompressed decodes the 13-byte base-91 position form
func (p *Packet) parseCompressed(body string) (string, error) {
	if len(body) < 13 {
		return body, errAt(body, "Invalid compressed position format")
	}

	symbolTable := body[0]
	symbolCode := body[9]

	base91Lat, err := aprsgo.ToDecimal(body[1:5])
	if err != nil {
		return body, errAt(body, "Invalid compressed latitude")
	}
	base91Lon, err := aprsgo.ToDecimal(body[5:9])
	if err != nil {
		return body, errAt(body[5:], "Invalid compressed longitude")
	}

	latitude := 90 - float64(base91Lat)/380926
	longitude := -180 + float64(base91Lon)/190463

	p.Symbol = string(symbolTable) + string(symbolCode)

	pos := p.position()
	pos.Latitude = latitude
	pos.Longitude = longitude

	c := body[10]
	s := body[11]
	ctype := int(body[12]) - 33

	if ctype&0x18 == 0x10 {
		// cs carries an altitude reading
		cs := (int(c)-33)*91 + (int(s) - 33)
		pos.Altitude = floatPtr(math.Pow(1.002, float64(cs)) * metersPerFoot)
	} else if c >= 33 && c <= 122 && c != ' ' {
		course := p.course()
		course.Direction = float64(int(c)-33) * 4
		course.Speed = (math.Pow(1.08, float64(int(s)-33)) - 1) * knotsToMetersPerSec
	} else if c == '{' {
		pos.Range = floatPtr(2 * math.Pow(1.08, float64(int(s)-33)) * metersPerMile)
	}

	return body[13:], nil
}

// parseObject decodes the ';' form: a 9-byte name, a state byte, then a
// timestamped position body
func (p *Packet) parseObject(body string) error {
	if len(body) < 10 {
		return errAt(body, "Invalid object format")
	}

	name := strings.TrimRight(body[:9], " ")
	state := body[9]

	switch state {
	case '*':
		p.Object = &Object{Name: name, Alive: true}
	case '_':
		p.Object = &Object{Name: name, Alive: false}
	default:
		return errAt(body[9:], "Invalid object state indicator %q", state)
	}

	return p.parseTimestampedPosition(body[10:])
}

// parseItem decodes the ')' form: a 3..9 byte name terminated by '!'
// (alive) or '_' (killed), then a position body
func (p *Packet) parseItem(body string) error {
	end := strings.IndexAny(body, "!_")
	if end < 3 || end > 9 {
		return errAt(body, "Invalid item format")
	}

	p.Item = &Item{
		Name:  strings.TrimRight(body[:end], " "),
		Alive: body[end] == '!',
	}

	return p.parsePosition(body[end+1:])
}
