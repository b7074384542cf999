package parser

import (
	"strconv"

	"github.com/kf7mix/aprsgo/utils"
)

// parseTimestamp consumes a 6-digit timestamp plus its format indicator.
// 'h' selects HMS Zulu, '/' local DHM; everything else, 'z' included, is
// read as Zulu DHM since real feeds carry all sorts of indicator bytes.
func (p *Packet) parseTimestamp(body string) (string, error) {
	if len(body) < 7 {
		return "", errAt(body, "Timestamp is too short")
	}

	digits := body[:6]
	indicator := body[6]

	if !utils.IsDigit(digits) {
		return "", errAt(body, "Timestamp is not numeric")
	}

	a, _ := strconv.Atoi(digits[0:2])
	b, _ := strconv.Atoi(digits[2:4])
	c, _ := strconv.Atoi(digits[4:6])

	switch indicator {
	case 'h':
		p.Timestamp = &Timestamp{Hour: a, Minute: b, Second: c, HasSecond: true, Zone: ZoneUTC}
	case '/':
		p.Timestamp = &Timestamp{Day: a, Hour: b, Minute: c, Zone: ZoneLocalToSender}
	default:
		p.Timestamp = &Timestamp{Day: a, Hour: b, Minute: c, Zone: ZoneUTC}
	}

	return body[7:], nil
}

// parseTimestampMDHM consumes the 8-digit month/day/hour/minute timestamp
// that opens a positionless weather report
func (p *Packet) parseTimestampMDHM(body string) (string, error) {
	if len(body) < 8 {
		return "", errAt(body, "Timestamp is too short")
	}

	digits := body[:8]
	if !utils.IsDigit(digits) {
		return "", errAt(body, "Timestamp is not numeric")
	}

	month, _ := strconv.Atoi(digits[0:2])
	day, _ := strconv.Atoi(digits[2:4])
	hour, _ := strconv.Atoi(digits[4:6])
	minute, _ := strconv.Atoi(digits[6:8])

	p.Timestamp = &Timestamp{Month: month, Day: day, Hour: hour, Minute: minute, Zone: ZoneUTC}

	return body[8:], nil
}
