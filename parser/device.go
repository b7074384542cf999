package parser

// Mic-E radios tag the start and end of the comment field with short byte
// signatures. Fingerprinting is best effort: no match leaves the device
// field absent.

var micEDeviceBacktick = map[string]string{
	"_ ": "Yaesu VX-8",
	"_=": "Yaesu FTM-350",
	"_#": "Yaesu VX-8G",
	"_$": "Yaesu FT1D",
	"_%": "Yaesu FTM-400DR",
	"_)": "Yaesu FTM-100D",
	"_(": "Yaesu FT2D",
	"_0": "Yaesu FT3D",
	"_3": "Yaesu FT5D",
	"_1": "Yaesu FTM-300D",
	" X": "AP510",
	"(5": "Anytone D578UV",
}

var micEDeviceQuote = map[string]string{
	"(8": "Anytone D878UV",
	"|3": "Byonics TinyTrack3",
	"|4": "Byonics TinyTrack5",
	":4": "P4dragon DR-7400",
	":8": "P4dragon DR-7800",
}

// parseDeviceID identifies the sending radio from the comment signature and
// strips the trailing signature bytes where one matched
func (p *Packet) parseDeviceID(body string) string {
	if body == "" || body[0] == ' ' {
		p.Device = "Original Mic-E"
		return body
	}

	switch body[0] {
	case '>':
		switch body[len(body)-1] {
		case '=':
			p.Device = "Kenwood TH-D72"
			return body[:len(body)-1]
		case '^':
			p.Device = "Kenwood TH-D74"
			return body[:len(body)-1]
		default:
			p.Device = "Kenwood TH-D7A"
			return body
		}
	case ']':
		if body[len(body)-1] == '=' {
			p.Device = "Kenwood TM-D710"
			return body[:len(body)-1]
		}
		p.Device = "Kenwood TM-D700"
		return body
	case '`':
		if len(body) >= 3 {
			if name, ok := micEDeviceBacktick[body[len(body)-2:]]; ok {
				p.Device = name
				return body[:len(body)-2]
			}
		}
	case '\'':
		if len(body) >= 3 {
			if name, ok := micEDeviceQuote[body[len(body)-2:]]; ok {
				p.Device = name
				return body[:len(body)-2]
			}
		}
	}

	return body
}
