package parser

import (
	"strconv"
	"strings"

	"github.com/kf7mix/aprsgo"
)

// wxParam describes one single-letter weather parameter: the measurement
// name it stores, the value width, and the conversion into SI
type wxParam struct {
	name    string
	width   int
	convert func(float64) float64
}

func scale(factor float64) func(float64) float64 {
	return func(v float64) float64 { return v * factor }
}

var wxParams = map[byte]wxParam{
	'g': {"gust_speed", 3, scale(mphToMetersPerSec)},
	't': {"temperature", 3, func(v float64) float64 { return (v - 32) / 1.8 }},
	'r': {"rainfall_last_hour", 3, scale(0.01 * metersPerInch)},
	'p': {"rainfall_last_24_hours", 3, scale(0.01 * metersPerInch)},
	'P': {"rainfall_since_midnight", 3, scale(0.01 * metersPerInch)},
	'h': {"humidity", 2, scale(1)},
	'b': {"barometric_pressure", 5, scale(0.1)},
	'L': {"luminosity", 3, scale(1)},
	'l': {"luminosity", 3, func(v float64) float64 { return v + 1000 }},
	'c': {"wind_direction", 3, scale(1)},
	's': {"snowfall", 3, scale(metersPerInch)},
	'#': {"rain_counts", 3, scale(1)},
	'F': {"water_height", 3, scale(metersPerFoot)},
	'f': {"water_height", 3, scale(1)},
	'^': {"peak_wind_gust", 3, scale(knotsToMetersPerSec)},
	'>': {"hurricane_radius", 3, scale(metersPerNauticalMile)},
	'&': {"tropical_storm_radius", 3, scale(metersPerNauticalMile)},
	'%': {"gale_radius", 3, scale(metersPerNauticalMile)},
}

var wxStormCategories = map[string]string{
	"TS": "tropical_storm",
	"HC": "hurricane",
	"TD": "tropical_depression",
}

// wxSoftware maps the software type byte of the station tag
var wxSoftware = map[byte]string{
	'd': "APRSdos",
	'M': "MacAPRS",
	'P': "pocketAPRS",
	'S': "APRS+SA",
	'W': "WinAPRS",
	'X': "X-APRS",
}

// wxUnits is the known set of weather station idenfication tokens
var wxUnits = map[string]bool{
	"Dvs":  true,
	"HKT":  true,
	"PIC":  true,
	"RSW":  true,
	"U-II": true,
	"U2k":  true,
	"U5":   true,
}

// parseWeatherBody decodes the weather data following a position with the
// weather symbol. The leading ddd/ddd group is the wind.
func (p *Packet) parseWeatherBody(body string) (string, error) {
	wx := p.weather()

	if m := aprsgo.CompiledRegexps.Get(`^([0-9\. ]{3})/([0-9\. ]{3})`).FindStringSubmatch(body); m != nil {
		if v, ok := wxValue(m[1]); ok {
			wx.Values["wind_direction"] = v
		}
		if v, ok := wxValue(m[2]); ok {
			wx.Values["wind_speed"] = v * mphToMetersPerSec
		}
		body = body[7:]
	} else if p.Course != nil {
		// A course/speed extension parsed ahead of the weather data is the
		// wind group
		wx.Values["wind_direction"] = p.Course.Direction
		wx.Values["wind_speed"] = p.Course.Speed
		p.Course = nil
	}

	return p.parseWeatherData(body, false), nil
}

// parsePositionlessWeather decodes the '_' form: an 8-digit MDHM timestamp,
// then weather parameters where 'c' and 's' carry the wind
func (p *Packet) parsePositionlessWeather(body string) error {
	rest, err := p.parseTimestampMDHM(body)
	if err != nil {
		return err
	}

	rest = p.parseWeatherData(rest, true)

	return p.finishComment(rest)
}

// parseWeatherData runs the parameter loop. Unknown bytes stop the loop and
// everything left over is comment (or the trailing station tag).
func (p *Packet) parseWeatherData(body string, positionless bool) string {
	wx := p.weather()

loop:
	for body != "" {
		code := body[0]

		if code == '/' {
			if len(body) >= 3 {
				if cat, ok := wxStormCategories[body[1:3]]; ok {
					wx.StormCategory = cat
					body = body[3:]
					continue
				}
			}
			break loop
		}

		param, ok := wxParams[code]
		if !ok {
			break loop
		}

		if positionless && code == 's' {
			param = wxParam{"wind_speed", 3, scale(mphToMetersPerSec)}
		}

		width := param.width
		// Humidity and pressure stretch by one when another digit follows
		if (code == 'h' || code == 'b') && len(body) > 1+width && isDigitByte(body[1+width]) {
			width++
		}

		if len(body) < 1+width {
			break loop
		}

		raw := body[1 : 1+width]
		v, ok := wxValue(raw)
		if !ok {
			if !wxMissing(raw) {
				break loop
			}
			// All dots or spaces: the station has no such sensor
			body = body[1+width:]
			continue
		}

		wx.Values[param.name] = param.convert(v)
		body = body[1+width:]
	}

	return p.parseWeatherTail(body)
}

// parseWeatherTail consumes the 2..5 byte station/software tag left after
// the parameters: one software type byte, then the unit token
func (p *Packet) parseWeatherTail(body string) string {
	if len(body) < 2 || len(body) > 5 {
		return body
	}

	wx := p.weather()

	if name, ok := wxSoftware[body[0]]; ok {
		wx.SoftwareType = name
	} else {
		wx.SoftwareType = "Unknown '" + string(body[0]) + "'"
	}

	unit := body[1:]
	if wxUnits[unit] {
		wx.Unit = unit
	} else {
		wx.Unit = "Unknown '" + unit + "'"
	}

	return ""
}

// wxValue parses a parameter value. The second return is false when the
// field is missing (dots or spaces) or not numeric.
func wxValue(raw string) (float64, bool) {
	if wxMissing(raw) {
		return 0, false
	}
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if !(c >= '0' && c <= '9' || c == '.' || c == '-') {
			return 0, false
		}
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(raw, " ", "")), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// wxMissing reports whether a value field is all dots or all spaces
func wxMissing(raw string) bool {
	return strings.Trim(raw, ".") == "" || strings.Trim(raw, " ") == ""
}

func isDigitByte(c byte) bool {
	return c >= '0' && c <= '9'
}
