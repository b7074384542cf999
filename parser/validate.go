package parser

import "unicode/utf8"

// validateStrings verifies that the user-visible text fields are
// well-formed Unicode. The rest of the record may carry arbitrary bytes.
func (p *Packet) validateStrings() error {
	checks := []struct {
		name  string
		value string
	}{
		{"from", p.From},
		{"to", p.To},
		{"symbol", p.Symbol},
		{"raw_gps", p.RawGPS},
		{"device", p.Device},
	}

	for _, c := range checks {
		if !utf8.ValidString(c.value) {
			return errAt("", "Field %s is not a valid string", c.name)
		}
	}

	for _, pa := range p.Path {
		if !utf8.ValidString(pa) {
			return errAt("", "Field path is not a valid string")
		}
	}

	if p.Weather != nil {
		if !utf8.ValidString(p.Weather.Unit) {
			return errAt("", "Field wx_unit is not a valid string")
		}
		if !utf8.ValidString(p.Weather.SoftwareType) {
			return errAt("", "Field software_type is not a valid string")
		}
	}

	return nil
}
