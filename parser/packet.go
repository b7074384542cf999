package parser

// Precision describes how much of a coordinate was actually transmitted.
// Trailing spaces in a position field widen the ambiguity box and lower the
// precision accordingly.
type Precision string

const (
	PrecisionHundredthMinute Precision = "hundredth_minute"
	PrecisionTenthMinute     Precision = "tenth_minute"
	PrecisionMinute          Precision = "minute"
	PrecisionTenthDegree     Precision = "tenth_degree"
	PrecisionDegree          Precision = "degree"
)

// TimeZone tells how a packet timestamp is to be read
type TimeZone string

const (
	ZoneUTC           TimeZone = "utc"
	ZoneLocalToSender TimeZone = "local_to_sender"
)

// Timestamp holds the fields a packet actually carried. Month and Day are 0
// when the format has none; Second is only meaningful when HasSecond is set.
type Timestamp struct {
	Month     int
	Day       int
	Hour      int
	Minute    int
	Second    int
	HasSecond bool
	Zone      TimeZone
}

// Position is a decoded station position
type Position struct {
	Latitude     float64
	Longitude    float64
	LatPrecision Precision
	LonPrecision Precision
	Altitude     *float64 // meters
	Maidenhead   string
	Range        *float64 // meters, pre-computed radio range
}

// Course is a decoded course/speed group, possibly with DF bearing data
type Course struct {
	Direction       float64  // degrees
	Speed           float64  // m/s
	Bearing         *float64 // degrees
	Range           *float64 // meters
	ReportQuality   string   // "useless", "manual" or "1".."8"
	BearingAccuracy string   // "useless" or "less_than_N_degrees"
}

// Antenna carries PHG/DFS/RNG data
type Antenna struct {
	Power           *float64 // watts
	Strength        *int     // S-points
	Height          *float64 // meters
	Gain            *float64 // dB
	Directivity     *float64 // degrees
	Omnidirectional bool
	Range           *float64 // meters
}

// Weather holds named measurements in SI units, keyed by measurement name
type Weather struct {
	Values        map[string]float64
	StormCategory string
	SoftwareType  string
	Unit          string
}

// Telemetry holds a telemetry report or the accumulated definition messages
type Telemetry struct {
	SequenceCounter *int
	Values          []float64
	Bits            []int
	Parm            []string
	Unit            []string
	Eqns            [][]float64
	ProjectTitle    string
	To              string
}

// Message is an addressed text message, ack or reject
type Message struct {
	Addressee string
	Message   string
	MessageNo string
}

// Object is a named object report
type Object struct {
	Name  string
	Alive bool
}

// Item is a named item report
type Item struct {
	Name  string
	Alive bool
}

// Packet is the parsed record. From, To and Path are always present on
// success; everything else is absent unless the packet carried it.
type Packet struct {
	Raw       string
	From      string
	To        string
	Path      []string
	Timestamp *Timestamp
	Symbol    string // symbol table identifier + symbol code
	Position  *Position
	Course    *Course
	Antenna   *Antenna
	Weather   *Weather
	Telemetry *Telemetry
	Message   *Message
	Status    string
	Device    string
	Object    *Object
	Item      *Item
	RawGPS    string
	Comment   string
}

// position returns the position sub-record, creating it on first use so
// decoders can merge fields without clobbering each other
func (p *Packet) position() *Position {
	if p.Position == nil {
		p.Position = &Position{
			LatPrecision: PrecisionHundredthMinute,
			LonPrecision: PrecisionHundredthMinute,
		}
	}
	return p.Position
}

// course returns the course sub-record, creating it on first use
func (p *Packet) course() *Course {
	if p.Course == nil {
		p.Course = &Course{}
	}
	return p.Course
}

// antenna returns the antenna sub-record, creating it on first use
func (p *Packet) antenna() *Antenna {
	if p.Antenna == nil {
		p.Antenna = &Antenna{}
	}
	return p.Antenna
}

// weather returns the weather sub-record, creating it on first use
func (p *Packet) weather() *Weather {
	if p.Weather == nil {
		p.Weather = &Weather{Values: make(map[string]float64)}
	}
	return p.Weather
}

// telemetry returns the telemetry sub-record, creating it on first use
func (p *Packet) telemetry() *Telemetry {
	if p.Telemetry == nil {
		p.Telemetry = &Telemetry{}
	}
	return p.Telemetry
}

func floatPtr(v float64) *float64 {
	return &v
}

func intPtr(v int) *int {
	return &v
}
