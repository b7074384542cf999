package parser

// Unit conversions into SI
const (
	metersPerFoot         = 0.3048
	metersPerMile         = 1609.344
	metersPerNauticalMile = 1852.0
	metersPerInch         = 0.0254
	knotsToMetersPerSec   = 1.852 / 3.6
	mphToMetersPerSec     = 0.44704
)
