package aprsgo

// Name is the software name reported to APRS-IS servers
const Name = "aprsgo"

// Version is the software version reported to APRS-IS servers
const Version = "0.3.0"
