// aprsdump connects to an APRS-IS server and prints every frame it parses.
// Frames the parser rejects are logged and skipped; real feeds always carry
// some of those.
package main

import (
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"github.com/kf7mix/aprsgo"
	"github.com/kf7mix/aprsgo/client"
	"github.com/kf7mix/aprsgo/parser"
)

type dumper struct {
	log *logrus.Logger
}

func (d *dumper) GotPacket(packet string, sequence int) {
	p, err := parser.Parse(packet)
	if err != nil {
		pe := err.(*parser.ParseError)
		d.log.WithFields(logrus.Fields{
			"seq":  sequence,
			"near": pe.NearCharacterPosition,
		}).Debug("unparseable frame: ", pe.Message)
		return
	}

	fields := logrus.Fields{
		"seq":  sequence,
		"from": p.From,
		"to":   p.To,
	}
	if p.Position != nil {
		fields["lat"] = p.Position.Latitude
		fields["lon"] = p.Position.Longitude
	}
	if p.Status != "" {
		fields["status"] = p.Status
	}
	if p.Device != "" {
		fields["device"] = p.Device
	}
	d.log.WithFields(fields).Info(p.Raw)
}

func (d *dumper) GotComment(comment string) {
	d.log.Debug("server: ", comment)
}

func (d *dumper) Disconnected(reason error) {
	d.log.Warn("disconnected: ", reason)
}

func main() {
	configPath := flag.String("config", "", "YAML config file")
	user := flag.String("user", "", "callsign to log in with")
	passcode := flag.String("passcode", "-1", "APRS-IS passcode")
	host := flag.String("host", client.DefaultHost, "APRS-IS server")
	port := flag.Int("port", client.DefaultPort, "APRS-IS port")
	filter := flag.String("filter", client.DefaultFilter, "APRS-IS filter")
	genPass := flag.Bool("gen-passcode", false, "print the passcode for --user and exit")
	verbose := flag.Bool("verbose", false, "debug logging")
	flag.Parse()

	log := logrus.New()
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if *genPass {
		if *user == "" {
			log.Fatal("--gen-passcode needs --user")
		}
		os.Stdout.WriteString(strconv.Itoa(aprsgo.Passcode(*user)) + "\n")
		return
	}

	d := &dumper{log: log}

	var c *client.Client
	if *configPath != "" {
		cfg, err := client.LoadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		c = client.NewFromConfig(cfg, d, client.WithLogger(aprsgo.NewLoggerWith(log)))
	} else {
		c = client.NewClient(*user, *passcode, d,
			client.WithHost(*host, *port),
			client.WithFilter(*filter),
			client.WithLogger(aprsgo.NewLoggerWith(log)),
		)
	}

	if err := c.Connect(); err != nil {
		log.Fatal(err)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	c.Close()
}
