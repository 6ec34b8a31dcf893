package main

//go-build: CGO_ENABLED=0

import (
	"flag"
	"log"
	"math"
	"os"
	"strings"

	"github.com/robotracks/odom.go/pkg/comm/mqtt"
	"github.com/robotracks/odom.go/pkg/msgs"
)

var (
	mqttURL = "mqtt://localhost:1883/odom/"
)

func init() {
	if val := os.Getenv("ODOM_MQTT_URL"); val != "" {
		mqttURL = val
	}
	flag.StringVar(&mqttURL, "mqtt", mqttURL, "MQTT broker URL.")
}

func main() {
	flag.Parse()
	log.SetFlags(log.Lmicroseconds)

	q, err := mqtt.NewQueueFromURL(mqttURL)
	if err != nil {
		log.Fatalln(err)
	}

	q.Sub("#", mqtt.Handler(func(topic string, payload []byte) {
		switch {
		case strings.HasSuffix(topic, "/tick"):
			msg, err := msgs.DecodeWheelTicks(payload)
			if err != nil {
				log.Printf("%s: bad tick payload: %v", topic, err)
				return
			}
			log.Printf("%s: ticks=%d resolution=%d stamp=%s",
				topic, msg.Ticks, msg.Resolution, msg.Stamp.Time().Format("15:04:05.000"))
		case strings.HasSuffix(topic, "/transform"), strings.HasSuffix(topic, "/tf"):
			msg, err := msgs.DecodeTransform(payload)
			if err != nil {
				log.Printf("%s: bad transform payload: %v", topic, err)
				return
			}
			log.Printf("%s: %s->%s heading=%.4f rad (%.1f deg) stamp=%s",
				topic, msg.FrameId, msg.ChildFrameId,
				msg.Heading, msg.Heading*180/math.Pi,
				msg.Stamp.Time().Format("15:04:05.000"))
		default:
			log.Printf("%s: %d bytes", topic, len(payload))
		}
	}))

	token := q.Connect()
	token.Wait()
	if err := token.Error(); err != nil {
		log.Fatalln(err)
	}
	<-(chan struct{})(nil)
}
