package main

//go-build: CGO_ENABLED=0

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/abiosoft/ishell"

	"github.com/robotracks/odom.go/pkg/calib"
	"github.com/robotracks/odom.go/pkg/comm/mqtt"
	"github.com/robotracks/odom.go/pkg/msgs"
	"github.com/robotracks/odom.go/pkg/node"
	"github.com/robotracks/odom.go/pkg/odometry"
)

var (
	mqttURL  = "mqtt://localhost:1883/odom/"
	vehicle  string
	calibDir = calib.DefaultDir
)

func init() {
	if val := os.Getenv("ODOM_MQTT_URL"); val != "" {
		mqttURL = val
	}
	flag.StringVar(&mqttURL, "mqtt", mqttURL, "MQTT broker URL.")
	flag.StringVar(&vehicle, "vehicle", vehicle, "Vehicle name.")
	flag.StringVar(&calibDir, "calib-dir", calibDir, "Directory of kinematics calibration files.")
}

func main() {
	flag.Parse()
	if vehicle == "" {
		log.Fatalln("-vehicle is required")
	}

	q, err := mqtt.NewQueueFromURL(mqttURL)
	if err != nil {
		log.Fatalln(err)
	}
	token := q.Connect()
	token.Wait()
	if err := token.Error(); err != nil {
		log.Fatalln(err)
	}
	defer q.Close()

	shell := ishell.New()
	shell.Println("odomcli - wheel odometry workbench")
	shell.SetPrompt(fmt.Sprintf("[%s] > ", vehicle))

	shell.AddCmd(&ishell.Cmd{
		Name: "watch",
		Help: "stream published transforms, press enter to stop",
		Func: func(c *ishell.Context) {
			sub := q.Sub(node.TransformTopic(vehicle), func(topic string, payload []byte) {
				msg, err := msgs.DecodeTransform(payload)
				if err != nil {
					c.Printf("bad transform payload: %v\n", err)
					return
				}
				c.Printf("%s->%s heading=%.4f rad (%.1f deg)\n",
					msg.FrameId, msg.ChildFrameId,
					msg.Heading, msg.Heading*180/math.Pi)
			})
			defer sub.Close()
			c.Println("watching, press enter to stop ...")
			c.ReadLine()
		},
	})

	shell.AddCmd(&ishell.Cmd{
		Name: "tick",
		Help: "tick <left|right> <count>: inject a synthetic wheel tick",
		Func: func(c *ishell.Context) {
			if len(c.Args) != 2 {
				c.Println("usage: tick <left|right> <count>")
				return
			}
			var side odometry.Side
			switch c.Args[0] {
			case "left":
				side = odometry.Left
			case "right":
				side = odometry.Right
			default:
				c.Printf("unknown wheel side %q\n", c.Args[0])
				return
			}
			count, err := strconv.ParseInt(c.Args[1], 10, 32)
			if err != nil {
				c.Printf("bad tick count: %v\n", err)
				return
			}
			msg := &msgs.WheelTicksStamped{
				Stamp:      msgs.StampFrom(time.Now()),
				Ticks:      int32(count),
				Resolution: odometry.EncoderResolution,
			}
			data, err := msg.Encode()
			if err != nil {
				c.Printf("encode: %v\n", err)
				return
			}
			q.Pub(node.TickTopic(vehicle, side), data)
		},
	})

	shell.AddCmd(&ishell.Cmd{
		Name: "calib",
		Help: "show the geometry loaded for the vehicle",
		Func: func(c *ishell.Context) {
			geom, err := calib.Load(calibDir, vehicle)
			if err != nil {
				c.Printf("load calibration: %v\n", err)
				return
			}
			c.Printf("baseline: %v m\nradius:   %v m\n", geom.Baseline, geom.Radius)
		},
	})

	shell.Run()
}
