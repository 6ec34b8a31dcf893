// Package node wires the odometry estimator to its transport: wheel
// tick subscriptions in, transform publish and broadcast out.
package node

import (
	"context"
	"fmt"

	"github.com/golang/glog"

	"github.com/robotracks/odom.go/pkg/calib"
	"github.com/robotracks/odom.go/pkg/comm/mqtt"
	fx "github.com/robotracks/odom.go/pkg/framework"
	"github.com/robotracks/odom.go/pkg/msgs"
	"github.com/robotracks/odom.go/pkg/odometry"
	"github.com/robotracks/odom.go/pkg/viz"
)

// Topic name fragments under the vehicle namespace.
const (
	TickTopicSuffix      = "_wheel_encoder/tick"
	TransformTopicSuffix = "encoder_localization/transform"
	FrameTopicSuffix     = "tf"
)

// TickTopic returns the tick topic of one wheel of a vehicle.
func TickTopic(vehicle string, side odometry.Side) string {
	return fmt.Sprintf("%s/%s%s", vehicle, side, TickTopicSuffix)
}

// TransformTopic returns the transform publish topic of a vehicle.
func TransformTopic(vehicle string) string {
	return vehicle + "/" + TransformTopicSuffix
}

// FrameTopic returns the retained frame broadcast topic of a vehicle.
func FrameTopic(vehicle string) string {
	return vehicle + "/" + FrameTopicSuffix
}

// Node is the running odometry node.
type Node struct {
	Config    *Config
	Vehicle   string
	Geometry  *calib.Geometry
	Queue     *mqtt.Queue
	Pose      *odometry.PoseState
	Estimator *odometry.Estimator
	Publisher *odometry.Publisher
	Viz       *viz.Server
}

// NewNode creates the Node from config. Calibration is loaded here;
// without geometry the node must not come up.
func (c *Config) NewNode() (*Node, error) {
	vehicle, err := c.VehicleName()
	if err != nil {
		return nil, fmt.Errorf("resolve vehicle name: %v", err)
	}
	glog.Infof("using vehicle name %q", vehicle)

	geom, err := calib.Load(c.CalibDir, vehicle)
	if err != nil {
		return nil, err
	}

	opts, topicPrefix, err := mqtt.ClientOptionsFromURL(c.MQTTBrokerURL)
	if err != nil {
		return nil, err
	}
	if opts.ClientID == "" {
		opts.SetClientID("odom:" + vehicle)
	}

	n := &Node{
		Config:   c,
		Vehicle:  vehicle,
		Geometry: geom,
		Queue:    mqtt.NewQueue(opts, topicPrefix),
		Pose:     odometry.NewPoseState(),
	}
	n.Estimator = odometry.NewEstimator(geom, n.Pose)

	sinks := []odometry.TransformSink{
		n.publishSink(TransformTopic(vehicle)),
		n.frameSink(FrameTopic(vehicle)),
	}
	if c.VizAddr != "" {
		n.Viz = viz.NewServer(c.VizAddr)
		sinks = append(sinks, n.Viz)
	}
	n.Publisher = odometry.NewPublisher(n.Pose, sinks...)
	return n, nil
}

// MustNewNode creates the Node and fails on error.
func (c *Config) MustNewNode() *Node {
	n, err := c.NewNode()
	if err != nil {
		glog.Exitf("setup node: %v", err)
	}
	return n
}

// Name implements Named.
func (n *Node) Name() string {
	return "odom/" + n.Vehicle
}

// AddToLoop implements LoopAdder.
func (n *Node) AddToLoop(loop *fx.Loop) {
	loop.AddController(n.Publisher)
	loop.AddRunnable(n)
	if n.Viz != nil {
		loop.AddRunnable(n.Viz)
	}
}

// Run implements Runnable. It subscribes both wheel tick streams,
// connects the queue and holds it open until the context ends.
func (n *Node) Run(ctx context.Context) error {
	n.Queue.Sub(TickTopic(n.Vehicle, odometry.Left), n.tickHandler(odometry.Left))
	n.Queue.Sub(TickTopic(n.Vehicle, odometry.Right), n.tickHandler(odometry.Right))
	token := n.Queue.Connect()
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("connect %s: %v", n.Config.MQTTBrokerURL, err)
	}
	<-ctx.Done()
	n.Queue.Close()
	return nil
}

// tickHandler decodes tick payloads and feeds the estimator. Wheel
// events for left and right may be dispatched concurrently; the
// estimator serializes them.
func (n *Node) tickHandler(side odometry.Side) mqtt.Handler {
	return func(topic string, payload []byte) {
		msg, err := msgs.DecodeWheelTicks(payload)
		if err != nil {
			glog.Warningf("%s: bad tick payload: %v", topic, err)
			return
		}
		glog.V(2).Infof("%s: ticks=%d", topic, msg.Ticks)
		if err := n.Estimator.Apply(side, msg.Ticks, msg.Stamp.Time()); err != nil {
			// Only a mis-wired side tag can fail here. That is a
			// defect, not a runtime condition.
			glog.Fatalf("%s: %v", topic, err)
		}
	}
}

func (n *Node) publishSink(topic string) odometry.TransformSink {
	return odometry.TransformSinkFunc(func(msg *msgs.TransformStamped) error {
		data, err := msg.Encode()
		if err != nil {
			return err
		}
		n.Queue.Pub(topic, data)
		return nil
	})
}

// frameSink publishes retained so late-joining viewers immediately
// get the latest frame.
func (n *Node) frameSink(topic string) odometry.TransformSink {
	return odometry.TransformSinkFunc(func(msg *msgs.TransformStamped) error {
		data, err := msg.Encode()
		if err != nil {
			return err
		}
		n.Queue.PubWith(topic, data, 0, true)
		return nil
	})
}
