package node

import (
	"flag"
	"os"

	"github.com/denisbrodbeck/machineid"

	"github.com/robotracks/odom.go/pkg/calib"
)

// Config provides the options to set up the odometry node.
type Config struct {
	// Vehicle is the vehicle name, used as the topic namespace and
	// the calibration file name. Defaults to the machine ID.
	Vehicle string
	// MQTTBrokerURL specifies the MQTT broker to use.
	// e.g. mqtt://host:port/topic-prefix
	MQTTBrokerURL string
	// CalibDir is the directory holding kinematics calibration files.
	CalibDir string
	// PublishHz is the transform publish rate.
	PublishHz float64
	// VizAddr, when non-empty, serves the websocket viewer stream.
	VizAddr string
}

var defaultConfig = Config{
	MQTTBrokerURL: "mqtt://localhost:1883/odom/",
	CalibDir:      calib.DefaultDir,
	PublishHz:     30,
}

func init() {
	if val := os.Getenv("ODOM_MQTT_URL"); val != "" {
		defaultConfig.MQTTBrokerURL = val
	}
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Vehicle, "vehicle", defaultConfig.Vehicle, "Vehicle name, defaults to the machine ID.")
	flag.StringVar(&defaultConfig.MQTTBrokerURL, "mqtt", defaultConfig.MQTTBrokerURL, "MQTT broker URL.")
	flag.StringVar(&defaultConfig.CalibDir, "calib-dir", defaultConfig.CalibDir, "Directory of kinematics calibration files.")
	flag.Float64Var(&defaultConfig.PublishHz, "rate", defaultConfig.PublishHz, "Transform publish rate (Hz).")
	flag.StringVar(&defaultConfig.VizAddr, "viz", defaultConfig.VizAddr, "Listen address of the websocket viewer, empty to disable.")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a copy of the default configuration.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// VehicleName resolves the vehicle name, falling back to machine ID.
func (c *Config) VehicleName() (string, error) {
	if c.Vehicle != "" {
		return c.Vehicle, nil
	}
	return machineid.ID()
}
