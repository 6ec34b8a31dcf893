// Package calib loads per-vehicle kinematics calibration.
package calib

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	yaml "gopkg.in/yaml.v2"
)

// Geometry is the vehicle geometry required by the odometry
// estimator. Calibration files may carry additional tuning keys;
// they are ignored here.
type Geometry struct {
	// Baseline is the track width in meters.
	Baseline float64 `yaml:"baseline"`
	// Radius is the wheel radius in meters.
	Radius float64 `yaml:"radius"`
}

// DefaultDir is where calibration files live on the vehicle.
const DefaultDir = "/data/config/calibrations/kinematics"

// ErrNoCalibration indicates neither the vehicle calibration nor the
// default one exists. The caller must not proceed without geometry.
var ErrNoCalibration = errors.New("no calibration file found")

// Load reads the geometry for a vehicle from <dir>/<vehicle>.yaml,
// falling back to <dir>/default.yaml when the named file is absent.
func Load(dir, vehicle string) (*Geometry, error) {
	file := filepath.Join(dir, vehicle+".yaml")
	glog.Infof("looking for calibration %q", file)
	if _, err := os.Stat(file); err != nil {
		glog.Warningf("calibration not found: %q, using default instead", file)
		file = filepath.Join(dir, "default.yaml")
		if _, err := os.Stat(file); err != nil {
			return nil, ErrNoCalibration
		}
	}

	data, err := ioutil.ReadFile(file)
	if err != nil {
		return nil, err
	}
	var geom Geometry
	if err := yaml.Unmarshal(data, &geom); err != nil {
		return nil, fmt.Errorf("parse calibration %q: %v", file, err)
	}
	if geom.Baseline <= 0 || geom.Radius <= 0 {
		return nil, fmt.Errorf("calibration %q: baseline and radius must be positive", file)
	}
	glog.Infof("using calibration file %q: baseline=%v radius=%v", file, geom.Baseline, geom.Radius)
	return &geom, nil
}
