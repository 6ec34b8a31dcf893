package calib

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeCalib(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, name+".yaml"), []byte(content), 0644))
}

func tempDir(t *testing.T) (string, func()) {
	t.Helper()
	dir, err := ioutil.TempDir("", "calib")
	require.NoError(t, err)
	return dir, func() { os.RemoveAll(dir) }
}

func TestLoadNamedVehicle(t *testing.T) {
	dir, cleanup := tempDir(t)
	defer cleanup()
	writeCalib(t, dir, "duckie7", "baseline: 0.1\nradius: 0.02\n")
	writeCalib(t, dir, "default", "baseline: 0.08\nradius: 0.025\n")

	geom, err := Load(dir, "duckie7")
	require.NoError(t, err)
	require.Equal(t, 0.1, geom.Baseline)
	require.Equal(t, 0.02, geom.Radius)
}

func TestLoadFallbackDefault(t *testing.T) {
	dir, cleanup := tempDir(t)
	defer cleanup()
	writeCalib(t, dir, "default", "baseline: 0.08\nradius: 0.025\n")

	geom, err := Load(dir, "duckie7")
	require.NoError(t, err)
	require.Equal(t, 0.08, geom.Baseline)
	require.Equal(t, 0.025, geom.Radius)
}

func TestLoadMissingBoth(t *testing.T) {
	dir, cleanup := tempDir(t)
	defer cleanup()
	_, err := Load(dir, "duckie7")
	require.Equal(t, ErrNoCalibration, err)
}

func TestLoadIgnoresExtraKeys(t *testing.T) {
	dir, cleanup := tempDir(t)
	defer cleanup()
	writeCalib(t, dir, "duckie7",
		"calibration_time: 2020-03-04\nbaseline: 0.1\nradius: 0.02\ngain: 1.0\ntrim: 0.01\n")

	geom, err := Load(dir, "duckie7")
	require.NoError(t, err)
	require.Equal(t, 0.1, geom.Baseline)
}

func TestLoadRejectsZeroBaseline(t *testing.T) {
	dir, cleanup := tempDir(t)
	defer cleanup()
	writeCalib(t, dir, "duckie7", "baseline: 0\nradius: 0.02\n")

	_, err := Load(dir, "duckie7")
	require.Error(t, err)
}
