package main

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/pion/logging"
	"github.com/pion/omnicamera"
	"github.com/pion/omnicamera/internal/config"
	omnilog "github.com/pion/omnicamera/internal/logging"
	"github.com/pion/omnicamera/pkg/driver"
	"github.com/pion/omnicamera/pkg/driver/videotest"
	"github.com/spf13/cobra"
)

// The simulated engine is registered once per process and shared by every
// command run with --fake.
var registerFake = sync.OnceValue(func() driver.Driver {
	_, d := videotest.Register()
	return d
})

type commandContext struct {
	configFlag string
	cameraFlag string
	verbose    bool
	fake       bool

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func (c *commandContext) ensureConfig(cmd *cobra.Command) (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(strings.TrimSpace(c.configFlag))
		if err != nil {
			c.configErr = err
			return
		}

		omnilog.SetOutput(cmd.ErrOrStderr())
		level := cfg.LogLevel()
		if c.verbose {
			level = logging.LogLevelDebug
		}
		omnilog.SetLevel(level)

		if c.fake {
			registerFake()
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) queryCameras(onlyUsable bool) []omnicamera.CameraInfo {
	if c.fake {
		return omnicamera.QueryDrivers(driver.FilterID(registerFake().ID()), onlyUsable)
	}
	return omnicamera.Query(onlyUsable)
}

// selectCamera picks the camera named by --camera, or by the
// configuration. Names win over indices.
func (c *commandContext) selectCamera() (omnicamera.CameraInfo, error) {
	cfg := c.config
	name, index := cfg.Camera.Name, cfg.Camera.Index
	if flag := strings.TrimSpace(c.cameraFlag); flag != "" {
		if i, err := strconv.Atoi(flag); err == nil {
			name, index = "", i
		} else {
			name = flag
		}
	}

	cameras := c.queryCameras(false)
	if name != "" {
		for _, info := range cameras {
			if info.Name == name {
				return info, nil
			}
		}
		return omnicamera.CameraInfo{}, fmt.Errorf("no camera named %q", name)
	}
	if index < 0 || index >= len(cameras) {
		return omnicamera.CameraInfo{}, fmt.Errorf("no camera at index %d (%d found)", index, len(cameras))
	}
	return cameras[index], nil
}

func (c *commandContext) openCamera() (*omnicamera.Camera, error) {
	info, err := c.selectCamera()
	if err != nil {
		return nil, err
	}

	opts := []omnicamera.CameraOption{omnicamera.WithPreferences(c.config.Formats)}
	if fps := c.config.Camera.SuggestedFrameRate; fps != 0 {
		opts = append(opts, omnicamera.WithSuggestedFrameRate(fps))
	}
	return omnicamera.NewCamera(info, opts...)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
