package config

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	if c.FrameInterval.Duration <= 0 {
		el.Add(fmt.Errorf("frame_interval must be positive"))
	}
	el.Add(c.Locomotion.Validate())
	el.Add(c.Camera.Validate())
	el.Add(c.Scene.Validate())
	el.Add(c.Model.Validate())
	el.Add(c.Panel.Validate())

	return el.Err()
}

func (c *LocomotionConfig) Validate() error {
	el := errors.NewErrorList()

	if c.TickInterval.Duration <= 0 {
		el.Add(fmt.Errorf("locomotion.tick_interval must be positive"))
	}
	if c.GlideStep < 0 {
		el.Add(fmt.Errorf("locomotion.glide_step must not be negative"))
	}
	if c.KeyStep < 0 {
		el.Add(fmt.Errorf("locomotion.key_step must not be negative"))
	}

	return el.Err()
}

func (c *CameraConfig) Validate() error {
	el := errors.NewErrorList()

	if c.FOV <= 0 || c.FOV >= 180 {
		el.Add(fmt.Errorf("camera.fov must be in (0, 180), got %v", c.FOV))
	}
	if c.Near <= 0 {
		el.Add(fmt.Errorf("camera.near must be positive"))
	}
	if c.Far <= c.Near {
		el.Add(fmt.Errorf("camera.far must exceed camera.near"))
	}

	return el.Err()
}

func (c *SceneConfig) Validate() error {
	el := errors.NewErrorList()

	if c.Background > 0xffffff {
		el.Add(fmt.Errorf("scene.background is not a 0xRRGGBB color"))
	}
	if c.GroundColor > 0xffffff {
		el.Add(fmt.Errorf("scene.ground_color is not a 0xRRGGBB color"))
	}
	if c.GroundSize < 0 {
		el.Add(fmt.Errorf("scene.ground_size must not be negative"))
	}

	return el.Err()
}

func (c *ModelConfig) Validate() error {
	el := errors.NewErrorList()

	if c.Scale <= 0 {
		el.Add(fmt.Errorf("model.scale must be positive"))
	}

	return el.Err()
}

func (c *PanelConfig) Validate() error {
	el := errors.NewErrorList()

	if c.Width <= 0 || c.Height <= 0 {
		el.Add(fmt.Errorf("panel width and height must be positive"))
	}
	if c.Padding < 0 || 2*c.Padding >= c.Width {
		el.Add(fmt.Errorf("panel.padding must leave room for text"))
	}
	if c.FontSize <= 0 {
		el.Add(fmt.Errorf("panel.font_size must be positive"))
	}

	return el.Err()
}
