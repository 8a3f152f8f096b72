package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/folio-fx/config"
	"github.com/smartystreets/goconvey/convey"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "folio.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConfig_Default(t *testing.T) {
	convey.Convey("Given the default config", t, func() {
		cfg := config.Default()

		convey.Convey("Then it should carry the stock tuning", func() {
			convey.So(cfg.Display.CellWidth, convey.ShouldEqual, 8)
			convey.So(cfg.Display.CellHeight, convey.ShouldEqual, 16)
			convey.So(cfg.Display.FrameInterval, convey.ShouldEqual, 16*time.Millisecond)
			convey.So(cfg.Trail.Enabled, convey.ShouldBeFalse)
			convey.So(cfg.Trail.SpawnCap, convey.ShouldEqual, 8)
			convey.So(cfg.Network.Width, convey.ShouldEqual, 460)
			convey.So(cfg.Network.Height, convey.ShouldEqual, 320)
			convey.So(cfg.Network.PickRadius, convey.ShouldEqual, 24)
			convey.So(cfg.Audio.Enabled, convey.ShouldBeFalse)
			convey.So(cfg.Skills, convey.ShouldBeEmpty)
		})

		convey.Convey("Then it should validate", func() {
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}

func TestConfig_Load(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		t.Setenv(config.EnvConfig, "")
		t.Setenv("FOLIO_AUDIO_ENABLED", "")
		t.Setenv("FOLIO_MASTER_VOLUME", "")

		convey.Convey("When no path or env var is set", func() {
			cfg, err := config.Load("")

			convey.Convey("Then the defaults are returned", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldResemble, config.Default())
			})
		})

		convey.Convey("When a file overrides some keys", func() {
			path := writeFile(t, `
skills = "skills"

[display]
cell_width = 10.0
frame_interval = "20ms"

[trail]
enabled = true
life_decay = 0.01

[network]
pick_radius = 30.0
hover_grow = 7.0

[theme]
cat-languages = "hsl(10 80% 50%)"
`)
			cfg, err := config.Load(path)

			convey.Convey("Then set keys change and the rest keep defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Display.CellWidth, convey.ShouldEqual, 10)
				convey.So(cfg.Display.CellHeight, convey.ShouldEqual, 16)
				convey.So(cfg.Display.FrameInterval, convey.ShouldEqual, 20*time.Millisecond)
				convey.So(cfg.Trail.Enabled, convey.ShouldBeTrue)
				convey.So(cfg.Trail.LifeDecay, convey.ShouldEqual, 0.01)
				convey.So(cfg.Trail.Damping, convey.ShouldEqual, 0.98)
				convey.So(cfg.Network.PickRadius, convey.ShouldEqual, 30)
				convey.So(cfg.Network.HoverGrow, convey.ShouldEqual, 7)
				convey.So(cfg.Network.ActiveAlpha, convey.ShouldEqual, 0.7)
				convey.So(cfg.Network.Width, convey.ShouldEqual, 460)
				convey.So(cfg.Theme["cat-languages"], convey.ShouldEqual, "hsl(10 80% 50%)")
			})

			convey.Convey("Then a relative skills path resolves next to the file", func() {
				convey.So(cfg.Skills, convey.ShouldEqual, filepath.Join(filepath.Dir(path), "skills"))
			})
		})

		convey.Convey("When the path comes from the environment", func() {
			path := writeFile(t, "[trail]\nenabled = true\n")
			t.Setenv(config.EnvConfig, path)
			cfg, err := config.Load("")

			convey.Convey("Then the file is used", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Trail.Enabled, convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the file has an unknown key", func() {
			path := writeFile(t, "[trail]\nsparkles = 3\n")
			_, err := config.Load(path)

			convey.Convey("Then loading fails with ErrUnknownKey", func() {
				convey.So(errors.Is(err, config.ErrUnknownKey), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "trail.sparkles")
			})
		})

		convey.Convey("When the file is malformed", func() {
			path := writeFile(t, "[trail\n")
			_, err := config.Load(path)

			convey.Convey("Then loading fails", func() {
				convey.So(err, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When the file is missing", func() {
			_, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))

			convey.Convey("Then the error wraps os.ErrNotExist", func() {
				convey.So(errors.Is(err, os.ErrNotExist), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When a value is out of range", func() {
			path := writeFile(t, "[trail]\nspawn_cap = 12\n")
			_, err := config.Load(path)

			convey.Convey("Then loading fails with ErrInvalid", func() {
				convey.So(errors.Is(err, config.ErrInvalid), convey.ShouldBeTrue)
			})
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	convey.Convey("Given a valid config", t, func() {
		cfg := config.Default()

		convey.Convey("When the pixel ratio is zero", func() {
			cfg.Display.PixelRatio = 0
			convey.So(errors.Is(cfg.Validate(), config.ErrInvalid), convey.ShouldBeTrue)
		})

		convey.Convey("When the easing exceeds one", func() {
			cfg.Network.Easing = 1.5
			convey.So(errors.Is(cfg.Validate(), config.ErrInvalid), convey.ShouldBeTrue)
		})

		convey.Convey("When the margins swallow the narrow canvas", func() {
			cfg.Network.MarginX = 200
			convey.So(errors.Is(cfg.Validate(), config.ErrInvalid), convey.ShouldBeTrue)
		})

		convey.Convey("When an audio volume is out of range", func() {
			cfg.Audio.HoverVolume = 2
			convey.So(errors.Is(cfg.Validate(), config.ErrInvalid), convey.ShouldBeTrue)
		})

		convey.Convey("When the spawn minimum exceeds the cap", func() {
			cfg.Trail.SpawnMin = 9
			convey.So(errors.Is(cfg.Validate(), config.ErrInvalid), convey.ShouldBeTrue)
		})

		convey.Convey("When a node target alpha is out of range", func() {
			cfg.Network.HoverAlpha = 1.2
			convey.So(errors.Is(cfg.Validate(), config.ErrInvalid), convey.ShouldBeTrue)
		})

		convey.Convey("When a node grows negatively", func() {
			cfg.Network.ActiveGrow = -1
			convey.So(errors.Is(cfg.Validate(), config.ErrInvalid), convey.ShouldBeTrue)
		})
	})
}
