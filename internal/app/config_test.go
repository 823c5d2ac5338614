package app

import (
	"flag"
	"testing"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)

	err := fs.Parse([]string{"-width", "320", "-height", "200", "-fov", "1.2", "-workers", "2", "-out", "frame.ppm"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 320 || cfg.Height != 200 || cfg.FOV != 1.2 || cfg.Workers != 2 || cfg.Out != "frame.ppm" {
		t.Fatalf("parsed config = %+v", cfg)
	}
}

func TestRenderConfigDefaults(t *testing.T) {
	rc := NewConfig().RenderConfig()
	if err := rc.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if rc.Field.Radius != 1.5 || rc.Field.Amplitude != 1.0 {
		t.Fatalf("default field params = %+v", rc.Field)
	}
}
