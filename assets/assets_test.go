package assets

import (
	"testing"

	"github.com/automoto/doomerang-horde/config"
)

func TestBundledArenasLoad(t *testing.T) {
	arenas, names, err := LoadArenas()
	if err != nil {
		t.Fatalf("LoadArenas: %v", err)
	}
	if len(names) != 2 || names[0] != "crossroads" || names[1] != "pit" {
		t.Fatalf("names = %v", names)
	}
	pit := arenas["pit"]
	if pit.MapWidth != 384 || pit.MapHeight != 256 {
		t.Fatalf("pit is %dx%d", pit.MapWidth, pit.MapHeight)
	}
	// Border plus four 2x2 pillars.
	if want := 2*24 + 2*14 + 16; len(pit.SolidRects) != want {
		t.Fatalf("pit has %d solid tiles, want %d", len(pit.SolidRects), want)
	}
	if len(pit.EnemySpawns) != 6 || pit.PlayerSpawns[0].X != 192 {
		t.Fatalf("unexpected spawns: %+v %+v", pit.PlayerSpawns, pit.EnemySpawns)
	}
}

func TestBundledDesignerMatchesDefaults(t *testing.T) {
	saved := config.Current()
	defer config.Apply(saved)
	config.Apply(config.Defaults())

	d, err := config.Parse(DesignerYAML())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if d != config.Defaults() {
		t.Fatalf("bundled designer.yaml drifted from defaults:\n%+v\n%+v", d, config.Defaults())
	}
}
