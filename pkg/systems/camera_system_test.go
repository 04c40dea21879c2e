package systems

import (
	"math"
	"testing"

	"github.com/bananacat/portfolio/pkg/utils"
)

func TestCameraZoomClamps(t *testing.T) {
	em, gs, cfg := newTestWorld(t)
	sys := NewCameraSystem(em, gs)
	cam, ok := sys.Camera()
	if !ok {
		t.Fatal("no camera")
	}

	tests := []struct {
		name  string
		wheel float64
		want  float64
	}{
		{"zoom in past min", 100, cfg.Camera.MinDistance},
		{"zoom out past max", -100, cfg.Camera.MaxDistance},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys.Update(tt.wheel)
			if cam.Distance != tt.want {
				t.Errorf("distance = %v, want %v", cam.Distance, tt.want)
			}
		})
	}

	before := cam.Distance
	sys.Update(1)
	if math.Abs(cam.Distance-(before-cfg.Camera.ZoomSpeed)) > floatTolerance {
		t.Errorf("one notch moved distance from %v to %v", before, cam.Distance)
	}
}

func TestCameraFollowsCharacter(t *testing.T) {
	em, gs, _ := newTestWorld(t)
	sys := NewCameraSystem(em, gs)
	placeCharacter(t, em, gs, 3, 4)

	sys.Update(0)

	cam, _ := sys.Camera()
	if cam.Target != utils.V3(3, 0, 4) {
		t.Errorf("camera target = %+v", cam.Target)
	}
	tr := transformOf(t, em, gs.Camera)
	if d := tr.Position.Sub(cam.Target).Length(); math.Abs(d-cam.Distance) > 1e-6 {
		t.Errorf("camera is %v from its target, want %v", d, cam.Distance)
	}
}

func TestFollowSystem(t *testing.T) {
	em, gs, cfg := newTestWorld(t)
	placeCharacter(t, em, gs, -5, 7)

	NewFollowSystem(em).Update()

	light := transformOf(t, em, gs.Light)
	want := utils.V3(-5, 0, 7).Add(cfg.Light.Offset.Vec3())
	if light.Position != want {
		t.Errorf("light at %+v, want %+v", light.Position, want)
	}
	if weapon := transformOf(t, em, gs.Weapon); weapon.Position != utils.V3(-5, 0, 7) {
		t.Errorf("weapon at %+v", weapon.Position)
	}
}
