package systems

import (
	"errors"
	"math"
	"testing"

	"github.com/bananacat/portfolio/pkg/game"
	"github.com/bananacat/portfolio/pkg/game/mocks"
	"go.uber.org/mock/gomock"
)

type countingStarter struct {
	calls int
	err   error
}

func (c *countingStarter) BeginSurvival() error {
	c.calls++
	return c.err
}

func TestHotspotOffsetConverges(t *testing.T) {
	em, gs, _ := newTestWorld(t)
	ctrl := gomock.NewController(t)
	sys := NewHotspotSystem(em, gs, mocks.NewMockLinkOpener(ctrl), nil)
	bounds := NewBoundsSystem(em)

	id, hs := hotspotNamed(t, em, "linkedin")
	pos := transformOf(t, em, id).Position
	placeCharacter(t, em, gs, pos.X, pos.Z)

	const dt = 0.1
	const maxFrames = 60
	converge := func(target float64) {
		t.Helper()
		for frame := 1; frame <= maxFrames; frame++ {
			before := math.Abs(target - hs.Offset)
			bounds.Update()
			sys.Update(false, dt)
			after := math.Abs(target - hs.Offset)
			if after >= before && before > 0 {
				t.Fatalf("frame %d: offset %v is not approaching %v", frame, hs.Offset, target)
			}
			if after < 0.01 {
				return
			}
		}
		t.Fatalf("offset %v did not reach %v within %d frames", hs.Offset, target, maxFrames)
	}

	converge(hs.Raised)
	if !hs.Overlapping {
		t.Error("hotspot should report the overlap")
	}

	placeCharacter(t, em, gs, pos.X+20, pos.Z)
	converge(hs.Rest)
	if hs.Overlapping {
		t.Error("hotspot should not overlap once the character left")
	}
}

func TestHotspotOffsetStep(t *testing.T) {
	em, gs, _ := newTestWorld(t)
	sys := NewHotspotSystem(em, gs, nil, nil)
	bounds := NewBoundsSystem(em)

	id, hs := hotspotNamed(t, em, "github")
	pos := transformOf(t, em, id).Position
	placeCharacter(t, em, gs, pos.X, pos.Z)

	tests := []struct {
		name string
		dt   float64
	}{
		{"tenth", 0.1},
		{"quarter", 0.25},
		{"zero", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := hs.Offset
			want := start + (hs.Raised-start)*tt.dt
			bounds.Update()
			sys.Update(false, tt.dt)
			if math.Abs(hs.Offset-want) > floatTolerance {
				t.Errorf("offset after %v s = %v, want %v", tt.dt, hs.Offset, want)
			}
		})
	}
}

func TestHotspotRidesOnPortfolio(t *testing.T) {
	em, gs, _ := newTestWorld(t)
	sys := NewHotspotSystem(em, gs, nil, nil)
	id, hs := hotspotNamed(t, em, "github")

	transformOf(t, em, gs.Portfolio).Position.Y = -5
	sys.Update(false, 0.1)

	want := -5 + hs.Offset
	if got := transformOf(t, em, id).Position.Y; math.Abs(got-want) > floatTolerance {
		t.Errorf("hotspot y = %v, want %v", got, want)
	}
}

func TestInteractWithoutOverlapDoesNothing(t *testing.T) {
	em, gs, _ := newTestWorld(t)
	ctrl := gomock.NewController(t)
	opener := mocks.NewMockLinkOpener(ctrl) // no calls expected
	starter := &countingStarter{}
	sys := NewHotspotSystem(em, gs, opener, starter)
	bounds := NewBoundsSystem(em)

	placeCharacter(t, em, gs, 200, 200)
	for i := 0; i < 5; i++ {
		bounds.Update()
		sys.Update(true, 0.1)
	}
	if starter.calls != 0 {
		t.Errorf("survival started %d times", starter.calls)
	}
	if _, ok := sys.Focused(); ok {
		t.Error("nothing should be focused")
	}
}

func TestHotspotActions(t *testing.T) {
	tests := []struct {
		name    string
		hotspot string
		url     string
		err     error
	}{
		{"github opens profile", "github", "https://github.com/minhnln0712", nil},
		{"facebook opens profile", "facebook", "https://www.facebook.com/minhnln0712/", nil},
		{"gmail opens composer", "gmail", game.MailtoURL("minhnln0712@gmail.com", "Subject", "Body"), nil},
		{"browser failure is not fatal", "linkedin", "https://www.linkedin.com/in/minhnln0712/", errors.New("no browser")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em, gs, _ := newTestWorld(t)
			ctrl := gomock.NewController(t)
			opener := mocks.NewMockLinkOpener(ctrl)
			opener.EXPECT().OpenURL(tt.url).Return(tt.err).Times(1)
			sys := NewHotspotSystem(em, gs, opener, nil)

			id, _ := hotspotNamed(t, em, tt.hotspot)
			pos := transformOf(t, em, id).Position
			placeCharacter(t, em, gs, pos.X, pos.Z)

			NewBoundsSystem(em).Update()
			sys.Update(true, 0.1)
			sys.Update(false, 0.1)

			focused, ok := sys.Focused()
			if !ok || focused.Name != tt.hotspot {
				t.Errorf("focused = %+v", focused)
			}
		})
	}
}

func TestRedButtonStartsSurvival(t *testing.T) {
	em, gs, _ := newTestWorld(t)
	starter := &countingStarter{err: game.ErrInvalidTransition}
	sys := NewHotspotSystem(em, gs, nil, starter)

	id, _ := hotspotNamed(t, em, "survival")
	pos := transformOf(t, em, id).Position
	placeCharacter(t, em, gs, pos.X, pos.Z)

	NewBoundsSystem(em).Update()
	sys.Update(true, 0.1)
	if starter.calls != 1 {
		t.Errorf("BeginSurvival called %d times, want 1", starter.calls)
	}
}
