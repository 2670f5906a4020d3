package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// stubScene 测试用的最小场景
type stubScene struct {
	updates  int
	tornDown bool
}

func (s *stubScene) Update(deltaTime float64)  { s.updates++ }
func (s *stubScene) Draw(screen *ebiten.Image) {}
func (s *stubScene) Teardown()                 { s.tornDown = true }

// TestSceneManager_SwitchTo 测试场景切换
func TestSceneManager_SwitchTo(t *testing.T) {
	sm := NewSceneManager()
	if sm.GetCurrentScene() != nil {
		t.Error("manager must start with no active scene")
	}

	first := &stubScene{}
	sm.SwitchTo(first)
	if sm.GetCurrentScene() != first {
		t.Error("SwitchTo should activate the scene")
	}

	sm.Update(1.0 / 60.0)
	if first.updates != 1 {
		t.Errorf("active scene should receive updates, got %d", first.updates)
	}
}

// TestSceneManager_TeardownOnSwitch 测试切出时释放旧场景资源
func TestSceneManager_TeardownOnSwitch(t *testing.T) {
	sm := NewSceneManager()
	first := &stubScene{}
	second := &stubScene{}

	sm.SwitchTo(first)
	sm.SwitchTo(second)

	if !first.tornDown {
		t.Error("switching away must tear down the previous scene")
	}
	if second.tornDown {
		t.Error("the incoming scene must not be torn down")
	}

	sm.Update(1.0 / 60.0)
	if first.updates != 0 || second.updates != 1 {
		t.Errorf("only the active scene may update, got %d/%d", first.updates, second.updates)
	}
}

// TestSceneManager_UpdateWithoutScene 测试空场景时的 no-op
func TestSceneManager_UpdateWithoutScene(t *testing.T) {
	sm := NewSceneManager()
	sm.Update(1.0 / 60.0) // 不应崩溃
}
