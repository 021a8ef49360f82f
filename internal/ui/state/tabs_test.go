package state

import (
	"errors"
	"testing"
)

func TestTabsStartOnHome(t *testing.T) {
	tabs := NewTabs()
	if tabs.Active() != TabHome {
		t.Fatalf("expected home, got %q", tabs.Active())
	}
	var zero Tabs
	if !zero.IsActive(TabHome) {
		t.Fatal("expected zero value to report home as active")
	}
}

func TestTabsSelectExactlyOneActive(t *testing.T) {
	tabs := NewTabs()
	changed, err := tabs.Select(TabSettings)
	if err != nil || !changed {
		t.Fatalf("expected change, got %v/%v", changed, err)
	}
	active := 0
	for _, name := range TabNames {
		if tabs.IsActive(name) {
			active++
		}
	}
	if active != 1 {
		t.Fatalf("expected exactly one active tab, got %d", active)
	}

	changed, err = tabs.Select(TabSettings)
	if err != nil || changed {
		t.Fatalf("expected reselect to be a no-op, got %v/%v", changed, err)
	}
}

func TestTabsRejectUnknownName(t *testing.T) {
	tabs := NewTabs()
	_, err := tabs.Select("logs")
	var unknown *UnknownTabError
	if !errors.As(err, &unknown) || unknown.Name != "logs" {
		t.Fatalf("expected UnknownTabError, got %v", err)
	}
	if tabs.Active() != TabHome {
		t.Fatalf("expected state unchanged, got %q", tabs.Active())
	}
}

func TestTabsCycleWraps(t *testing.T) {
	tabs := NewTabs()
	if got := tabs.Cycle(-1); got != TabSettings {
		t.Fatalf("expected wrap to settings, got %q", got)
	}
	if got := tabs.Cycle(1); got != TabHome {
		t.Fatalf("expected wrap to home, got %q", got)
	}
	if got := tabs.Cycle(1); got != TabShaders {
		t.Fatalf("expected shaders, got %q", got)
	}
}
