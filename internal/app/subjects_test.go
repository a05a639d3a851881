package app

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/javiermolinar/timegrid/internal/schedule"
	"github.com/javiermolinar/timegrid/internal/subject"
)

func TestKnownAndHiddenSubjects(t *testing.T) {
	c, _ := newTestController(t)
	ctx := context.Background()

	p := c.state.Active()
	p.Regular[schedule.SlotKey{Day: 0, Slot: 0}] = schedule.Cell{Subject: "수하", Color: "#fdd835"}
	p.Regular[schedule.SlotKey{Day: 0, Slot: 1}] = schedule.Cell{Subject: "수학", Color: "#fdd835"}
	p.Naesin[schedule.SlotKey{Day: 1, Slot: 0}] = schedule.Cell{Subject: "국어", Color: "#1e88e5"}
	p.SubjectColors["ㄱ"] = "#e53935"

	if got, want := c.KnownSubjects(), []string{"국어", "수학"}; !reflect.DeepEqual(got, want) {
		t.Errorf("KnownSubjects() = %q, want %q", got, want)
	}
	if got, want := c.HiddenSubjects(), []string{"ㄱ", "수하"}; !reflect.DeepEqual(got, want) {
		t.Errorf("HiddenSubjects() = %q, want %q", got, want)
	}

	c.state.UI.Subject = "수하"
	res, removed := c.CleanupHidden(ctx)
	if !reflect.DeepEqual(removed, []string{"ㄱ", "수하"}) {
		t.Errorf("removed = %q", removed)
	}
	if res.Erased != 1 || !res.Changed {
		t.Errorf("result = %+v", res)
	}
	snap := c.Snapshot()
	if snap.UI.Subject != "" {
		t.Error("selected hidden subject should be cleared")
	}
	if len(snap.HiddenSubjects()) != 0 {
		t.Errorf("hidden subjects remain: %q", snap.HiddenSubjects())
	}
	if _, ok := snap.Colors["ㄱ"]; ok {
		t.Error("hidden colour key should be removed")
	}
	if !snap.Regular.Occupied(0, 1) {
		t.Error("complete subject cells must survive cleanup")
	}

	if res, removed := c.CleanupHidden(ctx); res.Changed || removed != nil {
		t.Errorf("second cleanup = %+v %v", res, removed)
	}
}

func TestDeleteSubject(t *testing.T) {
	c, _ := newTestController(t)
	ctx := context.Background()

	if _, err := c.Paint(ctx, PaintRequest{Plan: schedule.PlanRegular, Day: 0, From: 0, To: 2, Subject: "수학"}); err != nil {
		t.Fatal(err)
	}
	if _, err := c.SetActivePlan(ctx, schedule.PlanNaesin); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Paint(ctx, PaintRequest{Plan: schedule.PlanNaesin, Day: 3, From: 0, To: 0, Subject: "수학"}); err != nil {
		t.Fatal(err)
	}

	res, err := c.DeleteSubject(ctx, " 수학 ")
	if err != nil {
		t.Fatalf("DeleteSubject: %v", err)
	}
	if res.Erased != 4 {
		t.Errorf("erased = %d, want 4", res.Erased)
	}
	snap := c.Snapshot()
	if len(snap.Regular)+len(snap.Naesin) != 0 || len(snap.Colors) != 0 {
		t.Errorf("subject not removed everywhere: %v %v %v", snap.Regular, snap.Naesin, snap.Colors)
	}
	if snap.UI.Subject != "" {
		t.Errorf("selection should clear, got %q", snap.UI.Subject)
	}

	if _, err := c.DeleteSubject(ctx, "수학"); !errors.Is(err, ErrSubjectNotFound) {
		t.Errorf("expected ErrSubjectNotFound, got %v", err)
	}
	if _, err := c.DeleteSubject(ctx, "  "); !errors.Is(err, subject.ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
}

func TestSelectSubject(t *testing.T) {
	c, _ := newTestController(t)
	ctx := context.Background()
	c.state.Active().SubjectColors["영어"] = "#3949ab"

	if _, err := c.SelectSubject(ctx, "영어"); err != nil {
		t.Fatal(err)
	}
	snap := c.Snapshot()
	if snap.UI.Subject != "영어" || snap.UI.Color != "#3949ab" {
		t.Errorf("ui = %+v", snap.UI)
	}

	if _, err := c.SelectSubject(ctx, "과학"); err != nil {
		t.Fatal(err)
	}
	snap = c.Snapshot()
	if snap.UI.Color != subject.AutoColor("과학") {
		t.Errorf("color = %q, want auto colour", snap.UI.Color)
	}
	if _, ok := snap.Colors["과학"]; ok {
		t.Error("selecting a chip must not store a colour")
	}

	if _, err := c.SelectSubject(ctx, "ㄱ"); !errors.Is(err, subject.ErrIncomplete) {
		t.Errorf("expected ErrIncomplete, got %v", err)
	}
}

func TestPickPresetAndCustomColor(t *testing.T) {
	c, _ := newTestController(t)
	ctx := context.Background()

	// No subject yet: only the UI colour changes.
	if _, err := c.PickPreset(ctx, "green"); err != nil {
		t.Fatal(err)
	}
	snap := c.Snapshot()
	if snap.UI.Color != "#43a047" || len(snap.Colors) != 0 {
		t.Errorf("ui %+v colours %v", snap.UI, snap.Colors)
	}

	mustCommit(t, c, "수학")
	if _, err := c.PickPreset(ctx, "#8e24aa"); err != nil {
		t.Fatal(err)
	}
	if got := c.Snapshot().Colors["수학"]; got != "#8e24aa" {
		t.Errorf("preset not stored for subject: %q", got)
	}

	if _, err := c.SetCustomColor(ctx, "#ABCDEF"); err != nil {
		t.Fatal(err)
	}
	if got := c.Snapshot().Colors["수학"]; got != "#abcdef" {
		t.Errorf("custom colour not stored: %q", got)
	}

	if _, err := c.PickPreset(ctx, "#abcdef"); !errors.Is(err, subject.ErrInvalidColor) {
		t.Errorf("expected ErrInvalidColor for non-preset, got %v", err)
	}
	if _, err := c.SetCustomColor(ctx, "abc"); !errors.Is(err, subject.ErrInvalidColor) {
		t.Errorf("expected ErrInvalidColor, got %v", err)
	}
}

func TestSetSubjectColor(t *testing.T) {
	c, _ := newTestController(t)
	ctx := context.Background()

	if _, err := c.Paint(ctx, PaintRequest{Plan: schedule.PlanRegular, Day: 0, From: 0, To: 0, Subject: "수학"}); err != nil {
		t.Fatal(err)
	}
	if _, err := c.SetSubjectColor(ctx, "수학", "red"); err != nil {
		t.Fatal(err)
	}
	snap := c.Snapshot()
	if snap.Colors["수학"] != "#e53935" || snap.UI.Color != "#e53935" {
		t.Errorf("colours %v ui %+v", snap.Colors, snap.UI)
	}
	if cell, _ := snap.Regular.Get(0, 0); cell.Color != subject.AutoColor("수학") {
		t.Errorf("painted cell should keep its colour, got %q", cell.Color)
	}
	if _, err := c.SetSubjectColor(ctx, "수", "red"); !errors.Is(err, subject.ErrIncomplete) {
		t.Errorf("expected ErrIncomplete, got %v", err)
	}
}

func TestSetAutoColor_AppliesToSelection(t *testing.T) {
	c, _ := newTestController(t)
	ctx := context.Background()

	c.SetAutoColor(ctx, false)
	mustCommit(t, c, "영어")
	if len(c.Snapshot().Colors) != 0 {
		t.Fatal("manual mode must not assign colours on commit")
	}

	c.SetAutoColor(ctx, true)
	snap := c.Snapshot()
	if snap.Colors["영어"] != subject.AutoColor("영어") || snap.UI.Color != subject.AutoColor("영어") {
		t.Errorf("colours %v ui %+v", snap.Colors, snap.UI)
	}
	if !snap.Settings.AutoColor {
		t.Error("auto colour not enabled")
	}
}
