package schedule

import (
	"reflect"
	"testing"
)

func TestBuildConflicts(t *testing.T) {
	kor := Cell{Subject: "국어", Color: "#e53935"}
	eng := Cell{Subject: "영어", Color: "#43a047"}
	sci := Cell{Subject: "과학", Color: "#fb8c00"}

	tests := []struct {
		name    string
		regular SlotMap
		naesin  SlotMap
		want    []ConflictEntry
	}{
		{
			name:    "no overlap",
			regular: SlotMap{{1, 0}: kor},
			naesin:  SlotMap{{1, 1}: eng},
			want:    nil,
		},
		{
			name:    "identical content throughout",
			regular: SlotMap{{1, 0}: kor, {1, 1}: kor, {1, 2}: kor},
			naesin:  SlotMap{{1, 0}: eng, {1, 1}: eng, {1, 2}: eng},
			want: []ConflictEntry{
				{Day: 1, StartSlot: 0, EndSlot: 3, Regular: kor, Naesin: eng},
			},
		},
		{
			name:    "naesin subject changes mid run",
			regular: SlotMap{{1, 0}: kor, {1, 1}: kor, {1, 2}: kor},
			naesin:  SlotMap{{1, 0}: eng, {1, 1}: eng, {1, 2}: sci},
			want: []ConflictEntry{
				{Day: 1, StartSlot: 0, EndSlot: 2, Regular: kor, Naesin: eng},
				{Day: 1, StartSlot: 2, EndSlot: 3, Regular: kor, Naesin: sci},
			},
		},
		{
			name:    "regular colour changes mid run",
			regular: SlotMap{{0, 0}: kor, {0, 1}: Cell{Subject: "국어", Color: "#1e88e5"}},
			naesin:  SlotMap{{0, 0}: eng, {0, 1}: eng},
			want: []ConflictEntry{
				{Day: 0, StartSlot: 0, EndSlot: 1, Regular: kor, Naesin: eng},
				{Day: 0, StartSlot: 1, EndSlot: 2, Regular: Cell{Subject: "국어", Color: "#1e88e5"}, Naesin: eng},
			},
		},
		{
			name:    "one side empties",
			regular: SlotMap{{2, 0}: kor, {2, 1}: kor, {2, 2}: kor},
			naesin:  SlotMap{{2, 0}: eng, {2, 2}: eng},
			want: []ConflictEntry{
				{Day: 2, StartSlot: 0, EndSlot: 1, Regular: kor, Naesin: eng},
				{Day: 2, StartSlot: 2, EndSlot: 3, Regular: kor, Naesin: eng},
			},
		},
		{
			name:    "same subject on both sides still conflicts",
			regular: SlotMap{{5, 4}: kor},
			naesin:  SlotMap{{5, 4}: kor},
			want: []ConflictEntry{
				{Day: 5, StartSlot: 4, EndSlot: 5, Regular: kor, Naesin: kor},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildConflicts(tt.regular, tt.naesin, 60)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("BuildConflicts() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestConflictEntry_Side(t *testing.T) {
	kor := Cell{Subject: "국어", Color: "#e53935"}
	eng := Cell{Subject: "영어", Color: "#43a047"}
	c := ConflictEntry{Regular: kor, Naesin: eng}
	if c.Side(PlanRegular) != kor || c.Side(PlanNaesin) != eng {
		t.Errorf("Side() returned the wrong cells")
	}
}

func TestFindConflict(t *testing.T) {
	kor := Cell{Subject: "국어", Color: "#e53935"}
	regular := SlotMap{{1, 0}: kor, {1, 1}: kor}
	naesin := SlotMap{{1, 0}: kor, {1, 1}: kor}

	c, ok := FindConflict(regular, naesin, 60, 1, 0)
	if !ok || c.EndSlot != 2 {
		t.Errorf("FindConflict = %+v, %v", c, ok)
	}
	if _, ok := FindConflict(regular, naesin, 60, 1, 1); ok {
		t.Error("slot 1 does not start a conflict run")
	}
	if !InConflict(regular, naesin, 1, 1) {
		t.Error("InConflict(1,1) should be true")
	}
}

func TestConflictAt(t *testing.T) {
	kor := Cell{Subject: "국어", Color: "#e53935"}
	eng := Cell{Subject: "영어", Color: "#1e88e5"}
	regular := SlotMap{{1, 0}: kor, {1, 1}: kor, {1, 2}: kor}
	naesin := SlotMap{{1, 1}: eng, {1, 2}: eng}

	c, ok := ConflictAt(regular, naesin, 60, 1, 2)
	if !ok || c.StartSlot != 1 || c.EndSlot != 3 {
		t.Errorf("ConflictAt = %+v, %v", c, ok)
	}
	if _, ok := ConflictAt(regular, naesin, 60, 1, 0); ok {
		t.Error("slot 0 is regular only")
	}
}
