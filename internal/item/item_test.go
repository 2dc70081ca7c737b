package item

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "items.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing csv fixture: %v", err)
	}
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeCSV(t, `Jméno,Legenda,Mechanika,InSet,Set,SetPocet
Ring of Fire,"Starý, ohnivý prsten",Jednou za den zapálí oheň,1,Živly,3
Maska stínu,Tichá maska,Neviditelnost ve tmě,0,,
`)

	items, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}

	want := []Item{
		{
			Name:     "Ring of Fire",
			Legend:   "Starý, ohnivý prsten",
			Mechanic: "Jednou za den zapálí oheň",
			InSet:    true,
			Set:      "Živly",
			SetCount: "3",
		},
		{
			Name:     "Maska stínu",
			Legend:   "Tichá maska",
			Mechanic: "Neviditelnost ve tmě",
			InSet:    false,
		},
	}

	if diff := cmp.Diff(want, items); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadCSVColumnOrderIsFree(t *testing.T) {
	path := writeCSV(t, `Mechanika,Jméno,InSet,Legenda,Set,SetPocet
Létání,Plášť větru,1,Utkaný z vichru,Nebe,2
`)

	items, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if items[0].Name != "Plášť větru" || items[0].Mechanic != "Létání" || !items[0].InSet {
		t.Errorf("fields mapped wrong: %+v", items[0])
	}
}

func TestLoadCSVMissingColumn(t *testing.T) {
	path := writeCSV(t, `Jméno,Mechanika
Prsten,Nic
`)

	items, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if items[0].Legend != "" || items[0].InSet {
		t.Errorf("missing columns should yield empty fields: %+v", items[0])
	}
}

func TestLoadCSVHeaderOnly(t *testing.T) {
	path := writeCSV(t, "Jméno,Legenda,Mechanika,InSet,Set,SetPocet\n")

	items, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("got %d items from a header-only file, want 0", len(items))
	}
}

func TestLoadCSVEmptyFile(t *testing.T) {
	path := writeCSV(t, "")

	if _, err := LoadCSV(path); err == nil {
		t.Fatal("expected error for a file without a header row")
	}
}

func TestLoadCSVMissingFile(t *testing.T) {
	if _, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatal("expected error for an unreadable input path")
	}
}
