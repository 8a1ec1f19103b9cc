package wordlist

import "testing"

func TestPackBuild(t *testing.T) {
	dict := []byte("བཀྲ་ཤིས\tNOUN\t\t\t1000\nབདེ་ལེགས\tNOUN\t\t\t500")

	tr := NewPack("general").
		AddDictionary("words.tsv", dict).
		Build()

	if tr.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tr.Len())
	}
	if !tr.HasWord([]string{"བཀྲ", "ཤིས"}) {
		t.Error("dictionary entry missing")
	}
}

func TestPackAdjustments(t *testing.T) {
	dict := []byte("བཀྲ་ཤིས\tNOUN\nབདེ་ལེགས\tNOUN")
	adj := []byte("# remove noisy entries\nབདེ་ལེགས\n")

	tr := NewPack("general").
		AddDictionary("words.tsv", dict).
		AddAdjustment("remove.tsv", adj).
		Build()

	if tr.HasWord([]string{"བདེ", "ལེགས"}) {
		t.Error("adjusted entry still active")
	}
	if !tr.HasWord([]string{"བཀྲ", "ཤིས"}) {
		t.Error("unrelated entry removed")
	}
}

func TestPackInflection(t *testing.T) {
	dict := []byte("བཀྲ་ཤིས\tNOUN")

	tr := NewPack("general").
		SetInflection(true).
		AddDictionary("words.tsv", dict).
		Build()

	if !tr.HasWord([]string{"བཀྲ", "ཤིསར"}) {
		t.Error("inflected form missing")
	}
}

func TestPackAdjustmentWithTSVRow(t *testing.T) {
	dict := []byte("བཀྲ་ཤིས\tNOUN")
	adj := []byte("བཀྲ་ཤིས\tNOUN\t\t\t1000")

	tr := NewPack("general").
		AddDictionary("words.tsv", dict).
		AddAdjustment("remove.tsv", adj).
		Build()

	if tr.HasWord([]string{"བཀྲ", "ཤིས"}) {
		t.Error("TSV-shaped adjustment not applied")
	}
}

func TestPackMultipleDictionaries(t *testing.T) {
	tr := NewPack("general").
		AddDictionary("a.tsv", []byte("བཀྲ་ཤིས\tNOUN")).
		AddDictionary("b.tsv", []byte("བདེ་ལེགས\tNOUN")).
		Build()

	if tr.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tr.Len())
	}
}
