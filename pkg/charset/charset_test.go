package charset

import "testing"

func TestPoolSizes(t *testing.T) {
	tests := []struct {
		category Category
		size     int
	}{
		{Letters, 52},
		{Digits, 10},
		{Symbols, 22},
		{Alphanumeric, 62},
		{Full, 84},
	}

	for _, test := range tests {
		pool := Lookup(test.category)
		if pool.Size() != test.size {
			t.Errorf("pool %s: expected size %d, got %d", pool.Name, test.size, pool.Size())
		}
		if pool.Size() != len(pool.Members) {
			t.Errorf("pool %s: Size() disagrees with len(Members)", pool.Name)
		}
	}
}

func TestPoolsHaveNoDuplicates(t *testing.T) {
	for _, c := range []Category{Letters, Digits, Symbols, Alphanumeric, Full} {
		pool := Lookup(c)
		seen := make(map[byte]bool)
		for _, b := range pool.Members {
			if seen[b] {
				t.Errorf("pool %s: duplicate member %q", pool.Name, b)
			}
			seen[b] = true
		}
	}
}

func TestCombinedPoolsAreConcatenations(t *testing.T) {
	alnum := Lookup(Alphanumeric)
	want := string(Lookup(Letters).Members) + string(Lookup(Digits).Members)
	if string(alnum.Members) != want {
		t.Error("alphanumeric pool is not letters+digits")
	}

	full := Lookup(Full)
	want = string(alnum.Members) + string(Lookup(Symbols).Members)
	if string(full.Members) != want {
		t.Error("full pool is not alphanumeric+symbols")
	}
}

func TestSymbolsExcludeAmbiguousCharacters(t *testing.T) {
	for _, forbidden := range []byte{'`', '\'', '"'} {
		for _, b := range Lookup(Symbols).Members {
			if b == forbidden {
				t.Errorf("symbols pool contains ambiguous character %q", forbidden)
			}
		}
	}
	for _, b := range Lookup(Symbols).Members {
		if b <= ' ' || b > '~' {
			t.Errorf("symbols pool contains non-printable byte %#x", b)
		}
	}
}

func TestCategoryString(t *testing.T) {
	if Letters.String() != "letters" || Full.String() != "full" {
		t.Error("unexpected category names")
	}
	if Category(99).String() != "unknown" {
		t.Error("unknown category should stringify as unknown")
	}
}
