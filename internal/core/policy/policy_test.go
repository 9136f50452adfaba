package policy

import "testing"

func TestValidatePassword_Accepts(t *testing.T) {
	valid := []string{
		"Abcdef1!",
		"P@ssw0rd",
		"longerPassword9$",
		"Abcdef1! with spaces", // characters outside the classes are allowed
		"ÜmlautsOk1&",
	}
	for _, p := range valid {
		if ok, reason := ValidatePassword(p); !ok {
			t.Errorf("ValidatePassword(%q) rejected: %s", p, reason)
		}
	}
}

func TestValidatePassword_TooShort(t *testing.T) {
	ok, reason := ValidatePassword("Ab1!")
	if ok {
		t.Fatalf("expected rejection")
	}
	if reason != reasonTooShort {
		t.Fatalf("expected length reason, got %q", reason)
	}
}

func TestValidatePassword_LengthCountsRunes(t *testing.T) {
	// Six characters but eight bytes: must still fail the length rule.
	ok, reason := ValidatePassword("Aa1!ÄÄ")
	if ok {
		t.Fatalf("6-character password accepted")
	}
	if reason != reasonTooShort {
		t.Fatalf("expected length reason, got %q", reason)
	}

	// Exactly eight runes with multibyte characters passes the length rule.
	if ok, reason := ValidatePassword("Aa1!ÄÄÄÄ"); !ok {
		t.Fatalf("8-character password rejected: %s", reason)
	}
}

func TestValidatePassword_Composition(t *testing.T) {
	cases := map[string]string{
		"no uppercase": "abcdefg1!",
		"no lowercase": "ABCDEFG1!",
		"no digit":     "Abcdefgh!",
		"no special":   "Abcdefg1x",
	}
	for name, p := range cases {
		ok, reason := ValidatePassword(p)
		if ok {
			t.Errorf("%s: ValidatePassword(%q) accepted", name, p)
			continue
		}
		if reason != reasonComposition {
			t.Errorf("%s: expected composition reason, got %q", name, reason)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"a@x.com",
		"first.last@example.co",
		"user+tag@sub.domain.org",
		"u_%-@host.io",
	}
	for _, e := range valid {
		if ok, reason := ValidateEmail(e); !ok {
			t.Errorf("ValidateEmail(%q) rejected: %s", e, reason)
		}
	}

	invalid := []string{
		"",
		"plainaddress",
		"@no-local.com",
		"no-at-sign.com",
		"user@host",
		"user@host.c",     // tld shorter than 2
		"user@host.123",   // tld must be letters
		"spaces in@x.com", // space not in local-part set
	}
	for _, e := range invalid {
		if ok, _ := ValidateEmail(e); ok {
			t.Errorf("ValidateEmail(%q) accepted", e)
		}
	}
}
