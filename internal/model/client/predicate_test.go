package client

import "testing"

func sampleClient() Client {
	c := New("Alice Pauline", "94351253", "alice@example.com", "friends")
	return c.WithRentals(NewRentalInformation("Blk 30 Geylang Street 29", 2400, 4800, "Carl Kurz"))
}

func TestNameContainsKeywordsMatchesCaseInsensitive(t *testing.T) {
	c := sampleClient()
	cases := []struct {
		keywords []string
		want     bool
	}{
		{[]string{"alice"}, true},
		{[]string{"ALICE"}, true},
		{[]string{"pauline"}, true},
		{[]string{"paul"}, true},
		{[]string{"bob"}, false},
		{nil, false},
	}
	for _, tc := range cases {
		if got := NameContainsKeywords(tc.keywords)(c); got != tc.want {
			t.Fatalf("NameContainsKeywords(%v) = %v, want %v", tc.keywords, got, tc.want)
		}
	}
}

func TestPhoneAndEmailPredicates(t *testing.T) {
	c := sampleClient()
	if !PhoneContainsKeywords([]string{"9435"})(c) {
		t.Fatal("expected phone substring to match")
	}
	if PhoneContainsKeywords([]string{"0000"})(c) {
		t.Fatal("unexpected phone match")
	}
	if !EmailContainsKeywords([]string{"example.com"})(c) {
		t.Fatal("expected email domain to match")
	}
	if EmailContainsKeywords([]string{"gmail"})(c) {
		t.Fatal("unexpected email match")
	}
}

func TestRentalInformationPredicateSearchesAddressAndCustomers(t *testing.T) {
	c := sampleClient()
	if !RentalInformationContainsKeywords([]string{"geylang"})(c) {
		t.Fatal("expected rental address to match")
	}
	if !RentalInformationContainsKeywords([]string{"carl"})(c) {
		t.Fatal("expected rental customer to match")
	}
	if RentalInformationContainsKeywords([]string{"orchard"})(c) {
		t.Fatal("unexpected rental match")
	}
}

func TestAnyOfCombinesWithOr(t *testing.T) {
	c := sampleClient()
	combined := AnyOf(
		NameContainsKeywords([]string{"nomatch"}),
		PhoneContainsKeywords([]string{"9435"}),
	)
	if !combined(c) {
		t.Fatal("expected OR combination to match via phone")
	}
	if AnyOf()(c) {
		t.Fatal("empty combination must not match")
	}
}

func TestBlankKeywordsAreIgnored(t *testing.T) {
	c := sampleClient()
	if NameContainsKeywords([]string{"   "})(c) {
		t.Fatal("blank keywords must not match")
	}
	if !NameContainsKeywords([]string{"  alice  "})(c) {
		t.Fatal("keywords should be trimmed before matching")
	}
}
