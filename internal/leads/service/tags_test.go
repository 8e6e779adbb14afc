package service

import (
	"reflect"
	"testing"
)

func TestDedupeTags(t *testing.T) {
	got := DedupeTags([]string{"Repo", " Repo ", "Bankruptcy", "", "Repo", "<b>Bankruptcy</b>"})
	want := []string{"Repo", "Bankruptcy"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestDedupeTagsPreservesOrder(t *testing.T) {
	got := DedupeTags([]string{"c", "a", "b", "a"})
	want := []string{"c", "a", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestDedupeTagsIdempotent(t *testing.T) {
	once := DedupeTags([]string{"First-Time Buyer", "Repo", "Repo"})
	twice := DedupeTags(once)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("dedupe not idempotent: %v vs %v", once, twice)
	}
}

func TestTagSuggestionsCopies(t *testing.T) {
	s := &Service{}
	a := s.TagSuggestions()
	a[0] = "mutated"
	b := s.TagSuggestions()
	if b[0] == "mutated" {
		t.Fatal("TagSuggestions leaked internal slice")
	}
}
