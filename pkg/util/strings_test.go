package util

import "testing"

func TestParseIntDefault(t *testing.T) {
    if got := ParseIntDefault("8081", 8080); got != 8081 {
        t.Fatalf("got %d", got)
    }
    if got := ParseIntDefault("", 8080); got != 8080 {
        t.Fatalf("empty: got %d", got)
    }
    if got := ParseIntDefault("nope", 8080); got != 8080 {
        t.Fatalf("invalid: got %d", got)
    }
}
