package entity

import "testing"

func TestFormatOrderNumber(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{1, "0001"},
		{42, "0042"},
		{9999, "9999"},
		{10000, "10000"},
	}

	for _, tc := range cases {
		if got := FormatOrderNumber(tc.in); got != tc.want {
			t.Fatalf("expected %s, got %s", tc.want, got)
		}
	}
}

func TestFormatReceiptNumber(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{1, "000001"},
		{42, "000042"},
		{123456, "123456"},
	}

	for _, tc := range cases {
		if got := FormatReceiptNumber(tc.in); got != tc.want {
			t.Fatalf("expected %s, got %s", tc.want, got)
		}
	}
}
