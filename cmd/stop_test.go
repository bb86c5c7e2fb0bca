package cmd

import (
	"testing"
	"time"

	"github.com/golang-sql/civil"

	"github.com/Tiliavir/punch/internal/block"
	"github.com/Tiliavir/punch/internal/timecalc"
)

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "0s"},
		{30, "30s"},
		{59, "59s"},
		{60, "1m 0s"},
		{90, "1m 30s"},
		{3600, "1h 0m 0s"},
		{3661, "1h 1m 1s"},
		{7322, "2h 2m 2s"},
	}
	for _, tt := range tests {
		got := formatElapsed(tt.seconds)
		if got != tt.want {
			t.Errorf("formatElapsed(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestFormatElapsedOfBlock(t *testing.T) {
	date := civil.Date{Year: 2026, Month: time.October, Day: 16}
	tests := []struct {
		from, to [2]int
		want     string
	}{
		{[2]int{8, 30}, [2]int{12, 45}, "4h 15m 0s"},
		{[2]int{13, 0}, [2]int{13, 40}, "40m 0s"},
		{[2]int{9, 0}, [2]int{17, 0}, "8h 0m 0s"},
	}
	for _, tt := range tests {
		b, err := block.New(timecalc.At(date, tt.from[0], tt.from[1]), timecalc.At(date, tt.to[0], tt.to[1]))
		if err != nil {
			t.Fatalf("block.New: %v", err)
		}
		got := formatElapsed(int64(b.Duration().Seconds()))
		if got != tt.want {
			t.Errorf("formatElapsed(%s) = %q, want %q", b, got, tt.want)
		}
	}
}
