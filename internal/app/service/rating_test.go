package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func prodDate(year int) time.Time {
	return time.Date(year, time.June, 15, 0, 0, 0, 0, time.Local)
}

func TestComputeRating(t *testing.T) {
	type args struct {
		prodDate time.Time
		isUsed   bool
		speed    float64
	}
	tests := []struct {
		name string
		args args
		want float64
	}{
		{
			name: "new ship produced in 3019",
			args: args{prodDate: prodDate(3019), isUsed: false, speed: 0.5},
			want: 40.0,
		},
		{
			name: "used ship halves the rating",
			args: args{prodDate: prodDate(3019), isUsed: true, speed: 0.5},
			want: 20.0,
		},
		{
			name: "age increases the denominator",
			args: args{prodDate: prodDate(3017), isUsed: false, speed: 0.5},
			want: 13.33,
		},
		{
			name: "used old ship rounds up at the third decimal",
			args: args{prodDate: prodDate(3017), isUsed: true, speed: 0.5},
			want: 6.67,
		},
		{
			name: "oldest allowed year",
			args: args{prodDate: prodDate(2800), isUsed: false, speed: 0.5},
			want: 0.18,
		},
		{
			name: "exact half rounds up, not to even",
			args: args{prodDate: prodDate(3015), isUsed: true, speed: 0.265625},
			want: 2.13,
		},
		{
			name: "exact division",
			args: args{prodDate: prodDate(3010), isUsed: false, speed: 0.25},
			want: 2.0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeRating(tt.args.prodDate, tt.args.isUsed, tt.args.speed)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeRating_Pure(t *testing.T) {
	date := prodDate(2950)
	first := ComputeRating(date, true, 0.42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ComputeRating(date, true, 0.42))
	}
}
