package greeting_test

import (
	"context"
	"reflect"
	"testing"

	"github.com/muhammadheryan/compose-demos/application/greeting"
	"github.com/muhammadheryan/compose-demos/model"
)

func TestGreetingApp_Card(t *testing.T) {
	tests := []struct {
		name string
		to   string
		from string
		want *model.GreetingCard
	}{
		{
			name: "default card",
			want: &model.GreetingCard{
				Message: "🎉 Happy Birthday, Fransisna! 🎂",
				Wish:    "Wishing you all the happiness and success!",
				From:    "💌 From Wildan",
			},
		},
		{
			name: "custom names",
			to:   " Sari ",
			from: "Dewi",
			want: &model.GreetingCard{
				Message: "🎉 Happy Birthday, Sari! 🎂",
				Wish:    "Wishing you all the happiness and success!",
				From:    "💌 From Dewi",
			},
		},
	}
	for _, tt := range tests {
		if got := greeting.NewGreetingApp().Card(context.Background(), tt.to, tt.from); !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("%s: Card() = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}
